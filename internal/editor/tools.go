package editor

import (
	"fmt"
	"strings"
)

// Tool identifies the active drawing tool.
type Tool int

const (
	ToolPencil Tool = iota
	ToolBrush
	ToolEraser
	ToolFill
	ToolEyedropper
	ToolText
	ToolRectangle
	ToolEllipse
	ToolLine
)

var toolNames = [...]string{
	ToolPencil:     "pencil",
	ToolBrush:      "brush",
	ToolEraser:     "eraser",
	ToolFill:       "fill",
	ToolEyedropper: "eyedropper",
	ToolText:       "text",
	ToolRectangle:  "rectangle",
	ToolEllipse:    "ellipse",
	ToolLine:       "line",
}

// Tools lists every tool in display order.
func Tools() []Tool {
	out := make([]Tool, len(toolNames))
	for i := range out {
		out[i] = Tool(i)
	}
	return out
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool resolves a tool by name. A few common aliases are accepted.
func ParseTool(s string) (Tool, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "rect":
		return ToolRectangle, nil
	case "circle", "oval":
		return ToolEllipse, nil
	case "bucket":
		return ToolFill, nil
	case "picker", "pick":
		return ToolEyedropper, nil
	}
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// Freehand reports whether the tool paints incrementally while dragging.
func (t Tool) Freehand() bool {
	return t == ToolPencil || t == ToolBrush || t == ToolEraser
}

// Shape reports whether the tool previews a shape until the pointer is released.
func (t Tool) Shape() bool {
	return t == ToolRectangle || t == ToolEllipse || t == ToolLine
}

// Button identifies which pointer button started a gesture.
type Button int

const (
	// ButtonPrimary is conventionally the left button and paints with the
	// primary color.
	ButtonPrimary Button = iota
	// ButtonSecondary is conventionally the right button and paints with the
	// secondary color.
	ButtonSecondary
)

func (b Button) String() string {
	if b == ButtonSecondary {
		return "secondary"
	}
	return "primary"
}

// State is the tool state machine state.
type State int

const (
	StateIdle State = iota
	StateGesturing
)

func (s State) String() string {
	if s == StateGesturing {
		return "gesturing"
	}
	return "idle"
}
