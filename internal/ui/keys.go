package ui

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/shinypaint/internal/editor"
)

// Action names produced by key presses outside text entry.
const (
	actionTool       = "tool"
	actionBrush      = "brush-size"
	actionZoomIn     = "zoom-in"
	actionZoomOut    = "zoom-out"
	actionZoomReset  = "zoom-reset"
	actionSwap       = "swap-colors"
	actionFillShapes = "toggle-fill"
	actionInvert     = "invert"
	actionFlipH      = "flip-horizontal"
	actionFlipV      = "flip-vertical"
	actionClear      = "clear"
	actionPaste      = "paste"
	actionCopy       = "copy"
	actionScreen     = "import-screen"
	actionCancel     = "cancel"
	actionQuit       = "quit"
)

type action struct {
	name string
	tool editor.Tool
	size int
}

type binding struct {
	r   rune
	mod key.Modifiers
}

var toolKeys = map[rune]editor.Tool{
	'p': editor.ToolPencil,
	'b': editor.ToolBrush,
	'e': editor.ToolEraser,
	'f': editor.ToolFill,
	'i': editor.ToolEyedropper,
	't': editor.ToolText,
	'r': editor.ToolRectangle,
	'o': editor.ToolEllipse,
	'l': editor.ToolLine,
}

// brushSizes are the presets offered on the number keys.
var brushSizes = []int{1, 2, 4, 6}

var bindings = map[binding]string{
	{'+', 0}:              actionZoomIn,
	{'=', 0}:              actionZoomIn,
	{'-', 0}:              actionZoomOut,
	{'0', 0}:              actionZoomReset,
	{'x', 0}:              actionSwap,
	{'g', 0}:              actionFillShapes,
	{'i', key.ModControl}: actionInvert,
	{'h', key.ModShift}:   actionFlipH,
	{'v', key.ModShift}:   actionFlipV,
	{'n', key.ModControl}: actionClear,
	{'v', key.ModControl}: actionPaste,
	{'c', key.ModControl}: actionCopy,
	{'g', key.ModControl}: actionScreen,
	{'q', key.ModControl}: actionQuit,
}

// actionFor maps a key press to an action.
func actionFor(e key.Event) (action, bool) {
	if e.Code == key.CodeEscape {
		return action{name: actionCancel}, true
	}
	r := unicode.ToLower(e.Rune)
	mod := e.Modifiers & (key.ModControl | key.ModShift)
	if !unicode.IsLetter(r) {
		// Shift is needed to type some symbols, such as '+'.
		mod &^= key.ModShift
	}
	if name, ok := bindings[binding{r, mod}]; ok {
		return action{name: name}, true
	}
	if mod != 0 {
		return action{}, false
	}
	if t, ok := toolKeys[r]; ok {
		return action{name: actionTool, tool: t}, true
	}
	if i := int(r - '1'); i >= 0 && i < len(brushSizes) {
		return action{name: actionBrush, size: brushSizes[i]}, true
	}
	return action{}, false
}
