package editor

import (
	"image/color"

	"github.com/example/shinypaint/internal/canvas"
)

// Settings holds the palette state shared by every tool.
type Settings struct {
	Primary    color.RGBA
	Secondary  color.RGBA
	BrushSize  int
	FillShapes bool
}

// DefaultSettings returns black on white with a two pixel brush.
func DefaultSettings() Settings {
	return Settings{
		Primary:   color.RGBA{0, 0, 0, 255},
		Secondary: color.RGBA{255, 255, 255, 255},
		BrushSize: 2,
	}
}

// Settings returns the palette state.
func (e *Editor) Settings() Settings {
	if e == nil {
		return DefaultSettings()
	}
	return e.settings
}

// SetPrimary sets the primary color.
func (e *Editor) SetPrimary(c color.RGBA) {
	if e == nil {
		return
	}
	e.settings.Primary = c
	e.emit(Event{Kind: SettingsChanged, Tool: e.tool, Button: ButtonPrimary, Color: c})
}

// SetSecondary sets the secondary color.
func (e *Editor) SetSecondary(c color.RGBA) {
	if e == nil {
		return
	}
	e.settings.Secondary = c
	e.emit(Event{Kind: SettingsChanged, Tool: e.tool, Button: ButtonSecondary, Color: c})
}

// SwapColors exchanges primary and secondary.
func (e *Editor) SwapColors() {
	if e == nil {
		return
	}
	e.settings.Primary, e.settings.Secondary = e.settings.Secondary, e.settings.Primary
	e.emit(Event{Kind: SettingsChanged, Tool: e.tool})
}

// SetBrushSize sets the base thickness. Values below 1 are ignored.
func (e *Editor) SetBrushSize(n int) {
	if e == nil || n < 1 {
		return
	}
	e.settings.BrushSize = n
	e.emit(Event{Kind: SettingsChanged, Tool: e.tool})
}

// SetFillShapes toggles filling rectangles with the secondary color.
func (e *Editor) SetFillShapes(on bool) {
	if e == nil {
		return
	}
	e.settings.FillShapes = on
	e.emit(Event{Kind: SettingsChanged, Tool: e.tool})
}

// Tolerance returns the flood fill tolerance.
func (e *Editor) Tolerance() int {
	if e == nil {
		return canvas.DefaultTolerance
	}
	return e.tolerance
}

// SetTolerance changes the flood fill tolerance. Negative values are ignored.
func (e *Editor) SetTolerance(tol int) {
	if e == nil || tol < 0 {
		return
	}
	e.tolerance = tol
}

// thickness scales the brush size for freehand tools.
func (e *Editor) thickness(t Tool) int {
	n := e.settings.BrushSize
	switch t {
	case ToolBrush:
		n *= 2
	case ToolEraser:
		n *= 4
	}
	if n < 1 {
		n = 1
	}
	return n
}

// colorFor picks the paint color for a tool and button. The eraser always
// paints the secondary color.
func (e *Editor) colorFor(t Tool, b Button) color.RGBA {
	if t == ToolEraser || b == ButtonSecondary {
		return e.settings.Secondary
	}
	return e.settings.Primary
}
