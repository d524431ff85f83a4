// Package editor implements the raster editing engine: tool state machine,
// palette state, shape previews, text placement, whole-image commands and
// image import. An Editor is single-threaded; all methods must be called
// from one goroutine (the UI event loop).
package editor

import (
	"image"
	"image/color"

	"github.com/google/uuid"
	"golang.org/x/image/font"

	"github.com/example/shinypaint/internal/canvas"
)

// Editor owns one surface and the interaction state around it. Several
// editors can coexist; they share nothing.
type Editor struct {
	id         string
	surface    *canvas.Surface
	background color.RGBA
	settings   Settings
	tool       Tool
	tolerance  int
	view       Viewport

	gesture *gesture
	text    *TextOverlay
	face    font.Face
	textPx  float64

	pending *Import

	cursor   image.Point
	cursorIn bool

	listeners []subscription
	nextSub   int
}

// Option configures an Editor.
type Option func(*Editor)

// WithSize sets the surface dimensions.
func WithSize(w, h int) Option {
	return func(e *Editor) {
		if w > 0 && h > 0 {
			e.surface = canvas.New(w, h)
		}
	}
}

// WithBackground sets the color used by New and Clear.
func WithBackground(c color.RGBA) Option {
	return func(e *Editor) { e.background = c }
}

// WithTolerance sets the flood fill per-channel tolerance.
func WithTolerance(tol int) Option {
	return func(e *Editor) {
		if tol >= 0 {
			e.tolerance = tol
		}
	}
}

// WithBrushSize sets the base stroke thickness.
func WithBrushSize(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.settings.BrushSize = n
		}
	}
}

// WithColors sets the primary and secondary colors.
func WithColors(primary, secondary color.RGBA) Option {
	return func(e *Editor) {
		e.settings.Primary = primary
		e.settings.Secondary = secondary
	}
}

// WithZoom sets the initial zoom factor.
func WithZoom(z float64) Option {
	return func(e *Editor) { e.view.Zoom = ClampZoom(z) }
}

// WithOrigin sets the screen position of buffer pixel (0, 0).
func WithOrigin(p image.Point) Option {
	return func(e *Editor) { e.view.Origin = p }
}

// WithListener subscribes l before any event can fire.
func WithListener(l Listener) Option {
	return func(e *Editor) { e.Subscribe(l) }
}

// WithTextSize sets the reference text size in pixels.
func WithTextSize(px float64) Option {
	return func(e *Editor) {
		if px > 0 {
			e.textPx = px
		}
	}
}

// New creates an editor with a white DefaultWidth x DefaultHeight surface
// and the pencil selected.
func New(opts ...Option) *Editor {
	e := &Editor{
		id:         uuid.NewString(),
		background: color.RGBA{255, 255, 255, 255},
		settings:   DefaultSettings(),
		tool:       ToolPencil,
		tolerance:  canvas.DefaultTolerance,
		view:       Viewport{Zoom: 1},
		textPx:     DefaultTextSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.surface == nil {
		e.surface = canvas.New(canvas.DefaultWidth, canvas.DefaultHeight)
	}
	if e.background != (color.RGBA{255, 255, 255, 255}) {
		e.surface.Clear(e.background)
	}
	return e
}

// ID identifies the editor in events and logs.
func (e *Editor) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// Surface exposes the pixel surface. Callers must not keep it across an
// import, which replaces the contents in place.
func (e *Editor) Surface() *canvas.Surface {
	if e == nil {
		return nil
	}
	return e.surface
}

// Size returns the surface dimensions.
func (e *Editor) Size() image.Point {
	if e == nil {
		return image.Point{}
	}
	return image.Pt(e.surface.Width(), e.surface.Height())
}

// At returns the surface pixel at buffer coordinates.
func (e *Editor) At(x, y int) color.RGBA {
	if e == nil {
		return color.RGBA{}
	}
	return e.surface.Get(x, y)
}

// Image returns a copy of the surface, including any in-flight preview.
func (e *Editor) Image() *image.RGBA {
	if e == nil {
		return nil
	}
	return e.surface.Image()
}

// Snapshot copies the surface pixels.
func (e *Editor) Snapshot() canvas.Snapshot {
	if e == nil {
		return canvas.Snapshot{}
	}
	return e.surface.Copy()
}

// State reports whether a gesture is in progress.
func (e *Editor) State() State {
	if e == nil || e.gesture == nil {
		return StateIdle
	}
	return StateGesturing
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	if e == nil {
		return ToolPencil
	}
	return e.tool
}

// SetTool selects t. Switching away commits an open text overlay and
// aborts any gesture in progress.
func (e *Editor) SetTool(t Tool) {
	if e == nil || t == e.tool {
		return
	}
	e.abortGesture()
	e.CommitText()
	e.tool = t
	e.emit(Event{Kind: SettingsChanged, Tool: t})
}

// Fill flood fills from buffer point p with c using the editor tolerance
// and returns the number of pixels changed.
func (e *Editor) Fill(p image.Point, c color.RGBA) int {
	if e == nil || e.busy() {
		return 0
	}
	n := e.surface.FloodFill(p.X, p.Y, c, e.tolerance)
	if n > 0 {
		e.emit(Event{Kind: GestureCommitted, Tool: ToolFill, Color: c, Point: p})
	}
	return n
}

// Sample returns the color at buffer point p and whether p is on the surface.
func (e *Editor) Sample(p image.Point) (color.RGBA, bool) {
	if e == nil || !e.surface.In(p.X, p.Y) {
		return color.RGBA{}, false
	}
	return e.surface.Get(p.X, p.Y), true
}
