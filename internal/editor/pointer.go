package editor

import (
	"image"
	"image/color"

	"github.com/example/shinypaint/internal/canvas"
)

// gesture lives from pointer-down until pointer-up or pointer-leave.
type gesture struct {
	tool   Tool
	button Button
	color  color.RGBA
	thick  int
	start  image.Point
	last   image.Point
	// snapshot is only taken for shape tools.
	snapshot canvas.Snapshot
}

// PointerDown handles a button press at screen position (sx, sy).
func (e *Editor) PointerDown(sx, sy float64, b Button) {
	if e == nil {
		return
	}
	e.DownAt(e.track(sx, sy), b)
}

// PointerMove handles pointer motion at screen position (sx, sy).
func (e *Editor) PointerMove(sx, sy float64) {
	if e == nil {
		return
	}
	e.MoveTo(e.track(sx, sy))
}

// PointerUp handles a button release at screen position (sx, sy).
func (e *Editor) PointerUp(sx, sy float64) {
	if e == nil {
		return
	}
	e.UpAt(e.track(sx, sy))
}

// PointerLeave handles the pointer leaving the surface. A gesture in
// progress is aborted: shape previews are rolled back, freehand pixels stay.
func (e *Editor) PointerLeave() {
	if e == nil {
		return
	}
	e.cursorIn = false
	e.abortGesture()
}

func (e *Editor) track(sx, sy float64) image.Point {
	p := e.view.ToBuffer(sx, sy)
	e.cursor = p
	e.cursorIn = e.surface.In(p.X, p.Y)
	return p
}

// DownAt starts a gesture at buffer point p. Presses outside the surface
// are ignored, as is a second press while a gesture is already running.
func (e *Editor) DownAt(p image.Point, b Button) {
	if e == nil || e.gesture != nil {
		return
	}
	if e.busy() {
		Logger().Debug("pointer ignored while import pending", "editor", e.id)
		return
	}
	if !e.surface.In(p.X, p.Y) {
		return
	}
	t := e.tool
	col := e.colorFor(t, b)

	switch t {
	case ToolFill:
		e.Fill(p, col)
		return
	case ToolEyedropper:
		e.sample(p, b)
		return
	case ToolText:
		e.OpenText(p, col)
		return
	}

	g := &gesture{tool: t, button: b, color: col, thick: e.thickness(t), start: p, last: p}
	if t.Shape() {
		g.snapshot = e.surface.Copy()
		g.thick = e.settings.BrushSize
	}
	e.gesture = g
	e.emit(Event{Kind: StrokeStarted, Tool: t, Button: b, Color: col, Point: p})

	if t.Freehand() {
		e.surface.Stamp(p.X, p.Y, g.thick, col)
		return
	}
	e.preview(p)
}

// MoveTo extends the running gesture to buffer point p.
func (e *Editor) MoveTo(p image.Point) {
	if e == nil || e.gesture == nil {
		return
	}
	g := e.gesture
	if g.tool.Freehand() {
		e.surface.Line(g.last.X, g.last.Y, p.X, p.Y, g.thick, g.color)
		g.last = p
		return
	}
	e.preview(p)
}

// UpAt finishes the running gesture at buffer point p and commits it.
func (e *Editor) UpAt(p image.Point) {
	if e == nil || e.gesture == nil {
		return
	}
	e.MoveTo(p)
	g := e.gesture
	e.gesture = nil
	e.emit(Event{Kind: GestureCommitted, Tool: g.tool, Button: g.button, Color: g.color, Point: p})
}

// abortGesture ends a gesture without committing it.
func (e *Editor) abortGesture() {
	g := e.gesture
	if g == nil {
		return
	}
	e.gesture = nil
	if g.tool.Shape() {
		e.surface.Restore(g.snapshot)
	}
	e.emit(Event{Kind: GestureCancelled, Tool: g.tool, Button: g.button, Color: g.color, Point: g.last})
}

func (e *Editor) sample(p image.Point, b Button) {
	c, ok := e.Sample(p)
	if !ok {
		return
	}
	if b == ButtonSecondary {
		e.settings.Secondary = c
	} else {
		e.settings.Primary = c
	}
	e.emit(Event{Kind: ColorSampled, Tool: ToolEyedropper, Button: b, Color: c, Point: p})
}

func (e *Editor) busy() bool {
	return e.pending != nil
}
