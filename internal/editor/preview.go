package editor

import "image"

// preview rolls the surface back to the gesture snapshot and draws the
// shape from the gesture start to p. Only the latest frame is ever visible.
func (e *Editor) preview(p image.Point) {
	g := e.gesture
	e.surface.Restore(g.snapshot)
	g.last = p
	e.drawShape(g, p)
	e.emit(Event{Kind: PreviewUpdated, Tool: g.tool, Button: g.button, Color: g.color, Point: p})
}

func (e *Editor) drawShape(g *gesture, b image.Point) {
	s, a := e.surface, g.start
	switch g.tool {
	case ToolRectangle:
		if e.settings.FillShapes {
			s.FillSpan(a.X, a.Y, b.X, b.Y, e.settings.Secondary)
		}
		s.Rect(a.X, a.Y, b.X, b.Y, g.thick, g.color)
	case ToolEllipse:
		s.Ellipse(a.X, a.Y, b.X, b.Y, g.thick, g.color)
	case ToolLine:
		s.Line(a.X, a.Y, b.X, b.Y, g.thick, g.color)
	}
}
