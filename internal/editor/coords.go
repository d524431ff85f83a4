package editor

import (
	"image"
	"math"
)

// Zoom limits and the factor applied by a single zoom step.
const (
	MinZoom  = 0.25
	MaxZoom  = 8.0
	ZoomStep = 1.5
)

// ClampZoom limits z to [MinZoom, MaxZoom]. Non-positive or NaN values reset
// to 1.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) || z <= 0 {
		return 1
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Viewport maps between presentation (screen) space and buffer space.
// Origin is the screen position of buffer pixel (0, 0).
type Viewport struct {
	Origin image.Point
	Zoom   float64
}

// ToBuffer converts a screen position to buffer coordinates:
// round((screen - origin) / zoom).
func (v Viewport) ToBuffer(sx, sy float64) image.Point {
	z := ClampZoom(v.Zoom)
	return image.Pt(
		int(math.Round((sx-float64(v.Origin.X))/z)),
		int(math.Round((sy-float64(v.Origin.Y))/z)),
	)
}

// ToScreen converts buffer coordinates to a screen position.
func (v Viewport) ToScreen(p image.Point) (sx, sy float64) {
	z := ClampZoom(v.Zoom)
	return float64(v.Origin.X) + float64(p.X)*z, float64(v.Origin.Y) + float64(p.Y)*z
}

// ScreenRect returns the screen rectangle covered by a buffer of the given size.
func (v Viewport) ScreenRect(size image.Point) image.Rectangle {
	z := ClampZoom(v.Zoom)
	w := int(math.Round(float64(size.X) * z))
	h := int(math.Round(float64(size.Y) * z))
	return image.Rect(v.Origin.X, v.Origin.Y, v.Origin.X+w, v.Origin.Y+h)
}

// Viewport returns the current screen mapping.
func (e *Editor) Viewport() Viewport {
	if e == nil {
		return Viewport{Zoom: 1}
	}
	return e.view
}

// SetOrigin moves the surface's screen origin.
func (e *Editor) SetOrigin(p image.Point) {
	if e == nil {
		return
	}
	e.view.Origin = p
}

// Zoom returns the current zoom factor.
func (e *Editor) Zoom() float64 {
	if e == nil {
		return 1
	}
	return e.view.Zoom
}

// ZoomIn multiplies the zoom by ZoomStep, clamped.
func (e *Editor) ZoomIn() { e.SetZoom(e.Zoom() * ZoomStep) }

// ZoomOut divides the zoom by ZoomStep, clamped.
func (e *Editor) ZoomOut() { e.SetZoom(e.Zoom() / ZoomStep) }

// ResetZoom returns to a 1:1 mapping.
func (e *Editor) ResetZoom() { e.SetZoom(1) }

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom]. Only the
// viewport changes; the surface is never touched.
func (e *Editor) SetZoom(z float64) {
	if e == nil {
		return
	}
	z = ClampZoom(z)
	if z == e.view.Zoom {
		return
	}
	e.view.Zoom = z
	e.emit(Event{Kind: ZoomChanged, Zoom: z})
}

// Cursor reports the buffer position of the last pointer event and whether
// it lies on the surface.
func (e *Editor) Cursor() (image.Point, bool) {
	if e == nil {
		return image.Point{}, false
	}
	return e.cursor, e.cursorIn
}
