package ui

import "image"

const (
	toolbarHeight = 24
	toolWidth     = 76
	swatchSize    = 18
	swatchGap     = 3
	statusHeight  = 20
	canvasMargin  = 8
)

// layout positions the window chrome for one window size.
type layout struct {
	size     image.Point
	tools    []image.Rectangle
	swatches []image.Rectangle
	colors   image.Rectangle // primary/secondary indicator
	status   image.Rectangle
	canvas   image.Rectangle // area the surface is drawn into
}

func newLayout(size image.Point, tools, colors int) layout {
	l := layout{size: size}
	for i := 0; i < tools; i++ {
		l.tools = append(l.tools, image.Rect(i*toolWidth, 0, (i+1)*toolWidth, toolbarHeight))
	}
	y := toolbarHeight + swatchGap
	l.colors = image.Rect(swatchGap, y, swatchGap+2*swatchSize, y+swatchSize)
	x := l.colors.Max.X + 2*swatchGap
	for i := 0; i < colors; i++ {
		l.swatches = append(l.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchSize + swatchGap
	}
	top := y + swatchSize + swatchGap
	l.status = image.Rect(0, size.Y-statusHeight, size.X, size.Y)
	l.canvas = image.Rect(0, top, size.X, l.status.Min.Y)
	return l
}

// origin is where buffer pixel (0, 0) is drawn.
func (l layout) origin() image.Point {
	return l.canvas.Min.Add(image.Pt(canvasMargin, canvasMargin))
}

// hit returns the index of the rectangle containing p, or -1.
func hit(rs []image.Rectangle, p image.Point) int {
	for i, r := range rs {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// windowSize is the initial window size for a surface of the given size.
func windowSize(surface image.Point, tools int) image.Point {
	l := newLayout(image.Point{}, 0, 0)
	w := max(surface.X+2*canvasMargin, tools*toolWidth)
	h := l.canvas.Min.Y + surface.Y + 2*canvasMargin + statusHeight
	return image.Pt(w, h)
}
