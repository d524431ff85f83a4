package canvas

import (
	"image"
	"image/color"
	"math"
)

// Stamp paints a thick×thick square centred on (x, y). Thickness below one is
// treated as one.
func (s *Surface) Stamp(x, y, thick int, col color.RGBA) {
	if thick < 1 {
		thick = 1
	}
	start := -thick / 2
	s.FillRect(x+start, y+start, thick, thick, col)
}

// Line draws a straight segment between the two points, both inclusive.
func (s *Surface) Line(x0, y0, x1, y1, thick int, col color.RGBA) {
	if s == nil {
		return
	}
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		s.Stamp(x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect outlines the rectangle spanned by the two corner points, both inclusive.
func (s *Surface) Rect(x0, y0, x1, y1, thick int, col color.RGBA) {
	r := Span(x0, y0, x1, y1)
	maxX, maxY := r.Max.X-1, r.Max.Y-1
	s.Line(r.Min.X, r.Min.Y, maxX, r.Min.Y, thick, col)
	s.Line(maxX, r.Min.Y, maxX, maxY, thick, col)
	s.Line(maxX, maxY, r.Min.X, maxY, thick, col)
	s.Line(r.Min.X, maxY, r.Min.X, r.Min.Y, thick, col)
}

// FillSpan paints the rectangle spanned by the two corner points, both inclusive.
func (s *Surface) FillSpan(x0, y0, x1, y1 int, col color.RGBA) {
	r := Span(x0, y0, x1, y1)
	s.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), col)
}

// Ellipse outlines the ellipse inscribed in the box spanned by the two corner
// points.
func (s *Surface) Ellipse(x0, y0, x1, y1, thick int, col color.RGBA) {
	if s == nil {
		return
	}
	r := Span(x0, y0, x1, y1)
	cx := float64(r.Min.X+r.Max.X-1) / 2
	cy := float64(r.Min.Y+r.Max.Y-1) / 2
	rx := float64(r.Dx()-1) / 2
	ry := float64(r.Dy()-1) / 2
	if rx == 0 && ry == 0 {
		s.Stamp(r.Min.X, r.Min.Y, thick, col)
		return
	}
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(rx*rx+ry*ry)))
	if steps < 8 {
		steps = 8
	}
	var prevX, prevY int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + math.Cos(angle)*rx))
		y := int(math.Round(cy + math.Sin(angle)*ry))
		if i > 0 {
			s.Line(prevX, prevY, x, y, thick, col)
		}
		prevX, prevY = x, y
	}
}

// Span returns the rectangle covering both corner points inclusively.
func Span(x0, y0, x1, y1 int) image.Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return image.Rect(x0, y0, x1+1, y1+1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
