package canvas

import "image/color"

// DefaultTolerance is the per-channel slack used when matching colors for a
// flood fill.
const DefaultTolerance = 30

// ColorsMatch reports whether every channel of a and b differs by at most tol.
func ColorsMatch(a, b color.RGBA, tol int) bool {
	return within(a.R, b.R, tol) && within(a.G, b.G, tol) &&
		within(a.B, b.B, tol) && within(a.A, b.A, tol)
}

func within(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// FloodFill replaces the 4-connected region around (x, y) whose colors match
// the seed color within tol with fill. It returns the number of pixels
// written. Filling a region whose seed already matches fill is a no-op.
func (s *Surface) FloodFill(x, y int, fill color.RGBA, tol int) int {
	if !s.In(x, y) {
		return 0
	}
	if tol < 0 {
		tol = 0
	}
	target := s.img.RGBAAt(x, y)
	if ColorsMatch(target, fill, tol) {
		return 0
	}
	w, h := s.Width(), s.Height()
	pix := s.img.Pix
	stride := s.img.Stride
	visited := make([]bool, w*h)
	stack := []int{y*w + x}
	written := 0
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[idx] {
			continue
		}
		px, py := idx%w, idx/w
		off := py*stride + px*4
		cur := color.RGBA{pix[off], pix[off+1], pix[off+2], pix[off+3]}
		if !ColorsMatch(cur, target, tol) {
			continue
		}
		visited[idx] = true
		pix[off], pix[off+1], pix[off+2], pix[off+3] = fill.R, fill.G, fill.B, fill.A
		written++
		if px > 0 {
			stack = append(stack, idx-1)
		}
		if px < w-1 {
			stack = append(stack, idx+1)
		}
		if py > 0 {
			stack = append(stack, idx-w)
		}
		if py < h-1 {
			stack = append(stack, idx+w)
		}
	}
	return written
}
