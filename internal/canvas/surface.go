package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Default surface dimensions used when a configuration does not supply any.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// Surface owns a fixed-size RGBA raster. Its dimensions never change after
// creation; every accessor is bounds-checked and silently ignores
// out-of-range coordinates. A nil *Surface behaves as an empty surface.
//
// Surface implements draw.Image so font drawers and scalers can target it.
type Surface struct {
	img *image.RGBA
}

var _ draw.Image = (*Surface)(nil)

// New allocates a width×height surface filled with opaque white.
func New(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	s.Clear(color.RGBA{255, 255, 255, 255})
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	if s == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	if s == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

func (s *Surface) Bounds() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	return s.img.Rect
}

func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

func (s *Surface) At(x, y int) color.Color { return s.Get(x, y) }

// In reports whether (x, y) addresses a pixel of the surface.
func (s *Surface) In(x, y int) bool {
	if s == nil {
		return false
	}
	return image.Pt(x, y).In(s.img.Rect)
}

// Get returns the pixel at (x, y), or the zero color when out of range.
func (s *Surface) Get(x, y int) color.RGBA {
	if !s.In(x, y) {
		return color.RGBA{}
	}
	return s.img.RGBAAt(x, y)
}

// Set writes c at (x, y) after converting it to RGBA.
func (s *Surface) Set(x, y int, c color.Color) {
	if !s.In(x, y) {
		return
	}
	s.img.Set(x, y, c)
}

// SetRGBA writes c at (x, y).
func (s *Surface) SetRGBA(x, y int, c color.RGBA) {
	if !s.In(x, y) {
		return
	}
	s.img.SetRGBA(x, y, c)
}

// FillRect paints the w×h rectangle whose top-left corner is (x, y). The
// rectangle is clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if s == nil || w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Clear paints the whole surface with c.
func (s *Surface) Clear(c color.RGBA) {
	if s == nil {
		return
	}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Snapshot is a full copy of a surface's pixels.
type Snapshot struct {
	width, height int
	pix           []byte
}

// IsZero reports whether the snapshot holds no pixels.
func (sn Snapshot) IsZero() bool { return sn.pix == nil }

// Equal reports whether two snapshots hold byte-identical pixels of the same size.
func (sn Snapshot) Equal(o Snapshot) bool {
	return sn.width == o.width && sn.height == o.height && bytes.Equal(sn.pix, o.pix)
}

// Copy takes a snapshot of the surface.
func (s *Surface) Copy() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	pix := make([]byte, len(s.img.Pix))
	copy(pix, s.img.Pix)
	return Snapshot{width: s.Width(), height: s.Height(), pix: pix}
}

// Restore replaces the surface pixels with a snapshot. Snapshots taken from a
// surface of different dimensions are ignored.
func (s *Surface) Restore(sn Snapshot) {
	if s == nil || sn.IsZero() {
		return
	}
	if sn.width != s.Width() || sn.height != s.Height() || len(sn.pix) != len(s.img.Pix) {
		return
	}
	copy(s.img.Pix, sn.pix)
}

// Blit scales src to exactly cover dst (clipped to the surface). Aspect ratio
// is not preserved.
func (s *Surface) Blit(src image.Image, dst image.Rectangle) {
	if s == nil || src == nil {
		return
	}
	sr := src.Bounds()
	if sr.Empty() || dst.Empty() {
		return
	}
	if sr.Dx() == dst.Dx() && sr.Dy() == dst.Dy() {
		clip := dst.Intersect(s.img.Rect)
		if clip.Empty() {
			return
		}
		draw.Draw(s.img, clip, src, sr.Min.Add(clip.Min.Sub(dst.Min)), draw.Src)
		return
	}
	// Scale into a scratch image first so clipping cannot distort the scale.
	scratch := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	xdraw.ApproxBiLinear.Scale(scratch, scratch.Rect, src, sr, draw.Src, nil)
	clip := dst.Intersect(s.img.Rect)
	if clip.Empty() {
		return
	}
	draw.Draw(s.img, clip, scratch, clip.Min.Sub(dst.Min), draw.Src)
}

// Image returns a copy of the surface as an *image.RGBA suitable for
// rendering or encoding.
func (s *Surface) Image() *image.RGBA {
	if s == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}
