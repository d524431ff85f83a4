package canvas

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 200, 0, 255}
)

func TestNewSurfaceIsWhite(t *testing.T) {
	s := New(DefaultWidth, DefaultHeight)
	if got := len(s.img.Pix); got != DefaultWidth*DefaultHeight*4 {
		t.Fatalf("pixel buffer length %d, want %d", got, DefaultWidth*DefaultHeight*4)
	}
	for _, p := range []image.Point{{0, 0}, {639, 399}, {320, 200}} {
		if got := s.Get(p.X, p.Y); got != white {
			t.Fatalf("pixel %v = %+v, want white", p, got)
		}
	}
}

func TestOutOfRangeAccessIsNoop(t *testing.T) {
	s := New(4, 4)
	before := s.Copy()
	s.Set(-1, 0, red)
	s.SetRGBA(4, 0, red)
	s.SetRGBA(0, 4, red)
	s.FillRect(10, 10, 5, 5, red)
	s.FillRect(0, 0, 0, 3, red)
	if !s.Copy().Equal(before) {
		t.Fatal("out of range writes mutated the surface")
	}
	if got := s.Get(-5, 2); got != (color.RGBA{}) {
		t.Fatalf("out of range read = %+v, want zero color", got)
	}
}

func TestNilSurfaceIsNoop(t *testing.T) {
	var s *Surface
	s.SetRGBA(0, 0, red)
	s.Clear(red)
	s.Invert()
	s.FlipHorizontal()
	s.Restore(Snapshot{})
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatal("nil surface should report zero size")
	}
	if n := s.FloodFill(0, 0, red, 0); n != 0 {
		t.Fatalf("nil fill wrote %d pixels", n)
	}
}

func TestFillRectClips(t *testing.T) {
	s := New(10, 10)
	s.FillRect(8, 8, 5, 5, red)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := white
			if x >= 8 && y >= 8 {
				want = red
			}
			if got := s.Get(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestCopyRestore(t *testing.T) {
	s := New(8, 8)
	s.SetRGBA(3, 3, green)
	snap := s.Copy()
	s.Clear(black)
	s.Restore(snap)
	if got := s.Get(3, 3); got != green {
		t.Fatalf("restored pixel = %+v, want green", got)
	}
	if got := s.Get(0, 0); got != white {
		t.Fatalf("restored pixel = %+v, want white", got)
	}
}

func TestRestoreIgnoresForeignSnapshot(t *testing.T) {
	s := New(8, 8)
	other := New(4, 4)
	other.Clear(black)
	s.Restore(other.Copy())
	if got := s.Get(0, 0); got != white {
		t.Fatalf("foreign snapshot was applied: %+v", got)
	}
}

func TestBlitScalesToFill(t *testing.T) {
	s := New(20, 10)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, red)
		}
	}
	s.Blit(src, s.Bounds())
	for _, p := range []image.Point{{0, 0}, {19, 9}, {10, 5}} {
		if got := s.Get(p.X, p.Y); got != red {
			t.Fatalf("pixel %v = %+v, want red", p, got)
		}
	}
}

func TestBlitSameSizeIsExact(t *testing.T) {
	s := New(6, 6)
	src := image.NewRGBA(image.Rect(0, 0, 6, 6))
	src.SetRGBA(2, 4, green)
	s.Blit(src, s.Bounds())
	if got := s.Get(2, 4); got != green {
		t.Fatalf("pixel = %+v, want green", got)
	}
	if got := s.Get(0, 0); got != (color.RGBA{}) {
		t.Fatalf("pixel = %+v, want transparent", got)
	}
}

func TestImageIsDetachedCopy(t *testing.T) {
	s := New(3, 3)
	img := s.Image()
	img.SetRGBA(0, 0, red)
	if got := s.Get(0, 0); got != white {
		t.Fatalf("mutating the returned image changed the surface: %+v", got)
	}
}
