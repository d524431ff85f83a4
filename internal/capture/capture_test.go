package capture

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
)

type fakeBackend struct {
	monitors []Monitor
	wayland  bool
	rootErr  error
	portal   *image.RGBA
	roots    []image.Rectangle
	portals  int
}

func (f *fakeBackend) Monitors() ([]Monitor, error) {
	if len(f.monitors) == 0 {
		return nil, errNoMonitors
	}
	return f.monitors, nil
}

func (f *fakeBackend) Root(rect image.Rectangle) (*image.RGBA, error) {
	f.roots = append(f.roots, rect)
	if f.rootErr != nil {
		return nil, f.rootErr
	}
	if rect.Empty() {
		rect = image.Rect(0, 0, 4, 4)
	}
	return image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy())), nil
}

func (f *fakeBackend) Portal(context.Context, bool) (*image.RGBA, error) {
	f.portals++
	if f.portal == nil {
		return nil, errors.New("no portal")
	}
	return f.portal, nil
}

func (f *fakeBackend) Wayland() bool { return f.wayland }

func useBackend(t *testing.T, f *fakeBackend) {
	t.Helper()
	orig := backend
	backend = f
	t.Cleanup(func() { backend = orig })
}

var twoMonitors = []Monitor{
	{Index: 0, Name: "HDMI-1", Rect: image.Rect(0, 0, 100, 80)},
	{Index: 1, Name: "eDP-1", Rect: image.Rect(100, 0, 160, 40), Primary: true},
}

func TestFindMonitor(t *testing.T) {
	tests := []struct {
		sel  string
		want int
	}{
		{"", 0},
		{"primary", 1},
		{"1", 1},
		{"#0", 0},
		{"edp", 1},
	}
	for _, tt := range tests {
		got, err := FindMonitor(twoMonitors, tt.sel)
		if err != nil {
			t.Fatalf("FindMonitor(%q): %v", tt.sel, err)
		}
		if got.Index != tt.want {
			t.Errorf("FindMonitor(%q) = %d, want %d", tt.sel, got.Index, tt.want)
		}
	}
	for _, sel := range []string{"7", "dvi"} {
		if _, err := FindMonitor(twoMonitors, sel); err == nil {
			t.Errorf("FindMonitor(%q) succeeded", sel)
		}
	}
	if _, err := FindMonitor(nil, ""); !errors.Is(err, errNoMonitors) {
		t.Errorf("empty list error %v", err)
	}
}

func TestScreenUsesX11First(t *testing.T) {
	f := &fakeBackend{monitors: twoMonitors}
	useBackend(t, f)
	img, err := Screen(context.Background(), "primary")
	if err != nil {
		t.Fatalf("Screen failed: %v", err)
	}
	if img.Bounds().Dx() != 60 || img.Bounds().Dy() != 40 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if f.portals != 0 || len(f.roots) != 1 || f.roots[0] != twoMonitors[1].Rect {
		t.Fatalf("roots=%v portals=%d", f.roots, f.portals)
	}
}

func TestScreenFallsBackToPortal(t *testing.T) {
	shot := image.NewRGBA(image.Rect(0, 0, 160, 80))
	shot.SetRGBA(120, 10, color.RGBA{1, 2, 3, 255})
	f := &fakeBackend{monitors: twoMonitors, rootErr: errors.New("no X"), portal: shot}
	useBackend(t, f)
	img, err := Screen(context.Background(), "eDP")
	if err != nil {
		t.Fatalf("Screen failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 60, 40) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(20, 10); got != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("cropped pixel %+v", got)
	}
}

func TestScreenOnWaylandSkipsX11(t *testing.T) {
	f := &fakeBackend{wayland: true, portal: image.NewRGBA(image.Rect(0, 0, 8, 8))}
	useBackend(t, f)
	img, err := Screen(context.Background(), "")
	if err != nil {
		t.Fatalf("Screen failed: %v", err)
	}
	if img != f.portal || len(f.roots) != 0 {
		t.Fatalf("expected the portal image, roots=%v", f.roots)
	}
}

func TestScreenUnknownDisplay(t *testing.T) {
	useBackend(t, &fakeBackend{monitors: twoMonitors})
	if _, err := Screen(context.Background(), "VGA"); err == nil {
		t.Fatal("expected error for unknown display")
	}
}

func TestCropOutside(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if _, err := cropToRect(src, image.Rect(20, 20, 30, 30)); err == nil {
		t.Fatal("expected error")
	}
}
