package editor

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestImportScalesToFill(t *testing.T) {
	e, rec := newTestEditor(t)
	if err := e.Import(context.Background(), ImageSource(solid(3, 7, green))); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	for _, p := range []image.Point{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {31, 23}} {
		if got := e.At(p.X, p.Y); got != green {
			t.Fatalf("pixel %v = %+v, want green", p, got)
		}
	}
	if e.Size() != image.Pt(64, 48) {
		t.Fatal("import resized the surface")
	}
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != SurfaceReplaced {
		t.Fatalf("events %v", kinds)
	}
}

func TestImportThenFill(t *testing.T) {
	src := solid(64, 48, blue)
	draw.Draw(src, image.Rect(32, 0, 64, 48), image.NewUniform(color.RGBA{255, 255, 0, 255}), image.Point{}, draw.Src)
	draw.Draw(src, image.Rect(20, 0, 22, 48), image.NewUniform(black), image.Point{}, draw.Src)

	e, _ := newTestEditor(t)
	if err := e.Import(context.Background(), ImageSource(src)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	e.SetTool(ToolFill)
	e.SetPrimary(red)
	click(e, 5, 5, ButtonPrimary)

	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			want := src.RGBAAt(x, y)
			if x < 20 {
				want = red
			}
			if got := e.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestImportFailureLeavesSurface(t *testing.T) {
	tests := map[string]Source{
		"error": func(context.Context) (image.Image, error) { return nil, errors.New("corrupt") },
		"nil":   func(context.Context) (image.Image, error) { return nil, nil },
		"empty": ImageSource(image.NewRGBA(image.Rectangle{})),
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			e, rec := newTestEditor(t)
			e.Surface().FillRect(3, 3, 9, 9, red)
			before := e.Surface().Copy()
			if err := e.Import(context.Background(), src); err == nil {
				t.Fatal("expected an error")
			}
			if !e.Surface().Copy().Equal(before) {
				t.Fatal("failed import changed the surface")
			}
			if len(rec.events) != 0 || e.Importing() {
				t.Fatalf("events %v importing=%v", rec.kinds(), e.Importing())
			}
		})
	}
}

func TestPendingImportGatesSurface(t *testing.T) {
	e, _ := newTestEditor(t)
	release := make(chan struct{})
	imp, err := e.RequestImport(context.Background(), func(context.Context) (image.Image, error) {
		<-release
		return solid(8, 8, green), nil
	})
	if err != nil {
		t.Fatalf("RequestImport failed: %v", err)
	}
	if !e.Importing() {
		t.Fatal("import not pending")
	}
	before := e.Surface().Copy()

	click(e, 10, 10, ButtonPrimary)
	e.Invert()
	e.Fill(image.Pt(1, 1), red)
	if !e.Surface().Copy().Equal(before) {
		t.Fatal("surface changed while an import was pending")
	}
	if _, err := e.RequestImport(context.Background(), ImageSource(solid(1, 1, red))); !errors.Is(err, ErrImportPending) {
		t.Fatalf("second request error %v, want ErrImportPending", err)
	}
	if e.FinishImport(imp) {
		t.Fatal("FinishImport applied an unfinished decode")
	}

	close(release)
	select {
	case <-imp.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("decode never finished")
	}
	if !e.FinishImport(imp) {
		t.Fatal("FinishImport did not apply the decode")
	}
	if e.At(10, 10) != green || e.Importing() {
		t.Fatal("import not applied")
	}
	if e.FinishImport(imp) {
		t.Fatal("import applied twice")
	}
}

func TestCancelImport(t *testing.T) {
	e, _ := newTestEditor(t)
	imp, err := e.RequestImport(context.Background(), func(ctx context.Context) (image.Image, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	if err != nil {
		t.Fatal(err)
	}
	e.CancelImport()
	<-imp.Done()
	if !errors.Is(imp.Err(), context.Canceled) {
		t.Fatalf("Err() = %v", imp.Err())
	}
	if e.Importing() || e.FinishImport(imp) {
		t.Fatal("cancelled import still pending")
	}
	click(e, 2, 2, ButtonPrimary)
	if e.At(2, 2) != black {
		t.Fatal("editor still gated after cancel")
	}
}

func TestImportAbortsGestureAndText(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetTool(ToolLine)
	e.OpenText(image.Pt(1, 1), black)
	e.TypeText("lost")
	e.DownAt(image.Pt(1, 1), ButtonPrimary)
	e.MoveTo(image.Pt(50, 40))
	if err := e.Import(context.Background(), ImageSource(solid(2, 2, blue))); err != nil {
		t.Fatal(err)
	}
	if e.State() != StateIdle {
		t.Fatal("gesture survived the import")
	}
	if _, ok := e.TextOverlay(); ok {
		t.Fatal("text overlay survived the import")
	}
	if e.At(25, 20) != blue {
		t.Fatal("import did not replace the surface")
	}
}
