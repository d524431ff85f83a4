package editor

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/shinypaint/internal/canvas"
)

func TestPencilStroke(t *testing.T) {
	e, rec := newTestEditor(t)
	e.DownAt(image.Pt(5, 5), ButtonPrimary)
	if e.State() != StateGesturing {
		t.Fatal("pointer-down did not start a gesture")
	}
	e.MoveTo(image.Pt(20, 5))
	e.UpAt(image.Pt(20, 10))
	if e.State() != StateIdle {
		t.Fatal("pointer-up did not end the gesture")
	}
	for _, p := range []image.Point{{5, 5}, {12, 5}, {20, 5}, {20, 8}, {20, 10}} {
		if got := e.At(p.X, p.Y); got != black {
			t.Errorf("pixel %v = %+v, want black", p, got)
		}
	}
	if e.At(12, 8) != white {
		t.Error("stroke painted off the path")
	}
	if diff := cmp.Diff([]EventKind{StrokeStarted, GestureCommitted}, rec.kinds()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestToolThickness(t *testing.T) {
	tests := []struct {
		tool    Tool
		size    int
		inside  image.Point
		outside image.Point
	}{
		{ToolPencil, 3, image.Pt(11, 10), image.Pt(12, 10)},
		{ToolBrush, 3, image.Pt(7, 10), image.Pt(13, 10)},
		{ToolEraser, 1, image.Pt(8, 10), image.Pt(12, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.tool.String(), func(t *testing.T) {
			e, _ := newTestEditor(t, WithBrushSize(tt.size), WithColors(black, red))
			e.Surface().Clear(blue)
			e.SetTool(tt.tool)
			click(e, 10, 10, ButtonPrimary)
			want := black
			if tt.tool == ToolEraser {
				want = red
			}
			if got := e.At(tt.inside.X, tt.inside.Y); got != want {
				t.Errorf("pixel %v = %+v, want %+v", tt.inside, got, want)
			}
			if got := e.At(tt.outside.X, tt.outside.Y); got != blue {
				t.Errorf("pixel %v = %+v, want untouched", tt.outside, got)
			}
		})
	}
}

func TestEraserAlwaysPaintsSecondary(t *testing.T) {
	e, _ := newTestEditor(t, WithColors(green, red))
	e.Surface().Clear(black)
	e.SetTool(ToolEraser)
	for _, b := range []Button{ButtonPrimary, ButtonSecondary} {
		e.Surface().Clear(black)
		click(e, 30, 30, b)
		got := e.At(30, 30)
		if got != red {
			t.Fatalf("%v eraser painted %+v, want secondary %+v", b, got, red)
		}
		if got.A != 255 {
			t.Fatal("eraser cleared alpha")
		}
	}
}

func TestSecondaryButtonPaintsSecondary(t *testing.T) {
	e, _ := newTestEditor(t, WithColors(green, red))
	click(e, 3, 3, ButtonSecondary)
	if e.At(3, 3) != red {
		t.Fatalf("secondary pencil painted %+v", e.At(3, 3))
	}
}

func TestLeaveKeepsFreehandStroke(t *testing.T) {
	e, rec := newTestEditor(t)
	e.SetTool(ToolBrush)
	e.DownAt(image.Pt(5, 20), ButtonPrimary)
	e.MoveTo(image.Pt(30, 20))
	e.PointerLeave()
	if e.State() != StateIdle {
		t.Fatal("leave did not end the gesture")
	}
	if e.At(18, 20) != black {
		t.Fatal("freehand stroke was undone by leave")
	}
	e.MoveTo(image.Pt(30, 40))
	if e.At(30, 35) != white {
		t.Fatal("moves after leave kept drawing")
	}
	want := []EventKind{SettingsChanged, StrokeStarted, GestureCancelled}
	if diff := cmp.Diff(want, rec.kinds()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestLeaveRestoresShapeSnapshot(t *testing.T) {
	for _, tool := range []Tool{ToolRectangle, ToolEllipse, ToolLine} {
		t.Run(tool.String(), func(t *testing.T) {
			e, _ := newTestEditor(t)
			e.Surface().FillRect(0, 0, 8, 8, green)
			before := e.Surface().Copy()
			e.SetTool(tool)
			e.DownAt(image.Pt(4, 4), ButtonPrimary)
			e.MoveTo(image.Pt(40, 30))
			if e.Surface().Copy().Equal(before) {
				t.Fatal("no preview was drawn")
			}
			e.PointerLeave()
			if !e.Surface().Copy().Equal(before) {
				t.Fatal("leave did not restore the snapshot")
			}
			e.UpAt(image.Pt(40, 30))
			if !e.Surface().Copy().Equal(before) {
				t.Fatal("pointer-up after leave committed a shape")
			}
		})
	}
}

func TestPointerDownOutsideIgnored(t *testing.T) {
	e, rec := newTestEditor(t)
	e.PointerDown(-5, 10, ButtonPrimary)
	if e.State() != StateIdle || len(rec.events) != 0 {
		t.Fatalf("press outside started a gesture: %v", rec.kinds())
	}
	if _, in := e.Cursor(); in {
		t.Fatal("cursor reported inside")
	}
}

func TestScreenCoordinatesUseZoom(t *testing.T) {
	e, _ := newTestEditor(t, WithZoom(2), WithOrigin(image.Pt(100, 50)))
	e.PointerDown(120, 70, ButtonPrimary)
	e.PointerUp(120, 70)
	if e.At(10, 10) != black {
		t.Fatal("screen position not mapped through the viewport")
	}
	if p, in := e.Cursor(); p != image.Pt(10, 10) || !in {
		t.Fatalf("cursor %v %v", p, in)
	}
}

func TestSecondPressDuringGestureIgnored(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetTool(ToolLine)
	e.DownAt(image.Pt(1, 1), ButtonPrimary)
	e.DownAt(image.Pt(30, 30), ButtonSecondary)
	e.UpAt(image.Pt(10, 1))

	want := canvas.New(64, 48)
	want.Line(1, 1, 10, 1, 2, black)
	if !e.Surface().Copy().Equal(want.Copy()) {
		t.Fatal("second press altered the running gesture")
	}
}
