package editor

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// inked reports whether any pixel of r differs from white.
func inked(e *Editor, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if e.At(x, y) != white {
				return true
			}
		}
	}
	return false
}

func TestTextCommit(t *testing.T) {
	e, rec := newTestEditor(t, WithSize(120, 60))
	e.SetTool(ToolText)
	e.PointerDown(10, 10, ButtonPrimary)
	if e.State() != StateIdle {
		t.Fatal("text tool left a gesture open")
	}
	ov, ok := e.TextOverlay()
	if !ok || ov.Anchor != image.Pt(10, 10) || ov.Color != black {
		t.Fatalf("overlay %+v %v", ov, ok)
	}
	e.TypeText("Hi")
	if inked(e, e.Surface().Bounds()) {
		t.Fatal("text rasterized before commit")
	}
	if !e.CommitText() {
		t.Fatal("commit reported nothing drawn")
	}
	if !inked(e, image.Rect(10, 10, 40, 32)) {
		t.Fatal("no glyphs near the anchor")
	}
	if inked(e, image.Rect(0, 0, 120, 9)) || inked(e, image.Rect(0, 0, 9, 60)) {
		t.Fatal("glyphs drawn above or left of the anchor")
	}
	if _, ok := e.TextOverlay(); ok {
		t.Fatal("overlay still open after commit")
	}
	want := []EventKind{SettingsChanged, TextOpened, GestureCommitted}
	if diff := cmp.Diff(want, rec.kinds()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyTextWritesNothing(t *testing.T) {
	e, _ := newTestEditor(t)
	before := e.Surface().Copy()
	e.OpenText(image.Pt(5, 5), black)
	if e.CommitText() {
		t.Fatal("empty commit reported glyphs")
	}
	e.OpenText(image.Pt(5, 5), black)
	e.TypeText("a")
	e.Backspace()
	e.Blur()
	if !e.Surface().Copy().Equal(before) {
		t.Fatal("empty text changed the surface")
	}
}

func TestSecondPlacementCommitsFirst(t *testing.T) {
	e, _ := newTestEditor(t, WithSize(200, 100))
	e.SetTool(ToolText)
	click(e, 10, 10, ButtonPrimary)
	e.TypeText("A")
	click(e, 120, 60, ButtonSecondary)
	if !inked(e, image.Rect(10, 10, 30, 32)) {
		t.Fatal("first overlay was not committed")
	}
	ov, ok := e.TextOverlay()
	if !ok || ov.Anchor != image.Pt(120, 60) || ov.Text != "" || ov.Color != white {
		t.Fatalf("second overlay %+v %v", ov, ok)
	}
}

func TestToolSwitchCommitsText(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetTool(ToolText)
	click(e, 4, 4, ButtonPrimary)
	e.SetText("xyz")
	e.SetTool(ToolPencil)
	if _, ok := e.TextOverlay(); ok {
		t.Fatal("overlay survived the tool switch")
	}
	if !inked(e, image.Rect(4, 4, 40, 30)) {
		t.Fatal("switching tools discarded the text")
	}
}

func TestCancelTextDiscards(t *testing.T) {
	e, _ := newTestEditor(t)
	before := e.Surface().Copy()
	e.OpenText(image.Pt(4, 4), black)
	e.TypeText("gone")
	e.CancelText()
	if e.CommitText() || !e.Surface().Copy().Equal(before) {
		t.Fatal("cancelled text was drawn")
	}
}

func TestBackspaceRemovesRune(t *testing.T) {
	e, _ := newTestEditor(t)
	e.OpenText(image.Pt(0, 0), black)
	e.TypeText("hé")
	e.Backspace()
	if ov, _ := e.TextOverlay(); ov.Text != "h" {
		t.Fatalf("text = %q, want %q", ov.Text, "h")
	}
	e.Backspace()
	e.Backspace()
	if ov, _ := e.TextOverlay(); ov.Text != "" {
		t.Fatalf("text = %q", ov.Text)
	}
}
