package editor

import (
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultTextSize is the reference font size for committed text, in pixels.
const DefaultTextSize = 16

// TextOverlay is the single pending text entry. Anchor is the top-left
// corner of the first line in buffer coordinates.
type TextOverlay struct {
	Anchor image.Point
	Text   string
	Color  color.RGBA
}

var textFont *opentype.Font

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic("editor: parse goregular: " + err.Error())
	}
	textFont = f
}

func (e *Editor) textFace() font.Face {
	if e.face != nil {
		return e.face
	}
	face, err := opentype.NewFace(textFont, &opentype.FaceOptions{Size: e.textPx, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		Logger().Warn("text face unavailable", "editor", e.id, "size", e.textPx, "error", err)
		return nil
	}
	e.face = face
	return face
}

// TextOverlay returns the pending overlay, if any.
func (e *Editor) TextOverlay() (TextOverlay, bool) {
	if e == nil || e.text == nil {
		return TextOverlay{}, false
	}
	return *e.text, true
}

// OpenText anchors a new overlay at p. A live overlay is committed first.
func (e *Editor) OpenText(p image.Point, c color.RGBA) {
	if e == nil || e.busy() {
		return
	}
	e.CommitText()
	e.text = &TextOverlay{Anchor: p, Color: c}
	e.emit(Event{Kind: TextOpened, Tool: ToolText, Color: c, Point: p})
}

// TypeText appends s to the pending overlay.
func (e *Editor) TypeText(s string) {
	if e == nil || e.text == nil {
		return
	}
	e.text.Text += s
}

// SetText replaces the pending overlay string.
func (e *Editor) SetText(s string) {
	if e == nil || e.text == nil {
		return
	}
	e.text.Text = s
}

// Backspace removes the last rune of the pending overlay string.
func (e *Editor) Backspace() {
	if e == nil || e.text == nil || e.text.Text == "" {
		return
	}
	_, n := utf8.DecodeLastRuneInString(e.text.Text)
	e.text.Text = e.text.Text[:len(e.text.Text)-n]
}

// Blur is called when the overlay loses focus; it commits the text.
func (e *Editor) Blur() { e.CommitText() }

// CancelText closes the overlay without writing anything.
func (e *Editor) CancelText() {
	if e == nil {
		return
	}
	e.text = nil
}

// CommitText rasterizes the pending overlay and closes it. An empty string
// writes nothing. It reports whether glyphs were drawn. While an import is
// pending the overlay stays open.
func (e *Editor) CommitText() bool {
	if e == nil || e.text == nil || e.busy() {
		return false
	}
	t := e.text
	e.text = nil
	if t.Text == "" {
		Logger().Debug("empty text discarded", "editor", e.id)
		return false
	}
	face := e.textFace()
	if face == nil {
		return false
	}
	d := &font.Drawer{
		Dst:  e.surface,
		Src:  image.NewUniform(t.Color),
		Face: face,
		Dot:  fixed.P(t.Anchor.X, t.Anchor.Y).Add(fixed.Point26_6{Y: face.Metrics().Ascent}),
	}
	d.DrawString(t.Text)
	e.emit(Event{Kind: GestureCommitted, Tool: ToolText, Color: t.Color, Point: t.Anchor})
	return true
}
