package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/shinypaint/internal/editor"
	"github.com/example/shinypaint/internal/palette"
)

var (
	chromeColor   = color.RGBA{212, 208, 200, 255}
	backdropColor = color.RGBA{128, 128, 128, 255}
	activeColor   = color.RGBA{255, 255, 255, 255}
	borderColor   = color.RGBA{64, 64, 64, 255}
)

// frame is everything drawFrame needs, captured on the event goroutine.
type frame struct {
	layout   layout
	surface  *image.RGBA
	view     editor.Viewport
	tool     editor.Tool
	settings editor.Settings
	colors   []color.RGBA
	overlay  *editor.TextOverlay
	cursor   image.Point
	inside   bool
	message  string
}

func snapshotFrame(l layout, ed *editor.Editor, pal *palette.Palette, message string) frame {
	f := frame{
		layout:   l,
		surface:  ed.Image(),
		view:     ed.Viewport(),
		tool:     ed.Tool(),
		settings: ed.Settings(),
		colors:   pal.Colors(),
		message:  message,
	}
	if ov, ok := ed.TextOverlay(); ok {
		f.overlay = &ov
	}
	f.cursor, f.inside = ed.Cursor()
	return f
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(dst *image.RGBA, r image.Rectangle, c color.Color) {
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func label(dst *image.RGBA, p image.Point, s string, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(p.X, p.Y)}
	d.DrawString(s)
}

// drawFrame renders the chrome and the zoomed surface into dst.
func drawFrame(dst *image.RGBA, f frame) {
	l := f.layout
	fill(dst, dst.Bounds(), chromeColor)
	fill(dst, l.canvas, backdropColor)

	if f.surface != nil {
		r := f.view.ScreenRect(f.surface.Bounds().Size())
		xdraw.NearestNeighbor.Scale(dst, r, f.surface, f.surface.Bounds(), draw.Src, nil)
		outline(dst, r.Inset(-1), borderColor)
	}
	if f.overlay != nil {
		x, y := f.view.ToScreen(f.overlay.Anchor)
		label(dst, image.Pt(int(x), int(y)+basicfont.Face7x13.Ascent), f.overlay.Text+"|", f.overlay.Color)
	}

	for i, r := range l.tools {
		if editor.Tool(i) == f.tool {
			fill(dst, r, activeColor)
		}
		outline(dst, r, borderColor)
		label(dst, image.Pt(r.Min.X+4, r.Min.Y+16), editor.Tool(i).String(), color.Black)
	}

	mid := l.colors.Min.X + l.colors.Dx()/2
	fill(dst, image.Rect(l.colors.Min.X, l.colors.Min.Y, mid, l.colors.Max.Y), f.settings.Primary)
	fill(dst, image.Rect(mid, l.colors.Min.Y, l.colors.Max.X, l.colors.Max.Y), f.settings.Secondary)
	outline(dst, l.colors, borderColor)
	for i, r := range l.swatches {
		if i >= len(f.colors) {
			break
		}
		fill(dst, r, f.colors[i])
		outline(dst, r, borderColor)
	}

	fill(dst, l.status, chromeColor)
	label(dst, image.Pt(l.status.Min.X+4, l.status.Min.Y+14), statusLine(f), color.Black)
}

func statusLine(f frame) string {
	pos := "-"
	if f.inside {
		pos = fmt.Sprintf("%d,%d", f.cursor.X, f.cursor.Y)
	}
	fillMark := ""
	if f.settings.FillShapes {
		fillMark = " filled"
	}
	s := fmt.Sprintf("%s%s size %d  %s/%s  %s  %.0f%%",
		f.tool, fillMark, f.settings.BrushSize,
		palette.Hex(f.settings.Primary), palette.Hex(f.settings.Secondary),
		pos, f.view.Zoom*100)
	if f.message != "" {
		s += "  " + f.message
	}
	return s
}
