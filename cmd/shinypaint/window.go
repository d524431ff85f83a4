package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/example/shinypaint/internal/editor"
	"github.com/example/shinypaint/internal/palette"
	"github.com/example/shinypaint/internal/ui"
)

// windowCmd opens the interactive editor.
type windowCmd struct {
	*root
	fs         *flag.FlagSet
	width      int
	height     int
	background string
	zoom       float64
	source     string
	title      string
}

func (w *windowCmd) FlagSet() *flag.FlagSet {
	return w.fs
}

func parseWindowCmd(args []string, r *root) (*windowCmd, error) {
	fs := flag.NewFlagSet("window", flag.ExitOnError)
	w := &windowCmd{root: r, fs: fs}
	fs.Usage = usageFunc(w)
	fs.IntVar(&w.width, "width", 0, "canvas width (default from config)")
	fs.IntVar(&w.height, "height", 0, "canvas height (default from config)")
	fs.StringVar(&w.background, "background", "", "canvas background color")
	fs.Float64Var(&w.zoom, "zoom", 0, "initial zoom factor")
	fs.StringVar(&w.source, "import", "", "image to import on start: file, clipboard, screen[:N] or region")
	fs.StringVar(&w.title, "title", "ShinyPaint", "window title")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: w}
	}
	if w.width < 0 || w.height < 0 {
		return nil, fmt.Errorf("canvas size must be positive")
	}
	return w, nil
}

// options layers the command line over the configured defaults.
func (w *windowCmd) options() ([]editor.Option, error) {
	opts := w.editorOptions()
	cfg := w.config
	if w.width > 0 || w.height > 0 {
		width, height := cfg.Canvas.Width, cfg.Canvas.Height
		if w.width > 0 {
			width = w.width
		}
		if w.height > 0 {
			height = w.height
		}
		opts = append(opts, editor.WithSize(width, height))
	}
	if w.background != "" {
		c, err := palette.ParseColor(w.background, w.palette)
		if err != nil {
			return nil, err
		}
		opts = append(opts, editor.WithBackground(c))
	}
	if w.zoom > 0 {
		opts = append(opts, editor.WithZoom(w.zoom))
	}
	if w.palette.Len() > 1 {
		opts = append(opts, editor.WithColors(w.palette.At(0), paperColor(w.palette)))
	}
	return opts, nil
}

// paperColor prefers a palette's white as the secondary color.
func paperColor(p *palette.Palette) color.RGBA {
	white := color.RGBA{255, 255, 255, 255}
	if p.Index(white) >= 0 {
		return white
	}
	return p.At(1)
}

func (w *windowCmd) Run() error {
	opts, err := w.options()
	if err != nil {
		return err
	}
	ed := editor.New(opts...)
	win := ui.New(ed, w.palette,
		ui.WithTitle(w.title),
		ui.WithNotifier(w.notifier),
		ui.WithImport(w.source),
	)
	win.Run()
	return nil
}
