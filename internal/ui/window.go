// Package ui hosts an editor in a shiny window. It translates mouse and
// keyboard input into editor calls and renders the surface; it holds no
// drawing logic of its own.
package ui

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/shinypaint/internal/clipboard"
	"github.com/example/shinypaint/internal/editor"
	"github.com/example/shinypaint/internal/imagesrc"
	"github.com/example/shinypaint/internal/notify"
	"github.com/example/shinypaint/internal/palette"
)

const messageTimeout = 3 * time.Second

// importDone is posted to the window when a background decode finishes.
type importDone struct {
	imp    *editor.Import
	source string
}

// Window is the presentation collaborator for one editor.
type Window struct {
	ed       *editor.Editor
	pal      *palette.Palette
	notifier *notify.Notifier
	title    string
	initial  []string

	layout       layout
	pressed      bool
	message      string
	messageUntil time.Time
	send         func(any)
	quit         bool
}

// Option configures a Window.
type Option func(*Window)

// WithNotifier sends desktop notifications for imports and copies.
func WithNotifier(n *notify.Notifier) Option {
	return func(w *Window) { w.notifier = n }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(w *Window) { w.title = title }
}

// WithImport queues an import source (see imagesrc.Parse) to run once
// the window is open.
func WithImport(source string) Option {
	return func(w *Window) {
		if source != "" {
			w.initial = append(w.initial, source)
		}
	}
}

// New creates a window for ed using pal for the swatch row.
func New(ed *editor.Editor, pal *palette.Palette, opts ...Option) *Window {
	w := &Window{ed: ed, pal: pal, title: "ShinyPaint", send: func(any) {}}
	for _, opt := range opts {
		opt(w)
	}
	ed.Subscribe(w.onEditorEvent)
	return w
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() { driver.Main(w.main) }

func (w *Window) main(s screen.Screen) {
	sz := windowSize(w.ed.Size(), len(editor.Tools()))
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: sz.X, Height: sz.Y, Title: w.title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer win.Release()
	w.send = win.Send
	w.resize(sz)

	for _, src := range w.initial {
		w.startImport(src)
	}

	for !w.quit {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				w.ed.Blur()
				win.Send(paint.Event{})
			}
		case size.Event:
			w.resize(image.Pt(e.WidthPx, e.HeightPx))
			win.Send(paint.Event{})
		case paint.Event:
			if e.External {
				continue
			}
			w.paint(s, win)
		case mouse.Event:
			if w.handleMouse(e) {
				win.Send(paint.Event{})
			}
		case key.Event:
			if w.handleKey(e) {
				win.Send(paint.Event{})
			}
		case importDone:
			w.finishImport(e)
			win.Send(paint.Event{})
		case error:
			log.Print(e)
		}
	}
}

func (w *Window) resize(sz image.Point) {
	w.layout = newLayout(sz, len(editor.Tools()), w.pal.Len())
	w.ed.SetOrigin(w.layout.origin())
}

func (w *Window) paint(s screen.Screen, win screen.Window) {
	b, err := s.NewBuffer(w.layout.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	msg := w.message
	if time.Now().After(w.messageUntil) {
		msg = ""
	}
	drawFrame(b.RGBA(), snapshotFrame(w.layout, w.ed, w.pal, msg))
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

func (w *Window) say(format string, args ...any) {
	w.message = fmt.Sprintf(format, args...)
	w.messageUntil = time.Now().Add(messageTimeout)
}

func (w *Window) onEditorEvent(ev editor.Event) {
	switch ev.Kind {
	case editor.ColorSampled:
		w.say("%s = %s", ev.Button, palette.Hex(ev.Color))
	case editor.ZoomChanged:
		w.say("zoom %.0f%%", ev.Zoom*100)
	}
}

// handleMouse reports whether the window needs repainting.
func (w *Window) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	onSurface := p.In(w.ed.Viewport().ScreenRect(w.ed.Size()))

	switch e.Direction {
	case mouse.DirPress:
		btn, ok := buttonOf(e.Button)
		if !ok {
			return false
		}
		if i := hit(w.layout.tools, p); i >= 0 {
			w.ed.SetTool(editor.Tool(i))
			return true
		}
		if i := hit(w.layout.swatches, p); i >= 0 {
			if btn == editor.ButtonSecondary {
				w.ed.SetSecondary(w.pal.At(i))
			} else {
				w.ed.SetPrimary(w.pal.At(i))
			}
			return true
		}
		if !onSurface {
			return false
		}
		w.pressed = true
		w.ed.PointerDown(float64(e.X), float64(e.Y), btn)
		return true
	case mouse.DirRelease:
		if !w.pressed {
			return false
		}
		w.pressed = false
		w.ed.PointerUp(float64(e.X), float64(e.Y))
		return true
	case mouse.DirNone:
		if w.pressed && !onSurface {
			w.pressed = false
			w.ed.PointerLeave()
			return true
		}
		if w.pressed {
			w.ed.PointerMove(float64(e.X), float64(e.Y))
			return true
		}
		if !onSurface {
			w.ed.PointerLeave()
		} else {
			w.ed.PointerMove(float64(e.X), float64(e.Y))
		}
		return true
	}
	return false
}

func buttonOf(b mouse.Button) (editor.Button, bool) {
	switch b {
	case mouse.ButtonLeft:
		return editor.ButtonPrimary, true
	case mouse.ButtonRight:
		return editor.ButtonSecondary, true
	}
	return 0, false
}

// handleKey reports whether the window needs repainting.
func (w *Window) handleKey(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	if _, open := w.ed.TextOverlay(); open && e.Modifiers&key.ModControl == 0 {
		switch e.Code {
		case key.CodeReturnEnter:
			w.ed.CommitText()
		case key.CodeEscape:
			w.ed.CancelText()
		case key.CodeDeleteBackspace:
			w.ed.Backspace()
		default:
			if e.Rune <= 0 {
				return false
			}
			w.ed.TypeText(string(e.Rune))
		}
		return true
	}
	a, ok := actionFor(e)
	if !ok {
		return false
	}
	w.perform(a)
	return true
}

func (w *Window) perform(a action) {
	ed := w.ed
	switch a.name {
	case actionTool:
		ed.SetTool(a.tool)
	case actionBrush:
		ed.SetBrushSize(a.size)
	case actionZoomIn:
		ed.ZoomIn()
	case actionZoomOut:
		ed.ZoomOut()
	case actionZoomReset:
		ed.ResetZoom()
	case actionSwap:
		ed.SwapColors()
	case actionFillShapes:
		ed.SetFillShapes(!ed.Settings().FillShapes)
	case actionInvert, actionFlipH, actionFlipV, actionClear:
		ed.Run(a.name)
	case actionPaste:
		if _, open := ed.TextOverlay(); open {
			if s, err := clipboard.ReadText(); err == nil {
				ed.TypeText(s)
				return
			}
		}
		w.startImport("clipboard")
	case actionCopy:
		if err := clipboard.WriteImage(ed.Image()); err != nil {
			log.Printf("copy: %v", err)
			w.say("copy failed")
			return
		}
		w.notifier.Copy("canvas")
		w.say("copied")
	case actionScreen:
		w.startImport("screen")
	case actionCancel:
		if ed.Importing() {
			ed.CancelImport()
			w.say("import cancelled")
		}
	case actionQuit:
		w.quit = true
	}
}

// startImport decodes source off the event goroutine and posts the result
// back as an importDone event.
func (w *Window) startImport(source string) {
	src, err := imagesrc.Parse(source, nil)
	if err != nil {
		log.Printf("import %s: %v", source, err)
		return
	}
	imp, err := w.ed.RequestImport(context.Background(), src)
	if err != nil {
		log.Printf("import %s: %v", source, err)
		w.say("import busy")
		return
	}
	w.say("importing %s", source)
	send := w.send
	go func() {
		<-imp.Done()
		send(importDone{imp: imp, source: source})
	}()
}

func (w *Window) finishImport(d importDone) {
	if !w.ed.FinishImport(d.imp) {
		if err := d.imp.Err(); err != nil {
			log.Printf("import %s: %v", d.source, err)
			w.say("import failed")
		}
		return
	}
	w.say("imported %s", d.source)
	w.notifier.Import(d.source, w.ed.Image())
}
