package editor

import (
	"image"
	"image/color"
)

// EventKind classifies engine notifications.
type EventKind int

const (
	// StrokeStarted fires when a freehand or shape gesture begins.
	StrokeStarted EventKind = iota
	// GestureCommitted fires when pixels from a gesture, fill or text
	// commit become permanent.
	GestureCommitted
	// GestureCancelled fires when a gesture is aborted without commit.
	GestureCancelled
	// ColorSampled fires when the eyedropper assigns a color.
	ColorSampled
	// SurfaceReplaced fires when an import overwrites the surface.
	SurfaceReplaced
	// SurfaceChanged fires after a whole-surface command such as invert.
	SurfaceChanged
	// TextOpened fires when a text overlay is anchored.
	TextOpened
	// PreviewUpdated fires after each shape preview frame.
	PreviewUpdated
	// ZoomChanged fires when the zoom factor changes.
	ZoomChanged
	// SettingsChanged fires when the tool, colors or brush size change.
	SettingsChanged
)

var eventNames = [...]string{
	StrokeStarted:    "stroke-started",
	GestureCommitted: "gesture-committed",
	GestureCancelled: "gesture-cancelled",
	ColorSampled:     "color-sampled",
	SurfaceReplaced:  "surface-replaced",
	SurfaceChanged:   "surface-changed",
	TextOpened:       "text-opened",
	PreviewUpdated:   "preview-updated",
	ZoomChanged:      "zoom-changed",
	SettingsChanged:  "settings-changed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event describes something the engine did. Fields not relevant to a kind
// are left zero.
type Event struct {
	Kind   EventKind
	Editor string
	Tool   Tool
	Button Button
	Color  color.RGBA
	Point  image.Point
	Zoom   float64
	// Detail carries free-form context such as the command name.
	Detail string
}

// Listener receives engine events synchronously on the goroutine that caused
// them.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it.
func (e *Editor) Subscribe(l Listener) (unsubscribe func()) {
	if e == nil || l == nil {
		return func() {}
	}
	e.nextSub++
	id := e.nextSub
	e.listeners = append(e.listeners, subscription{id: id, fn: l})
	return func() {
		for i, s := range e.listeners {
			if s.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

func (e *Editor) emit(ev Event) {
	ev.Editor = e.id
	for _, s := range e.listeners {
		s.fn(ev)
	}
}
