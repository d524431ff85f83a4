// Package notify announces finished imports and clipboard copies as
// desktop notifications.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/example/shinypaint/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventImport fires when an import replaces the surface.
	EventImport Event = "import"
	// EventCopy fires when the surface is copied to the clipboard.
	EventCopy Event = "copy"
)

// previewSize bounds the longer side of the notification icon.
const previewSize = 128

// Preferences holds the title and per-event message templates. Templates
// take a single %s for the detail string.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built-in wording.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Templates: map[Event]string{
			EventImport: "Imported %s",
			EventCopy:   "Copied %s to clipboard",
		},
	}
}

// LoadPreferences applies SHINYPAINT_NOTIFY_* environment overrides to the
// defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SHINYPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for key, event := range map[string]Event{
		"SHINYPAINT_NOTIFY_IMPORT_TEXT": EventImport,
		"SHINYPAINT_NOTIFY_COPY_TEXT":   EventCopy,
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[event] = v
		}
	}
	return prefs
}

// Notifier sends notifications for the events it has been enabled for.
// A nil Notifier is silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	templates := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		templates[k] = v
	}
	return &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: templates},
		enabled: make(map[Event]bool),
		send:    platform.Notify,
	}
}

// Enable toggles notifications for event.
func (n *Notifier) Enable(event Event, on bool) {
	if n == nil {
		return
	}
	n.enabled[event] = on
}

// Import announces an import from source, attaching a thumbnail of img
// when possible.
func (n *Notifier) Import(source string, img image.Image) {
	if !n.enabledFor(EventImport) {
		return
	}
	var opts platform.Options
	if img != nil {
		path, cleanup, err := writePreview(img)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventImport, source, opts)
}

// Copy announces a clipboard copy.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	tmpl := strings.TrimSpace(n.prefs.Templates[event])
	if tmpl == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(tmpl, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

// thumbnail scales img so its longer side is at most previewSize.
func thumbnail(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= previewSize && h <= previewSize {
		return img
	}
	if w >= h {
		h = max(1, h*previewSize/w)
		w = previewSize
	} else {
		w = max(1, w*previewSize/h)
		h = previewSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, img, b, xdraw.Src, nil)
	return dst
}

func writePreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "shinypaint-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, thumbnail(img)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	return path, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}, nil
}
