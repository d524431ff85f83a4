package editor

// Command names accepted by Run.
const (
	CommandInvert         = "invert"
	CommandFlipHorizontal = "flip-horizontal"
	CommandFlipVertical   = "flip-vertical"
	CommandClear          = "clear"
	CommandZoomIn         = "zoom-in"
	CommandZoomOut        = "zoom-out"
	CommandZoomReset      = "zoom-reset"
)

// Commands lists every name Run understands.
func Commands() []string {
	return []string{
		CommandInvert, CommandFlipHorizontal, CommandFlipVertical, CommandClear,
		CommandZoomIn, CommandZoomOut, CommandZoomReset,
	}
}

// Run executes a named menu command and reports whether the name was known.
func (e *Editor) Run(name string) bool {
	switch name {
	case CommandInvert:
		e.Invert()
	case CommandFlipHorizontal:
		e.FlipHorizontal()
	case CommandFlipVertical:
		e.FlipVertical()
	case CommandClear:
		e.Clear()
	case CommandZoomIn:
		e.ZoomIn()
	case CommandZoomOut:
		e.ZoomOut()
	case CommandZoomReset:
		e.ResetZoom()
	default:
		return false
	}
	return true
}

// Invert replaces every pixel's RGB with its complement. Alpha is kept.
func (e *Editor) Invert() {
	e.transform(CommandInvert, func() { e.surface.Invert() })
}

// FlipHorizontal mirrors the surface left to right.
func (e *Editor) FlipHorizontal() {
	e.transform(CommandFlipHorizontal, func() { e.surface.FlipHorizontal() })
}

// FlipVertical mirrors the surface top to bottom.
func (e *Editor) FlipVertical() {
	e.transform(CommandFlipVertical, func() { e.surface.FlipVertical() })
}

// Clear fills the surface with opaque white, or the configured background.
func (e *Editor) Clear() {
	e.transform(CommandClear, func() { e.surface.Clear(e.background) })
}

// transform runs a whole-surface command. A gesture in progress is aborted
// first so its snapshot cannot undo the command later.
func (e *Editor) transform(name string, fn func()) {
	if e == nil {
		return
	}
	if e.busy() {
		Logger().Debug("command ignored while import pending", "editor", e.id, "command", name)
		return
	}
	e.abortGesture()
	fn()
	e.emit(Event{Kind: SurfaceChanged, Detail: name})
}
