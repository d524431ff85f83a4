package editor

import (
	"context"
	"errors"
	"image"
)

// ErrImportPending is returned by RequestImport while another import is
// still decoding.
var ErrImportPending = errors.New("editor: import already pending")

var errNoImage = errors.New("editor: source returned no image")

// Source produces a decoded image. It runs on its own goroutine and must
// not touch the editor.
type Source func(ctx context.Context) (image.Image, error)

// ImageSource wraps an already decoded image.
func ImageSource(img image.Image) Source {
	return func(context.Context) (image.Image, error) { return img, nil }
}

// Import is an outstanding decode started by RequestImport.
type Import struct {
	done   chan struct{}
	img    image.Image
	err    error
	cancel context.CancelFunc
}

// Done is closed once decoding has finished, successfully or not.
func (i *Import) Done() <-chan struct{} { return i.done }

// Err reports the decode error. It is only meaningful after Done is closed.
func (i *Import) Err() error {
	select {
	case <-i.done:
		return i.err
	default:
		return nil
	}
}

// RequestImport starts decoding src in the background. The surface is not
// touched until FinishImport is called with the returned Import after Done
// is closed. Pointer input and commands are ignored in the meantime.
func (e *Editor) RequestImport(ctx context.Context, src Source) (*Import, error) {
	if e == nil {
		return nil, errors.New("editor: nil editor")
	}
	if e.pending != nil {
		return nil, ErrImportPending
	}
	e.abortGesture()
	ctx, cancel := context.WithCancel(ctx)
	imp := &Import{done: make(chan struct{}), cancel: cancel}
	e.pending = imp
	go func() {
		defer close(imp.done)
		defer cancel()
		img, err := src(ctx)
		if err == nil && (img == nil || img.Bounds().Empty()) {
			err = errNoImage
		}
		imp.img, imp.err = img, err
	}()
	return imp, nil
}

// Importing reports whether a decode is outstanding.
func (e *Editor) Importing() bool {
	return e != nil && e.pending != nil
}

// CancelImport abandons the outstanding decode. The surface is untouched.
func (e *Editor) CancelImport() {
	if e == nil || e.pending == nil {
		return
	}
	e.pending.cancel()
	e.pending = nil
}

// FinishImport applies a completed import. It never blocks: if imp is not
// the outstanding import or is still decoding it returns false and nothing
// changes. A failed decode clears the pending state and leaves the surface
// as it was.
func (e *Editor) FinishImport(imp *Import) bool {
	if e == nil || imp == nil || e.pending != imp {
		return false
	}
	select {
	case <-imp.done:
	default:
		return false
	}
	e.pending = nil
	if imp.err != nil {
		Logger().Warn("import rejected", "editor", e.id, "error", imp.err)
		return false
	}
	e.CancelText()
	e.surface.Blit(imp.img, e.surface.Bounds())
	e.emit(Event{Kind: SurfaceReplaced})
	return true
}

// Import runs src and applies the result, waiting for the decode to finish
// or ctx to end.
func (e *Editor) Import(ctx context.Context, src Source) error {
	imp, err := e.RequestImport(ctx, src)
	if err != nil {
		return err
	}
	select {
	case <-imp.Done():
	case <-ctx.Done():
		e.CancelImport()
		return ctx.Err()
	}
	e.FinishImport(imp)
	return imp.Err()
}
