// Package clipboard moves images between the system clipboard and an
// editor surface, and pastes text into a pending text overlay.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"
)

// ErrEmpty is returned when the clipboard holds nothing of the requested kind.
var ErrEmpty = errors.New("clipboard: no data of the requested kind")

var errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

type format int

const (
	formatText format = iota
	formatImage
)

var (
	initOnce sync.Once
	initErr  error

	// Swapped out by tests.
	readClipboard  = read
	writeClipboard = write
)

func ensureInit() error {
	initOnce.Do(func() {
		if needsDisplay && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = errNoDisplay
			return
		}
		initErr = initBackend()
	})
	return initErr
}

// WriteImage publishes img to the clipboard as PNG.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	return writeClipboard(formatImage, buf.Bytes())
}

// ReadImage decodes the clipboard image. Any format registered with the
// image package is accepted.
func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := readClipboard(formatImage)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return img, nil
}

// ReadText returns the clipboard text.
func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	data, err := readClipboard(formatText)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	return string(data), nil
}
