// Package imagesrc provides editor import sources: image files and
// streams, the clipboard and the screen.
package imagesrc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/example/shinypaint/internal/capture"
	"github.com/example/shinypaint/internal/clipboard"
	"github.com/example/shinypaint/internal/editor"
)

// ErrNotImage is returned for input no registered decoder recognises.
var ErrNotImage = errors.New("imagesrc: not a recognised image")

// Decode reads one image from r.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if errors.Is(err, image.ErrFormat) {
		return nil, "", ErrNotImage
	}
	if err != nil {
		return nil, format, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, format, nil
}

// Formats lists the names of the registered decoders.
func Formats() []string {
	return []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"}
}

// File decodes the image at path.
func File(path string) editor.Source {
	return func(ctx context.Context) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return img, nil
	}
}

// Reader decodes the image read from r. The reader is consumed on the
// import goroutine.
func Reader(r io.Reader) editor.Source {
	return func(ctx context.Context) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, _, err := Decode(r)
		return img, err
	}
}

// Clipboard pastes the clipboard image.
func Clipboard() editor.Source {
	return func(ctx context.Context) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return clipboard.ReadImage()
	}
}

// Screen captures the desktop, or one monitor when display is set.
func Screen(display string) editor.Source {
	return func(ctx context.Context) (image.Image, error) {
		img, err := capture.Screen(ctx, display)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
}

// Region captures an area the user selects.
func Region() editor.Source {
	return func(ctx context.Context) (image.Image, error) {
		img, err := capture.Region(ctx)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
}

// Parse resolves an import spec: "clipboard", "screen", "screen:DISPLAY",
// "region", "-" for stdin, or a file path.
func Parse(spec string, stdin io.Reader) (editor.Source, error) {
	switch {
	case spec == "":
		return nil, errors.New("empty import source")
	case spec == "clipboard":
		return Clipboard(), nil
	case spec == "screen":
		return Screen(""), nil
	case spec == "region":
		return Region(), nil
	case spec == "-":
		if stdin == nil {
			stdin = os.Stdin
		}
		return Reader(stdin), nil
	}
	if display, ok := strings.CutPrefix(spec, "screen:"); ok {
		return Screen(display), nil
	}
	return File(spec), nil
}
