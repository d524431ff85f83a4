//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import (
	"context"
	"fmt"
	"image"
)

type unsupportedBackend struct{}

func newBackend() platformBackend { return unsupportedBackend{} }

func (unsupportedBackend) Monitors() ([]Monitor, error) {
	return nil, fmt.Errorf("monitor listing is not supported on this platform")
}

func (unsupportedBackend) Root(image.Rectangle) (*image.RGBA, error) {
	return nil, fmt.Errorf("screen capture is not supported on this platform")
}

func (unsupportedBackend) Portal(context.Context, bool) (*image.RGBA, error) {
	return nil, fmt.Errorf("portal screenshot is not supported on this platform")
}

func (unsupportedBackend) Wayland() bool { return false }
