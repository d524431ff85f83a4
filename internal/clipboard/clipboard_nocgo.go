//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import "errors"

const needsDisplay = true

var errCGODisabled = errors.New("clipboard operations require cgo support")

func initBackend() error { return errCGODisabled }

func read(format) ([]byte, error) { return nil, errCGODisabled }

func write(format, []byte) error { return errCGODisabled }
