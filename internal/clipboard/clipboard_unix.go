//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import "golang.design/x/clipboard"

const needsDisplay = true

func initBackend() error { return clipboard.Init() }

func systemFormat(f format) clipboard.Format {
	if f == formatImage {
		return clipboard.FmtImage
	}
	return clipboard.FmtText
}

func read(f format) ([]byte, error) {
	return clipboard.Read(systemFormat(f)), nil
}

func write(f format, data []byte) error {
	clipboard.Write(systemFormat(f), data)
	return nil
}
