// Package capture grabs the desktop so it can be imported onto a surface.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"strconv"
	"strings"
)

type platformBackend interface {
	Monitors() ([]Monitor, error)
	// Root copies rect of the root window; an empty rect means all of it.
	Root(rect image.Rectangle) (*image.RGBA, error)
	Portal(ctx context.Context, interactive bool) (*image.RGBA, error)
	Wayland() bool
}

var backend platformBackend = newBackend()

var errNoMonitors = errors.New("no monitors available")

// Monitor describes one output in the display layout.
type Monitor struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// Monitors lists the connected outputs.
func Monitors() ([]Monitor, error) {
	return backend.Monitors()
}

// FindMonitor resolves "primary", an index (optionally prefixed with '#') or
// part of an output name.
func FindMonitor(monitors []Monitor, selector string) (Monitor, error) {
	if len(monitors) == 0 {
		return Monitor{}, errNoMonitors
	}
	sel := strings.ToLower(strings.TrimSpace(selector))
	switch sel {
	case "":
		return monitors[0], nil
	case "primary":
		for _, m := range monitors {
			if m.Primary {
				return m, nil
			}
		}
		return monitors[0], nil
	}
	if idx, err := strconv.Atoi(strings.TrimPrefix(sel, "#")); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return Monitor{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, m := range monitors {
		if strings.Contains(strings.ToLower(m.Name), sel) {
			return m, nil
		}
	}
	return Monitor{}, fmt.Errorf("monitor %q not found", selector)
}

// Screen captures the desktop, or a single monitor when display is set.
// X11 sessions are read directly; Wayland sessions, and X11 grabs that
// fail, go through the desktop portal.
func Screen(ctx context.Context, display string) (*image.RGBA, error) {
	var rect image.Rectangle
	if display != "" {
		monitors, err := backend.Monitors()
		if err != nil {
			return nil, fmt.Errorf("capture display %q: %w", display, err)
		}
		m, err := FindMonitor(monitors, display)
		if err != nil {
			return nil, err
		}
		rect = m.Rect
	}
	if !backend.Wayland() {
		img, err := backend.Root(rect)
		if err == nil {
			return img, nil
		}
		log.Printf("capture: X11 grab failed, trying portal: %v", err)
	}
	shot, err := backend.Portal(ctx, false)
	if err != nil {
		return nil, err
	}
	if rect.Empty() {
		return shot, nil
	}
	return cropToRect(shot, rect)
}

// Region lets the user pick an area through the portal.
func Region(ctx context.Context) (*image.RGBA, error) {
	return backend.Portal(ctx, true)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
