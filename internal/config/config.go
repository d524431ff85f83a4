package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/shinypaint/internal/canvas"
	"github.com/example/shinypaint/internal/palette"
)

// Canvas holds surface settings.
type Canvas struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Notify holds notification settings.
type Notify struct {
	Import bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Palette   string
	BrushSize int
	Tolerance int
	Zoom      float64
	Canvas    Canvas
	Notify    Notify
	Palettes  map[string]*palette.Palette
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Palette:   "", // empty falls back to Env/Default
		BrushSize: 2,
		Tolerance: canvas.DefaultTolerance,
		Zoom:      1,
		Canvas: Canvas{
			Width:      canvas.DefaultWidth,
			Height:     canvas.DefaultHeight,
			Background: color.RGBA{255, 255, 255, 255},
		},
		Palettes: make(map[string]*palette.Palette),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Palette != "" {
		fmt.Fprintf(&sb, "palette = %s\n", c.Palette)
	}
	fmt.Fprintf(&sb, "brush_size = %d\n", c.BrushSize)
	fmt.Fprintf(&sb, "tolerance = %d\n", c.Tolerance)
	fmt.Fprintf(&sb, "zoom = %g\n", c.Zoom)
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "background = %s\n", palette.Hex(c.Canvas.Background))
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "import = %v\n", c.Notify.Import)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var names []string
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := c.Palettes[name]
		fmt.Fprintf(&sb, "[palette.%s]\n", name)
		for _, e := range p.Entries {
			fmt.Fprintf(&sb, "%s: %s\n", e.Name, palette.Hex(e.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
