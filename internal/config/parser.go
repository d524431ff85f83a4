package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/shinypaint/internal/palette"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *palette.Palette

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			current = nil
			if name, ok := strings.CutPrefix(section, "palette."); ok {
				current = &palette.Palette{Name: name}
				cfg.Palettes[name] = current
			}
			continue
		}

		// Key = Value or Key: Value. Palette entries use ':' so hex values
		// never collide with '='.
		var key, value string
		var ok bool
		if current != nil {
			key, value, ok = strings.Cut(line, ":")
			if !ok {
				key, value, ok = strings.Cut(line, "=")
			}
		} else {
			key, value, ok = strings.Cut(line, "=")
			if !ok {
				key, value, ok = strings.Cut(line, ":")
			}
		}
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case current != nil:
			err = current.SetField(key, value)
		case section == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case section == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			if section == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", section, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for name, p := range cfg.Palettes {
		if p.Len() == 0 {
			return nil, fmt.Errorf("error in section [palette.%s]: no colors", name)
		}
	}
	return cfg, nil
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "palette":
		cfg.Palette = value
	case "brush_size":
		n, err := positiveInt(key, value)
		if err != nil {
			return err
		}
		cfg.BrushSize = n
	case "tolerance":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 255 {
			return fmt.Errorf("invalid tolerance %q: must be 0-255", value)
		}
		cfg.Tolerance = n
	case "zoom":
		z, err := strconv.ParseFloat(value, 64)
		if err != nil || z <= 0 {
			return fmt.Errorf("invalid zoom %q", value)
		}
		cfg.Zoom = z
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	switch strings.ToLower(key) {
	case "width":
		n, err := positiveInt(key, value)
		if err != nil {
			return err
		}
		c.Width = n
	case "height":
		n, err := positiveInt(key, value)
		if err != nil {
			return err
		}
		c.Height = n
	case "background":
		col, err := palette.ParseHex(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		c.Background = col
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "import":
		n.Import = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func positiveInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return n, nil
}
