package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader finds palettes by name or path.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard search paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "shinypaint", "palettes"),
		SystemDir: "/usr/share/shinypaint/palettes",
	}
}

// Load resolves a palette. Order:
// 1. An existing file path.
// 2. Embedded palettes.
// 3. ConfigDir.
// 4. SystemDir.
// An empty name yields the default palette.
func (l *Loader) Load(name string) (*Palette, error) {
	if name == "" {
		return Default(), nil
	}

	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".palette") {
		filename += ".palette"
	}

	if f, err := embedded.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}

	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}

	return nil, fmt.Errorf("palette '%s' not found", name)
}

func parseFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), ".palette")
	}
	return p, nil
}
