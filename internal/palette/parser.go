package palette

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a palette definition from an io.Reader.
// The format is one "ColorName: #RRGGBB" (or #RRGGBBAA) pair per line, kept in
// file order. A "Name:" line names the palette itself.
func Parse(r io.Reader) (*Palette, error) {
	p := &Palette{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := p.SetField(key, value); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(p.Entries) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", p.Name)
	}
	return p, nil
}

// SetField applies one "key: value" line to the palette.
func (p *Palette) SetField(key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
		value = value[1 : len(value)-1]
	}
	if strings.EqualFold(key, "Name") {
		p.Name = value
		return nil
	}
	col, err := ParseHex(value)
	if err != nil {
		return fmt.Errorf("invalid color for key %s: %w", key, err)
	}
	for i := range p.Entries {
		if strings.EqualFold(p.Entries[i].Name, key) {
			p.Entries[i].Color = col
			return nil
		}
	}
	p.Entries = append(p.Entries, Entry{Name: key, Color: col})
	return nil
}
