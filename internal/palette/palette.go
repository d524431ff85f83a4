package palette

import (
	"embed"
	"fmt"
	"image/color"
	"log"
	"strings"
)

// DefaultName is the palette used when no other is configured.
const DefaultName = "classic"

//go:embed defaults/*.palette
var embedded embed.FS

// Entry is a named palette color.
type Entry struct {
	Name  string
	Color color.RGBA
}

// Palette is an ordered, fixed list of selectable colors.
type Palette struct {
	Name    string
	Entries []Entry
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// At returns the color at idx, clamping idx into range. An empty palette
// yields opaque black.
func (p *Palette) At(idx int) color.RGBA {
	if p.Len() == 0 {
		return color.RGBA{A: 255}
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.Entries) {
		idx = len(p.Entries) - 1
	}
	return p.Entries[idx].Color
}

// Colors returns a copy of the palette colors in order.
func (p *Palette) Colors() []color.RGBA {
	out := make([]color.RGBA, p.Len())
	for i := range out {
		out[i] = p.Entries[i].Color
	}
	return out
}

// Lookup finds an entry by case-insensitive name.
func (p *Palette) Lookup(name string) (color.RGBA, bool) {
	if p == nil {
		return color.RGBA{}, false
	}
	for _, e := range p.Entries {
		if strings.EqualFold(e.Name, name) {
			return e.Color, true
		}
	}
	return color.RGBA{}, false
}

// Index returns the position of c in the palette or -1.
func (p *Palette) Index(c color.RGBA) int {
	if p == nil {
		return -1
	}
	for i, e := range p.Entries {
		if e.Color == c {
			return i
		}
	}
	return -1
}

// String renders the palette in the same format Parse reads.
func (p *Palette) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", p.Name)
	for _, e := range p.Entries {
		fmt.Fprintf(&sb, "%s: %s\n", e.Name, Hex(e.Color))
	}
	return sb.String()
}

// Embedded returns the names of the built-in palettes.
func Embedded() []string {
	entries, err := embedded.ReadDir("defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".palette"))
	}
	return names
}

// Default returns the built-in classic palette.
func Default() *Palette {
	f, err := embedded.Open("defaults/" + DefaultName + ".palette")
	if err == nil {
		defer f.Close()
		p, perr := Parse(f)
		if perr == nil {
			return p
		}
		err = perr
	}
	log.Printf("palette: loading %s: %v", DefaultName, err)
	return &Palette{Name: "fallback", Entries: []Entry{
		{Name: "Black", Color: color.RGBA{0, 0, 0, 255}},
		{Name: "White", Color: color.RGBA{255, 255, 255, 255}},
	}}
}
