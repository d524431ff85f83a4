package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/example/shinypaint/internal/palette"
)

type palettesCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func (p *palettesCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePalettesCmd(args []string, r *root) (*palettesCmd, error) {
	fs := flag.NewFlagSet("palettes", flag.ExitOnError)
	c := &palettesCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (p *palettesCmd) Run() error {
	if name := p.fs.Arg(0); name != "" {
		pal, err := p.lookup(name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(p.stdout, pal.String())
		return err
	}
	for _, name := range palette.Embedded() {
		fmt.Fprintf(p.stdout, "%s\t(built in)\n", name)
	}
	var configured []string
	if p.config != nil {
		for name := range p.config.Palettes {
			configured = append(configured, name)
		}
	}
	sort.Strings(configured)
	for _, name := range configured {
		fmt.Fprintf(p.stdout, "%s\t(config)\n", name)
	}
	return nil
}

func (p *palettesCmd) lookup(name string) (*palette.Palette, error) {
	if p.config != nil {
		if pal, ok := p.config.Palettes[name]; ok {
			return pal, nil
		}
	}
	return palette.NewLoader().Load(name)
}
