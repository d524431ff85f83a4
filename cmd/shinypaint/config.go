package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/shinypaint/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		_, err := fmt.Fprint(c.stdout, c.config.String())
		return err
	case "save":
		path, err := config.NewLoader(version, configPathOverride).Save(c.config)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}
