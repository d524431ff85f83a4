package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/shinypaint/internal/config"
	"github.com/example/shinypaint/internal/editor"
	"github.com/example/shinypaint/internal/notify"
	"github.com/example/shinypaint/internal/palette"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	importAlerts bool
	copyAlerts   bool
	verbose      bool
	paletteName  string
	palette      *palette.Palette
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("shinypaint", flag.ExitOnError),
		program:  "shinypaint",
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
	}
	r.fs.BoolVar(&r.importAlerts, "notify-import", cfg.Notify.Import, "show a desktop notification after an import replaces the canvas")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.verbose, "v", false, "log editor diagnostics to stderr")

	// Precedence: CLI > Env > Config > Default. The flag defaults to "" so
	// Run can tell whether it was given.
	r.fs.StringVar(&r.paletteName, "palette", "", "palette to use (classic, web16, a config palette or a file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventImport, r.importAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	if r.verbose {
		editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	r.palette = r.resolvePalette()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "window":
		cmd, err = parseWindowCmd(subArgs, r)
	case "run":
		cmd, err = parseRunCmd(subArgs, r)
	case "palettes":
		cmd, err = parsePalettesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolvePalette looks the palette up in the config file first, then by
// name or path through the palette loader.
func (r *root) resolvePalette() *palette.Palette {
	name := r.paletteName
	if name == "" {
		name = os.Getenv("SHINYPAINT_PALETTE")
	}
	if name == "" && r.config != nil {
		name = r.config.Palette
	}
	if r.config != nil {
		if p, ok := r.config.Palettes[name]; ok {
			return p
		}
	}
	p, err := palette.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != palette.DefaultName {
			fmt.Fprintf(os.Stderr, "warning: failed to load palette '%s': %v. using default.\n", name, err)
		}
		return palette.Default()
	}
	return p
}

// editorOptions applies the configured canvas and tool defaults.
func (r *root) editorOptions() []editor.Option {
	cfg := r.config
	if cfg == nil {
		cfg = config.New()
	}
	return []editor.Option{
		editor.WithSize(cfg.Canvas.Width, cfg.Canvas.Height),
		editor.WithBackground(cfg.Canvas.Background),
		editor.WithBrushSize(cfg.BrushSize),
		editor.WithTolerance(cfg.Tolerance),
		editor.WithZoom(cfg.Zoom),
	}
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
