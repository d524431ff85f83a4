package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/shinypaint/internal/canvas"
	"github.com/example/shinypaint/internal/clipboard"
	"github.com/example/shinypaint/internal/editor"
	"github.com/example/shinypaint/internal/imagesrc"
	"github.com/example/shinypaint/internal/palette"
)

// listFlag collects repeated -e values.
type listFlag []string

func (l *listFlag) String() string     { return strings.Join(*l, "; ") }
func (l *listFlag) Set(v string) error { *l = append(*l, v); return nil }

// runCmd replays editor commands without a window and writes the result.
type runCmd struct {
	*root
	fs          *flag.FlagSet
	exprs       listFlag
	script      string
	output      string
	width       int
	height      int
	background  string
	source      string
	events      bool
	toClipboard bool
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

func (c *runCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c := &runCmd{root: r, fs: fs, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	fs.Usage = usageFunc(c)
	fs.Var(&c.exprs, "e", "editor command to run (repeatable)")
	fs.StringVar(&c.output, "output", "", "PNG file to write, or - for stdout")
	fs.IntVar(&c.width, "width", 0, "canvas width (default from config)")
	fs.IntVar(&c.height, "height", 0, "canvas height (default from config)")
	fs.StringVar(&c.background, "background", "", "canvas background color")
	fs.StringVar(&c.source, "import", "", "image to import before running commands")
	fs.BoolVar(&c.events, "events", false, "print editor events to stderr")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		c.script = fs.Arg(0)
	default:
		return nil, &UsageError{of: c}
	}
	if len(c.exprs) == 0 && c.script == "" {
		return nil, &UsageError{of: c}
	}
	if c.output == "" && !c.toClipboard {
		return nil, fmt.Errorf("an -output file or -to-clipboard is required")
	}
	if c.width < 0 || c.height < 0 {
		return nil, fmt.Errorf("canvas size must be positive")
	}
	return c, nil
}

func (c *runCmd) newEditor() (*editor.Editor, error) {
	var opts []editor.Option
	if c.root != nil {
		opts = c.editorOptions()
	}
	if c.width > 0 || c.height > 0 {
		width, height := editorSize(c.root)
		if c.width > 0 {
			width = c.width
		}
		if c.height > 0 {
			height = c.height
		}
		opts = append(opts, editor.WithSize(width, height))
	}
	if c.background != "" {
		col, err := palette.ParseColor(c.background, c.activePalette())
		if err != nil {
			return nil, err
		}
		opts = append(opts, editor.WithBackground(col))
	}
	return editor.New(opts...), nil
}

func editorSize(r *root) (int, int) {
	if r == nil || r.config == nil {
		return canvas.DefaultWidth, canvas.DefaultHeight
	}
	return r.config.Canvas.Width, r.config.Canvas.Height
}

func (c *runCmd) activePalette() *palette.Palette {
	if c.root == nil || c.palette == nil {
		return palette.Default()
	}
	return c.palette
}

func (c *runCmd) Run() error {
	ed, err := c.newEditor()
	if err != nil {
		return err
	}
	if c.events {
		ed.Subscribe(func(ev editor.Event) {
			fmt.Fprintln(c.stderr, formatEvent(ev))
		})
	}
	s := &session{ed: ed, pal: c.activePalette(), stdin: c.stdin, out: c.stdout, root: c.root}
	if c.source != "" {
		if err := s.importFrom(context.Background(), c.source); err != nil {
			return err
		}
	}
	for _, expr := range c.exprs {
		if err := s.exec(context.Background(), expr); err != nil {
			return err
		}
	}
	if c.script != "" {
		if err := c.runScript(s); err != nil {
			return err
		}
	}
	// An open overlay is committed the same way losing focus would.
	ed.Blur()
	return c.write(ed.Image())
}

func (c *runCmd) runScript(s *session) error {
	var r io.Reader = c.stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := s.exec(context.Background(), sc.Text()); err != nil {
			return fmt.Errorf("%s:%d: %w", c.script, line, err)
		}
	}
	return sc.Err()
}

func (c *runCmd) write(img *image.RGBA) error {
	if c.output == "-" {
		if err := png.Encode(c.stdout, img); err != nil {
			return err
		}
	} else if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			return err
		}
		defer func(out *os.File) {
			if err := out.Close(); err != nil {
				log.Printf("error closing %q: %v", out.Name(), err)
			}
		}(out)
		if err := png.Encode(out, img); err != nil {
			return err
		}
		saved := c.output
		if abs, err := filepath.Abs(c.output); err == nil {
			saved = abs
		}
		fmt.Fprintf(c.stderr, "saved %s\n", saved)
	}
	if c.toClipboard {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		fmt.Fprintln(c.stderr, "copied canvas to clipboard")
		if c.root != nil {
			c.notifier.Copy("canvas")
		}
	}
	return nil
}

// session executes one command per line against an editor.
type session struct {
	ed    *editor.Editor
	pal   *palette.Palette
	stdin io.Reader
	out   io.Writer
	root  *root
}

var errArgs = errors.New("wrong number of arguments")

func (s *session) exec(ctx context.Context, line string) error {
	line = stripComment(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	if err := s.dispatch(ctx, name, args, line); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (s *session) dispatch(ctx context.Context, name string, args []string, line string) error {
	ed := s.ed
	switch name {
	case "tool":
		if len(args) != 1 {
			return errArgs
		}
		t, err := editor.ParseTool(args[0])
		if err != nil {
			return err
		}
		ed.SetTool(t)
	case "color":
		if len(args) != 2 {
			return errArgs
		}
		col, err := palette.ParseColor(args[1], s.pal)
		if err != nil {
			return err
		}
		switch strings.ToLower(args[0]) {
		case "primary":
			ed.SetPrimary(col)
		case "secondary":
			ed.SetSecondary(col)
		default:
			return fmt.Errorf("unknown slot %q", args[0])
		}
	case "swap":
		ed.SwapColors()
	case "size":
		n, err := intArg(args, 1)
		if err != nil {
			return err
		}
		if n[0] < 1 {
			return fmt.Errorf("size must be positive")
		}
		ed.SetBrushSize(n[0])
	case "tolerance":
		n, err := intArg(args, 1)
		if err != nil {
			return err
		}
		if n[0] < 0 || n[0] > 255 {
			return fmt.Errorf("tolerance must be 0-255")
		}
		ed.SetTolerance(n[0])
	case "fill-shape":
		if len(args) != 1 {
			return errArgs
		}
		on, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		ed.SetFillShapes(on)
	case "down", "click":
		btn := editor.ButtonPrimary
		if len(args) == 3 {
			if !strings.EqualFold(args[2], "secondary") {
				return fmt.Errorf("unknown button %q", args[2])
			}
			btn = editor.ButtonSecondary
			args = args[:2]
		}
		p, err := pointArg(args)
		if err != nil {
			return err
		}
		ed.DownAt(p, btn)
		if name == "click" {
			ed.UpAt(p)
		}
	case "move":
		p, err := pointArg(args)
		if err != nil {
			return err
		}
		ed.MoveTo(p)
	case "up":
		p, err := pointArg(args)
		if err != nil {
			return err
		}
		ed.UpAt(p)
	case "leave":
		ed.PointerLeave()
	case "text":
		if _, open := ed.TextOverlay(); !open {
			return fmt.Errorf("no text overlay is open")
		}
		_, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		ed.TypeText(strings.TrimSpace(rest))
	case "commit":
		ed.CommitText()
	case "cancel":
		ed.CancelText()
	case "invert":
		ed.Invert()
	case "flip":
		if len(args) != 1 {
			return errArgs
		}
		switch strings.ToLower(args[0]) {
		case "h", "horizontal":
			ed.FlipHorizontal()
		case "v", "vertical":
			ed.FlipVertical()
		default:
			return fmt.Errorf("unknown direction %q", args[0])
		}
	case "clear":
		ed.Clear()
	case "zoom":
		if len(args) != 1 {
			return errArgs
		}
		switch args[0] {
		case "in":
			ed.ZoomIn()
		case "out":
			ed.ZoomOut()
		case "reset":
			ed.ResetZoom()
		default:
			z, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid zoom %q", args[0])
			}
			ed.SetZoom(z)
		}
	case "import":
		if len(args) != 1 {
			return errArgs
		}
		return s.importFrom(ctx, args[0])
	case "sample":
		p, err := pointArg(args)
		if err != nil {
			return err
		}
		if !ed.Surface().In(p.X, p.Y) {
			return fmt.Errorf("%d,%d is outside the canvas", p.X, p.Y)
		}
		fmt.Fprintf(s.out, "%d %d %s\n", p.X, p.Y, palette.Hex(ed.At(p.X, p.Y)))
	default:
		return fmt.Errorf("unknown command")
	}
	return nil
}

func (s *session) importFrom(ctx context.Context, spec string) error {
	src, err := imagesrc.Parse(spec, s.stdin)
	if err != nil {
		return err
	}
	if err := s.ed.Import(ctx, src); err != nil {
		return fmt.Errorf("import %s: %w", spec, err)
	}
	if s.root != nil {
		s.root.notifier.Import(spec, s.ed.Image())
	}
	return nil
}

// stripComment drops a '#' comment. A '#' glued to a word, as in a hex
// color, is not a comment.
func stripComment(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}
	for i := 1; i < len(line); i++ {
		if line[i] != '#' || (line[i-1] != ' ' && line[i-1] != '\t') {
			continue
		}
		if i == len(line)-1 || line[i+1] == ' ' || line[i+1] == '\t' {
			return line[:i]
		}
	}
	return line
}

func intArg(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, errArgs
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func pointArg(args []string) (image.Point, error) {
	v, err := intArg(args, 2)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(v[0], v[1]), nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func formatEvent(ev editor.Event) string {
	var sb strings.Builder
	sb.WriteString(ev.Kind.String())
	switch ev.Kind {
	case editor.StrokeStarted, editor.GestureCommitted, editor.GestureCancelled:
		fmt.Fprintf(&sb, " tool=%s", ev.Tool)
	case editor.ColorSampled:
		fmt.Fprintf(&sb, " %s=%s", ev.Button, palette.Hex(ev.Color))
	case editor.ZoomChanged:
		fmt.Fprintf(&sb, " zoom=%g", ev.Zoom)
	}
	if ev.Point != (image.Point{}) {
		fmt.Fprintf(&sb, " at=%d,%d", ev.Point.X, ev.Point.Y)
	}
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " %s", ev.Detail)
	}
	return sb.String()
}
