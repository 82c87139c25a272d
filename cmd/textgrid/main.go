// Command textgrid lays text out on a character grid and prints the result.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/ryanlewis/textgrid"
	"github.com/ryanlewis/textgrid/internal/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitPartial = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// flagValues receives the command line before it is merged into a config.
type flagValues struct {
	configPath string
	logLevel   string

	width, height int
	template      string
	mapTemplate   bool
	marker        string

	direction, justify, anchor string

	noWrap, noTruncate, noSpacing, noLookAhead bool
	blank                                      string

	dump      bool
	separator string

	debugMode   bool
	debugFile   string
	debugPretty bool

	showVersion bool
	showHelp    bool
}

func newFlagSet(v *flagValues, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("textgrid", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	def := defaultConfig()
	fs.StringVarP(&v.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&v.logLevel, "log-level", def.Logging.Level, "Console log level: none, normal or debug")

	fs.IntVarP(&v.width, "width", "w", def.Width, "Grid width in cells")
	fs.IntVarP(&v.height, "height", "H", def.Height, "Grid height in cells")
	fs.StringVarP(&v.template, "template", "t", "", "Template file to start from (overrides width and height)")
	fs.BoolVar(&v.mapTemplate, "map", false, "Read the template as an occupancy map instead of content")
	fs.StringVar(&v.marker, "marker", def.Marker, "Rune marking free cells in a content template")

	fs.StringVarP(&v.direction, "direction", "d", def.Direction, "Fill direction: ltr, rtl or col")
	fs.StringVarP(&v.justify, "justify", "j", def.Justify, "Justification: near, far, center or full")
	fs.StringVar(&v.anchor, "anchor", def.Anchor, "Anchor: none or bottom")

	fs.BoolVar(&v.noWrap, "no-wrap", false, "Do not wrap onto following lines")
	fs.BoolVar(&v.noTruncate, "no-truncate", false, "Do not cut words that do not fit")
	fs.BoolVar(&v.noSpacing, "no-spacing", false, "Do not keep a gap between separate pieces of text")
	fs.BoolVar(&v.noLookAhead, "no-lookahead", false, "Do not move words to a later run with room")
	fs.StringVar(&v.blank, "blank", "", "Rune written as a space that never breaks a word")

	fs.BoolVar(&v.dump, "dump", false, "Print content and occupancy map side by side")
	fs.StringVar(&v.separator, "separator", def.Separator, "Row separator")

	fs.BoolVar(&v.debugMode, "debug", false, "Enable write tracing (outputs to stderr)")
	fs.StringVar(&v.debugFile, "debug-file", "", "Write tracing to file instead of stderr")
	fs.BoolVar(&v.debugPretty, "debug-pretty", false, "Use pretty format for tracing (default: JSON)")

	fs.BoolVarP(&v.showVersion, "version", "v", false, "Show version information")
	fs.BoolVarP(&v.showHelp, "help", "h", false, "Show help message")
	return fs
}

// merge copies explicitly set flags over cfg.
func (v *flagValues) merge(fs *pflag.FlagSet, cfg *config) {
	set := fs.Changed
	if set("log-level") {
		cfg.Logging.Level = v.logLevel
	}
	if set("width") {
		cfg.Width = v.width
	}
	if set("height") {
		cfg.Height = v.height
	}
	if set("template") {
		cfg.Template = v.template
	}
	if set("map") {
		cfg.Map = v.mapTemplate
	}
	if set("marker") {
		cfg.Marker = v.marker
	}
	if set("direction") {
		cfg.Direction = v.direction
	}
	if set("justify") {
		cfg.Justify = v.justify
	}
	if set("anchor") {
		cfg.Anchor = v.anchor
	}
	if set("no-wrap") {
		cfg.Wrap = !v.noWrap
	}
	if set("no-truncate") {
		cfg.Truncate = !v.noTruncate
	}
	if set("no-spacing") {
		cfg.Spacing = !v.noSpacing
	}
	if set("no-lookahead") {
		cfg.LookAhead = !v.noLookAhead
	}
	if set("blank") {
		cfg.Blank = v.blank
	}
	if set("dump") {
		cfg.Dump = v.dump
	}
	if set("separator") {
		cfg.Separator = v.separator
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var v flagValues
	fs := newFlagSet(&v, stderr)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printHelp(stderr, fs)
		return exitError
	}

	if v.showHelp {
		printHelp(stdout, fs)
		return exitOK
	}
	if v.showVersion {
		fmt.Fprintf(stdout, "textgrid version %s (commit: %s, built: %s)\n", version, commit, date)
		return exitOK
	}

	cfg, err := loadConfig(v.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	v.merge(fs, cfg)

	log, err := newLogger(cfg.Logging.Level, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	var cleanup error
	defer func() {
		if err := multierr.Append(cleanup, log.Sync()); err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		}
	}()

	text, err := inputText(fs.Args(), stdin)
	if err != nil {
		log.Error("Unable to read input", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	opts, err := cfg.writeOptions()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	g, err := cfg.grid()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	log.Debug("Grid ready",
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
		zap.Int("free", g.FreeCells()),
		zap.String("template", cfg.Template))

	session, closeTrace, err := openTrace(&v, log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer func() {
		cleanup = multierr.Append(cleanup, closeTrace())
	}()
	if session != nil {
		opts = append(opts, textgrid.WithDebug(session))
	}

	placed, err := g.Write(text, opts...)
	if err != nil {
		log.Error("Write rejected", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if cfg.Dump {
		fmt.Fprint(stdout, g.Dump(cfg.Separator))
	} else {
		fmt.Fprint(stdout, g.Content(cfg.Separator))
		fmt.Fprint(stdout, cfg.Separator)
	}

	if !placed {
		log.Info("Text did not fit", zap.Int("runes", len([]rune(text))), zap.Int("free", g.FreeCells()))
		return exitPartial
	}
	log.Info("Text placed", zap.Int("runes", len([]rune(text))), zap.Int("free", g.FreeCells()))
	return exitOK
}

// inputText joins the arguments with spaces, or reads stdin when there are
// none. Trailing line breaks from stdin are dropped. The result is NFC
// normalized so a composed character takes one cell.
func inputText(args []string, stdin io.Reader) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}
	if text == "" {
		return "", fmt.Errorf("no text provided")
	}
	return norm.NFC.String(text), nil
}

// openTrace starts a tracing session when --debug, --debug-file or
// TEXTGRID_DEBUG asks for one. Without those, a debug log level routes
// trace events through the logger instead. The returned func closes the
// session and any trace file.
func openTrace(v *flagValues, log *zap.Logger, stderr io.Writer) (*debug.Session, func() error, error) {
	noop := func() error { return nil }

	debug.InitFromEnv()
	requested := v.debugMode || v.debugFile != "" || debug.Enabled()
	viaLog := !requested && log.Core().Enabled(zap.DebugLevel)
	if !requested && !viaLog {
		return nil, noop, nil
	}
	debug.SetEnabled(true)

	if viaLog {
		session := debug.NewSession(debug.NewZapSink(log))
		return session, session.Close, nil
	}

	var (
		out  io.Writer = stderr
		file *os.File
	)
	if v.debugFile != "" {
		f, err := os.Create(v.debugFile)
		if err != nil {
			return nil, noop, fmt.Errorf("creating debug file: %w", err)
		}
		file, out = f, f
	}

	var sink debug.Sink
	if v.debugPretty || debug.PrettyFromEnv() {
		sink = debug.NewPrettySink(out)
	} else {
		sink = debug.NewJSONSink(out)
	}
	session := debug.NewSession(sink)

	return session, func() error {
		err := session.Close()
		if file != nil {
			err = multierr.Append(err, file.Close())
		}
		return err
	}, nil
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "textgrid - lay text out on a character grid")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  textgrid [flags] <text>")
	fmt.Fprintln(w, "  echo <text> | textgrid [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Blank and marker rune formats:")
	fmt.Fprintln(w, "  Literal: --blank '_'")
	fmt.Fprintln(w, "  Unicode escape: --blank '\\u00A0'")
	fmt.Fprintln(w, "  Unicode notation: --blank 'U+00A0'")
	fmt.Fprintln(w, "  Decimal: --blank '95'")
	fmt.Fprintln(w, "  Hexadecimal: --blank '0x5F'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status is 0 when all text was placed, 2 when some did not fit")
	fmt.Fprintln(w, "and 1 on error.")
}
