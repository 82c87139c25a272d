package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ryanlewis/textgrid"
)

// config holds every setting the command line can also set. Values from a
// YAML file are loaded first; flags given explicitly override them.
type config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Template string `yaml:"template"`
	Map      bool   `yaml:"map"`
	Marker   string `yaml:"marker"`

	Direction string `yaml:"direction"`
	Justify   string `yaml:"justify"`
	Anchor    string `yaml:"anchor"`

	Wrap      bool   `yaml:"wrap"`
	Truncate  bool   `yaml:"truncate"`
	Spacing   bool   `yaml:"spacing"`
	LookAhead bool   `yaml:"lookahead"`
	Blank     string `yaml:"blank"`

	Dump      bool   `yaml:"dump"`
	Separator string `yaml:"separator"`

	Logging loggingConfig `yaml:"logging"`
}

type loggingConfig struct {
	Level string `yaml:"level"`
}

func defaultConfig() *config {
	return &config{
		Width:     40,
		Height:    10,
		Marker:    " ",
		Direction: "ltr",
		Justify:   "near",
		Anchor:    "none",
		Wrap:      true,
		Truncate:  true,
		Spacing:   true,
		LookAhead: true,
		Separator: "\n",
		Logging:   loggingConfig{Level: "none"},
	}
}

// loadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open configuration: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode configuration %s: %w", path, err)
	}
	return cfg, nil
}

// writeOptions converts the layout settings to textgrid options.
func (c *config) writeOptions() ([]textgrid.Option, error) {
	d, err := textgrid.ParseDirection(c.Direction)
	if err != nil {
		return nil, err
	}
	j, err := textgrid.ParseJustification(c.Justify)
	if err != nil {
		return nil, err
	}
	a, err := textgrid.ParseAnchor(c.Anchor)
	if err != nil {
		return nil, err
	}

	opts := []textgrid.Option{
		textgrid.WithDirection(d),
		textgrid.WithJustification(j),
		textgrid.WithAnchor(a),
		textgrid.WithWrapping(c.Wrap),
		textgrid.WithTruncation(c.Truncate),
		textgrid.WithWordSpacing(c.Spacing),
		textgrid.WithLookAhead(c.LookAhead),
	}
	if c.Blank != "" {
		r, err := parseRune(c.Blank)
		if err != nil {
			return nil, fmt.Errorf("blank: %w", err)
		}
		opts = append(opts, textgrid.WithNonWrappingBlank(r))
	}
	return opts, nil
}

// grid builds the starting grid: the template when one is named, otherwise
// an empty grid of the configured size.
func (c *config) grid() (*textgrid.Grid, error) {
	if c.Template == "" {
		return textgrid.New(c.Width, c.Height)
	}
	kind := textgrid.ContentTemplate
	if c.Map {
		kind = textgrid.MapTemplate
	}
	marker, err := parseRune(c.Marker)
	if err != nil {
		return nil, fmt.Errorf("marker: %w", err)
	}
	return textgrid.LoadTemplate(c.Template, kind, marker)
}

// syncless hides Sync from zap so console output is never synced;
// syncing a terminal fails on some platforms.
type syncless struct {
	io.Writer
}

// newLogger builds the console logger for level "none", "normal" or
// "debug". Everything goes to w, since stdout carries the grid.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	var enabler zapcore.LevelEnabler
	switch level {
	case "none", "":
		return zap.NewNop(), nil
	case "normal":
		enabler = zapcore.InfoLevel
	case "debug":
		enabler = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (want none, normal or debug)", level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.TimeKey = zapcore.OmitKey

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(syncless{w}), enabler)
	return zap.New(core).Named("textgrid"), nil
}
