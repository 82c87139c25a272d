package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryanlewis/textgrid/internal/debug"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "wraps",
			args:     []string{"-w", "5", "-H", "2", "Hello", "World"},
			wantCode: exitOK,
			wantOut:  "Hello\nWorld\n",
		},
		{
			name:     "partial",
			args:     []string{"-w", "5", "-H", "2", "Good Looking"},
			wantCode: exitPartial,
			wantOut:  "Good \nLooki\n",
		},
		{
			name:     "stdin",
			stdin:    "Hello World\n",
			args:     []string{"-w", "15", "-H", "1"},
			wantCode: exitOK,
			wantOut:  "Hello World    \n",
		},
		{
			name:     "dump",
			args:     []string{"--dump", "-w", "5", "-H", "1", "Hi"},
			wantCode: exitOK,
			wantOut:  "-------------\n|Hi   |WW...|\n-------------\n",
		},
		{
			name:     "separator",
			args:     []string{"--separator", "|", "-w", "2", "-H", "2", "ab"},
			wantCode: exitOK,
			wantOut:  "ab|  |",
		},
		{
			name:     "far",
			args:     []string{"-j", "far", "-w", "6", "-H", "1", "Hi"},
			wantCode: exitOK,
			wantOut:  "    Hi\n",
		},
		{
			name:     "right_to_left",
			args:     []string{"-d", "rtl", "-w", "5", "-H", "1", "abc"},
			wantCode: exitOK,
			wantOut:  "  cba\n",
		},
		{
			name:     "blank",
			args:     []string{"--blank", "U+005F", "-w", "9", "-H", "2", "in New_York"},
			wantCode: exitOK,
			wantOut:  "in       \nNew York \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.stdin, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, errOut)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"unknown_flag", "", []string{"--colour", "x"}},
		{"no_text", "", []string{"-w", "4"}},
		{"bad_direction", "", []string{"-d", "diagonal", "x"}},
		{"bad_justify", "", []string{"-j", "middle", "x"}},
		{"bad_blank", "", []string{"--blank", "xyz", "x"}},
		{"bad_size", "", []string{"-w", "0", "x"}},
		{"bad_log_level", "", []string{"--log-level", "loud", "x"}},
		{"missing_template", "", []string{"-t", filepath.Join(t.TempDir(), "none.txt"), "x"}},
		{"missing_config", "", []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.stdin, tt.args...)
			if code != exitError {
				t.Errorf("exit code = %d, want %d", code, exitError)
			}
			if out != "" {
				t.Errorf("stdout = %q, want nothing", out)
			}
			if !strings.Contains(errOut, "Error") {
				t.Errorf("stderr = %q, want an error message", errOut)
			}
		})
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	if code != exitOK || !strings.Contains(out, "textgrid version dev") {
		t.Errorf("--version = %d, %q", code, out)
	}

	code, out, _ = runCLI(t, "", "-h")
	if code != exitOK || !strings.Contains(out, "Usage:") || !strings.Contains(out, "--no-wrap") {
		t.Errorf("-h = %d, %q", code, out)
	}
}

func TestRunTemplate(t *testing.T) {
	content := writeFile(t, "form.txt", "|Name: ____|\n")
	code, out, errOut := runCLI(t, "", "-t", content, "--marker", "_", "--no-spacing", "Bob")
	if code != exitOK {
		t.Fatalf("exit code = %d (stderr: %s)", code, errOut)
	}
	if out != "Name: Bob \n" {
		t.Errorf("stdout = %q, want %q", out, "Name: Bob \n")
	}

	shape := writeFile(t, "shape.txt", "|..*..|\n")
	code, out, errOut = runCLI(t, "", "-t", shape, "--map", "--no-spacing", "--dump", "ab")
	if code != exitOK {
		t.Fatalf("exit code = %d (stderr: %s)", code, errOut)
	}
	want := "-------------\n|ab   |WWW..|\n-------------\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunConfig(t *testing.T) {
	path := writeFile(t, "textgrid.yaml", `
width: 5
height: 2
justify: far
logging:
  level: none
`)

	code, out, _ := runCLI(t, "", "--config", path, "Hi")
	if code != exitOK || out != "   Hi\n     \n" {
		t.Errorf("config run = %d, %q", code, out)
	}

	// Flags given on the command line win over the file.
	code, out, _ = runCLI(t, "", "--config", path, "-j", "near", "-H", "1", "Hi")
	if code != exitOK || out != "Hi   \n" {
		t.Errorf("override run = %d, %q", code, out)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil || cfg.Width != 40 || !cfg.Wrap || cfg.Logging.Level != "none" {
		t.Errorf("loadConfig(\"\") = %+v, %v", cfg, err)
	}

	empty := writeFile(t, "empty.yaml", "")
	if cfg, err := loadConfig(empty); err != nil || cfg.Height != 10 {
		t.Errorf("empty config = %+v, %v", cfg, err)
	}

	partial := writeFile(t, "partial.yaml", "wrap: false\nblank: \"~\"\n")
	cfg, err = loadConfig(partial)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Wrap || !cfg.Truncate || cfg.Blank != "~" {
		t.Errorf("partial config = %+v", cfg)
	}

	unknown := writeFile(t, "unknown.yaml", "colour: red\n")
	if _, err := loadConfig(unknown); err == nil {
		t.Error("loadConfig() accepted an unknown field")
	}
}

func TestRunLogging(t *testing.T) {
	t.Cleanup(func() { debug.SetEnabled(false) })

	code, _, errOut := runCLI(t, "", "--log-level", "normal", "-w", "5", "-H", "1", "Hi")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(errOut, "Text placed") {
		t.Errorf("stderr = %q, want an info line", errOut)
	}
	if strings.Contains(errOut, "Grid ready") {
		t.Error("debug line logged at normal level")
	}

	code, _, errOut = runCLI(t, "", "--log-level", "debug", "-w", "5", "-H", "1", "Hi")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"Grid ready", "write/Start", "write/End", "Text placed"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("debug stderr missing %q:\n%s", want, errOut)
		}
	}
}

func TestRunDebugFile(t *testing.T) {
	t.Cleanup(func() { debug.SetEnabled(false) })

	path := filepath.Join(t.TempDir(), "trace.jsonl")
	code, out, _ := runCLI(t, "", "--debug-file", path, "-w", "5", "-H", "2", "Hello World")
	if code != exitOK || out != "Hello\nWorld\n" {
		t.Fatalf("run = %d, %q", code, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 4 {
		t.Fatalf("trace has %d lines, want at least 4", len(lines))
	}
	for _, want := range []string{`"phase":"session"`, `"phase":"write"`, `"event":"Commit"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("trace missing %s", want)
		}
	}
}

func TestInputText(t *testing.T) {
	// "e" followed by a combining acute accent composes to one rune.
	got, err := inputText([]string{"cafe\u0301"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "caf\u00e9" {
		t.Errorf("inputText() = %q, want NFC %q", got, "caf\u00e9")
	}

	got, err = inputText(nil, strings.NewReader("two\nlines\r\n\n"))
	if err != nil || got != "two\nlines" {
		t.Errorf("inputText(stdin) = %q, %v", got, err)
	}

	if _, err := inputText(nil, strings.NewReader("\n")); err == nil {
		t.Error("inputText() accepted empty input")
	}
}

func TestParseRune(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rune
		wantErr bool
	}{
		{"literal underscore", "_", '_', false},
		{"literal tilde", "~", '~', false},
		{"literal digit", "7", '7', false},
		{"literal unicode", "☺", '☺', false},

		{"escape \\u00A0", "\\u00A0", '\u00a0', false},
		{"escape \\U0000005F", "\\U0000005F", '_', false},

		{"notation U+005F", "U+005F", '_', false},
		{"notation u+00a0", "u+00a0", '\u00a0', false},

		{"decimal 95", "95", '_', false},
		{"hex 0x5F", "0x5F", '_', false},
		{"hex 0X7E", "0X7E", '~', false},

		{"empty", "", 0, true},
		{"bare escape", "\\u", 0, true},
		{"bare notation", "U+", 0, true},
		{"bare hex", "0x", 0, true},
		{"multi-rune literal", "abc", 0, true},
		{"beyond max rune", "U+110000", 0, true},
		{"negative decimal", "-1", 0, true},
		{"surrogate", "U+D800", 0, true},
		{"surrogate hex", "0xDFFF", 0, true},
		{"escape too short", "\\u5F", 0, true},
		{"escape too long", "\\u005F0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRune(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseRune(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("parseRune(%q) = %q (U+%04X), want %q (U+%04X)", tt.input, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log, err := newLogger("none", &buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("none level wrote %q", buf.String())
	}

	log, err = newLogger("normal", &buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("quiet")
	log.Info("shown")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "INFO") {
		t.Errorf("normal level output = %q", buf.String())
	}
	if err := log.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}

	buf.Reset()
	log, err = newLogger("debug", &buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("loud")
	if !strings.Contains(buf.String(), "DEBUG") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("debug level output = %q", buf.String())
	}

	if _, err := newLogger("loud", &buf); err == nil {
		t.Error("newLogger() accepted an unknown level")
	}
}
