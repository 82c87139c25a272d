// Package parser reads grid templates: occupancy maps and content layouts
// drawn as plain text, one grid row per line.
package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/ryanlewis/textgrid/internal/cells"
	"github.com/ryanlewis/textgrid/internal/common"
)

// Kind selects how template characters are interpreted.
type Kind int

const (
	// KindMap treats '.' and ' ' as free cells and anything else as occupied.
	// Content starts blank.
	KindMap Kind = iota
	// KindContent keeps every character as content. Cells holding the marker
	// are free and blanked; everything else is occupied.
	KindContent
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindContent:
		return "content"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Template is a parsed grid template.
type Template struct {
	Width  int
	Height int

	// Content and States have Width*Height entries in row-major order.
	Content []rune
	States  []cells.State
}

// Buffer returns a fresh buffer holding a copy of the template's cells.
func (t *Template) Buffer() (*cells.Buffer, error) {
	content := append([]rune(nil), t.Content...)
	states := append([]cells.State(nil), t.States...)
	return cells.FromCells(t.Width, t.Height, content, states)
}

// Parse reads a template from r.
//
// Every line is trimmed of surrounding whitespace and blank lines are
// skipped. A single '|' is stripped from each end of a line so rows can be
// drawn with visible borders; a line that is empty afterwards is skipped.
// The first row fixes the width in runes. Every row of another width is
// reported, and the errors are combined.
func Parse(r io.Reader, kind Kind, marker rune) (*Template, error) {
	scanner, buf := createPooledScanner(r)
	defer releaseScannerBuffer(buf)

	rows := acquireRowSlice()
	defer func() { releaseRowSlice(rows) }()

	width := 0
	var errs error
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := normalizeRow(scanner.Text())
		if line == "" {
			continue
		}

		n := utf8.RuneCountInString(line)
		if len(rows) == 0 {
			width = n
		} else if n != width {
			errs = multierr.Append(errs,
				fmt.Errorf("line %d: width %d, want %d: %w", lineNum, n, width, common.ErrUnequalWidths))
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	if errs != nil {
		return nil, errs
	}
	if len(rows) == 0 {
		return nil, common.ErrEmptyTemplate
	}

	t := &Template{
		Width:   width,
		Height:  len(rows),
		Content: make([]rune, 0, width*len(rows)),
		States:  make([]cells.State, 0, width*len(rows)),
	}
	for _, row := range rows {
		for _, ch := range row {
			content, state := classify(ch, kind, marker)
			t.Content = append(t.Content, content)
			t.States = append(t.States, state)
		}
	}
	return t, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string, kind Kind, marker rune) (*Template, error) {
	return Parse(strings.NewReader(s), kind, marker)
}

// normalizeRow trims a raw line and strips its borders. It returns "" for
// lines that carry no cells.
func normalizeRow(line string) string {
	line = strings.TrimSpace(strings.ReplaceAll(line, "\r", ""))
	if line == "" {
		return ""
	}
	line = strings.TrimPrefix(line, string(common.Border))
	if line == "" {
		return ""
	}
	return strings.TrimSuffix(line, string(common.Border))
}

func classify(ch rune, kind Kind, marker rune) (rune, cells.State) {
	if kind == KindMap {
		if ch == common.MapFree || ch == ' ' {
			return ' ', cells.Free
		}
		return ' ', cells.Occupied
	}
	if ch == marker {
		return ' ', cells.Free
	}
	return ch, cells.Occupied
}
