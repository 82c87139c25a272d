package textgrid

import (
	"fmt"
	"strings"

	"github.com/ryanlewis/textgrid/internal/common"
)

// Row returns the content of row i.
func (g *Grid) Row(i int) (string, error) {
	if i < 0 || i >= g.buf.Height {
		return "", fmt.Errorf("row %d of %d: %w", i, g.buf.Height, ErrOutOfRange)
	}
	at := g.buf.Index(0, i)
	return string(g.buf.Content[at : at+g.buf.Width]), nil
}

// Rows returns the content of every row, top to bottom.
func (g *Grid) Rows() []string {
	rows := make([]string, g.buf.Height)
	for y := range rows {
		at := g.buf.Index(0, y)
		rows[y] = string(g.buf.Content[at : at+g.buf.Width])
	}
	return rows
}

// MapRows renders the occupancy map, one string per row: '.' for free cells
// and 'W' for occupied ones.
func (g *Grid) MapRows() []string {
	rows := make([]string, g.buf.Height)
	var sb strings.Builder
	sb.Grow(g.buf.Width)
	for y := range rows {
		sb.Reset()
		at := g.buf.Index(0, y)
		for _, s := range g.buf.States[at : at+g.buf.Width] {
			sb.WriteRune(s.Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// Content returns every row joined by sep.
func (g *Grid) Content(sep string) string {
	return strings.Join(g.Rows(), sep)
}

// String returns the content with rows separated by newlines.
func (g *Grid) String() string {
	return g.Content("\n")
}

// Dump renders content and map side by side inside a border:
//
//	-----------
//	|Hi  |WW..|
//	-----------
//
// Every line, the last included, is followed by sep.
func (g *Grid) Dump(sep string) string {
	content := g.Rows()
	states := g.MapRows()
	rule := strings.Repeat("-", g.buf.Width*2+3)

	var sb strings.Builder
	sb.Grow((g.buf.Width*2 + 3 + len(sep)) * (g.buf.Height + 2))

	sb.WriteString(rule)
	sb.WriteString(sep)
	for i := range content {
		sb.WriteRune(common.Border)
		sb.WriteString(content[i])
		sb.WriteRune(common.Border)
		sb.WriteString(states[i])
		sb.WriteRune(common.Border)
		sb.WriteString(sep)
	}
	sb.WriteString(rule)
	sb.WriteString(sep)
	return sb.String()
}
