package writer

import (
	"strings"
	"testing"

	"github.com/ryanlewis/textgrid/internal/cells"
)

// mapBuffer builds a buffer from rows where '.' is free and anything else
// is occupied with blank content.
func mapBuffer(t *testing.T, rows ...string) *cells.Buffer {
	t.Helper()
	b, err := cells.New(len([]rune(rows[0])), len(rows))
	if err != nil {
		t.Fatalf("cells.New() error = %v", err)
	}
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if ch != '.' {
				b.States[b.Index(x, y)] = cells.Occupied
			}
		}
	}
	return b
}

func emptyBuffer(t *testing.T, w, h int) *cells.Buffer {
	t.Helper()
	b, err := cells.New(w, h)
	if err != nil {
		t.Fatalf("cells.New() error = %v", err)
	}
	return b
}

func contentRows(b *cells.Buffer) []string {
	rows := make([]string, b.Height)
	for y := range rows {
		at := b.Index(0, y)
		rows[y] = string(b.Content[at : at+b.Width])
	}
	return rows
}

func mapRows(b *cells.Buffer) []string {
	rows := make([]string, b.Height)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < b.Width; x++ {
			sb.WriteRune(b.States[b.Index(x, y)].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

func checkRows(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d rows, want %d\ngot: %q", label, len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s row %d = %q, want %q", label, i, got[i], want[i])
		}
	}
}
