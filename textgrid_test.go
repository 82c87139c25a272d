package textgrid

import (
	"errors"
	"strings"
	"testing"
)

func mustNew(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", w, h, err)
	}
	return g
}

func mustMap(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := FromMap(s)
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	return g
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

func TestScenarios(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		text       string
		opts       []Option
		wantPlaced bool
		wantRows   []string
		wantMap    []string
	}{
		{
			name:  "A_wraps_two_words",
			width: 5, height: 2,
			text:       "Hello World",
			wantPlaced: true,
			wantRows:   []string{"Hello", "World"},
			wantMap:    []string{"WWWWW", "WWWWW"},
		},
		{
			name:  "B_single_row",
			width: 15, height: 2,
			text:       "Hello World",
			wantPlaced: true,
			wantRows:   []string{"Hello World    ", "               "},
		},
		{
			name:  "C_truncated",
			width: 5, height: 2,
			text:       "Good Looking",
			wantPlaced: false,
			wantRows:   []string{"Good ", "Looki"},
		},
		{
			name:  "D_long_word_continues",
			width: 5, height: 3,
			text:       "Good Looking",
			wantPlaced: true,
			wantRows:   []string{"Good ", "Looki", "ng   "},
		},
		{
			name:  "E_no_wrap_no_truncate",
			width: 7, height: 2,
			text:       "Hello World",
			opts:       []Option{WithWrapping(false), WithTruncation(false)},
			wantPlaced: false,
			wantRows:   []string{"Hello  ", "       "},
		},
		{
			name:  "F_right_to_left",
			width: 5, height: 2,
			text:       "Hello World",
			opts:       []Option{WithDirection(RowsRightToLeft)},
			wantPlaced: true,
			wantRows:   []string{"olleH", "dlroW"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, tt.width, tt.height)
			placed, err := g.Write(tt.text, tt.opts...)
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if placed != tt.wantPlaced {
				t.Errorf("Write() = %v, want %v", placed, tt.wantPlaced)
			}
			checkRows(t, "content", g.Rows(), tt.wantRows)
			if tt.wantMap != nil {
				checkRows(t, "map", g.MapRows(), tt.wantMap)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 7}, {40, 2}} {
		g := mustNew(t, size[0], size[1])
		if g.Width() != size[0] || g.Height() != size[1] {
			t.Errorf("size = %dx%d, want %dx%d", g.Width(), g.Height(), size[0], size[1])
		}
		if g.FreeCells() != size[0]*size[1] {
			t.Errorf("FreeCells() = %d, want %d", g.FreeCells(), size[0]*size[1])
		}
		for _, row := range g.Rows() {
			if strings.TrimSpace(row) != "" {
				t.Errorf("new grid row %q is not blank", row)
			}
		}
	}

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-3, 2}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("New(%d, %d) error = %v, want ErrOutOfRange", size[0], size[1], err)
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	g := mustNew(t, 4, 2)
	placed, err := g.Write("")
	if err != nil || !placed {
		t.Fatalf("Write(\"\") = %v, %v; want true, nil", placed, err)
	}
	if g.FreeCells() != 8 || g.CursorX() != 0 || g.CursorY() != 0 {
		t.Error("Write(\"\") changed the grid")
	}
}

func TestWriteFitsCapacity(t *testing.T) {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for w := 1; w <= 8; w++ {
		for h := 1; h <= 4; h++ {
			for n := 1; n <= w*h; n++ {
				g := mustNew(t, w, h)
				text := letters[:n]
				placed, err := g.Write(text)
				if err != nil {
					t.Fatalf("Write() error = %v", err)
				}
				if !placed {
					t.Fatalf("%dx%d: Write(%q) = false", w, h, text)
				}
				if got := strings.TrimRight(g.Content(""), " "); got != text {
					t.Fatalf("%dx%d: content %q, want %q", w, h, got, text)
				}
			}
		}
	}
}

func TestNoBlockedCellsAfterWrite(t *testing.T) {
	texts := []string{"Hello World", "Good Looking", "a b c d e f g h i j k", "x\n\ny", "Supercalifragilistic"}
	optionSets := [][]Option{
		nil,
		{WithWrapping(false)},
		{WithWrapping(false), WithTruncation(false)},
		{WithDirection(ColumnsTopToBottom)},
		{WithDirection(RowsRightToLeft), WithJustification(JustifyFull)},
		{WithAnchor(AnchorBottom)},
	}
	for _, text := range texts {
		for i, opts := range optionSets {
			g := mustMap(t, `
				|..........|
				|..**......|
				|......*...|
			`)
			if _, err := g.Write(text, opts...); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			for y, row := range g.MapRows() {
				if strings.ContainsRune(row, 'w') {
					t.Errorf("text %q options %d: row %d has blocked cells: %q", text, i, y, row)
				}
				for x := range row {
					if s, _ := g.State(x, y); s == TempBlocked {
						t.Errorf("State(%d,%d) = TempBlocked", x, y)
					}
				}
			}
		}
	}
}

func TestWriteNewlines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single_break", "Hello\nWorld", []string{"Hello          ", "World          ", "               "}},
		{"blank_line", "Hello\n\n World", []string{"Hello          ", "               ", "World          "}},
		{"windows_breaks", "Hello\r\nWorld", []string{"Hello          ", "World          ", "               "}},
		{"old_mac_breaks", "Hello\rWorld", []string{"Hello          ", "World          ", "               "}},
		{"reversed_pair", "Hello\n\rWorld", []string{"Hello          ", "World          ", "               "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, 15, 3)
			placed, err := g.Write(tt.text)
			if err != nil || !placed {
				t.Fatalf("Write() = %v, %v", placed, err)
			}
			checkRows(t, "content", g.Rows(), tt.want)
		})
	}
}

func TestWriteFromCursor(t *testing.T) {
	g := mustNew(t, 10, 10)
	g.SetCursor(5, 3)
	placed, err := g.Write("Hello World")
	if err != nil || !placed {
		t.Fatalf("Write() = %v, %v", placed, err)
	}
	if row, _ := g.Row(3); row != "     Hello" {
		t.Errorf("row 3 = %q", row)
	}
	if row, _ := g.Row(4); row != "World     " {
		t.Errorf("row 4 = %q", row)
	}
}

func TestWordSpacing(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"enabled", nil, "Hello World   "},
		{"disabled", []Option{WithWordSpacing(false)}, "HelloWorld    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromContent("|Hello         |", ' ')
			if err != nil {
				t.Fatalf("FromContent() error = %v", err)
			}
			placed, err := g.Write("World", tt.opts...)
			if err != nil || !placed {
				t.Fatalf("Write() = %v, %v", placed, err)
			}
			if got := g.String(); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookAhead(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		wantRows []string
		wantMap  []string
	}{
		{
			name:     "whole_word_moves_down",
			wantRows: []string{"Hi   ", "You  "},
			wantMap:  []string{"WWW..", "WWW.."},
		},
		{
			name:     "disabled_cuts_at_edge",
			opts:     []Option{WithLookAhead(false)},
			wantRows: []string{"Hi Yo", "u    "},
			wantMap:  []string{"WWWWW", "W...."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, 5, 2)
			placed, err := g.Write("Hi You", tt.opts...)
			if err != nil || !placed {
				t.Fatalf("Write() = %v, %v", placed, err)
			}
			checkRows(t, "content", g.Rows(), tt.wantRows)
			checkRows(t, "map", g.MapRows(), tt.wantMap)
		})
	}
}

func TestJustification(t *testing.T) {
	const text = "Hello World Thats Spanning Over"
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{"near", nil, []string{"Hello World Thats   ", "Spanning Over       "}},
		{"center", []Option{WithJustification(JustifyCenter)}, []string{" Hello World Thats  ", "   Spanning Over    "}},
		{"full", []Option{WithJustification(JustifyFull)}, []string{"Hello  World   Thats", "Spanning        Over"}},
		{"far", []Option{WithJustification(JustifyFar)}, []string{"   Hello World Thats", "       Spanning Over"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, 20, 2)
			placed, err := g.Write(text, tt.opts...)
			if err != nil || !placed {
				t.Fatalf("Write() = %v, %v", placed, err)
			}
			checkRows(t, "content", g.Rows(), tt.want)
		})
	}
}

func TestRightToLeftJustification(t *testing.T) {
	tests := []struct {
		name string
		j    Justification
		want string
	}{
		{"near", JustifyNear, "         dlroW olleH"},
		{"far", JustifyFar, "dlroW olleH         "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, 20, 1)
			placed, err := g.Write("Hello World", WithDirection(RowsRightToLeft), WithJustification(tt.j))
			if err != nil || !placed {
				t.Fatalf("Write() = %v, %v", placed, err)
			}
			if got := g.String(); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	g := mustNew(t, 2, 15)
	placed, err := g.Write("Hello World", WithDirection(ColumnsTopToBottom))
	if err != nil || !placed {
		t.Fatalf("Write() = %v, %v", placed, err)
	}
	var col strings.Builder
	for _, row := range g.Rows() {
		col.WriteByte(row[0])
		if row[1] != ' ' {
			t.Errorf("column 1 has %q", row[1])
		}
	}
	if got := strings.TrimRight(col.String(), " "); got != "Hello World" {
		t.Errorf("column 0 = %q", got)
	}
}

func TestNoWrapping(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		text       string
		opts       []Option
		wantPlaced bool
		wantRow    string
		wantMap    string
	}{
		{
			name:       "skips_obstacle",
			template:   "......***........",
			text:       "Hello World",
			opts:       []Option{WithWrapping(false), WithTruncation(false)},
			wantPlaced: true,
			wantRow:    "Hello     World  ",
			wantMap:    "WWWWW.WWW.WWWWW..",
		},
		{
			name:       "drops_word_that_never_fits",
			template:   "......***........",
			text:       "Hello World Again",
			opts:       []Option{WithWrapping(false), WithTruncation(false)},
			wantPlaced: false,
			wantRow:    "Hello     World  ",
			wantMap:    "WWWWW.WWW.WWWWWW.",
		},
		{
			name:       "truncates_into_gaps",
			template:   "...**....**......",
			text:       "Hello World",
			opts:       []Option{WithWrapping(false)},
			wantPlaced: false,
			wantRow:    "He    ll    o Wor",
		},
		{
			name:       "truncates_into_gaps_and_fits",
			template:   "...**....**........",
			text:       "Hello World",
			opts:       []Option{WithWrapping(false)},
			wantPlaced: true,
			wantRow:    "He    ll    o World",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustMap(t, tt.template)
			placed, err := g.Write(tt.text, tt.opts...)
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if placed != tt.wantPlaced {
				t.Errorf("Write() = %v, want %v", placed, tt.wantPlaced)
			}
			if got := g.String(); got != tt.wantRow {
				t.Errorf("content = %q, want %q", got, tt.wantRow)
			}
			if tt.wantMap != "" {
				if got := g.MapRows()[0]; got != tt.wantMap {
					t.Errorf("map = %q, want %q", got, tt.wantMap)
				}
			}
		})
	}
}

func TestNonWrappingBlank(t *testing.T) {
	g := mustNew(t, 9, 2)
	placed, err := g.Write("in New_York", WithNonWrappingBlank('_'))
	if err != nil || !placed {
		t.Fatalf("Write() = %v, %v", placed, err)
	}
	checkRows(t, "content", g.Rows(), []string{"in       ", "New York "})

	g = mustNew(t, 9, 2)
	if _, err := g.Write("in New_York", WithNonWrappingBlank('_'), WithNonWrappingBlankEnabled(false)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	checkRows(t, "content", g.Rows(), []string{"in       ", "New_York "})
}

func TestUnsupportedOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"direction", WithDirection(Direction(9))},
		{"justification", WithJustification(Justification(-1))},
		{"anchor", WithAnchor(Anchor(5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, 5, 2)
			placed, err := g.Write("Hello", tt.opt)
			if placed || !errors.Is(err, ErrUnsupportedOption) {
				t.Errorf("Write() = %v, %v; want false, ErrUnsupportedOption", placed, err)
			}
			if g.FreeCells() != 10 {
				t.Error("rejected write changed the grid")
			}
		})
	}
}

func TestPlot(t *testing.T) {
	g := mustNew(t, 3, 2)
	g.SetCursor(1, 1)
	if err := g.Plot(2, 0, 'x'); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}
	if row, _ := g.Row(0); row != "  x" {
		t.Errorf("row 0 = %q", row)
	}
	if s, _ := g.State(2, 0); s != Occupied {
		t.Errorf("State(2,0) = %v, want Occupied", s)
	}
	if g.CursorX() != 1 || g.CursorY() != 1 {
		t.Error("Plot moved the cursor")
	}

	for _, p := range [][2]int{{3, 0}, {0, 2}, {-1, 0}} {
		if err := g.Plot(p[0], p[1], 'y'); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Plot(%d,%d) error = %v, want ErrOutOfRange", p[0], p[1], err)
		}
	}
}

func TestPlotOverwritesAnyCell(t *testing.T) {
	g, err := FromContent("|ab|", '.')
	if err != nil {
		t.Fatalf("FromContent() error = %v", err)
	}
	if err := g.Plot(0, 0, 'z'); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}
	if g.String() != "zb" {
		t.Errorf("content = %q, want %q", g.String(), "zb")
	}
}

func TestCursorSetters(t *testing.T) {
	g := mustNew(t, 4, 3)

	g.SetCursorX(9)
	g.SetCursorY(-1)
	if g.CursorX() != 0 || g.CursorY() != 0 {
		t.Fatalf("out-of-range setters moved the cursor to (%d,%d)", g.CursorX(), g.CursorY())
	}
	// An ignored set must not count as positioning the cursor.
	if _, err := g.Write("ab"); err != nil {
		t.Fatal(err)
	}
	if row, _ := g.Row(0); row != "ab  " {
		t.Errorf("row 0 = %q", row)
	}

	g.SetCursor(5, 2)
	if g.CursorX() != 2 || g.CursorY() != 2 {
		t.Errorf("SetCursor(5,2) gave (%d,%d), want x kept and y set", g.CursorX(), g.CursorY())
	}

	if err := g.TrySetCursor(4, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("TrySetCursor(4,0) error = %v, want ErrOutOfRange", err)
	}
	if err := g.TrySetCursor(1, 1); err != nil {
		t.Errorf("TrySetCursor(1,1) error = %v", err)
	}
	if g.CursorX() != 1 || g.CursorY() != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", g.CursorX(), g.CursorY())
	}
}

func TestFill(t *testing.T) {
	g := mustNew(t, 11, 2)
	n, err := g.Fill("abc")
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if n != 6 {
		t.Errorf("Fill() = %d, want 6", n)
	}
	checkRows(t, "content", g.Rows(), []string{"abc abc abc", "abc abc abc"})

	if n, _ := mustNew(t, 3, 3).Fill(""); n != 0 {
		t.Errorf("Fill(\"\") = %d, want 0", n)
	}
	if _, err := mustNew(t, 3, 3).Fill("a", WithDirection(Direction(8))); !errors.Is(err, ErrUnsupportedOption) {
		t.Errorf("Fill() error = %v, want ErrUnsupportedOption", err)
	}
}

func TestClone(t *testing.T) {
	g := mustNew(t, 5, 1)
	if _, err := g.Write("ab"); err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	if _, err := c.Write("cd"); err != nil {
		t.Fatal(err)
	}
	if g.String() != "ab   " {
		t.Errorf("original = %q", g.String())
	}
	if c.String() != "ab cd" {
		t.Errorf("clone = %q", c.String())
	}
}
