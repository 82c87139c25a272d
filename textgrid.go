// Package textgrid lays text out on a fixed-size grid of character cells.
//
// A Grid keeps two parallel layers: the runes to display and an occupancy
// state per cell. Writes flow text from a cursor in one of three directions,
// wrapping at word boundaries, moving whole words past obstacles, keeping a
// one-cell gap to existing content and justifying each line within the free
// run it lands in. Templates mark areas as occupied up front, so text can be
// poured into irregular shapes.
//
// Example:
//
//	g, _ := textgrid.FromMap(`
//		|..........|
//		|...****...|
//		|..........|
//	`)
//	ok, err := g.Write("Hello wide world", textgrid.WithJustification(textgrid.JustifyCenter))
//	fmt.Println(g)
//
// A Grid is not safe for concurrent mutation.
package textgrid

import (
	"fmt"

	"github.com/ryanlewis/textgrid/internal/cells"
	"github.com/ryanlewis/textgrid/internal/writer"
)

// Grid is a fixed-size text grid with an occupancy map and a write cursor.
type Grid struct {
	buf *cells.Buffer
}

// New returns a width x height grid with every cell free and blank.
// Non-positive dimensions return ErrOutOfRange.
func New(width, height int) (*Grid, error) {
	b, err := cells.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Grid{buf: b}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.buf.Width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.buf.Height }

// Write places text starting at the cursor and reports whether all of it was
// placed. Whatever was placed before a failure stays in the grid.
//
// The first write on a grid starts at the first cell of the chosen
// direction; later writes continue from where the previous one stopped.
// "\r\n", "\n\r" and "\r" are treated as "\n". Writing "" succeeds and
// changes nothing.
//
// The error is non-nil only when an option names a direction, justification
// or anchor with no defined behavior; the grid is not touched in that case.
func (g *Grid) Write(text string, opts ...Option) (bool, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return writer.Write(g.buf, text, options.toInternal())
}

// Fill writes text repeatedly until a write fails to place all of it, and
// returns the number of complete writes. A write that would place nothing
// stops the loop, so empty text returns 0.
func (g *Grid) Fill(text string, opts ...Option) (int, error) {
	if text == "" {
		return 0, nil
	}
	limit := g.buf.Count(cells.Free)
	n := 0
	for n < limit {
		before := g.buf.Count(cells.Free)
		placed, err := g.Write(text, opts...)
		if err != nil {
			return n, err
		}
		if !placed || g.buf.Count(cells.Free) == before {
			break
		}
		n++
	}
	return n, nil
}

// Plot puts r at (x, y) and marks the cell occupied. It ignores spacing,
// wrapping and justification, and leaves the cursor where it is.
func (g *Grid) Plot(x, y int, r rune) error {
	if !g.buf.InBounds(x, y) {
		return fmt.Errorf("plot at (%d,%d) in %dx%d grid: %w", x, y, g.buf.Width, g.buf.Height, ErrOutOfRange)
	}
	g.buf.Put(g.buf.Index(x, y), r)
	return nil
}

// Extract returns an independent copy of the w x h area at (x, y). The copy
// has its own cursor at the origin, not yet initialized.
func (g *Grid) Extract(x, y, w, h int) (*Grid, error) {
	b, err := g.buf.Extract(x, y, w, h)
	if err != nil {
		return nil, err
	}
	return &Grid{buf: b}, nil
}

// Insert copies every cell of src into the area at (x, y). Bounds are
// checked before any cell is copied. The cursor is not moved.
func (g *Grid) Insert(x, y int, src *Grid) error {
	if src == nil {
		return ErrNilGrid
	}
	return g.buf.Insert(x, y, src.buf, false)
}

// State returns the occupancy of the cell at (x, y).
func (g *Grid) State(x, y int) (CellState, error) {
	if !g.buf.InBounds(x, y) {
		return Free, fmt.Errorf("cell (%d,%d): %w", x, y, ErrOutOfRange)
	}
	return stateOf(g.buf.States[g.buf.Index(x, y)]), nil
}

// FreeCells returns how many cells can still be written to.
func (g *Grid) FreeCells() int {
	return g.buf.Count(cells.Free)
}

// CursorX returns the cursor column.
func (g *Grid) CursorX() int { return g.buf.X }

// CursorY returns the cursor row.
func (g *Grid) CursorY() int { return g.buf.Y }

// SetCursorX moves the cursor to column x. Values outside the grid are
// ignored.
func (g *Grid) SetCursorX(x int) {
	if x < 0 || x >= g.buf.Width {
		return
	}
	g.buf.X = x
	g.buf.Initialized = true
}

// SetCursorY moves the cursor to row y. Values outside the grid are ignored.
func (g *Grid) SetCursorY(y int) {
	if y < 0 || y >= g.buf.Height {
		return
	}
	g.buf.Y = y
	g.buf.Initialized = true
}

// SetCursor moves the cursor to (x, y). Each coordinate is applied on its
// own, so an out-of-range x still lets a valid y through.
func (g *Grid) SetCursor(x, y int) {
	g.SetCursorX(x)
	g.SetCursorY(y)
}

// TrySetCursor moves the cursor to (x, y), or returns ErrOutOfRange and
// leaves it unchanged.
func (g *Grid) TrySetCursor(x, y int) error {
	if !g.buf.InBounds(x, y) {
		return fmt.Errorf("cursor (%d,%d) in %dx%d grid: %w", x, y, g.buf.Width, g.buf.Height, ErrOutOfRange)
	}
	g.buf.X, g.buf.Y = x, y
	g.buf.Initialized = true
	return nil
}

// Clone returns an independent copy of the grid, cursor included.
func (g *Grid) Clone() *Grid {
	return &Grid{buf: g.buf.Clone()}
}
