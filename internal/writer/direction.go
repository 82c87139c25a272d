package writer

import (
	"fmt"

	"github.com/ryanlewis/textgrid/internal/cells"
	"github.com/ryanlewis/textgrid/internal/common"
)

// point is a cell coordinate.
type point struct {
	x, y int
}

// mover encapsulates everything that differs between writing directions.
// The main axis is the one runes are laid along; the cross axis is advanced
// on line breaks.
type mover interface {
	// start is the first cell written by a fresh grid.
	start(b *cells.Buffer) point
	// step moves one cell along the main axis without leaving the line.
	step(b *cells.Buffer, p point) (point, bool)
	// nextLine moves to the first cell of the next line.
	nextLine(b *cells.Buffer, p point) (point, bool)
	// atLineStart reports whether p is the first cell of its line.
	atLineStart(b *cells.Buffer, p point) bool
	// mainPosition is the line number p sits on.
	mainPosition(p point) int
	// axis selects the neighbours the spacing guard blocks.
	axis() cells.Axis
}

func moverFor(direction int) (mover, error) {
	switch direction {
	case common.RowsLeftToRight:
		return ltrRows{}, nil
	case common.RowsRightToLeft:
		return rtlRows{}, nil
	case common.ColumnsTopToBottom:
		return ttbColumns{}, nil
	default:
		return nil, fmt.Errorf("direction %d: %w", direction, common.ErrUnsupportedOption)
	}
}

// ltrRows writes across rows from the left edge.
type ltrRows struct{}

func (ltrRows) start(*cells.Buffer) point { return point{0, 0} }

func (ltrRows) step(b *cells.Buffer, p point) (point, bool) {
	if p.x+1 >= b.Width {
		return p, false
	}
	return point{p.x + 1, p.y}, true
}

func (ltrRows) nextLine(b *cells.Buffer, p point) (point, bool) {
	if p.y+1 >= b.Height {
		return p, false
	}
	return point{0, p.y + 1}, true
}

func (ltrRows) atLineStart(_ *cells.Buffer, p point) bool { return p.x == 0 }
func (ltrRows) mainPosition(p point) int                  { return p.y }
func (ltrRows) axis() cells.Axis                          { return cells.AxisRows }

// rtlRows writes across rows from the right edge.
type rtlRows struct{}

func (rtlRows) start(b *cells.Buffer) point { return point{b.Width - 1, 0} }

func (rtlRows) step(_ *cells.Buffer, p point) (point, bool) {
	if p.x-1 < 0 {
		return p, false
	}
	return point{p.x - 1, p.y}, true
}

func (rtlRows) nextLine(b *cells.Buffer, p point) (point, bool) {
	if p.y+1 >= b.Height {
		return p, false
	}
	return point{b.Width - 1, p.y + 1}, true
}

func (rtlRows) atLineStart(b *cells.Buffer, p point) bool { return p.x == b.Width-1 }
func (rtlRows) mainPosition(p point) int                  { return p.y }
func (rtlRows) axis() cells.Axis                          { return cells.AxisRows }

// ttbColumns writes down columns, leftmost first.
type ttbColumns struct{}

func (ttbColumns) start(*cells.Buffer) point { return point{0, 0} }

func (ttbColumns) step(b *cells.Buffer, p point) (point, bool) {
	if p.y+1 >= b.Height {
		return p, false
	}
	return point{p.x, p.y + 1}, true
}

func (ttbColumns) nextLine(b *cells.Buffer, p point) (point, bool) {
	if p.x+1 >= b.Width {
		return p, false
	}
	return point{p.x + 1, 0}, true
}

func (ttbColumns) atLineStart(_ *cells.Buffer, p point) bool { return p.y == 0 }
func (ttbColumns) mainPosition(p point) int                  { return p.x }
func (ttbColumns) axis() cells.Axis                          { return cells.AxisColumns }

// advance moves n cells along the main axis, continuing on the next line
// whenever a line ends. On failure p is returned unchanged.
func advance(b *cells.Buffer, m mover, p point, n int) (point, bool) {
	q := p
	for ; n > 0; n-- {
		next, ok := m.step(b, q)
		if !ok {
			if next, ok = m.nextLine(b, q); !ok {
				return p, false
			}
		}
		q = next
	}
	return q, true
}

// advanceMainOnly moves n cells without leaving the current line.
// On failure p is returned unchanged.
func advanceMainOnly(b *cells.Buffer, m mover, p point, n int) (point, bool) {
	q := p
	for ; n > 0; n-- {
		next, ok := m.step(b, q)
		if !ok {
			return p, false
		}
		q = next
	}
	return q, true
}

// countFreeRun counts contiguous free cells from p to the end of its line.
func countFreeRun(b *cells.Buffer, m mover, p point) int {
	n := 0
	for b.IsFree(b.Index(p.x, p.y)) {
		n++
		next, ok := m.step(b, p)
		if !ok {
			break
		}
		p = next
	}
	return n
}

// lookAheadForSpace searches from p for need contiguous free cells on one
// line and returns the index of the first of them. With wrap set the search
// carries on line by line until the buffer ends.
func lookAheadForSpace(b *cells.Buffer, m mover, p point, need int, wrap bool) (int, bool) {
	run, first := 0, -1
	for {
		idx := b.Index(p.x, p.y)
		if b.IsFree(idx) {
			run++
			if first < 0 {
				first = idx
			}
			if run >= need {
				return first, true
			}
		} else {
			run, first = 0, -1
		}

		next, ok := m.step(b, p)
		if !ok {
			if !wrap {
				return -1, false
			}
			run, first = 0, -1
			if next, ok = m.nextLine(b, p); !ok {
				return -1, false
			}
		}
		p = next
	}
}

func cursorOf(b *cells.Buffer) point {
	return point{b.X, b.Y}
}

func setCursor(b *cells.Buffer, p point) {
	b.X, b.Y = p.x, p.y
}
