// Package cells holds the fixed-size content and occupancy buffers behind a
// text grid, together with the cursor that write operations move across them.
package cells

import (
	"fmt"

	"github.com/ryanlewis/textgrid/internal/common"
)

// State is the occupancy of a single cell.
type State uint8

const (
	// Free cells may be written to.
	Free State = iota
	// Occupied cells already hold committed content.
	Occupied
	// TempBlocked cells are spacing guards that only live for one write call.
	TempBlocked
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Free:
		return "Free"
	case Occupied:
		return "Occupied"
	case TempBlocked:
		return "TempBlocked"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Rune returns the map character used when rendering the state.
func (s State) Rune() rune {
	switch s {
	case Free:
		return common.MapFree
	case TempBlocked:
		return common.MapTempBlocked
	default:
		return common.MapOccupied
	}
}

// Buffer is a row-major grid of runes with a parallel occupancy map.
//
// Content and States always have Width*Height entries. The cursor is kept
// as (X, Y); its linear index is derived on demand.
type Buffer struct {
	Content []rune
	States  []State

	Width  int
	Height int

	// X and Y locate the cursor.
	X int
	Y int

	// Initialized is set once the cursor has been positioned, either by the
	// first write or explicitly by the caller.
	Initialized bool
}

// New returns a buffer with every cell free and blank.
func New(width, height int) (*Buffer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width %d: %w", width, common.ErrOutOfRange)
	}
	if height <= 0 {
		return nil, fmt.Errorf("height %d: %w", height, common.ErrOutOfRange)
	}

	n := width * height
	b := &Buffer{
		Content: make([]rune, n),
		States:  make([]State, n),
		Width:   width,
		Height:  height,
	}
	for i := range b.Content {
		b.Content[i] = ' '
	}
	return b, nil
}

// FromCells builds a buffer around existing content and state slices.
// The slices are used directly, not copied.
func FromCells(width, height int, content []rune, states []State) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("size %dx%d: %w", width, height, common.ErrOutOfRange)
	}
	n := width * height
	if len(content) != n || len(states) != n {
		return nil, fmt.Errorf("cell count %d/%d, want %d: %w", len(content), len(states), n, common.ErrOutOfRange)
	}
	return &Buffer{
		Content: content,
		States:  states,
		Width:   width,
		Height:  height,
	}, nil
}

// Index converts a coordinate to a linear index.
func (b *Buffer) Index(x, y int) int {
	return y*b.Width + x
}

// XY converts a linear index to a coordinate.
func (b *Buffer) XY(index int) (x, y int) {
	return index % b.Width, index / b.Width
}

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// SetCursorIndex moves the cursor to a linear index.
func (b *Buffer) SetCursorIndex(index int) {
	b.X, b.Y = b.XY(index)
}

// IsFree reports whether the cell at index can be written to.
func (b *Buffer) IsFree(index int) bool {
	return b.States[index] == Free
}

// Put stores r at index and marks the cell occupied.
func (b *Buffer) Put(index int, r rune) {
	b.Content[index] = r
	b.States[index] = Occupied
}

// Count returns how many cells are in state s.
func (b *Buffer) Count(s State) int {
	n := 0
	for _, st := range b.States {
		if st == s {
			n++
		}
	}
	return n
}

// Clone returns an independent copy including the cursor.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Content = append([]rune(nil), b.Content...)
	c.States = append([]State(nil), b.States...)
	return &c
}
