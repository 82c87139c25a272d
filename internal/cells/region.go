package cells

import (
	"fmt"

	"github.com/ryanlewis/textgrid/internal/common"
)

// Extract copies the w x h area at (x, y) into a new buffer. The new buffer
// has its own cursor at the origin, not yet initialized.
func (b *Buffer) Extract(x, y, w, h int) (*Buffer, error) {
	switch {
	case x < 0 || x >= b.Width:
		return nil, fmt.Errorf("x %d: %w", x, common.ErrOutOfRange)
	case w <= 0 || x+w > b.Width:
		return nil, fmt.Errorf("width %d at x %d: %w", w, x, common.ErrOutOfRange)
	case y < 0 || y >= b.Height:
		return nil, fmt.Errorf("y %d: %w", y, common.ErrOutOfRange)
	case h <= 0 || y+h > b.Height:
		return nil, fmt.Errorf("height %d at y %d: %w", h, y, common.ErrOutOfRange)
	}

	dst, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for row := 0; row < h; row++ {
		src := b.Index(x, y+row)
		at := row * w
		copy(dst.Content[at:at+w], b.Content[src:src+w])
		copy(dst.States[at:at+w], b.States[src:src+w])
	}
	return dst, nil
}

// Insert overwrites the area at (x, y) with the cells of src. All bounds are
// checked before any cell is copied. With moveCursor set, the cursor is moved
// to src's cursor translated by (x, y).
func (b *Buffer) Insert(x, y int, src *Buffer, moveCursor bool) error {
	switch {
	case x < 0 || x >= b.Width:
		return fmt.Errorf("x %d: %w", x, common.ErrOutOfRange)
	case x+src.Width > b.Width:
		return fmt.Errorf("source width %d at x %d: %w", src.Width, x, common.ErrOutOfRange)
	case y < 0 || y >= b.Height:
		return fmt.Errorf("y %d: %w", y, common.ErrOutOfRange)
	case y+src.Height > b.Height:
		return fmt.Errorf("source height %d at y %d: %w", src.Height, y, common.ErrOutOfRange)
	}

	for row := 0; row < src.Height; row++ {
		dst := b.Index(x, y+row)
		at := row * src.Width
		copy(b.Content[dst:dst+src.Width], src.Content[at:at+src.Width])
		copy(b.States[dst:dst+src.Width], src.States[at:at+src.Width])
	}

	if moveCursor {
		b.X = x + src.X
		b.Y = y + src.Y
	}
	return nil
}
