package textgrid

import (
	"fmt"
	"strings"

	"github.com/ryanlewis/textgrid/internal/common"
)

// Direction is the order in which cells are filled.
//
// Rows directions lay runes along a row and move down one row per line;
// ColumnsTopToBottom lays runes down a column and moves right one column
// per line.
type Direction int

const (
	// RowsLeftToRight fills rows from the left edge, top row first.
	RowsLeftToRight Direction = common.RowsLeftToRight
	// RowsRightToLeft fills rows from the right edge, top row first. Runes
	// are placed in input order, so text reads mirrored.
	RowsRightToLeft Direction = common.RowsRightToLeft
	// ColumnsTopToBottom fills columns from the top, leftmost column first.
	ColumnsTopToBottom Direction = common.ColumnsTopToBottom
)

// Justification places a line segment within the free run it is written to.
type Justification int

const (
	// JustifyNear drops leading spaces and starts at the beginning of the run.
	JustifyNear Justification = common.JustifyNear
	// JustifyFar drops trailing spaces and ends at the end of the run.
	JustifyFar Justification = common.JustifyFar
	// JustifyCenter splits the padding, putting the smaller half first.
	JustifyCenter Justification = common.JustifyCenter
	// JustifyFull widens the gaps between words to fill the run.
	JustifyFull Justification = common.JustifyFull
)

// Anchor selects where in the grid a write is placed.
type Anchor int

const (
	// AnchorNone writes from the current cursor.
	AnchorNone Anchor = common.AnchorNone
	// AnchorBottom writes into the fewest bottom rows that hold the whole text.
	AnchorBottom Anchor = common.AnchorBottom
)

// String returns the short name used on the command line.
func (d Direction) String() string {
	switch d {
	case RowsLeftToRight:
		return "ltr"
	case RowsRightToLeft:
		return "rtl"
	case ColumnsTopToBottom:
		return "col"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// String returns the short name used on the command line.
func (j Justification) String() string {
	switch j {
	case JustifyNear:
		return "near"
	case JustifyFar:
		return "far"
	case JustifyCenter:
		return "center"
	case JustifyFull:
		return "full"
	default:
		return fmt.Sprintf("Justification(%d)", int(j))
	}
}

// String returns the short name used on the command line.
func (a Anchor) String() string {
	switch a {
	case AnchorNone:
		return "none"
	case AnchorBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// ParseDirection converts a name to a Direction. Matching ignores case and
// accepts a few long forms ("left-to-right", "right-to-left", "columns").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr", "left-to-right", "rows":
		return RowsLeftToRight, nil
	case "rtl", "right-to-left":
		return RowsRightToLeft, nil
	case "col", "cols", "columns", "top-to-bottom":
		return ColumnsTopToBottom, nil
	}
	return 0, fmt.Errorf("direction %q: %w", s, ErrUnsupportedOption)
}

// ParseJustification converts a name to a Justification.
// "left" and "right" are accepted as aliases for near and far.
func ParseJustification(s string) (Justification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "near", "left":
		return JustifyNear, nil
	case "far", "right":
		return JustifyFar, nil
	case "center", "centre":
		return JustifyCenter, nil
	case "full", "justify":
		return JustifyFull, nil
	}
	return 0, fmt.Errorf("justification %q: %w", s, ErrUnsupportedOption)
}

// ParseAnchor converts a name to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return AnchorNone, nil
	case "bottom":
		return AnchorBottom, nil
	}
	return 0, fmt.Errorf("anchor %q: %w", s, ErrUnsupportedOption)
}
