// Package common provides shared constants and types for internal packages.
// These constants must match the public API in the textgrid package.
package common

import "errors"

// Direction constants (must match public API in textgrid package)
const (
	// RowsLeftToRight writes across rows from the left, top row first
	RowsLeftToRight = 0
	// RowsRightToLeft writes across rows from the right, top row first
	RowsRightToLeft = 1
	// ColumnsTopToBottom writes down columns, leftmost column first
	ColumnsTopToBottom = 2
)

// Justification constants (must match public API)
const (
	JustifyNear   = 0
	JustifyFar    = 1
	JustifyCenter = 2
	JustifyFull   = 3
)

// Anchor constants (must match public API)
const (
	AnchorNone   = 0
	AnchorBottom = 1
)

// Map characters used when rendering occupancy state as text
const (
	MapFree        = '.'
	MapOccupied    = 'W'
	MapTempBlocked = 'w'
)

// Template characters
const (
	// Border delimits a template row on either side
	Border = '|'
	// DefaultMarker marks writable cells in a content template
	DefaultMarker = ' '
)

// Common errors (must match public API in textgrid package)
var (
	// ErrOutOfRange is returned when a coordinate or size is outside the grid
	ErrOutOfRange = errors.New("out of range")
	// ErrUnsupportedOption is returned for a direction, justification or anchor with no defined behavior
	ErrUnsupportedOption = errors.New("unsupported option")
	// ErrUnequalWidths is returned when template rows differ in width
	ErrUnequalWidths = errors.New("unequal template widths")
	// ErrEmptyTemplate is returned when a template has no rows
	ErrEmptyTemplate = errors.New("empty template")
	// ErrNilGrid is returned when a nil grid is passed where one is required
	ErrNilGrid = errors.New("nil grid")
)
