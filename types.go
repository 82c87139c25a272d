package textgrid

import (
	"fmt"

	"github.com/ryanlewis/textgrid/internal/cells"
	"github.com/ryanlewis/textgrid/internal/common"
	"github.com/ryanlewis/textgrid/internal/debug"
	"github.com/ryanlewis/textgrid/internal/parser"
	"github.com/ryanlewis/textgrid/internal/writer"
)

// CellState is the occupancy of one grid cell.
type CellState int

const (
	// Free cells can be written to.
	Free CellState = iota
	// Occupied cells hold content from a template, a write or a plot.
	Occupied
	// TempBlocked cells are spacing guards. They only exist during a write
	// and are never visible between calls.
	TempBlocked
)

// String returns the name of the state.
func (s CellState) String() string {
	switch s {
	case Free:
		return "Free"
	case Occupied:
		return "Occupied"
	case TempBlocked:
		return "TempBlocked"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

func stateOf(s cells.State) CellState {
	switch s {
	case cells.Free:
		return Free
	case cells.TempBlocked:
		return TempBlocked
	default:
		return Occupied
	}
}

// TemplateKind selects how a template is read.
type TemplateKind int

const (
	// MapTemplate marks free cells with '.' or space; any other rune is an
	// occupied cell with blank content.
	MapTemplate TemplateKind = TemplateKind(parser.KindMap)
	// ContentTemplate keeps every rune as content; cells holding the marker
	// rune are free and blanked.
	ContentTemplate TemplateKind = TemplateKind(parser.KindContent)
)

// String returns the name of the kind.
func (k TemplateKind) String() string {
	return parser.Kind(k).String()
}

// Common errors returned by the textgrid package
var (
	// ErrOutOfRange is returned when a coordinate, width or height lies
	// outside the grid
	ErrOutOfRange = common.ErrOutOfRange

	// ErrUnsupportedOption is returned for a direction, justification or
	// anchor with no defined behavior
	ErrUnsupportedOption = common.ErrUnsupportedOption

	// ErrUnequalWidths is returned when template rows differ in width
	ErrUnequalWidths = common.ErrUnequalWidths

	// ErrEmptyTemplate is returned when a template has no rows
	ErrEmptyTemplate = common.ErrEmptyTemplate

	// ErrNilGrid is returned when a nil grid is passed as a source
	ErrNilGrid = common.ErrNilGrid
)

// Option configures a write.
type Option func(*options)

type options struct {
	direction     Direction
	justification Justification
	anchor        Anchor

	wrap      bool
	truncate  bool
	spacing   bool
	lookAhead bool

	allowBlank bool
	blank      rune

	debug *debug.Session
}

func defaultOptions() *options {
	return &options{
		direction:     RowsLeftToRight,
		justification: JustifyNear,
		anchor:        AnchorNone,
		wrap:          true,
		truncate:      true,
		spacing:       true,
		lookAhead:     true,
		allowBlank:    true,
	}
}

func (o *options) toInternal() *writer.Options {
	return &writer.Options{
		Direction:       int(o.direction),
		Justification:   int(o.justification),
		Anchor:          int(o.anchor),
		AllowWrapping:   o.wrap,
		AllowTruncation: o.truncate,
		WordSpacing:     o.spacing,
		LookAhead:       o.lookAhead,
		AllowBlank:      o.allowBlank,
		Blank:           o.blank,
		Debug:           o.debug,
	}
}

// WithDirection sets the fill order. The default is RowsLeftToRight.
func WithDirection(d Direction) Option {
	return func(opts *options) {
		opts.direction = d
	}
}

// WithJustification sets how each line segment sits in its free run.
// The default is JustifyNear.
//
// Justification applies to segments placed by the wrapping path and to
// segments that fit their run whole. Segments cut by truncation without
// wrapping, and partial segments placed with neither wrapping nor
// truncation, are committed as they are.
func WithJustification(j Justification) Option {
	return func(opts *options) {
		opts.justification = j
	}
}

// WithAnchor sets where the text is placed. With AnchorBottom the grid is
// tried one bottom row at a time, growing upwards, and the first attempt that
// places the whole text is kept. The cursor ends after the placed text.
func WithAnchor(a Anchor) Option {
	return func(opts *options) {
		opts.anchor = a
	}
}

// WithWrapping controls whether a segment may continue on the next line.
// Enabled by default.
func WithWrapping(on bool) Option {
	return func(opts *options) {
		opts.wrap = on
	}
}

// WithTruncation controls whether a word that fits nowhere whole may be cut
// at the end of a free run. Enabled by default.
func WithTruncation(on bool) Option {
	return func(opts *options) {
		opts.truncate = on
	}
}

// WithWordSpacing controls the spacing guard. When enabled, text never
// touches existing content along the writing axis: the free neighbours of
// every occupied cell are blocked for the duration of the write.
// Enabled by default.
func WithWordSpacing(on bool) Option {
	return func(opts *options) {
		opts.spacing = on
	}
}

// WithLookAhead controls whether a word that does not fit the current run is
// moved to a later run that can hold it whole. Enabled by default.
func WithLookAhead(on bool) Option {
	return func(opts *options) {
		opts.lookAhead = on
	}
}

// WithNonWrappingBlank sets a rune that is written as a space but never
// splits words, and enables its substitution.
//
// Example:
//
//	g.Write("New_York is big", textgrid.WithNonWrappingBlank('_'))
func WithNonWrappingBlank(r rune) Option {
	return func(opts *options) {
		opts.blank = r
		opts.allowBlank = true
	}
}

// WithNonWrappingBlankEnabled switches the blank substitution on or off
// without changing the rune.
func WithNonWrappingBlankEnabled(on bool) Option {
	return func(opts *options) {
		opts.allowBlank = on
	}
}

// WithDebug attaches a trace session to the write. A nil session disables
// tracing, which is also the default.
func WithDebug(s *debug.Session) Option {
	return func(opts *options) {
		opts.debug = s
	}
}
