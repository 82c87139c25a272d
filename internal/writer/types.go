package writer

import (
	"fmt"

	"github.com/ryanlewis/textgrid/internal/cells"
	"github.com/ryanlewis/textgrid/internal/common"
	"github.com/ryanlewis/textgrid/internal/debug"
)

// Options contains write options passed from the main package
type Options struct {
	// Direction is one of the common.RowsLeftToRight family of constants
	Direction int
	// Justification is one of the common.Justify* constants
	Justification int
	// Anchor is one of the common.Anchor* constants
	Anchor int

	// AllowWrapping lets a segment continue on the next line
	AllowWrapping bool
	// AllowTruncation lets a word be cut when it fits nowhere whole
	AllowTruncation bool
	// WordSpacing keeps a one-cell gap to existing content
	WordSpacing bool
	// LookAhead searches later cells for room to place a whole word
	LookAhead bool

	// AllowBlank enables Blank as a non-wrapping blank
	AllowBlank bool
	// Blank is rendered as a space but never splits words
	Blank rune

	// Debug receives trace events; nil disables tracing
	Debug *debug.Session
}

// DefaultOptions returns the options used when the caller sets none.
func DefaultOptions() *Options {
	return &Options{
		Direction:       common.RowsLeftToRight,
		Justification:   common.JustifyNear,
		Anchor:          common.AnchorNone,
		AllowWrapping:   true,
		AllowTruncation: true,
		WordSpacing:     true,
		LookAhead:       true,
		AllowBlank:      true,
	}
}

// validate rejects option values with no defined behavior.
func (o *Options) validate() (mover, error) {
	m, err := moverFor(o.Direction)
	if err != nil {
		return nil, err
	}
	switch o.Justification {
	case common.JustifyNear, common.JustifyFar, common.JustifyCenter, common.JustifyFull:
	default:
		return nil, fmt.Errorf("justification %d: %w", o.Justification, common.ErrUnsupportedOption)
	}
	switch o.Anchor {
	case common.AnchorNone, common.AnchorBottom:
	default:
		return nil, fmt.Errorf("anchor %d: %w", o.Anchor, common.ErrUnsupportedOption)
	}
	return m, nil
}

// writePhase is a state of the per-call write machine.
type writePhase int

const (
	phaseIdle writePhase = iota
	phaseConsuming
	phaseCommitting
	phaseBreaking
	phaseDone
	phaseFailed
)

func (p writePhase) String() string {
	switch p {
	case phaseIdle:
		return "Idle"
	case phaseConsuming:
		return "ConsumingSegment"
	case phaseCommitting:
		return "JustifyingAndCommitting"
	case phaseBreaking:
		return "AdvancingOrBreaking"
	case phaseDone:
		return "Done"
	case phaseFailed:
		return "Failed"
	default:
		return fmt.Sprintf("writePhase(%d)", int(p))
	}
}

// commitResult is the outcome of committing text at the cursor.
type commitResult int

const (
	// movedOn means every rune was placed and the cursor sits on the next cell.
	movedOn commitResult = iota
	// endOfBuffer means the last rune landed on the final cell.
	endOfBuffer
	// truncated means the buffer ended with runes still to place.
	truncated
)

func (r commitResult) String() string {
	switch r {
	case movedOn:
		return "moved_on"
	case endOfBuffer:
		return "end_of_buffer"
	default:
		return "truncated"
	}
}

// writeState holds the state of one write call.
type writeState struct {
	buf   *cells.Buffer
	mv    mover
	opts  *Options
	debug *debug.Session

	input []rune
	pos   int // next unconsumed rune

	phase writePhase
}
