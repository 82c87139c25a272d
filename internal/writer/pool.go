package writer

import (
	"sync"

	"github.com/ryanlewis/textgrid/internal/cells"
)

const (
	// defaultInputCapacity covers most single writes without growing.
	defaultInputCapacity = 256
	// maxRetainInput drops input buffers above this many runes instead of
	// pooling them, so one large write does not pin memory.
	maxRetainInput = 4096
)

// writeStatePool reuses writeState objects and their input buffers across
// write calls.
var writeStatePool = sync.Pool{
	New: func() interface{} {
		return &writeState{
			input: make([]rune, 0, defaultInputCapacity),
		}
	},
}

// acquireWriteState gets a writeState from the pool and loads the
// normalized text into it.
func acquireWriteState(b *cells.Buffer, m mover, opts *Options, text string) *writeState {
	s := writeStatePool.Get().(*writeState)

	s.buf = b
	s.mv = m
	s.opts = opts
	s.debug = opts.Debug
	s.pos = 0
	s.phase = phaseIdle
	s.input = normalizeBreaks(s.input[:0], text)

	return s
}

// releaseWriteState returns a writeState to the pool.
func releaseWriteState(s *writeState) {
	if s == nil {
		return
	}

	// Clear references to help GC
	s.buf = nil
	s.mv = nil
	s.opts = nil
	s.debug = nil

	if cap(s.input) > maxRetainInput {
		s.input = nil
	}

	writeStatePool.Put(s)
}
