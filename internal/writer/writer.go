// Package writer implements the text placement engine: cursor movement per
// direction, word fitting with lookahead, justification, the per-call write
// state machine and anchored placement.
package writer

import (
	"strings"
	"time"

	"github.com/ryanlewis/textgrid/internal/cells"
	"github.com/ryanlewis/textgrid/internal/common"
	"github.com/ryanlewis/textgrid/internal/debug"
)

// Write places text into b according to opts and reports whether every rune
// was placed. The error is non-nil only when opts names a direction,
// justification or anchor with no defined behavior.
func Write(b *cells.Buffer, text string, opts *Options) (bool, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	m, err := opts.validate()
	if err != nil {
		opts.Debug.Emit("write", "Error", debug.ErrorData{
			Type:    "options",
			Message: err.Error(),
		})
		return false, err
	}
	if text == "" {
		return true, nil
	}
	if opts.Anchor == common.AnchorBottom {
		return writeBottom(b, m, text, opts), nil
	}
	return write(b, m, text, opts), nil
}

func write(b *cells.Buffer, m mover, text string, opts *Options) bool {
	s := acquireWriteState(b, m, opts, text)
	defer releaseWriteState(s)
	return s.run()
}

// normalizeBreaks appends text to dst with "\n\r", "\r\n" and lone "\r"
// each collapsed to "\n".
func normalizeBreaks(dst []rune, text string) []rune {
	if strings.ContainsRune(text, '\r') {
		text = strings.ReplaceAll(text, "\n\r", "\n")
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	for _, r := range text {
		dst = append(dst, r)
	}
	return dst
}

func (s *writeState) run() (placed bool) {
	var startTime time.Time
	if s.debug != nil {
		startTime = time.Now()
		s.debug.Emit("write", "Start", debug.WriteStartData{
			Text:          string(s.input),
			TextLength:    len(s.input),
			Width:         s.buf.Width,
			Height:        s.buf.Height,
			Direction:     debug.DirectionName(s.opts.Direction),
			Justification: debug.JustificationName(s.opts.Justification),
			Anchor:        debug.AnchorName(s.opts.Anchor),
			Flags: debug.FormatFlags(s.opts.AllowWrapping, s.opts.AllowTruncation,
				s.opts.WordSpacing, s.opts.LookAhead, s.opts.AllowBlank),
			CursorX: s.buf.X,
			CursorY: s.buf.Y,
		})
	}
	defer func() {
		if placed {
			s.transition(phaseDone)
		} else {
			s.transition(phaseFailed)
		}
		if s.debug != nil {
			s.debug.Emit("write", "End", debug.WriteEndData{
				Placed:    placed,
				Consumed:  s.pos,
				Remaining: len(s.input) - s.pos,
				CursorX:   s.buf.X,
				CursorY:   s.buf.Y,
				ElapsedUs: time.Since(startTime).Microseconds(),
			})
		}
	}()

	if s.opts.WordSpacing {
		pad := s.buf.Pad(s.mv.axis())
		defer pad.Release()
		if s.debug != nil {
			axis := "rows"
			if s.mv.axis() == cells.AxisColumns {
				axis = "columns"
			}
			s.debug.Emit("write", "Padding", debug.PaddingData{Axis: axis, Marked: pad.Marked()})
		}
	}

	if !s.buf.Initialized {
		setCursor(s.buf, s.mv.start(s.buf))
		s.buf.Initialized = true
	}

	for s.pos < len(s.input) {
		s.transition(phaseConsuming)
		cur := cursorOf(s.buf)

		// Leading spaces are dropped at the start of a line.
		if s.mv.atLineStart(s.buf, cur) {
			for s.pos < len(s.input) && s.input[s.pos] == ' ' {
				s.pos++
			}
			if s.pos == len(s.input) {
				return true
			}
		}

		run := countFreeRun(s.buf, s.mv, cur)
		if run == 0 {
			next, ok := s.seekFree(cur)
			if !ok {
				return false
			}
			cur = next
			setCursor(s.buf, cur)
			run = countFreeRun(s.buf, s.mv, cur)
		}

		end := s.pos
		for end < len(s.input) && s.input[end] != '\n' {
			end++
		}

		if end == s.pos {
			// The cursor sits on a line break.
			s.transition(phaseBreaking)
			next, ok := s.mv.nextLine(s.buf, cur)
			s.emitBreak(cur, next, ok, ok)
			if !ok {
				return false
			}
			setCursor(s.buf, next)
			s.pos++
			continue
		}

		seg := s.input[s.pos:end]
		breakPending := end < len(s.input)
		mainBefore := s.mv.mainPosition(cur)

		if s.debug != nil {
			s.debug.Emit("write", "Segment", debug.SegmentData{
				Position:     s.pos,
				Length:       len(seg),
				FreeRun:      run,
				BreakPending: breakPending,
				CursorX:      cur.x,
				CursorY:      cur.y,
			})
		}

		if len(seg) > run {
			switch {
			case s.opts.AllowWrapping:
				f := s.resolveFit(cur, run, seg, true)
				if len(f.text) == 0 {
					if f.resume < 0 {
						return false
					}
					s.jump(f.resume)
					continue
				}
				s.pos += f.consumed
				res := s.commit(justify(f.text, run, s.opts.Justification))
				if done, ok := s.settle(res); done {
					return ok
				}
				if f.resume >= 0 {
					s.jump(f.resume)
				}

			case s.opts.AllowTruncation:
				s.pos += run
				res := s.commit(seg[:run])
				if done, ok := s.settle(res); done {
					return ok
				}
				// Landing on a new line means the cut crossed a line end,
				// which is not allowed without wrapping.
				if s.mv.atLineStart(s.buf, cursorOf(s.buf)) {
					return false
				}

			default:
				f := s.resolveFit(cur, run, seg, false)
				if len(f.text) == 0 {
					if f.resume < 0 {
						return false
					}
					s.jump(f.resume)
					continue
				}
				s.pos += f.consumed
				res := s.commit(f.text)
				if done, ok := s.settle(res); done {
					return ok
				}
				if f.resume >= 0 {
					s.jump(f.resume)
				}
			}
		} else {
			s.pos += len(seg)
			res := s.commit(justify(seg, run, s.opts.Justification))
			if done, ok := s.settle(res); done {
				return ok
			}
		}

		// The whole segment is placed and a line break follows it. A wrap
		// that already moved to a new line stands in for the break.
		if breakPending && s.pos == end {
			s.transition(phaseBreaking)
			after := cursorOf(s.buf)
			if s.mv.mainPosition(after) != mainBefore {
				s.emitBreak(after, after, false, true)
				s.pos++
				continue
			}
			next, ok := s.mv.nextLine(s.buf, after)
			s.emitBreak(after, next, ok, ok)
			if !ok {
				return false
			}
			setCursor(s.buf, next)
			s.pos++
		}
	}

	return true
}

// seekFree moves from p to the next free cell, crossing lines as needed.
func (s *writeState) seekFree(p point) (point, bool) {
	for !s.buf.IsFree(s.buf.Index(p.x, p.y)) {
		next, ok := advance(s.buf, s.mv, p, 1)
		if !ok {
			return p, false
		}
		p = next
	}
	return p, true
}

// commit writes text at the cursor one cell at a time, marking each cell
// occupied. Cells are overwritten regardless of their state.
func (s *writeState) commit(text []rune) commitResult {
	s.transition(phaseCommitting)

	start := cursorOf(s.buf)
	p := start
	res := movedOn
	written := 0
	for i, r := range text {
		if s.opts.AllowBlank && r == s.opts.Blank {
			r = ' '
		}
		s.buf.Put(s.buf.Index(p.x, p.y), r)
		written++

		next, ok := advance(s.buf, s.mv, p, 1)
		if !ok {
			if i == len(text)-1 {
				res = endOfBuffer
			} else {
				res = truncated
			}
			break
		}
		p = next
	}
	setCursor(s.buf, p)

	if s.debug != nil {
		s.debug.Emit("write", "Commit", debug.CommitData{
			Text:    string(text),
			StartX:  start.x,
			StartY:  start.y,
			Written: written,
			Result:  res.String(),
		})
	}
	return res
}

// settle reports whether a commit result ends the write, and if so whether
// everything was placed.
func (s *writeState) settle(res commitResult) (done, placed bool) {
	switch res {
	case truncated:
		return true, false
	case endOfBuffer:
		return true, s.pos >= len(s.input)
	default:
		return false, false
	}
}

// jump moves the cursor to a free run found by lookahead.
func (s *writeState) jump(index int) {
	s.buf.SetCursorIndex(index)
}

func (s *writeState) transition(to writePhase) {
	if s.phase == to {
		return
	}
	if s.debug != nil {
		s.debug.Emit("write", "Phase", debug.PhaseData{From: s.phase.String(), To: to.String()})
	}
	s.phase = to
}

func (s *writeState) emitBreak(from, to point, advanced, ok bool) {
	if s.debug == nil {
		return
	}
	s.debug.Emit("write", "Break", debug.BreakData{
		MainBefore: s.mv.mainPosition(from),
		MainAfter:  s.mv.mainPosition(to),
		Advanced:   advanced,
		OK:         ok,
	})
}
