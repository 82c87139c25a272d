package writer

import "github.com/ryanlewis/textgrid/internal/debug"

// fit is the word-fit decision for one segment.
type fit struct {
	// text is what to commit now. It is always a contiguous slice of the
	// segment, starting after any leading spaces.
	text []rune
	// consumed is how many segment runes text accounts for, including the
	// leading spaces that were skipped.
	consumed int
	// resume is the index of a later free run big enough for the first word
	// that did not fit, or -1.
	resume int
	// reason names the branch taken, for tracing.
	reason string
}

// resolveFit decides how much of seg to place in the free run of length run
// starting at p. wrap selects whether the lookahead may cross lines.
func (s *writeState) resolveFit(p point, run int, seg []rune, wrap bool) fit {
	f := s.bestFit(p, run, seg, wrap)
	s.debug.Emit("write", "Fit", debug.FitData{
		Reason:   f.reason,
		FreeRun:  run,
		Placed:   len(f.text),
		Consumed: f.consumed,
		Resume:   f.resume,
	})
	return f
}

func (s *writeState) bestFit(p point, run int, seg []rune, wrap bool) fit {
	if len(seg) <= run {
		return fit{text: seg, consumed: len(seg), resume: -1, reason: "whole"}
	}
	if !s.opts.LookAhead {
		return fit{text: seg[:run], consumed: run, resume: -1, reason: "hardcut"}
	}

	lead := 0
	for lead < len(seg) && seg[lead] == ' ' {
		lead++
	}
	words := seg[lead:]

	// n is the length of the accepted prefix of words; left mirrors the
	// free cells still unclaimed and may go negative.
	n, left := 0, run
	result := func(reason string, resume int) fit {
		return fit{text: words[:n], consumed: lead + n, resume: resume, reason: reason}
	}

	for start := 0; start <= len(words); {
		end := start
		for end < len(words) && words[end] != ' ' {
			end++
		}
		word := end - start

		if n != 0 {
			n++ // separating space
			left--
		}

		if n+word <= run {
			n += word
			left -= word
			if left <= 0 {
				return result("words", -1)
			}
			start = end + 1
			continue
		}

		// The word does not fit in this run. Look for room after it.
		var after point
		var ok bool
		if wrap {
			after, ok = advance(s.buf, s.mv, p, run)
		} else {
			after, ok = advanceMainOnly(s.buf, s.mv, p, run)
		}
		if ok {
			if idx, found := lookAheadForSpace(s.buf, s.mv, after, word, wrap); found {
				return result("lookahead", idx)
			}
		}

		if !s.opts.AllowTruncation {
			return result("words", -1)
		}

		// Cut the word where the run ends. When the separating space already
		// used the last cell the cut never triggers and the whole word goes in.
		for i := 0; i < word; i++ {
			n++
			left--
			if left == 0 {
				break
			}
		}
		return result("truncate", -1)
	}

	return result("words", -1)
}
