package writer

import (
	"unicode"

	"github.com/ryanlewis/textgrid/internal/common"
)

// justify pads s to width according to mode. The result may be shorter than
// width when Full justification finds no interior space, and longer when s
// already exceeds width.
func justify(s []rune, width, mode int) []rune {
	switch mode {
	case common.JustifyFar:
		s = trimRight(s)
		if pad := width - len(s); pad > 0 {
			return append(spaces(pad), s...)
		}
		return s

	case common.JustifyCenter:
		s = trimRight(trimLeft(s))
		pad := width - len(s)
		if pad <= 0 {
			return s
		}
		before := pad / 2
		out := append(spaces(before), s...)
		return append(out, spaces(pad-before)...)

	case common.JustifyFull:
		return spread(trimRight(trimLeft(s)), width)

	default:
		return trimLeft(s)
	}
}

// spread widens the gaps of s until it is width runes long. Each extra space
// goes before the last space found scanning backwards from a moving cursor;
// when the scan runs off the front it restarts from the end.
func spread(s []rune, width int) []rune {
	pad := width - len(s)
	if pad <= 0 || lastSpace(s, len(s)-1) < 0 {
		return s
	}

	out := make([]rune, len(s), width)
	copy(out, s)

	from := len(out) - 1
	for pad > 0 {
		idx := lastSpace(out, from)
		if idx < 0 {
			from = len(out) - 1
			continue
		}
		out = append(out, 0)
		copy(out[idx+1:], out[idx:])
		out[idx] = ' '
		pad--

		from = idx - 1
		if from < 0 {
			from = len(out) - 1
		}
	}
	return out
}

// lastSpace returns the index of the last ' ' at or before from, or -1.
func lastSpace(s []rune, from int) int {
	for i := from; i >= 0; i-- {
		if s[i] == ' ' {
			return i
		}
	}
	return -1
}

func trimLeft(s []rune) []rune {
	i := 0
	for i < len(s) && unicode.IsSpace(s[i]) {
		i++
	}
	return s[i:]
}

func trimRight(s []rune) []rune {
	i := len(s)
	for i > 0 && unicode.IsSpace(s[i-1]) {
		i--
	}
	return s[:i]
}

func spaces(n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = ' '
	}
	return out
}
