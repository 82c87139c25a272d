package debug

import (
	"fmt"

	"github.com/ryanlewis/textgrid/internal/common"
)

// FormatFlags returns the names of the enabled boolean write options.
func FormatFlags(wrap, truncate, spacing, lookahead, blank bool) []string {
	var flags []string

	if wrap {
		flags = append(flags, "Wrap")
	}
	if truncate {
		flags = append(flags, "Truncate")
	}
	if spacing {
		flags = append(flags, "WordSpacing")
	}
	if lookahead {
		flags = append(flags, "LookAhead")
	}
	if blank {
		flags = append(flags, "NonWrappingBlank")
	}

	if len(flags) == 0 {
		return []string{"None"}
	}
	return flags
}

// DirectionName returns a short name for a direction value.
func DirectionName(d int) string {
	switch d {
	case common.RowsLeftToRight:
		return "ltr"
	case common.RowsRightToLeft:
		return "rtl"
	case common.ColumnsTopToBottom:
		return "col"
	default:
		return fmt.Sprintf("direction(%d)", d)
	}
}

// JustificationName returns a short name for a justification value.
func JustificationName(j int) string {
	switch j {
	case common.JustifyNear:
		return "near"
	case common.JustifyFar:
		return "far"
	case common.JustifyCenter:
		return "center"
	case common.JustifyFull:
		return "full"
	default:
		return fmt.Sprintf("justification(%d)", j)
	}
}

// AnchorName returns a short name for an anchor value.
func AnchorName(a int) string {
	switch a {
	case common.AnchorNone:
		return "none"
	case common.AnchorBottom:
		return "bottom"
	default:
		return fmt.Sprintf("anchor(%d)", a)
	}
}
