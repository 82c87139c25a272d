package writer

import (
	"github.com/ryanlewis/textgrid/internal/cells"
	"github.com/ryanlewis/textgrid/internal/debug"
)

// writeBottom finds the fewest bottom rows that take the whole text.
// Each candidate height is tried on an extracted copy; the first copy that
// succeeds is inserted back and the live cursor follows it. When no height
// works b is left untouched.
func writeBottom(b *cells.Buffer, m mover, text string, opts *Options) bool {
	for rows := 1; rows <= b.Height; rows++ {
		top := b.Height - rows

		trial, err := b.Extract(0, top, b.Width, rows)
		if err != nil {
			opts.Debug.Emit("anchor", "Error", debug.ErrorData{
				Type:    "extract",
				Message: err.Error(),
				Context: map[string]interface{}{"rows": rows},
			})
			return false
		}
		placed := write(trial, m, text, opts)

		opts.Debug.Emit("anchor", "Trial", debug.AnchorData{
			Anchor: debug.AnchorName(opts.Anchor),
			Rows:   rows,
			Placed: placed,
		})

		if !placed {
			continue
		}
		if err := b.Insert(0, top, trial, true); err != nil {
			opts.Debug.Emit("anchor", "Error", debug.ErrorData{
				Type:    "insert",
				Message: err.Error(),
				Context: map[string]interface{}{"rows": rows},
			})
			return false
		}
		b.Initialized = true
		return true
	}
	return false
}
