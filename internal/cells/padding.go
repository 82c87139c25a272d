package cells

// Axis selects which neighbours the padding guard blocks.
type Axis int

const (
	// AxisRows blocks the cells left and right of occupied cells.
	AxisRows Axis = iota
	// AxisColumns blocks the cells above and below occupied cells.
	AxisColumns
)

// Padding is an applied spacing guard. Release must be called on every
// exit path of the write that acquired it.
type Padding struct {
	b      *Buffer
	marked int
}

// Pad marks every free neighbour of an occupied cell as TempBlocked.
// Cells blocked during the scan do not themselves spread padding.
func (b *Buffer) Pad(axis Axis) *Padding {
	p := &Padding{b: b}
	for i, s := range b.States {
		if s != Occupied {
			continue
		}
		x, y := b.XY(i)
		switch axis {
		case AxisRows:
			if x > 0 {
				p.block(i - 1)
			}
			if x < b.Width-1 {
				p.block(i + 1)
			}
		case AxisColumns:
			if y > 0 {
				p.block(i - b.Width)
			}
			if y < b.Height-1 {
				p.block(i + b.Width)
			}
		}
	}
	return p
}

func (p *Padding) block(i int) {
	if p.b.States[i] == Free {
		p.b.States[i] = TempBlocked
		p.marked++
	}
}

// Marked returns how many cells the guard blocked.
func (p *Padding) Marked() int {
	if p == nil {
		return 0
	}
	return p.marked
}

// Release returns every TempBlocked cell to Free. It is safe to call more
// than once and on a nil guard.
func (p *Padding) Release() {
	if p == nil || p.b == nil {
		return
	}
	for i, s := range p.b.States {
		if s == TempBlocked {
			p.b.States[i] = Free
		}
	}
	p.b = nil
}
