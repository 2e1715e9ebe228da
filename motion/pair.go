package motion

import "github.com/austencloud/tka-studio-sub005/grid"

// Pair is the blue/red motion couple of one pictograph. GridMode is the
// pictograph's own mode, used to backfill motions that arrived without one.
type Pair struct {
	Blue     *Record
	Red      *Record
	GridMode grid.Mode
}

// backfill normalizes a motion that arrived without an explicit grid mode.
// This is lazy normalization of the existing record, not a new allocation.
func (p *Pair) backfill(m *Record) *Record {
	if m != nil && m.GridMode == "" {
		m.GridMode = p.GridMode
	}

	return m
}

// Other returns the sibling actor's motion for m, or nil when m is nil or
// does not belong to the pair. The sibling's grid mode is backfilled from
// the pictograph if missing.
func (p *Pair) Other(m *Record) *Record {
	if m == nil {
		return nil
	}
	switch m {
	case p.Blue:
		return p.backfill(p.Red)
	case p.Red:
		return p.backfill(p.Blue)
	default:
		// Fall back to color identity for records constructed elsewhere.
		if p.Blue != nil && m.Color == Red {
			return p.backfill(p.Blue)
		}
		if p.Red != nil && m.Color == Blue {
			return p.backfill(p.Red)
		}

		return nil
	}
}

// Shift returns whichever of the two motions has a shift-family type, or
// nil when neither does. The result's grid mode is backfilled if missing.
func (p *Pair) Shift() *Record {
	if p.Blue != nil && p.Blue.Type.IsShift() {
		return p.backfill(p.Blue)
	}
	if p.Red != nil && p.Red.Type.IsShift() {
		return p.backfill(p.Red)
	}

	return nil
}
