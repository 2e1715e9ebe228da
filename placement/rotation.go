package placement

import (
	"math"

	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/motion"
)

// CalculateAngle computes an arrow's rendering rotation in degrees as a
// pure function of motion type, the final (post-placement) location, and
// the mirror flag. It must be re-run whenever a placement step moves the
// arrow; rotation is never derived from a stale pre-adjustment location.
//
// The base angle is 45° per clockwise compass index from North. Shift
// arrows are turned tangentially with their rotation sense; dash and
// static arrows stay radial. Mirroring reflects the angle about the
// vertical axis.
func CalculateAngle(m *motion.Record, final compass.Location, mirrored bool) float64 {
	idx, ok := compass.Index(final)
	if !ok {
		return 0
	}
	angle := float64(idx) * 45

	switch m.Type {
	case motion.Pro, motion.Float:
		if m.Sense == motion.CounterClockwise {
			angle -= 90
		} else {
			angle += 90
		}
	case motion.Anti:
		if m.Sense == motion.CounterClockwise {
			angle += 90
		} else {
			angle -= 90
		}
	case motion.Dash, motion.Static:
		// Radial: the base angle stands.
	}

	if mirrored {
		angle = 360 - angle
	}

	return math.Mod(math.Mod(angle, 360)+360, 360)
}

// mirroredFor derives the arrow mirror flag from its motion: shift arrows
// rendered against the clock use the reflected glyph.
func mirroredFor(m *motion.Record) bool {
	return m.Type.IsShift() && m.Sense == motion.CounterClockwise
}
