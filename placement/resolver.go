package placement

import (
	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/letters"
	"github.com/austencloud/tka-studio-sub005/motion"
)

// ResolveLocation computes an arrow's grid location from its motion.
//
// For a dash motion under a Type3 (cross-shift) letter the location is
// derived from the paired shift motion rather than from the dash's own
// endpoint: the dash arrow lands where the shift arrow lands. Every other
// case resolves to the motion's own end location.
//
// The resolver is total but may degrade: if the shift lookup fails, it
// returns the motion's raw end location together with the cause so the
// caller can log the degradation. A nil error means the exact rule applied.
func ResolveLocation(m *motion.Record, pair *motion.Pair, letter letters.Letter) (compass.Location, error) {
	if letters.Classify(letter) == letters.Type3 && m.Type == motion.Dash {
		shift := pair.Shift()
		if shift == nil {
			return m.End, ErrNoShiftMotion
		}

		return shift.End, nil
	}

	return m.End, nil
}
