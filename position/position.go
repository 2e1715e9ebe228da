package position

import (
	"fmt"

	"github.com/austencloud/tka-studio-sub005/compass"
)

// Position is an abstract code for the joint configuration of both actors,
// e.g. "beta3" or "gamma11". Unknown is the zero value, produced for
// location pairs outside the standard configurations.
type Position string

// Unknown is the Position of any pair whose offset is not 0°, 90° or 180°.
const Unknown Position = ""

// Derive computes the abstract position of a (blue, red) location pair.
// Total over the compass domain:
//
//   - same location        → beta1..beta8   (indexed by blue's compass index)
//   - opposite locations   → alpha1..alpha8
//   - red a quarter CW     → gamma1..gamma8
//   - red a quarter CCW    → gamma9..gamma16
//   - any other offset     → Unknown
func Derive(blue, red compass.Location) Position {
	bi, okB := compass.Index(blue)
	ri, okR := compass.Index(red)
	if !okB || !okR {
		return Unknown
	}

	switch ((ri-bi)%8 + 8) % 8 {
	case 0:
		return Position(fmt.Sprintf("beta%d", bi+1))
	case 4:
		return Position(fmt.Sprintf("alpha%d", bi+1))
	case 2:
		return Position(fmt.Sprintf("gamma%d", bi+1))
	case 6:
		return Position(fmt.Sprintf("gamma%d", bi+9))
	default:
		return Unknown
	}
}

// Pair is one legal (start, end) combination for a CAP request.
type Pair struct {
	Start Position
	End   Position
}

// PairSet is a precomputed set of legal position pairs.
type PairSet map[Pair]struct{}

// Contains reports membership of (start, end) in the set.
func (s PairSet) Contains(start, end Position) bool {
	_, ok := s[Pair{Start: start, End: end}]

	return ok
}

// appendImages adds, for every location pair with a standard offset, the
// pair (position, position's image under m) to set.
func appendImages(set PairSet, m compass.RotationMap) {
	for _, blue := range compass.AllLocations {
		for _, red := range compass.AllLocations {
			start := Derive(blue, red)
			if start == Unknown {
				continue
			}
			end := Derive(m.Apply(blue), m.Apply(red))
			set[Pair{Start: start, End: end}] = struct{}{}
		}
	}
}

var (
	halvedPairs    = make(PairSet)
	quarteredPairs = make(PairSet)
)

func init() {
	appendImages(halvedPairs, compass.MapHalf)
	appendImages(quarteredPairs, compass.MapQuarterCW)
	appendImages(quarteredPairs, compass.MapQuarterCCW)
}

// HalvedPairs returns the set of (start, end) pairs reachable when both
// actors complete a half turn over the sequence (180° symmetry).
func HalvedPairs() PairSet { return halvedPairs }

// QuarteredPairs returns the set of (start, end) pairs reachable when both
// actors complete a quarter turn either way (90° symmetry).
func QuarteredPairs() PairSet { return quarteredPairs }
