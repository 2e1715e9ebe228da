package compass

// Rotation classifies the closed-form relationship between two locations.
type Rotation int

const (
	// RotationNone means the two locations coincide (static).
	RotationNone Rotation = iota
	// RotationQuarterCW is a 90° clockwise step (two compass indices).
	RotationQuarterCW
	// RotationQuarterCCW is a 90° counter-clockwise step.
	RotationQuarterCCW
	// RotationHalf is the 180° flip to the diametrically opposite point.
	RotationHalf
)

// String returns the canonical name of r.
func (r Rotation) String() string {
	switch r {
	case RotationQuarterCW:
		return "quarter_cw"
	case RotationQuarterCCW:
		return "quarter_ccw"
	case RotationHalf:
		return "half"
	default:
		return "none"
	}
}

// RotationMap is a fixed permutation of the eight compass locations.
// Maps are total: locations outside the domain pass through unchanged.
type RotationMap struct {
	name string
	step int
}

// The four permutations of the compass domain used by the engines.
var (
	// MapNone is the identity permutation.
	MapNone = RotationMap{name: "none", step: 0}
	// MapQuarterCW advances every location 90° clockwise.
	MapQuarterCW = RotationMap{name: "quarter_cw", step: 2}
	// MapQuarterCCW advances every location 90° counter-clockwise.
	MapQuarterCCW = RotationMap{name: "quarter_ccw", step: -2}
	// MapHalf flips every location to its diametric opposite.
	MapHalf = RotationMap{name: "half", step: 4}
)

// Apply returns the image of loc under the permutation.
func (m RotationMap) Apply(loc Location) Location {
	i, ok := locationIndex[loc]
	if !ok {
		return loc
	}

	return FromIndex(i + m.step)
}

// String returns the permutation's canonical name.
func (m RotationMap) String() string { return m.name }

// MapFor returns the RotationMap matching a detected Rotation.
func MapFor(r Rotation) RotationMap {
	switch r {
	case RotationQuarterCW:
		return MapQuarterCW
	case RotationQuarterCCW:
		return MapQuarterCCW
	case RotationHalf:
		return MapHalf
	default:
		return MapNone
	}
}

// DetectRotation classifies the step from one location to another as one of
// the four closed rotations. Steps of an odd number of compass indices (45°,
// 135°) are not expressible by the four maps and report ok=false; callers in
// the CAP engine treat those as static.
func DetectRotation(from, to Location) (Rotation, bool) {
	fi, okF := locationIndex[from]
	ti, okT := locationIndex[to]
	if !okF || !okT {
		return RotationNone, false
	}

	switch ((ti-fi)%8 + 8) % 8 {
	case 0:
		return RotationNone, true
	case 2:
		return RotationQuarterCW, true
	case 4:
		return RotationHalf, true
	case 6:
		return RotationQuarterCCW, true
	default:
		return RotationNone, false
	}
}
