package motion

// orientationCycle orders the four orientations as quarter steps of the
// prop around its own axis: each half turn advances one step.
var orientationCycle = []Orientation{In, Clock, Out, Counter}

func orientationIndex(o Orientation) (int, bool) {
	for i, c := range orientationCycle {
		if c == o {
			return i, true
		}
	}

	return 0, false
}

// EndOrientation computes the orientation a motion ends in, as a pure
// function of its start orientation, type, turns, and rotation sense.
//
// Model: orientations form the 4-cycle in → clock → out → counter; every
// half turn advances one step. Pro and static motions step with the
// rotation sense; anti and dash motions step against it (their prop
// counter-rotates relative to the travel direction). Float carries no turns
// and always flips to the swapped radial/rotational counterpart.
//
// Total: unknown orientations pass through unchanged.
func EndOrientation(r *Record) Orientation {
	start, ok := orientationIndex(r.StartOrientation)
	if !ok {
		return r.StartOrientation
	}

	if r.Type == Float {
		return orientationCycle[(start+2)%4]
	}

	steps := int(r.Turns * 2)
	dir := 1
	if r.Sense == CounterClockwise {
		dir = -1
	}
	if r.Type == Anti || r.Type == Dash {
		dir = -dir
	}

	idx := ((start+dir*steps)%4 + 4) % 4

	return orientationCycle[idx]
}
