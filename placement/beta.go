package placement

import (
	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/letters"
	"github.com/austencloud/tka-studio-sub005/motion"
	"github.com/austencloud/tka-studio-sub005/pictograph"
)

// betaOffset is the fixed separation magnitude applied to each prop when a
// beta ending overlaps the pair.
const betaOffset = 25.0

// tangentCW maps a location to the screen direction of clockwise travel at
// that point of the circle.
var tangentCW = map[compass.Location]compass.Direction{
	compass.North:     compass.Right,
	compass.Northeast: compass.DownRight,
	compass.East:      compass.Down,
	compass.Southeast: compass.DownLeft,
	compass.South:     compass.Left,
	compass.Southwest: compass.UpLeft,
	compass.West:      compass.Up,
	compass.Northwest: compass.UpRight,
}

// outward maps a location to the screen direction pointing away from the
// grid center.
var outward = map[compass.Location]compass.Direction{
	compass.North:     compass.Up,
	compass.Northeast: compass.UpRight,
	compass.East:      compass.Right,
	compass.Southeast: compass.DownRight,
	compass.South:     compass.Down,
	compass.Southwest: compass.DownLeft,
	compass.West:      compass.Left,
	compass.Northwest: compass.UpLeft,
}

// separationDirection resolves a motion-driven separation direction, from
// the motion's ending geometry. It backs the letter-specific beta branches
// and the arrow adjustment, where a single motion dictates both movements.
//
// Radially oriented motions separate tangentially, on the side the motion
// rotates toward; a motion without a rotation sense therefore has no
// resolvable tangent and degrades. Nonradially oriented motions separate
// outward along the radius.
func separationDirection(m *motion.Record) (compass.Direction, error) {
	if m == nil {
		return "", ErrDirectionUnresolved
	}
	if !m.EndOrientation.IsRadial() {
		d, ok := outward[m.End]
		if !ok {
			return "", ErrDirectionUnresolved
		}

		return d, nil
	}

	d, ok := tangentCW[m.End]
	if !ok {
		return "", ErrDirectionUnresolved
	}
	switch m.Sense {
	case motion.Clockwise:
		return d, nil
	case motion.CounterClockwise:
		return compass.OppositeDirection(d), nil
	default:
		return "", ErrDirectionUnresolved
	}
}

// betaDirection resolves the default-strategy direction for one prop, from
// the motion's final location, radial mode, and color. Radial props take the
// tangent at the final location, blue on the counter-clockwise side and red
// on the clockwise side; nonradial props take the radius, blue inward and
// red outward. The two colors resolve to opposite directions at a shared
// location, so a same-location pair always separates by exact negations.
func betaDirection(m *motion.Record) (compass.Direction, error) {
	if m == nil {
		return "", ErrDirectionUnresolved
	}

	var d compass.Direction
	var ok bool
	if m.EndOrientation.IsRadial() {
		d, ok = tangentCW[m.End]
	} else {
		d, ok = outward[m.End]
	}
	if !ok {
		return "", ErrDirectionUnresolved
	}

	if m.Color == motion.Blue {
		return compass.OppositeDirection(d), nil
	}

	return d, nil
}

// moveProp displaces a prop by the fixed beta offset along dir.
func moveProp(p *pictograph.Prop, dir compass.Direction) {
	p.Coordinate = p.Coordinate.Add(dir.Offset(betaOffset))
}

// repositionBeta separates the two overlapping props of a beta ending.
// In-place coordinate mutation; branch on letter:
//
//  1. Type2/Type3 letters: the shift actor's prop moves along the shift's
//     resolved direction, the other prop by its exact negation.
//  2. Letters G and H: the direction comes from the red motion alone; red
//     moves by it, blue by its negation.
//  3. Every other letter: each prop resolves its own color-keyed
//     direction; the two directions are exact opposites at a shared
//     location. A prop whose direction cannot be resolved keeps its
//     coordinate; that is a warning, never an error.
//
// Returned errors describe degradations the orchestrator logs; the prop
// pair is always left in a renderable state.
func repositionBeta(rec *pictograph.Record) []error {
	pair := rec.Pair()
	blueProp := rec.Props[motion.Blue]
	redProp := rec.Props[motion.Red]

	switch lt := letters.Classify(rec.Letter); {
	case lt == letters.Type2 || lt == letters.Type3:
		shift := pair.Shift()
		if shift == nil {
			return []error{ErrNoShiftMotion}
		}
		dir, err := separationDirection(shift)
		if err != nil {
			return []error{err}
		}
		shiftProp, otherProp := blueProp, redProp
		if shift.Color == motion.Red {
			shiftProp, otherProp = redProp, blueProp
		}
		moveProp(shiftProp, dir)
		moveProp(otherProp, compass.OppositeDirection(dir))

	case letters.RedDriven(rec.Letter):
		dir, err := separationDirection(rec.Red)
		if err != nil {
			return []error{err}
		}
		moveProp(redProp, dir)
		moveProp(blueProp, compass.OppositeDirection(dir))

	default:
		var errs []error
		for _, p := range []*pictograph.Prop{blueProp, redProp} {
			dir, err := betaDirection(rec.Motion(p.Color))
			if err != nil {
				errs = append(errs, err)

				continue
			}
			moveProp(p, dir)
		}

		return errs
	}

	return nil
}
