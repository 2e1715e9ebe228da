package compass

import geom "github.com/peterstace/simplefeatures/geom"

// Direction is one of the eight screen-space separation directions used when
// two overlapping props must be pushed apart. Directions follow screen
// convention: Y grows downward, so Up has a negative Y component.
type Direction string

const (
	Up        Direction = "up"
	Down      Direction = "down"
	Left      Direction = "left"
	Right     Direction = "right"
	UpLeft    Direction = "upleft"
	UpRight   Direction = "upright"
	DownLeft  Direction = "downleft"
	DownRight Direction = "downright"
)

// directionUnits maps each direction to its axis-aligned unit vector.
// Diagonals keep unit components per axis rather than normalized length, so
// a diagonal offset of magnitude d displaces d on each axis.
var directionUnits = map[Direction]geom.XY{
	Up:        {X: 0, Y: -1},
	Down:      {X: 0, Y: 1},
	Left:      {X: -1, Y: 0},
	Right:     {X: 1, Y: 0},
	UpLeft:    {X: -1, Y: -1},
	UpRight:   {X: 1, Y: -1},
	DownLeft:  {X: -1, Y: 1},
	DownRight: {X: 1, Y: 1},
}

// Offset returns the displacement vector for d at the given magnitude.
// Unknown directions yield the zero vector.
func (d Direction) Offset(magnitude float64) geom.XY {
	return directionUnits[d].Scale(magnitude)
}

// OppositeDirection returns the direction pointing the other way.
// Unknown directions are returned unchanged.
func OppositeDirection(d Direction) Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case DownRight:
		return UpLeft
	default:
		return d
	}
}
