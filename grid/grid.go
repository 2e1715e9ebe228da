package grid

import (
	"errors"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/austencloud/tka-studio-sub005/compass"
)

// Sentinel errors for grid lookups.
var (
	// ErrUnknownMode indicates a grid mode outside {diamond, box}.
	ErrUnknownMode = errors.New("grid: unknown grid mode")
	// ErrMissingReference indicates no reference point exists for the
	// requested (location, mode) pair.
	ErrMissingReference = errors.New("grid: missing reference point")
)

// Mode selects which four compass points carry the hand positions.
type Mode string

const (
	// Diamond places hand points on the cardinals (n, e, s, w).
	Diamond Mode = "diamond"
	// Box places hand points on the diagonals (ne, se, sw, nw).
	Box Mode = "box"
)

// ParseMode validates a raw mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Diamond, Box:
		return Mode(s), nil
	default:
		return "", ErrUnknownMode
	}
}

// Scene geometry. The grid is drawn on a square scene with the given edge
// length; every reference point is expressed in its coordinate space with Y
// growing downward.
const (
	// SceneSize is the edge length of the square grid scene.
	SceneSize = 950.0
	// CenterX is the horizontal center of the scene.
	CenterX = SceneSize / 2
	// CenterY is the vertical center of the scene.
	CenterY = SceneSize / 2
	// handRadius is the distance from center to a hand point.
	handRadius = 143.1
	// outerRadius is the distance from center to a layer-2 (arrow) point.
	outerRadius = 243.7
	// fallbackRadius is the center offset used by the fallback table.
	fallbackRadius = 100.0
)

// halfSqrt2 is the per-axis share of a diagonal radius.
const halfSqrt2 = 0.7071067811865476

// Center returns the scene center point.
func Center() geom.XY {
	return geom.XY{X: CenterX, Y: CenterY}
}

// pointAt places a location on a circle of radius r around the center.
func pointAt(loc compass.Location, r float64) geom.XY {
	c := Center()
	axis := r
	if compass.IsDiagonal(loc) {
		axis = r * halfSqrt2
	}
	switch loc {
	case compass.North:
		return geom.XY{X: c.X, Y: c.Y - r}
	case compass.East:
		return geom.XY{X: c.X + r, Y: c.Y}
	case compass.South:
		return geom.XY{X: c.X, Y: c.Y + r}
	case compass.West:
		return geom.XY{X: c.X - r, Y: c.Y}
	case compass.Northeast:
		return geom.XY{X: c.X + axis, Y: c.Y - axis}
	case compass.Southeast:
		return geom.XY{X: c.X + axis, Y: c.Y + axis}
	case compass.Southwest:
		return geom.XY{X: c.X - axis, Y: c.Y + axis}
	default: // Northwest
		return geom.XY{X: c.X - axis, Y: c.Y - axis}
	}
}

// Table is an immutable coordinate lookup for both grid modes plus the
// center-based fallback table. Build one with NewTable or LoadTable.
type Table struct {
	points   map[Mode]map[compass.Location]geom.XY
	fallback map[compass.Location]geom.XY
}

// NewTable builds a Table from the baked-in default geometry: each mode's
// four hand points at handRadius, the remaining four locations at
// outerRadius, and the fallback table at fallbackRadius.
func NewTable() *Table {
	t := &Table{
		points:   make(map[Mode]map[compass.Location]geom.XY, 2),
		fallback: make(map[compass.Location]geom.XY, 8),
	}
	for _, mode := range []Mode{Diamond, Box} {
		pts := make(map[compass.Location]geom.XY, 8)
		for _, loc := range compass.AllLocations {
			if handLocation(mode, loc) {
				pts[loc] = pointAt(loc, handRadius)
			} else {
				pts[loc] = pointAt(loc, outerRadius)
			}
		}
		t.points[mode] = pts
	}
	for _, loc := range compass.AllLocations {
		t.fallback[loc] = pointAt(loc, fallbackRadius)
	}

	return t
}

// handLocation reports whether loc carries a hand point in the given mode.
func handLocation(mode Mode, loc compass.Location) bool {
	if mode == Box {
		return compass.IsDiagonal(loc)
	}

	return compass.IsCardinal(loc)
}

// Coordinate returns the reference point for (loc, mode).
// Returns ErrUnknownMode or ErrMissingReference on lookup misses; callers
// that must stay total use Fallback instead of treating this as fatal.
func (t *Table) Coordinate(loc compass.Location, mode Mode) (geom.XY, error) {
	pts, ok := t.points[mode]
	if !ok {
		return geom.XY{}, ErrUnknownMode
	}
	xy, ok := pts[loc]
	if !ok {
		return geom.XY{}, ErrMissingReference
	}

	return xy, nil
}

// Fallback returns the center-based coordinate for any compass code.
// Unknown codes collapse to the scene center.
func (t *Table) Fallback(loc compass.Location) geom.XY {
	if xy, ok := t.fallback[loc]; ok {
		return xy
	}

	return Center()
}
