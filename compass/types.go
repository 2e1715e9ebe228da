// Package compass declares the Location domain and its sentinel errors.
package compass

import "errors"

// Sentinel errors for compass operations.
var (
	// ErrUnknownLocation indicates a code outside the 8-point compass alphabet.
	ErrUnknownLocation = errors.New("compass: unknown location code")
)

// Location is one of the eight compass codes used throughout the engine.
// The zero value is invalid; use Parse to validate external input.
type Location string

const (
	// North is the topmost grid point.
	North Location = "n"
	// Northeast is the upper-right grid point.
	Northeast Location = "ne"
	// East is the rightmost grid point.
	East Location = "e"
	// Southeast is the lower-right grid point.
	Southeast Location = "se"
	// South is the bottommost grid point.
	South Location = "s"
	// Southwest is the lower-left grid point.
	Southwest Location = "sw"
	// West is the leftmost grid point.
	West Location = "w"
	// Northwest is the upper-left grid point.
	Northwest Location = "nw"
)

// AllLocations lists the domain in clockwise order starting at North.
// Index positions in this slice are the canonical compass indices.
var AllLocations = []Location{
	North, Northeast, East, Southeast, South, Southwest, West, Northwest,
}

// locationIndex maps each Location to its clockwise index (North = 0).
var locationIndex = func() map[Location]int {
	m := make(map[Location]int, len(AllLocations))
	for i, loc := range AllLocations {
		m[loc] = i
	}

	return m
}()

// Index returns the clockwise compass index of loc (North = 0, Northwest = 7)
// and whether loc belongs to the domain.
func Index(loc Location) (int, bool) {
	i, ok := locationIndex[loc]

	return i, ok
}

// FromIndex returns the Location at clockwise index i modulo 8.
// Negative indices wrap the same way as positive ones.
func FromIndex(i int) Location {
	n := len(AllLocations)

	return AllLocations[((i%n)+n)%n]
}

// Parse validates a raw string code against the compass alphabet.
func Parse(code string) (Location, error) {
	loc := Location(code)
	if _, ok := locationIndex[loc]; !ok {
		return "", ErrUnknownLocation
	}

	return loc, nil
}

// IsCardinal reports whether loc is one of n, e, s, w.
func IsCardinal(loc Location) bool {
	i, ok := locationIndex[loc]

	return ok && i%2 == 0
}

// IsDiagonal reports whether loc is one of ne, se, sw, nw.
func IsDiagonal(loc Location) bool {
	i, ok := locationIndex[loc]

	return ok && i%2 == 1
}

// Opposite returns the location diametrically across the grid from loc.
// Locations outside the domain are returned unchanged.
func Opposite(loc Location) Location {
	i, ok := locationIndex[loc]
	if !ok {
		return loc
	}

	return FromIndex(i + 4)
}
