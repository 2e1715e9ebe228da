package motion

import (
	"errors"
	"math"

	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/grid"
)

// Sentinel errors for motion validation.
var (
	// ErrUnknownMotionType indicates a type outside the five-value alphabet.
	ErrUnknownMotionType = errors.New("motion: unknown motion type")
	// ErrUnknownOrientation indicates an orientation outside {in,out,clock,counter}.
	ErrUnknownOrientation = errors.New("motion: unknown orientation")
	// ErrUnknownSense indicates a rotation sense outside {cw,ccw,no_rot}.
	ErrUnknownSense = errors.New("motion: unknown rotation sense")
	// ErrBadTurns indicates a negative turns value or one off the 0.5 step grid.
	ErrBadTurns = errors.New("motion: turns must be non-negative in steps of 0.5")
)

// Color labels the two actors of a pictograph.
type Color string

const (
	// Blue is the first actor.
	Blue Color = "blue"
	// Red is the second actor.
	Red Color = "red"
)

// OtherColor returns the sibling actor's color.
func OtherColor(c Color) Color {
	if c == Blue {
		return Red
	}

	return Blue
}

// Type is the motion type. Pro, Anti and Float form the shift family;
// Dash and Static form the dash family.
type Type string

const (
	Pro    Type = "pro"
	Anti   Type = "anti"
	Float  Type = "float"
	Dash   Type = "dash"
	Static Type = "static"
)

// IsShift reports whether t belongs to the shift family.
func (t Type) IsShift() bool {
	return t == Pro || t == Anti || t == Float
}

// IsDashFamily reports whether t belongs to the dash family.
func (t Type) IsDashFamily() bool {
	return t == Dash || t == Static
}

// Orientation is a prop orientation. In and Out are the radial
// orientations; Clock and Counter the rotational ones.
type Orientation string

const (
	In      Orientation = "in"
	Out     Orientation = "out"
	Clock   Orientation = "clock"
	Counter Orientation = "counter"
)

// IsRadial reports whether o ∈ {in, out}.
func (o Orientation) IsRadial() bool {
	return o == In || o == Out
}

// Sense is the rotation sense of a motion.
type Sense string

const (
	Clockwise        Sense = "cw"
	CounterClockwise Sense = "ccw"
	// NoRotation marks motions without a rotation sense (e.g. most dashes).
	NoRotation Sense = "no_rot"
)

// Record is one actor's normalized movement within a pictograph.
// It is owned exclusively by its pictograph; only the placement
// orchestrator mutates it during recalculation.
type Record struct {
	Color            Color
	Type             Type
	Start            compass.Location
	End              compass.Location
	StartOrientation Orientation
	EndOrientation   Orientation
	Sense            Sense
	Turns            float64
	GridMode         grid.Mode
}

// Validate checks a record arriving from outside the engine. The grid mode
// may be empty (it is backfilled lazily from the pictograph); everything
// else must belong to its closed alphabet.
func (r *Record) Validate() error {
	switch r.Type {
	case Pro, Anti, Float, Dash, Static:
	default:
		return ErrUnknownMotionType
	}
	for _, o := range []Orientation{r.StartOrientation, r.EndOrientation} {
		switch o {
		case In, Out, Clock, Counter:
		default:
			return ErrUnknownOrientation
		}
	}
	switch r.Sense {
	case Clockwise, CounterClockwise, NoRotation:
	default:
		return ErrUnknownSense
	}
	if r.Turns < 0 || math.Mod(r.Turns*2, 1) != 0 {
		return ErrBadTurns
	}
	if _, ok := compass.Index(r.Start); !ok {
		return compass.ErrUnknownLocation
	}
	if _, ok := compass.Index(r.End); !ok {
		return compass.ErrUnknownLocation
	}

	return nil
}
