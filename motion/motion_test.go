package motion_test

import (
	"errors"
	"testing"

	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/grid"
	"github.com/austencloud/tka-studio-sub005/motion"
)

func validRecord(c motion.Color, t motion.Type) *motion.Record {
	return &motion.Record{
		Color:            c,
		Type:             t,
		Start:            compass.North,
		End:              compass.East,
		StartOrientation: motion.In,
		EndOrientation:   motion.In,
		Sense:            motion.Clockwise,
		Turns:            1,
		GridMode:         grid.Diamond,
	}
}

//----------------------------------------------------------------------------//
// Type and validation tests
//----------------------------------------------------------------------------//

// TestTypeFamilies: the five types partition into shift and dash families.
func TestTypeFamilies(t *testing.T) {
	shifts := []motion.Type{motion.Pro, motion.Anti, motion.Float}
	for _, ty := range shifts {
		if !ty.IsShift() || ty.IsDashFamily() {
			t.Errorf("%q misclassified; want shift family", ty)
		}
	}
	dashes := []motion.Type{motion.Dash, motion.Static}
	for _, ty := range dashes {
		if !ty.IsDashFamily() || ty.IsShift() {
			t.Errorf("%q misclassified; want dash family", ty)
		}
	}
}

// TestValidate rejects each malformed field with its sentinel.
func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*motion.Record)
		err    error
	}{
		{"OK", func(_ *motion.Record) {}, nil},
		{"HalfTurnsOK", func(r *motion.Record) { r.Turns = 1.5 }, nil},
		{"BadType", func(r *motion.Record) { r.Type = "spin" }, motion.ErrUnknownMotionType},
		{"BadOrientation", func(r *motion.Record) { r.EndOrientation = "up" }, motion.ErrUnknownOrientation},
		{"BadSense", func(r *motion.Record) { r.Sense = "widdershins" }, motion.ErrUnknownSense},
		{"NegativeTurns", func(r *motion.Record) { r.Turns = -0.5 }, motion.ErrBadTurns},
		{"OffGridTurns", func(r *motion.Record) { r.Turns = 0.3 }, motion.ErrBadTurns},
		{"BadStart", func(r *motion.Record) { r.Start = "x" }, compass.ErrUnknownLocation},
		{"BadEnd", func(r *motion.Record) { r.End = "" }, compass.ErrUnknownLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord(motion.Blue, motion.Pro)
			tc.mutate(r)
			if err := r.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("Validate() error = %v; want %v", err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Pair lookup tests
//----------------------------------------------------------------------------//

// TestPairOther returns the sibling and backfills its grid mode.
func TestPairOther(t *testing.T) {
	blue := validRecord(motion.Blue, motion.Pro)
	red := validRecord(motion.Red, motion.Dash)
	red.GridMode = ""
	p := &motion.Pair{Blue: blue, Red: red, GridMode: grid.Box}

	got := p.Other(blue)
	if got != red {
		t.Fatal("Other(blue) must return the red record")
	}
	if got.GridMode != grid.Box {
		t.Errorf("sibling grid mode = %q; want backfilled %q", got.GridMode, grid.Box)
	}
	if p.Other(red) != blue {
		t.Error("Other(red) must return the blue record")
	}
	if p.Other(nil) != nil {
		t.Error("Other(nil) must be nil")
	}
}

// TestPairOther_ByColor: records not belonging to the pair resolve by color.
func TestPairOther_ByColor(t *testing.T) {
	p := &motion.Pair{
		Blue:     validRecord(motion.Blue, motion.Pro),
		Red:      validRecord(motion.Red, motion.Dash),
		GridMode: grid.Diamond,
	}
	foreign := validRecord(motion.Red, motion.Static)
	if p.Other(foreign) != p.Blue {
		t.Error("foreign red record must resolve to the pair's blue motion")
	}
}

// TestPairShift finds the shift motion regardless of color, or nil.
func TestPairShift(t *testing.T) {
	blue := validRecord(motion.Blue, motion.Dash)
	red := validRecord(motion.Red, motion.Float)
	red.GridMode = ""
	p := &motion.Pair{Blue: blue, Red: red, GridMode: grid.Diamond}

	got := p.Shift()
	if got != red {
		t.Fatal("Shift() must return the float motion")
	}
	if got.GridMode != grid.Diamond {
		t.Errorf("shift grid mode = %q; want backfilled %q", got.GridMode, grid.Diamond)
	}

	neither := &motion.Pair{
		Blue:     validRecord(motion.Blue, motion.Dash),
		Red:      validRecord(motion.Red, motion.Static),
		GridMode: grid.Diamond,
	}
	if neither.Shift() != nil {
		t.Error("Shift() must be nil when neither motion is a shift")
	}
}

//----------------------------------------------------------------------------//
// Orientation update tests
//----------------------------------------------------------------------------//

// TestEndOrientation covers whole turns, half turns, sense reversal, float,
// and the pass-through for unknown orientations.
func TestEndOrientation(t *testing.T) {
	cases := []struct {
		name  string
		typ   motion.Type
		start motion.Orientation
		turns float64
		sense motion.Sense
		want  motion.Orientation
	}{
		{"ProZero", motion.Pro, motion.In, 0, motion.Clockwise, motion.In},
		{"ProWhole", motion.Pro, motion.In, 1, motion.Clockwise, motion.Out},
		{"ProDouble", motion.Pro, motion.In, 2, motion.Clockwise, motion.In},
		{"ProHalfCW", motion.Pro, motion.In, 0.5, motion.Clockwise, motion.Clock},
		{"ProHalfCCW", motion.Pro, motion.In, 0.5, motion.CounterClockwise, motion.Counter},
		{"AntiHalfCW", motion.Anti, motion.In, 0.5, motion.Clockwise, motion.Counter},
		{"AntiWhole", motion.Anti, motion.Out, 1, motion.Clockwise, motion.In},
		{"DashHalf", motion.Dash, motion.Clock, 0.5, motion.Clockwise, motion.In},
		{"StaticSesqui", motion.Static, motion.In, 1.5, motion.Clockwise, motion.Counter},
		{"Float", motion.Float, motion.Clock, 0, motion.NoRotation, motion.Counter},
		{"UnknownPassThrough", motion.Pro, "sideways", 1, motion.Clockwise, "sideways"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &motion.Record{
				Type:             tc.typ,
				StartOrientation: tc.start,
				Turns:            tc.turns,
				Sense:            tc.sense,
			}
			if got := motion.EndOrientation(r); got != tc.want {
				t.Errorf("EndOrientation(%s %s %v %s) = %q; want %q",
					tc.typ, tc.start, tc.turns, tc.sense, got, tc.want)
			}
		})
	}
}
