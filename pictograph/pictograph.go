package pictograph

import (
	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/grid"
	"github.com/austencloud/tka-studio-sub005/letters"
	"github.com/austencloud/tka-studio-sub005/motion"
	"github.com/austencloud/tka-studio-sub005/position"
)

// RadialMode classifies a prop by its ending orientation.
type RadialMode string

const (
	// Radial props end oriented in or out.
	Radial RadialMode = "radial"
	// Nonradial props end oriented clock or counter.
	Nonradial RadialMode = "nonradial"
)

// Arrow is the derived rendering record of one actor's arrow.
type Arrow struct {
	Color         motion.Color
	Location      compass.Location
	RotationAngle float64
	Mirrored      bool
	Coordinate    geom.XY
}

// Prop is the derived rendering record of one actor's prop.
type Prop struct {
	Color      motion.Color
	Location   compass.Location
	Coordinate geom.XY
	RadialMode RadialMode
}

// NewArrow builds the initial arrow record for a motion: located at the
// motion's raw end point, unrotated and unmirrored until placement runs.
func NewArrow(m *motion.Record) *Arrow {
	return &Arrow{
		Color:    m.Color,
		Location: m.End,
	}
}

// NewProp builds the initial prop record for a motion. The radial mode
// follows the motion's ending orientation.
func NewProp(m *motion.Record) *Prop {
	mode := Nonradial
	if m.EndOrientation.IsRadial() {
		mode = Radial
	}

	return &Prop{
		Color:      m.Color,
		Location:   m.End,
		RadialMode: mode,
	}
}

// Record is one pictograph: the motion pair, its letter, and the derived
// arrow/prop records per color. Created per rendered unit and recomputed in
// place whenever source motion data changes (caller-driven).
type Record struct {
	Letter        letters.Letter
	GridMode      grid.Mode
	StartPosition position.Position
	EndPosition   position.Position

	Blue *motion.Record
	Red  *motion.Record

	Arrows map[motion.Color]*Arrow
	Props  map[motion.Color]*Prop
}

// New assembles a pictograph from its letter, grid mode and motion pair,
// deriving the abstract positions and the initial arrow/prop records.
func New(letter letters.Letter, mode grid.Mode, blue, red *motion.Record) *Record {
	r := &Record{
		Letter:   letter,
		GridMode: mode,
		Blue:     blue,
		Red:      red,
		Arrows:   make(map[motion.Color]*Arrow, 2),
		Props:    make(map[motion.Color]*Prop, 2),
	}
	r.Rederive()

	return r
}

// Rederive rebuilds every derived field from the current motion pair.
// Positioning (coordinates, rotation angles) is the placement
// orchestrator's job; this only re-creates the records it operates on.
func (r *Record) Rederive() {
	r.StartPosition = position.Derive(r.Blue.Start, r.Red.Start)
	r.EndPosition = position.Derive(r.Blue.End, r.Red.End)
	r.Arrows[motion.Blue] = NewArrow(r.Blue)
	r.Arrows[motion.Red] = NewArrow(r.Red)
	r.Props[motion.Blue] = NewProp(r.Blue)
	r.Props[motion.Red] = NewProp(r.Red)
}

// Pair returns the motion couple with the pictograph's grid mode attached
// for lazy backfill.
func (r *Record) Pair() *motion.Pair {
	return &motion.Pair{Blue: r.Blue, Red: r.Red, GridMode: r.GridMode}
}

// Motion returns the record for the given color.
func (r *Record) Motion(c motion.Color) *motion.Record {
	if c == motion.Blue {
		return r.Blue
	}

	return r.Red
}

// BetaEnding reports whether both actors' arrows end at the same grid
// point, evaluated over the current derived arrow locations.
func (r *Record) BetaEnding() bool {
	blue, red := r.Arrows[motion.Blue], r.Arrows[motion.Red]
	if blue == nil || red == nil {
		return false
	}

	return letters.EvaluateCondition(r.Letter, letters.ConditionBetaEnding, blue.Location, red.Location)
}
