package cap

import (
	"errors"

	"github.com/austencloud/tka-studio-sub005/motion"
	"github.com/austencloud/tka-studio-sub005/position"
)

// Sentinel errors for CAP validation. Only validation can fail; generation
// after a nil validation error is total.
var (
	// ErrEmptySequence indicates a sequence without transformable beats.
	ErrEmptySequence = errors.New("cap: sequence has no transformable beats")
	// ErrInvalidPositionPair indicates the sequence's (start, end) position
	// pair is infeasible for the requested slice size.
	ErrInvalidPositionPair = errors.New("cap: start/end position pair not valid for slice size")
	// ErrUnknownCAPType indicates a transformation type outside the ten-value alphabet.
	ErrUnknownCAPType = errors.New("cap: unknown CAP type")
	// ErrUnknownSliceSize indicates a slice size outside {halved, quartered}.
	ErrUnknownSliceSize = errors.New("cap: unknown slice size")
)

// SliceSize is the granularity of the rotational symmetry.
type SliceSize string

const (
	// Halved extends with 180° symmetry: N transformable beats become 2N.
	Halved SliceSize = "halved"
	// Quartered extends with 90° symmetry: N transformable beats become 4N.
	Quartered SliceSize = "quartered"
)

// Type names a CAP transformation: the four strict operations plus their
// six pairwise combinations.
type Type string

const (
	Rotated       Type = "rotated"
	Mirrored      Type = "mirrored"
	Swapped       Type = "swapped"
	Complementary Type = "complementary"

	MirroredSwapped       Type = "mirrored_swapped"
	MirroredComplementary Type = "mirrored_complementary"
	MirroredRotated       Type = "mirrored_rotated"
	RotatedSwapped        Type = "rotated_swapped"
	RotatedComplementary  Type = "rotated_complementary"
	SwappedComplementary  Type = "swapped_complementary"
)

// components decomposes a Type into its strict constituents.
type components struct {
	mirrored      bool
	swapped       bool
	complementary bool
}

// typeComponents is the closed Type alphabet. Every entry carries the
// rotational location mapping implicitly (it is what closes the circle);
// the flags add the attribute-level transforms.
var typeComponents = map[Type]components{
	Rotated:               {},
	Mirrored:              {mirrored: true},
	Swapped:               {swapped: true},
	Complementary:         {complementary: true},
	MirroredSwapped:       {mirrored: true, swapped: true},
	MirroredComplementary: {mirrored: true, complementary: true},
	MirroredRotated:       {mirrored: true},
	RotatedSwapped:        {swapped: true},
	RotatedComplementary:  {complementary: true},
	SwappedComplementary:  {swapped: true, complementary: true},
}

// Beat is one sequence unit. Beats are created once and never mutated;
// generation only appends new ones.
type Beat struct {
	// Index is the beat's ordered position; the pinned start beat is 0.
	Index int
	// Blue and Red are the actors' motion records, held by value so a beat
	// can never alias another beat's mutable state.
	Blue motion.Record
	Red  motion.Record
	// StartPosition and EndPosition are the abstract position codes of the
	// pictograph this beat belongs to.
	StartPosition position.Position
	EndPosition   position.Position
}

// NewBeat derives a beat's position codes from its motion pair.
func NewBeat(index int, blue, red motion.Record) Beat {
	return Beat{
		Index:         index,
		Blue:          blue,
		Red:           red,
		StartPosition: position.Derive(blue.Start, red.Start),
		EndPosition:   position.Derive(blue.End, red.End),
	}
}

// Sequence is an ordered beat list with one distinguished leading
// start-position entry that is never transformed.
type Sequence struct {
	// Start is the pinned start-position beat; its EndPosition is the
	// sequence's abstract start position.
	Start Beat
	// Beats are the transformable beats in order.
	Beats []Beat
}

// StartPosition is the abstract position the sequence begins in.
func (s *Sequence) StartPosition() position.Position {
	return s.Start.EndPosition
}

// EndPosition is the abstract position the sequence ends in, or the start
// position when no beats exist yet.
func (s *Sequence) EndPosition() position.Position {
	if len(s.Beats) == 0 {
		return s.StartPosition()
	}

	return s.Beats[len(s.Beats)-1].EndPosition
}
