package cap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austencloud/tka-studio-sub005/cap"
	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/grid"
	"github.com/austencloud/tka-studio-sub005/motion"
)

func record(c motion.Color, typ motion.Type, start, end compass.Location, sense motion.Sense, turns float64) motion.Record {
	return motion.Record{
		Color:            c,
		Type:             typ,
		Start:            start,
		End:              end,
		StartOrientation: motion.In,
		EndOrientation:   motion.In,
		Sense:            sense,
		Turns:            turns,
		GridMode:         grid.Diamond,
	}
}

// quarterSequence builds a start beat plus n beats stepping both actors one
// quarter turn clockwise per beat, blue from North and red from South.
func quarterSequence(t *testing.T, n int) *cap.Sequence {
	t.Helper()

	start := cap.NewBeat(0,
		record(motion.Blue, motion.Static, compass.North, compass.North, motion.NoRotation, 0),
		record(motion.Red, motion.Static, compass.South, compass.South, motion.NoRotation, 0),
	)
	seq := &cap.Sequence{Start: start}
	for i := 0; i < n; i++ {
		blueFrom, blueTo := compass.FromIndex(2*i), compass.FromIndex(2*i+2)
		redFrom, redTo := compass.FromIndex(2*i+4), compass.FromIndex(2*i+6)
		seq.Beats = append(seq.Beats, cap.NewBeat(i+1,
			record(motion.Blue, motion.Pro, blueFrom, blueTo, motion.Clockwise, 1),
			record(motion.Red, motion.Pro, redFrom, redTo, motion.Clockwise, 1),
		))
	}

	return seq
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestExecute_InvalidPair: a pair outside the slice's set fails before any
// beat is generated.
func TestExecute_InvalidPair(t *testing.T) {
	// One quarter-turn beat ends a quarter away: fine for Quartered,
	// invalid for Halved.
	seq := quarterSequence(t, 1)

	out, err := cap.Execute(seq, cap.Rotated, cap.Halved)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, cap.ErrInvalidPositionPair)
}

// TestExecute_ParameterValidation covers the closed alphabets and the empty
// sequence.
func TestExecute_ParameterValidation(t *testing.T) {
	seq := quarterSequence(t, 2)

	_, err := cap.Execute(seq, cap.Type("inverted"), cap.Halved)
	assert.ErrorIs(t, err, cap.ErrUnknownCAPType)

	_, err = cap.Execute(seq, cap.Rotated, cap.SliceSize("eighth"))
	assert.ErrorIs(t, err, cap.ErrUnknownSliceSize)

	empty := &cap.Sequence{Start: seq.Start}
	_, err = cap.Execute(empty, cap.Rotated, cap.Halved)
	assert.ErrorIs(t, err, cap.ErrEmptySequence)
}

//----------------------------------------------------------------------------//
// Expansion size and closure
//----------------------------------------------------------------------------//

// TestExecute_HalvedClosure: two quarter beats span a half turn; expansion
// doubles the transformable count and returns to the start position.
func TestExecute_HalvedClosure(t *testing.T) {
	seq := quarterSequence(t, 2)
	require.Equal(t, seq.StartPosition(), seq.Beats[0].StartPosition)

	out, err := cap.Execute(seq, cap.Rotated, cap.Halved)
	require.NoError(t, err)

	assert.Len(t, out.Beats, 4, "halved must double the transformable beats")
	assert.Equal(t, seq.Beats[0].StartPosition, out.EndPosition(),
		"the final beat must end at the first beat's start position")
}

// TestExecute_QuarteredClosure: one quarter beat quadruples and closes.
func TestExecute_QuarteredClosure(t *testing.T) {
	seq := quarterSequence(t, 1)

	out, err := cap.Execute(seq, cap.Rotated, cap.Quartered)
	require.NoError(t, err)

	assert.Len(t, out.Beats, 4, "quartered must quadruple the transformable beats")
	assert.Equal(t, seq.Beats[0].StartPosition, out.EndPosition())

	// Each generation rotates its source generation, not the preceding beat.
	assert.Equal(t, compass.East, out.Beats[1].Blue.Start)
	assert.Equal(t, compass.South, out.Beats[1].Blue.End)
	assert.Equal(t, compass.West, out.Beats[3].Blue.Start)
	assert.Equal(t, compass.North, out.Beats[3].Blue.End)
}

// TestExecute_ClosureAcrossSets sweeps every pair in both validation sets
// using a representative one-beat or two-beat sequence per actor geometry.
func TestExecute_ClosureAcrossSets(t *testing.T) {
	for _, blueStart := range compass.AllLocations {
		// A quarter-stepped two-beat sequence starting anywhere closes under
		// Halved; the single beat closes under Quartered.
		bi, _ := compass.Index(blueStart)
		redStart := compass.FromIndex(bi + 4)

		start := cap.NewBeat(0,
			record(motion.Blue, motion.Static, blueStart, blueStart, motion.NoRotation, 0),
			record(motion.Red, motion.Static, redStart, redStart, motion.NoRotation, 0),
		)
		b1 := cap.NewBeat(1,
			record(motion.Blue, motion.Anti, blueStart, compass.FromIndex(bi+2), motion.CounterClockwise, 0.5),
			record(motion.Red, motion.Pro, redStart, compass.FromIndex(bi+6), motion.Clockwise, 1),
		)
		b2 := cap.NewBeat(2,
			record(motion.Blue, motion.Anti, compass.FromIndex(bi+2), compass.FromIndex(bi+4), motion.CounterClockwise, 0.5),
			record(motion.Red, motion.Pro, compass.FromIndex(bi+6), compass.FromIndex(bi+8), motion.Clockwise, 1),
		)

		halvedSeq := &cap.Sequence{Start: start, Beats: []cap.Beat{b1, b2}}
		out, err := cap.Execute(halvedSeq, cap.Rotated, cap.Halved)
		require.NoError(t, err, "halved from %s", blueStart)
		assert.Equal(t, b1.StartPosition, out.EndPosition(), "halved closure from %s", blueStart)

		quarteredSeq := &cap.Sequence{Start: start, Beats: []cap.Beat{b1}}
		out, err = cap.Execute(quarteredSeq, cap.Rotated, cap.Quartered)
		require.NoError(t, err, "quartered from %s", blueStart)
		assert.Equal(t, b1.StartPosition, out.EndPosition(), "quartered closure from %s", blueStart)
	}
}

// TestExecute_InputUntouched: beats are append-only; the source sequence
// must come back byte-identical.
func TestExecute_InputUntouched(t *testing.T) {
	seq := quarterSequence(t, 2)
	snapshot := make([]cap.Beat, len(seq.Beats))
	copy(snapshot, seq.Beats)

	_, err := cap.Execute(seq, cap.MirroredSwapped, cap.Halved)
	require.NoError(t, err)

	assert.Equal(t, snapshot, seq.Beats)
	assert.Len(t, seq.Beats, 2)
}

//----------------------------------------------------------------------------//
// Attribute transforms
//----------------------------------------------------------------------------//

// TestExecute_AttributeTransforms checks the attribute layer per CAP type
// against the same rotated location track.
func TestExecute_AttributeTransforms(t *testing.T) {
	seq := quarterSequence(t, 2)
	seq.Beats[0].Blue.Turns = 2 // make the blue and red attribute sets distinct

	rotated, err := cap.Execute(seq, cap.Rotated, cap.Halved)
	require.NoError(t, err)

	cases := []struct {
		name  string
		typ   cap.Type
		check func(t *testing.T, generated cap.Beat)
	}{
		{"MirroredFlipsSense", cap.Mirrored, func(t *testing.T, b cap.Beat) {
			assert.Equal(t, motion.CounterClockwise, b.Blue.Sense)
			assert.Equal(t, motion.CounterClockwise, b.Red.Sense)
		}},
		{"ComplementaryTogglesType", cap.Complementary, func(t *testing.T, b cap.Beat) {
			assert.Equal(t, motion.Anti, b.Blue.Type)
			assert.Equal(t, motion.Anti, b.Red.Type)
		}},
		{"SwappedExchangesTurns", cap.Swapped, func(t *testing.T, b cap.Beat) {
			assert.Equal(t, 1.0, b.Blue.Turns)
			assert.Equal(t, 2.0, b.Red.Turns)
		}},
		{"PairwiseCombination", cap.SwappedComplementary, func(t *testing.T, b cap.Beat) {
			assert.Equal(t, motion.Anti, b.Blue.Type)
			assert.Equal(t, 1.0, b.Blue.Turns)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := cap.Execute(seq, tc.typ, cap.Halved)
			require.NoError(t, err)
			require.Len(t, out.Beats, 4)

			generated := out.Beats[2] // first generated beat, sourced from beat 1
			tc.check(t, generated)

			// Location tracks and closure match the plain rotated expansion.
			assert.Equal(t, rotated.Beats[2].Blue.Start, generated.Blue.Start)
			assert.Equal(t, rotated.Beats[2].Blue.End, generated.Blue.End)
			assert.Equal(t, seq.Beats[0].StartPosition, out.EndPosition())
		})
	}
}

// TestExecute_MirroredKeepsLocationTrack: mirroring acts on attributes only;
// generated location tracks are identical to the plain rotated expansion, so
// the closure guarantee is untouched.
func TestExecute_MirroredKeepsLocationTrack(t *testing.T) {
	seq := quarterSequence(t, 2)

	rotated, err := cap.Execute(seq, cap.Rotated, cap.Halved)
	require.NoError(t, err)
	mirrored, err := cap.Execute(seq, cap.Mirrored, cap.Halved)
	require.NoError(t, err)

	require.Len(t, mirrored.Beats, len(rotated.Beats))
	for i := range rotated.Beats {
		assert.Equal(t, rotated.Beats[i].Blue.Start, mirrored.Beats[i].Blue.Start)
		assert.Equal(t, rotated.Beats[i].Blue.End, mirrored.Beats[i].Blue.End)
		assert.Equal(t, rotated.Beats[i].Red.Start, mirrored.Beats[i].Red.Start)
		assert.Equal(t, rotated.Beats[i].Red.End, mirrored.Beats[i].Red.End)
	}
	assert.Equal(t, seq.Beats[0].StartPosition, mirrored.EndPosition())
}

// TestExecute_OrientationRecomputed: generated beats carry a recomputed end
// orientation consistent with their own attributes.
func TestExecute_OrientationRecomputed(t *testing.T) {
	seq := quarterSequence(t, 2)
	seq.Beats[0].Blue.Turns = 0.5

	out, err := cap.Execute(seq, cap.Mirrored, cap.Halved)
	require.NoError(t, err)

	generated := out.Beats[2].Blue
	want := motion.EndOrientation(&generated)
	assert.Equal(t, want, generated.EndOrientation)
	// Pro half turn against the clock lands counter, not clock.
	assert.Equal(t, motion.Counter, generated.EndOrientation)
}
