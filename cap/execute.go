package cap

import (
	"fmt"

	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/motion"
	"github.com/austencloud/tka-studio-sub005/position"
)

// Execute expands seq into a closed circular sequence. The input is never
// mutated; the returned sequence shares no mutable state with it.
//
// Validation runs first and is the only failure point: the (start, end)
// position pair must belong to the slice size's precomputed pair set. After
// validation, generation is total.
//
// Generation appends (factor−1)·N beats for N existing transformable beats
// (factor 2 for Halved, 4 for Quartered). The new beat at transformable
// index i is derived from the source beat at i−N: each generation rotates
// the previous one by the sequence's own rotation step — the half turn for
// Halved, the detected quarter turn for Quartered. Per actor, the matching
// location rotation map is applied to both endpoints, the abstract
// positions are rederived, and the ending orientation is recomputed; type,
// turns and rotation sense are copied unchanged, then the CAP type's
// attribute transforms (mirror, swap, complement) are layered on top.
func Execute(seq *Sequence, capType Type, slice SliceSize) (*Sequence, error) {
	comp, ok := typeComponents[capType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCAPType, capType)
	}

	var factor int
	var pairs position.PairSet
	switch slice {
	case Halved:
		factor, pairs = 2, position.HalvedPairs()
	case Quartered:
		factor, pairs = 4, position.QuarteredPairs()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSliceSize, slice)
	}

	if len(seq.Beats) == 0 {
		return nil, ErrEmptySequence
	}
	start, end := seq.StartPosition(), seq.EndPosition()
	if !pairs.Contains(start, end) {
		return nil, fmt.Errorf("%w: (%s, %s) under %s", ErrInvalidPositionPair, start, end, slice)
	}

	rot := generationMap(seq)

	n := len(seq.Beats)
	out := &Sequence{
		Start: seq.Start,
		Beats: make([]Beat, n, factor*n),
	}
	copy(out.Beats, seq.Beats)

	for i := n; i < factor*n; i++ {
		src := out.Beats[i-n]
		out.Beats = append(out.Beats, transformBeat(src, i+1, rot, comp))
	}

	return out, nil
}

// generationMap detects the rotation one whole generation applies, from an
// actor's locations at the sequence's ends. Validation has already pinned
// both actors to the same compass step, so the blue track decides and the
// red track is the tie-break for a static blue actor.
func generationMap(seq *Sequence) compass.RotationMap {
	first, last := seq.Beats[0], seq.Beats[len(seq.Beats)-1]

	if r, ok := compass.DetectRotation(first.Blue.Start, last.Blue.End); ok && r != compass.RotationNone {
		return compass.MapFor(r)
	}
	if r, ok := compass.DetectRotation(first.Red.Start, last.Red.End); ok {
		return compass.MapFor(r)
	}

	return compass.MapNone
}

// transformBeat derives one new beat from its source generation. A swapped
// component exchanges the actors' motion attributes while each color keeps
// its own location track, so the rotational closure is untouched.
func transformBeat(src Beat, index int, rot compass.RotationMap, comp components) Beat {
	blueSrc, redSrc := src.Blue, src.Red
	if comp.swapped {
		blueSrc.Type, redSrc.Type = redSrc.Type, blueSrc.Type
		blueSrc.Turns, redSrc.Turns = redSrc.Turns, blueSrc.Turns
		blueSrc.Sense, redSrc.Sense = redSrc.Sense, blueSrc.Sense
		blueSrc.StartOrientation, redSrc.StartOrientation =
			redSrc.StartOrientation, blueSrc.StartOrientation
	}

	blue := transformRecord(blueSrc, rot, comp)
	red := transformRecord(redSrc, rot, comp)

	return NewBeat(index, blue, red)
}

// transformRecord maps one actor's record into the next generation: rotate
// both endpoints, layer the attribute transforms, recompute orientation.
func transformRecord(src motion.Record, rot compass.RotationMap, comp components) motion.Record {
	rec := src
	rec.Start = rot.Apply(src.Start)
	rec.End = rot.Apply(src.End)

	if comp.mirrored {
		switch rec.Sense {
		case motion.Clockwise:
			rec.Sense = motion.CounterClockwise
		case motion.CounterClockwise:
			rec.Sense = motion.Clockwise
		}
	}
	if comp.complementary {
		switch rec.Type {
		case motion.Pro:
			rec.Type = motion.Anti
		case motion.Anti:
			rec.Type = motion.Pro
		}
	}

	rec.EndOrientation = motion.EndOrientation(&rec)

	return rec
}
