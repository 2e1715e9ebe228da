// Package cap implements the Circular Arrangement Pattern engine: it
// extends a short motion sequence into a longer one that returns exactly to
// its starting configuration.
//
// What:
//
//   - Beat — one immutable sequence unit: ordered index, the blue/red
//     motion records, and the abstract start/end position codes.
//   - Sequence — a pinned start-position beat plus the ordered transformable
//     beats. Sequences are append-only; Execute never mutates its input.
//   - Type — the four strict transformations (rotated, mirrored, swapped,
//     complementary) and their six pairwise combinations. Mirrored, swapped
//     and complementary act on motion attributes only; location tracks
//     always follow the rotation map that closes the circle.
//   - SliceSize — Halved (180° symmetry, doubles the transformable beats)
//     or Quartered (90° symmetry, quadruples them).
//   - Execute — validation followed by total generation.
//
// Validation:
//
//   - The sequence's (start position, end position) pair must belong to the
//     precomputed pair set for the slice size; otherwise Execute fails with
//     ErrInvalidPositionPair before generating anything. That is the only
//     failure point: once validated, generation is total over the fixed
//     rotation-map domain.
//
// Closure guarantee:
//
//   - For any input that passes validation, the generated sequence's final
//     beat ends at the very first beat's start position.
//
// Errors:
//
//   - ErrEmptySequence: no transformable beats.
//   - ErrInvalidPositionPair: (start, end) not in the slice's pair set.
//   - ErrUnknownCAPType, ErrUnknownSliceSize: parameters outside their
//     closed alphabets.
//
// Complexity: O(total beats) time and memory; every per-beat step is an
// O(1) lookup over the 8-element compass domain.
package cap
