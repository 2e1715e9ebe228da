// Package motion models one actor's movement within a pictograph and the
// two-motion lookups the positioning engine depends on.
//
// What:
//
//   - Record — normalized per-actor motion: type, start/end location,
//     start/end orientation, rotation sense, turns, grid mode.
//   - Type — shift family (pro, anti, float) vs. dash family (dash, static).
//   - Pair — the blue/red motion couple of one pictograph, with Other
//     (sibling lookup) and Shift (whichever motion is a shift), both
//     lazily backfilling a missing grid mode from the pictograph.
//   - EndOrientation — pure orientation update from start orientation,
//     motion type, turns, and rotation sense.
//
// Why:
//
//   - Every downstream rule (arrow location, rotation angle, beta
//     separation) branches on the shift/dash family split, so the split
//     lives here once.
//
// Errors:
//
//   - ErrUnknownMotionType, ErrUnknownOrientation, ErrBadTurns: validation
//     failures for records arriving from outside the engine.
//
// All operations are O(1); records are owned by their pictograph and only
// the placement orchestrator mutates them during recalculation.
package motion
