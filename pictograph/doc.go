// Package pictograph defines the rendered unit of the engine: one snapshot
// of both actors' motions on the grid, tagged with a letter, together with
// the derived arrow and prop records.
//
// What:
//
//   - Record — letter, grid mode, abstract start/end positions, the two
//     motion records, and the derived Arrow/Prop per color.
//   - Arrow — grid location, rendering rotation in degrees, mirror flag,
//     screen coordinate.
//   - Prop — grid location, screen coordinate, radial mode (radial when the
//     ending orientation is in/out).
//   - BetaEnding — the named condition "both actors' arrows end at the same
//     grid point".
//
// Invariant: derived records are always a pure function of the current
// motion pair + letter + grid mode. Callers trigger recomputation through
// the placement orchestrator whenever source motion data changes; the
// derived records are never independently authoritative.
package pictograph
