// Package placement turns raw motion data into final arrow and prop
// placements: grid location, screen coordinate, rotation angle, and mirror
// flag, with graceful degradation on every resolution failure.
//
// What:
//
//   - Engine — the placement orchestrator. One Position call runs the fixed
//     pipeline: prop coordinates → beta-ending separation → cross-shift dash
//     relocation → joint arrow adjustment → final rotation angles.
//   - ResolveLocation — arrow location resolver with letter-taxonomy
//     branching (a Type3 dash arrow lands where its paired shift lands).
//   - CalculateAngle — pure rotation from motion type, final location and
//     mirror flag.
//   - Beta repositioning — the three-way letter branch separating
//     overlapping props by ±25-unit offsets.
//
// Why:
//
//   - A failed pictograph must degrade visually, never crash: every phase
//     error is caught at the orchestrator boundary, tagged with its phase,
//     logged (zerolog), and the pipeline continues with the partial result.
//
// Errors:
//
//   - ErrNoShiftMotion, ErrDirectionUnresolved, ErrArrowOverlap: internal
//     resolution failures; all are degraded to documented defaults and
//     reported through Report.Errors, never returned to the caller as a
//     pipeline failure.
//
// Every operation is synchronous and bounded by the 8-element compass
// domain; the Engine holds no per-call state and may be shared by
// concurrent workers as long as each pictograph is owned by one call.
package placement
