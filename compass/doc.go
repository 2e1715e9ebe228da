// Package compass models the fixed 8-point compass domain that every
// pictograph computation is defined over, together with the closed-form
// permutations and displacement vectors built on it.
//
// What:
//
//   - Location — one of the eight compass codes (n, ne, e, se, s, sw, w, nw).
//   - RotationMap — a fixed permutation of the eight locations. Four maps are
//     provided: quarter turn clockwise, quarter turn counter-clockwise,
//     half turn, and identity.
//   - DetectRotation — classifies the relationship between two locations as
//     one of the four maps (or reports that none applies).
//   - Direction — one of eight separation directions with an axis-aligned
//     unit displacement vector.
//
// Why:
//
//   - All geometric relationships in the engine are lookups over this domain,
//     never continuous math; centralizing the domain keeps every consumer
//     total over it.
//
// Complexity: every operation is O(1) over the 8-element domain.
//
// Errors:
//
//   - ErrUnknownLocation: a string code outside the eight-element alphabet.
package compass
