// Package position derives abstract position codes from the two actors'
// compass locations and owns the precomputed (start, end) pair sets used to
// validate circular-arrangement requests.
//
// What:
//
//   - Position — an abstract code naming the joint configuration of both
//     actors: beta (same point), alpha (opposite points), gamma (a quarter
//     turn apart), indexed by the blue actor's compass index.
//   - Derive — total (blue, red) → Position; non-standard offsets (45°/135°)
//     yield the zero Position Unknown, never an error.
//   - PairSet — a set of legal (start, end) position pairs. HalvedPairs
//     enumerates the pairs reachable by a half-turn of both actors;
//     QuarteredPairs those reachable by a quarter turn either way.
//
// Why:
//
//   - CAP validation must reject infeasible sequences before any beat is
//     generated; enumerating the closed pair sets up front makes that check
//     a single membership test.
//
// The exact code values are reference data; Derive fixes one deterministic
// enumeration over the 8-compass domain so that the pair sets, the CAP
// engine, and callers all agree.
package position
