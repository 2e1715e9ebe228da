// Package tka is the pictograph positioning and circular-arrangement engine
// behind the kinetic-alphabet studio: it turns raw two-actor motion data
// into fully placed pictographs and expands short sequences into circular
// arrangements that return exactly to their start.
//
// 🚀 What is in here?
//
//	A small, deterministic library of closed-form lookups over an 8-point
//	compass domain:
//		• compass/    — the location domain, rotation permutations, directions
//		• letters/    — the closed letter taxonomy (Type1..Type6, conditions)
//		• grid/       — reference coordinates per grid mode, with overrides
//		• position/   — abstract position codes and validation pair sets
//		• motion/     — per-actor motion records, pair lookups, orientation
//		• pictograph/ — the rendered unit and its derived arrow/prop records
//		• placement/  — the positioning orchestrator with graceful degradation
//		• cap/        — the Circular Arrangement Pattern engine
//
// ✨ Design ground rules
//
//   - Everything is synchronous, bounded, and pure apart from the caller's
//     own pictograph: no hidden caching, no instance state.
//   - Positioning never throws past the orchestrator: failures degrade to
//     documented defaults and surface as phase-tagged report entries.
//   - CAP requests fail only at validation; generation is total.
//
// Start with placement.Engine for per-pictograph positioning and
// cap.Execute for sequence expansion.
package tka
