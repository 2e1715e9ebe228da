// Package letters implements the closed letter taxonomy that selects which
// geometric rules apply to a pictograph.
//
// What:
//
//   - Letter — one symbol of the closed alphabet (A..V, W..Ω, the dash
//     variants W-..Ω-, Φ/Ψ/Λ and variants, and the Greek trio α/β/Γ).
//   - LetterType — the six taxonomy categories. Type3 marks the cross-shift
//     letters, where one actor performs a shift while the other dashes.
//   - Classify — total classification; anything outside the alphabet
//     (including the empty letter) yields TypeNone, never an error.
//   - Condition evaluation — named boolean predicates over a pictograph's
//     ending geometry, e.g. ConditionBetaEnding ("both actors' arrows end at
//     the same grid point").
//
// Why:
//
//   - Beta-ending repositioning and dash-arrow location resolution branch on
//     the letter's category; an explicit closed classification keeps every
//     branch checkable instead of scattering string comparisons.
//
// Complexity: all lookups are O(1) over the fixed alphabet.
package letters
