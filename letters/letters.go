package letters

import "github.com/austencloud/tka-studio-sub005/compass"

// Letter is one symbol of the closed pictograph alphabet. The zero value
// ("no letter") is legal everywhere and classifies as TypeNone.
type Letter string

// The closed alphabet, grouped by taxonomy category.
const (
	A Letter = "A"
	B Letter = "B"
	C Letter = "C"
	D Letter = "D"
	E Letter = "E"
	F Letter = "F"
	G Letter = "G"
	H Letter = "H"
	I Letter = "I"
	J Letter = "J"
	K Letter = "K"
	L Letter = "L"
	M Letter = "M"
	N Letter = "N"
	O Letter = "O"
	P Letter = "P"
	Q Letter = "Q"
	R Letter = "R"
	S Letter = "S"
	T Letter = "T"
	U Letter = "U"
	V Letter = "V"

	W     Letter = "W"
	X     Letter = "X"
	Y     Letter = "Y"
	Z     Letter = "Z"
	Sigma Letter = "Σ"
	Delta Letter = "Δ"
	Theta Letter = "θ"
	Omega Letter = "Ω"

	WDash     Letter = "W-"
	XDash     Letter = "X-"
	YDash     Letter = "Y-"
	ZDash     Letter = "Z-"
	SigmaDash Letter = "Σ-"
	DeltaDash Letter = "Δ-"
	ThetaDash Letter = "θ-"
	OmegaDash Letter = "Ω-"

	Phi    Letter = "Φ"
	Psi    Letter = "Ψ"
	Lambda Letter = "Λ"

	PhiDash    Letter = "Φ-"
	PsiDash    Letter = "Ψ-"
	LambdaDash Letter = "Λ-"

	Alpha Letter = "α"
	Beta  Letter = "β"
	Gamma Letter = "Γ"
)

// LetterType is one of the six taxonomy categories. TypeNone is the neutral
// result for the empty or unknown letter.
type LetterType int

const (
	// TypeNone is the classification of anything outside the alphabet.
	TypeNone LetterType = iota
	// Type1 letters describe two simultaneous shift motions (A..V).
	Type1
	// Type2 letters pair one shift with one static motion (W..Ω).
	Type2
	// Type3 letters are the cross-shift family: one shift, one dash (W-..Ω-).
	Type3
	// Type4 letters pair one dash with one static motion (Φ, Ψ, Λ).
	Type4
	// Type5 letters describe two simultaneous dash motions (Φ-, Ψ-, Λ-).
	Type5
	// Type6 letters describe two static motions (α, β, Γ).
	Type6
)

// String returns the canonical category name.
func (t LetterType) String() string {
	switch t {
	case Type1:
		return "Type1"
	case Type2:
		return "Type2"
	case Type3:
		return "Type3"
	case Type4:
		return "Type4"
	case Type5:
		return "Type5"
	case Type6:
		return "Type6"
	default:
		return "TypeNone"
	}
}

// classification is the closed letter → category table.
var classification = func() map[Letter]LetterType {
	m := make(map[Letter]LetterType, 42)
	for _, l := range []Letter{A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V} {
		m[l] = Type1
	}
	for _, l := range []Letter{W, X, Y, Z, Sigma, Delta, Theta, Omega} {
		m[l] = Type2
	}
	for _, l := range []Letter{WDash, XDash, YDash, ZDash, SigmaDash, DeltaDash, ThetaDash, OmegaDash} {
		m[l] = Type3
	}
	for _, l := range []Letter{Phi, Psi, Lambda} {
		m[l] = Type4
	}
	for _, l := range []Letter{PhiDash, PsiDash, LambdaDash} {
		m[l] = Type5
	}
	for _, l := range []Letter{Alpha, Beta, Gamma} {
		m[l] = Type6
	}

	return m
}()

// Classify returns the taxonomy category of l. Total over all strings:
// unknown or empty letters yield TypeNone.
func Classify(l Letter) LetterType {
	return classification[l]
}

// redDriven is the set of letters whose beta-ending separation direction is
// computed from the red motion alone.
var redDriven = map[Letter]bool{G: true, H: true}

// RedDriven reports whether l belongs to the red-driven beta special case.
func RedDriven(l Letter) bool {
	return redDriven[l]
}

// Condition names a boolean predicate over a pictograph's ending geometry.
type Condition string

const (
	// ConditionBetaEnding holds when both actors' arrows end at the same
	// grid point.
	ConditionBetaEnding Condition = "beta_ending"
	// ConditionAlphaEnding holds when the arrows end at diametrically
	// opposite grid points.
	ConditionAlphaEnding Condition = "alpha_ending"
	// ConditionGammaEnding holds when the arrows end a quarter turn apart.
	ConditionGammaEnding Condition = "gamma_ending"
)

// EvaluateCondition evaluates the named condition for a pictograph whose
// actors end at the given locations. Unknown conditions evaluate to false;
// the letter parameter is accepted for taxonomy-dependent conditions so the
// signature stays stable as conditions are added.
func EvaluateCondition(_ Letter, cond Condition, blueEnd, redEnd compass.Location) bool {
	switch cond {
	case ConditionBetaEnding:
		return blueEnd == redEnd
	case ConditionAlphaEnding:
		return compass.Opposite(blueEnd) == redEnd
	case ConditionGammaEnding:
		r, ok := compass.DetectRotation(blueEnd, redEnd)

		return ok && (r == compass.RotationQuarterCW || r == compass.RotationQuarterCCW)
	default:
		return false
	}
}
