package placement

import (
	"errors"
	"fmt"
)

// Sentinel errors for internal resolution failures. None of these escape
// the orchestrator; they surface only inside Report.Errors.
var (
	// ErrNoShiftMotion indicates a cross-shift letter without a locatable
	// shift motion.
	ErrNoShiftMotion = errors.New("placement: no shift motion in pair")
	// ErrDirectionUnresolved indicates a separation direction could not be
	// determined for a prop or arrow.
	ErrDirectionUnresolved = errors.New("placement: separation direction unresolved")
	// ErrArrowOverlap indicates the joint arrow adjustment could not
	// separate two coinciding arrows.
	ErrArrowOverlap = errors.New("placement: arrow overlap not adjustable")
)

// Phase tags where in the pipeline a degradation happened.
type Phase string

const (
	// PhaseInitialization covers record validation and rederivation.
	PhaseInitialization Phase = "initialization"
	// PhasePositioning covers the five positioning steps.
	PhasePositioning Phase = "positioning"
)

// Error is one structured, phase-tagged degradation record.
type Error struct {
	Phase Phase
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("placement: %s phase: %v", e.Phase, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Report is the outcome of one positioning pass. A pictograph is never left
// half-constructed: even with a non-empty error list the derived records
// hold a best-effort placement.
type Report struct {
	Errors []*Error
}

// Degraded reports whether any phase recorded a failure.
func (r *Report) Degraded() bool { return len(r.Errors) > 0 }

// record appends a phase-tagged error.
func (r *Report) record(phase Phase, err error) {
	r.Errors = append(r.Errors, &Error{Phase: phase, Err: err})
}
