package placement

import (
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog"

	"github.com/austencloud/tka-studio-sub005/compass"
	"github.com/austencloud/tka-studio-sub005/grid"
	"github.com/austencloud/tka-studio-sub005/letters"
	"github.com/austencloud/tka-studio-sub005/motion"
	"github.com/austencloud/tka-studio-sub005/pictograph"
)

// Engine is the placement orchestrator. It holds only immutable
// collaborators (the grid table and a logger), so a single Engine may serve
// any number of concurrent callers as long as each pictograph is owned by
// one call at a time.
type Engine struct {
	table *grid.Table
	log   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes degradation warnings to the given logger.
// The default engine logs nowhere.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine builds an orchestrator over the given grid reference table.
func NewEngine(table *grid.Table, opts ...Option) *Engine {
	e := &Engine{table: table, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Position runs the full positioning pipeline over one pictograph, fixed
// order, no loops:
//
//  1. place each prop at its grid-reference coordinate (fallback table when
//     the reference point is missing);
//  2. on a beta ending, separate the overlapping prop pair;
//  3. recompute the location of every Type3-dash arrow from its paired
//     shift (step 1 locations are stale for those arrows);
//  4. run the joint cross-arrow adjustment; on failure fall back to the
//     pre-adjustment locations;
//  5. recompute every arrow's rotation angle from its final location,
//     including on the fallback path.
//
// Any panic inside a phase is caught at this boundary and converted into a
// phase-tagged Report error; the pictograph is left with the best partial
// placement, never half-constructed.
func (e *Engine) Position(rec *pictograph.Record) *Report {
	report := &Report{}

	e.runPhase(report, PhaseInitialization, func() {
		for _, c := range []motion.Color{motion.Blue, motion.Red} {
			if rec.Arrows[c] == nil || rec.Props[c] == nil {
				rec.Rederive()

				return
			}
		}
	})

	e.runPhase(report, PhasePositioning, func() {
		e.placeProps(rec)

		if rec.BetaEnding() {
			for _, err := range repositionBeta(rec) {
				report.record(PhasePositioning, err)
				e.log.Warn().
					Str("letter", string(rec.Letter)).
					Err(err).
					Msg("beta reposition degraded")
			}
		}

		e.relocateDashArrows(rec, report)

		if err := e.adjustArrows(rec); err != nil {
			report.record(PhasePositioning, err)
			e.log.Warn().Err(err).Msg("arrow adjustment failed; keeping pre-adjustment locations")
		}

		// Rotation always comes last, from the final locations.
		for _, c := range []motion.Color{motion.Blue, motion.Red} {
			arrow := rec.Arrows[c]
			m := rec.Motion(c)
			arrow.Mirrored = mirroredFor(m)
			arrow.RotationAngle = CalculateAngle(m, arrow.Location, arrow.Mirrored)
		}
	})

	return report
}

// UpdateMotions replaces the pictograph's source motion data in place,
// rederives every derived record, and repositions. This is the only
// sanctioned mutation path for motion records.
func (e *Engine) UpdateMotions(rec *pictograph.Record, blue, red motion.Record) *Report {
	report := &Report{}

	e.runPhase(report, PhaseInitialization, func() {
		for _, r := range []*motion.Record{&blue, &red} {
			if err := r.Validate(); err != nil {
				panic(fmt.Errorf("invalid motion update for %s: %w", r.Color, err))
			}
		}
		*rec.Blue = blue
		*rec.Red = red
		rec.Rederive()
	})
	if report.Degraded() {
		return report
	}

	pos := e.Position(rec)
	report.Errors = append(report.Errors, pos.Errors...)

	return report
}

// runPhase executes fn, converting a panic into a phase-tagged error.
func (e *Engine) runPhase(report *Report, phase Phase, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			report.record(phase, err)
			e.log.Error().Str("phase", string(phase)).Err(err).Msg("placement phase failed")
		}
	}()
	fn()
}

// placeProps pins each prop to its grid-reference coordinate, degrading to
// the center-based fallback table on a lookup miss.
func (e *Engine) placeProps(rec *pictograph.Record) {
	for _, c := range []motion.Color{motion.Blue, motion.Red} {
		prop := rec.Props[c]
		xy, err := e.table.Coordinate(prop.Location, rec.GridMode)
		if err != nil {
			xy = e.table.Fallback(prop.Location)
			e.log.Warn().
				Str("color", string(c)).
				Str("location", string(prop.Location)).
				Err(err).
				Msg("prop reference point missing; using fallback")
		}
		prop.Coordinate = xy
	}
}

// relocateDashArrows recomputes the location of every Type3-dash arrow from
// its paired shift motion. Resolution is total; a degraded resolution keeps
// the raw end location and is logged, never raised.
func (e *Engine) relocateDashArrows(rec *pictograph.Record, report *Report) {
	if letters.Classify(rec.Letter) != letters.Type3 {
		return
	}
	pair := rec.Pair()
	for _, c := range []motion.Color{motion.Blue, motion.Red} {
		m := rec.Motion(c)
		if m.Type != motion.Dash {
			continue
		}
		loc, err := ResolveLocation(m, pair, rec.Letter)
		if err != nil {
			report.record(PhasePositioning, err)
			e.log.Warn().
				Str("color", string(c)).
				Str("location", string(loc)).
				Err(err).
				Msg("dash location resolution degraded to raw endpoint")
		}
		rec.Arrows[c].Location = loc
	}
}

// adjustArrows runs the joint cross-arrow placement pass: both arrows are
// pinned to their location's reference coordinate, and coinciding arrows
// are pushed apart along their separation directions. An error restores
// the pre-adjustment placements; the caller still recomputes rotation.
func (e *Engine) adjustArrows(rec *pictograph.Record) error {
	blue, red := rec.Arrows[motion.Blue], rec.Arrows[motion.Red]
	prevBlue, prevRed := *blue, *red

	restore := func() {
		*blue, *red = prevBlue, prevRed
	}

	for _, c := range []motion.Color{motion.Blue, motion.Red} {
		arrow := rec.Arrows[c]
		arrow.Coordinate = e.arrowCoordinate(arrow.Location, rec.GridMode)
	}

	// Only two shift arrows contend for the same point visually; a dash or
	// static glyph may share its location with anything.
	if blue.Location == red.Location &&
		rec.Blue.Type.IsShift() && rec.Red.Type.IsShift() {
		var offsets [2]geom.XY
		for i, c := range []motion.Color{motion.Blue, motion.Red} {
			dir, err := separationDirection(rec.Motion(c))
			if err != nil {
				restore()

				return fmt.Errorf("%w: %s arrow at %s", ErrArrowOverlap, c, blue.Location)
			}
			offsets[i] = dir.Offset(betaOffset)
		}
		blue.Coordinate = blue.Coordinate.Add(offsets[0])
		red.Coordinate = red.Coordinate.Add(offsets[1])
	}

	return nil
}

// arrowCoordinate is total: reference point first, fallback table second.
func (e *Engine) arrowCoordinate(loc compass.Location, mode grid.Mode) geom.XY {
	xy, err := e.table.Coordinate(loc, mode)
	if err != nil {
		return e.table.Fallback(loc)
	}

	return xy
}
