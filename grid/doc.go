// Package grid supplies the canonical screen coordinates of the pictograph
// grid: the reference table mapping (compass location, grid mode) to a point,
// and the center-based fallback table keyed by the 8 compass codes.
//
// What:
//
//   - Mode — Diamond (hand points on the cardinals) or Box (hand points on
//     the diagonals).
//   - Table — immutable coordinate lookup built from baked-in defaults,
//     optionally overridden from a grid.json config file (viper).
//   - Coordinate — (Location, Mode) → geom.XY; ErrMissingReference when the
//     point is absent from the table.
//   - Fallback — total center-offset coordinate for any compass code, used
//     when the reference point is missing.
//
// Why:
//
//   - The exact point values are reference data owned outside the engine;
//     keeping them behind a loadable table lets them be validated and
//     replaced without touching positioning logic.
//
// Errors:
//
//   - ErrUnknownMode: mode outside {diamond, box}.
//   - ErrMissingReference: no reference point for the requested pair.
package grid
