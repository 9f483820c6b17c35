// Package terrain models the map a well is placed on: a fixed-size
// rectangular grid of cells, each holding a type and a scratch distance.
//
// What:
//
//   - Grid stores Width×Height cells in row-major order.
//   - CellType is one of Empty, Tree, House, Well, Path.
//   - Cell.Distance is a working field written by propagation runs;
//     Unreachable marks cells the current source cannot reach.
//   - Generate builds a random map; Parse builds one from its text form.
//
// Why:
//
//   - Keep the map a plain value threaded through propagate, facility,
//     trail and render instead of package-level state.
//
// Random generation:
//
//	Trees are drawn first, then houses, each at an independent uniform
//	(row, column). Draws may overlap; the later draw overwrites the earlier
//	one, so a map may hold fewer houses or trees than requested.
//
// Complexity:
//
//   - New, Parse, ResetDistances: O(W×H) time and memory.
//   - Generate: O(W×H + houses + trees).
//   - At, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrBadDimensions: width or height below 1.
//   - ErrBadCount: negative house or tree count.
//   - ErrBadFormat: dimension string not of the form WIDTHxHEIGHT.
//   - ErrNonRectangular: parsed rows of differing lengths.
//   - ErrUnknownGlyph: parsed rune is not a cell glyph.
package terrain
