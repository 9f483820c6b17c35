// Package facility picks the Empty cell of a terrain.Grid that minimizes the
// total walking distance from every House, and runs the full placement
// pipeline around that search.
//
// What:
//
//   - FindBestWell scans Empty cells in row-major order, propagates from
//     each one and sums the House distances.
//   - A candidate that leaves any House unreachable is disqualified.
//   - The best candidate is replaced only by a strictly smaller total, so on
//     ties the first candidate in row-major order wins.
//   - Site places the Well, re-propagates from it and draws the trails.
//
// Complexity:
//
//   - FindBestWell: O(E×A) time, E = Empty cells, A = Width×Height; O(A) memory.
//   - Site: FindBestWell + O(A + Σ house distances).
//
// Errors:
//
//   - ErrNoHouses: the grid holds no House; there is no cost to minimize.
//   - ErrNoPlacement: no Empty cell reaches every House.
//   - ErrInvalidTotal: a finite total was not positive (internal fault).
//   - trail.ErrInconsistent from Site when a trail cannot be retraced.
package facility
