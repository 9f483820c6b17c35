// Package trail reconstructs, for every House, one shortest walk back to
// the Well on a grid whose distances come from a propagation run started
// at that Well.
//
// Walk rule:
//
//	From the current cell, step to the first neighbour, in the fixed order
//	up, down, right, left, whose distance is exactly one less. Stop at
//	distance 0. Every Empty cell walked becomes Path; House and Well cells
//	keep their type. The order decides which of several equally short
//	walks is drawn.
//
// Complexity: O(W×H + Σ house distances).
//
// Errors:
//
//   - ErrInconsistent: a House cannot be walked back to the Well. This
//     means the grid was not propagated from the given Well and must be
//     treated as a fatal internal fault.
package trail
