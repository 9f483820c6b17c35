// Package propagate computes single-source, obstacle-aware walking
// distances over a terrain.Grid.
//
// What
//
//   - The grid is an unweighted graph: two cells are adjacent iff both are
//     in bounds and the destination is not a Tree.
//   - Propagate writes, into every reachable cell's Distance, the length of
//     the shortest 4-directional path from the source.
//   - The source itself always gets distance 0, even when it is a Tree or a
//     House; the Tree test only gates stepping into a neighbour.
//   - Cells that cannot be reached keep terrain.Unreachable.
//
// How
//
//	A FIFO worklist seeds the source and relaxes neighbours; a cell is
//	(re)entered only when the candidate distance is strictly smaller than
//	the stored one. With unit weights every cell is finalized on its first
//	visit, so each cell is enqueued at most once per run. No recursion is
//	used, so stack depth does not grow with the reachable area.
//
// Preconditions
//
//	All distances must be terrain.Unreachable before the call; use
//	Grid.ResetDistances between runs.
//
// Complexity (A = Width×Height)
//
//   - Time:   O(A)
//   - Memory: O(A) for the worklist
//
// Usage
//
//	g.ResetDistances()
//	propagate.Propagate(g, terrain.Point{X: 3, Y: 1})
//
//	// With a visit hook:
//	propagate.Propagate(g, src, propagate.WithOnVisit(func(p terrain.Point, d int) {
//		/* ... */
//	}))
package propagate
