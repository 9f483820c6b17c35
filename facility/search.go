package facility

import (
	"fmt"

	"github.com/katalvlaran/wellsite/propagate"
	"github.com/katalvlaran/wellsite/terrain"
)

// FindBestWell returns the Empty cell with the smallest total House distance.
// Candidates are scored in row-major order and only a strictly smaller total
// replaces the current best.
//
// Returns ErrNoHouses before searching when the grid holds no House, and
// ErrNoPlacement (with NoPlacement()) when every candidate leaves some House
// unreachable. Cell distances are left as written by the last candidate.
func FindBestWell(g *terrain.Grid, opts ...Option) (Placement, error) {
	if g.Count(terrain.House) == 0 {
		return NoPlacement(), ErrNoHouses
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	best := NoPlacement()
	for _, p := range g.Points(terrain.Empty) {
		g.ResetDistances()
		propagate.Propagate(g, p)
		total, err := TotalDistance(g)
		if err != nil {
			return NoPlacement(), fmt.Errorf("facility: candidate (%d,%d): %w", p.X, p.Y, err)
		}
		o.OnCandidate(p, total)
		if total < best.Total {
			best = Placement{Well: p, Total: total}
		}
	}
	if !best.Found() {
		return best, ErrNoPlacement
	}

	return best, nil
}

// TotalDistance sums the current distances of every House. It returns
// terrain.Unreachable if any House is unreachable, and ErrInvalidTotal if a
// finite sum is not positive.
func TotalDistance(g *terrain.Grid) (int, error) {
	total := 0
	for _, h := range g.Points(terrain.House) {
		d := g.At(h).Distance
		if d == terrain.Unreachable {
			return terrain.Unreachable, nil
		}
		total += d
	}
	if total <= 0 {
		return 0, ErrInvalidTotal
	}

	return total, nil
}
