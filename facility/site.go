package facility

import (
	"fmt"

	"github.com/katalvlaran/wellsite/propagate"
	"github.com/katalvlaran/wellsite/terrain"
	"github.com/katalvlaran/wellsite/trail"
)

// Site runs the whole placement: search, mark the winner as a Well,
// propagate from it and draw a trail from every House.
//
// On ErrNoHouses or ErrNoPlacement the grid types are left untouched.
// A trail.ErrInconsistent error means the search and reconstruction
// disagree and must be treated as fatal.
func Site(g *terrain.Grid, opts ...Option) (Placement, []trail.Trail, error) {
	best, err := FindBestWell(g, opts...)
	if err != nil {
		return best, nil, err
	}

	g.Place(best.Well, terrain.Well)
	g.ResetDistances()
	propagate.Propagate(g, best.Well)

	trails, err := trail.DrawPaths(g, best.Well)
	if err != nil {
		return best, nil, fmt.Errorf("facility: well (%d,%d): %w", best.Well.X, best.Well.Y, err)
	}

	return best, trails, nil
}
