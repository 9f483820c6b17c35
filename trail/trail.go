package trail

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wellsite/terrain"
)

// ErrInconsistent indicates that a House cannot be walked back to the Well.
var ErrInconsistent = errors.New("trail: path reconstruction inconsistency")

// Trail is the walk from one House to the Well.
// Steps excludes the House and ends with the Well, so len(Steps) equals
// the House's distance.
type Trail struct {
	House terrain.Point
	Steps []terrain.Point
}

// Len returns the number of steps walked.
func (t Trail) Len() int {
	return len(t.Steps)
}

// DrawPaths walks every House (row-major order) back to well and marks the
// Empty cells it crosses as Path. g must hold the distances of a single
// propagation run from well.
func DrawPaths(g *terrain.Grid, well terrain.Point) ([]Trail, error) {
	houses := g.Points(terrain.House)
	trails := make([]Trail, 0, len(houses))
	for _, h := range houses {
		t, err := walk(g, h, well)
		if err != nil {
			return trails, err
		}
		trails = append(trails, t)
	}

	return trails, nil
}

// walk follows strictly decreasing distances from house to distance 0.
func walk(g *terrain.Grid, house, well terrain.Point) (Trail, error) {
	d := g.At(house).Distance
	if d == terrain.Unreachable {
		return Trail{}, fmt.Errorf("%w: house (%d,%d) is unreachable", ErrInconsistent, house.X, house.Y)
	}

	t := Trail{House: house, Steps: make([]terrain.Point, 0, d)}
	cur := house
	for d > 0 {
		next, ok := downhill(g, cur, d-1)
		if !ok {
			return Trail{}, fmt.Errorf("%w: stuck at (%d,%d) distance %d walking from house (%d,%d)",
				ErrInconsistent, cur.X, cur.Y, d, house.X, house.Y)
		}
		c := g.At(next)
		if c.Type == terrain.Empty {
			c.Type = terrain.Path
		}
		t.Steps = append(t.Steps, next)
		cur, d = next, d-1
	}
	if cur != well {
		return Trail{}, fmt.Errorf("%w: house (%d,%d) leads to (%d,%d), not the well (%d,%d)",
			ErrInconsistent, house.X, house.Y, cur.X, cur.Y, well.X, well.Y)
	}

	return t, nil
}

// downhill returns the first neighbour of p, in walk priority order, whose
// distance equals want.
func downhill(g *terrain.Grid, p terrain.Point, want int) (terrain.Point, bool) {
	for _, off := range terrain.Offsets {
		n := p.Add(off)
		if c := g.At(n); c != nil && c.Distance == want {
			return n, true
		}
	}
	return terrain.NoPoint, false
}

// PathCells returns the distinct cells crossed by trails, excluding the
// final Well step of each trail.
func PathCells(trails []Trail) mapset.Set[terrain.Point] {
	cells := mapset.New[terrain.Point]()
	for _, t := range trails {
		for i := 0; i < len(t.Steps)-1; i++ {
			cells.Put(t.Steps[i])
		}
	}
	return cells
}
