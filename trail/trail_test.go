package trail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wellsite/propagate"
	"github.com/katalvlaran/wellsite/render"
	"github.com/katalvlaran/wellsite/terrain"
	"github.com/katalvlaran/wellsite/trail"
)

// prepared parses text, finds the Well glyph and propagates from it.
func prepared(t *testing.T, text string) (*terrain.Grid, terrain.Point) {
	t.Helper()
	g, err := terrain.Parse(text)
	require.NoError(t, err)
	wells := g.Points(terrain.Well)
	require.Len(t, wells, 1)
	propagate.Propagate(g, wells[0])
	return g, wells[0]
}

func TestDrawPaths_PriorityUpDownRightLeft(t *testing.T) {
	g, well := prepared(t, `
		H.H
		.O.
		H.H
	`)
	trails, err := trail.DrawPaths(g, well)
	require.NoError(t, err)
	// Each corner house prefers a vertical step over a horizontal one.
	assert.Equal(t, "H.H\n#O#\nH.H\n", render.Render(g, false))
	require.Len(t, trails, 4)
	assert.Equal(t, []terrain.Point{{X: 0, Y: 1}, well}, trails[0].Steps)
	assert.Equal(t, []terrain.Point{{X: 2, Y: 1}, well}, trails[1].Steps)
	assert.Equal(t, []terrain.Point{{X: 0, Y: 1}, well}, trails[2].Steps)
	assert.Equal(t, []terrain.Point{{X: 2, Y: 1}, well}, trails[3].Steps)
}

func TestDrawPaths_RightBeforeLeft(t *testing.T) {
	g, well := prepared(t, `
		.H.
		.t.
		.O.
	`)
	_, err := trail.DrawPaths(g, well)
	require.NoError(t, err)
	// Both sides of the tree are equally short; right is tried before left.
	assert.Equal(t, ".H#\n.t#\n.O#\n", render.Render(g, false))
}

func TestDrawPaths_WalksThroughHouses(t *testing.T) {
	g, well := prepared(t, "HH.O")
	trails, err := trail.DrawPaths(g, well)
	require.NoError(t, err)

	assert.Equal(t, "HH#O\n", render.Render(g, false))
	require.Len(t, trails, 2)
	assert.Equal(t, 3, trails[0].Len())
	assert.Equal(t, 2, trails[1].Len())
	assert.Equal(t, terrain.House, g.At(terrain.Point{X: 1, Y: 0}).Type)
}

func TestDrawPaths_StepsEqualDistance(t *testing.T) {
	g, err := terrain.Generate(25, 15, 7, 60, terrain.WithSeed(4))
	require.NoError(t, err)
	well := terrain.Point{X: 12, Y: 7}
	g.Place(well, terrain.Well)
	// Free the well's neighbourhood so most houses are reachable.
	for _, off := range terrain.Offsets {
		if c := g.At(well.Add(off)); c != nil && c.Type == terrain.Tree {
			c.Type = terrain.Empty
		}
	}
	propagate.Propagate(g, well)
	// Drop houses the well cannot reach; they are not valid inputs here.
	for _, h := range g.Points(terrain.House) {
		if g.At(h).Distance == terrain.Unreachable {
			g.Place(h, terrain.Tree)
		}
	}

	want := map[terrain.Point]int{}
	for _, h := range g.Points(terrain.House) {
		want[h] = g.At(h).Distance
	}
	trails, err := trail.DrawPaths(g, well)
	require.NoError(t, err)
	require.Len(t, trails, len(want))
	for _, tr := range trails {
		assert.Equal(t, want[tr.House], tr.Len(), "house %v", tr.House)
		assert.Equal(t, well, tr.Steps[len(tr.Steps)-1])
		prev := tr.House
		for _, s := range tr.Steps {
			dx, dy := s.X-prev.X, s.Y-prev.Y
			assert.Equal(t, 1, dx*dx+dy*dy, "step %v -> %v is not 4-adjacent", prev, s)
			assert.NotEqual(t, terrain.Tree, g.At(s).Type)
			prev = s
		}
	}
	trail.PathCells(trails).Each(func(p terrain.Point) {
		typ := g.At(p).Type
		assert.True(t, typ == terrain.Path || typ == terrain.House, "cell %v is %v", p, typ)
	})
}

func TestDrawPaths_UnreachableHouse(t *testing.T) {
	g, well := prepared(t, "O.tH")
	_, err := trail.DrawPaths(g, well)
	assert.ErrorIs(t, err, trail.ErrInconsistent)
}

func TestDrawPaths_WrongWell(t *testing.T) {
	// Distances come from (0,0) but the caller claims the well is elsewhere.
	g, err := terrain.Parse("..H")
	require.NoError(t, err)
	propagate.Propagate(g, terrain.Point{X: 0, Y: 0})
	_, err = trail.DrawPaths(g, terrain.Point{X: 1, Y: 0})
	assert.ErrorIs(t, err, trail.ErrInconsistent)
}

func TestDrawPaths_StaleDistances(t *testing.T) {
	// A hole in the distance field leaves the walk stuck.
	g, well := prepared(t, "O..H")
	g.At(terrain.Point{X: 2, Y: 0}).Distance = terrain.Unreachable
	_, err := trail.DrawPaths(g, well)
	assert.ErrorIs(t, err, trail.ErrInconsistent)
}

func TestPathCells(t *testing.T) {
	trails := []trail.Trail{
		{House: terrain.Point{X: 0, Y: 0}, Steps: []terrain.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
		{House: terrain.Point{X: 2, Y: 1}, Steps: []terrain.Point{{X: 2, Y: 0}, {X: 3, Y: 0}}},
	}
	cells := trail.PathCells(trails)
	assert.Equal(t, 2, cells.Size())
	assert.True(t, cells.Has(terrain.Point{X: 1, Y: 0}))
	assert.True(t, cells.Has(terrain.Point{X: 2, Y: 0}))
	assert.False(t, cells.Has(terrain.Point{X: 3, Y: 0}))
}
