package terrain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wellsite/terrain"
)

func TestGenerate_InvalidArgs(t *testing.T) {
	_, err := terrain.Generate(0, 5, 1, 1, terrain.WithSeed(1))
	assert.ErrorIs(t, err, terrain.ErrBadDimensions)

	_, err = terrain.Generate(5, 5, -1, 1, terrain.WithSeed(1))
	assert.ErrorIs(t, err, terrain.ErrBadCount)

	_, err = terrain.Generate(5, 5, 1, -1, terrain.WithSeed(1))
	assert.ErrorIs(t, err, terrain.ErrBadCount)
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := terrain.Generate(20, 10, 6, 40, terrain.WithSeed(42))
	require.NoError(t, err)
	b, err := terrain.Generate(20, 10, 6, 40, terrain.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Points(terrain.House), b.Points(terrain.House))
	assert.Equal(t, a.Points(terrain.Tree), b.Points(terrain.Tree))
}

func TestGenerate_CountsBoundedByRequest(t *testing.T) {
	g, err := terrain.Generate(8, 8, 10, 30, terrain.WithSeed(7))
	require.NoError(t, err)

	// overlapping draws may only lose cells, never add them
	houses, trees := g.Count(terrain.House), g.Count(terrain.Tree)
	assert.LessOrEqual(t, houses, 10)
	assert.LessOrEqual(t, trees, 30)
	assert.Positive(t, houses)
	assert.Equal(t, 64, houses+trees+g.Count(terrain.Empty))
	assert.Zero(t, g.Count(terrain.Well))
	assert.Zero(t, g.Count(terrain.Path))
}

func TestGenerate_HousesOverwriteTrees(t *testing.T) {
	// A 1×1 map forces every draw onto the same cell; houses come last.
	g, err := terrain.Generate(1, 1, 1, 5, terrain.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, terrain.House, g.At(terrain.Point{}).Type)
}

func TestGenerate_WithRand(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := terrain.Generate(6, 4, 2, 3, terrain.WithRand(r))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Width)
	assert.Equal(t, 4, g.Height)

	assert.Panics(t, func() { terrain.WithRand(nil) })
}

func TestGenerate_SecureDefault(t *testing.T) {
	g, err := terrain.Generate(5, 5, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 25, g.Count(terrain.Empty)+g.Count(terrain.House)+g.Count(terrain.Tree))
}

func TestParseDimensions(t *testing.T) {
	w, h, err := terrain.ParseDimensions("40x25")
	require.NoError(t, err)
	assert.Equal(t, 40, w)
	assert.Equal(t, 25, h)

	w, h, err = terrain.ParseDimensions(" 3X1 ")
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)

	for _, s := range []string{"", "40", "40x", "x25", "axb", "1x2x3"} {
		_, _, err = terrain.ParseDimensions(s)
		assert.ErrorIs(t, err, terrain.ErrBadFormat, "input %q", s)
	}
	_, _, err = terrain.ParseDimensions("0x5")
	assert.ErrorIs(t, err, terrain.ErrBadDimensions)
}
