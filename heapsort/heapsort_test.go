package heapsort_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wellsite/heapsort"
)

func TestBuild_HeapProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	values := make([]int, 50)
	for i := range values {
		values[i] = r.IntN(100) - 50
	}
	heap := heapsort.Build(values)
	require.Len(t, heap, len(values))
	for i := 1; i < len(heap); i++ {
		parent := (i+1)/2 - 1
		assert.LessOrEqual(t, heap[parent], heap[i], "index %d", i)
	}
}

func TestBuild_Example(t *testing.T) {
	assert.Equal(t, []int{1, 4, 2, 7, 9, 4, 3}, heapsort.Build([]int{3, 7, 1, 4, 9, 4, 2}))
}

func TestSort(t *testing.T) {
	cases := [][]int{
		{},
		{1},
		{2, 1},
		{3, 7, 1, 4, 9, 4, 2},
		{5, 5, 5},
		{-3, 10, 0, -3, 8, 1, 2, 2},
	}
	for _, in := range cases {
		orig := slices.Clone(in)
		want := slices.Clone(in)
		slices.Sort(want)
		assert.Equal(t, want, heapsort.Sort(in), "input %v", orig)
		assert.Equal(t, orig, in, "input must not change")
	}
}

func TestRender(t *testing.T) {
	heap := heapsort.Build([]int{3, 7, 1, 4, 9, 4, 2})
	want := "" +
		"       1\n" +
		"   4       2\n" +
		" 7   9   4   3\n"
	assert.Equal(t, want, heapsort.Render(heap))
	assert.Equal(t, "", heapsort.Render(nil))
	assert.Equal(t, " 5\n", heapsort.Render([]int{5}))
}

func TestParseValues(t *testing.T) {
	v, err := heapsort.ParseValues("3, 7,-1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, -1}, v)

	_, err = heapsort.ParseValues("3,,1")
	assert.ErrorIs(t, err, heapsort.ErrBadValue)
}
