package huffman

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequencies(t *testing.T) {
	w := Frequencies([]byte("AAAAB"))
	require.Len(t, w, 2)
	require.InDelta(t, 0.8, w['A'], 1e-12)
	require.InDelta(t, 0.2, w['B'], 1e-12)

	require.Empty(t, Frequencies(nil))
	require.Empty(t, Frequencies([]byte{}))
}

func TestCountsParallel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{0, 1, 7, 100, 4099} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(rng.IntN(40))
		}
		want := Counts(data)
		for _, parts := range []int{-1, 0, 1, 2, 3, 8, 5000} {
			require.Equal(t, want, CountsParallel(data, parts), "size %d parts %d", size, parts)
		}
	}
}

func TestWeightsFromCounts(t *testing.T) {
	w := WeightsFromCounts(map[Symbol]int{'x': 1, 'y': 3})
	require.Equal(t, Weights{'x': 0.25, 'y': 0.75}, w)
	require.Empty(t, WeightsFromCounts(nil))
}
