package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	assert.Equal(t, int64(42), a.Seed())
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.Perm(8), b.Perm(8))
}

func TestPermIsPermutation(t *testing.T) {
	p := NewRNG(7).Perm(16)
	require.Len(t, p, 16)
	seen := make(map[int]bool)
	for _, v := range p {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 16)
		assert.False(t, seen[v])
		seen[v] = true
	}
}

func TestRandomMask(t *testing.T) {
	rng := NewRNG(1)
	for _, k := range []int{0, 3, 10} {
		mask := rng.RandomMask(10, k)
		require.Len(t, mask, 10)
		count := 0
		for _, b := range mask {
			if b {
				count++
			}
		}
		assert.Equal(t, k, count)
	}

	// k above n saturates.
	mask := rng.RandomMask(4, 9)
	count := 0
	for _, b := range mask {
		if b {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestShuffleKeepsElements(t *testing.T) {
	vals := []int{1, 2, 3, 4, 5}
	NewRNG(3).Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, vals)
}
