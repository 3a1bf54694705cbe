// Package util provides small helpers shared across tabgo packages.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Intn returns a uniform random int in [0, n).
func (r *RNG) Intn(n int) int { return r.rand.Intn(n) }

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int { return r.rand.Perm(n) }

// Shuffle randomizes the order of n elements using the given swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) { r.rand.Shuffle(n, swap) }

// RandomMask builds a boolean vector of length n with exactly k true
// entries placed at random positions.
func (r *RNG) RandomMask(n, k int) []bool {
	mask := make([]bool, n)
	for i := 0; i < k && i < n; i++ {
		mask[i] = true
	}
	r.rand.Shuffle(n, func(i, j int) { mask[i], mask[j] = mask[j], mask[i] })
	return mask
}
