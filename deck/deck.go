// Package deck provides seedable shuffling and sampling over slices
package deck

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG backed generator, seed 0 derives a seed from the clock
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Shuffle returns a uniformly permuted copy of items, leaving items untouched
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Sample returns min(len(items), k) distinct items chosen uniformly without replacement
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	if k <= 0 {
		return nil
	}
	shuffled := Shuffle(rng, items)
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k]
}
