package Queues

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Populate inserts the elements 0..size-1 into q, each with a priority drawn
// uniformly from [min, max].
func Populate[T constraints.Integer, P constraints.Signed](q PriorityQueue[T, P], size uint, min, max P, rng *rand.Rand) error {
	if min > max {
		return &InvalidRangeError{int64(min), int64(max)}
	}
	for i := uint(0); i < size; i++ {
		q.Insert(T(i), P(Uniform(rng, int64(min), int64(max))))
	}
	return nil
}

// Uniform returns a value drawn uniformly from [min, max], which must not be
// empty. max-min may overflow int64, but its bits are still the right
// distance as a uint64.
func Uniform(rng *rand.Rand, min, max int64) int64 {
	d := uint64(max - min)
	if d < math.MaxInt64 {
		return min + rng.Int63n(int64(d)+1)
	}
	for {
		if v := rng.Uint64(); d == math.MaxUint64 || v <= d {
			return min + int64(v)
		}
	}
}
