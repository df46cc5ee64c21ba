package judge

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tilewfc/pattern"
)

// WeightedChoice draws one item with probability proportional to its
// Weight. It works for groups and for a group's variants alike. A nil rng
// uses the DefaultSeed stream.
//
// Errors: ErrNoCandidates for an empty slice, ErrBadWeight if any weight is
// not finite and > 0.
// Complexity: O(n).
func WeightedChoice[T pattern.Weighted](items []T, rng *rand.Rand) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoCandidates
	}
	total := 0.0
	for i, it := range items {
		w := it.Weight()
		if !(w > 0) || math.IsInf(w, 0) {
			return zero, fmt.Errorf("WeightedChoice: item %d weight %v: %w", i, w, ErrBadWeight)
		}
		total += w
	}
	if rng == nil {
		rng = NewRand(0)
	}

	r := rng.Float64() * total
	for _, it := range items {
		r -= it.Weight()
		if r < 0 {
			return it, nil
		}
	}
	// Float rounding can leave r at ~0 after the last item.
	return items[len(items)-1], nil
}

// MaxWeight returns the first item with the largest weight.
// Errors: ErrNoCandidates for an empty slice.
// Complexity: O(n).
func MaxWeight[T pattern.Weighted](items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoCandidates
	}
	best := items[0]
	for _, it := range items[1:] {
		if it.Weight() > best.Weight() {
			best = it
		}
	}
	return best, nil
}
