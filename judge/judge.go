// Package judge provides selection strategies: given the candidate groups
// of one cell, pick the group to place.
//
// The Judge interface is deliberately narrow so that statistical or learned
// policies can plug into the wfc engine without touching grid or engine
// code. Two baseline judges are provided:
//
//   - Random: weighted-random, reproducible from a seed.
//   - Greedy: always the heaviest candidate, first one on ties.
//
// Candidates arrive sorted by uid, so a seeded Random judge reproduces the
// same choices for the same grid history.
package judge

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilewfc/pattern"
)

var (
	// ErrNoCandidates indicates Select was called with an empty candidate set.
	ErrNoCandidates = errors.New("judge: no candidates")
	// ErrBadWeight indicates a candidate weight that is not finite and > 0.
	ErrBadWeight = errors.New("judge: weight must be a finite number > 0")
)

// Judge picks one group out of a non-empty candidate list.
type Judge interface {
	Select(candidates []*pattern.Group) (*pattern.Group, error)
}

// Func adapts a plain function to the Judge interface.
type Func func(candidates []*pattern.Group) (*pattern.Group, error)

// Select calls f.
func (f Func) Select(candidates []*pattern.Group) (*pattern.Group, error) {
	return f(candidates)
}

// Random selects with probability proportional to weight.
// A Random judge is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a weighted-random judge seeded with seed
// (0 ⇒ DefaultSeed).
func NewRandom(seed int64) *Random {
	return &Random{rng: NewRand(seed)}
}

// NewRandomWithRand returns a weighted-random judge drawing from r.
// Panics on nil to surface programmer error early.
func NewRandomWithRand(r *rand.Rand) *Random {
	if r == nil {
		panic("judge: NewRandomWithRand(nil)")
	}
	return &Random{rng: r}
}

// Select implements Judge.
func (j *Random) Select(candidates []*pattern.Group) (*pattern.Group, error) {
	g, err := WeightedChoice(candidates, j.rng)
	if err != nil {
		return nil, fmt.Errorf("Random.Select: %w", err)
	}
	return g, nil
}

// Greedy always selects the heaviest candidate.
type Greedy struct{}

// NewGreedy returns a greedy judge.
func NewGreedy() Greedy { return Greedy{} }

// Select implements Judge.
func (Greedy) Select(candidates []*pattern.Group) (*pattern.Group, error) {
	g, err := MaxWeight(candidates)
	if err != nil {
		return nil, fmt.Errorf("Greedy.Select: %w", err)
	}
	return g, nil
}
