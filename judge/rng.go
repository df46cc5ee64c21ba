// Package judge - RNG utilities shared by stochastic judges and callers that
// restart generations.
//
// Goals:
//   - Determinism: same seed ⇒ identical selections.
//   - No time-based sources hidden anywhere; seed 0 maps to a fixed default.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Random judge owns its own
//     stream; use DeriveSeed to give parallel generations independent seeds.
package judge

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier (attempt number,
// worker index) into a new seed with a SplitMix64 finalizer, so that
// neighboring stream ids give unrelated sequences.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
