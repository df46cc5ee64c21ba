// Package wfc drives one Wave Function Collapse generation over a grid.
//
// The Engine is a small state machine:
//
//	Uninitialized ──Initialize/Step──▶ Running ──▶ Collapsed
//	                                      │
//	                                      └──────▶ Failed(reason, point)
//
// Collapsed and Failed are terminal until Initialize resets the grid.
//
// One Step:
//
//  1. pick the unplaced cell with the lowest entropy (grid.FindMinEntropyCell),
//  2. compute its candidates (grid.ValidCandidates),
//  3. let the Judge select one,
//  4. place it and propagate to the neighbors.
//
// Failures are typed outcomes, not errors:
//
//   - ZeroChoice: the selected cell has no legal candidate.
//   - ZeroEntropy: a placement left a neighboring unplaced cell with no
//     candidate (a contradiction).
//
// There is no backtracking. A contradiction ends the run; callers that want
// another try call Initialize (optionally with a fresh judge seed) and run
// again.
//
// With early stopping disabled, Step keeps going past contradictions for
// diagnostics; the first contradiction is still recorded and reported by
// Run once no cell can advance.
//
// Determinism: a fixed repository, fixed rules and a seeded judge give the
// same grid on every Run.
//
// Concurrency: an Engine and its Grid belong to one goroutine.
package wfc
