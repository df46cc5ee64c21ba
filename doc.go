// Package tilewfc fills 2D grids with tiles using Wave Function Collapse:
// pick the least certain cell, commit it to one compatible tile group,
// propagate the constraint to its neighbors, repeat.
//
// 🚀 What is inside?
//
//	pattern/ — tiles, weighted groups, per-direction adjacency rules, the repository
//	grid/    — cells, entropy bookkeeping, propagation, dump/load
//	judge/   — selection strategies: weighted random, greedy, any custom Judge
//	wfc/     — the collapse engine: Step/Run state machine with typed failures
//	loader/  — YAML/JSON pattern documents → repository
//	region/  — contiguous regions of a generated grid
//	metrics/ — Prometheus observer for the engine
//
// ✨ Guarantees
//
//   - Each placed cell is allowed by the rules of every neighbor placed
//     before it. Both cells' rules hold for every pair when the repository's
//     Validate reports success.
//   - A fixed repository and a seeded judge give the same grid every run.
//   - No backtracking: a contradiction ends the run; restart to retry.
//   - Library packages never log unless given a *slog.Logger.
//
// Quick example (two groups, a 3×1 strip):
//
//	repo := pattern.NewRepository()
//	_ = repo.Register([]*pattern.Group{grass, road})
//	_ = repo.AttachRules(1, pattern.RuleSpec{pattern.Right: {pattern.Wildcard()}, ...})
//	g, _ := grid.New(3, 1, repo)
//	e, _ := wfc.New(g, judge.NewRandom(42))
//	if e.Run() {
//		fmt.Print(g) // 01 | 02 | 02
//	}
//
// The command in cmd/tilewfc wraps all of it:
//
//	go install github.com/katalvlaran/tilewfc/cmd/tilewfc@latest
package tilewfc
