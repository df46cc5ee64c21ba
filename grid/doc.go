// Package grid holds the cell matrix of one generation attempt: which group
// occupies each cell and how many groups are still possible there.
//
// What:
//
//   - Grid is a Width×Height matrix of *pattern.Group (nil = unplaced) plus a
//     parallel entropy matrix. Both are stored row-major: index = y*Width + x.
//   - Entropy here is a count, not Shannon entropy: the number of groups
//     still consistent with the placed neighbors of a cell. Placed cells have
//     entropy 0; an unplaced cell at 0 is a contradiction.
//   - ValidCandidates intersects the full group set with the rule masks of
//     placed neighbors, FindMinEntropyCell picks the next cell to collapse
//     (ties broken by distance to the center, then scan order), Place and
//     Propagate commit a choice and refresh neighbor entropies.
//   - Dump/Load persist the uid matrix as comma-separated text, Unplaced
//     (-1) marking empty cells.
//
// Why:
//
//   - Grid is mechanism, not policy: it never checks that a placed group is
//     a valid candidate. The wfc engine decides what to place.
//
// Complexity:
//
//   - ValidCandidates: O(4·G/64) word operations + O(G) to expand.
//   - FindMinEntropyCell: O(W×H).
//   - Propagate: O(4·4·G/64).
//
// Concurrency:
//
//   - A Grid is owned by one goroutine. Independent grids may share one
//     read-only *pattern.Repository.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNotRegistered, ErrOutOfBounds, ErrNilGroup,
//     ErrForeignGroup, ErrAlreadyPlaced, ErrInvalidView, ErrMalformedDump.
package grid
