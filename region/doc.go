// Package region finds contiguous regions in a generated grid: cells that
// hold the same group, or cells whose groups share a tag.
//
// What:
//
//   - Components groups placed cells of equal uid into connected regions.
//   - TagComponents groups placed cells carrying one tag, whatever their uid.
//   - Summarize folds regions into per-group counts (cells, regions, largest).
//
// Unplaced cells never belong to a region. The package only reads the grid.
//
// Complexity:
//
//   - Components, TagComponents: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - Summarize: O(R log R) for R regions.
//
// Options:
//
//   - Options.Conn: Conn4 (edge neighbors, the default) or Conn8 (also diagonals).
package region
