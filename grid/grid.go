package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilewfc/pattern"
)

// Grid is the cell matrix of one generation attempt.
type Grid struct {
	width, height int
	repo          *pattern.Repository

	cells   []*pattern.Group // row-major, nil = unplaced
	entropy []int            // row-major
	placed  int
}

// New returns a width×height grid over the groups of repo, already
// initialized (every cell unplaced, every entropy = repo.Len()).
// Returns ErrEmptyGrid if width or height < 1, ErrNotRegistered if repo
// has no registered groups.
// Complexity: O(W×H) time and memory.
func New(width, height int, repo *pattern.Repository) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	if repo == nil || !repo.Registered() {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrNotRegistered)
	}
	g := &Grid{
		width:   width,
		height:  height,
		repo:    repo,
		cells:   make([]*pattern.Group, width*height),
		entropy: make([]int, width*height),
	}
	g.Initialize()
	return g, nil
}

// Initialize discards every placement and resets every entropy to the
// total group count. Safe to call at any time.
func (g *Grid) Initialize() {
	total := g.repo.Len()
	for i := range g.cells {
		g.cells[i] = nil
		g.entropy[i] = total
	}
	g.placed = 0
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Repository returns the repository the grid draws groups from.
func (g *Grid) Repository() *pattern.Repository { return g.repo }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index maps p to its row-major slot.
func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// OccupantAt returns the group placed at p, or nil when p is unplaced or
// out of bounds.
func (g *Grid) OccupantAt(p Point) *pattern.Group {
	if !g.InBounds(p) {
		return nil
	}
	return g.cells[g.index(p)]
}

// EntropyAt returns the entropy of p, or -1 when p is out of bounds.
func (g *Grid) EntropyAt(p Point) int {
	if !g.InBounds(p) {
		return -1
	}
	return g.entropy[g.index(p)]
}

// PlacedCount returns the number of collapsed cells.
func (g *Grid) PlacedCount() int { return g.placed }

// IsCollapsed reports whether every cell holds a group.
func (g *Grid) IsCollapsed() bool {
	return g.placed == len(g.cells)
}

// UIDs returns the uid matrix, [row][column], Unplaced for empty cells.
func (g *Grid) UIDs() [][]int {
	out := make([][]int, g.height)
	for y := range out {
		row := make([]int, g.width)
		for x := range row {
			row[x] = Unplaced
			if c := g.cells[y*g.width+x]; c != nil {
				row[x] = c.UID()
			}
		}
		out[y] = row
	}
	return out
}

// String renders one line per row, cells as two-digit uids or "None",
// separated by " | ".
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteString(" | ")
			}
			if c := g.cells[y*g.width+x]; c != nil {
				fmt.Fprintf(&sb, "%02d", c.UID())
			} else {
				sb.WriteString("None")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
