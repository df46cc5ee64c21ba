package grid

import (
	"fmt"

	"github.com/katalvlaran/tilewfc/pattern"
)

// Neighbors returns the up-to-4 in-bounds cells adjacent to p, each tagged
// with the side of p it lies on, in the order up, down, left, right. There
// is no wraparound. Out-of-bounds p yields nil.
func (g *Grid) Neighbors(p Point) []Neighbor {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]Neighbor, 0, len(neighborOffsets))
	for _, o := range neighborOffsets {
		n := Point{X: p.X + o.dx, Y: p.Y + o.dy}
		if !g.InBounds(n) {
			continue
		}
		out = append(out, Neighbor{Point: n, Direction: o.dir})
	}
	return out
}

// candidateMask intersects the full group mask with the rule mask of every
// placed neighbor, as seen from that neighbor towards p.
func (g *Grid) candidateMask(p Point) pattern.Mask {
	m := g.repo.FullMask()
	for _, o := range neighborOffsets {
		n := Point{X: p.X + o.dx, Y: p.Y + o.dy}
		if !g.InBounds(n) {
			continue
		}
		occ := g.cells[g.index(n)]
		if occ == nil {
			continue // unplaced neighbors impose nothing
		}
		// p lies on side o.dir.Reverse() of its neighbor.
		m.Intersect(occ.Rules().AllowedMask(o.dir.Reverse()))
	}
	return m
}

// ValidCandidates returns the groups still consistent with the placed
// neighbors of p, sorted by uid. With no placed neighbor it equals
// Repository().AllGroups(). Out-of-bounds p yields nil.
func (g *Grid) ValidCandidates(p Point) []*pattern.Group {
	if !g.InBounds(p) {
		return nil
	}
	return g.repo.Expand(g.candidateMask(p))
}

// FindMinEntropyCell returns the unplaced cell with the smallest positive
// entropy. Ties go to the cell closest (Euclidean) to the center
// (Width/2, Height/2), then to the first one in row-major scan order.
// ok is false when no cell has positive entropy: either everything is
// placed, or every remaining cell is a contradiction.
// Complexity: O(W×H).
func (g *Grid) FindMinEntropyCell() (p Point, ok bool) {
	cx, cy := g.width/2, g.height/2
	best, bestE, bestD := -1, 0, 0
	for i, e := range g.entropy {
		if e <= 0 {
			continue
		}
		x, y := i%g.width, i/g.width
		d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
		if best < 0 || e < bestE || (e == bestE && d < bestD) {
			best, bestE, bestD = i, e, d
		}
	}
	if best < 0 {
		return Point{}, false
	}
	return g.Coordinate(best), true
}

// Place collapses p to group and zeroes its entropy. It does not check that
// group is a valid candidate; that is the caller's policy.
//
// Errors:
//   - ErrOutOfBounds, ErrNilGroup.
//   - ErrForeignGroup if group is not registered in Repository().
//   - ErrAlreadyPlaced if p already holds a group.
func (g *Grid) Place(p Point, group *pattern.Group) error {
	if !g.InBounds(p) {
		return fmt.Errorf("Place%s: %w", p, ErrOutOfBounds)
	}
	if group == nil {
		return fmt.Errorf("Place%s: %w", p, ErrNilGroup)
	}
	if g.repo.GroupAt(group.Index()) != group {
		return fmt.Errorf("Place%s: uid %d: %w", p, group.UID(), ErrForeignGroup)
	}
	i := g.index(p)
	if g.cells[i] != nil {
		return fmt.Errorf("Place%s: %w", p, ErrAlreadyPlaced)
	}
	g.cells[i] = group
	g.entropy[i] = 0
	g.placed++
	return nil
}

// Propagate recomputes the entropy of every unplaced neighbor of p. If a
// neighbor is left with no candidate, Propagate stops and returns it as the
// contradiction; neighbors after it keep their previous entropy.
func (g *Grid) Propagate(p Point) (contradiction Point, found bool) {
	if !g.InBounds(p) {
		return Point{}, false
	}
	for _, o := range neighborOffsets {
		n := Point{X: p.X + o.dx, Y: p.Y + o.dy}
		if !g.InBounds(n) {
			continue
		}
		i := g.index(n)
		if g.cells[i] != nil {
			continue
		}
		c := g.candidateMask(n).Count()
		g.entropy[i] = c
		if c == 0 {
			return n, true
		}
	}
	return Point{}, false
}
