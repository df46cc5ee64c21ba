package region

import (
	"slices"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/pattern"
)

// Components returns the connected regions of placed cells holding the same
// group. Regions are ordered by their first cell in scan order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components(g *grid.Grid, opts Options) ([]Region, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	same := func(a, b *pattern.Group) bool { return a == b }
	regions := flood(g, opts, func(*pattern.Group) bool { return true }, same)
	for i := range regions {
		regions[i].UID = g.OccupantAt(regions[i].Cells[0]).UID()
	}
	return regions, nil
}

// TagComponents returns the connected regions of placed cells whose group
// carries tag. A tag no group carries yields no region.
func TagComponents(g *grid.Grid, tag string, opts Options) ([]Region, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	member := func(o *pattern.Group) bool { return o.HasTag(tag) }
	regions := flood(g, opts, member, func(_, _ *pattern.Group) bool { return true })
	for i := range regions {
		regions[i].UID = grid.Unplaced
		regions[i].Tag = tag
	}
	return regions, nil
}

// flood runs one BFS per unvisited member cell; a neighbor joins the
// region when it is a member and linked to the cell it was reached from.
func flood(g *grid.Grid, opts Options, member func(*pattern.Group) bool, linked func(a, b *pattern.Group) bool) []Region {
	w, h := g.Width(), g.Height()
	seen := make([]bool, w*h)
	offsets := opts.offsets()
	var regions []Region

	for i0 := range seen {
		p0 := g.Coordinate(i0)
		occ := g.OccupantAt(p0)
		if seen[i0] || occ == nil || !member(occ) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var cells []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			cells = append(cells, u)
			up := g.Coordinate(u)
			uo := g.OccupantAt(up)
			for _, d := range offsets {
				vp := grid.Point{X: up.X + d[0], Y: up.Y + d[1]}
				vo := g.OccupantAt(vp) // nil when out of bounds
				if vo == nil || !member(vo) || !linked(uo, vo) {
					continue
				}
				vi := vp.Y*w + vp.X
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}

		slices.Sort(cells)
		pts := make([]grid.Point, len(cells))
		for k, c := range cells {
			pts[k] = g.Coordinate(c)
		}
		regions = append(regions, Region{Cells: pts})
	}
	return regions
}
