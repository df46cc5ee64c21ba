package grid

import (
	"fmt"

	"github.com/katalvlaran/tilewfc/pattern"
)

// PatternsAround returns the occupants of a view-sized window centered on p,
// as [row][column]. The window's top-left corner is
// (p.X - view.Width/2, p.Y - view.Height/2).
//
// With padded=true the result is always view.Height×view.Width and cells
// outside the grid read as nil, like unplaced ones. With padded=false the
// window is clipped to the grid and may be smaller.
//
// Errors: ErrInvalidView, ErrOutOfBounds (for p).
func (g *Grid) PatternsAround(p Point, view Rect, padded bool) ([][]*pattern.Group, error) {
	if view.Width < 1 || view.Height < 1 {
		return nil, fmt.Errorf("PatternsAround%s: %w", p, ErrInvalidView)
	}
	if !g.InBounds(p) {
		return nil, fmt.Errorf("PatternsAround%s: %w", p, ErrOutOfBounds)
	}
	x0, y0 := p.X-view.Width/2, p.Y-view.Height/2
	x1, y1 := x0+view.Width, y0+view.Height // exclusive

	if !padded {
		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, g.width), min(y1, g.height)
	}

	out := make([][]*pattern.Group, 0, y1-y0)
	for y := y0; y < y1; y++ {
		row := make([]*pattern.Group, 0, x1-x0)
		for x := x0; x < x1; x++ {
			row = append(row, g.OccupantAt(Point{X: x, Y: y}))
		}
		out = append(out, row)
	}
	return out, nil
}
