package region

import (
	"errors"

	"github.com/katalvlaran/tilewfc/grid"
)

// ErrNilGrid indicates a nil *grid.Grid argument.
var ErrNilGrid = errors.New("region: nil grid")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for region analysis.
type Options struct {
	Conn Connectivity
}

// DefaultOptions returns Options{Conn: Conn4}, the adjacency the collapse
// engine itself uses.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

func (o Options) offsets() [][2]int {
	if o.Conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Region is one connected set of cells.
// UID is the shared group uid, or grid.Unplaced for a tag region.
// Tag is set for tag regions only.
type Region struct {
	UID   int
	Tag   string
	Cells []grid.Point // row-major order
}

// Size returns the number of cells.
func (r Region) Size() int { return len(r.Cells) }

// Stats summarizes the regions of one group.
type Stats struct {
	UID     int
	Name    string
	Cells   int
	Regions int
	Largest int
}
