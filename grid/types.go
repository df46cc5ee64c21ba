// Package grid defines core types, sentinels and constants for cell grids.
package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilewfc/pattern"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a width or height below 1.
	ErrEmptyGrid = errors.New("grid: width and height must be at least 1")
	// ErrNotRegistered indicates a repository without registered groups.
	ErrNotRegistered = errors.New("grid: repository has no registered groups")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNilGroup indicates Place was called with a nil group.
	ErrNilGroup = errors.New("grid: nil group")
	// ErrForeignGroup indicates a group not registered in the grid's repository.
	ErrForeignGroup = errors.New("grid: group does not belong to this repository")
	// ErrAlreadyPlaced indicates Place on a cell that is already collapsed.
	ErrAlreadyPlaced = errors.New("grid: cell already placed")
	// ErrInvalidView indicates a view rectangle with a non-positive side.
	ErrInvalidView = errors.New("grid: view must be at least 1x1")
	// ErrMalformedDump indicates a dump that is not a rectangular integer matrix.
	ErrMalformedDump = errors.New("grid: malformed dump")
)

// Unplaced is the uid written for an empty cell in the dump format.
const Unplaced = -1

// Point is a cell coordinate: X is the column, Y the row, both 0-based.
type Point struct {
	X, Y int
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a width×height window size.
type Rect struct {
	Width, Height int
}

// Neighbor is an in-bounds adjacent cell and the side of the origin cell it
// lies on.
type Neighbor struct {
	Point     Point
	Direction pattern.Direction
}

// neighborOffset pairs a coordinate delta with the side it reaches.
type neighborOffset struct {
	dx, dy int
	dir    pattern.Direction
}

// neighborOffsets is the fixed neighbor order: up, down, left, right.
var neighborOffsets = [4]neighborOffset{
	{0, -1, pattern.Up},
	{0, 1, pattern.Down},
	{-1, 0, pattern.Left},
	{1, 0, pattern.Right},
}
