// SPDX-License-Identifier: MIT
// Package: tilewfc/pattern
//
// types.go — Direction, the Weighted capability, Pattern and Group.

package pattern

import (
	"fmt"
	"math"
	"slices"
)

// Direction names one side of a grid cell.
type Direction uint8

const (
	// Up is the side towards row y-1.
	Up Direction = iota
	// Down is the side towards row y+1.
	Down
	// Left is the side towards column x-1.
	Left
	// Right is the side towards column x+1.
	Right
)

// directionCount is the number of sides of a cell (4-connectivity).
const directionCount = 4

// Directions lists every Direction in canonical order.
var Directions = [directionCount]Direction{Up, Down, Left, Right}

// Reverse returns the opposite side: Up<->Down, Left<->Right.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d < directionCount
}

// String returns "UP", "DOWN", "LEFT" or "RIGHT".
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Weighted is anything exposing a positive selection weight.
// Both Pattern and *Group implement it.
type Weighted interface {
	Weight() float64
}

// Pattern is one visual variant of a Group.
type Pattern struct {
	imagePath string
	weight    float64
}

// NewPattern returns a variant with the given image reference and weight.
// Returns ErrInvalidWeight if weight is not finite and > 0.
func NewPattern(imagePath string, weight float64) (Pattern, error) {
	if !validWeight(weight) {
		return Pattern{}, fmt.Errorf("NewPattern(%q): %w", imagePath, ErrInvalidWeight)
	}
	return Pattern{imagePath: imagePath, weight: weight}, nil
}

// ImagePath returns the image reference of the variant.
func (p Pattern) ImagePath() string { return p.imagePath }

// Weight returns the variant weight.
func (p Pattern) Weight() float64 { return p.weight }

// Group is a weighted set of interchangeable variants sharing one RuleSet.
// Identity (equality, map keys, ordering) is the uid. Everything except the
// rules is immutable after NewGroup; rules are attached once by the owning
// Repository.
type Group struct {
	uid      int
	name     string
	weight   float64
	tags     []string // sorted, unique
	variants []Pattern
	rules    *RuleSet

	// index is the arena position inside the owning repository, -1 before
	// registration.
	index int
}

// NewGroup validates and builds a Group identity without rules.
//
// Errors:
//   - ErrInvalidUID    if uid < 0.
//   - ErrInvalidWeight if weight is not finite and > 0.
//   - ErrNoVariants    if variants is empty.
func NewGroup(uid int, name string, weight float64, tags []string, variants []Pattern) (*Group, error) {
	if uid < 0 {
		return nil, fmt.Errorf("NewGroup(%d): %w", uid, ErrInvalidUID)
	}
	if !validWeight(weight) {
		return nil, fmt.Errorf("NewGroup(%d): %w", uid, ErrInvalidWeight)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("NewGroup(%d): %w", uid, ErrNoVariants)
	}

	t := slices.Clone(tags)
	slices.Sort(t)
	t = slices.Compact(t)

	return &Group{
		uid:      uid,
		name:     name,
		weight:   weight,
		tags:     t,
		variants: slices.Clone(variants),
		index:    -1,
	}, nil
}

// UID returns the stable unique identifier.
func (g *Group) UID() int { return g.uid }

// Name returns the human-readable name.
func (g *Group) Name() string { return g.name }

// Weight returns the selection weight.
func (g *Group) Weight() float64 { return g.weight }

// Index returns the arena index assigned by Register, or -1.
func (g *Group) Index() int { return g.index }

// Tags returns a sorted copy of the tag set.
func (g *Group) Tags() []string { return slices.Clone(g.tags) }

// HasTag reports whether the group carries tag.
func (g *Group) HasTag(tag string) bool {
	_, found := slices.BinarySearch(g.tags, tag)
	return found
}

// Variants returns a copy of the ordered variant list.
func (g *Group) Variants() []Pattern { return slices.Clone(g.variants) }

// Rules returns the attached rule set, nil before AttachRules.
func (g *Group) Rules() *RuleSet { return g.rules }

// Allowed is shorthand for g.Rules().Allowed(d).
func (g *Group) Allowed(d Direction) []*Group {
	return g.rules.Allowed(d)
}

// String returns "name#uid".
func (g *Group) String() string {
	if g == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", g.name, g.uid)
}

// validWeight reports whether w is finite and strictly positive.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
