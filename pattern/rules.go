// SPDX-License-Identifier: MIT
// Package: tilewfc/pattern
//
// rules.go — declarative rule references and the resolved RuleSet.

package pattern

import (
	"fmt"
	"slices"
)

// WildcardToken is the textual rule entry that expands to every group.
const WildcardToken = "ALL"

// RefKind distinguishes the three forms of a rule entry.
type RefKind uint8

const (
	// RefUID references one group by uid.
	RefUID RefKind = iota
	// RefTag references every group carrying a tag.
	RefTag
	// RefWildcard references every registered group.
	RefWildcard
)

// RuleRef is one unresolved entry of a rule specification.
type RuleRef struct {
	Kind RefKind
	UID  int    // valid when Kind == RefUID
	Tag  string // valid when Kind == RefTag
}

// UIDRef returns a reference to the group with the given uid.
func UIDRef(uid int) RuleRef { return RuleRef{Kind: RefUID, UID: uid} }

// TagRef returns a reference to every group carrying tag.
func TagRef(tag string) RuleRef { return RuleRef{Kind: RefTag, Tag: tag} }

// Wildcard returns a reference to every registered group.
func Wildcard() RuleRef { return RuleRef{Kind: RefWildcard} }

// ParseTextRef maps a string rule entry: WildcardToken is the wildcard,
// anything else a tag.
func ParseTextRef(s string) RuleRef {
	if s == WildcardToken {
		return Wildcard()
	}
	return TagRef(s)
}

// String renders the reference the way it appears in a pattern document.
func (r RuleRef) String() string {
	switch r.Kind {
	case RefUID:
		return fmt.Sprintf("%d", r.UID)
	case RefWildcard:
		return WildcardToken
	default:
		return fmt.Sprintf("%q", r.Tag)
	}
}

// RuleSpec is the declarative, per-direction rule list of one group.
// Missing directions allow nothing.
type RuleSpec map[Direction][]RuleRef

// RuleSet is the resolved adjacency whitelist of one group: for each side,
// the groups that may be placed there.
//
// A nil *RuleSet allows nothing in any direction.
type RuleSet struct {
	allowed [directionCount][]*Group // sorted by uid
	masks   [directionCount]Mask
}

// Allowed returns a copy of the groups permitted on side d, sorted by uid.
func (rs *RuleSet) Allowed(d Direction) []*Group {
	if rs == nil || !d.Valid() {
		return nil
	}
	return slices.Clone(rs.allowed[d])
}

// AllowedMask returns the arena mask of side d. The returned slice is
// shared; callers must not modify it.
func (rs *RuleSet) AllowedMask(d Direction) Mask {
	if rs == nil || !d.Valid() {
		return nil
	}
	return rs.masks[d]
}

// Allows reports whether g is permitted on side d.
func (rs *RuleSet) Allows(d Direction, g *Group) bool {
	if rs == nil || g == nil || !d.Valid() {
		return false
	}
	return rs.masks[d].Has(g.index)
}

// All returns every side with its allowed groups, for diagnostics and
// rendering.
func (rs *RuleSet) All() map[Direction][]*Group {
	out := make(map[Direction][]*Group, directionCount)
	for _, d := range Directions {
		out[d] = rs.Allowed(d)
	}
	return out
}
