// SPDX-License-Identifier: MIT
// Package: tilewfc/pattern
//
// repository.go — registration, lookups and rule resolution.
//
// Contract:
//   • Register exactly once; every lookup before it fails with ErrNotRegistered.
//   • Groups are kept sorted by uid; the slice position is the arena index.
//   • Lookups by tag/wildcard are meant for rule building, not for collapse.

package pattern

import (
	"fmt"
	"slices"
)

// Repository owns the registered groups of one pattern set.
type Repository struct {
	groups []*Group // sorted by uid, groups[i].index == i
	byUID  map[int]*Group
	byTag  map[string][]*Group
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Register stores groups and assigns their arena indices. The input slice
// is not retained.
//
// Errors:
//   - ErrAlreadyRegistered on a second call.
//   - ErrNoGroups for an empty list, ErrNilGroup for a nil entry.
//   - ErrGroupRegistered if a group already belongs to a repository.
//   - ErrDuplicateUID if two groups share a uid.
//
// On error nothing is stored and the repository stays unregistered.
func (r *Repository) Register(groups []*Group) error {
	if r.Registered() {
		return fmt.Errorf("Register: %w", ErrAlreadyRegistered)
	}
	if len(groups) == 0 {
		return fmt.Errorf("Register: %w", ErrNoGroups)
	}
	for i, g := range groups {
		if g == nil {
			return fmt.Errorf("Register: entry %d: %w", i, ErrNilGroup)
		}
		if g.index >= 0 {
			return fmt.Errorf("Register: uid %d: %w", g.uid, ErrGroupRegistered)
		}
	}

	sorted := slices.Clone(groups)
	slices.SortFunc(sorted, func(a, b *Group) int { return a.uid - b.uid })

	byUID := make(map[int]*Group, len(sorted))
	byTag := make(map[string][]*Group)
	for _, g := range sorted {
		if _, dup := byUID[g.uid]; dup {
			return fmt.Errorf("Register: uid %d: %w", g.uid, ErrDuplicateUID)
		}
		byUID[g.uid] = g
		for _, t := range g.tags {
			byTag[t] = append(byTag[t], g)
		}
	}

	// Commit only once every check passed.
	for i, g := range sorted {
		g.index = i
	}
	r.groups = sorted
	r.byUID = byUID
	r.byTag = byTag
	return nil
}

// Registered reports whether Register has succeeded.
func (r *Repository) Registered() bool {
	return r.groups != nil
}

// Len returns the number of registered groups.
func (r *Repository) Len() int {
	return len(r.groups)
}

// AllGroups returns every registered group sorted by uid. This is the
// universal candidate set of a grid cell.
func (r *Repository) AllGroups() []*Group {
	return slices.Clone(r.groups)
}

// GroupAt returns the group with arena index i, or nil.
func (r *Repository) GroupAt(i int) *Group {
	if i < 0 || i >= len(r.groups) {
		return nil
	}
	return r.groups[i]
}

// FullMask returns a fresh mask with every registered group set.
func (r *Repository) FullMask() Mask {
	return FullMask(len(r.groups))
}

// Expand converts a mask into the groups it marks, sorted by uid.
func (r *Repository) Expand(m Mask) []*Group {
	out := make([]*Group, 0, m.Count())
	m.Each(func(i int) {
		if i < len(r.groups) {
			out = append(out, r.groups[i])
		}
	})
	return out
}

// LookupByUID returns the group with the given uid.
func (r *Repository) LookupByUID(uid int) (*Group, bool) {
	g, ok := r.byUID[uid]
	return g, ok
}

// LookupByTag returns every group carrying tag, sorted by uid.
func (r *Repository) LookupByTag(tag string) []*Group {
	return slices.Clone(r.byTag[tag])
}

// LookupWildcard returns every registered group, sorted by uid.
func (r *Repository) LookupWildcard() []*Group {
	return r.AllGroups()
}

// Resolve expands one rule reference into concrete groups.
//
// Errors:
//   - ErrNotRegistered before Register.
//   - ErrUnknownUID / ErrUnknownTag for references matching nothing.
func (r *Repository) Resolve(ref RuleRef) ([]*Group, error) {
	if !r.Registered() {
		return nil, fmt.Errorf("Resolve(%s): %w", ref, ErrNotRegistered)
	}
	switch ref.Kind {
	case RefUID:
		g, ok := r.byUID[ref.UID]
		if !ok {
			return nil, fmt.Errorf("Resolve(%s): %w", ref, ErrUnknownUID)
		}
		return []*Group{g}, nil
	case RefTag:
		gs := r.byTag[ref.Tag]
		if len(gs) == 0 {
			return nil, fmt.Errorf("Resolve(%s): %w", ref, ErrUnknownTag)
		}
		return slices.Clone(gs), nil
	default:
		return r.AllGroups(), nil
	}
}

// BuildRuleSet resolves spec into a RuleSet without attaching it.
// Duplicate references collapse into one entry.
func (r *Repository) BuildRuleSet(spec RuleSpec) (*RuleSet, error) {
	if !r.Registered() {
		return nil, fmt.Errorf("BuildRuleSet: %w", ErrNotRegistered)
	}
	rs := &RuleSet{}
	for _, d := range Directions {
		m := NewMask(len(r.groups))
		for _, ref := range spec[d] {
			gs, err := r.Resolve(ref)
			if err != nil {
				return nil, fmt.Errorf("BuildRuleSet %s: %w", d, err)
			}
			for _, g := range gs {
				m.Set(g.index)
			}
		}
		rs.masks[d] = m
		rs.allowed[d] = r.Expand(m)
	}
	return rs, nil
}

// AttachRules resolves spec and attaches it to the group with the given uid.
//
// Errors:
//   - ErrNotRegistered, ErrUnknownUID for the target group.
//   - ErrRulesAlreadySet if the group already has rules.
//   - any Resolve error, wrapped with the target uid.
func (r *Repository) AttachRules(uid int, spec RuleSpec) error {
	if !r.Registered() {
		return fmt.Errorf("AttachRules(%d): %w", uid, ErrNotRegistered)
	}
	g, ok := r.byUID[uid]
	if !ok {
		return fmt.Errorf("AttachRules(%d): %w", uid, ErrUnknownUID)
	}
	if g.rules != nil {
		return fmt.Errorf("AttachRules(%d): %w", uid, ErrRulesAlreadySet)
	}
	rs, err := r.BuildRuleSet(spec)
	if err != nil {
		return fmt.Errorf("AttachRules(%d): %w", uid, err)
	}
	g.rules = rs
	return nil
}
