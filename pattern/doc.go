// Package pattern defines the constraint model of tilewfc: tiles, weighted
// groups of interchangeable tiles, per-direction adjacency rules and the
// repository that owns them.
//
// What:
//
//   - Pattern is one visual variant (image reference + weight). The collapse
//     algorithm never looks at it; renderers do.
//   - Group is the unit the algorithm reasons about: a stable uid, a weight,
//     a tag set, a non-empty list of variants and one RuleSet.
//   - RuleSet holds, for each Direction, the set of groups allowed to sit on
//     that side of the owning group.
//   - Repository registers groups once, resolves symbolic rule references
//     (uid, tag, "ALL" wildcard) and checks rule symmetry.
//
// Two-phase construction:
//
//	groups := []*pattern.Group{...}            // 1. identities only
//	repo := pattern.NewRepository()
//	_ = repo.Register(groups)                  // 2. arena + indices
//	_ = repo.AttachRules(uid, pattern.RuleSpec{ // 3. cross references
//		pattern.Right: {pattern.TagRef("land"), pattern.UIDRef(7)},
//	})
//	report := repo.Validate()                  // 4. advisory symmetry check
//
// Every registered group receives a dense arena index (its position in uid
// order). Rule sets store their allowed groups as a Mask over those indices,
// so intersecting constraints is a word-wise AND.
//
// Concurrency:
//
//   - A Repository is single-write, many-read. Once Register and all
//     AttachRules calls are done it may be shared by any number of grids.
//
// Errors:
//
//   - ErrAlreadyRegistered, ErrNotRegistered, ErrNoGroups, ErrNilGroup
//   - ErrDuplicateUID, ErrInvalidUID, ErrInvalidWeight, ErrNoVariants
//   - ErrUnknownUID, ErrUnknownTag, ErrRulesAlreadySet, ErrGroupRegistered
package pattern
