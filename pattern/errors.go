// SPDX-License-Identifier: MIT
// Package: tilewfc/pattern
//
// errors.go — sentinel errors for the pattern package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Implementations attach context with %w (method, uid, direction).
//   • Configuration errors are fatal at load time and never retried.

package pattern

import "errors"

var (
	// ErrAlreadyRegistered is returned by a second Register call.
	ErrAlreadyRegistered = errors.New("pattern: groups already registered")

	// ErrNotRegistered is returned by lookups and rule building before Register.
	ErrNotRegistered = errors.New("pattern: repository has no registered groups")

	// ErrNoGroups indicates an empty registration.
	ErrNoGroups = errors.New("pattern: at least one group is required")

	// ErrNilGroup indicates a nil *Group in a registration list.
	ErrNilGroup = errors.New("pattern: nil group")

	// ErrDuplicateUID indicates two groups share one uid.
	ErrDuplicateUID = errors.New("pattern: duplicate group uid")

	// ErrInvalidUID indicates a negative uid; negative values are reserved
	// for the unplaced sentinel of the grid dump format.
	ErrInvalidUID = errors.New("pattern: uid must be non-negative")

	// ErrInvalidWeight indicates a weight that is not a finite positive number.
	ErrInvalidWeight = errors.New("pattern: weight must be a finite number > 0")

	// ErrNoVariants indicates a group without any Pattern variant.
	ErrNoVariants = errors.New("pattern: group needs at least one variant")

	// ErrUnknownUID indicates a rule or lookup referencing an unregistered uid.
	ErrUnknownUID = errors.New("pattern: unknown group uid")

	// ErrUnknownTag indicates a rule referencing a tag no group carries.
	ErrUnknownTag = errors.New("pattern: unknown tag")

	// ErrRulesAlreadySet indicates a second AttachRules for the same group.
	ErrRulesAlreadySet = errors.New("pattern: rules already attached")

	// ErrGroupRegistered indicates a group that already belongs to a repository.
	ErrGroupRegistered = errors.New("pattern: group belongs to another repository")
)
