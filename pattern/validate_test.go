package pattern_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewfc/pattern"
)

// TestValidate_Symmetric checks a hand-written symmetric rule set.
func TestValidate_Symmetric(t *testing.T) {
	repo := pattern.NewRepository()
	require.NoError(t, repo.Register([]*pattern.Group{mustGroup(t, 1, 1), mustGroup(t, 2, 1)}))
	require.NoError(t, repo.AttachRules(1, pattern.RuleSpec{
		pattern.Right: {pattern.UIDRef(2)},
		pattern.Up:    {pattern.UIDRef(1)},
		pattern.Down:  {pattern.UIDRef(1)},
	}))
	require.NoError(t, repo.AttachRules(2, pattern.RuleSpec{
		pattern.Left: {pattern.UIDRef(1)},
	}))

	report := repo.Validate()
	assert.True(t, report.OK())
	assert.Equal(t, pattern.ValidationSuccess, report.Result())
	assert.Equal(t, "validation result: success", report.String())
}

// TestValidate_ReportsEveryViolation builds two independent asymmetries
// and expects both, not just the first.
func TestValidate_ReportsEveryViolation(t *testing.T) {
	repo := pattern.NewRepository()
	require.NoError(t, repo.Register([]*pattern.Group{mustGroup(t, 1, 1), mustGroup(t, 2, 1)}))
	require.NoError(t, repo.AttachRules(1, pattern.RuleSpec{pattern.Right: {pattern.UIDRef(2)}}))
	require.NoError(t, repo.AttachRules(2, pattern.RuleSpec{pattern.Up: {pattern.UIDRef(1)}}))

	report := repo.Validate()
	require.Equal(t, pattern.ValidationFail, report.Result())
	assert.Equal(t, []pattern.Violation{
		{PatternUID: 1, NeighborUID: 2, Direction: pattern.Right},
		{PatternUID: 2, NeighborUID: 1, Direction: pattern.Up},
	}, report.Violations)
	assert.Contains(t, report.String(), "errors 2:")
}

// TestValidate_RandomRuleSets generates random, mostly asymmetric rule sets
// and compares Validate against a brute-force oracle over the allowed sets.
func TestValidate_RandomRuleSets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(6)
		groups := make([]*pattern.Group, n)
		for i := range groups {
			groups[i] = mustGroup(t, i*10, 1)
		}
		repo := pattern.NewRepository()
		require.NoError(t, repo.Register(groups))

		// allowed[p][d][q] mirrors what we attach.
		allowed := make([][4][]bool, n)
		for p := 0; p < n; p++ {
			spec := pattern.RuleSpec{}
			for _, d := range pattern.Directions {
				allowed[p][d] = make([]bool, n)
				for q := 0; q < n; q++ {
					if rng.Intn(3) == 0 {
						allowed[p][d][q] = true
						spec[d] = append(spec[d], pattern.UIDRef(q*10))
					}
				}
			}
			require.NoError(t, repo.AttachRules(p*10, spec))
		}

		var want []pattern.Violation
		for p := 0; p < n; p++ {
			for _, d := range pattern.Directions {
				for q := 0; q < n; q++ {
					if allowed[p][d][q] && !allowed[q][d.Reverse()][p] {
						want = append(want, pattern.Violation{PatternUID: p * 10, NeighborUID: q * 10, Direction: d})
					}
				}
			}
		}

		report := repo.Validate()
		assert.Equal(t, want, report.Violations, "round %d", round)
		assert.Equal(t, len(want) == 0, report.OK())
	}
}

// TestValidate_MissingRulesOnNeighbor treats a group without rules as
// allowing nothing.
func TestValidate_MissingRulesOnNeighbor(t *testing.T) {
	repo := pattern.NewRepository()
	require.NoError(t, repo.Register([]*pattern.Group{mustGroup(t, 1, 1), mustGroup(t, 2, 1)}))
	require.NoError(t, repo.AttachRules(1, pattern.RuleSpec{pattern.Down: {pattern.Wildcard()}}))

	report := repo.Validate()
	require.Len(t, report.Violations, 2)
	assert.Equal(t, 1, report.Violations[0].NeighborUID)
	assert.Equal(t, 2, report.Violations[1].NeighborUID)
}
