package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/judge"
	"github.com/katalvlaran/tilewfc/metrics"
	"github.com/katalvlaran/tilewfc/pattern"
	"github.com/katalvlaran/tilewfc/wfc"
)

func repo(t *testing.T, spec pattern.RuleSpec) *pattern.Repository {
	t.Helper()
	v, err := pattern.NewPattern("tile.png", 1)
	require.NoError(t, err)
	g, err := pattern.NewGroup(1, "only", 1, nil, []pattern.Pattern{v})
	require.NoError(t, err)
	r := pattern.NewRepository()
	require.NoError(t, r.Register([]*pattern.Group{g}))
	require.NoError(t, r.AttachRules(1, spec))
	return r
}

func run(t *testing.T, c *metrics.Collector, r *pattern.Repository, w, h int) bool {
	t.Helper()
	g, err := grid.New(w, h, r)
	require.NoError(t, err)
	e, err := wfc.New(g, judge.NewGreedy(), wfc.WithObserver(c))
	require.NoError(t, err)
	return e.Run()
}

func TestCollector_CollapsedRun(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := metrics.NewCollector(reg)

	open := repo(t, pattern.RuleSpec{
		pattern.Up: {pattern.Wildcard()}, pattern.Down: {pattern.Wildcard()},
		pattern.Left: {pattern.Wildcard()}, pattern.Right: {pattern.Wildcard()},
	})
	require.True(t, run(t, c, open, 3, 2))

	count, err := testutil.GatherAndCount(reg, "tilewfc_steps_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the success series exists")

	lint, err := testutil.GatherAndLint(reg)
	require.NoError(t, err)
	assert.Empty(t, lint)
}

func TestCollector_FailedRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	closed := repo(t, pattern.RuleSpec{})
	require.False(t, run(t, c, closed, 2, 1))
	require.False(t, run(t, c, closed, 2, 1))

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				key += "/" + l.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				values[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	assert.Equal(t, 2.0, values["tilewfc_steps_total/failed"])
	assert.Equal(t, 2.0, values["tilewfc_cells_placed_total"])
	assert.Equal(t, 2.0, values["tilewfc_contradictions_total"])
	assert.Equal(t, 2.0, values["tilewfc_runs_total/failed"])
	assert.Equal(t, 2.0, values["tilewfc_failures_total/zero_entropy"])
	assert.Equal(t, 2.0, values["tilewfc_run_duration_seconds/failed"])
	assert.Equal(t, 2.0, values["tilewfc_candidates"])
}

func TestCollector_StepCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.StepDone(wfc.StepResult{Outcome: wfc.OutcomeCollapsed})
	c.StepDone(wfc.StepResult{Outcome: wfc.OutcomeCollapsed})
	c.RunDone(wfc.RunSummary{Collapsed: true})

	n, err := testutil.GatherAndCount(reg, "tilewfc_steps_total", "tilewfc_runs_total", "tilewfc_cells_placed_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
