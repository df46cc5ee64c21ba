package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewfc/internal/cli"
	"github.com/katalvlaran/tilewfc/internal/config"
	"github.com/katalvlaran/tilewfc/loader"
	"github.com/katalvlaran/tilewfc/wfc"
)

var coast = filepath.Join("..", "..", "loader", "testdata", "coast.yaml")

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TILEWFC_PATTERNS", "")
	t.Setenv("TILEWFC_SEED", "")
	t.Setenv("TILEWFC_LOG_LEVEL", "")

	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerate_ShowAndStats(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "grid.txt")

	// The greedy judge always takes the heaviest candidate: sea.
	out, _, err := run(t, "generate", "-p", coast, "--judge", "greedy",
		"--width", "4", "--height", "3", "-o", dump, "--log-level", "error")
	require.NoError(t, err)
	want := strings.Repeat("01 | 01 | 01 | 01\n", 3)
	assert.Equal(t, want, out)

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("1,1,1,1\n", 3), string(data))

	out, _, err = run(t, "show", dump, "-p", coast, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, want, out)

	out, _, err = run(t, "stats", dump, "-p", coast, "--tag", "water", "--tag", "land", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"uid", "name", "cells", "regions", "largest"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "sea", "12", "1", "12"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"tag", "water", "12", "1", "12"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"tag", "land", "0", "0", "0"}, strings.Fields(lines[3]))
}

func TestGenerate_Deterministic(t *testing.T) {
	args := []string{"generate", "-p", coast, "--width", "8", "--height", "6", "--seed", "11", "--log-level", "error"}
	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 6)
}

func TestGenerate_Failure(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "closed.yaml")
	require.NoError(t, os.WriteFile(doc, []byte(`
patterns:
  - {id: 1, name: lone, weight: 1, variants: [{image_path: lone.png, weight: 1}]}
`), 0o644))

	_, errOut, err := run(t, "generate", "-p", doc, "--width", "2", "--height", "1", "--attempts", "3")
	require.ErrorIs(t, err, cli.ErrNotCollapsed)
	require.ErrorIs(t, err, wfc.ErrZeroEntropy)
	assert.Contains(t, errOut, "generation failed")
	assert.Contains(t, errOut, "run_id=")
	assert.Contains(t, errOut, "None | 01")
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "-p", coast, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "3 groups")
	assert.Contains(t, out, "validation result: success")

	oneway := filepath.Join("..", "..", "loader", "testdata", "oneway.yaml")
	out, _, err = run(t, "validate", "-p", oneway, "--log-level", "error")
	require.ErrorIs(t, err, loader.ErrInconsistentRules)
	assert.Contains(t, out, "errors 1:")
	assert.Contains(t, out, "group 1 allows 2 on RIGHT, but 2 does not allow 1 on LEFT")

	_, _, err = run(t, "generate", "-p", oneway, "--strict", "--log-level", "error")
	require.ErrorIs(t, err, loader.ErrInconsistentRules)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	prom := filepath.Join(dir, "metrics.prom")

	out, errOut, err := run(t, "batch", "-p", coast, "-n", "4", "--concurrency", "2",
		"--width", "5", "--height", "5", "--seed", "3",
		"--dir", dir, "--metrics", prom, "--log-format", "json")
	require.NoError(t, err)
	// Sand is allowed next to everything, so no run can fail.
	assert.Equal(t, "collapsed 4/4\n", out)
	assert.Contains(t, errOut, `"msg":"batch done"`)

	for _, name := range []string{"grid_000.txt", "grid_001.txt", "grid_002.txt", "grid_003.txt"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	m, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(m), `tilewfc_runs_total{result="collapsed"} 4`)
	assert.Contains(t, string(m), "tilewfc_cells_placed_total 100")
}

func TestConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"patterns: "+coast+"\nwidth: 3\nheight: 2\njudge: greedy\nlog:\n  level: error\n"), 0o644))

	out, _, err := run(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "01 | 01 | 01\n01 | 01 | 01\n", out)

	// A flag beats the file.
	out, _, err = run(t, "generate", "--config", cfgPath, "--width", "1")
	require.NoError(t, err)
	assert.Equal(t, "01\n01\n", out)

	_, _, err = run(t, "generate", "--config", cfgPath, "--width", "0")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "generate")
	require.ErrorIs(t, err, config.ErrInvalid, "patterns are required")
}
