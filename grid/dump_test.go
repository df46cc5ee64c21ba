package grid_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/pattern"
)

func TestDumpLoad_RoundTrip(t *testing.T) {
	repo := openRepo(t, 4)
	g, err := grid.New(3, 2, repo)
	require.NoError(t, err)
	require.NoError(t, g.Place(grid.Point{X: 0, Y: 0}, mustLookup(t, repo, 4)))
	require.NoError(t, g.Place(grid.Point{X: 2, Y: 0}, mustLookup(t, repo, 1)))
	require.NoError(t, g.Place(grid.Point{X: 1, Y: 1}, mustLookup(t, repo, 3)))

	path := filepath.Join(t.TempDir(), "grid.dat")
	require.NoError(t, g.Dump(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "4,-1,1\n-1,3,-1\n", string(raw))

	back, err := grid.Load(path, repo)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Width())
	assert.Equal(t, 2, back.Height())
	assert.Equal(t, g.UIDs(), back.UIDs())
	for i := 0; i < 6; i++ {
		p := g.Coordinate(i)
		assert.Same(t, g.OccupantAt(p), back.OccupantAt(p))
	}
	assert.Equal(t, 3, back.PlacedCount())
	// Open rules: unplaced cells get the full candidate count back.
	assert.Equal(t, 4, back.EntropyAt(grid.Point{X: 1, Y: 0}))
}

func TestDumpLoad_WideRow(t *testing.T) {
	// 20000 cells of a three-digit uid: one line well past 64 KiB.
	repo := newRepo(t, []int{1000}, map[int]pattern.RuleSpec{1000: {
		pattern.Left:  {pattern.Wildcard()},
		pattern.Right: {pattern.Wildcard()},
	}})
	g, err := grid.New(20000, 1, repo)
	require.NoError(t, err)
	tile := mustLookup(t, repo, 1000)
	for x := 0; x < g.Width(); x++ {
		require.NoError(t, g.Place(grid.Point{X: x, Y: 0}, tile))
	}

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Greater(t, n, int64(64*1024))

	back, err := grid.Read(&buf, repo)
	require.NoError(t, err)
	assert.Equal(t, 20000, back.Width())
	assert.True(t, back.IsCollapsed())
	assert.Equal(t, g.UIDs(), back.UIDs())
}

func TestRead_RecomputesEntropy(t *testing.T) {
	repo := newRepo(t, []int{1, 2}, map[int]pattern.RuleSpec{
		1: {pattern.Right: {pattern.UIDRef(2)}},
	})
	g, err := grid.Read(strings.NewReader("1,-1\n"), repo)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EntropyAt(grid.Point{X: 1, Y: 0}))
	assert.False(t, g.IsCollapsed())
}

func TestRead_TolerantWhitespace(t *testing.T) {
	repo := openRepo(t, 2)
	g, err := grid.Read(strings.NewReader(" 1, 2\n2 ,-1\n\n\n"), repo)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {2, -1}}, g.UIDs())
}

func TestRead_Errors(t *testing.T) {
	repo := openRepo(t, 2)
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyBlank", "\n\n", grid.ErrEmptyGrid},
		{"Ragged", "1,2\n1\n", grid.ErrMalformedDump},
		{"InnerBlank", "1,2\n\n1,2\n", grid.ErrMalformedDump},
		{"NotANumber", "1,x\n", grid.ErrMalformedDump},
		{"BadNegative", "1,-5\n", grid.ErrMalformedDump},
		{"UnknownUID", "1,2\n2,9\n", pattern.ErrUnknownUID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Read(strings.NewReader(tc.input), repo)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := grid.Read(strings.NewReader("1\n"), nil)
	require.ErrorIs(t, err, grid.ErrNotRegistered)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := grid.Load(filepath.Join(t.TempDir(), "nope.dat"), openRepo(t, 1))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteTo_CountsBytes(t *testing.T) {
	repo := openRepo(t, 1)
	g, err := grid.New(2, 1, repo)
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "-1,-1\n", buf.String())
}
