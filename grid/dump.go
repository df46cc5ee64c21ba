package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilewfc/pattern"
)

// WriteTo writes the uid matrix, one row per line, uids separated by
// commas and Unplaced for empty cells. It implements io.WriterTo.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, row := range g.UIDs() {
		parts := make([]string, len(row))
		for i, uid := range row {
			parts[i] = strconv.Itoa(uid)
		}
		k, err := bw.WriteString(strings.Join(parts, ",") + "\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Dump writes the grid to path in the WriteTo format, replacing any
// existing file.
func (g *Grid) Dump(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Dump(%s): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Dump(%s): %w", path, cerr)
		}
	}()
	if _, err = g.WriteTo(f); err != nil {
		return fmt.Errorf("Dump(%s): %w", path, err)
	}
	return nil
}

// Read parses a dump produced by WriteTo and resolves every uid through
// repo, which must hold the pattern set that produced the dump. Width and
// height come from the column and line counts; trailing blank lines are
// ignored. Entropy history is not stored, so unplaced cells get the
// candidate count implied by their placed neighbors.
//
// Errors:
//   - ErrNotRegistered for a nil or empty repo.
//   - ErrEmptyGrid for an empty input.
//   - ErrMalformedDump for ragged rows, blank inner lines, non-integers or
//     negative values other than Unplaced.
//   - pattern.ErrUnknownUID for a uid repo cannot resolve; the whole load
//     fails, nothing is substituted.
func Read(r io.Reader, repo *pattern.Repository) (*Grid, error) {
	if repo == nil || !repo.Registered() {
		return nil, fmt.Errorf("Read: %w", ErrNotRegistered)
	}

	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt) // a row is one line, however wide
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			rows = append(rows, nil) // validated below: only trailing blanks allowed
			continue
		}
		fields := strings.Split(text, ",")
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("Read: line %d column %d: %w", line, i, errors.Join(ErrMalformedDump, err))
			}
			if v < Unplaced {
				return nil, fmt.Errorf("Read: line %d column %d: value %d: %w", line, i, v, ErrMalformedDump)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == nil {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Read: %w", ErrEmptyGrid)
	}

	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("Read: line %d has %d columns, want %d: %w", y+1, len(row), width, ErrMalformedDump)
		}
	}

	g, err := New(width, len(rows), repo)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for y, row := range rows {
		for x, uid := range row {
			if uid == Unplaced {
				continue
			}
			grp, ok := repo.LookupByUID(uid)
			if !ok {
				return nil, fmt.Errorf("Read: line %d column %d: uid %d: %w", y+1, x, uid, pattern.ErrUnknownUID)
			}
			if err := g.Place(Point{X: x, Y: y}, grp); err != nil {
				return nil, fmt.Errorf("Read: %w", err)
			}
		}
	}
	for i, c := range g.cells {
		if c == nil {
			g.entropy[i] = g.candidateMask(g.Coordinate(i)).Count()
		}
	}
	return g, nil
}

// Load opens path and parses it with Read.
func Load(path string, repo *pattern.Repository) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, repo)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	return g, nil
}
