package region

import (
	"slices"

	"github.com/katalvlaran/tilewfc/pattern"
)

// Summarize folds group regions (as returned by Components) into one Stats
// per group, sorted by uid. Names come from repo when it knows the uid.
// Tag regions are ignored.
func Summarize(regions []Region, repo *pattern.Repository) []Stats {
	byUID := map[int]*Stats{}
	for _, r := range regions {
		if r.Tag != "" {
			continue
		}
		s, ok := byUID[r.UID]
		if !ok {
			s = &Stats{UID: r.UID}
			if repo != nil {
				if g, found := repo.LookupByUID(r.UID); found {
					s.Name = g.Name()
				}
			}
			byUID[r.UID] = s
		}
		s.Cells += r.Size()
		s.Regions++
		s.Largest = max(s.Largest, r.Size())
	}

	out := make([]Stats, 0, len(byUID))
	for _, s := range byUID {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Stats) int { return a.UID - b.UID })
	return out
}
