package reduce

import (
	"sort"

	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

// Replay reattaches every vertex Preprocess removed, each as a new leaf bag
// {v} ∪ neighbors-at-removal-time, anchored to an existing bag that
// contains all of those neighbors. Processes the replay stack in reverse
// removal order: the most recently removed vertex is reattached first, so
// that if one of its recorded neighbors was itself removed earlier, that
// neighbor's own leaf bag already exists and can serve as (or be covered
// by) an anchor.
//
// Must run before TreeDecomposition.Compress: compression can contract an
// anchor bag into its parent, and this package does not attempt to track
// bags through that contraction (an unresolved interaction the
// specification itself leaves open; this is the implementer's resolution).
func (pg *PreprocessedGraph) Replay(td *tdecomp.TreeDecomposition) *tdecomp.TreeDecomposition {
	if len(pg.replay) == 0 {
		return td
	}
	out := td.Clone()
	for i := len(pg.replay) - 1; i >= 0; i-- {
		step := pg.replay[i]
		anchor := findAnchor(out, step.neighbors)

		leaf := append([]vid{}, step.neighbors...)
		leaf = append(leaf, step.vertex)
		sort.Slice(leaf, func(i, j int) bool { return leaf[i] < leaf[j] })

		leafIdx := len(out.Bags)
		out.Bags = append(out.Bags, tdecomp.Bag{
			ID:       leafIdx,
			Vertices: leaf,
			Parent:   anchor,
		})
		out.Bags[anchor].Children = append(out.Bags[anchor].Children, leafIdx)
	}
	return out
}

// findAnchor returns the index of a bag in td whose vertex set is a superset
// of need, falling back to the root if no such bag exists.
func findAnchor(td *tdecomp.TreeDecomposition, need []vid) int {
	for idx, b := range td.Bags {
		if isSubsetOf(need, b.Vertices) {
			return idx
		}
	}
	return td.Root
}

func isSubsetOf(need, have []vid) bool {
	for _, x := range need {
		found := false
		for _, y := range have {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
