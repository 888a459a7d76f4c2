package fillorder

import (
	"sort"

	"github.com/ashford-lakes/hyperwidth/hypergraph"
)

// MinDegree computes an elimination ordering by always eliminating a vertex
// of minimum current degree, breaking ties with a uniform random draw among
// the tied candidates. Unlike MinFill it never looks at fill-in at all, so
// each step only needs to touch the eliminated vertex's direct neighbors —
// cheaper per step, typically a looser upper bound on width.
//
// This is the simpler, older heuristic that min-fill is usually measured
// against: cheaper to compute per step, but typically a looser bound.
type MinDegree struct{}

func (MinDegree) Compute(env Env, g *hypergraph.Graph) Ordering {
	n := g.NumVertices()
	if n == 0 {
		return Ordering{}
	}
	neigh := make([][]vid, n)
	live := make([]bool, n)
	for v := 0; v < n; v++ {
		nb := append([]vid{}, g.Neighbors(vid(v))...)
		sort.Slice(nb, func(i, j int) bool { return nb[i] < nb[j] })
		neigh[v] = nb
		live[v] = true
	}

	ordering := make(Ordering, 0, n)
	remaining := n
	for remaining > 0 {
		if env.Cancelled() {
			return ordering
		}
		minDeg := -1
		var pool []vid
		for v := 0; v < n; v++ {
			if !live[v] {
				continue
			}
			d := len(neigh[v])
			switch {
			case minDeg == -1 || d < minDeg:
				minDeg = d
				pool = []vid{vid(v)}
			case d == minDeg:
				pool = append(pool, vid(v))
			}
		}
		s := pool[0]
		if len(pool) > 1 {
			s = pool[env.Intn(len(pool))]
		}

		selected := neigh[s]
		for i, w := range selected {
			for _, x := range selected[i+1:] {
				if !sortedContains(neigh[w], x) {
					neigh[w] = insertSorted(neigh[w], x)
					neigh[x] = insertSorted(neigh[x], w)
				}
			}
		}
		for _, w := range selected {
			neigh[w] = removeOne(neigh[w], s)
		}
		live[s] = false
		neigh[s] = nil
		remaining--
		ordering = append(ordering, s)
	}
	return ordering
}

func (m MinDegree) ComputeReduced(env Env, view ReducedView) Ordering {
	return m.Compute(env, view.ReducedGraph())
}

func (m MinDegree) Clone() Algorithm { return MinDegree{} }

func (MinDegree) Name() string { return "min-degree" }

// insertSorted inserts x into the ascending, duplicate-free slice s.
func insertSorted(s []vid, x vid) []vid {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= x })
	if i < len(s) && s[i] == x {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x
	return s
}
