package fillorder

import "github.com/ashford-lakes/hyperwidth/hypergraph"

// MaxCardinality computes an ordering via maximum cardinality search run in
// reverse: repeatedly pick an unnumbered vertex with the most already-numbered
// neighbors (ties broken uniformly at random), number it, then reverse the
// resulting sequence so that elimination proceeds in the order vertices were
// last reached. Unlike MinFill and MinDegree it never mutates the graph at
// all — a single forward pass over static adjacency.
type MaxCardinality struct{}

func (MaxCardinality) Compute(env Env, g *hypergraph.Graph) Ordering {
	n := g.NumVertices()
	if n == 0 {
		return Ordering{}
	}
	weight := make([]int, n)
	numbered := make([]bool, n)
	sequence := make(Ordering, 0, n)

	for step := 0; step < n; step++ {
		if env.Cancelled() {
			break
		}
		maxW := -1
		var pool []vid
		for v := 0; v < n; v++ {
			if numbered[v] {
				continue
			}
			switch {
			case weight[v] > maxW:
				maxW = weight[v]
				pool = []vid{vid(v)}
			case weight[v] == maxW:
				pool = append(pool, vid(v))
			}
		}
		pick := pool[0]
		if len(pool) > 1 {
			pick = pool[env.Intn(len(pool))]
		}
		numbered[pick] = true
		sequence = append(sequence, pick)
		for _, u := range g.Neighbors(pick) {
			if !numbered[u] {
				weight[u]++
			}
		}
	}

	// Reverse in place to get the elimination ordering.
	out := make(Ordering, len(sequence))
	for i, v := range sequence {
		out[len(sequence)-1-i] = v
	}
	return out
}

func (m MaxCardinality) ComputeReduced(env Env, view ReducedView) Ordering {
	return m.Compute(env, view.ReducedGraph())
}

func (m MaxCardinality) Clone() Algorithm { return MaxCardinality{} }

func (MaxCardinality) Name() string { return "max-cardinality" }
