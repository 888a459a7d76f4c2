package fillorder

import (
	"fmt"
	"sort"

	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdctx"
)

// MinFill computes an elimination ordering by repeatedly eliminating a
// vertex that currently requires the fewest fill edges (ties broken by a
// uniform random draw among the tied pool), updating only the fill counts
// of vertices within distance two of the eliminated vertex at each step.
//
// Maintains a pool of minimum-fill candidates, a zero-fill fast path, and a
// decompose-into-additional/unaffected/existing update per elimination
// step, over sorted Go slices rather than hash-map probes.
type MinFill struct{}

// statusDirect and statusSecond are the per-step touch bits: a vertex may be
// both a direct neighbor of the eliminated vertex and a second-order one
// reached through another direct neighbor in the same step. statusEliminated
// marks a vertex that has left the live graph.
const (
	statusDirect     = 1 << 0
	statusSecond     = 1 << 1
	statusEliminated = 1 << 2
)

type vstate struct {
	neigh  []vid // N(v): sorted, open (excludes v), while v is live
	fill   int
	status uint8

	additional []vid
	unaffected []vid
	existing   []vid
}

type minFillEngine struct {
	st        []vstate
	liveCount int
	pool      map[vid]struct{}
	minFill   int
}

func newMinFillEngine(g *hypergraph.Graph) *minFillEngine {
	n := g.NumVertices()
	e := &minFillEngine{
		st:        make([]vstate, n),
		liveCount: n,
		pool:      make(map[vid]struct{}),
		minFill:   -1,
	}
	for v := 0; v < n; v++ {
		nb := append([]vid{}, g.Neighbors(vid(v))...)
		sort.Slice(nb, func(i, j int) bool { return nb[i] < nb[j] })
		e.st[v].neigh = nb
	}
	neighOf := func(x vid) []vid { return e.st[x].neigh }
	// The only full O(sum d^2) pass: every other fill update touches just
	// the vertices within distance two of an elimination step.
	for v := 0; v < n; v++ {
		d := len(e.st[v].neigh)
		edges := computeEdgeCount(e.st[v].neigh, neighOf)
		f := d*(d-1)/2 - edges
		e.st[v].fill = f
		e.considerForPool(vid(v), f)
	}
	return e
}

// recomputeFill recomputes w's fill count from scratch — C(|N(w)|,2) minus
// the number of edges already present among N(w) — ignoring every
// incremental bookkeeping field entirely. Only called when DebugAssertions
// is on: it costs O(d^2) per call, which is too expensive to run on every
// step unconditionally.
func (e *minFillEngine) recomputeFill(w vid) int {
	d := len(e.st[w].neigh)
	edges := computeEdgeCount(e.st[w].neigh, func(x vid) []vid { return e.st[x].neigh })
	return d*(d-1)/2 - edges
}

// assertFillConsistent checks w's incrementally maintained fill count
// against a from-scratch recomputation. No-op unless tdctx.DebugAssertions
// is enabled.
func (e *minFillEngine) assertFillConsistent(w vid) {
	if !tdctx.DebugAssertions {
		return
	}
	want := e.recomputeFill(w)
	tdctx.Assert(e.st[w].fill == want, "fillorder",
		fmt.Sprintf("incremental fill(%d)=%d, recomputed from scratch=%d", w, e.st[w].fill, want))
}

func (e *minFillEngine) considerForPool(v vid, f int) {
	if e.minFill == -1 || f < e.minFill {
		e.minFill = f
		for k := range e.pool {
			delete(e.pool, k)
		}
		e.pool[v] = struct{}{}
		return
	}
	if f == e.minFill {
		e.pool[v] = struct{}{}
		return
	}
	delete(e.pool, v)
}

// rebuildPool is called when the pool runs dry without the live graph being
// exhausted: a fresh O(n) scan of live vertices finds the new global
// minimum. The pool is refilled lazily rather than maintained incrementally
// through every fast-path elimination.
func (e *minFillEngine) rebuildPool() {
	e.minFill = -1
	for k := range e.pool {
		delete(e.pool, k)
	}
	for v := range e.st {
		if e.st[v].status&statusEliminated != 0 {
			continue
		}
		e.considerForPool(vid(v), e.st[v].fill)
	}
}

func (e *minFillEngine) selectAndEliminate(env Env) vid {
	if len(e.pool) == 0 {
		e.rebuildPool()
	}
	candidates := make([]vid, 0, len(e.pool))
	for v := range e.pool {
		candidates = append(candidates, v)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	pick := candidates[0]
	if len(candidates) > 1 {
		pick = candidates[env.Intn(len(candidates))]
	}
	delete(e.pool, pick)
	e.eliminate(pick)
	return pick
}

func (e *minFillEngine) eliminate(s vid) {
	selected := append([]vid{}, e.st[s].neigh...) // S = N(s), ascending
	fill := e.st[s].fill
	e.st[s].status |= statusEliminated
	e.st[s].neigh = nil
	e.liveCount--

	if fill == 0 {
		e.eliminateZeroFill(s, selected)
		return
	}
	e.eliminateGeneral(s, selected)
}

// eliminateZeroFill handles the case where S already forms a clique: no new
// edges are introduced, so every touched vertex's fill count only drops by
// the number of its other neighbors that are neither s nor in S (it simply
// loses s as a neighbor, and no new fill pairs appear through s).
func (e *minFillEngine) eliminateZeroFill(s vid, selected []vid) {
	for _, w := range selected {
		withoutS := removeOne(e.st[w].neigh, s)
		delta := sortedDiffSize(withoutS, selected)
		e.st[w].fill -= delta
		e.st[w].neigh = withoutS
		e.assertFillConsistent(w)
	}
}

// eliminateGeneral handles the case where S is not yet a clique: eliminating
// s introduces a fill edge between every non-adjacent pair in S. Only
// vertices within distance two of s (S itself, and S's neighbors) can have
// their fill count change, and decomposeThree identifies exactly which part
// of each touched vertex's neighborhood is new (additional), already present
// (existing) or irrelevant to this step (unaffected). s itself is stripped
// out of every neighborhood before decomposing so it never contaminates any
// of the three buckets.
func (e *minFillEngine) eliminateGeneral(s vid, selected []vid) {
	additional := map[vid][]vid{}
	unaffected := map[vid][]vid{}
	existing := map[vid][]vid{}
	var affected []vid

	touch := func(w vid) {
		if e.st[w].status != 0 {
			return
		}
		have := removeOne(e.st[w].neigh, s)
		a, u, x := decomposeThree(have, selected)
		// A direct neighbor w is in selected but never in its own list, so
		// the split reports it as "additional" to itself; drop it.
		a = removeOne(a, w)
		additional[w], unaffected[w], existing[w] = a, u, x
	}

	for _, w := range selected {
		touch(w)
		e.st[w].status |= statusDirect
		for _, u := range e.st[w].neigh {
			if u == s || e.st[u].status&(statusDirect|statusSecond) != 0 {
				continue
			}
			touch(u)
			affected = append(affected, u)
			e.st[u].status |= statusSecond
		}
	}

	for _, w := range selected {
		add := additional[w]
		var newNeigh []vid
		if len(add) > 0 {
			newNeigh = mergeExcluding(e.st[w].neigh, add, s)
		} else {
			newNeigh = removeOne(e.st[w].neigh, s)
		}
		e.st[w].neigh = newNeigh

		tmp := e.st[w].fill
		switch {
		case len(add) == 0 && tmp == 0:
			// w had no fill and gains no new neighbors through s.
		case len(add) == 0:
			un := unaffected[w]
			if len(un) > 0 {
				tmp -= pairCorrection(existing[w], additional)
				tmp -= len(un)
			} else {
				tmp = 0
			}
		default:
			for _, uv := range unaffected[w] {
				tmp += sortedDiffSize(add, existing[uv])
				tmp--
			}
			tmp -= pairCorrection(existing[w], additional)
		}
		if tmp < 0 {
			tmp = 0
		}
		e.st[w].fill = tmp
		e.st[w].status = 0
		e.considerForPool(w, tmp)
	}

	// Must run after every w in selected has its neigh list updated: the
	// recomputation reads neighbors' current adjacency, which is only
	// settled once the loop above has finished.
	for _, w := range selected {
		e.assertFillConsistent(w)
	}

	inSelected := make(map[vid]bool, len(selected))
	for _, w := range selected {
		inSelected[w] = true
	}
	for _, a := range affected {
		if inSelected[a] {
			// already finalized in the selected loop above
			continue
		}
		tmp := e.st[a].fill
		un := unaffected[a]
		if len(un) > 0 && tmp > 0 {
			tmp -= pairCorrection(existing[a], additional)
		} else {
			tmp = 0
		}
		if tmp < 0 {
			tmp = 0
		}
		e.st[a].fill = tmp
		e.st[a].status = 0
		e.assertFillConsistent(a)
		e.considerForPool(a, tmp)
	}
}

func (e *minFillEngine) run(env Env) Ordering {
	ordering := make(Ordering, 0, len(e.st))
	for e.liveCount > 0 {
		if env.Cancelled() {
			return ordering
		}
		ordering = append(ordering, e.selectAndEliminate(env))
	}
	return ordering
}

// Compute implements Algorithm.
func (MinFill) Compute(env Env, g *hypergraph.Graph) Ordering {
	if g.NumVertices() == 0 {
		return Ordering{}
	}
	return newMinFillEngine(g).run(env)
}

// ComputeReduced implements Algorithm.
func (m MinFill) ComputeReduced(env Env, view ReducedView) Ordering {
	return m.Compute(env, view.ReducedGraph())
}

// Clone implements Algorithm. MinFill carries no mutable configuration, so
// cloning is a no-op copy.
func (m MinFill) Clone() Algorithm { return MinFill{} }

// Name implements Algorithm.
func (MinFill) Name() string { return "min-fill" }
