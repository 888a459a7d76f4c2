// Package reduce implements the preprocessing stage that strips simplicial
// and true-twin vertices from a graph before the fill engine ever sees it:
// these vertices can never need a fill edge, so eliminating them up front
// shrinks the graph the expensive engine has to reason about, and their
// removal is replayed onto the final tree decomposition as cheap leaf bags.
//
// Grounded on the general "simplicial vertex" reduction used throughout
// treewidth literature; expressed here as a standalone, black-box stage
// rather than a flag on the engine itself.
package reduce

import (
	"sort"

	"github.com/ashford-lakes/hyperwidth/hypergraph"
)

type vid = hypergraph.VertexID

// replayStep records one vertex removed during preprocessing: its original
// id and the original ids of its neighbors at the moment it was removed.
// Neighbors, not the closed neighborhood, because the anchor bag search
// (Replay) only needs to find a bag covering the neighbors — v itself was
// never part of any bag in the reduced decomposition.
type replayStep struct {
	vertex    vid
	neighbors []vid
}

// PreprocessedGraph holds a reduced graph (fewer, renumbered vertices) plus
// the replay stack needed to reconstruct bags for the vertices that were
// removed. The core treats it as a black box: ReducedGraph for the fill
// engine to run against, Replay to reattach what was stripped out.
type PreprocessedGraph struct {
	reduced *hypergraph.Graph
	idMap   []vid // local vertex id -> original vertex id
	replay  []replayStep
}

// Preprocess reduces g to a fixpoint: repeatedly removes any simplicial
// vertex (degree ≤ 1, or whose neighbors already form a clique) or true-twin
// vertex (shares its closed neighborhood with an adjacent vertex), until no
// more such vertices remain. If nothing is removable, the replay stack is
// empty and the reduced graph has the same vertices and adjacency as g,
// rebuilt from pairwise edges.
func Preprocess(g *hypergraph.Graph) *PreprocessedGraph {
	n := g.NumVertices()
	live := make([]bool, n)
	neigh := make([][]vid, n)
	for v := 0; v < n; v++ {
		live[v] = true
		neigh[v] = append([]vid{}, g.Neighbors(vid(v))...)
	}

	var replay []replayStep
	for {
		progressed := false
		for v := 0; v < n; v++ {
			if !live[v] {
				continue
			}
			if !removable(vid(v), neigh, live) {
				continue
			}
			nb := append([]vid{}, neigh[v]...)
			replay = append(replay, replayStep{vertex: vid(v), neighbors: nb})
			for _, w := range nb {
				neigh[w] = removeVertex(neigh[w], vid(v))
			}
			neigh[v] = nil
			live[v] = false
			progressed = true
		}
		if !progressed {
			break
		}
	}

	return &PreprocessedGraph{
		reduced: buildReduced(live, neigh),
		idMap:   liveOriginalIDs(live),
		replay:  replay,
	}
}

// removable reports whether v is simplicial (its open neighborhood is
// empty, a single vertex, or already a clique) or a true twin of one of its
// live neighbors (identical closed neighborhoods).
func removable(v vid, neigh [][]vid, live []bool) bool {
	nb := neigh[v]
	if len(nb) <= 1 {
		return true
	}
	if isClique(nb, neigh) {
		return true
	}
	closedV := closedNeighborhood(v, nb)
	for _, w := range nb {
		if !live[w] {
			continue
		}
		if sliceEqual(closedV, closedNeighborhood(w, neigh[w])) {
			return true
		}
	}
	return false
}

func isClique(nb []vid, neigh [][]vid) bool {
	for i, x := range nb {
		for _, y := range nb[i+1:] {
			if !contains(neigh[x], y) {
				return false
			}
		}
	}
	return true
}

func closedNeighborhood(v vid, open []vid) []vid {
	out := append([]vid{}, open...)
	out = append(out, v)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func contains(s []vid, x vid) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s[mid] == x:
			return true
		case s[mid] < x:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

func sliceEqual(a, b []vid) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func removeVertex(s []vid, x vid) []vid {
	out := make([]vid, 0, len(s))
	for _, v := range s {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

func liveOriginalIDs(live []bool) []vid {
	var ids []vid
	for v, alive := range live {
		if alive {
			ids = append(ids, vid(v))
		}
	}
	return ids
}

func buildReduced(live []bool, neigh [][]vid) *hypergraph.Graph {
	newIndex := make(map[vid]vid, len(live))
	var next vid
	for v, alive := range live {
		if alive {
			newIndex[vid(v)] = next
			next++
		}
	}
	b := hypergraph.NewBuilder(int(next))
	for v, alive := range live {
		if !alive {
			continue
		}
		for _, w := range neigh[v] {
			if w <= vid(v) {
				continue // each undirected edge added once, from the lower id
			}
			b.AddEdge(newIndex[vid(v)], newIndex[w])
		}
	}
	return b.Build()
}

// ReducedGraph returns the preprocessed working graph, renumbered densely
// from 0. Satisfies fillorder.ReducedView structurally.
func (pg *PreprocessedGraph) ReducedGraph() *hypergraph.Graph { return pg.reduced }

// Translate maps a sequence of local (reduced-graph) vertex ids back to
// their original ids, in place semantics aside (returns a new slice).
func (pg *PreprocessedGraph) Translate(local []vid) []vid {
	out := make([]vid, len(local))
	for i, l := range local {
		out[i] = pg.idMap[l]
	}
	return out
}

// Removed reports whether preprocessing stripped anything at all — callers
// can skip Replay entirely when it returns false.
func (pg *PreprocessedGraph) Removed() bool { return len(pg.replay) > 0 }

// Identity wraps g as a PreprocessedGraph that reduces nothing: ReducedGraph
// returns g itself, Translate is the identity map, and Replay is a no-op.
// Lets a caller that wants to skip the reduction rules still drive the same
// reduce/translate/replay pipeline as a preprocessed run, uniformly.
func Identity(g *hypergraph.Graph) *PreprocessedGraph {
	n := g.NumVertices()
	idMap := make([]vid, n)
	for v := range idMap {
		idMap[v] = vid(v)
	}
	return &PreprocessedGraph{reduced: g, idMap: idMap}
}
