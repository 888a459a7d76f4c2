package tdecomp

import "github.com/ashford-lakes/hyperwidth/hypergraph"

// VerifyEdgeCoverage checks that every hyperedge of g has some bag
// containing all its vertices. Intended for tests and debug assertions,
// not for the hot path.
func VerifyEdgeCoverage(g *hypergraph.Graph, t *TreeDecomposition) bool {
	for _, e := range g.Edges() {
		covered := false
		for _, b := range t.Bags {
			if isSubset(e.Vertices, b.Vertices) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// VerifyRunningIntersection checks that for every vertex, the bags
// containing it form a single connected subtree (equivalently: among the
// bags containing v, exactly one is the root or has a parent not containing
// v). The check used here walks the subgraph induced by {bags containing v}
// and tests that it is connected in T. A vertex that occurs in no bag also
// fails the check.
func VerifyRunningIntersection(g *hypergraph.Graph, t *TreeDecomposition) bool {
	for v := hypergraph.VertexID(0); int(v) < g.NumVertices(); v++ {
		containing := map[int]bool{}
		for i, b := range t.Bags {
			for _, x := range b.Vertices {
				if x == v {
					containing[i] = true
					break
				}
			}
		}
		if len(containing) == 0 {
			return false
		}
		if !connectedSubset(t, containing) {
			return false
		}
	}
	return true
}

// connectedSubset reports whether the bags in idxs form a connected
// subtree of t (treating t.Bags/Parent/Children as the tree edges).
func connectedSubset(t *TreeDecomposition, idxs map[int]bool) bool {
	var start int
	for i := range idxs {
		start = i
		break
	}
	visited := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b := t.Bags[cur]
		if b.Parent != -1 && idxs[b.Parent] && !visited[b.Parent] {
			visited[b.Parent] = true
			stack = append(stack, b.Parent)
		}
		for _, c := range b.Children {
			if idxs[c] && !visited[c] {
				visited[c] = true
				stack = append(stack, c)
			}
		}
	}
	return len(visited) == len(idxs)
}
