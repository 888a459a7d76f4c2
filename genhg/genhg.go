// Package genhg builds small, deterministic hypergraph fixtures for tests:
// deterministic vertex ids and stable edge emission order, trimmed to
// exactly the fixtures the end-to-end scenarios need.
package genhg

import "github.com/ashford-lakes/hyperwidth/hypergraph"

// Complete returns K_n: every pair of the n vertices joined by an edge.
// Complete(0) is the empty graph. Panics if n is negative or any AddEdge
// call fails — these are fixture builders, not production inputs, and a
// malformed fixture is a programmer error.
func Complete(n int) *hypergraph.Graph {
	b := hypergraph.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			must(b.AddEdge(hypergraph.VertexID(i), hypergraph.VertexID(j)))
		}
	}
	return b.Build()
}

// Path returns P_n: vertices 0..n-1 joined in a line, (i, i+1) for
// i = 0..n-2.
func Path(n int) *hypergraph.Graph {
	b := hypergraph.NewBuilder(n)
	for i := 0; i < n-1; i++ {
		must(b.AddEdge(hypergraph.VertexID(i), hypergraph.VertexID(i+1)))
	}
	return b.Build()
}

// Cycle returns C_n: a Path(n) closed by an extra edge (n-1, 0).
func Cycle(n int) *hypergraph.Graph {
	b := hypergraph.NewBuilder(n)
	for i := 0; i < n; i++ {
		must(b.AddEdge(hypergraph.VertexID(i), hypergraph.VertexID((i+1)%n)))
	}
	return b.Build()
}

// PathWithIsolatedVertex returns Path(n) plus one extra vertex with no
// incident edges, appended at id n.
func PathWithIsolatedVertex(n int) *hypergraph.Graph {
	b := hypergraph.NewBuilder(n + 1)
	for i := 0; i < n-1; i++ {
		must(b.AddEdge(hypergraph.VertexID(i), hypergraph.VertexID(i+1)))
	}
	return b.Build()
}

// HyperedgeTriangleWithTail returns a graph on 4 vertices with one 3-uniform
// hyperedge {0,1,2} and one ordinary edge (2,3) — the smallest fixture that
// forces a bag wider than any pairwise edge alone would require.
func HyperedgeTriangleWithTail() *hypergraph.Graph {
	b := hypergraph.NewBuilder(4)
	must(b.AddEdge(0, 1, 2))
	must(b.AddEdge(2, 3))
	return b.Build()
}

// Empty returns the 0-vertex, 0-edge graph.
func Empty() *hypergraph.Graph {
	return hypergraph.NewBuilder(0).Build()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
