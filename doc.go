// Package hyperwidth computes width-minimizing tree decompositions of
// multi-hypergraphs.
//
// 🚀 What is hyperwidth?
//
//	A small, zero-dependency (besides its test stack) library that turns a
//	hypergraph into a tree of bags satisfying edge coverage and running
//	intersection, using vertex-elimination orderings rather than exact
//	treewidth search:
//
//	  • Graph model: dense-integer vertex ids, variable-arity hyperedges
//	  • Preprocessing: simplicial-vertex and true-twin removal
//	  • Ordering heuristics: min-fill, min-degree, max-cardinality-search
//	  • Iterative minimization: repeat, keep the narrowest, with cancellation
//	  • Adaptive driver: race the heuristics, commit the remaining budget
//	    to whichever looks best
//
// Under the hood, everything is organized under subpackages:
//
//	hypergraph/ — the Graph type: vertices, hyperedges, adjacency, induced-edge queries
//	reduce/     — preprocessing (simplicial/twin removal) and replay
//	fillorder/  — the ordering algorithms (min-fill, min-degree, max-cardinality, static)
//	bucket/     — bucket-elimination: ordering → tree decomposition
//	tdecomp/    — the TreeDecomposition result type, compression, verification
//	fitness/    — scoring a decomposition for comparison
//	minimize/   — the iterative width-minimizing loop
//	adaptive/   — the multi-algorithm driver (decision phase + exploitation)
//	tdctx/      — the seeded PRNG + cancellation context every computation takes
//	genhg/      — synthetic hypergraph fixtures for tests
//
// Quick ASCII example:
//
//	3-uniform hyperedge {1,2,3} plus the edge (3,4):
//
//	  1───2
//	   \ /
//	    3───4
//
//	forces a bag containing {1,2,3}; width 2.
//
// See SPEC_FULL.md for the full component design.
package hyperwidth
