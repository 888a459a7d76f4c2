// Package fillorder implements the ordering-algorithm capability set: a
// small Algorithm interface with several concrete variants, the most
// important of which — MinFill — is the incremental min-fill
// vertex-elimination engine this module is built around.
package fillorder

import "github.com/ashford-lakes/hyperwidth/hypergraph"

// Ordering is a permutation of the live vertices of the graph it was
// computed over, in elimination order.
type Ordering []hypergraph.VertexID

// ReducedView is satisfied by any type exposing a reduced working graph —
// structurally, not by import, so that fillorder has no dependency on the
// reduce package even though reduce.PreprocessedGraph is the type callers
// actually pass.
type ReducedView interface {
	ReducedGraph() *hypergraph.Graph
}

// Env is the minimal surface the engine needs from its caller: a single
// integer draw in [0, n) for tie-breaking, consulted at most once per
// elimination step, and a cooperative cancellation poll consulted once per
// step boundary. tdctx.Context satisfies this interface directly, so
// fillorder takes the interface rather than importing tdctx.
type Env interface {
	Intn(n int) int
	Cancelled() bool
}

// Algorithm is the ordering-algorithm capability set: compute an ordering
// either from a plain graph or from an already-reduced working graph, and
// clone an independent copy of the algorithm's own configuration.
type Algorithm interface {
	// Compute returns an elimination ordering for g. If env reports
	// Cancelled mid-computation, returns the partial ordering completed
	// so far.
	Compute(env Env, g *hypergraph.Graph) Ordering

	// ComputeReduced returns an elimination ordering for the reduced
	// working graph exposed by view.
	ComputeReduced(env Env, view ReducedView) Ordering

	// Clone returns an independent copy of this algorithm, safe to run
	// concurrently with the original on a disjoint Context.
	Clone() Algorithm

	// Name identifies the algorithm.
	Name() string
}

// Preprocessing is implemented by algorithms that want their input graph
// reduced (simplicial and true-twin vertices stripped) before they run.
// Callers that build a candidate decomposition from an Algorithm check for
// this interface via a type assertion; an Algorithm that doesn't implement
// it runs against the graph exactly as given, unreduced.
type Preprocessing interface {
	UsesPreprocessing() bool
}
