package fillorder

import (
	"fmt"

	"github.com/ashford-lakes/hyperwidth/hypergraph"
)

// ErrNotAPermutation is returned when a Static ordering does not visit every
// live vertex of the graph it is asked to order exactly once.
var ErrNotAPermutation = fmt.Errorf("fillorder: static ordering is not a permutation of the graph's vertices")

// Static wraps a precomputed ordering, letting callers plug in an
// externally supplied or previously computed elimination sequence wherever
// an Algorithm is expected. It never consults env.Intn — a fixed ordering
// has nothing left to decide — but still polls env.Cancelled before
// returning so the calling convention matches every other Algorithm.
type Static struct {
	Order Ordering
}

// NewStatic validates that order is a permutation of [0, n) before wrapping
// it, so a malformed ordering fails at construction time rather than deep
// inside a minimize/adaptive run.
func NewStatic(order Ordering, n int) (Static, error) {
	if len(order) != n {
		return Static{}, ErrNotAPermutation
	}
	seen := make([]bool, n)
	for _, v := range order {
		if int(v) < 0 || int(v) >= n || seen[v] {
			return Static{}, ErrNotAPermutation
		}
		seen[v] = true
	}
	cp := make(Ordering, n)
	copy(cp, order)
	return Static{Order: cp}, nil
}

func (s Static) Compute(env Env, g *hypergraph.Graph) Ordering {
	if env.Cancelled() {
		return Ordering{}
	}
	if len(s.Order) != g.NumVertices() {
		panic(ErrNotAPermutation)
	}
	out := make(Ordering, len(s.Order))
	copy(out, s.Order)
	return out
}

func (s Static) ComputeReduced(env Env, view ReducedView) Ordering {
	return s.Compute(env, view.ReducedGraph())
}

func (s Static) Clone() Algorithm {
	cp := make(Ordering, len(s.Order))
	copy(cp, s.Order)
	return Static{Order: cp}
}

func (Static) Name() string { return "static" }
