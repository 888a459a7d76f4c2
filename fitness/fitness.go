// Package fitness evaluates candidate tree decompositions so the
// iterative minimizer (package minimize) and the adaptive driver (package
// adaptive) can compare them.
package fitness

import (
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

// Fitness is a tuple of scalar criteria, compared lexicographically:
// earlier entries dominate later ones, and a strictly greater tuple wins.
// Extensions (e.g. an average-bag-size tiebreaker) append a criterion
// without touching the comparison logic.
type Fitness []float64

// Less reports whether f is strictly worse than other under lexicographic
// comparison. Tuples of different length are compared position by
// position up to the shorter length; a tuple that runs out first without
// having lost is considered not-less (equal on the compared prefix).
func (f Fitness) Less(other Fitness) bool {
	n := len(f)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if f[i] != other[i] {
			return f[i] < other[i]
		}
	}
	return false
}

// Func scores a candidate decomposition of g.
type Func func(g *hypergraph.Graph, t *tdecomp.TreeDecomposition) Fitness

// WidthFitness is the only built-in criterion: (-width). Since lower width
// is better and comparisons favor the larger tuple, negating width turns
// "smaller is better" into "larger is better".
func WidthFitness(_ *hypergraph.Graph, t *tdecomp.TreeDecomposition) Fitness {
	return Fitness{-float64(t.Width())}
}
