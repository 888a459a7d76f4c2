package fillorder

import "github.com/ashford-lakes/hyperwidth/hypergraph"

// MinFillPlus is MinFill run with preprocessing requested first: the CLI's
// min-fill+ default. The reduction itself happens in the caller that builds
// a candidate decomposition (only it holds the reduce package and the
// replay step needed to reattach stripped vertices as bags); MinFillPlus
// marks its preference via UsesPreprocessing and otherwise delegates
// straight to MinFill, since by the time Compute/ComputeReduced run, the
// graph or view it's handed is already whatever the caller decided to pass.
type MinFillPlus struct{}

// Compute implements Algorithm.
func (MinFillPlus) Compute(env Env, g *hypergraph.Graph) Ordering {
	return MinFill{}.Compute(env, g)
}

// ComputeReduced implements Algorithm.
func (MinFillPlus) ComputeReduced(env Env, view ReducedView) Ordering {
	return MinFill{}.ComputeReduced(env, view)
}

// Clone implements Algorithm.
func (MinFillPlus) Clone() Algorithm { return MinFillPlus{} }

// Name implements Algorithm.
func (MinFillPlus) Name() string { return "min-fill+" }

// UsesPreprocessing implements Preprocessing: always true for MinFillPlus.
func (MinFillPlus) UsesPreprocessing() bool { return true }
