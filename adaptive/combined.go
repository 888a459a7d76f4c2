package adaptive

import (
	"github.com/ashford-lakes/hyperwidth/fillorder"
	"github.com/ashford-lakes/hyperwidth/fitness"
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/minimize"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

// RunAll runs every algorithm to completion under its own independent
// minimize.Optimize call and keeps the best result across all of them.
// Unlike Run, it never picks a single winner to exploit — every algorithm
// gets the full iteration budget in o, not a share of it. This is the
// non-adaptive "combined" counterpart the original source keeps alongside
// its adaptive driver (its own doc comment contrasts the two: adaptive
// picks one algorithm and commits, combined just runs all of them and
// takes the best).
func RunAll(env fillorder.Env, g *hypergraph.Graph, algorithms []fillorder.Algorithm, o minimize.Options) (*tdecomp.TreeDecomposition, error) {
	fn := o.FitnessFunc
	if fn == nil {
		fn = fitness.WidthFitness
	}

	var best *tdecomp.TreeDecomposition
	var bestFit fitness.Fitness
	haveBest := false

	for _, alg := range algorithms {
		if env.Cancelled() {
			break
		}
		candidate, err := minimize.Optimize(env, g, alg, asOptionFuncs(o)...)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			continue
		}
		fit := fn(g, candidate)
		if !haveBest || bestFit.Less(fit) {
			best = candidate
			bestFit = fit
			haveBest = true
		}
	}
	return best, nil
}

func asOptionFuncs(o minimize.Options) []minimize.Option {
	return []minimize.Option{
		minimize.WithIterations(o.Iterations),
		minimize.WithNonImprovementLimit(o.NonImprovementLimit),
		minimize.WithInducedEdges(o.ComputeInducedEdges),
		minimize.WithCompression(o.CompressionEnabled),
		minimize.WithProgressCallback(o.ProgressCallback),
		minimize.WithFitnessFunc(func() fitness.Func {
			if o.FitnessFunc != nil {
				return o.FitnessFunc
			}
			return fitness.WidthFitness
		}()),
	}
}
