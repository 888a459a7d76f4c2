package minimize

import (
	"github.com/ashford-lakes/hyperwidth/fillorder"
	"github.com/ashford-lakes/hyperwidth/fitness"
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

// Optimize runs alg repeatedly over g, keeping the best decomposition seen
// by opts.FitnessFunc, until iterations/non-improvement limits are hit or
// the environment is cancelled.
//
// Returns (nil, nil) if cancelled before the first candidate finished
// building.
func Optimize(env fillorder.Env, g *hypergraph.Graph, alg fillorder.Algorithm, opts ...Option) (*tdecomp.TreeDecomposition, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return OptimizeFrom(env, g, alg, o, nil, nil, 0)
}

// OptimizeFrom is Optimize's engine, parameterized with a seed candidate and
// its fitness so the adaptive driver's exploitation phase can re-enter the
// loop with phase 1's winner already installed as best, without repeating
// it as the zeroth iteration.
func OptimizeFrom(
	env fillorder.Env,
	g *hypergraph.Graph,
	alg fillorder.Algorithm,
	o Options,
	seedBest *tdecomp.TreeDecomposition,
	seedFit fitness.Fitness,
	startIter int,
) (*tdecomp.TreeDecomposition, error) {
	fn := o.FitnessFunc
	if fn == nil {
		fn = fitness.WidthFitness
	}

	best := seedBest
	bestFit := seedFit
	haveBest := seedBest != nil

	iter := startIter
	sinceImprove := 0
	for (o.Iterations == 0 || iter < o.Iterations) &&
		!env.Cancelled() &&
		(o.NonImprovementLimit < 0 || sinceImprove <= o.NonImprovementLimit) {

		candidate, err := BuildCandidate(env, g, alg, o)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			// Cancelled mid-build: keep whatever best we have.
			break
		}

		fit := fn(g, candidate)
		if !haveBest || bestFit.Less(fit) {
			best = candidate
			bestFit = fit
			haveBest = true
			sinceImprove = 0
			if o.ProgressCallback != nil {
				o.ProgressCallback(g, candidate, fit)
			}
		} else {
			sinceImprove++
		}
		iter++
	}
	return best, nil
}
