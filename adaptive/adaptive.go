// Package adaptive races several base ordering algorithms against each
// other and exploits whichever looks best: a decision phase of round-robin
// candidate builds, then a selection step, then an exploitation phase that
// hands the remaining iteration budget to the winner.
package adaptive

import (
	"github.com/ashford-lakes/hyperwidth/fillorder"
	"github.com/ashford-lakes/hyperwidth/fitness"
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/minimize"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

// Options configures Run. DecisionRounds is the number of decision-phase
// builds; MinimizeOptions carries the same knobs package minimize exposes
// (iterations covers both phases combined).
type Options struct {
	DecisionRounds  int
	MinimizeOptions minimize.Options
}

// Run executes the adaptive driver over algorithms. Requires at least one
// algorithm.
//
// When MinimizeOptions.Iterations is bounded (> 0), DecisionRounds is
// clamped to min(DecisionRounds, Iterations-1) before the decision phase
// runs, so exploitation always retains at least zero iterations and the
// driver never needs to special-case "no budget left" — it degenerates to
// returning the best decision-phase candidate. Unbounded iterations (0)
// need no clamp.
func Run(env fillorder.Env, g *hypergraph.Graph, algorithms []fillorder.Algorithm, opts Options) (*tdecomp.TreeDecomposition, error) {
	decisionRounds := opts.DecisionRounds
	if opts.MinimizeOptions.Iterations > 0 && decisionRounds > opts.MinimizeOptions.Iterations-1 {
		decisionRounds = opts.MinimizeOptions.Iterations - 1
		if decisionRounds < 0 {
			decisionRounds = 0
		}
	}

	bestPerAlgo := make([]fitness.Fitness, len(algorithms))
	var globalBest *tdecomp.TreeDecomposition
	var globalBestFit fitness.Fitness
	haveGlobalBest := false

	fn := opts.MinimizeOptions.FitnessFunc
	if fn == nil {
		fn = fitness.WidthFitness
	}

	round := 0
	for round < decisionRounds && !env.Cancelled() {
		idx := round % len(algorithms)
		candidate, err := minimize.BuildCandidate(env, g, algorithms[idx], opts.MinimizeOptions)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			break // cancelled mid-build
		}
		fit := fn(g, candidate)
		if bestPerAlgo[idx] == nil || bestPerAlgo[idx].Less(fit) {
			bestPerAlgo[idx] = fit
		}
		if !haveGlobalBest || globalBestFit.Less(fit) {
			globalBest = candidate
			globalBestFit = fit
			haveGlobalBest = true
		}
		round++
	}

	selected := selectWinner(env, algorithms, bestPerAlgo, decisionRounds)

	remaining := 0
	if opts.MinimizeOptions.Iterations > 0 {
		remaining = opts.MinimizeOptions.Iterations - round
		if remaining < 0 {
			remaining = 0
		}
	}
	exploitOpts := opts.MinimizeOptions
	exploitOpts.Iterations = remaining
	if opts.MinimizeOptions.Iterations == 0 {
		exploitOpts.Iterations = 0 // stays unbounded
	}

	return minimize.OptimizeFrom(env, g, selected, exploitOpts, globalBest, globalBestFit, 0)
}

// selectWinner picks the algorithm with the highest best-observed fitness,
// breaking ties toward the lowest index for reproducibility. When
// decisionRounds is 0, no candidate was ever scored, so selection falls
// back to a uniform random pick under the seeded PRNG.
func selectWinner(env fillorder.Env, algorithms []fillorder.Algorithm, bestPerAlgo []fitness.Fitness, decisionRounds int) fillorder.Algorithm {
	if decisionRounds == 0 {
		return algorithms[env.Intn(len(algorithms))]
	}
	best := -1
	for i, fit := range bestPerAlgo {
		if fit == nil {
			continue
		}
		if best == -1 || bestPerAlgo[best].Less(fit) {
			best = i
		}
	}
	if best == -1 {
		// Cancelled before any round completed: fall back to the first
		// algorithm, matching round-robin's own starting point.
		return algorithms[0]
	}
	return algorithms[best]
}
