// Package minimize runs a base ordering algorithm repeatedly, keeping the
// best tree decomposition seen: the iterative width-minimizing loop.
package minimize

import (
	"github.com/ashford-lakes/hyperwidth/fitness"
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

// ProgressFunc is invoked on every improving replacement of best, when
// non-nil.
type ProgressFunc func(g *hypergraph.Graph, t *tdecomp.TreeDecomposition, fit fitness.Fitness)

// Options configures Optimize. All fields are plain and settable as a
// struct literal — minimize is an inner-loop workhorse the adaptive driver
// reconstructs every exploitation phase, so the functional-option
// constructors below are a convenience, not a requirement.
type Options struct {
	// Iterations bounds the number of candidates built; 0 means unbounded.
	Iterations int

	// NonImprovementLimit aborts the loop after this many consecutive
	// non-improving iterations; -1 means unbounded.
	NonImprovementLimit int

	// ComputeInducedEdges annotates the winning decomposition's bags with
	// covered hyperedge ids.
	ComputeInducedEdges bool

	// CompressionEnabled removes subset-redundant bags from the winning
	// decomposition before it is returned.
	CompressionEnabled bool

	// ProgressCallback, if set, is invoked on every improvement.
	ProgressCallback ProgressFunc

	// FitnessFunc scores each candidate; defaults to fitness.WidthFitness.
	FitnessFunc fitness.Func
}

// Option is a functional option over Options.
type Option func(*Options)

// WithIterations sets Options.Iterations.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithNonImprovementLimit sets Options.NonImprovementLimit.
func WithNonImprovementLimit(n int) Option { return func(o *Options) { o.NonImprovementLimit = n } }

// WithInducedEdges toggles Options.ComputeInducedEdges.
func WithInducedEdges(enabled bool) Option {
	return func(o *Options) { o.ComputeInducedEdges = enabled }
}

// WithCompression toggles Options.CompressionEnabled.
func WithCompression(enabled bool) Option {
	return func(o *Options) { o.CompressionEnabled = enabled }
}

// WithProgressCallback sets Options.ProgressCallback.
func WithProgressCallback(fn ProgressFunc) Option {
	return func(o *Options) { o.ProgressCallback = fn }
}

// WithFitnessFunc overrides the default width fitness.
func WithFitnessFunc(fn fitness.Func) Option { return func(o *Options) { o.FitnessFunc = fn } }

// DefaultOptions returns the documented defaults: unbounded iterations,
// unbounded non-improvement tolerance, both manipulations on,
// width-minimizing fitness.
func DefaultOptions() Options {
	return Options{
		Iterations:          0,
		NonImprovementLimit: -1,
		ComputeInducedEdges: true,
		CompressionEnabled:  true,
		FitnessFunc:         fitness.WidthFitness,
	}
}
