// Package bucket turns an elimination ordering into a tree decomposition by
// bucket elimination: each vertex is assigned a bucket, later neighbors are
// folded into the earliest later neighbor's bucket, and the buckets become
// bag nodes of a rooted tree.
package bucket

import "errors"

// Manipulation is one post-processing step applied to a freshly built tree
// decomposition, in the order given: an explicit, ordered sequence the
// builder receives as a slice and consumes directly.
type Manipulation int

const (
	// ComputeInducedEdges annotates each bag with the ids of hyperedges
	// fully contained in that bag's vertex set.
	ComputeInducedEdges Manipulation = iota

	// CompressBags removes subset-redundant bags.
	CompressBags
)

// ErrOrderingMismatch is returned when Build is given an ordering whose
// length does not equal the graph's vertex count.
var ErrOrderingMismatch = errors.New("bucket: ordering length does not match graph vertex count")

// Options configures Build.
type Options struct {
	// Manipulations lists the post-processing steps to apply, in order,
	// after the core bucket-elimination pass.
	Manipulations []Manipulation
}

// Option is a functional option over Options.
type Option func(*Options)

// WithManipulations replaces the manipulation sequence entirely.
func WithManipulations(ms ...Manipulation) Option {
	return func(o *Options) { o.Manipulations = ms }
}

// DefaultOptions returns the default manipulation sequence: induced edges
// computed, then compression applied.
func DefaultOptions() Options {
	return Options{Manipulations: []Manipulation{ComputeInducedEdges, CompressBags}}
}
