// Package tdctx provides the explicit per-computation context a width
// minimization run needs instead of process-wide global state: a seeded
// PRNG and a cooperative cancellation flag. Multiple Contexts can coexist
// and are fully independent, so concurrent computations never share or
// correlate state.
//
// The RNG derivation uses a SplitMix64 stream mixer so that independent
// deterministic substreams can be handed to concurrent, disjoint
// computations without correlating their tie-breaks.
package tdctx

import (
	"math/rand"
	"sync/atomic"
)

// defaultSeed is used when a Context is created with seed 0.
const defaultSeed int64 = 1

// Context is a single computation's management instance: its PRNG and its
// cooperative cancellation flag. A Context is not re-entrant — do not
// share one Context across concurrently running computations.
type Context struct {
	rng    *rand.Rand
	cancel atomic.Bool
}

// New creates a Context seeded deterministically. seed == 0 is remapped to
// a fixed non-zero default so that "no seed supplied" still produces
// reproducible output.
func New(seed int64) *Context {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return &Context{rng: rand.New(rand.NewSource(s))}
}

// Terminate raises the cooperative cancellation flag. Safe to call from a
// different goroutine than the one driving the computation; it is the only
// permitted external mutation of a running Context.
func (c *Context) Terminate() { c.cancel.Store(true) }

// Cancelled reports whether Terminate has been called.
func (c *Context) Cancelled() bool { return c.cancel.Load() }

// Rand returns the Context's PRNG. Callers must not use it concurrently
// from multiple goroutines (math/rand.Rand is not goroutine-safe); derive
// an independent stream with Derive for concurrent use instead.
func (c *Context) Rand() *rand.Rand { return c.rng }

// Intn draws from the Context's own PRNG stream. This makes *Context satisfy
// the small duck-typed fillorder.Env interface that fillorder, minimize and
// adaptive take — a Context is the one thing every component needs from
// its caller.
func (c *Context) Intn(n int) int { return c.rng.Intn(n) }

// Derive produces an independent, deterministic *rand.Rand stream from
// this Context's RNG and a caller-supplied stream id, using a SplitMix64
// avalanche mix. Intended for handing out per-worker or per-candidate
// streams without correlating them.
func (c *Context) Derive(stream uint64) *rand.Rand {
	parent := c.rng.Int63()
	return rand.New(rand.NewSource(splitMix64(parent, stream)))
}

func splitMix64(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
