package fillorder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashford-lakes/hyperwidth/fillorder"
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdctx"
)

// fakeEnv is a minimal fillorder.Env backed by a plain math/rand.Rand, used
// so these tests exercise the public Algorithm contract without a
// tdctx.Context (tdctx is imported only for its DebugAssertions switch).
type fakeEnv struct {
	rng       *rand.Rand
	cancelled bool
}

func (e *fakeEnv) Intn(n int) int  { return e.rng.Intn(n) }
func (e *fakeEnv) Cancelled() bool { return e.cancelled }

func newEnv(seed int64) *fakeEnv { return &fakeEnv{rng: rand.New(rand.NewSource(seed))} }

func k4() *hypergraph.Graph {
	b := hypergraph.NewBuilder(4)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(0, 3)
	b.AddEdge(1, 2)
	b.AddEdge(1, 3)
	b.AddEdge(2, 3)
	return b.Build()
}

func path5() *hypergraph.Graph {
	b := hypergraph.NewBuilder(5)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	return b.Build()
}

func cycle5() *hypergraph.Graph {
	b := hypergraph.NewBuilder(5)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	b.AddEdge(4, 0)
	return b.Build()
}

// randomGraph builds a hypergraph on n vertices with each of the C(n,2)
// plain edges included independently with probability p.
func randomGraph(rng *rand.Rand, n int, p float64) *hypergraph.Graph {
	b := hypergraph.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				b.AddEdge(hypergraph.VertexID(i), hypergraph.VertexID(j))
			}
		}
	}
	return b.Build()
}

func requirePermutation(t *testing.T, n int, ord fillorder.Ordering) {
	t.Helper()
	require.Len(t, ord, n)
	seen := make([]bool, n)
	for _, v := range ord {
		require.False(t, seen[v], "vertex %d appears twice in ordering", v)
		seen[v] = true
	}
}

var algorithms = []fillorder.Algorithm{
	fillorder.MinFill{},
	fillorder.MinFillPlus{},
	fillorder.MinDegree{},
	fillorder.MaxCardinality{},
}

func TestOrdering_IsAPermutation(t *testing.T) {
	graphs := map[string]*hypergraph.Graph{
		"k4":     k4(),
		"path5":  path5(),
		"cycle5": cycle5(),
		"empty":  hypergraph.NewBuilder(0).Build(),
	}
	for _, alg := range algorithms {
		for name, g := range graphs {
			ord := alg.Compute(newEnv(7), g)
			requirePermutation(t, g.NumVertices(), ord)
			_ = name
		}
	}
}

func TestMinFill_CliqueHasZeroFillThroughout(t *testing.T) {
	// K4 is already chordal: min-fill must never need a fill edge, so every
	// elimination step is the zero-fill fast path and the resulting
	// ordering still visits all four vertices exactly once.
	ord := fillorder.MinFill{}.Compute(newEnv(1), k4())
	requirePermutation(t, 4, ord)
}

func TestMinFill_CycleIntroducesFill(t *testing.T) {
	// C5 is not chordal: eliminating any vertex first leaves a 4-cycle,
	// forcing at least one fill edge before the next elimination. The
	// algorithm must still terminate with a valid permutation.
	ord := fillorder.MinFill{}.Compute(newEnv(3), cycle5())
	requirePermutation(t, 5, ord)
}

func TestMinFill_DeterministicForFixedSeedStream(t *testing.T) {
	g := cycle5()
	a := fillorder.MinFill{}.Compute(newEnv(42), g)
	b := fillorder.MinFill{}.Compute(newEnv(42), g)
	require.Equal(t, a, b)
}

func TestAlgorithm_CancellationReturnsPartialOrdering(t *testing.T) {
	env := newEnv(1)
	env.cancelled = true
	ord := fillorder.MinFill{}.Compute(env, cycle5())
	require.Less(t, len(ord), 5)
}

func TestStatic_RejectsNonPermutation(t *testing.T) {
	_, err := fillorder.NewStatic(fillorder.Ordering{0, 0, 1}, 3)
	require.ErrorIs(t, err, fillorder.ErrNotAPermutation)

	_, err = fillorder.NewStatic(fillorder.Ordering{0, 1}, 3)
	require.ErrorIs(t, err, fillorder.ErrNotAPermutation)
}

func TestStatic_ReplaysExactOrder(t *testing.T) {
	want := fillorder.Ordering{2, 0, 1}
	s, err := fillorder.NewStatic(want, 3)
	require.NoError(t, err)

	g := hypergraph.NewBuilder(3).Build()
	got := s.Compute(newEnv(0), g)
	require.Equal(t, want, got)
}

func TestAlgorithm_NamesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, alg := range algorithms {
		require.False(t, seen[alg.Name()], "duplicate algorithm name %q", alg.Name())
		seen[alg.Name()] = true
	}
}

// TestMinFill_FillCountMatchesFromScratchRecomputation enables the engine's
// internal debug assertion (every elimination step recomputes each touched
// vertex's fill count from scratch and compares it against the incrementally
// maintained value) and runs MinFill to completion over many random,
// nontrivial graphs, any mismatch panics and fails the test.
func TestMinFill_FillCountMatchesFromScratchRecomputation(t *testing.T) {
	prev := tdctx.DebugAssertions
	tdctx.DebugAssertions = true
	defer func() { tdctx.DebugAssertions = prev }()

	rng := rand.New(rand.NewSource(1234))
	for trial := 0; trial < 40; trial++ {
		n := 3 + rng.Intn(14)
		p := 0.15 + rng.Float64()*0.7
		g := randomGraph(rng, n, p)
		env := newEnv(int64(trial))
		require.NotPanics(t, func() {
			ord := fillorder.MinFill{}.Compute(env, g)
			requirePermutation(t, n, ord)
		}, "trial %d: n=%d p=%.2f", trial, n, p)
	}
}

func TestMinFillPlus_RequestsPreprocessingUnlikeBaseAlgorithms(t *testing.T) {
	var plus fillorder.Algorithm = fillorder.MinFillPlus{}
	p, ok := plus.(fillorder.Preprocessing)
	require.True(t, ok)
	require.True(t, p.UsesPreprocessing())

	for _, alg := range []fillorder.Algorithm{fillorder.MinFill{}, fillorder.MinDegree{}, fillorder.MaxCardinality{}} {
		_, ok := alg.(fillorder.Preprocessing)
		require.False(t, ok, "%s should not implement Preprocessing", alg.Name())
	}
}
