package tdecomp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

func path5() *hypergraph.Graph {
	b := hypergraph.NewBuilder(5)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	return b.Build()
}

func samplePathDecomp() *tdecomp.TreeDecomposition {
	return &tdecomp.TreeDecomposition{
		Root: 0,
		Bags: []tdecomp.Bag{
			{ID: 0, Vertices: []hypergraph.VertexID{0, 1}, Parent: -1, Children: []int{1}},
			{ID: 1, Vertices: []hypergraph.VertexID{1, 2}, Parent: 0, Children: []int{2}},
			{ID: 2, Vertices: []hypergraph.VertexID{2, 3}, Parent: 1, Children: []int{3}},
			{ID: 3, Vertices: []hypergraph.VertexID{3, 4}, Parent: 2, Children: nil},
		},
	}
}

func TestTreeDecomposition_Width(t *testing.T) {
	td := samplePathDecomp()
	require.Equal(t, 1, td.Width())
}

func TestTreeDecomposition_EmptyWidth(t *testing.T) {
	td := &tdecomp.TreeDecomposition{}
	require.Equal(t, -1, td.Width())
}

func TestTreeDecomposition_EdgeCoverageAndRunningIntersection(t *testing.T) {
	g := path5()
	td := samplePathDecomp()
	require.True(t, tdecomp.VerifyEdgeCoverage(g, td))
	require.True(t, tdecomp.VerifyRunningIntersection(g, td))
}

func TestTreeDecomposition_RunningIntersectionDetectsGap(t *testing.T) {
	g := path5()
	td := samplePathDecomp()
	// Introduce a gap: vertex 0 is added to bag 2 but not to bag 1 between
	// it and bag 0, breaking connectivity of its occurrences.
	td.Bags[2].Vertices = []hypergraph.VertexID{0, 2, 3}
	require.False(t, tdecomp.VerifyRunningIntersection(g, td))
}

func TestTreeDecomposition_CompressIsIdempotent(t *testing.T) {
	// Root {0,1,2}, child {1,2} (redundant subset) -> should contract.
	td := &tdecomp.TreeDecomposition{
		Root: 0,
		Bags: []tdecomp.Bag{
			{ID: 0, Vertices: []hypergraph.VertexID{0, 1, 2}, Parent: -1, Children: []int{1}},
			{ID: 1, Vertices: []hypergraph.VertexID{1, 2}, Parent: 0, Children: []int{2}},
			{ID: 2, Vertices: []hypergraph.VertexID{3, 4}, Parent: 1, Children: nil},
		},
	}
	once := td.Compress()
	twice := once.Compress()

	require.Len(t, once.Bags, 2)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("Compress is not idempotent:\n%s", diff)
	}
}

func TestTreeDecomposition_Clone(t *testing.T) {
	td := samplePathDecomp()
	clone := td.Clone()
	clone.Bags[0].Vertices[0] = 99
	require.NotEqual(t, clone.Bags[0].Vertices[0], td.Bags[0].Vertices[0])
}
