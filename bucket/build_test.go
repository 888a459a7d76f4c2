package bucket_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashford-lakes/hyperwidth/bucket"
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

func TestBuild_K4_WidthThree(t *testing.T) {
	b := hypergraph.NewBuilder(4)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(0, 3)
	b.AddEdge(1, 2)
	b.AddEdge(1, 3)
	b.AddEdge(2, 3)
	g := b.Build()

	td, err := bucket.Build(g, []hypergraph.VertexID{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, td.Width())
	require.True(t, tdecomp.VerifyEdgeCoverage(g, td))
	require.True(t, tdecomp.VerifyRunningIntersection(g, td))
}

func TestBuild_Path5_WidthOne(t *testing.T) {
	b := hypergraph.NewBuilder(5)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	g := b.Build()

	// Min-fill order for a path eliminates an endpoint at each step.
	td, err := bucket.Build(g, []hypergraph.VertexID{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 1, td.Width())
	require.True(t, tdecomp.VerifyEdgeCoverage(g, td))
	require.True(t, tdecomp.VerifyRunningIntersection(g, td))
}

func TestBuild_Cycle5_WidthTwo(t *testing.T) {
	b := hypergraph.NewBuilder(5)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	b.AddEdge(4, 0)
	g := b.Build()

	td, err := bucket.Build(g, []hypergraph.VertexID{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, td.Width())
	require.True(t, tdecomp.VerifyEdgeCoverage(g, td))
	require.True(t, tdecomp.VerifyRunningIntersection(g, td))
}

func TestBuild_IsolatedVertex_AppearsAsOwnBag(t *testing.T) {
	b := hypergraph.NewBuilder(6)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	g := b.Build()

	// Vertex 5 is isolated; eliminate it first (degree 0 => its bucket holds
	// only itself).
	td, err := bucket.Build(g, []hypergraph.VertexID{5, 0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 1, td.Width())

	found := false
	for _, bag := range td.Bags {
		if len(bag.Vertices) == 1 && bag.Vertices[0] == 5 {
			found = true
		}
	}
	require.True(t, found, "expected a bag {5}")
}

func TestBuild_HyperedgeCoverage(t *testing.T) {
	b := hypergraph.NewBuilder(4)
	b.AddEdge(0, 1, 2) // 3-uniform hyperedge {0,1,2}
	b.AddEdge(2, 3)
	g := b.Build()

	// Eliminate 0 and 1 (both adjacent to 2 via the hyperedge) before 2,3.
	td, err := bucket.Build(g, []hypergraph.VertexID{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, td.Width())
	require.True(t, tdecomp.VerifyEdgeCoverage(g, td))
}

func TestBuild_EmptyGraph(t *testing.T) {
	g := hypergraph.NewBuilder(0).Build()
	td, err := bucket.Build(g, nil)
	require.NoError(t, err)
	require.Len(t, td.Bags, 1)
	require.Equal(t, -1, td.Width())
}

func TestBuild_RejectsMismatchedOrderingLength(t *testing.T) {
	g := hypergraph.NewBuilder(3).Build()
	_, err := bucket.Build(g, []hypergraph.VertexID{0, 1})
	require.ErrorIs(t, err, bucket.ErrOrderingMismatch)
}

func TestBuild_ManipulationsCanBeDisabled(t *testing.T) {
	b := hypergraph.NewBuilder(3)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	g := b.Build()

	td, err := bucket.Build(g, []hypergraph.VertexID{0, 1, 2}, bucket.WithManipulations())
	require.NoError(t, err)
	for _, bag := range td.Bags {
		require.Nil(t, bag.InducedEdges)
	}
}
