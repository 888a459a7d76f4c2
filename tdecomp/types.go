// Package tdecomp defines the TreeDecomposition result type produced by
// package bucket and consumed by package fitness/minimize/adaptive: a
// rooted tree of Bags satisfying edge-coverage and running-intersection.
//
// A small struct whose invariants are documented inline rather than
// enforced by exotic types.
package tdecomp

import "github.com/ashford-lakes/hyperwidth/hypergraph"

// Bag is one node of a tree decomposition: an ordered vertex set and,
// optionally, the ids of hyperedges induced by that set.
type Bag struct {
	// ID uniquely identifies this bag within its TreeDecomposition.
	ID int

	// Vertices is the bag's vertex set. Order is not semantically
	// meaningful but is kept stable for deterministic serialization.
	Vertices []hypergraph.VertexID

	// InducedEdges holds the ids of hyperedges fully contained in
	// Vertices, when computed (nil otherwise).
	InducedEdges []hypergraph.EdgeID

	// Parent is the index into TreeDecomposition.Bags of this bag's
	// parent, or -1 if this bag is the root.
	Parent int

	// Children holds the indices into TreeDecomposition.Bags of this
	// bag's children.
	Children []int
}

// TreeDecomposition is a rooted tree of Bags.
//
// Invariants:
//  1. every input vertex occurs in at least one bag;
//  2. every input hyperedge is covered by at least one bag;
//  3. for each input vertex v, the bags containing v induce a connected
//     subtree.
type TreeDecomposition struct {
	Bags []Bag
	Root int
}

// Width returns max(len(bag.Vertices)) - 1 over all bags, or -1 for a
// TreeDecomposition with no bags — the convention this module uses for the
// zero-vertex decomposition's single empty bag.
func (t *TreeDecomposition) Width() int {
	maxSize := 0
	for _, b := range t.Bags {
		if len(b.Vertices) > maxSize {
			maxSize = len(b.Vertices)
		}
	}
	return maxSize - 1
}

// Clone returns a deep copy of t, safe to mutate independently.
func (t *TreeDecomposition) Clone() *TreeDecomposition {
	if t == nil {
		return nil
	}
	out := &TreeDecomposition{Bags: make([]Bag, len(t.Bags)), Root: t.Root}
	for i, b := range t.Bags {
		nb := Bag{ID: b.ID, Parent: b.Parent}
		nb.Vertices = append([]hypergraph.VertexID(nil), b.Vertices...)
		if b.InducedEdges != nil {
			nb.InducedEdges = append([]hypergraph.EdgeID(nil), b.InducedEdges...)
		}
		nb.Children = append([]int(nil), b.Children...)
		out.Bags[i] = nb
	}
	return out
}
