package tdecomp

import "github.com/ashford-lakes/hyperwidth/hypergraph"

// Compress removes subset-redundant bags: whenever a bag's vertex set is a
// subset of its parent's, the bag is contracted into the parent and its
// children are re-parented to the parent. Applying Compress twice yields
// the same tree as applying it once: once no bag is a subset of its
// parent, a second pass finds nothing left to contract.
//
// Returns a new TreeDecomposition; t is not mutated.
func (t *TreeDecomposition) Compress() *TreeDecomposition {
	if len(t.Bags) == 0 {
		return t.Clone()
	}

	out := &TreeDecomposition{}
	// oldToNew maps a surviving old bag index to its new index.
	oldToNew := make(map[int]int, len(t.Bags))

	var walk func(oldIdx int, newParent int)
	walk = func(oldIdx int, newParent int) {
		b := t.Bags[oldIdx]
		mergeIntoParent := newParent != -1 && isSubset(b.Vertices, out.Bags[newParent].Vertices)

		parentForChildren := newParent
		if !mergeIntoParent {
			newIdx := len(out.Bags)
			nb := Bag{
				ID:           newIdx,
				Vertices:     append([]hypergraph.VertexID(nil), b.Vertices...),
				InducedEdges: append([]hypergraph.EdgeID(nil), b.InducedEdges...),
				Parent:       newParent,
			}
			out.Bags = append(out.Bags, nb)
			if newParent != -1 {
				out.Bags[newParent].Children = append(out.Bags[newParent].Children, newIdx)
			}
			oldToNew[oldIdx] = newIdx
			parentForChildren = newIdx
		} else {
			oldToNew[oldIdx] = newParent
		}

		for _, c := range b.Children {
			walk(c, parentForChildren)
		}
	}

	walk(t.Root, -1)

	if len(out.Bags) == 0 {
		return out
	}
	out.Root = 0
	return out
}

// isSubset reports whether every element of a is present in b. Both slices
// are treated as sets; this is O(|a| * |b|) which is fine for bag sizes
// (bounded by treewidth+1, not graph size).
func isSubset(a, b []hypergraph.VertexID) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
