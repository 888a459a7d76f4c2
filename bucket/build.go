package bucket

import (
	"sort"

	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

type vid = hypergraph.VertexID

// Build converts ordering (a permutation of g's vertices) into a tree
// decomposition via bucket elimination: the last-eliminated vertex becomes
// the tree's root, and bags are read off each vertex's final bucket
// contents.
func Build(g *hypergraph.Graph, ordering []vid, opts ...Option) (*tdecomp.TreeDecomposition, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	n := len(ordering)
	if n != g.NumVertices() {
		return nil, ErrOrderingMismatch
	}
	if n == 0 {
		return applyManipulations(emptyDecomposition(), g, o), nil
	}

	pos := make([]int, n)
	for i, v := range ordering {
		pos[v] = i
	}

	// Seed each vertex's bucket with itself plus whichever of its original
	// graph neighbors occur later in π. An edge (x, y) with x before y in
	// π is filed once, into bucket[x] — this is what guarantees edge
	// coverage once bag(x) = B(x) is read off at the end.
	buckets := make([][]vid, n)
	for v := 0; v < n; v++ {
		nb := []vid{vid(v)}
		for _, u := range g.Neighbors(vid(v)) {
			if pos[u] > pos[v] {
				nb = append(nb, u)
			}
		}
		buckets[v] = nb
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	for _, v := range ordering {
		var later []vid
		for _, u := range buckets[v] {
			if u != v && pos[u] > pos[v] {
				later = append(later, u)
			}
		}
		if len(later) == 0 {
			continue
		}
		p := later[0]
		for _, u := range later[1:] {
			if pos[u] < pos[p] {
				p = u
			}
		}
		parent[v] = int(p)
		buckets[p] = mergeDedup(buckets[p], later)
	}

	// Every vertex whose own elimination step found no later bucket member
	// becomes a local root of its own (isolated vertices, or disconnected
	// components eliminated before the rest). Graft every such local root,
	// other than the true global root, onto the global root so the result
	// is a single connected tree.
	globalRoot := int(ordering[n-1])
	for v := 0; v < n; v++ {
		if parent[v] == -1 && v != globalRoot {
			parent[v] = globalRoot
		}
	}

	bags := make([]tdecomp.Bag, n)
	for v := 0; v < n; v++ {
		verts := append([]vid{}, buckets[v]...)
		sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })
		bags[v] = tdecomp.Bag{ID: v, Vertices: verts, Parent: parent[v]}
	}
	for v := 0; v < n; v++ {
		if parent[v] != -1 {
			bags[parent[v]].Children = append(bags[parent[v]].Children, v)
		}
	}

	td := &tdecomp.TreeDecomposition{Bags: bags, Root: globalRoot}
	return applyManipulations(td, g, o), nil
}

// emptyDecomposition is the zero-vertex convention: exactly one empty bag,
// width -1 via TreeDecomposition.Width.
func emptyDecomposition() *tdecomp.TreeDecomposition {
	return &tdecomp.TreeDecomposition{
		Bags: []tdecomp.Bag{{ID: 0, Parent: -1}},
		Root: 0,
	}
}

func applyManipulations(td *tdecomp.TreeDecomposition, g *hypergraph.Graph, o Options) *tdecomp.TreeDecomposition {
	for _, m := range o.Manipulations {
		switch m {
		case ComputeInducedEdges:
			for i := range td.Bags {
				td.Bags[i].InducedEdges = g.InducedEdges(td.Bags[i].Vertices)
			}
		case CompressBags:
			td = td.Compress()
		}
	}
	return td
}

func mergeDedup(into, add []vid) []vid {
	for _, x := range add {
		found := false
		for _, y := range into {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			into = append(into, x)
		}
	}
	return into
}
