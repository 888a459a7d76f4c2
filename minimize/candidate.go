package minimize

import (
	"github.com/ashford-lakes/hyperwidth/bucket"
	"github.com/ashford-lakes/hyperwidth/fillorder"
	"github.com/ashford-lakes/hyperwidth/hypergraph"
	"github.com/ashford-lakes/hyperwidth/reduce"
	"github.com/ashford-lakes/hyperwidth/tdecomp"
)

// BuildCandidate wires together the three leaf components into one
// decomposition attempt: preprocess g (only for algorithms that ask for
// it, via fillorder.Preprocessing), run alg over the resulting graph,
// bucket-eliminate the resulting (local) ordering, translate back to
// original vertex ids, replay any vertices preprocessing stripped out, and
// apply the requested manipulations.
//
// Induced edges and compression are applied here, against the original
// graph, rather than inside bucket.Build against the reduced one — the
// reduced graph's synthetic adjacency has no relationship to the original
// hyperedge ids a caller cares about.
func BuildCandidate(env fillorder.Env, g *hypergraph.Graph, alg fillorder.Algorithm, o Options) (*tdecomp.TreeDecomposition, error) {
	pg := reduce.Identity(g)
	if p, ok := alg.(fillorder.Preprocessing); ok && p.UsesPreprocessing() {
		pg = reduce.Preprocess(g)
	}

	localOrder := alg.ComputeReduced(env, pg)
	if env.Cancelled() {
		return nil, nil
	}

	td, err := bucket.Build(pg.ReducedGraph(), []hypergraph.VertexID(localOrder), bucket.WithManipulations())
	if err != nil {
		return nil, err
	}

	td = translateToOriginal(td, pg)
	td = pg.Replay(td)

	if o.ComputeInducedEdges {
		for i := range td.Bags {
			td.Bags[i].InducedEdges = g.InducedEdges(td.Bags[i].Vertices)
		}
	}
	if o.CompressionEnabled {
		td = td.Compress()
	}
	return td, nil
}

func translateToOriginal(td *tdecomp.TreeDecomposition, pg *reduce.PreprocessedGraph) *tdecomp.TreeDecomposition {
	out := td.Clone()
	for i, b := range out.Bags {
		out.Bags[i].Vertices = pg.Translate(b.Vertices)
	}
	return out
}
