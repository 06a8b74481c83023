package community

import (
	"context"

	"github.com/sandrokhizanishvili/airnet/centrality"
	"github.com/sandrokhizanishvili/airnet/core"
)

// GirvanNewman detects communities by iteratively removing the edge
// with the highest betweenness centrality until the graph falls apart
// into more than one component.
//
// The working graph is an owned Clone; the caller's graph is never
// mutated. Betweenness is fully recomputed after every removal. Among
// equal top scores the lexicographically smallest (U,V) pair is removed,
// keeping runs reproducible.
//
// An input that is already disconnected returns its components with no
// removals. A single-vertex graph is one trivial community.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrDirectedGraph, plus context
// cancellation between iterations.
//
// Complexity: O(removals · V·E) time, O(V + E) memory.
func GirvanNewman(ctx context.Context, g *core.Graph) (*GirvanNewmanResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	working := g.Clone()
	var removed []core.Edge

	comps, err := Components(working)
	if err != nil {
		return nil, err
	}

	for len(comps) == 1 && working.EdgeCount() > 0 {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		top, terr := topBetweennessEdge(working)
		if terr != nil {
			return nil, terr
		}

		w, werr := working.Weight(top.U, top.V)
		if werr != nil {
			return nil, werr
		}
		if err = working.RemoveEdge(top.U, top.V); err != nil {
			return nil, err
		}
		removed = append(removed, core.Edge{From: top.U, To: top.V, Weight: w})

		if comps, err = Components(working); err != nil {
			return nil, err
		}
	}

	return &GirvanNewmanResult{Communities: comps, RemovedEdges: removed}, nil
}

// topBetweennessEdge picks the edge with the highest betweenness score;
// ties resolve to the smallest normalized (U,V) pair.
func topBetweennessEdge(g *core.Graph) (centrality.EdgeKey, error) {
	scores, err := centrality.EdgeBetweenness(g)
	if err != nil {
		return centrality.EdgeKey{}, err
	}

	var best centrality.EdgeKey
	bestScore := -1.0
	for key, score := range scores {
		switch {
		case score > bestScore:
			best, bestScore = key, score
		case score == bestScore && lessKey(key, best):
			best = key
		}
	}

	return best, nil
}

// lessKey orders normalized edge keys lexicographically by (U, V).
func lessKey(a, b centrality.EdgeKey) bool {
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}
