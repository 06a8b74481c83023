package centrality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sandrokhizanishvili/airnet/core"
)

// inEdge is one incoming contribution source for a vertex: the index of
// the upstream vertex and the weight of the connecting edge.
type inEdge struct {
	src    int
	weight float64
}

// PageRank solves for the stationary importance of every vertex by
// weighted power iteration.
//
// Scores start uniform at 1/N. Each iteration a vertex collects, from
// every in-neighbor u, the share rank(u) · w(u→v) / outWeight(u), scaled
// by the damping factor, plus the teleport mass (1−damping)/N. A vertex
// with zero outgoing weight (a dangling vertex) has no outWeight to
// divide by; its whole rank is instead spread uniformly across the
// graph each iteration, the standard dangling-node correction, so total
// mass stays 1.
//
// Iteration stops when the largest per-vertex change drops below
// Tolerance, or at MaxIterations — in which case Converged is false and
// Scores still carries the best-effort values (a warning, not an error).
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: O(iterations · (V + E)) time, O(V + E) memory.
func PageRank(g *core.Graph, opts ...PageRankOption) (*PageRankResult, error) {
	cfg := DefaultPageRankOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	order := g.Vertices()
	n := len(order)
	index := make(map[string]int, n)
	for i, id := range order {
		index[id] = i
	}

	// Dense pull-model structures over the sorted vertex order:
	// incoming[j] lists every (i, w) with an edge order[i]→order[j].
	outWeight := make([]float64, n)
	incoming := make([][]inEdge, n)
	for from, nbrs := range g.AdjacencyList() {
		i := index[from]
		for to, w := range nbrs {
			outWeight[i] += w
			j := index[to]
			incoming[j] = append(incoming[j], inEdge{src: i, weight: w})
		}
	}

	rank := make([]float64, n)
	floats.AddConst(1/float64(n), rank)
	next := make([]float64, n)

	teleport := (1 - cfg.Damping) / float64(n)
	iterations := 0
	converged := false

	for iterations < cfg.MaxIterations {
		iterations++

		// Dangling vertices hand their whole mass to everyone equally.
		var dangling float64
		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				dangling += rank[i]
			}
		}
		shared := dangling / float64(n)

		for j := 0; j < n; j++ {
			var sum float64
			for _, in := range incoming[j] {
				sum += rank[in.src] * in.weight / outWeight[in.src]
			}
			next[j] = teleport + cfg.Damping*(sum+shared)
		}

		if floats.Distance(next, rank, math.Inf(1)) < cfg.Tolerance {
			rank, next = next, rank
			converged = true
			break
		}
		rank, next = next, rank
	}

	scores := make(map[string]float64, n)
	for i, id := range order {
		scores[id] = rank[i]
	}

	return &PageRankResult{
		Scores:     scores,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}
