package flow

import (
	"context"
	"sort"

	"github.com/sandrokhizanishvili/airnet/core"
)

// MinCut computes the minimum-capacity edge cut separating source from
// sink in the directed capacity graph g.
//
// It first runs EdmondsKarp, then collects the set S of vertices still
// reachable from the source through strictly positive residual
// capacities. The cut is exactly the set of original edges (u,v) with
// u ∈ S and v ∉ S; by max-flow/min-cut duality the summed capacity of
// those edges equals the max-flow value, and removing them from g
// disconnects source from sink.
//
// The reachability walk uses an explicit stack rather than recursion, so
// path-shaped networks of any size cannot exhaust the call stack.
//
// Complexity: O(V·E²) time (dominated by EdmondsKarp), O(V + E) memory.
func MinCut(ctx context.Context, g *core.Graph, source, sink string, opts ...Option) (*CutResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	fr, err := EdmondsKarp(ctx, g, source, sink, opts...)
	if err != nil {
		return nil, err
	}

	reach := residualReachable(fr.Residual, source, cfg.Epsilon)

	// The cut crosses from the reachable side to its complement in the
	// ORIGINAL graph: residual capacities on cut edges are exhausted by
	// construction, so g, not the residual, supplies the capacities.
	var cut []core.Edge
	for _, e := range g.Edges() {
		if reach[e.From] && !reach[e.To] {
			cut = append(cut, e)
		}
	}

	side := make([]string, 0, len(reach))
	for id := range reach {
		side = append(side, id)
	}
	sort.Strings(side)

	return &CutResult{
		MaxFlow:    fr.MaxFlow,
		Edges:      cut,
		SourceSide: side,
		Residual:   fr.Residual,
	}, nil
}

// residualReachable marks every vertex reachable from source through
// residual capacities strictly greater than eps, via iterative DFS.
func residualReachable(residual *core.Graph, source string, eps float64) map[string]bool {
	reach := make(map[string]bool, residual.VertexCount())
	stack := []string{source}
	reach[source] = true

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nbrs, err := residual.NeighborIDs(u)
		if err != nil {
			continue
		}
		for _, v := range nbrs {
			if reach[v] {
				continue
			}
			if w, err := residual.Weight(u, v); err != nil || w <= eps {
				continue
			}
			reach[v] = true
			stack = append(stack, v)
		}
	}

	return reach
}
