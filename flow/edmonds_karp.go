package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/sandrokhizanishvili/airnet/core"
)

// EdmondsKarp computes the maximum flow from source to sink over the
// directed capacity graph g, using BFS to always augment along a
// shortest-hop path.
//
// The input graph is never mutated: flow is pushed on a residual Clone.
// Pushing f units along an augmenting path decrements every forward
// residual capacity by f and increments the reverse capacity by f, so a
// later path may undo flow by traveling the reverse edge.
//
// Validation (in order): nil graph, empty graph, undirectedness, absent
// edges, missing source, missing sink, source == sink.
//
// A sink that is unreachable from the source yields MaxFlow 0 with the
// residual equal to the original capacities — a valid result, not an
// error.
//
// Complexity: O(V·E²) time, O(V + E) memory.
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts ...Option) (*FlowResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, source, sink); err != nil {
		return nil, err
	}

	// Residual starts as a copy of the capacities; the original graph is
	// read-only from here on.
	residual := g.Clone()

	var maxFlow float64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, bottleneck := augmentingPath(residual, source, sink, cfg.Epsilon)
		if len(path) == 0 {
			break
		}
		if cfg.Verbose {
			fmt.Printf("flow: augmenting path %v with flow %g\n", path, bottleneck)
		}
		maxFlow += bottleneck

		// Push the bottleneck along the path: forward capacities shrink,
		// reverse capacities grow symmetrically.
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]

			fw, err := residual.Weight(u, v)
			if err != nil {
				return nil, fmt.Errorf("flow: residual edge %s→%s vanished: %w", u, v, err)
			}
			if err = residual.AddEdge(u, v, math.Max(0, fw-bottleneck)); err != nil {
				return nil, err
			}

			var rev float64
			if w, err := residual.Weight(v, u); err == nil {
				rev = w
			}
			if err = residual.AddEdge(v, u, rev+bottleneck); err != nil {
				return nil, err
			}
		}
	}

	return &FlowResult{MaxFlow: maxFlow, Residual: residual}, nil
}

// validate performs the structural checks shared by EdmondsKarp and MinCut.
func validate(g *core.Graph, source, sink string) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	if !g.Directed() {
		return ErrUndirectedGraph
	}
	if g.EdgeCount() == 0 {
		return ErrNoEdges
	}
	if !g.HasVertex(source) {
		return ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSameSourceSink
	}

	return nil
}

// augmentingPath finds the fewest-edges path source→sink in the residual
// graph whose every edge has capacity > eps, returning the path and its
// bottleneck capacity. Returns a nil path when the sink is unreachable.
// Neighbors are visited in sorted order, so the chosen path is
// deterministic among equal-length candidates.
func augmentingPath(residual *core.Graph, source, sink string, eps float64) ([]string, float64) {
	parent := make(map[string]string, residual.VertexCount())
	bottle := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]

		nbrs, err := residual.NeighborIDs(u)
		if err != nil {
			return nil, 0
		}
		for _, v := range nbrs {
			if visited[v] {
				continue
			}
			capUV, err := residual.Weight(u, v)
			if err != nil || capUV <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], capUV)
			if v == sink {
				return reconstruct(parent, source, sink), bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// reconstruct rebuilds the source→sink path from the BFS parent links.
func reconstruct(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		p := parent[cur]
		path = append(path, p)
		cur = p
	}
	// reverse in place to get source → sink
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
