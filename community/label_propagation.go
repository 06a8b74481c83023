package community

import (
	"sort"

	"github.com/sandrokhizanishvili/airnet/core"
)

// LabelPropagation detects communities by iterative majority vote.
//
// Every vertex starts with its own ID as label. Each sweep visits all
// vertices in sorted ID order; a vertex adopts the most frequent label
// among its current neighbors, reading updates made earlier in the same
// sweep (asynchronous propagation). Frequency ties resolve to the
// lexicographically smallest candidate label. Sweeping stops after a
// full pass with no change, or at the MaxSweeps cap with
// Converged=false and the best-effort partition returned.
//
// The fixed sweep order and tie rule make results reproducible, but the
// partition itself is heuristic: weakly separated groups can merge.
// Once converged the result is idempotent — propagating again changes
// nothing.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrDirectedGraph.
//
// Complexity: O(sweeps · (V + E)) time, O(V) memory.
func LabelPropagation(g *core.Graph, opts ...LabelPropagationOption) (*LabelPropagationResult, error) {
	cfg := DefaultLabelPropagationOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	vertices := g.Vertices()
	labels := make(map[string]string, len(vertices))
	for _, v := range vertices {
		labels[v] = v
	}

	sweeps := 0
	converged := false
	for sweeps < cfg.MaxSweeps {
		sweeps++

		changed := false
		for _, v := range vertices {
			nbrs, err := g.NeighborIDs(v)
			if err != nil {
				return nil, err
			}
			if len(nbrs) == 0 {
				continue // isolated vertex keeps its own label
			}

			winner := majorityLabel(nbrs, labels)
			if labels[v] != winner {
				labels[v] = winner
				changed = true
			}
		}

		if !changed {
			converged = true
			break
		}
	}

	return &LabelPropagationResult{
		Communities: groupByLabel(labels),
		Labels:      labels,
		Sweeps:      sweeps,
		Converged:   converged,
	}, nil
}

// majorityLabel returns the most frequent label among nbrs, resolving
// frequency ties to the lexicographically smallest label.
func majorityLabel(nbrs []string, labels map[string]string) string {
	counts := make(map[string]int, len(nbrs))
	for _, nb := range nbrs {
		counts[labels[nb]]++
	}

	var winner string
	best := 0
	for label, c := range counts {
		if c > best || (c == best && label < winner) {
			winner, best = label, c
		}
	}

	return winner
}

// groupByLabel converts a label assignment into sorted communities,
// ordered by each community's smallest member.
func groupByLabel(labels map[string]string) [][]string {
	groups := make(map[string][]string, len(labels))
	for v, label := range labels {
		groups[label] = append(groups[label], v)
	}

	comms := make([][]string, 0, len(groups))
	for _, members := range groups {
		sort.Strings(members)
		comms = append(comms, members)
	}
	sort.Slice(comms, func(i, j int) bool { return comms[i][0] < comms[j][0] })

	return comms
}
