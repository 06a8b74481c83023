package community

import (
	"sort"

	"github.com/sandrokhizanishvili/airnet/core"
)

// Components returns the connected components of g.
//
// Each component's members are sorted, and components are ordered by
// their smallest member, so output is fully deterministic. Traversal
// uses an explicit queue with a visited set — no recursion, regardless
// of component depth.
//
// Directed graphs are accepted and treated by out-neighbor reachability
// from the sweep order, which coincides with weak connectivity for the
// undirected graphs community detection operates on.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	visited := make(map[string]bool, g.VertexCount())
	var comps [][]string

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}

		// BFS collects one component.
		comp := []string{start}
		visited[start] = true
		queue := []string{start}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nbrs, err := g.NeighborIDs(u)
			if err != nil {
				continue
			}
			for _, v := range nbrs {
				if !visited[v] {
					visited[v] = true
					comp = append(comp, v)
					queue = append(queue, v)
				}
			}
		}

		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
