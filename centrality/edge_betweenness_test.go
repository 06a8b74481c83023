package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandrokhizanishvili/airnet/centrality"
	"github.com/sandrokhizanishvili/airnet/core"
)

func TestEdgeBetweenness_TriangleIsSymmetric(t *testing.T) {
	// Unit triangle X—Y—Z—X: by symmetry every edge carries exactly one
	// shortest path (its own endpoints), so all scores are equal.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "Y", 1))
	require.NoError(t, g.AddEdge("Y", "Z", 1))
	require.NoError(t, g.AddEdge("Z", "X", 1))

	scores, err := centrality.EdgeBetweenness(g)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for key, score := range scores {
		require.Equal(t, 1.0, score, "edge %v", key)
	}
}

func TestEdgeBetweenness_PathGraph(t *testing.T) {
	// A—B—C: each edge carries two shortest paths (its endpoints, plus
	// the A..C pair).
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	scores, err := centrality.EdgeBetweenness(g)
	require.NoError(t, err)
	require.Equal(t, 2.0, scores[centrality.NewEdgeKey("A", "B")])
	require.Equal(t, 2.0, scores[centrality.NewEdgeKey("B", "C")])
}

func TestEdgeBetweenness_BridgeDominates(t *testing.T) {
	// Two triangles joined by the bridge C—D: all 9 cross pairs route
	// over the bridge, so it must hold the top score.
	g := barbell()

	scores, err := centrality.EdgeBetweenness(g)
	require.NoError(t, err)

	bridge := scores[centrality.NewEdgeKey("C", "D")]
	for key, score := range scores {
		if key == centrality.NewEdgeKey("C", "D") {
			continue
		}
		require.Greater(t, bridge, score, "bridge must outrank %v", key)
	}
	require.Equal(t, 9.0, bridge, "3×3 cross pairs, one route each")
}

// TestEdgeBetweenness_SumMatchesPairDistances cross-checks against
// brute-force all-pairs BFS: summing scores over all edges must equal
// the sum of hop distances over all reachable unordered pairs.
func TestEdgeBetweenness_SumMatchesPairDistances(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"B", "E"}, {"E", "F"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	scores, err := centrality.EdgeBetweenness(g)
	require.NoError(t, err)

	var scoreSum float64
	for _, s := range scores {
		scoreSum += s
	}

	var distSum float64
	vertices := g.Vertices()
	for i, s := range vertices {
		dist := bfsHops(t, g, s)
		for _, u := range vertices[i+1:] {
			if d, ok := dist[u]; ok {
				distSum += float64(d)
			}
		}
	}
	require.InDelta(t, distSum, scoreSum, 1e-9,
		"edge scores must account for every pairwise shortest path edge")
}

func TestEdgeBetweenness_Validation(t *testing.T) {
	_, err := centrality.EdgeBetweenness(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)

	_, err = centrality.EdgeBetweenness(core.NewGraph())
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	directed := core.NewGraph(core.WithDirected(true))
	require.NoError(t, directed.AddEdge("A", "B", 1))
	_, err = centrality.EdgeBetweenness(directed)
	require.ErrorIs(t, err, centrality.ErrDirectedGraph)
}

// bfsHops returns hop distances from source to every reachable vertex.
func bfsHops(t *testing.T, g *core.Graph, source string) map[string]int {
	t.Helper()
	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, err := g.NeighborIDs(u)
		require.NoError(t, err)
		for _, v := range nbrs {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// barbell builds two unit triangles {A,B,C} and {D,E,F} joined by C—D.
func barbell() *core.Graph {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"D", "E"}, {"E", "F"}, {"F", "D"},
		{"C", "D"},
	} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	return g
}
