// Package centrality computes importance scores for vertices and edges
// of a flight network: edge betweenness, node betweenness, closeness,
// in-degree, and PageRank.
//
// Every score is a compute-once snapshot returned as a plain map; no
// incremental update is supported. All algorithms read the graph without
// mutating it.
//
//   - EdgeBetweenness: Brandes-style accumulation — one unweighted BFS
//     per source counting shortest paths (σ), then dependency
//     back-propagation crediting each edge with its share of all-pairs
//     shortest paths. Undirected only; scores are halved to correct for
//     visiting each pair from both endpoints.
//   - Betweenness: node scores derived from the all-co-optimal-paths
//     engine — when a source-target pair has k equally short routes,
//     each intermediate vertex on each route earns 1/k, normalized by
//     (N−1)(N−2).
//   - Closeness: per vertex, the sum of reciprocal shortest-path
//     distances to every reachable other vertex; isolated vertices
//     score 0.
//   - InDegree: incoming edge count over N−1.
//   - PageRank: weighted power iteration with damping; a vertex with no
//     outgoing weight redistributes its mass uniformly instead of
//     dividing by zero. Hitting the iteration cap is reported through
//     PageRankResult.Converged alongside the best-effort scores,
//     never as an error.
//
// Complexity:
//
//	– EdgeBetweenness: O(V·E) time, O(V + E) memory.
//	– Betweenness / Closeness: one Dijkstra per source,
//	  O(V·(V + E) log V) plus path storage for Betweenness.
//	– InDegree: O(V + E).
//	– PageRank: O(iterations · (V + E)).
package centrality
