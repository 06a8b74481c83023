// Package flow implements maximum-flow and minimum-cut computation over
// directed capacity graphs, the engine behind airnet's network
// partitioning: removing the min-cut edges splits the flight network
// into two disconnected halves with the least total capacity removed.
//
// Algorithms:
//
//   - EdmondsKarp: Ford–Fulkerson with BFS augmenting-path search, which
//     always augments along a shortest-hop path and therefore terminates
//     within O(V·E) augmentations.
//   - MinCut: runs EdmondsKarp, then walks the final residual graph from
//     the source along strictly positive residual edges; the original
//     edges crossing from the reachable set S to its complement form the
//     minimum cut. By max-flow/min-cut duality the cut's total capacity
//     equals the max-flow value.
//
// The engine never mutates the input graph: all flow bookkeeping happens
// on a residual Clone. Source and sink must be supplied explicitly — a
// “first two vertices” default would tie results to iteration order.
//
// A disconnected source/sink pair is a valid input, not an error: the
// max flow is 0 and the cut is every edge leaving the source's component.
//
// Complexity:
//
//	– EdmondsKarp: O(V·E²) time, O(V + E) memory.
//	– MinCut:      EdmondsKarp + O(V + E) reachability and cut scan.
package flow
