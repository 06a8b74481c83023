// Package dijkstra implements single-source shortest-path search over
// weighted graphs with non-negative edge weights, in two modes.
//
// Route (single-target) answers point-to-point queries: a min-heap
// Dijkstra that halts the moment the target is settled. Ties among
// equal-distance paths are broken arbitrarily by heap order; an
// unreachable target is reported as Found=false, never as an error.
//
// AllShortestPaths (all-co-optimal-paths) computes, for one source, the
// minimum distance to every vertex AND every path achieving that
// minimum. The relaxation rule distinguishes strict improvement (replace
// the neighbor's path set) from an exact tie (append the newly found
// paths), so all co-optimal paths accumulate. The heap stores only
// (distance, vertex) pairs; path sets live in a side table, and any pop
// whose distance exceeds the best known is stale and skipped.
//
// Tie detection uses exact float64 equality. Weights come straight from
// flight records rather than accumulated float noise, so equal routes
// compare equal; if inputs do carry noise the engine degrades by
// under-accumulating co-optimal paths, never by failing.
//
// Beware of combinatorial blow-up: a graph with many equal-cost
// alternatives can hold exponentially many co-optimal paths, and
// AllShortestPaths materializes all of them.
//
// Complexity:
//
//	– Route:            O((V + E) log V) time, O(V + E) memory.
//	– AllShortestPaths: O((V + E) log V) heap work plus the total size
//	  of all stored paths, which dominates on tie-heavy graphs.
package dijkstra
