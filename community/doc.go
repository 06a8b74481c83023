// Package community splits a flight network into communities: groups of
// airports more densely connected to each other than to the rest.
//
// Two detectors are provided, plus the connected-components primitive
// they both rely on:
//
//   - GirvanNewman: repeatedly scores every edge with betweenness
//     centrality, removes the single highest-scoring edge (the one
//     carrying the most inter-community traffic), and recomputes the
//     components, stopping as soon as the graph splits. Betweenness is
//     recomputed from scratch after every removal — the algorithm is
//     deliberately O(iterations × full recompute) with no incremental
//     shortcut. The caller's graph is never mutated; removals happen on
//     an owned clone.
//   - LabelPropagation: every vertex starts labeled with its own ID and
//     repeatedly adopts the most frequent label among its neighbors,
//     sweeping all vertices in sorted order until a full sweep changes
//     nothing. Ties go to the lexicographically smallest label, which —
//     together with the fixed sweep order — makes the outcome
//     reproducible, though not guaranteed optimal: label propagation is
//     a heuristic and can merge weakly separated groups.
//
// Components uses an explicit queue rather than recursion, so
// arbitrarily deep graphs cannot exhaust the call stack.
//
// Complexity:
//
//	– Components:       O(V + E).
//	– GirvanNewman:     O(removals · V·E).
//	– LabelPropagation: O(sweeps · (V + E)).
package community
