// Package maxflow computes maximum s→t flow on a dense capacitated network
// using the Edmonds–Karp algorithm (breadth-first shortest augmenting paths).
//
// What:
//
//   - Network holds an n×n residual matrix (flat, row-major, allocated once),
//     per-node adjacency lists frozen at edge-insertion time, and the running
//     flow value.
//   - AddEdge registers a directed capacity u→v; repeated calls for the same
//     ordered pair accumulate. The first connection between two nodes, in
//     either direction, links them in both adjacency lists so the search can
//     traverse reverse residual arcs.
//   - Solve repeatedly finds the fewest-edge augmenting path by BFS, pushes
//     the bottleneck along it, and stops when the sink becomes unreachable;
//     the accumulated value is then maximal by the max-flow/min-cut theorem.
//   - UsedEdges reads the frozen residual state: for every pair i<j the
//     reverse arc residual[j][i] records exactly the net flow pushed i→j
//     (when edges were inserted one way; bidirectional callers compensate by
//     the initial reverse capacity — see the design package).
//   - MinCutReachable marks the source side of a minimum cut.
//
// Invariant: for every pair {u,v}, residual[u][v] + residual[v][u] equals the
// total capacity ever inserted between them. Augmentation only moves capacity
// from the forward to the backward direction; it never creates or destroys it.
//
// Determinism: BFS visits neighbors in AddEdge insertion order, so identical
// insertion sequences produce identical augmenting paths, residual states and
// used-edge reports.
//
// Concurrency: a Network is owned by one goroutine; no internal locking.
// Solve always runs to completion — termination is bounded by the
// Edmonds–Karp argument, no cancellation points exist.
//
// Complexity:
//
//   - AddEdge:  O(1).
//   - Solve:    O(V·E²) time, O(V²) memory (the dense residual matrix).
//   - UsedEdges, MinCutReachable: O(V²) time.
//
// Errors:
//
//   - ErrInvalidOrder: New called with n ≤ 0.
//   - ErrNodeOutOfRange: an AddEdge endpoint or accessor index outside [0,n).
//   - ErrSelfLoop: AddEdge with u == v.
//   - ErrNegativeCapacity: AddEdge with cap < 0.
//   - ErrSourceOutOfRange, ErrSinkOutOfRange, ErrSameSourceSink: Solve
//     argument validation; a disconnected source/sink pair is NOT an error
//     and yields flow 0.
package maxflow
