// SPDX-License-Identifier: MIT
package maxflow

// UsedEdges scans every ordered pair i<j and reports the reverse residual
// residual[j][i] when positive. When all capacity between i and j was
// granted in the i→j direction, that cell started at zero and grew by
// exactly the net flow pushed i→j, so the report is a per-edge flow
// decomposition of the solved network. Callers that granted capacity in
// both directions must subtract the initial reverse grant to recover the
// net flow (the design package does this for undirected corridors).
//
// The result is ordered by (U, V) ascending and is stable across calls:
// extraction only reads the frozen residual state. Complexity: O(V²).
func (nw *Network) UsedEdges() []UsedEdge {
	used := make([]UsedEdge, 0, nw.n)
	for i := 0; i < nw.n; i++ {
		for j := i + 1; j < nw.n; j++ {
			if back := nw.res.at(j, i); back > 0 {
				used = append(used, UsedEdge{U: i, V: j, Flow: back})
			}
		}
	}
	return used
}

// MinCutReachable returns the source side of a minimum cut: reachable[v]
// is true when v can still be reached from source through arcs with
// positive residual capacity. Call it after Solve, when no augmenting path
// remains; every arc from the true side to the false side is then
// saturated and their original capacities sum to the maximum flow.
// Complexity: O(V+E).
func (nw *Network) MinCutReachable(source int) ([]bool, error) {
	if source < 0 || source >= nw.n {
		return nil, ErrSourceOutOfRange
	}
	reachable := make([]bool, nw.n)
	reachable[source] = true
	queue := make([]int, 0, nw.n)
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range nw.adj[u] {
			if reachable[v] || nw.res.at(u, v) <= 0 {
				continue
			}
			reachable[v] = true
			queue = append(queue, v)
		}
	}
	return reachable, nil
}
