// SPDX-License-Identifier: MIT
package maxflow

import "math"

// Network is a capacitated flow network over nodes 0..n-1.
// The zero value is not usable; construct with New.
type Network struct {
	n    int
	res  residual
	adj  [][]int
	flow int64

	onAugment AugmentHook
	path      []int // scratch for the hook, reused across augmentations
}

// New returns an empty network over n nodes.
func New(n int, opts ...Option) (*Network, error) {
	if n <= 0 {
		return nil, ErrInvalidOrder
	}
	nw := &Network{
		n:   n,
		res: newResidual(n),
		adj: make([][]int, n),
	}
	for _, opt := range opts {
		opt(nw)
	}
	return nw, nil
}

// Order returns the node count fixed at construction.
func (nw *Network) Order() int { return nw.n }

// Value returns the flow accumulated by Solve so far.
func (nw *Network) Value() int64 { return nw.flow }

// Residual returns the remaining capacity on the directed arc u→v.
func (nw *Network) Residual(u, v int) (int64, error) {
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return 0, ErrNodeOutOfRange
	}
	return nw.res.at(u, v), nil
}

// AddEdge grants capacity units on the directed arc u→v. Repeated grants
// for the same ordered pair accumulate. The first grant connecting u and v,
// in either direction, registers each node in the other's adjacency list so
// the search can later walk reverse residual arcs. A zero grant is a no-op:
// absent arcs are simply never stored.
func (nw *Network) AddEdge(u, v int, capacity int64) error {
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return ErrNodeOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	if capacity == 0 {
		return nil
	}
	// Both cells zero means the pair was never connected: the invariant
	// residual[u][v]+residual[v][u] == total granted capacity holds from the
	// first grant on, and augmentation never drives the sum to zero.
	if nw.res.at(u, v) == 0 && nw.res.at(v, u) == 0 {
		nw.adj[u] = append(nw.adj[u], v)
		nw.adj[v] = append(nw.adj[v], u)
	}
	nw.res.add(u, v, capacity)
	return nil
}

// Solve augments along fewest-edge paths until the sink becomes unreachable,
// then returns the total flow accumulated on this network. Solving mutates
// the residual state and leaves it frozen at the optimum; calling Solve again
// on the same pair finds no augmenting path and reports the same total.
func (nw *Network) Solve(source, sink int) (int64, error) {
	if source < 0 || source >= nw.n {
		return 0, ErrSourceOutOfRange
	}
	if sink < 0 || sink >= nw.n {
		return 0, ErrSinkOutOfRange
	}
	if source == sink {
		return 0, ErrSameSourceSink
	}

	parent := make([]int, nw.n)
	for nw.augmentingPath(source, sink, parent) {
		// Walk sink→source once to find the bottleneck, then once more to
		// move that amount across every arc on the path.
		bottleneck := int64(math.MaxInt64)
		for v := sink; v != source; v = parent[v] {
			if r := nw.res.at(parent[v], v); r < bottleneck {
				bottleneck = r
			}
		}
		for v := sink; v != source; v = parent[v] {
			nw.res.add(parent[v], v, -bottleneck)
			nw.res.add(v, parent[v], bottleneck)
		}
		nw.flow += bottleneck

		if nw.onAugment != nil {
			nw.onAugment(nw.pathOf(source, sink, parent), bottleneck)
		}
	}
	return nw.flow, nil
}

// augmentingPath runs one BFS over arcs with positive residual capacity,
// recording each node's predecessor. It returns the moment the sink is
// labeled, which is exactly what makes the discovered path a fewest-edge
// one. parent[source] points at source so the walk terminates there.
func (nw *Network) augmentingPath(source, sink int, parent []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source

	queue := make([]int, 0, nw.n)
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range nw.adj[u] {
			if parent[v] != -1 || nw.res.at(u, v) <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}
	return false
}

// pathOf materializes source..sink from the predecessor chain into the
// reusable scratch slice, source first.
func (nw *Network) pathOf(source, sink int, parent []int) []int {
	nw.path = nw.path[:0]
	for v := sink; ; v = parent[v] {
		nw.path = append(nw.path, v)
		if v == source {
			break
		}
	}
	for i, j := 0, len(nw.path)-1; i < j; i, j = i+1, j-1 {
		nw.path[i], nw.path[j] = nw.path[j], nw.path[i]
	}
	return nw.path
}
