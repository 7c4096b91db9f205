// SPDX-License-Identifier: MIT
package design

import (
	"github.com/katalvlaran/wildflow/habitat"
	"github.com/katalvlaran/wildflow/maxflow"
)

// Solve reduces the landscape to a flow network and extracts the plan.
// Every corridor is granted in both directions with its full capacity; the
// solver then decides how much each direction actually carries.
func Solve(nw *habitat.Network, opts ...Option) (*Plan, error) {
	if nw == nil {
		return nil, ErrNilNetwork
	}
	if !nw.Built() {
		return nil, ErrNotBuilt
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	eng, err := maxflow.New(nw.Len(), maxflow.WithAugmentHook(o.hook))
	if err != nil {
		return nil, err
	}
	corridors := nw.Corridors()
	for _, c := range corridors {
		if err := eng.AddEdge(c.A, c.B, c.Capacity); err != nil {
			return nil, err
		}
		if err := eng.AddEdge(c.B, c.A, c.Capacity); err != nil {
			return nil, err
		}
	}

	flow, err := eng.Solve(nw.Source(), nw.Sink())
	if err != nil {
		return nil, err
	}

	loaded := make([]CorridorFlow, 0, len(corridors))
	for _, c := range corridors {
		back, err := eng.Residual(c.B, c.A)
		if err != nil {
			return nil, err
		}
		// back grew above the initial grant iff net flow went A→B; it fell
		// below iff net flow went B→A.
		net := back - c.Capacity
		if net < 0 {
			net = -net
		}
		if net > 0 {
			loaded = append(loaded, CorridorFlow{A: c.A, B: c.B, Flow: net})
		}
	}

	reachable, err := eng.MinCutReachable(nw.Source())
	if err != nil {
		return nil, err
	}

	return &Plan{MaxFlow: flow, Corridors: loaded, Reachable: reachable}, nil
}
