// SPDX-License-Identifier: MIT
package design

import (
	"errors"

	"github.com/katalvlaran/wildflow/maxflow"
)

var (
	// ErrNilNetwork is returned by Solve for a nil landscape.
	ErrNilNetwork = errors.New("design: nil habitat network")

	// ErrNotBuilt is returned by Solve when BuildCorridors has not run yet.
	// A built network with zero corridors is not an error; it yields the
	// degenerate zero-flow plan.
	ErrNotBuilt = errors.New("design: corridor network not built")
)

// CorridorFlow is one corridor of the plan: the pair A < B and the net load
// it carries, direction-agnostic, always positive and never above the
// corridor's capacity.
type CorridorFlow struct {
	A, B int
	Flow int64
}

// Plan is the outcome of one corridor design run.
type Plan struct {
	// MaxFlow is the seasonal animal throughput from source to sink.
	MaxFlow int64

	// Corridors lists the loaded corridors ascending by pair; corridors
	// carrying nothing are omitted.
	Corridors []CorridorFlow

	// Reachable marks the source side of the bottleneck cut: patches still
	// reachable through unsaturated corridors after the solve.
	Reachable []bool
}

type options struct {
	hook maxflow.AugmentHook
}

// Option customizes a Solve run.
type Option func(*options)

// WithAugmentHook forwards fn to the underlying engine; it observes every
// augmenting path and its bottleneck.
func WithAugmentHook(fn maxflow.AugmentHook) Option {
	return func(o *options) { o.hook = fn }
}
