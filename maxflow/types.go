// SPDX-License-Identifier: MIT
package maxflow

import "errors"

// Sentinel errors returned by Network construction, mutation and solving.
// Callers branch with errors.Is.
var (
	// ErrInvalidOrder is returned by New when the requested node count is not positive.
	ErrInvalidOrder = errors.New("maxflow: network order must be positive")

	// ErrNodeOutOfRange is returned when an edge endpoint or accessor index
	// falls outside [0, Order).
	ErrNodeOutOfRange = errors.New("maxflow: node index out of range")

	// ErrSelfLoop is returned by AddEdge when both endpoints coincide.
	ErrSelfLoop = errors.New("maxflow: self-loops are not allowed")

	// ErrNegativeCapacity is returned by AddEdge for a capacity below zero.
	// Zero is legal and ignored.
	ErrNegativeCapacity = errors.New("maxflow: negative edge capacity")

	// ErrSourceOutOfRange is returned by Solve when the source index is invalid.
	ErrSourceOutOfRange = errors.New("maxflow: source index out of range")

	// ErrSinkOutOfRange is returned by Solve when the sink index is invalid.
	ErrSinkOutOfRange = errors.New("maxflow: sink index out of range")

	// ErrSameSourceSink is returned by Solve when source and sink coincide.
	ErrSameSourceSink = errors.New("maxflow: source and sink must differ")
)

// UsedEdge reports the net flow recovered from one reverse residual arc:
// Flow units crossed from U to V, with U < V. See Network.UsedEdges.
type UsedEdge struct {
	U, V int
	Flow int64
}

// AugmentHook observes one augmentation: the path from source to sink
// (inclusive) and the bottleneck pushed along it. The path slice is reused
// between calls; copy it to retain.
type AugmentHook func(path []int, bottleneck int64)

// Option customizes a Network at construction time.
type Option func(*Network)

// WithAugmentHook installs fn to be invoked after every augmenting step.
// Useful for tracing and for asserting path-length monotonicity in tests.
// A nil fn disables the hook.
func WithAugmentHook(fn AugmentHook) Option {
	return func(nw *Network) { nw.onAugment = fn }
}
