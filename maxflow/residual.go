// SPDX-License-Identifier: MIT
package maxflow

// residual is a dense n×n capacity matrix in one flat row-major slice.
// A single allocation keeps augmentation cache-friendly; cell (u,v) lives
// at u*n + v. Bounds are enforced by the Network API, so the accessors
// here stay unchecked on the hot path.
type residual struct {
	n    int
	data []int64
}

func newResidual(n int) residual {
	return residual{n: n, data: make([]int64, n*n)}
}

func (r residual) index(u, v int) int { return u*r.n + v }

// at returns the remaining capacity on the directed arc u→v.
func (r residual) at(u, v int) int64 { return r.data[r.index(u, v)] }

// add shifts the arc u→v by delta; negative delta consumes capacity.
func (r residual) add(u, v int, delta int64) { r.data[r.index(u, v)] += delta }
