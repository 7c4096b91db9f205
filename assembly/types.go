// SPDX-License-Identifier: MIT
package assembly

import "errors"

// DefaultMinOverlap is the shortest suffix/prefix match worth an edge in the
// overlap graph.
const DefaultMinOverlap = 3

// defaultSeed replaces a zero RandomFragments seed so default runs stay
// reproducible.
const defaultSeed int64 = 1

var (
	// ErrNoFragments is returned when a problem or generator is asked to
	// work with zero fragments.
	ErrNoFragments = errors.New("assembly: fragment count must be positive")

	// ErrEmptyFragment is returned by NewProblem when a fragment is empty.
	ErrEmptyFragment = errors.New("assembly: empty fragment")

	// ErrInvalidMinOverlap is returned for a minimum overlap below one.
	ErrInvalidMinOverlap = errors.New("assembly: minimum overlap must be positive")

	// ErrFragmentOutOfRange is returned by accessors for an index outside [0, Len).
	ErrFragmentOutOfRange = errors.New("assembly: fragment index out of range")

	// ErrUnknownHeuristic is returned by Assemble for an unmapped strategy.
	ErrUnknownHeuristic = errors.New("assembly: unknown heuristic")

	// ErrBadOrder is returned by Evaluate when the order is not a
	// permutation of the fragment indices.
	ErrBadOrder = errors.New("assembly: order is not a fragment permutation")

	// ErrInvalidFragmentLength is returned by RandomFragments when the
	// fragment length is non-positive or exceeds the sequence length.
	ErrInvalidFragmentLength = errors.New("assembly: invalid fragment length")

	// ErrTooManyFragments is returned by RandomFragments when the requested
	// count exceeds the distinct start positions available.
	ErrTooManyFragments = errors.New("assembly: more fragments than distinct positions")
)

// Heuristic selects the assembly strategy.
//
//   - Greedy — walk from fragment 0, always taking the unused successor
//     with the longest overlap from the current fragment.
//   - NearestNeighbor — the same walk, started at the fragment with the
//     largest total outgoing overlap.
//   - Savings — scores candidates by current overlap plus the best overlap
//     they can offer afterwards, started at the fragment with the best
//     future offer.
//
// Every strategy resolves ties toward the lowest fragment index.
type Heuristic int

const (
	Greedy Heuristic = iota
	NearestNeighbor
	Savings
)

// String returns the label used in logs and result tables.
func (h Heuristic) String() string {
	switch h {
	case Greedy:
		return "greedy"
	case NearestNeighbor:
		return "nearest-neighbor"
	case Savings:
		return "savings"
	default:
		return "unknown"
	}
}

// Result is one assembly attempt.
type Result struct {
	// Order is the fragment visiting order, a permutation of 0..Len-1.
	Order []int

	// Sequence is the merge of the fragments along Order with every
	// consecutive overlap collapsed once.
	Sequence string

	// TotalOverlap is the sum of consecutive overlaps along Order; the
	// larger it is, the shorter the merged sequence.
	TotalOverlap int
}

// Evaluation scores one visiting order.
type Evaluation struct {
	TotalOverlap int

	// Accuracy is the percentage of positions that match the true sequence,
	// measured against the longer of the two; 0 when the truth is unknown.
	Accuracy float64
}

// Option customizes problem construction.
type Option func(*Problem)

// WithMinOverlap sets the shortest match recorded in the overlap graph.
func WithMinOverlap(k int) Option {
	return func(p *Problem) { p.minOverlap = k }
}
