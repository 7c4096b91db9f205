// Package terrain defines core types, options, and sentinel errors
// for the terrain subpackage of github.com/katalvlaran/wildflow.
package terrain

import "errors"

// Sentinel errors for rule construction.
var (
	// ErrNonPositiveRange indicates a Rule with MaxDistance ≤ 0.
	ErrNonPositiveRange = errors.New("terrain: maximum corridor distance must be positive")
	// ErrNonPositiveBase indicates a Rule with Base ≤ 0.
	ErrNonPositiveBase = errors.New("terrain: base capacity must be positive")
)

// DefaultBaseCapacity is the capacity of a zero-length corridor in the
// reference suitability model (animals per season at distance 0).
const DefaultBaseCapacity int64 = 100

// MinCorridorCapacity is the floor applied to every feasible corridor,
// guaranteeing that truncation never silently disconnects two patches
// that lie within range of each other.
const MinCorridorCapacity int64 = 1

// Point is a location on the study plane. Coordinates are in the same
// unit as Rule.MaxDistance (kilometres in the reference domain).
type Point struct {
	X, Y float64
}

// Rule converts the separation of two points into an integer corridor
// capacity. The zero value is not usable; construct via NewRule or
// validate a literal with Validate.
type Rule struct {
	// Base is the capacity at distance 0. Default DefaultBaseCapacity.
	Base int64
	// MaxDistance is the feasibility range: pairs farther apart than this
	// have no corridor at all. Must be positive.
	MaxDistance float64
}

// RuleOption customises a Rule during construction.
type RuleOption func(*Rule)

// WithBaseCapacity overrides the capacity at distance 0.
// Values ≤ 0 are rejected by NewRule with ErrNonPositiveBase.
func WithBaseCapacity(base int64) RuleOption {
	return func(r *Rule) { r.Base = base }
}

// NewRule builds a validated capacity rule for the given feasibility range.
// Returns ErrNonPositiveRange when maxDist ≤ 0, ErrNonPositiveBase when an
// option sets a non-positive base.
// Complexity: O(1).
func NewRule(maxDist float64, opts ...RuleOption) (Rule, error) {
	r := Rule{Base: DefaultBaseCapacity, MaxDistance: maxDist}
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}

	return r, nil
}

// Validate reports whether the rule lies in the supported domain.
// It exists so that rules built as struct literals can be checked at the
// same boundary NewRule enforces.
func (r Rule) Validate() error {
	if r.MaxDistance <= 0 {
		return ErrNonPositiveRange
	}
	if r.Base <= 0 {
		return ErrNonPositiveBase
	}

	return nil
}
