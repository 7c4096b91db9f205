// Package terrain provides the geometric layer of wildflow: planar points,
// Euclidean separation, and the distance→capacity rule that turns a pair of
// habitat locations into an integer corridor capacity.
//
// What:
//
//   - Point is a location on the study plane (kilometres in the reference domain).
//   - Distance computes the Euclidean separation of two points.
//   - Rule maps a pair of points to a corridor capacity: beyond MaxDistance the
//     corridor is infeasible (capacity 0); within range the capacity decays
//     quadratically with distance and is floored at MinCorridorCapacity so a
//     geometrically feasible corridor is never lost to integer truncation.
//
// Why:
//
//   - Terrain difficulty grows with corridor length; a quadratic falloff of
//     carrying capacity is the standard first-order suitability model.
//   - Flooring at 1 preserves reachability: downstream flow analysis must see
//     every feasible corridor, however marginal.
//
// Capacity formula, for separation d ≤ MaxDistance:
//
//	capacity = max(1, ⌊Base · (1 − d/MaxDistance)²⌋)
//
// Complexity: every function is O(1) with no allocations.
//
// Errors:
//
//   - ErrNonPositiveRange: Rule constructed with MaxDistance ≤ 0.
//   - ErrNonPositiveBase: Rule constructed with Base ≤ 0.
//
// All functions are pure and safe for concurrent use.
package terrain
