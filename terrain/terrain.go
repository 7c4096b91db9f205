package terrain

import "math"

// Distance returns the Euclidean separation of a and b.
// Defined for all finite coordinates; pure, no allocations.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Feasible reports whether a corridor between a and b lies within the
// rule's range. Pairs at exactly MaxDistance are feasible (capacity 1).
// Complexity: O(1).
func (r Rule) Feasible(a, b Point) bool {
	return Distance(a, b) <= r.MaxDistance
}

// Capacity returns the corridor capacity between a and b under the rule:
// 0 beyond MaxDistance, otherwise max(1, ⌊Base·(1−d/MaxDistance)²⌋).
// The quadratic falloff models terrain difficulty growing with corridor
// length; the floor keeps every feasible corridor visible to flow analysis.
// Callers must hold a validated rule (NewRule or Validate); Capacity itself
// performs no checks.
// Complexity: O(1).
func (r Rule) Capacity(a, b Point) int64 {
	d := Distance(a, b)
	if d > r.MaxDistance {
		return 0 // out of range: no corridor
	}

	// Quadratic suitability: 1 at d=0, 0 at d=MaxDistance.
	normalized := 1.0 - d/r.MaxDistance
	c := int64(float64(r.Base) * normalized * normalized)
	if c < MinCorridorCapacity {
		return MinCorridorCapacity
	}

	return c
}
