// Package design turns a habitat corridor network into a construction plan
// by reduction to maximum flow.
//
// What:
//
//   - Solve grants every corridor's capacity in both directions on a
//     maxflow.Network (animals migrate either way), runs the solver between
//     the landscape's source and sink, and reads the plan back from the
//     frozen residual state.
//   - Plan carries the seasonal throughput, the corridors that actually
//     carry animals with their net load, and the source side of the
//     bottleneck cut.
//
// Net load recovery: granting capacity c both ways starts the reverse cell
// residual[B][A] at c rather than zero, so the raw reverse residual overstates
// usage by exactly c. Solve subtracts that initial grant; the sign of the
// remainder tells the direction, its magnitude the load. The magnitude never
// exceeds c.
//
// Determinism: corridors arrive ascending by pair from the habitat registry,
// so the engine sees a stable insertion order and identical landscapes yield
// identical plans.
//
// Complexity: O(V·E²) solve on top of O(E) grants; extraction is O(E).
//
// Errors: ErrNilNetwork for a nil landscape, ErrNotBuilt before
// BuildCorridors has run; engine sentinels pass through unwrapped.
package design
