// Package habitat models a landscape of habitat patches and derives the
// corridor network that connects them.
//
// What:
//
//   - Network: a fixed roster of patches with planar coordinates, a
//     designated source and sink, and an ordered corridor registry.
//   - BuildCorridors: scans every unordered pair of patches under a
//     terrain.Rule and records a corridor for each pair within range,
//     carrying the rule's capacity. Pairs out of range are not stored.
//     The build runs once; afterwards the network is frozen, so locations
//     and capacities cannot drift apart.
//   - Random: scatters patches uniformly over a square region, pinning the
//     source at the origin corner and the sink at the far corner.
//
// Determinism:
//
//   - Corridors live in a B-tree keyed by (A, B) with A < B; iteration is
//     ascending by pair regardless of discovery order, so downstream flow
//     construction sees a stable edge sequence.
//   - Random follows the fixed-seed policy: seed==0 selects a stable
//     default, any other seed is used verbatim.
//
// Complexity:
//
//   - BuildCorridors: Θ(n²) capacity evaluations, O(k·log k) registry
//     inserts for k feasible corridors.
//   - Corridors: O(k) to materialize; CapacityBetween: O(log k).
//
// Errors:
//
//   - ErrNoPatches, ErrSourceOutOfRange, ErrSinkOutOfRange,
//     ErrSameSourceSink: NewNetwork validation.
//   - ErrPatchOutOfRange: SetLocation/Location with a bad index.
//   - ErrNetworkFrozen: SetLocation or BuildCorridors after the build.
//   - ErrNonPositiveRegion: Random with a degenerate region.
package habitat
