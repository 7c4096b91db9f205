// SPDX-License-Identifier: MIT
package habitat

import (
	"errors"

	"github.com/tidwall/btree"
)

// defaultSeed replaces a zero Random seed so default runs stay reproducible.
const defaultSeed int64 = 1

var (
	// ErrNoPatches is returned by NewNetwork when the patch count is not positive.
	ErrNoPatches = errors.New("habitat: patch count must be positive")

	// ErrPatchOutOfRange is returned by patch accessors for an index outside [0, Len).
	ErrPatchOutOfRange = errors.New("habitat: patch index out of range")

	// ErrSourceOutOfRange is returned by NewNetwork when the source index is invalid.
	ErrSourceOutOfRange = errors.New("habitat: source index out of range")

	// ErrSinkOutOfRange is returned by NewNetwork when the sink index is invalid.
	ErrSinkOutOfRange = errors.New("habitat: sink index out of range")

	// ErrSameSourceSink is returned by NewNetwork when source and sink coincide.
	ErrSameSourceSink = errors.New("habitat: source and sink must differ")

	// ErrNonPositiveRegion is returned by Random for a degenerate region side.
	ErrNonPositiveRegion = errors.New("habitat: region side must be positive")

	// ErrNetworkFrozen is returned by SetLocation and BuildCorridors once the
	// corridor registry has been derived; locations and capacities are fixed
	// from that point on.
	ErrNetworkFrozen = errors.New("habitat: network frozen after corridor build")
)

// Corridor is one feasible passage between patches A and B, with A < B.
// Capacity is the seasonal throughput assigned by the terrain rule.
type Corridor struct {
	A, B     int
	Capacity int64
}

// corridorLess orders corridors by (A, B); Capacity is not part of the key.
func corridorLess(a, b Corridor) bool {
	if a.A != b.A {
		return a.A < b.A
	}

	return a.B < b.B
}

func newRegistry() *btree.BTreeG[Corridor] {
	return btree.NewBTreeG[Corridor](corridorLess)
}
