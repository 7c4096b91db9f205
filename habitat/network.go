// SPDX-License-Identifier: MIT
package habitat

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/wildflow/terrain"
)

// Network is a roster of habitat patches with a designated source and sink,
// plus the corridor registry derived from their geometry. A Network is owned
// by one goroutine; no internal locking.
type Network struct {
	patches  []terrain.Point
	source   int
	sink     int
	registry *btree.BTreeG[Corridor]
	built    bool
}

// NewNetwork allocates a network of n patches, all at the origin until placed
// with SetLocation, routing from source to sink.
func NewNetwork(n, source, sink int) (*Network, error) {
	if n <= 0 {
		return nil, ErrNoPatches
	}
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkOutOfRange
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	return &Network{
		patches:  make([]terrain.Point, n),
		source:   source,
		sink:     sink,
		registry: newRegistry(),
	}, nil
}

// Len returns the patch count.
func (nw *Network) Len() int { return len(nw.patches) }

// Source returns the index animals disperse from.
func (nw *Network) Source() int { return nw.source }

// Sink returns the index animals disperse to.
func (nw *Network) Sink() int { return nw.sink }

// SetLocation places patch i at p. Placement happens once, before
// BuildCorridors; a frozen network rejects relocation so the registry can
// never disagree with the geometry it was derived from.
func (nw *Network) SetLocation(i int, p terrain.Point) error {
	if nw.built {
		return ErrNetworkFrozen
	}
	if i < 0 || i >= len(nw.patches) {
		return ErrPatchOutOfRange
	}
	nw.patches[i] = p

	return nil
}

// Location returns the coordinates of patch i.
func (nw *Network) Location(i int) (terrain.Point, error) {
	if i < 0 || i >= len(nw.patches) {
		return terrain.Point{}, ErrPatchOutOfRange
	}

	return nw.patches[i], nil
}

// BuildCorridors derives the corridor registry from the patch locations:
// every unordered pair within the rule's range gets one corridor carrying
// the rule's capacity. The build runs once; afterwards both locations and
// the registry are frozen. A network that should be rebuilt under another
// rule is simply constructed again.
func (nw *Network) BuildCorridors(rule terrain.Rule) error {
	if nw.built {
		return ErrNetworkFrozen
	}
	if err := rule.Validate(); err != nil {
		return err
	}

	for i := 0; i < len(nw.patches); i++ {
		for j := i + 1; j < len(nw.patches); j++ {
			if c := rule.Capacity(nw.patches[i], nw.patches[j]); c > 0 {
				nw.registry.Set(Corridor{A: i, B: j, Capacity: c})
			}
		}
	}
	nw.built = true

	return nil
}

// Built reports whether the corridor registry has been derived.
func (nw *Network) Built() bool { return nw.built }

// NumCorridors returns the registry size.
func (nw *Network) NumCorridors() int { return nw.registry.Len() }

// Corridors materializes the registry ascending by (A, B).
func (nw *Network) Corridors() []Corridor {
	out := make([]Corridor, 0, nw.registry.Len())
	nw.registry.Scan(func(c Corridor) bool {
		out = append(out, c)

		return true
	})

	return out
}

// CapacityBetween returns the corridor capacity linking patches a and b, in
// either argument order, or 0 when no corridor links them.
func (nw *Network) CapacityBetween(a, b int) int64 {
	if a > b {
		a, b = b, a
	}
	c, ok := nw.registry.Get(Corridor{A: a, B: b})
	if !ok {
		return 0
	}

	return c.Capacity
}
