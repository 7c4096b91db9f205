// SPDX-License-Identifier: MIT
package habitat

import (
	"math/rand"

	"github.com/katalvlaran/wildflow/terrain"
)

// Random scatters n patches uniformly over a square region of the given
// side, pinning patch 0 at the origin corner as the source and patch n-1 at
// the far corner as the sink. Interior patches draw X then Y from a single
// stream, so the same (n, region, seed) triple always yields the same
// landscape.
//
// Policy: seed==0 ⇒ fixed default seed; any other seed is used verbatim.
//
// Complexity: O(n).
func Random(n int, region float64, seed int64) (*Network, error) {
	if region <= 0 {
		return nil, ErrNonPositiveRegion
	}
	nw, err := NewNetwork(n, 0, n-1)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// Patch 0 stays at the zero-value origin.
	nw.patches[n-1] = terrain.Point{X: region, Y: region}
	for i := 1; i < n-1; i++ {
		nw.patches[i] = terrain.Point{X: rng.Float64() * region, Y: rng.Float64() * region}
	}

	return nw, nil
}
