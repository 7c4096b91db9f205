// SPDX-License-Identifier: MIT
package assembly

import "math/rand"

// nucleotides is the alphabet fragments are drawn from.
const nucleotides = "ACGT"

// RandomFragments samples a reproducible assembly instance: it draws a
// random sequence of seqLen bases, cuts n fragments of length fragLen at
// distinct start positions, and shuffles them so the cutting order leaves
// no trace. Returns the shuffled fragments and the true sequence for
// evaluation.
//
// Policy: seed==0 ⇒ fixed default seed; otherwise the seed is used verbatim.
//
// Complexity: expected O(seqLen + n·fragLen) while start positions stay
// sparse relative to the sequence.
func RandomFragments(n, fragLen, seqLen int, seed int64) ([]string, string, error) {
	if n <= 0 {
		return nil, "", ErrNoFragments
	}
	if fragLen <= 0 || fragLen > seqLen {
		return nil, "", ErrInvalidFragmentLength
	}
	starts := seqLen - fragLen + 1
	if n > starts {
		return nil, "", ErrTooManyFragments
	}

	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	seq := make([]byte, seqLen)
	for i := range seq {
		seq[i] = nucleotides[rng.Intn(len(nucleotides))]
	}
	original := string(seq)

	fragments := make([]string, 0, n)
	taken := make(map[int]struct{}, n)
	for len(fragments) < n {
		pos := rng.Intn(starts)
		if _, dup := taken[pos]; dup {
			continue
		}
		taken[pos] = struct{}{}
		fragments = append(fragments, original[pos:pos+fragLen])
	}
	rng.Shuffle(len(fragments), func(i, j int) {
		fragments[i], fragments[j] = fragments[j], fragments[i]
	})

	return fragments, original, nil
}
