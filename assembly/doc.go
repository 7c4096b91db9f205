// Package assembly reconstructs a DNA sequence from overlapping fragments.
//
// Shotgun sequencing leaves a pile of short reads; putting them back
// together optimally is a Hamiltonian-path search over the overlap graph,
// so exact answers are off the table beyond toy sizes. This package builds
// the graph exactly and then settles for constructive heuristics.
//
// What:
//
//   - Problem: a fragment set plus its dense overlap graph, where entry
//     (i, j) is the longest suffix of fragment i matching a prefix of
//     fragment j, recorded only from the minimum overlap up.
//   - Assemble: one of three deterministic walks over the graph — Greedy,
//     NearestNeighbor, Savings — merging the visited fragments into a
//     single sequence with every overlap collapsed once.
//   - Evaluate: scores a visiting order by total collapsed overlap and, when
//     the true sequence is known, positionwise accuracy.
//   - RandomFragments: cuts reproducible fragment sets out of a random
//     sequence for benchmarks and experiments.
//
// Determinism: all walks break ties toward the lowest fragment index and
// RandomFragments follows the fixed-seed policy, so a given input always
// produces the same assembly.
//
// Complexity: graph construction O(n²·L²) for n fragments of length L;
// each walk O(n²); merging O(total sequence length).
//
// Errors: construction sentinels (ErrNoFragments, ErrEmptyFragment,
// ErrInvalidMinOverlap), accessor bounds (ErrFragmentOutOfRange), dispatch
// (ErrUnknownHeuristic), evaluation (ErrBadOrder), and generator limits
// (ErrInvalidFragmentLength, ErrTooManyFragments).
package assembly
