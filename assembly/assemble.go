// SPDX-License-Identifier: MIT
package assembly

import "strings"

// Assemble runs the chosen heuristic and merges the resulting order.
//
// Complexity: O(n²) walk plus O(total sequence length) merge.
func (p *Problem) Assemble(h Heuristic) (Result, error) {
	var (
		start int
		score func(current, candidate int) int
	)
	switch h {
	case Greedy:
		start, score = 0, p.at
	case NearestNeighbor:
		start, score = p.busiestFragment(), p.at
	case Savings:
		savings := p.bestOutgoing()
		start = argMax(savings)
		score = func(current, candidate int) int {
			return p.at(current, candidate) + savings[candidate]
		}
	default:
		return Result{}, ErrUnknownHeuristic
	}

	order := p.walk(start, score)
	seq, total := p.merge(order)

	return Result{Order: order, Sequence: seq, TotalOverlap: total}, nil
}

// busiestFragment is the nearest-neighbor start rule: the fragment with the
// largest total outgoing overlap, lowest index on ties.
func (p *Problem) busiestFragment() int {
	start, best := 0, 0
	for i := 0; i < p.n; i++ {
		total := 0
		for j := 0; j < p.n; j++ {
			total += p.at(i, j)
		}
		if total > best {
			best = total
			start = i
		}
	}

	return start
}

// bestOutgoing returns, per fragment, the longest overlap it can offer as a
// successor step.
func (p *Problem) bestOutgoing() []int {
	out := make([]int, p.n)
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			if j != i && p.at(i, j) > out[i] {
				out[i] = p.at(i, j)
			}
		}
	}

	return out
}

func argMax(v []int) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}

	return best
}

// walk visits every fragment once: from the current fragment, take the
// unused candidate with the highest score, lowest index on ties. Scores are
// never negative, so an all-zero row degrades to first-unused order and the
// walk always completes.
func (p *Problem) walk(start int, score func(current, candidate int) int) []int {
	used := make([]bool, p.n)
	order := make([]int, 0, p.n)
	used[start] = true
	order = append(order, start)

	current := start
	for step := 1; step < p.n; step++ {
		next, best := -1, -1
		for j := 0; j < p.n; j++ {
			if used[j] {
				continue
			}
			if s := score(current, j); s > best {
				best = s
				next = j
			}
		}
		used[next] = true
		order = append(order, next)
		current = next
	}

	return order
}

// merge glues the fragments along order, dropping each collapsed overlap
// once, and reports the total length collapsed.
func (p *Problem) merge(order []int) (string, int) {
	var sb strings.Builder
	sb.WriteString(p.fragments[order[0]])
	total := 0
	for i := 1; i < len(order); i++ {
		ov := p.at(order[i-1], order[i])
		total += ov
		sb.WriteString(p.fragments[order[i]][ov:])
	}

	return sb.String(), total
}

// Evaluate scores order: the overlap it collapses and, when the true
// sequence is known, positionwise accuracy as a percentage of the longer
// sequence's length.
func (p *Problem) Evaluate(order []int, original string) (Evaluation, error) {
	if len(order) != p.n {
		return Evaluation{}, ErrBadOrder
	}
	seen := make([]bool, p.n)
	for _, idx := range order {
		if idx < 0 || idx >= p.n || seen[idx] {
			return Evaluation{}, ErrBadOrder
		}
		seen[idx] = true
	}

	seq, total := p.merge(order)
	ev := Evaluation{TotalOverlap: total}
	if original == "" {
		return ev, nil
	}

	short, long := len(seq), len(original)
	if short > long {
		short, long = long, short
	}
	matches := 0
	for i := 0; i < short; i++ {
		if seq[i] == original[i] {
			matches++
		}
	}
	ev.Accuracy = 100 * float64(matches) / float64(long)

	return ev, nil
}
