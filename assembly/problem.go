// SPDX-License-Identifier: MIT
package assembly

// Problem holds a fragment set and its dense overlap graph in one flat
// row-major slice: entry (i, j) is the longest suffix of fragment i that
// matches a prefix of fragment j, provided it reaches the minimum overlap.
// Diagonal entries stay zero. A Problem is immutable after construction.
type Problem struct {
	fragments  []string
	minOverlap int
	n          int
	overlap    []int
}

// Overlap returns the length of the longest suffix of a matching a prefix
// of b, provided it reaches minOverlap; candidates are scanned from the
// longest possible down, so identical strings overlap at their full length.
// A minOverlap below 1 is treated as 1.
func Overlap(a, b string, minOverlap int) int {
	if minOverlap < 1 {
		minOverlap = 1
	}
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for k := limit; k >= minOverlap; k-- {
		if a[len(a)-k:] == b[:k] {
			return k
		}
	}

	return 0
}

// NewProblem copies the fragment set and precomputes the overlap graph.
//
// Complexity: O(n²·L²) worst case for n fragments of length L.
func NewProblem(fragments []string, opts ...Option) (*Problem, error) {
	if len(fragments) == 0 {
		return nil, ErrNoFragments
	}
	p := &Problem{
		fragments:  append(make([]string, 0, len(fragments)), fragments...),
		minOverlap: DefaultMinOverlap,
		n:          len(fragments),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.minOverlap < 1 {
		return nil, ErrInvalidMinOverlap
	}
	for _, f := range p.fragments {
		if f == "" {
			return nil, ErrEmptyFragment
		}
	}

	p.overlap = make([]int, p.n*p.n)
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			if i != j {
				p.overlap[i*p.n+j] = Overlap(p.fragments[i], p.fragments[j], p.minOverlap)
			}
		}
	}

	return p, nil
}

func (p *Problem) at(i, j int) int { return p.overlap[i*p.n+j] }

// Len returns the fragment count.
func (p *Problem) Len() int { return p.n }

// MinOverlap returns the shortest match recorded in the graph.
func (p *Problem) MinOverlap() int { return p.minOverlap }

// Fragment returns fragment i.
func (p *Problem) Fragment(i int) (string, error) {
	if i < 0 || i >= p.n {
		return "", ErrFragmentOutOfRange
	}

	return p.fragments[i], nil
}

// Overlap returns the overlap-graph entry (i, j).
func (p *Problem) Overlap(i, j int) (int, error) {
	if i < 0 || i >= p.n || j < 0 || j >= p.n {
		return 0, ErrFragmentOutOfRange
	}

	return p.at(i, j), nil
}

// Edges counts the ordered pairs joined by a positive overlap.
func (p *Problem) Edges() int {
	edges := 0
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			if i != j && p.at(i, j) > 0 {
				edges++
			}
		}
	}

	return edges
}
