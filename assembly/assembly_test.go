package assembly_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wildflow/assembly"
)

// demoFragments are five sliding windows of ATCGATCGATACGTACGTACG whose
// overlap graph is known by hand: (0,1)=9, (0,2)=7, (1,2)=8, (1,3)=3,
// (2,3)=5, (3,4)=7, everything else zero.
var demoFragments = []string{
	"ATCGATCGAT",
	"TCGATCGATA",
	"GATCGATACG",
	"ATACGTACGT",
	"CGTACGTACG",
}

const demoSequence = "ATCGATCGATACGTACGTACG"

// AssemblySuite groups overlap-graph, heuristic and evaluation tests.
type AssemblySuite struct {
	suite.Suite
	demo *assembly.Problem
}

func (s *AssemblySuite) SetupTest() {
	p, err := assembly.NewProblem(demoFragments)
	require.NoError(s.T(), err)
	s.demo = p
}

// TestOverlap: the suffix/prefix primitive on a handful of direct cases.
func (s *AssemblySuite) TestOverlap() {
	require.Equal(s.T(), 3, assembly.Overlap("GGGAAA", "AAACCC", 3))
	require.Zero(s.T(), assembly.Overlap("GGGAAA", "AAACCC", 4), "a 3-base match must not clear a 4-base floor")
	require.Equal(s.T(), 4, assembly.Overlap("ACGT", "ACGT", 1), "identical strings overlap fully")
	require.Zero(s.T(), assembly.Overlap("AAAA", "CCCC", 1))
	require.Equal(s.T(), 1, assembly.Overlap("CA", "AC", 0), "a floor below 1 is lifted to 1")
}

// TestOverlapGraph: the six positive entries, a few zero ones, edge count.
func (s *AssemblySuite) TestOverlapGraph() {
	want := map[[2]int]int{
		{0, 1}: 9, {0, 2}: 7, {1, 2}: 8, {1, 3}: 3, {2, 3}: 5, {3, 4}: 7,
	}
	for i := 0; i < s.demo.Len(); i++ {
		for j := 0; j < s.demo.Len(); j++ {
			got, err := s.demo.Overlap(i, j)
			require.NoError(s.T(), err)
			require.Equal(s.T(), want[[2]int{i, j}], got, "overlap(%d,%d)", i, j)
		}
	}
	require.Equal(s.T(), 6, s.demo.Edges())
}

// TestMinOverlapOption: raising the floor erases the shortest edge.
func (s *AssemblySuite) TestMinOverlapOption() {
	p, err := assembly.NewProblem(demoFragments, assembly.WithMinOverlap(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, p.MinOverlap())

	got, err := p.Overlap(1, 3)
	require.NoError(s.T(), err)
	require.Zero(s.T(), got, "the 3-base join must fall below the floor")
	require.Equal(s.T(), 5, p.Edges())
}

// TestGreedy: start at 0, chain the longest overlaps => perfect rebuild.
func (s *AssemblySuite) TestGreedy() {
	res, err := s.demo.Assemble(assembly.Greedy)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, res.Order)
	require.Equal(s.T(), demoSequence, res.Sequence)
	require.Equal(s.T(), 29, res.TotalOverlap)
}

// TestNearestNeighbor: fragment 0 offers the largest outgoing total (16),
// so the walk coincides with greedy here.
func (s *AssemblySuite) TestNearestNeighbor() {
	res, err := s.demo.Assemble(assembly.NearestNeighbor)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, res.Order)
	require.Equal(s.T(), demoSequence, res.Sequence)
	require.Equal(s.T(), 29, res.TotalOverlap)
}

// TestSavings: look-ahead scoring still finds the same chain.
func (s *AssemblySuite) TestSavings() {
	res, err := s.demo.Assemble(assembly.Savings)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, res.Order)
	require.Equal(s.T(), demoSequence, res.Sequence)
	require.Equal(s.T(), 29, res.TotalOverlap)
}

// TestTieBreak: two equal 3-base joins; the lower index must win.
func (s *AssemblySuite) TestTieBreak() {
	p, err := assembly.NewProblem([]string{"GGGAAA", "AAACCC", "AAATTT"})
	require.NoError(s.T(), err)

	res, err := p.Assemble(assembly.Greedy)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2}, res.Order)
	require.Equal(s.T(), "GGGAAACCCAAATTT", res.Sequence, "the zero-overlap join appends whole fragments")
	require.Equal(s.T(), 3, res.TotalOverlap)
}

// TestNoOverlaps: a dead graph degrades to first-unused order.
func (s *AssemblySuite) TestNoOverlaps() {
	p, err := assembly.NewProblem([]string{"AAAA", "CCCC", "GGGG"})
	require.NoError(s.T(), err)
	require.Zero(s.T(), p.Edges())

	for _, h := range []assembly.Heuristic{assembly.Greedy, assembly.NearestNeighbor, assembly.Savings} {
		res, err := p.Assemble(h)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []int{0, 1, 2}, res.Order, "%s must fall back to index order", h)
		require.Equal(s.T(), "AAAACCCCGGGG", res.Sequence)
		require.Zero(s.T(), res.TotalOverlap)
	}
}

// TestIdenticalFragments: a duplicate overlaps at full length and merges away.
func (s *AssemblySuite) TestIdenticalFragments() {
	p, err := assembly.NewProblem([]string{"AAAA", "AAAA"})
	require.NoError(s.T(), err)

	got, err := p.Overlap(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, got)

	res, err := p.Assemble(assembly.Greedy)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "AAAA", res.Sequence, "the duplicate must collapse entirely")
	require.Equal(s.T(), 4, res.TotalOverlap)
}

// TestEvaluate: perfect rebuild scores 100%, truth-free scoring yields 0.
func (s *AssemblySuite) TestEvaluate() {
	ev, err := s.demo.Evaluate([]int{0, 1, 2, 3, 4}, demoSequence)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 29, ev.TotalOverlap)
	require.Equal(s.T(), 100.0, ev.Accuracy)

	ev, err = s.demo.Evaluate([]int{0, 1, 2, 3, 4}, "")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 29, ev.TotalOverlap)
	require.Zero(s.T(), ev.Accuracy)
}

// TestEvaluate_BadOrders: wrong length, out of range, duplicates.
func (s *AssemblySuite) TestEvaluate_BadOrders() {
	for _, order := range [][]int{
		{0, 1, 2},
		{0, 1, 2, 3, 5},
		{0, 1, 2, 3, -1},
		{0, 1, 2, 3, 3},
	} {
		_, err := s.demo.Evaluate(order, demoSequence)
		require.True(s.T(), errors.Is(err, assembly.ErrBadOrder), "order %v", order)
	}
}

// TestValidation: construction and dispatch sentinels.
func (s *AssemblySuite) TestValidation() {
	_, err := assembly.NewProblem(nil)
	require.True(s.T(), errors.Is(err, assembly.ErrNoFragments))

	_, err = assembly.NewProblem([]string{"ACGT", ""})
	require.True(s.T(), errors.Is(err, assembly.ErrEmptyFragment))

	_, err = assembly.NewProblem([]string{"ACGT"}, assembly.WithMinOverlap(0))
	require.True(s.T(), errors.Is(err, assembly.ErrInvalidMinOverlap))

	_, err = s.demo.Assemble(assembly.Heuristic(99))
	require.True(s.T(), errors.Is(err, assembly.ErrUnknownHeuristic))
}

// TestHeuristicLabels: stable names for logs and result tables.
func (s *AssemblySuite) TestHeuristicLabels() {
	require.Equal(s.T(), "greedy", assembly.Greedy.String())
	require.Equal(s.T(), "nearest-neighbor", assembly.NearestNeighbor.String())
	require.Equal(s.T(), "savings", assembly.Savings.String())
	require.Equal(s.T(), "unknown", assembly.Heuristic(99).String())
}

// TestRandomFragments: reproducibility and slicing guarantees.
func (s *AssemblySuite) TestRandomFragments() {
	frags, original, err := assembly.RandomFragments(20, 15, 200, 42)
	require.NoError(s.T(), err)
	require.Len(s.T(), frags, 20)
	require.Len(s.T(), original, 200)
	for i, f := range frags {
		require.Len(s.T(), f, 15, "fragment %d", i)
		require.True(s.T(), strings.Contains(original, f), "fragment %d must come from the sequence", i)
	}

	again, sameOriginal, err := assembly.RandomFragments(20, 15, 200, 42)
	require.NoError(s.T(), err)
	require.Equal(s.T(), original, sameOriginal)
	require.Equal(s.T(), frags, again, "one seed, one instance")

	zero, _, err := assembly.RandomFragments(5, 10, 50, 0)
	require.NoError(s.T(), err)
	one, _, err := assembly.RandomFragments(5, 10, 50, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), one, zero, "seed 0 must follow the default-seed policy")
}

// TestRandomFragments_Limits: generator sentinels.
func (s *AssemblySuite) TestRandomFragments_Limits() {
	_, _, err := assembly.RandomFragments(0, 15, 200, 42)
	require.True(s.T(), errors.Is(err, assembly.ErrNoFragments))

	_, _, err = assembly.RandomFragments(10, 0, 200, 42)
	require.True(s.T(), errors.Is(err, assembly.ErrInvalidFragmentLength))

	_, _, err = assembly.RandomFragments(10, 201, 200, 42)
	require.True(s.T(), errors.Is(err, assembly.ErrInvalidFragmentLength))

	_, _, err = assembly.RandomFragments(52, 150, 200, 42)
	require.True(s.T(), errors.Is(err, assembly.ErrTooManyFragments),
		"only 51 distinct start positions exist")
}

func TestAssemblySuite(t *testing.T) {
	suite.Run(t, new(AssemblySuite))
}
