package maxflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wildflow/maxflow"
)

// arc is a directed capacity grant used by test fixtures.
type arc struct {
	u, v int
	cap  int64
}

// build assembles a network over n nodes from a grant list.
func build(t *testing.T, n int, arcs []arc, opts ...maxflow.Option) *maxflow.Network {
	t.Helper()
	nw, err := maxflow.New(n, opts...)
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, nw.AddEdge(a.u, a.v, a.cap))
	}

	return nw
}

// NetworkSuite groups construction, validation and small-scenario tests.
type NetworkSuite struct {
	suite.Suite
}

// TestNew_InvalidOrder: n ≤ 0 is rejected.
func (s *NetworkSuite) TestNew_InvalidOrder() {
	for _, n := range []int{0, -1, -42} {
		_, err := maxflow.New(n)
		require.True(s.T(), errors.Is(err, maxflow.ErrInvalidOrder), "order %d must be rejected", n)
	}
}

// TestAddEdge_Validation: endpoints out of range, loops and negative grants.
func (s *NetworkSuite) TestAddEdge_Validation() {
	nw, err := maxflow.New(3)
	require.NoError(s.T(), err)

	require.True(s.T(), errors.Is(nw.AddEdge(-1, 1, 5), maxflow.ErrNodeOutOfRange))
	require.True(s.T(), errors.Is(nw.AddEdge(0, 3, 5), maxflow.ErrNodeOutOfRange))
	require.True(s.T(), errors.Is(nw.AddEdge(2, 2, 5), maxflow.ErrSelfLoop))
	require.True(s.T(), errors.Is(nw.AddEdge(0, 1, -5), maxflow.ErrNegativeCapacity))
}

// TestSolve_Validation: source/sink bounds and coincidence.
func (s *NetworkSuite) TestSolve_Validation() {
	nw, err := maxflow.New(3)
	require.NoError(s.T(), err)

	_, err = nw.Solve(-1, 2)
	require.True(s.T(), errors.Is(err, maxflow.ErrSourceOutOfRange))
	_, err = nw.Solve(0, 3)
	require.True(s.T(), errors.Is(err, maxflow.ErrSinkOutOfRange))
	_, err = nw.Solve(1, 1)
	require.True(s.T(), errors.Is(err, maxflow.ErrSameSourceSink))
}

// TestSinglePath: 0→1 (cap=5) => maxFlow = 5, one used edge.
func (s *NetworkSuite) TestSinglePath() {
	nw := build(s.T(), 2, []arc{{0, 1, 5}})

	flow, err := nw.Solve(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), flow, "max flow should match single-edge capacity")
	require.Equal(s.T(), []maxflow.UsedEdge{{U: 0, V: 1, Flow: 5}}, nw.UsedEdges())
}

// TestAccumulatedGrants: two grants on one arc behave as their sum.
func (s *NetworkSuite) TestAccumulatedGrants() {
	nw := build(s.T(), 2, []arc{{0, 1, 3}, {0, 1, 4}})

	flow, err := nw.Solve(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), flow, "grants for the same arc must accumulate")
	require.Equal(s.T(), []maxflow.UsedEdge{{U: 0, V: 1, Flow: 7}}, nw.UsedEdges())
}

// TestDiamond: 0→1 (3), 0→2 (2), 1→3 (2), 2→3 (3) => maxFlow = 4.
func (s *NetworkSuite) TestDiamond() {
	nw := build(s.T(), 4, []arc{{0, 1, 3}, {0, 2, 2}, {1, 3, 2}, {2, 3, 3}})

	flow, err := nw.Solve(0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), flow, "both branches saturate at 2")
	require.Equal(s.T(), []maxflow.UsedEdge{
		{U: 0, V: 1, Flow: 2},
		{U: 0, V: 2, Flow: 2},
		{U: 1, V: 3, Flow: 2},
		{U: 2, V: 3, Flow: 2},
	}, nw.UsedEdges())
}

// TestDisconnected: sink unreachable => flow 0, no used edges, no error.
func (s *NetworkSuite) TestDisconnected() {
	nw := build(s.T(), 4, []arc{{0, 1, 5}})

	flow, err := nw.Solve(0, 3)
	require.NoError(s.T(), err, "an unreachable sink is not an error")
	require.Zero(s.T(), flow)
	require.Empty(s.T(), nw.UsedEdges())
}

// TestTriangle: equal capacity c on all edges => maxFlow = 2c
// (the direct edge plus the detour through the third node).
func (s *NetworkSuite) TestTriangle() {
	const c = 7
	nw := build(s.T(), 3, []arc{{0, 1, c}, {0, 2, c}, {1, 2, c}})

	flow, err := nw.Solve(0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2*c), flow)
}

// TestZeroGrantIgnored: capacity 0 stores nothing and carries nothing.
func (s *NetworkSuite) TestZeroGrantIgnored() {
	nw := build(s.T(), 2, []arc{{0, 1, 0}})

	r, err := nw.Residual(0, 1)
	require.NoError(s.T(), err)
	require.Zero(s.T(), r, "a zero grant must not be stored")

	flow, err := nw.Solve(0, 1)
	require.NoError(s.T(), err)
	require.Zero(s.T(), flow)
	require.Empty(s.T(), nw.UsedEdges())
}

// TestResolveFrozen: a second Solve over the frozen optimum changes nothing.
func (s *NetworkSuite) TestResolveFrozen() {
	nw := build(s.T(), 4, []arc{{0, 1, 3}, {0, 2, 2}, {1, 3, 2}, {2, 3, 3}})

	first, err := nw.Solve(0, 3)
	require.NoError(s.T(), err)
	used := nw.UsedEdges()

	second, err := nw.Solve(0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second, "no augmenting path remains at the optimum")
	require.Equal(s.T(), used, nw.UsedEdges(), "extraction must be read-only")
	require.Equal(s.T(), first, nw.Value())
}

// TestGrantAfterSolve: fresh capacity reopens the search from the frozen state.
func (s *NetworkSuite) TestGrantAfterSolve() {
	nw := build(s.T(), 2, []arc{{0, 1, 5}})

	flow, err := nw.Solve(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), flow)

	require.NoError(s.T(), nw.AddEdge(0, 1, 2))
	flow, err = nw.Solve(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), flow, "new capacity must extend the previous optimum")
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}
