package results_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wildflow/experiment"
	"github.com/katalvlaran/wildflow/results"
)

// HistorySuite exercises the SQLite archive against a throwaway database.
type HistorySuite struct {
	suite.Suite
	hist *results.History
}

func (s *HistorySuite) SetupTest() {
	h, err := results.OpenHistory(filepath.Join(s.T().TempDir(), "history.db"))
	require.NoError(s.T(), err)
	s.hist = h
}

func (s *HistorySuite) TearDownTest() {
	require.NoError(s.T(), s.hist.Close())
}

// TestRecordRoundTrip: one run in, the same run back out.
func (s *HistorySuite) TestRecordRoundTrip() {
	ctx := context.Background()
	cfg := experiment.DefaultConfig()
	cfg.Corridor.Sizes = []int{10, 15}

	id, err := s.hist.Record(ctx, cfg, corridorRows, assemblyRows)
	require.NoError(s.T(), err)
	_, err = uuid.Parse(id)
	require.NoError(s.T(), err, "run ids are UUIDs")

	runs, err := s.hist.Runs(ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), runs, 1)
	require.Equal(s.T(), id, runs[0].ID)
	require.Equal(s.T(), 2, runs[0].CorridorRows)
	require.Equal(s.T(), 1, runs[0].AssemblyRows)
	require.WithinDuration(s.T(), time.Now().UTC(), runs[0].CreatedAt, time.Minute)

	gotCorridor, err := s.hist.CorridorMeasurements(ctx, id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), corridorRows, gotCorridor)

	gotAssembly, err := s.hist.AssemblyMeasurements(ctx, id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), assemblyRows, gotAssembly)

	gotCfg, err := s.hist.Config(ctx, id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), cfg, gotCfg)
}

// TestRunsOrdered: consecutive records list oldest first.
func (s *HistorySuite) TestRunsOrdered() {
	ctx := context.Background()
	cfg := experiment.DefaultConfig()

	first, err := s.hist.Record(ctx, cfg, corridorRows, nil)
	require.NoError(s.T(), err)
	second, err := s.hist.Record(ctx, cfg, nil, assemblyRows)
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), first, second)

	runs, err := s.hist.Runs(ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), runs, 2)
	require.Equal(s.T(), first, runs[0].ID)
	require.Equal(s.T(), second, runs[1].ID)
	require.Zero(s.T(), runs[1].CorridorRows)
	require.Equal(s.T(), 1, runs[1].AssemblyRows)
}

// TestUnknownRun: accessors distinguish a missing run from an empty one.
func (s *HistorySuite) TestUnknownRun() {
	ctx := context.Background()

	_, err := s.hist.CorridorMeasurements(ctx, "no-such-run")
	require.True(s.T(), errors.Is(err, results.ErrUnknownRun))
	_, err = s.hist.AssemblyMeasurements(ctx, "no-such-run")
	require.True(s.T(), errors.Is(err, results.ErrUnknownRun))
	_, err = s.hist.Config(ctx, "no-such-run")
	require.True(s.T(), errors.Is(err, results.ErrUnknownRun))
}

// TestRecordNilConfig: a run cannot be archived without its parameters.
func (s *HistorySuite) TestRecordNilConfig() {
	_, err := s.hist.Record(context.Background(), nil, corridorRows, nil)
	require.True(s.T(), errors.Is(err, results.ErrNilConfig))
}

// TestEmptyRunRoundTrip: a run with no measurements is valid and comes back empty.
func (s *HistorySuite) TestEmptyRunRoundTrip() {
	ctx := context.Background()
	id, err := s.hist.Record(ctx, experiment.DefaultConfig(), nil, nil)
	require.NoError(s.T(), err)

	gotCorridor, err := s.hist.CorridorMeasurements(ctx, id)
	require.NoError(s.T(), err)
	require.Empty(s.T(), gotCorridor)

	gotAssembly, err := s.hist.AssemblyMeasurements(ctx, id)
	require.NoError(s.T(), err)
	require.Empty(s.T(), gotAssembly)
}

func TestHistorySuite(t *testing.T) {
	suite.Run(t, new(HistorySuite))
}
