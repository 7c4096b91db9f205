// SPDX-License-Identifier: MIT
package experiment

import "errors"

var (
	// ErrInvalidConfig is wrapped with the offending field by Config.Validate.
	ErrInvalidConfig = errors.New("experiment: invalid configuration")

	// ErrSampleMismatch is returned by the fitters when xs and ys differ in length.
	ErrSampleMismatch = errors.New("experiment: sample length mismatch")

	// ErrTooFewSamples is returned by the fitters when the system is underdetermined.
	ErrTooFewSamples = errors.New("experiment: too few samples to fit")

	// ErrNonPositiveSample is returned by FitPowerLaw, which fits in log space.
	ErrNonPositiveSample = errors.New("experiment: power-law fit needs positive samples")
)

// CorridorMeasurement is one row of the corridor suite: a landscape size
// with its derived network and timed solve.
type CorridorMeasurement struct {
	// Patches is the landscape size n.
	Patches int

	// Corridors counts the feasible pairs the builder kept.
	Corridors int

	// MaxFlow is the seasonal throughput of the designed plan.
	MaxFlow int64

	// UsedCorridors counts the corridors the plan actually loads.
	UsedCorridors int

	// MeanMillis and StdDevMillis summarize the solve time over the
	// configured repetitions.
	MeanMillis   float64
	StdDevMillis float64
}

// StrategyStats summarizes one assembly heuristic on one instance.
type StrategyStats struct {
	MeanMillis   float64
	StdDevMillis float64
	TotalOverlap int

	// Accuracy is the positionwise match against the generating genome,
	// in percent.
	Accuracy float64
}

// AssemblyMeasurement is one row of the assembly suite: a fragment count
// with its overlap graph and the three timed heuristics.
type AssemblyMeasurement struct {
	Fragments int
	Edges     int

	Greedy          StrategyStats
	NearestNeighbor StrategyStats
	Savings         StrategyStats
}
