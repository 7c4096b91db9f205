// SPDX-License-Identifier: MIT
package experiment

import (
	"fmt"
	"time"

	"github.com/katalvlaran/wildflow/assembly"
)

// RunAssemblySuite measures the three assembly heuristics across the
// configured fragment counts. Each count gets one seeded read set cut from
// a random genome; every heuristic is timed over the configured repetitions
// and its final order is scored against that genome.
func RunAssemblySuite(cfg *Config) ([]AssemblyMeasurement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]AssemblyMeasurement, 0, len(cfg.Assembly.Sizes))
	for _, n := range cfg.Assembly.Sizes {
		fragments, original, err := assembly.RandomFragments(
			n, cfg.Assembly.FragmentLength, cfg.Assembly.SequenceLength,
			cfg.Assembly.SeedBase+int64(n))
		if err != nil {
			return nil, fmt.Errorf("read set of %d fragments: %w", n, err)
		}
		p, err := assembly.NewProblem(fragments, assembly.WithMinOverlap(cfg.Assembly.MinOverlap))
		if err != nil {
			return nil, fmt.Errorf("overlap graph for %d fragments: %w", n, err)
		}

		m := AssemblyMeasurement{Fragments: n, Edges: p.Edges()}
		for _, h := range []assembly.Heuristic{assembly.Greedy, assembly.NearestNeighbor, assembly.Savings} {
			stats, err := timeStrategy(p, h, original, cfg.Assembly.Repetitions)
			if err != nil {
				return nil, fmt.Errorf("%s on %d fragments: %w", h, n, err)
			}
			switch h {
			case assembly.Greedy:
				m.Greedy = stats
			case assembly.NearestNeighbor:
				m.NearestNeighbor = stats
			case assembly.Savings:
				m.Savings = stats
			}
		}
		out = append(out, m)
	}

	return out, nil
}

// timeStrategy runs one heuristic reps times and scores its final order.
func timeStrategy(p *assembly.Problem, h assembly.Heuristic, original string, reps int) (StrategyStats, error) {
	samples := make([]float64, reps)
	var res assembly.Result
	var err error
	for r := range samples {
		start := time.Now()
		res, err = p.Assemble(h)
		if err != nil {
			return StrategyStats{}, err
		}
		samples[r] = time.Since(start).Seconds() * 1e3
	}

	ev, err := p.Evaluate(res.Order, original)
	if err != nil {
		return StrategyStats{}, err
	}

	mean, stddev := summarize(samples)

	return StrategyStats{
		MeanMillis:   mean,
		StdDevMillis: stddev,
		TotalOverlap: ev.TotalOverlap,
		Accuracy:     ev.Accuracy,
	}, nil
}
