// SPDX-License-Identifier: MIT
package experiment

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/wildflow/design"
	"github.com/katalvlaran/wildflow/habitat"
	"github.com/katalvlaran/wildflow/terrain"
)

// RunCorridorSuite measures design.Solve across the configured landscape
// sizes. Each size gets one seeded random landscape whose corridors are
// derived once; the solve is then timed over the configured repetitions
// (a fresh engine per run, so every repetition does identical work).
func RunCorridorSuite(cfg *Config) ([]CorridorMeasurement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := terrain.NewRule(cfg.Corridor.MaxDistance)
	if err != nil {
		return nil, fmt.Errorf("corridor rule: %w", err)
	}

	out := make([]CorridorMeasurement, 0, len(cfg.Corridor.Sizes))
	for _, n := range cfg.Corridor.Sizes {
		nw, err := habitat.Random(n, cfg.Corridor.Region, cfg.Corridor.SeedBase+int64(n))
		if err != nil {
			return nil, fmt.Errorf("landscape of %d patches: %w", n, err)
		}
		if err := nw.BuildCorridors(rule); err != nil {
			return nil, fmt.Errorf("corridors for %d patches: %w", n, err)
		}

		samples := make([]float64, cfg.Corridor.Repetitions)
		var plan *design.Plan
		for r := range samples {
			start := time.Now()
			plan, err = design.Solve(nw)
			if err != nil {
				return nil, fmt.Errorf("solve %d patches: %w", n, err)
			}
			samples[r] = time.Since(start).Seconds() * 1e3
		}

		mean, stddev := summarize(samples)
		out = append(out, CorridorMeasurement{
			Patches:       n,
			Corridors:     nw.NumCorridors(),
			MaxFlow:       plan.MaxFlow,
			UsedCorridors: len(plan.Corridors),
			MeanMillis:    mean,
			StdDevMillis:  stddev,
		})
	}

	return out, nil
}

// summarize reduces timing samples to mean and sample stddev; a single
// sample has no spread.
func summarize(samples []float64) (mean, stddev float64) {
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		stddev = stat.StdDev(samples, nil)
	}

	return mean, stddev
}
