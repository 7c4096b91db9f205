// SPDX-License-Identifier: MIT

// wildflow is the command-line front end of the corridor toolkit: a showcase
// landscape, the two timing suites with CSV and SQLite reporting, and the
// fragment-assembly showcase.
//
// Usage:
//
//	wildflow -demo
//	wildflow -assemble
//	wildflow -experiments [-config suite.yaml] [-out data] [-db wildflow_history.db]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/wildflow/assembly"
	"github.com/katalvlaran/wildflow/design"
	"github.com/katalvlaran/wildflow/experiment"
	"github.com/katalvlaran/wildflow/habitat"
	"github.com/katalvlaran/wildflow/results"
	"github.com/katalvlaran/wildflow/terrain"
)

func main() {
	demo := flag.Bool("demo", false, "run the six-patch showcase landscape")
	assemble := flag.Bool("assemble", false, "run the fragment-assembly showcase")
	experiments := flag.Bool("experiments", false, "run both timing suites")
	configPath := flag.String("config", "", "suite config YAML; built-in defaults when empty")
	outDir := flag.String("out", "data", "directory for the CSV summaries")
	dbPath := flag.String("db", "wildflow_history.db", "SQLite run history; empty disables archiving")
	flag.Parse()

	if !*demo && !*assemble && !*experiments {
		*demo = true
	}

	if *demo {
		if err := runDemo(); err != nil {
			slog.Error("demo failed", "error", err)
			os.Exit(1)
		}
	}
	if *assemble {
		if err := runAssembly(); err != nil {
			slog.Error("assembly showcase failed", "error", err)
			os.Exit(1)
		}
	}
	if *experiments {
		if err := runExperiments(*configPath, *outDir, *dbPath); err != nil {
			slog.Error("experiments failed", "error", err)
			os.Exit(1)
		}
	}
}

// demoPatches is the showcase landscape: a main reserve at the origin, four
// stepping-stone patches, and a secondary reserve 78 km away.
var demoPatches = []terrain.Point{
	{X: 0, Y: 0},
	{X: 20, Y: 10},
	{X: 15, Y: 25},
	{X: 40, Y: 15},
	{X: 35, Y: 35},
	{X: 60, Y: 50},
}

func runDemo() error {
	fmt.Println("Wildlife corridor network design")
	fmt.Println("Example: 6 habitat patches, connecting endangered species populations")
	fmt.Println()

	nw, err := habitat.NewNetwork(len(demoPatches), 0, len(demoPatches)-1)
	if err != nil {
		return err
	}
	for i, p := range demoPatches {
		if err := nw.SetLocation(i, p); err != nil {
			return err
		}
	}
	rule, err := terrain.NewRule(35)
	if err != nil {
		return err
	}
	if err := nw.BuildCorridors(rule); err != nil {
		return err
	}
	fmt.Printf("Number of feasible corridors: %d\n", nw.NumCorridors())

	trace := func(path []int, bottleneck int64) {
		slog.Debug("augmenting path", "path", path, "bottleneck", bottleneck)
	}
	plan, err := design.Solve(nw, design.WithAugmentHook(trace))
	if err != nil {
		return err
	}

	fmt.Printf("\nMaximum animal movement capacity: %d animals/season\n", plan.MaxFlow)
	fmt.Println("\nCorridors to construct:")
	for _, c := range plan.Corridors {
		fmt.Printf("  Habitat %d <-> Habitat %d (%d animals/season)\n", c.A, c.B, c.Flow)
	}

	var side []string
	for i, ok := range plan.Reachable {
		if ok {
			side = append(side, strconv.Itoa(i))
		}
	}
	fmt.Printf("\nSource side of the bottleneck cut: %s\n", strings.Join(side, " "))

	return nil
}

func runAssembly() error {
	fragments := []string{
		"ATCGATCGAT",
		"TCGATCGATA",
		"GATCGATACG",
		"ATACGTACGT",
		"CGTACGTACG",
	}
	const genome = "ATCGATCGATACGTACGTACG"

	fmt.Println("DNA fragment assembly")
	fmt.Println("Example: reassembling a 21-base sequence from 5 reads")
	fmt.Println()
	fmt.Println("Fragments:")
	for i, f := range fragments {
		fmt.Printf("  %d: %s\n", i, f)
	}

	p, err := assembly.NewProblem(fragments)
	if err != nil {
		return err
	}
	for _, h := range []assembly.Heuristic{assembly.Greedy, assembly.NearestNeighbor, assembly.Savings} {
		res, err := p.Assemble(h)
		if err != nil {
			return err
		}
		ev, err := p.Evaluate(res.Order, genome)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s:\n", h)
		fmt.Printf("  Order: %v\n", res.Order)
		fmt.Printf("  Assembled: %s\n", res.Sequence)
		fmt.Printf("  Overlap: %d, accuracy: %.1f%%\n", ev.TotalOverlap, ev.Accuracy)
	}

	return nil
}

func runExperiments(configPath, outDir, dbPath string) error {
	cfg, err := experiment.Load(configPath)
	if err != nil {
		return err
	}

	slog.Info("running corridor suite",
		"sizes", cfg.Corridor.Sizes, "repetitions", cfg.Corridor.Repetitions)
	corridorRows, err := experiment.RunCorridorSuite(cfg)
	if err != nil {
		return err
	}
	for _, m := range corridorRows {
		fmt.Printf("Habitats=%d, Corridors=%d, Time=%.3fms, MaxFlow=%d\n",
			m.Patches, m.Corridors, m.MeanMillis, m.MaxFlow)
	}
	reportScaling(corridorRows)

	slog.Info("running assembly suite",
		"sizes", cfg.Assembly.Sizes, "repetitions", cfg.Assembly.Repetitions)
	assemblyRows, err := experiment.RunAssemblySuite(cfg)
	if err != nil {
		return err
	}
	for _, m := range assemblyRows {
		fmt.Printf("Fragments=%d, Edges=%d, Overlap: greedy=%d nn=%d savings=%d\n",
			m.Fragments, m.Edges,
			m.Greedy.TotalOverlap, m.NearestNeighbor.TotalOverlap, m.Savings.TotalOverlap)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	corridorCSV := filepath.Join(outDir, "wildlife_network_flow_results.csv")
	if err := results.SaveCorridorCSV(corridorCSV, corridorRows); err != nil {
		return err
	}
	assemblyCSV := filepath.Join(outDir, "dna_assembly_results.csv")
	if err := results.SaveAssemblyCSV(assemblyCSV, assemblyRows); err != nil {
		return err
	}
	slog.Info("summaries written", "corridor", corridorCSV, "assembly", assemblyCSV)

	if dbPath == "" {
		return nil
	}
	hist, err := results.OpenHistory(dbPath)
	if err != nil {
		return err
	}
	defer hist.Close()

	ctx := context.Background()
	id, err := hist.Record(ctx, cfg, corridorRows, assemblyRows)
	if err != nil {
		return err
	}
	runs, err := hist.Runs(ctx)
	if err != nil {
		return err
	}
	slog.Info("run archived", "id", id, "total_runs", len(runs))

	return nil
}

// reportScaling fits the measured solve times against landscape size and
// prints the empirical complexity order.
func reportScaling(rows []experiment.CorridorMeasurement) {
	if len(rows) < 3 {
		return
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, m := range rows {
		xs[i] = float64(m.Patches)
		ys[i] = m.MeanMillis
	}

	law, err := experiment.FitPowerLaw(xs, ys)
	if err != nil {
		slog.Warn("power-law fit skipped", "error", err)
	} else {
		fmt.Printf("Solve scaling: time ≈ %.4g·n^%.2f (R²=%.3f)\n",
			law.Coefficient, law.Exponent, law.R2)
	}
	fit, err := experiment.FitQuadratic(xs, ys)
	if err != nil {
		slog.Warn("quadratic fit skipped", "error", err)
	} else {
		fmt.Printf("Quadratic fit: c₂=%.4g (R²=%.3f)\n", fit.Coefficients[2], fit.R2)
	}
}
