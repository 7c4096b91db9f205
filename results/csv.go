// SPDX-License-Identifier: MIT
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/wildflow/experiment"
)

// WriteCorridorCSV writes the corridor suite in the four-column layout
// n_habitats,corridors,time_ms,max_flow.
func WriteCorridorCSV(w io.Writer, rows []experiment.CorridorMeasurement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"n_habitats", "corridors", "time_ms", "max_flow"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range rows {
		record := []string{
			strconv.Itoa(m.Patches),
			strconv.Itoa(m.Corridors),
			formatMillis(m.MeanMillis),
			strconv.FormatInt(m.MaxFlow, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row for %d habitats: %w", m.Patches, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteAssemblyCSV writes the assembly suite in the eight-column layout
// n_fragments,edges,greedy_time_ms,greedy_overlap,nn_time_ms,nn_overlap,
// savings_time_ms,savings_overlap.
func WriteAssemblyCSV(w io.Writer, rows []experiment.AssemblyMeasurement) error {
	cw := csv.NewWriter(w)
	header := []string{
		"n_fragments", "edges",
		"greedy_time_ms", "greedy_overlap",
		"nn_time_ms", "nn_overlap",
		"savings_time_ms", "savings_overlap",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range rows {
		record := []string{
			strconv.Itoa(m.Fragments),
			strconv.Itoa(m.Edges),
			formatMillis(m.Greedy.MeanMillis),
			strconv.Itoa(m.Greedy.TotalOverlap),
			formatMillis(m.NearestNeighbor.MeanMillis),
			strconv.Itoa(m.NearestNeighbor.TotalOverlap),
			formatMillis(m.Savings.MeanMillis),
			strconv.Itoa(m.Savings.TotalOverlap),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row for %d fragments: %w", m.Fragments, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCorridorCSV writes the corridor summary to path.
func SaveCorridorCSV(path string, rows []experiment.CorridorMeasurement) error {
	return saveCSV(path, func(w io.Writer) error { return WriteCorridorCSV(w, rows) })
}

// SaveAssemblyCSV writes the assembly summary to path.
func SaveAssemblyCSV(path string, rows []experiment.AssemblyMeasurement) error {
	return saveCSV(path, func(w io.Writer) error { return WriteAssemblyCSV(w, rows) })
}

func saveCSV(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()

		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

// formatMillis keeps sub-millisecond timings visible instead of rounding
// them all down to zero.
func formatMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 3, 64)
}
