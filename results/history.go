// SPDX-License-Identifier: MIT
package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/wildflow/experiment"
)

var (
	// ErrNilConfig is returned by Record without a config to attribute the run to.
	ErrNilConfig = errors.New("results: nil config")

	// ErrUnknownRun is returned by the per-run accessors for an id not in the history.
	ErrUnknownRun = errors.New("results: unknown run id")
)

// timeLayout is RFC3339 with fixed-width nanoseconds, so the TEXT column
// sorts chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// History is a SQLite-backed archive of experiment runs.
type History struct {
	db *sql.DB
}

// Run is one archived experiment run.
type Run struct {
	ID        string
	CreatedAt time.Time

	// CorridorRows and AssemblyRows count the measurements the run stored.
	CorridorRows int
	AssemblyRows int
}

// OpenHistory opens (creating if needed) the history database at path.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	h := &History{db: db}
	if err := h.migrate(); err != nil {
		db.Close()

		return nil, fmt.Errorf("migrate history: %w", err)
	}

	return h, nil
}

// Close releases the underlying database.
func (h *History) Close() error { return h.db.Close() }

func (h *History) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		config TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS corridor_measurements (
		run_id TEXT NOT NULL,
		n_habitats INTEGER NOT NULL,
		corridors INTEGER NOT NULL,
		used_corridors INTEGER NOT NULL,
		max_flow INTEGER NOT NULL,
		mean_ms REAL NOT NULL,
		stddev_ms REAL NOT NULL,
		PRIMARY KEY (run_id, n_habitats),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS assembly_measurements (
		run_id TEXT NOT NULL,
		n_fragments INTEGER NOT NULL,
		edges INTEGER NOT NULL,
		greedy_ms REAL NOT NULL,
		greedy_overlap INTEGER NOT NULL,
		greedy_accuracy REAL NOT NULL,
		nn_ms REAL NOT NULL,
		nn_overlap INTEGER NOT NULL,
		nn_accuracy REAL NOT NULL,
		savings_ms REAL NOT NULL,
		savings_overlap INTEGER NOT NULL,
		savings_accuracy REAL NOT NULL,
		PRIMARY KEY (run_id, n_fragments),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);
	`
	_, err := h.db.Exec(schema)

	return err
}

// Record archives one run: the config that produced it plus every
// measurement, all inside a single transaction. Returns the new run id.
func (h *History) Record(ctx context.Context, cfg *experiment.Config,
	corridor []experiment.CorridorMeasurement, assemblies []experiment.AssemblyMeasurement) (string, error) {
	if cfg == nil {
		return "", ErrNilConfig
	}
	rendered, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin record: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(timeLayout)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, config) VALUES (?, ?, ?)`,
		id, createdAt, string(rendered)); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	corridorStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO corridor_measurements
			(run_id, n_habitats, corridors, used_corridors, max_flow, mean_ms, stddev_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare corridor insert: %w", err)
	}
	defer corridorStmt.Close()
	for _, m := range corridor {
		if _, err := corridorStmt.ExecContext(ctx,
			id, m.Patches, m.Corridors, m.UsedCorridors, m.MaxFlow, m.MeanMillis, m.StdDevMillis); err != nil {
			return "", fmt.Errorf("insert corridor row for %d habitats: %w", m.Patches, err)
		}
	}

	assemblyStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO assembly_measurements
			(run_id, n_fragments, edges,
			 greedy_ms, greedy_overlap, greedy_accuracy,
			 nn_ms, nn_overlap, nn_accuracy,
			 savings_ms, savings_overlap, savings_accuracy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare assembly insert: %w", err)
	}
	defer assemblyStmt.Close()
	for _, m := range assemblies {
		if _, err := assemblyStmt.ExecContext(ctx,
			id, m.Fragments, m.Edges,
			m.Greedy.MeanMillis, m.Greedy.TotalOverlap, m.Greedy.Accuracy,
			m.NearestNeighbor.MeanMillis, m.NearestNeighbor.TotalOverlap, m.NearestNeighbor.Accuracy,
			m.Savings.MeanMillis, m.Savings.TotalOverlap, m.Savings.Accuracy); err != nil {
			return "", fmt.Errorf("insert assembly row for %d fragments: %w", m.Fragments, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit record: %w", err)
	}

	return id, nil
}

// Runs lists every archived run, oldest first.
func (h *History) Runs(ctx context.Context) ([]Run, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT r.id, r.created_at,
			(SELECT COUNT(*) FROM corridor_measurements c WHERE c.run_id = r.id),
			(SELECT COUNT(*) FROM assembly_measurements a WHERE a.run_id = r.id)
		FROM runs r
		ORDER BY r.created_at, r.id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.CorridorRows, &r.AssemblyRows); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Config restores the YAML config a run was recorded with.
func (h *History) Config(ctx context.Context, runID string) (*experiment.Config, error) {
	var rendered string
	err := h.db.QueryRowContext(ctx,
		`SELECT config FROM runs WHERE id = ?`, runID).Scan(&rendered)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnknownRun
	}
	if err != nil {
		return nil, fmt.Errorf("query run config: %w", err)
	}

	var cfg experiment.Config
	if err := yaml.Unmarshal([]byte(rendered), &cfg); err != nil {
		return nil, fmt.Errorf("parse run config: %w", err)
	}

	return &cfg, nil
}

// CorridorMeasurements restores a run's corridor rows, ascending by size.
func (h *History) CorridorMeasurements(ctx context.Context, runID string) ([]experiment.CorridorMeasurement, error) {
	if err := h.ensureRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT n_habitats, corridors, used_corridors, max_flow, mean_ms, stddev_ms
		FROM corridor_measurements WHERE run_id = ? ORDER BY n_habitats`, runID)
	if err != nil {
		return nil, fmt.Errorf("query corridor rows: %w", err)
	}
	defer rows.Close()

	var out []experiment.CorridorMeasurement
	for rows.Next() {
		var m experiment.CorridorMeasurement
		if err := rows.Scan(&m.Patches, &m.Corridors, &m.UsedCorridors,
			&m.MaxFlow, &m.MeanMillis, &m.StdDevMillis); err != nil {
			return nil, fmt.Errorf("scan corridor row: %w", err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// AssemblyMeasurements restores a run's assembly rows, ascending by size.
func (h *History) AssemblyMeasurements(ctx context.Context, runID string) ([]experiment.AssemblyMeasurement, error) {
	if err := h.ensureRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT n_fragments, edges,
			greedy_ms, greedy_overlap, greedy_accuracy,
			nn_ms, nn_overlap, nn_accuracy,
			savings_ms, savings_overlap, savings_accuracy
		FROM assembly_measurements WHERE run_id = ? ORDER BY n_fragments`, runID)
	if err != nil {
		return nil, fmt.Errorf("query assembly rows: %w", err)
	}
	defer rows.Close()

	var out []experiment.AssemblyMeasurement
	for rows.Next() {
		var m experiment.AssemblyMeasurement
		if err := rows.Scan(&m.Fragments, &m.Edges,
			&m.Greedy.MeanMillis, &m.Greedy.TotalOverlap, &m.Greedy.Accuracy,
			&m.NearestNeighbor.MeanMillis, &m.NearestNeighbor.TotalOverlap, &m.NearestNeighbor.Accuracy,
			&m.Savings.MeanMillis, &m.Savings.TotalOverlap, &m.Savings.Accuracy); err != nil {
			return nil, fmt.Errorf("scan assembly row: %w", err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (h *History) ensureRun(ctx context.Context, runID string) error {
	var one int
	err := h.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUnknownRun
	}
	if err != nil {
		return fmt.Errorf("query run: %w", err)
	}

	return nil
}
