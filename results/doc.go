// Package results persists experiment outcomes for the reporting side of
// the toolkit: CSV summaries in the layouts downstream plotting expects,
// and a SQLite history of complete runs.
//
// What:
//
//   - WriteCorridorCSV / WriteAssemblyCSV: fixed-column summaries
//     (n_habitats,corridors,time_ms,max_flow and the eight-column assembly
//     layout); Save variants write straight to a file.
//   - History: an embedded SQLite store. Record appends one run — a fresh
//     UUID, the full config as YAML, one row per measurement — inside a
//     single transaction; Runs lists past runs newest last; the measurement
//     accessors restore exactly what Record stored.
//
// The core packages never import results; the dependency points here only.
//
// Errors: ErrNilConfig from Record, ErrUnknownRun from the per-run
// accessors; database and encoding failures are wrapped with context.
package results
