// Package experiment benchmarks the corridor designer and the fragment
// assembler over growing problem sizes and fits the observed runtimes.
//
// What:
//
//   - Config: YAML-backed suite parameters with filled-in defaults; an empty
//     path loads the defaults outright.
//   - RunCorridorSuite: for each landscape size, a seeded random network is
//     derived once and design.Solve is timed over the configured repetitions;
//     corridor counts, throughput and mean/stddev runtime are recorded.
//   - RunAssemblySuite: for each fragment count, a seeded read set is cut
//     from a random genome and the three assembly heuristics are timed and
//     scored against it.
//   - FitQuadratic / FitPowerLaw: least-squares fits of runtime against
//     size, with R², replacing eyeballed complexity claims by numbers.
//
// Determinism: every suite size derives its seed as base+size, so a config
// pins the full experiment; only the measured times vary between machines.
//
// Errors: ErrInvalidConfig (wrapped with the offending field) from the
// runners, ErrSampleMismatch / ErrTooFewSamples / ErrNonPositiveSample from
// the fitting helpers; I/O and YAML failures are wrapped with context.
package experiment
