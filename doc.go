// Package wildflow models wildlife corridor networks and answers one
// question about them: how many animals per season can actually move
// between two reserves, and which corridors carry that movement.
//
// 🦌 What is wildflow?
//
//	A small, deterministic toolkit for conservation connectivity analysis:
//		• terrain/    — Euclidean geometry and the distance→capacity rule
//		• habitat/    — habitat patches, feasible-corridor enumeration, random networks
//		• maxflow/    — Edmonds–Karp maximum flow on a dense residual matrix
//		• design/     — the reduction driver: patches → capacities → flow → plan
//		• assembly/   — constructive heuristics for overlapping-fragment ordering
//		• experiment/ — timing suites with statistics and complexity fits
//		• results/    — CSV export and a SQLite history of experiment runs
//
// ✨ Why choose wildflow?
//
//   - Deterministic – fixed seeds in, identical plans and orderings out
//   - Bounded – Edmonds–Karp terminates in O(V·E²); no heuristic cut-offs
//   - Transparent – residual state stays inspectable, so reports can say
//     not just how much flow exists but which corridors were saturated
//   - Pure Go – no cgo anywhere in the pipeline
//
// The core reduction mirrors the classical conservation-ecology model:
// patches are points on a plane, a corridor between two patches is feasible
// when they lie within a maximum separation, and its capacity decays
// quadratically with distance. Everything downstream is exact.
//
// Quick ASCII sketch of a plan:
//
//	    reserve A ──35── patch 1 ──18── patch 3
//	        │                             │
//	        └───12── patch 2 ──12──── reserve B
//
//	maximum movement 24/season, three corridors saturated.
//
// Dive into the per-package docs for contracts, complexity and examples;
// cmd/wildflow ties the pipeline together as a command-line tool.
//
//	go get github.com/katalvlaran/wildflow
package wildflow
