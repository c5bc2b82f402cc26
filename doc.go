// Package katas is a collection of small, pure sequence algorithms, one
// package per algorithmic pattern.
//
// What is inside?
//
//	A dependency-light library of total, deterministic functions:
//		• counting/  — bounded-domain histograms with an explicit range policy
//		• aggregate/ — single-pass running totals, extrema and mismatch counts
//		• window/    — incremental sliding-window sums and left rotation
//		• greedy/    — sort-then-scan selection (triangles, array pairing)
//		• bits/      — exclusive-or folds, bit flips and letter masks
//		• camelcase/ — camelCase splitting and joining from one-line instructions
//		• clock/     — 12-hour to 24-hour time conversion
//		• arith/     — closed-form answers to meet-up and page-turn puzzles
//
// Conventions
//
//   - No function keeps state between calls, mutates its input or spawns
//     goroutines.
//   - Invalid input surfaces as a package sentinel error (check with
//     errors.Is); "no solution" is a normal result encoded as a sentinel value.
//   - Domain sizes (5 bird types, 26 letters, 100 buckets) are constants
//     local to the package that needs them.
//
// The katas command (cmd/katas) exposes every operation as a sub-command.
//
//	go install github.com/katalvlaran/katas/cmd/katas@latest
package katas
