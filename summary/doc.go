// SPDX-License-Identifier: MIT

// Package summary derives per-sample statistics from raw sampler output and
// builds the graph, experiment and data records that get persisted.
//
// Summarize restores the physical energy scale by adding back the constant
// dropped from penalized objectives (penalty × vertex count) and flags a
// sample as constraint-satisfying when that corrected energy equals the
// number of selected vertices, i.e. the sum of the first Vertices entries of
// its configuration. The comparison is exact.
package summary
