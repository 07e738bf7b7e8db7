// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric kernels used to move QUBO problems
// between their binary and spin formulations.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Element-wise kernels (Add, Scale, Transpose) and reductions (RowSums,
//     Sum, Diagonal) with deterministic loop order.
//   - Structural helpers (WithZeroDiagonal, UpperTriangle) that split a QUBO
//     into its linear and quadratic parts.
//   - Central validators so every kernel fails with the same sentinel errors.
//
// Kernels never mutate their inputs; each returns a freshly allocated *Dense.
// Problems handled here are small (one row per logical variable), so O(n²)
// memory is acceptable.
package matrix
