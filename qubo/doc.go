// SPDX-License-Identifier: MIT

// Package qubo holds quadratic unconstrained binary optimization problems.
//
// A QUBO over n binary variables x ∈ {0,1}ⁿ is a square matrix Q with
// energy E(x) = xᵀQx. Diagonal entries are linear biases (x_i² = x_i),
// off-diagonal entries are couplings. Problems built by this package store
// couplings in the upper triangle only, which is the canonical layout the
// ising package expects, although any square matrix is accepted.
//
// Constructors:
//   - New(m)                wraps a copy of a square matrix.
//   - FromEntries(n, es)    accumulates sparse (i, j, v) triples into the
//     upper triangle.
//   - DominatingSet(g, p)   minimum dominating set of a graph with slack-
//     encoded covering constraints.
//
// A QUBO is immutable after construction; Matrix returns a copy.
package qubo
