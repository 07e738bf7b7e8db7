// SPDX-License-Identifier: MIT
// Package: qlp/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/qlp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p. Used to generate random
// problem instances for dominating-set experiments.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, methodRandomSparse, n); err != nil {
			return err
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if !include && p > probMin {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				w := cfg.weight(useWeight)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d, w=%g): %w", methodRandomSparse, i, j, w, err)
				}
			}
		}

		return nil
	}
}
