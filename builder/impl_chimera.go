// SPDX-License-Identifier: MIT
// Package: qlp/builder
//
// impl_chimera.go — implementation of the Chimera(m, n, t) hardware topology.
//
// Layout:
//   • An m×n grid of unit cells; each cell is a complete bipartite K_{t,t}
//     between a vertical shore (u=0) and a horizontal shore (u=1).
//   • Qubit index of (row i, col j, shore u, offset k) is ((i*n + j)*2 + u)*t + k.
//   • Vertical qubits couple to the same (u=0,k) qubit in cell (i+1, j);
//     horizontal qubits couple to the same (u=1,k) qubit in cell (i, j+1).
//
// Sizes:
//   • |V| = 2*m*n*t; C(16,16,4) has 2048 qubits (a full-yield 2000Q).
//   • |E| = m*n*t² (intra-cell) + (m-1)*n*t + m*(n-1)*t (inter-cell).
//
// Determinism:
//   • Vertices added in index order; edges emitted cell by cell, intra-cell
//     first, then south, then east.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qlp/core"
)

const (
	methodChimera   = "Chimera"
	minChimeraCells = 1
	minChimeraShore = 1
)

// ChimeraIndex returns the linear qubit index of (i, j, u, k) in C(m,n,t).
// No bounds checking: callers iterate within the lattice.
func ChimeraIndex(n, t, i, j, u, k int) int {
	return ((i*n+j)*2+u)*t + k
}

// Chimera returns a Constructor that builds the C(m,n,t) lattice.
func Chimera(m, n, t int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minChimeraCells || n < minChimeraCells {
			return fmt.Errorf("%s: cells=%dx%d < min=%d: %w", methodChimera, m, n, minChimeraCells, ErrTooFewVertices)
		}
		if t < minChimeraShore {
			return fmt.Errorf("%s: shore=%d < min=%d: %w", methodChimera, t, minChimeraShore, ErrTooFewVertices)
		}

		// Every qubit exists even if it ends up isolated in degenerate lattices.
		total := 2 * m * n * t
		for q := 0; q < total; q++ {
			if err := g.AddVertex(q); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodChimera, q, err)
			}
		}

		useWeight := g.Weighted()
		link := func(a, b int) error {
			w := cfg.weight(useWeight)
			if err := g.AddEdge(a, b, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodChimera, a, b, err)
			}
			return nil
		}

		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				// Intra-cell K_{t,t}.
				for k := 0; k < t; k++ {
					for kk := 0; kk < t; kk++ {
						if err := link(ChimeraIndex(n, t, i, j, 0, k), ChimeraIndex(n, t, i, j, 1, kk)); err != nil {
							return err
						}
					}
				}
				// South: vertical shore to the cell below.
				if i+1 < m {
					for k := 0; k < t; k++ {
						if err := link(ChimeraIndex(n, t, i, j, 0, k), ChimeraIndex(n, t, i+1, j, 0, k)); err != nil {
							return err
						}
					}
				}
				// East: horizontal shore to the cell on the right.
				if j+1 < n {
					for k := 0; k < t; k++ {
						if err := link(ChimeraIndex(n, t, i, j, 1, k), ChimeraIndex(n, t, i, j+1, 1, k)); err != nil {
							return err
						}
					}
				}
			}
		}

		return nil
	}
}
