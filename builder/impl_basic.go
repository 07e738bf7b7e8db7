// SPDX-License-Identifier: MIT
// Package: qlp/builder
//
// impl_basic.go — Complete(n), Cycle(n), Path(n) constructors.
//
// Contract:
//   • Vertices 0..n-1 are added in ascending order.
//   • Edges are emitted in lexicographic (i,j) order.
//   • Weight policy: cfg.weightFn on weighted graphs, else 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qlp/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodComplete   = "Complete"
	methodCycle      = "Cycle"
	methodPath       = "Path"
	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
)

// addVertices inserts 0..n-1 into g, wrapping failures with method context.
func addVertices(g *core.Graph, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, i, err)
		}
	}
	return nil
}

// Complete returns a Constructor that builds the complete simple graph K_n.
// A complete topology models an all-to-all software sampler.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, n); err != nil {
			return err
		}
		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := cfg.weight(useWeight)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d, w=%g): %w", methodComplete, i, j, w, err)
				}
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodCycle, n); err != nil {
			return err
		}
		useWeight := g.Weighted()
		// For i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			w := cfg.weight(useWeight)
			if err := g.AddEdge(i, j, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d, w=%g): %w", methodCycle, i, j, w, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPath, n); err != nil {
			return err
		}
		useWeight := g.Weighted()
		for i := 0; i+1 < n; i++ {
			w := cfg.weight(useWeight)
			if err := g.AddEdge(i, i+1, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d, w=%g): %w", methodPath, i, i+1, w, err)
			}
		}

		return nil
	}
}
