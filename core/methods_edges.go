// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
//   - Neighbors() returns indices sorted asc.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts the undirected edge {u,v}, auto-adding missing endpoints.
// Adding an existing edge overwrites its weight (simple graph; no parallel edges).
//
// Steps:
//  1. Validate indices, loops and weight policy.
//  2. Lock mu, ensure both adjacency buckets, link both directions.
//  3. Store the weight under the normalized pair key.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if u < 0 || v < 0 {
		return ErrNegativeVertex
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || (!g.weighted && weight != 0) {
		return fmt.Errorf("AddEdge(%d,%d,w=%g): %w", u, v, weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(u)
	g.ensureVertex(v)
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.weights[newPair(u, v)] = weight

	return nil
}

// HasEdge reports whether {u,v} is present.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.weights[newPair(u, v)]

	return ok
}

// Weight returns the weight of {u,v} or ErrEdgeNotFound.
func (g *Graph) Weight(u, v int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.weights[newPair(u, v)]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns a snapshot of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.weights))
	for p, w := range g.weights {
		out = append(out, Edge{From: p.u, To: p.v, Weight: w})
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.weights)
}

// Neighbors returns the sorted neighbor indices of v.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	nb, ok := g.adjacency[v]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nb))
	for u := range nb {
		out = append(out, u)
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out, nil
}
