// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns indices sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrNegativeVertex for v < 0.
// Complexity: O(1).
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return ErrNegativeVertex
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(v)

	return nil
}

// ensureVertex bootstraps the adjacency bucket of v. Caller holds mu.
func (g *Graph) ensureVertex(v int) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[int]struct{})
	}
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns all vertex indices sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of neighbors of v.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nb, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nb), nil
}

// MaxDegree returns the largest vertex degree (0 for an empty graph).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	best := 0
	for _, nb := range g.adjacency {
		if len(nb) > best {
			best = len(nb)
		}
	}

	return best
}
