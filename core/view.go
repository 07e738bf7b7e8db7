// File: view.go
// Role: Non-mutating graph views (copies with altered vertex sets).
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
//   - InducedSubgraph models a working (partial-yield) hardware graph.

package core

// Clone returns a deep copy of g (vertices, edges, weights and mode flag).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the vertices v for which
// keep[v] is true, with every edge whose endpoints are both kept.
// A nil keep map keeps everything.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	var opts []GraphOption
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)
	kept := func(v int) bool { return keep == nil || keep[v] }

	g.mu.RLock()
	defer g.mu.RUnlock()
	for v := range g.adjacency {
		if kept(v) {
			out.adjacency[v] = make(map[int]struct{})
		}
	}
	for p, w := range g.weights {
		if !kept(p.u) || !kept(p.v) {
			continue
		}
		out.adjacency[p.u][p.v] = struct{}{}
		out.adjacency[p.v][p.u] = struct{}{}
		out.weights[p] = w
	}

	return out
}
