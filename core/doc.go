// Package core provides a thread-safe in-memory Graph over integer vertex
// indices, the common currency for logical QUBO variables and physical qubits.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - Vertices are non-negative ints (variable index or qubit index).
//   - Edges are stored once, normalized so From < To.
//   - Self-loops are rejected: in a QUBO the diagonal carries linear terms,
//     not interactions, and hardware has no qubit-to-itself coupler.
//   - Edge weights are optional (WithWeighted) and carry coupling strength.
//
// Why use core.Graph?
//
//   - One type serves the logical interaction graph of a problem and the
//     hardware topology of a target machine.
//   - Deterministic iteration: Vertices(), Edges() and Neighbors() return
//     sorted results so embeddings and hashes are reproducible.
//   - A single sync.RWMutex guards all state; reads may run concurrently.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v int) error                 // O(1)
//	HasVertex(v int) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int, w float64) error     // O(1)
//	HasEdge(u, v int) bool                 // O(1)
//	Weight(u, v int) (float64, error)      // O(1)
//
//	// Queries
//	Vertices() []int                       // O(V log V)
//	Edges() []Edge                         // O(E log E)
//	Neighbors(v int) ([]int, error)        // O(deg log deg)
//	Degree(v int) (int, error)             // O(1)
//
//	// Views
//	Clone() *Graph                         // O(V+E)
//	InducedSubgraph(g, keep) *Graph        // O(V+E)
package core
