// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying interaction graphs.
//
// Errors:
//
//	ErrNegativeVertex  - vertex index is negative.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrBadWeight       - non-zero or non-finite weight for the graph's mode.
//	ErrLoopNotAllowed  - self-loop requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates that a vertex index below zero was supplied.
	ErrNegativeVertex = errors.New("core: vertex index is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a
	// NaN/Inf weight on a weighted one.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected connection between two vertices.
// From < To always holds for edges returned by the Graph.
type Edge struct {
	// From is the smaller endpoint.
	From int

	// To is the larger endpoint.
	To int

	// Weight is the coupling strength; zero on unweighted graphs.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// pair is the normalized (min,max) key of an undirected edge.
type pair struct{ u, v int }

// newPair orders the endpoints so (u,v) and (v,u) share one key.
func newPair(u, v int) pair {
	if u > v {
		u, v = v, u
	}
	return pair{u: u, v: v}
}

// Graph is the core in-memory graph data structure.
//
// mu protects every field below it; the weighted flag is immutable after
// construction.
type Graph struct {
	mu sync.RWMutex

	weighted bool // allow non-zero weights

	// adjacency[v] is the neighbor set of v; every vertex has an entry.
	adjacency map[int]map[int]struct{}
	// weights holds one entry per undirected edge.
	weights map[pair]float64
}

// NewGraph creates an empty undirected, unweighted Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int]map[int]struct{}),
		weights:   make(map[pair]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports the construction-time "weighted" capability flag.
func (g *Graph) Weighted() bool {
	return g.weighted
}
