// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned for a nil *core.Graph.
	ErrNilGraph = errors.New("bfs: nil graph")

	// ErrUnknownVertex is returned when the root (or a member of a vertex
	// set) is not in the graph.
	ErrUnknownVertex = errors.New("bfs: vertex not in graph")

	// ErrBadDepth is returned for a negative depth limit.
	ErrBadDepth = errors.New("bfs: negative depth limit")

	// ErrUnreachable is returned by Tree.PathTo for vertices the search
	// never reached.
	ErrUnreachable = errors.New("bfs: vertex not reached")
)

// Option tunes a Search.
type Option func(*search)

// search is the resolved configuration of one traversal.
type search struct {
	ctx      context.Context
	maxDepth int // 0: unlimited
	within   map[int]bool
	visit    func(v, depth int) error
	err      error
}

func newSearch(opts []Option) search {
	s := search{ctx: context.Background()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// allowed reports whether the traversal may step onto v.
func (s *search) allowed(v int) bool {
	return s.within == nil || s.within[v]
}

// WithContext stops the search when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(s *search) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to d edges from the root; 0 removes the
// limit and d < 0 fails with ErrBadDepth.
func WithMaxDepth(d int) Option {
	return func(s *search) {
		if d < 0 {
			s.err = fmt.Errorf("WithMaxDepth(%d): %w", d, ErrBadDepth)
			return
		}
		s.maxDepth = d
	}
}

// Within restricts the search to the subgraph induced by vertices, e.g.
// the qubits of one chain. The root must belong to the set.
func Within(vertices []int) Option {
	return func(s *search) {
		s.within = make(map[int]bool, len(vertices))
		for _, v := range vertices {
			s.within[v] = true
		}
	}
}

// WithVisit calls fn for every vertex in visit order; an error aborts the
// search and is returned wrapped.
func WithVisit(fn func(v, depth int) error) Option {
	return func(s *search) { s.visit = fn }
}
