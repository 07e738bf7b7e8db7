// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qlp/core"
)

// Search walks g breadth-first from root.
//
// Neighbors are expanded in ascending order, so Order is deterministic.
// Errors: ErrNilGraph, ErrUnknownVertex, ErrBadDepth, the context error on
// cancellation, or the WithVisit callback's error.
//
// Complexity: O(V + E) time, O(V) memory.
func Search(g *core.Graph, root int, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := newSearch(opts)
	if s.err != nil {
		return nil, s.err
	}
	if !g.HasVertex(root) || !s.allowed(root) {
		return nil, fmt.Errorf("Search: root %d: %w", root, ErrUnknownVertex)
	}

	t := &Tree{
		Root:   root,
		Depth:  map[int]int{root: 0},
		Parent: map[int]int{},
	}
	queue := []int{root}
	for len(queue) > 0 {
		if err := s.ctx.Err(); err != nil {
			return t, err
		}
		v := queue[0]
		queue = queue[1:]
		d := t.Depth[v]

		t.Order = append(t.Order, v)
		if s.visit != nil {
			if err := s.visit(v, d); err != nil {
				return t, fmt.Errorf("Search: visit %d: %w", v, err)
			}
		}
		if s.maxDepth > 0 && d >= s.maxDepth {
			continue
		}

		nbrs, err := g.Neighbors(v)
		if err != nil {
			return t, fmt.Errorf("Search: %w", err)
		}
		for _, u := range nbrs {
			if _, seen := t.Depth[u]; seen || !s.allowed(u) {
				continue
			}
			t.Depth[u] = d + 1
			t.Parent[u] = v
			queue = append(queue, u)
		}
	}

	return t, nil
}

// Components splits vertices into the connected pieces of the subgraph of
// g they induce. Each piece is sorted; pieces are ordered by their
// smallest vertex. Duplicates are ignored.
func Components(g *core.Graph, vertices []int) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	set := slices.Clone(vertices)
	slices.Sort(set)
	set = slices.Compact(set)
	for _, v := range set {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("Components: %d: %w", v, ErrUnknownVertex)
		}
	}

	var (
		pieces [][]int
		done   = make(map[int]bool, len(set))
	)
	for _, v := range set {
		if done[v] {
			continue
		}
		t, err := Search(g, v, Within(set))
		if err != nil {
			return nil, err
		}
		piece := slices.Clone(t.Order)
		slices.Sort(piece)
		for _, u := range piece {
			done[u] = true
		}
		pieces = append(pieces, piece)
	}

	return pieces, nil
}

// Connected reports whether vertices induce a connected subgraph of g.
// The empty set, a nil graph and sets with unknown vertices are not
// connected.
func Connected(g *core.Graph, vertices []int) bool {
	pieces, err := Components(g, vertices)
	return err == nil && len(pieces) == 1
}
