// SPDX-License-Identifier: MIT

package qubo

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/qlp/core"
)

// Problem is a QUBO derived from a graph, with the bookkeeping needed to
// summarize and record results.
type Problem struct {
	// QUBO holds the coefficients. Variables [0, VertexCount) are the
	// vertex selectors in ascending vertex order; slack bits follow.
	QUBO *QUBO

	// VertexCount is the number of graph vertices (total_vertices).
	VertexCount int

	// Penalty is the constraint weight p.
	Penalty float64

	// Vertices maps variable index to the original vertex label.
	Vertices []int

	// Adjacency lists every graph edge as (from, to) with from < to,
	// sorted lexicographically, in original vertex labels.
	Adjacency [][2]int
}

// SlackBits returns the number of slack bits needed to encode a covering
// surplus in [0, degree].
func SlackBits(degree int) int {
	if degree <= 0 {
		return 0
	}
	return bits.Len(uint(degree))
}

// DominatingSet builds the minimum dominating set QUBO of g.
//
// Objective: Σ_v x_v + p·Σ_v (Σ_{u∈N[v]} x_u − 1 − s_v)², where the slack
// s_v = Σ_b 2^b·y_{v,b} absorbs over-coverage. Expanding each square with
// coefficients a (+1 for selectors, −2^b for slack bits) gives
//
//	diagonal  p·(a_i² − 2a_i)
//	coupling  2p·a_i·a_j   (i < j)
//	constant  p            (dropped)
//
// so at a feasible assignment with exact slack the QUBO energy plus
// p·VertexCount equals the number of selected vertices.
//
// Complexity: O(V·(Δ+log Δ)²).
func DominatingSet(g *core.Graph, penalty float64) (*Problem, error) {
	if g == nil {
		return nil, quboErrorf("DominatingSet", ErrNilGraph)
	}
	if !(penalty > 0) || math.IsInf(penalty, 0) {
		return nil, quboErrorf("DominatingSet", fmt.Errorf("p=%g: %w", penalty, ErrBadPenalty))
	}
	vertices := g.Vertices()
	nv := len(vertices)
	if nv == 0 {
		return nil, quboErrorf("DominatingSet", ErrEmpty)
	}

	// Stage 1: index vertices and lay out slack bits after them.
	index := make(map[int]int, nv)
	for i, v := range vertices {
		index[v] = i
	}
	slackStart := make([]int, nv)
	slackLen := make([]int, nv)
	next := nv
	for i, v := range vertices {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, quboErrorf("DominatingSet", err)
		}
		slackStart[i] = next
		slackLen[i] = SlackBits(deg)
		next += slackLen[i]
	}
	total := next

	// Stage 2: one squared covering term per vertex.
	entries := make([]Entry, 0, total*4)
	for i := 0; i < nv; i++ {
		entries = append(entries, Entry{I: i, J: i, Value: 1})
	}
	type term struct {
		idx int
		a   float64
	}
	for i, v := range vertices {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, quboErrorf("DominatingSet", err)
		}
		terms := make([]term, 0, 1+len(nbrs)+slackLen[i])
		terms = append(terms, term{idx: i, a: 1})
		for _, u := range nbrs {
			terms = append(terms, term{idx: index[u], a: 1})
		}
		for b := 0; b < slackLen[i]; b++ {
			terms = append(terms, term{idx: slackStart[i] + b, a: -float64(uint(1) << b)})
		}
		for x, tx := range terms {
			entries = append(entries, Entry{I: tx.idx, J: tx.idx, Value: penalty * (tx.a*tx.a - 2*tx.a)})
			for _, ty := range terms[x+1:] {
				entries = append(entries, Entry{I: tx.idx, J: ty.idx, Value: 2 * penalty * tx.a * ty.a})
			}
		}
	}

	q, err := FromEntries(total, entries)
	if err != nil {
		return nil, quboErrorf("DominatingSet", err)
	}

	edges := g.Edges()
	adj := make([][2]int, len(edges))
	for i, e := range edges {
		adj[i] = [2]int{e.From, e.To}
	}

	return &Problem{
		QUBO:        q,
		VertexCount: nv,
		Penalty:     penalty,
		Vertices:    vertices,
		Adjacency:   adj,
	}, nil
}
