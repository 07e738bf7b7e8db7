// SPDX-License-Identifier: MIT

package embedding

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qlp/bfs"
	"github.com/katalvlaran/qlp/core"
)

// Embedding maps each logical variable to its chain of physical qubits.
type Embedding map[int][]int

// Variables returns the embedded logical variables in ascending order.
func (e Embedding) Variables() []int {
	vars := make([]int, 0, len(e))
	for v := range e {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	return vars
}

// Qubits flattens all chains in variable order, chain order preserved.
func (e Embedding) Qubits() []int {
	var out []int
	for _, v := range e.Variables() {
		out = append(out, e[v]...)
	}

	return out
}

// Clone returns a deep copy.
func (e Embedding) Clone() Embedding {
	out := make(Embedding, len(e))
	for v, chain := range e {
		out[v] = append([]int(nil), chain...)
	}

	return out
}

// Validate checks the structural chain rules: at least one variable, every
// chain non-empty with non-negative qubits, chains pairwise disjoint.
func (e Embedding) Validate() error {
	if len(e) == 0 {
		return fmt.Errorf("Validate: empty: %w", ErrInvalidEmbedding)
	}
	owner := make(map[int]int)
	for _, v := range e.Variables() {
		chain := e[v]
		if len(chain) == 0 {
			return fmt.Errorf("Validate: variable %d has an empty chain: %w", v, ErrInvalidEmbedding)
		}
		for _, q := range chain {
			if q < 0 {
				return fmt.Errorf("Validate: variable %d uses qubit %d: %w", v, q, ErrInvalidEmbedding)
			}
			if prev, taken := owner[q]; taken {
				return fmt.Errorf("Validate: qubit %d shared by variables %d and %d: %w", q, prev, v, ErrInvalidEmbedding)
			}
			owner[q] = v
		}
	}

	return nil
}

// Verify checks that e is a minor embedding of source into target:
//   - Validate holds;
//   - every source vertex has a chain;
//   - every chain is a connected set of target qubits;
//   - every source edge is realized by at least one target coupler between
//     the two chains.
func (e Embedding) Verify(source, target *core.Graph) error {
	if source == nil || target == nil {
		return ErrNilGraph
	}
	if err := e.Validate(); err != nil {
		return err
	}
	for _, v := range source.Vertices() {
		chain, ok := e[v]
		if !ok {
			return fmt.Errorf("Verify: variable %d has no chain: %w", v, ErrInvalidEmbedding)
		}
		if !bfs.Connected(target, chain) {
			return fmt.Errorf("Verify: chain of variable %d is not connected: %w", v, ErrInvalidEmbedding)
		}
	}
	for _, edge := range source.Edges() {
		if !e.coupled(target, edge.From, edge.To) {
			return fmt.Errorf("Verify: coupling %d-%d has no physical coupler: %w", edge.From, edge.To, ErrInvalidEmbedding)
		}
	}

	return nil
}

// coupled reports whether any qubit of chain u neighbors any qubit of chain v.
func (e Embedding) coupled(target *core.Graph, u, v int) bool {
	for _, a := range e[u] {
		for _, b := range e[v] {
			if target.HasEdge(a, b) {
				return true
			}
		}
	}

	return false
}
