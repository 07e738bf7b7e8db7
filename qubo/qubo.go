// SPDX-License-Identifier: MIT

package qubo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/matrix"
)

// Entry is one sparse coefficient of a QUBO. FromEntries folds (J, I) onto
// (I, J) so that only the upper triangle is populated.
type Entry struct {
	I, J  int
	Value float64
}

// QUBO is an immutable square coefficient matrix over binary variables.
type QUBO struct {
	q *matrix.Dense
}

// New wraps a deep copy of the square matrix m.
// Returns matrix.ErrNilMatrix or matrix.ErrNonSquare on bad input.
func New(m matrix.Matrix) (*QUBO, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, quboErrorf("New", err)
	}
	d, ok := m.Clone().(*matrix.Dense)
	if !ok {
		// foreign Matrix implementation: materialize through At.
		var err error
		if d, err = matrix.Scale(m, 1); err != nil {
			return nil, quboErrorf("New", err)
		}
	}

	return &QUBO{q: d}, nil
}

// FromEntries builds an n-variable QUBO by accumulating entries into the
// upper triangle. Duplicates add up.
//
// Steps:
//  1. Validate n and every index.
//  2. Swap (i, j) with i > j to (j, i).
//  3. Accumulate; non-finite sums are rejected by matrix.Dense.Set.
func FromEntries(n int, entries []Entry) (*QUBO, error) {
	if n <= 0 {
		return nil, quboErrorf("FromEntries", ErrEmpty)
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, quboErrorf("FromEntries", err)
	}
	for _, e := range entries {
		i, j := e.I, e.J
		if i < 0 || j < 0 || i >= n || j >= n {
			return nil, quboErrorf("FromEntries", fmt.Errorf("(%d,%d) with n=%d: %w", i, j, n, ErrVariableRange))
		}
		if i > j {
			i, j = j, i
		}
		cur, _ := d.At(i, j)
		if err = d.Set(i, j, cur+e.Value); err != nil {
			return nil, quboErrorf("FromEntries", err)
		}
	}

	return &QUBO{q: d}, nil
}

// Size returns the number of binary variables.
func (q *QUBO) Size() int { return q.q.Rows() }

// Linear returns the diagonal bias Q[i][i].
func (q *QUBO) Linear(i int) (float64, error) {
	return q.q.At(i, i)
}

// Quadratic returns the total coupling between i and j, Q[i][j] + Q[j][i],
// for i != j. For i == j it returns the linear bias.
func (q *QUBO) Quadratic(i, j int) (float64, error) {
	a, err := q.q.At(i, j)
	if err != nil {
		return 0, err
	}
	if i == j {
		return a, nil
	}
	b, err := q.q.At(j, i)
	if err != nil {
		return 0, err
	}

	return a + b, nil
}

// Matrix returns a copy of the coefficient matrix.
func (q *QUBO) Matrix() *matrix.Dense {
	return q.q.Clone().(*matrix.Dense)
}

// Energy returns xᵀQx for a 0/1 assignment x.
// Complexity: O(n²).
func (q *QUBO) Energy(x []int8) (float64, error) {
	n := q.Size()
	if len(x) != n {
		return 0, quboErrorf("Energy", fmt.Errorf("len=%d, want %d: %w", len(x), n, ErrAssignment))
	}
	for i, v := range x {
		if v != 0 && v != 1 {
			return 0, quboErrorf("Energy", fmt.Errorf("x[%d]=%d: %w", i, v, ErrAssignment))
		}
	}
	xf := make([]float64, n)
	for i, v := range x {
		xf[i] = float64(v)
	}
	qx, err := matrix.MatVec(q.q, xf)
	if err != nil {
		return 0, quboErrorf("Energy", err)
	}
	var e float64
	for i, v := range xf {
		e += v * qx[i]
	}

	return e, nil
}

// InteractionGraph returns the weighted logical graph of the problem:
// one vertex per variable and an edge {i,j} wherever Q[i][j]+Q[j][i] != 0.
// The edge weight is that combined coupling.
func (q *QUBO) InteractionGraph() *core.Graph {
	n := q.Size()
	rows := q.q.RawRows()
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := rows[i][j] + rows[j][i]
			if w == 0 || math.IsNaN(w) {
				continue
			}
			// indices are valid and distinct; weight is finite by construction
			_ = g.AddEdge(i, j, w)
		}
	}

	return g
}
