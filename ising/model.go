// SPDX-License-Identifier: MIT

package ising

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qlp/matrix"
	"github.com/katalvlaran/qlp/qubo"
)

var (
	// ErrNilProblem indicates a nil QUBO.
	ErrNilProblem = errors.New("ising: nil problem")

	// ErrSpinValue indicates a spin outside {−1,+1} or a bit outside {0,1}.
	ErrSpinValue = errors.New("ising: invalid spin value")

	// ErrLength indicates a configuration whose length differs from the model size.
	ErrLength = errors.New("ising: configuration length mismatch")
)

// Model is an Ising model: strictly upper-triangular couplings J, linear
// biases H and the constant offset G.
type Model struct {
	J *matrix.Dense
	H []float64
	G float64
}

// Coupling is one non-zero entry of J with I < J.
type Coupling struct {
	I, J  int
	Value float64
}

// FromQUBO converts q to an Ising model.
func FromQUBO(q *qubo.QUBO) (*Model, error) {
	if q == nil {
		return nil, ErrNilProblem
	}
	return FromMatrix(q.Matrix())
}

// FromMatrix converts a square QUBO matrix to an Ising model.
//
// Stage 1: split Q into its diagonal q and off-diagonal part QD.
// Stage 2: QQ = QD + QDᵀ collects each interaction once per triangle.
// Stage 3: J, h, G per the package formulas.
func FromMatrix(m matrix.Matrix) (*Model, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}
	q, err := matrix.Diagonal(m)
	if err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}
	qd, err := matrix.WithZeroDiagonal(m)
	if err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}
	qq, err := matrix.Symmetrize(qd)
	if err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}

	upper, err := matrix.UpperTriangle(qq, true)
	if err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}
	j, err := matrix.Scale(upper, 0.25)
	if err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}

	rows, err := matrix.RowSums(qq)
	if err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}
	h := make([]float64, len(q))
	var sumQ float64
	for i := range q {
		h[i] = q[i]/2 + rows[i]/4
		sumQ += q[i]
	}

	sumQD, err := matrix.Sum(qd)
	if err != nil {
		return nil, fmt.Errorf("ising.FromMatrix: %w", err)
	}

	return &Model{J: j, H: h, G: sumQD/4 + sumQ/2}, nil
}

// Size returns the number of spins.
func (m *Model) Size() int { return len(m.H) }

// Couplings lists the non-zero J entries in (I, J) order.
func (m *Model) Couplings() []Coupling {
	rows := m.J.RawRows()
	var out []Coupling
	for i := range rows {
		for j := i + 1; j < len(rows[i]); j++ {
			if rows[i][j] != 0 {
				out = append(out, Coupling{I: i, J: j, Value: rows[i][j]})
			}
		}
	}

	return out
}

// Energy evaluates Σ_{i<j} J_ij s_i s_j + h·s + G for spins in {−1,+1}.
func (m *Model) Energy(spins []int8) (float64, error) {
	if len(spins) != m.Size() {
		return 0, fmt.Errorf("ising.Energy: len=%d, want %d: %w", len(spins), m.Size(), ErrLength)
	}
	for i, s := range spins {
		if s != -1 && s != 1 {
			return 0, fmt.Errorf("ising.Energy: s[%d]=%d: %w", i, s, ErrSpinValue)
		}
	}
	e := m.G
	for i, s := range spins {
		e += m.H[i] * float64(s)
	}
	for _, c := range m.Couplings() {
		e += c.Value * float64(spins[c.I]*spins[c.J])
	}

	return e, nil
}

// Spins maps binary values to spins: 0 → −1, 1 → +1.
func Spins(x []int8) ([]int8, error) {
	out := make([]int8, len(x))
	for i, v := range x {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("ising.Spins: x[%d]=%d: %w", i, v, ErrSpinValue)
		}
		out[i] = 2*v - 1
	}

	return out, nil
}

// Binary maps spins to binary values: −1 → 0, +1 → 1.
func Binary(s []int8) ([]int8, error) {
	out := make([]int8, len(s))
	for i, v := range s {
		if v != -1 && v != 1 {
			return nil, fmt.Errorf("ising.Binary: s[%d]=%d: %w", i, v, ErrSpinValue)
		}
		out[i] = (v + 1) / 2
	}

	return out, nil
}
