// SPDX-License-Identifier: MIT

package hardware

import (
	"context"

	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/offset"
)

// Properties describes a sampler's device.
type Properties struct {
	// Name identifies the machine, e.g. "DW_2000Q_5" or "simulator".
	Name string
	// QubitCount is the full-yield number of qubits; offset vectors have
	// this length.
	QubitCount int
	// Topology holds working qubits and couplers.
	Topology *core.Graph
	// AnnealOffsetRanges is indexed by qubit.
	AnnealOffsetRanges []offset.Range
}

// Coupler is a normalized (A < B) physical qubit pair.
type Coupler struct{ A, B int }

// NewCoupler orders a and b.
func NewCoupler(a, b int) Coupler {
	if a > b {
		a, b = b, a
	}
	return Coupler{A: a, B: b}
}

// Problem is a physical Ising problem.
type Problem struct {
	H map[int]float64
	J map[Coupler]float64
}

// Params controls one sampling call.
type Params struct {
	// NumReads is the number of samples; 0 means 1.
	NumReads int
	// AnnealOffsets, when set, has one entry per qubit (QubitCount long).
	AnnealOffsets []float64
}

// Sample is one physical read over the active qubits of a Problem.
type Sample struct {
	// Qubits lists active qubits in ascending order.
	Qubits []int
	// Spins are ±1, parallel to Qubits.
	Spins []int8
	// Energy is the physical Ising energy.
	Energy float64
}

// Sampler executes physical problems.
type Sampler interface {
	Properties() Properties
	Sample(ctx context.Context, p Problem, params Params) ([]Sample, error)
}
