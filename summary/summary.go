// SPDX-License-Identifier: MIT

package summary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qlp/store"
)

var (
	// ErrMalformedBatch indicates a row whose width differs from the
	// variable count, or values outside {0,1}.
	ErrMalformedBatch = errors.New("summary: malformed batch")

	// ErrBadMeta indicates inconsistent metadata (vertices > variables,
	// negative counts).
	ErrBadMeta = errors.New("summary: bad metadata")
)

// Row is one unembedded sample.
type Row struct {
	// Sample holds one {0,1} value per QUBO variable.
	Sample             []int8
	ChainBreakFraction float64
	// Energy is the QUBO energy reported for Sample.
	Energy      float64
	Occurrences int
}

// Batch is an ordered list of rows.
type Batch []Row

// Meta carries the problem sizes needed to interpret a batch.
type Meta struct {
	// Variables is the QUBO size (total_qubits).
	Variables int
	// Vertices is the number of real graph variables (total_vertices); they
	// occupy the first Vertices columns.
	Vertices int
	// Penalty is the constraint weight p.
	Penalty float64
}

// Stats holds the derived columns, parallel to the batch.
type Stats struct {
	SpinConfig             [][]int8
	Energy                 []float64
	ChainBreakFraction     []float64
	ConstraintSatisfaction []bool
}

// Len returns the number of summarized rows.
func (s *Stats) Len() int { return len(s.Energy) }

// Summarize derives corrected energies and constraint flags.
func Summarize(batch Batch, meta Meta) (*Stats, error) {
	if meta.Vertices < 0 || meta.Variables < meta.Vertices {
		return nil, fmt.Errorf("Summarize: vertices=%d variables=%d: %w", meta.Vertices, meta.Variables, ErrBadMeta)
	}
	n := len(batch)
	st := &Stats{
		SpinConfig:             make([][]int8, n),
		Energy:                 make([]float64, n),
		ChainBreakFraction:     make([]float64, n),
		ConstraintSatisfaction: make([]bool, n),
	}
	offset := meta.Penalty * float64(meta.Vertices)
	for i, row := range batch {
		if len(row.Sample) != meta.Variables {
			return nil, fmt.Errorf("Summarize: row %d has %d values, want %d: %w",
				i, len(row.Sample), meta.Variables, ErrMalformedBatch)
		}
		var selected int
		for j, v := range row.Sample {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("Summarize: row %d col %d = %d: %w", i, j, v, ErrMalformedBatch)
			}
			if j < meta.Vertices {
				selected += int(v)
			}
		}
		st.SpinConfig[i] = append([]int8(nil), row.Sample...)
		st.Energy[i] = row.Energy + offset
		st.ChainBreakFraction[i] = row.ChainBreakFraction
		st.ConstraintSatisfaction[i] = st.Energy[i] == float64(selected)
	}

	return st, nil
}

// DataRecords converts stats into unsaved data records; the store assigns
// experiment keys and measurement numbers.
func DataRecords(st *Stats) []store.DataRecord {
	out := make([]store.DataRecord, st.Len())
	for i := range out {
		out[i] = store.DataRecord{
			SpinConfig:             st.SpinConfig[i],
			ChainBreakFraction:     st.ChainBreakFraction[i],
			Energy:                 st.Energy[i],
			ConstraintSatisfaction: st.ConstraintSatisfaction[i],
		}
	}

	return out
}
