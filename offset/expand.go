// SPDX-License-Identifier: MIT

package offset

import (
	"fmt"
	"sort"
)

// Physical is a full-device offset vector plus the descriptive policy tag.
type Physical struct {
	Offsets []float64
	Tag     string
}

// Expand spreads logical offsets over chains into a qubitCount-long vector.
// Every qubit of chains[v] receives values[v]; all other entries are 0.
//
// Errors:
//   - ErrMissingVariable if a chain's variable has no entry in values.
//   - ErrQubitOutOfRange if a chain qubit is outside [0, qubitCount) or
//     qubitCount is negative.
func Expand(values []float64, chains map[int][]int, qubitCount int) ([]float64, error) {
	if qubitCount < 0 {
		return nil, fmt.Errorf("Expand: qubitCount=%d: %w", qubitCount, ErrQubitOutOfRange)
	}
	out := make([]float64, qubitCount)
	// sorted walk keeps the first reported error stable
	vars := make([]int, 0, len(chains))
	for v := range chains {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	for _, v := range vars {
		if v < 0 || v >= len(values) {
			return nil, fmt.Errorf("Expand: variable %d of %d: %w", v, len(values), ErrMissingVariable)
		}
		for _, q := range chains[v] {
			if q < 0 || q >= qubitCount {
				return nil, fmt.Errorf("Expand: qubit %d of %d (variable %d): %w", q, qubitCount, v, ErrQubitOutOfRange)
			}
			out[q] = values[v]
		}
	}

	return out, nil
}

// FindOffsets evaluates p for biases h within r and expands the result onto
// the embedding's chains.
func FindOffsets(p Policy, h []float64, r Range, chains map[int][]int, qubitCount int) (*Physical, error) {
	values, err := p.Offsets(h, r)
	if err != nil {
		return nil, err
	}
	phys, err := Expand(values, chains, qubitCount)
	if err != nil {
		return nil, err
	}

	return &Physical{Offsets: phys, Tag: p.Describe()}, nil
}
