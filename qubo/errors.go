// SPDX-License-Identifier: MIT

package qubo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a problem with zero variables.
	ErrEmpty = errors.New("qubo: problem has no variables")

	// ErrVariableRange indicates an entry index outside [0, n).
	ErrVariableRange = errors.New("qubo: variable index out of range")

	// ErrAssignment indicates an assignment of the wrong length or with a
	// value other than 0 or 1.
	ErrAssignment = errors.New("qubo: invalid assignment")

	// ErrBadPenalty indicates a non-positive or non-finite penalty weight.
	ErrBadPenalty = errors.New("qubo: penalty must be finite and > 0")

	// ErrNilGraph indicates that a nil graph was supplied.
	ErrNilGraph = errors.New("qubo: graph is nil")
)

// quboErrorf tags err with the operation name, preserving the sentinel.
func quboErrorf(op string, err error) error {
	return fmt.Errorf("qubo.%s: %w", op, err)
}
