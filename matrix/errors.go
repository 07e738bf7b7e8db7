// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Sentinels. Kernels wrap them with their own name; match with errors.Is.
var (
	// ErrInvalidDimensions: a requested shape has a zero or negative side.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: At/Set index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes or vector length disagree.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare: a QUBO or coupling matrix must be square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged: NewDenseFrom rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNaNInf: coefficients must be finite.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: nil matrix or vector argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

func matrixErrorf(kernel string, err error) error {
	return fmt.Errorf("%s: %w", kernel, err)
}
