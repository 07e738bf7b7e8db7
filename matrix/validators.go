// SPDX-License-Identifier: MIT

package matrix

// ValidateNotNil rejects nil, including a nil *Dense inside the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape requires equal dimensions; a and b must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return matrixErrorf("ValidateSameShape",
			fmtShape(ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
	return nil
}

// ValidateSquare requires a non-nil n×n matrix.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf("ValidateSquare",
			fmtShape(ErrNonSquare, m.Rows(), m.Cols(), m.Cols(), m.Cols()))
	}
	return nil
}

// ValidateVecLen requires a non-nil vector of length n. An empty non-nil
// slice is fine for n == 0.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return matrixErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return matrixErrorf("ValidateVecLen",
			fmtShape(ErrDimensionMismatch, len(x), 1, n, 1))
	}
	return nil
}
