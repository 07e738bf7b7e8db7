// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels, reductions and structural helpers on Dense.
//   - Every kernel allocates its output; inputs are never mutated.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) so floating-point sums are reproducible.
//   - Dense fast-path operates on a single flat buffer (row-major).

package matrix

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf("Add", err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf("Add", err)
	}
	out, _ := NewDense(da.r, da.c) // shape already validated
	for k := range out.data {      // flat loop over row-major buffer
		out.data[k] = da.data[k] + db.data[k]
	}

	return out, nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	out, _ := NewDense(d.r, d.c)
	for k, v := range d.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	out, _ := NewDense(d.c, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*out.c+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Cols(m).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	y := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		base := i * d.c // cache the base offset for row i
		var acc float64
		for j := 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1
	}

	return MatVec(m, ones)
}

// Sum returns Σ_ij m[i,j].
func Sum(m Matrix) (float64, error) {
	rs, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf("Sum", err)
	}
	var total float64
	for _, v := range rs {
		total += v
	}

	return total, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	diag := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		diag[i] = d.data[i*d.c+i]
	}

	return diag, nil
}

// WithZeroDiagonal returns a copy of the square matrix m with its diagonal cleared.
func WithZeroDiagonal(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("WithZeroDiagonal", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("WithZeroDiagonal", err)
	}
	out := d.Clone().(*Dense)
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+i] = 0
	}

	return out, nil
}

// UpperTriangle returns the upper triangle of a square matrix. When strict
// is true the diagonal is excluded (numpy triu with k=1), otherwise kept.
func UpperTriangle(m Matrix, strict bool) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("UpperTriangle", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("UpperTriangle", err)
	}
	out, _ := NewDense(d.r, d.c)
	for i := 0; i < d.r; i++ {
		start := i // first kept column in row i
		if strict {
			start = i + 1
		}
		for j := start; j < d.c; j++ {
			out.data[i*d.c+j] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// Symmetrize returns m + mᵀ (no halving), the symmetric coupling form used
// when a QUBO stores each interaction in only one triangle.
func Symmetrize(m Matrix) (*Dense, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return sum, nil
}
