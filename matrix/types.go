// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view the kernels accept. QUBO coefficient
// matrices and Ising coupling matrices are both carried as *Dense; the
// interface lets tests pass lightweight fakes.
type Matrix interface {
	Rows() int
	Cols() int
	// At and Set return ErrOutOfRange for bad indices.
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
	Clone() Matrix
}
