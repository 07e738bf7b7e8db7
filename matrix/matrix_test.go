package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlp/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

func TestNewDense_Errors(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must not alias the source buffer")
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.RawRows())
}

func TestKernels(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, tr.RawRows())

	sym, err := matrix.Symmetrize(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 5}, {5, 8}}, sym.RawRows())

	sc, err := matrix.Scale(m, 0.25)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.25, 0.5}, {0.75, 1}}, sc.RawRows())

	rs, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, rs)

	total, err := matrix.Sum(m)
	require.NoError(t, err)
	assert.Equal(t, 10.0, total)

	diag, err := matrix.Diagonal(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, diag)

	zd, err := matrix.WithZeroDiagonal(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {3, 0}}, zd.RawRows())

	up, err := matrix.UpperTriangle(m, true)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {0, 0}}, up.RawRows())

	upd, err := matrix.UpperTriangle(m, false)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {0, 4}}, upd.RawRows())
}

func TestKernels_ShapeErrors(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}})
	b := mustDense(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Diagonal(a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	_, err = matrix.Transpose(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
