package qubo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlp/builder"
	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/matrix"
	"github.com/katalvlaran/qlp/qubo"
)

func TestFromEntries_FoldsAndAccumulates(t *testing.T) {
	q, err := qubo.FromEntries(3, []qubo.Entry{
		{I: 0, J: 0, Value: 1},
		{I: 2, J: 1, Value: 3},
		{I: 1, J: 2, Value: -1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Size())

	m := q.Matrix()
	v, _ := m.At(1, 2)
	assert.Equal(t, 2.0, v)
	v, _ = m.At(2, 1)
	assert.Equal(t, 0.0, v, "lower triangle stays empty")

	c, err := q.Quadratic(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c)
	l, err := q.Linear(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, l)

	_, err = qubo.FromEntries(2, []qubo.Entry{{I: 0, J: 2, Value: 1}})
	assert.ErrorIs(t, err, qubo.ErrVariableRange)
	_, err = qubo.FromEntries(0, nil)
	assert.ErrorIs(t, err, qubo.ErrEmpty)
}

func TestNew_CopiesAndValidates(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 0}})
	require.NoError(t, err)
	q, err := qubo.New(m)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 99))
	l, _ := q.Linear(0)
	assert.Equal(t, 1.0, l)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = qubo.New(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEnergy(t *testing.T) {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 0}})
	q, err := qubo.New(m)
	require.NoError(t, err)

	for _, tc := range []struct {
		x    []int8
		want float64
	}{
		{[]int8{0, 0}, 0},
		{[]int8{1, 0}, 1},
		{[]int8{0, 1}, 0},
		{[]int8{1, 1}, 3},
	} {
		e, err := q.Energy(tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, e, "x=%v", tc.x)
	}

	_, err = q.Energy([]int8{1})
	assert.ErrorIs(t, err, qubo.ErrAssignment)
	_, err = q.Energy([]int8{1, 2})
	assert.ErrorIs(t, err, qubo.ErrAssignment)
}

func TestInteractionGraph(t *testing.T) {
	q, err := qubo.FromEntries(4, []qubo.Entry{{I: 0, J: 1, Value: 2}, {I: 2, J: 2, Value: 5}})
	require.NoError(t, err)
	g := q.InteractionGraph()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	w, err := g.Weight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

func TestSlackBits(t *testing.T) {
	assert.Equal(t, 0, qubo.SlackBits(0))
	assert.Equal(t, 1, qubo.SlackBits(1))
	assert.Equal(t, 2, qubo.SlackBits(2))
	assert.Equal(t, 2, qubo.SlackBits(3))
	assert.Equal(t, 3, qubo.SlackBits(4))
}

func TestDominatingSet_Path3(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	const p = 2.0
	prob, err := qubo.DominatingSet(g, p)
	require.NoError(t, err)

	// selectors 0..2, slack bits: v0 → 1, v1 → 2, v2 → 1
	require.Equal(t, 7, prob.QUBO.Size())
	assert.Equal(t, 3, prob.VertexCount)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, prob.Adjacency)

	// center vertex alone dominates, all slack zero
	e, err := prob.QUBO.Energy([]int8{0, 1, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, e+p*3)

	// everything selected: surpluses 1, 2, 1
	e, err = prob.QUBO.Energy([]int8{1, 1, 1, 1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, e+p*3)

	// exhaustive: ground state is the minimum dominating set size
	best := 1e18
	n := prob.QUBO.Size()
	x := make([]int8, n)
	for mask := 0; mask < 1<<n; mask++ {
		for i := range x {
			x[i] = int8((mask >> i) & 1)
		}
		e, err := prob.QUBO.Energy(x)
		require.NoError(t, err)
		sel := float64(x[0] + x[1] + x[2])
		assert.GreaterOrEqual(t, e+p*3, sel, "penalty never negative")
		if e < best {
			best = e
		}
	}
	assert.Equal(t, 1.0, best+p*3)
}

func TestDominatingSet_Isolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	prob, err := qubo.DominatingSet(g, 5)
	require.NoError(t, err)
	require.Equal(t, 1, prob.QUBO.Size())
	e, err := prob.QUBO.Energy([]int8{1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, e+5)
}

func TestDominatingSet_Errors(t *testing.T) {
	_, err := qubo.DominatingSet(nil, 1)
	assert.ErrorIs(t, err, qubo.ErrNilGraph)
	_, err = qubo.DominatingSet(core.NewGraph(), 1)
	assert.ErrorIs(t, err, qubo.ErrEmpty)
	g, _ := builder.BuildGraph(nil, nil, builder.Path(2))
	_, err = qubo.DominatingSet(g, 0)
	assert.ErrorIs(t, err, qubo.ErrBadPenalty)
}
