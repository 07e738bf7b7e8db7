// Package builder_test contains functional tests for the graph constructors,
// verifying topology, counts, determinism and error contracts.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlp/builder"
	"github.com/katalvlaran/qlp/core"
)

// chimeraEdges is the closed-form edge count of C(m,n,t).
func chimeraEdges(m, n, t int) int {
	return m*n*t*t + (m-1)*n*t + m*(n-1)*t
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "edge %d-%d", i, (i+1)%5)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 3))
				d, err := g.Degree(0)
				require.NoError(t, err)
				assert.Equal(t, 1, d)
			},
		},
		{
			name:  "Complete(6)",
			ctor:  builder.Complete(6),
			wantV: 6, wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 5, g.MaxDegree())
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Chimera(2,2,4)",
			ctor:  builder.Chimera(2, 2, 4),
			wantV: 32, wantE: chimeraEdges(2, 2, 4),
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// vertical qubit (0,0,0,1) couples south to (1,0,0,1)
				a := builder.ChimeraIndex(2, 4, 0, 0, 0, 1)
				b := builder.ChimeraIndex(2, 4, 1, 0, 0, 1)
				assert.True(t, g.HasEdge(a, b))
				// horizontal qubit (0,0,1,2) couples east to (0,1,1,2)
				c := builder.ChimeraIndex(2, 4, 0, 0, 1, 2)
				d := builder.ChimeraIndex(2, 4, 0, 1, 1, 2)
				assert.True(t, g.HasEdge(c, d))
				// no vertical-horizontal coupling across cells
				assert.False(t, g.HasEdge(a, d))
				// same-shore qubits in one cell are never coupled
				assert.False(t, g.HasEdge(builder.ChimeraIndex(2, 4, 0, 0, 0, 0), builder.ChimeraIndex(2, 4, 0, 0, 0, 1)))
			},
		},
		{
			name:  "Chimera(1,1,1)",
			ctor:  builder.Chimera(1, 1, 1),
			wantV: 2, wantE: 1,
		},
		{
			name:  "RandomSparse(p=1)",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 10,
		},
		{
			name:  "RandomSparse(p=0)",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestChimera_FullYield2000Q(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Chimera(16, 16, 4))
	require.NoError(t, err)
	assert.Equal(t, 2048, g.VertexCount())
	assert.Equal(t, chimeraEdges(16, 16, 4), g.EdgeCount())
	assert.Equal(t, 6, g.MaxDegree())
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"cycle too small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"path too small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"complete empty", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"chimera no cells", builder.Chimera(0, 2, 4), nil, builder.ErrTooFewVertices},
		{"chimera no shore", builder.Chimera(2, 2, 0), nil, builder.ErrTooFewVertices},
		{"sparse bad p", builder.RandomSparse(4, 1.5), nil, builder.ErrInvalidProbability},
		{"sparse needs rng", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	g1, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestWeightedBuild_UnitWeights(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Path(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, 1.0, e.Weight)
	}
}
