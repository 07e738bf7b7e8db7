package hardware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlp/builder"
	"github.com/katalvlaran/qlp/embedding"
	"github.com/katalvlaran/qlp/hardware"
	"github.com/katalvlaran/qlp/ising"
	"github.com/katalvlaran/qlp/matrix"
	"github.com/katalvlaran/qlp/offset"
	"github.com/katalvlaran/qlp/qubo"
)

// stubSampler returns canned reads and records the last problem.
type stubSampler struct {
	props hardware.Properties
	reads []hardware.Sample
	last  hardware.Problem
	param hardware.Params
}

func (s *stubSampler) Properties() hardware.Properties { return s.props }

func (s *stubSampler) Sample(_ context.Context, p hardware.Problem, params hardware.Params) ([]hardware.Sample, error) {
	s.last, s.param = p, params
	return s.reads, nil
}

func cycleSampler(t *testing.T) *stubSampler {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	ranges := make([]offset.Range, 4)
	for i := range ranges {
		ranges[i] = offset.Range{Min: 0, Max: 0.3}
	}
	return &stubSampler{props: hardware.Properties{Name: "stub", QubitCount: 4, Topology: g, AnnealOffsetRanges: ranges}}
}

// triangleModel is the Ising form of x0x1 + x1x2 + x0x2 − x0 − x1 − x2.
func triangleModel(t *testing.T) (*qubo.QUBO, *ising.Model) {
	t.Helper()
	m, err := matrix.NewDenseFrom([][]float64{{-1, 1, 1}, {0, -1, 1}, {0, 0, -1}})
	require.NoError(t, err)
	q, err := qubo.New(m)
	require.NoError(t, err)
	model, err := ising.FromQUBO(q)
	require.NoError(t, err)
	return q, model
}

func TestNewFixedEmbedding_Validation(t *testing.T) {
	s := cycleSampler(t)
	_, err := hardware.NewFixedEmbedding(nil, embedding.Embedding{0: {0}}, 1)
	assert.ErrorIs(t, err, hardware.ErrNilSampler)
	_, err = hardware.NewFixedEmbedding(s, embedding.Embedding{0: {0}}, 0)
	assert.ErrorIs(t, err, hardware.ErrBadChainStrength)
	_, err = hardware.NewFixedEmbedding(s, embedding.Embedding{0: {9}}, 1)
	assert.ErrorIs(t, err, hardware.ErrUnknownQubit)
	_, err = hardware.NewFixedEmbedding(s, embedding.Embedding{0: {0, 2}}, 1)
	assert.ErrorIs(t, err, hardware.ErrBrokenChain)
	_, err = hardware.NewFixedEmbedding(s, embedding.Embedding{0: {0}, 1: {0}}, 1)
	assert.ErrorIs(t, err, embedding.ErrInvalidEmbedding)
}

func TestEmbedModel_Splits(t *testing.T) {
	s := cycleSampler(t)
	_, model := triangleModel(t)
	fe, err := hardware.NewFixedEmbedding(s, embedding.Embedding{0: {0}, 1: {1}, 2: {2, 3}}, 2)
	require.NoError(t, err)

	p, err := fe.EmbedModel(model)
	require.NoError(t, err)

	// h_2 is split over qubits 2 and 3
	assert.InDelta(t, model.H[2]/2, p.H[2], 1e-12)
	assert.InDelta(t, model.H[2]/2, p.H[3], 1e-12)
	assert.InDelta(t, model.H[0], p.H[0], 1e-12)

	j02, _ := model.J.At(0, 2)
	j12, _ := model.J.At(1, 2)
	// 0-2 is realized only by coupler 0-3, 1-2 only by 1-2
	assert.InDelta(t, j02, p.J[hardware.NewCoupler(0, 3)], 1e-12)
	assert.InDelta(t, j12, p.J[hardware.NewCoupler(1, 2)], 1e-12)
	assert.Equal(t, -2.0, p.J[hardware.NewCoupler(2, 3)])
	assert.Len(t, p.J, 4)

	_, err = fe.EmbedModel(&ising.Model{J: model.J, H: append(model.H, 0), G: 0})
	assert.ErrorIs(t, err, hardware.ErrUnembedded)
}

func TestSample_MajorityVoteAndEnergy(t *testing.T) {
	s := cycleSampler(t)
	q, model := triangleModel(t)
	s.reads = []hardware.Sample{
		// chain {2,3} intact
		{Qubits: []int{0, 1, 2, 3}, Spins: []int8{1, -1, -1, -1}},
		// chain {2,3} broken, tie resolves to +1
		{Qubits: []int{0, 1, 2, 3}, Spins: []int8{-1, -1, 1, -1}},
	}
	fe, err := hardware.NewFixedEmbedding(s, embedding.Embedding{0: {0}, 1: {1}, 2: {2, 3}}, 1)
	require.NoError(t, err)

	offsets := make([]float64, 4)
	batch, err := fe.Sample(context.Background(), model, hardware.Params{NumReads: 2, AnnealOffsets: offsets})
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, offsets, s.param.AnnealOffsets)

	assert.Equal(t, []int8{1, 0, 0}, batch[0].Sample)
	assert.Equal(t, 0.0, batch[0].ChainBreakFraction)
	assert.Equal(t, []int8{0, 0, 1}, batch[1].Sample)
	assert.InDelta(t, 1.0/3.0, batch[1].ChainBreakFraction, 1e-12)

	for _, row := range batch {
		want, err := q.Energy(row.Sample)
		require.NoError(t, err)
		assert.InDelta(t, want, row.Energy, 1e-12, "energy is the QUBO energy")
		assert.Equal(t, -1.0, row.Energy)
	}
}

func TestSimulator_Properties(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Chimera(1, 1, 4))
	require.NoError(t, err)
	sim, err := hardware.NewSimulator(g,
		hardware.WithName("sim-c1"),
		hardware.WithQubitCount(16),
		hardware.WithOffsetRanges(func(q int) offset.Range {
			return offset.Range{Min: -0.1 * float64(q%2), Max: 0.3}
		}),
	)
	require.NoError(t, err)
	props := sim.Properties()
	assert.Equal(t, "sim-c1", props.Name)
	assert.Equal(t, 16, props.QubitCount)
	require.Len(t, props.AnnealOffsetRanges, 16)
	assert.Equal(t, offset.Range{Min: -0.1, Max: 0.3}, props.AnnealOffsetRanges[15])

	props.AnnealOffsetRanges[0] = offset.Range{}
	assert.Equal(t, 0.3, sim.Properties().AnnealOffsetRanges[0].Max, "copy returned")

	_, err = hardware.NewSimulator(nil)
	assert.ErrorIs(t, err, hardware.ErrBadParams)
}

func TestWorkingGraph_DeadQubits(t *testing.T) {
	full, err := builder.BuildGraph(nil, nil, builder.Chimera(1, 1, 4))
	require.NoError(t, err)

	work, err := hardware.WorkingGraph(full, []int{0, 7})
	require.NoError(t, err)
	assert.Equal(t, 6, work.VertexCount())
	assert.Equal(t, 9, work.EdgeCount())
	assert.False(t, work.HasVertex(0))
	assert.Equal(t, 8, full.VertexCount(), "input untouched")

	sim, err := hardware.NewSimulator(work, hardware.WithQubitCount(full.VertexCount()))
	require.NoError(t, err)
	assert.Equal(t, 8, sim.Properties().QubitCount)
	_, err = sim.Sample(context.Background(), hardware.Problem{H: map[int]float64{0: 1}}, hardware.Params{})
	assert.ErrorIs(t, err, hardware.ErrUnknownQubit)

	_, err = hardware.WorkingGraph(full, []int{99})
	assert.ErrorIs(t, err, hardware.ErrUnknownQubit)
	_, err = hardware.WorkingGraph(nil, nil)
	assert.ErrorIs(t, err, hardware.ErrBadParams)
}

func TestSimulator_Validation(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	sim, err := hardware.NewSimulator(g)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = sim.Sample(ctx, hardware.Problem{H: map[int]float64{5: 1}}, hardware.Params{})
	assert.ErrorIs(t, err, hardware.ErrUnknownQubit)
	_, err = sim.Sample(ctx, hardware.Problem{J: map[hardware.Coupler]float64{hardware.NewCoupler(0, 2): 1}}, hardware.Params{})
	assert.ErrorIs(t, err, hardware.ErrNotCoupled)
	_, err = sim.Sample(ctx, hardware.Problem{H: map[int]float64{0: 1}}, hardware.Params{AnnealOffsets: []float64{0}})
	assert.ErrorIs(t, err, hardware.ErrBadParams)
	_, err = sim.Sample(ctx, hardware.Problem{H: map[int]float64{0: 1}}, hardware.Params{NumReads: -1})
	assert.ErrorIs(t, err, hardware.ErrBadParams)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = sim.Sample(cancelled, hardware.Problem{H: map[int]float64{0: 1}}, hardware.Params{NumReads: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulator_FindsGroundState(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	sim, err := hardware.NewSimulator(g, hardware.WithSeed(11))
	require.NoError(t, err)

	// ferromagnetic chain pulled down by a field on qubit 0
	p := hardware.Problem{
		H: map[int]float64{0: 1},
		J: map[hardware.Coupler]float64{
			hardware.NewCoupler(0, 1): -1,
			hardware.NewCoupler(1, 2): -1,
		},
	}
	reads, err := sim.Sample(context.Background(), p, hardware.Params{NumReads: 5, AnnealOffsets: make([]float64, 3)})
	require.NoError(t, err)
	require.Len(t, reads, 5)
	for _, r := range reads {
		assert.Equal(t, []int{0, 1, 2}, r.Qubits)
		assert.Equal(t, []int8{-1, -1, -1}, r.Spins)
		assert.Equal(t, -3.0, r.Energy)
	}
}

func TestSimulator_Seeded(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(6))
	require.NoError(t, err)
	p := hardware.Problem{H: map[int]float64{}, J: map[hardware.Coupler]float64{}}
	for _, e := range g.Edges() {
		p.J[hardware.NewCoupler(e.From, e.To)] = 1 // frustrated antiferromagnet
	}
	run := func() []hardware.Sample {
		sim, err := hardware.NewSimulator(g, hardware.WithSeed(5), hardware.WithSweeps(20))
		require.NoError(t, err)
		out, err := sim.Sample(context.Background(), p, hardware.Params{NumReads: 4})
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, run(), run())
}

func TestEndToEnd_SimulatorThroughComposite(t *testing.T) {
	topo, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	sim, err := hardware.NewSimulator(topo, hardware.WithSeed(3))
	require.NoError(t, err)
	q, model := triangleModel(t)

	factory := hardware.Factory(sim, 2)
	comp, err := factory(embedding.Embedding{0: {0}, 1: {1}, 2: {2, 3}})
	require.NoError(t, err)
	fe := comp.(*hardware.FixedEmbedding)
	assert.Len(t, fe.AnnealOffsetRanges(), 4)

	batch, err := fe.Sample(context.Background(), model, hardware.Params{NumReads: 10})
	require.NoError(t, err)
	require.Len(t, batch, 10)
	for _, row := range batch {
		want, err := q.Energy(row.Sample)
		require.NoError(t, err)
		assert.InDelta(t, want, row.Energy, 1e-12)
		assert.Equal(t, -1.0, row.Energy, "ground state selects one vertex")
		assert.Equal(t, 0.0, row.ChainBreakFraction)
	}
}
