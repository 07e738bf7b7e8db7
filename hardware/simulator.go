// SPDX-License-Identifier: MIT

package hardware

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/offset"
)

// Simulator defaults.
const (
	DefaultSimulatorName = "simulator"
	defaultSweeps        = 200
	betaStart            = 0.1
	betaEnd              = 10.0
)

// DefaultOffsetRange is the per-qubit range a Simulator reports unless
// configured otherwise.
var DefaultOffsetRange = offset.Range{Min: 0, Max: 0.4}

// Simulator is a seeded simulated-annealing Sampler over a fixed topology.
// Reads of one call run in parallel; each draws its own seed from the
// shared RNG, so a given seed and call sequence reproduce the same reads.
type Simulator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	props  Properties
	sweeps int
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithName sets the reported machine name.
func WithName(name string) SimulatorOption {
	return func(s *Simulator) { s.props.Name = name }
}

// WithSeed makes sampling reproducible.
func WithSeed(seed int64) SimulatorOption {
	return func(s *Simulator) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithSweeps sets the annealing sweeps per read. Panics on n <= 0.
func WithSweeps(n int) SimulatorOption {
	if n <= 0 {
		panic("hardware: WithSweeps(n<=0)")
	}
	return func(s *Simulator) { s.sweeps = n }
}

// WithOffsetRanges sets per-qubit ranges via fn.
func WithOffsetRanges(fn func(q int) offset.Range) SimulatorOption {
	if fn == nil {
		panic("hardware: WithOffsetRanges(nil)")
	}
	return func(s *Simulator) {
		for q := range s.props.AnnealOffsetRanges {
			s.props.AnnealOffsetRanges[q] = fn(q)
		}
	}
}

// WithQubitCount overrides the full-yield qubit count, which otherwise is
// one past the largest vertex of the topology. Panics if n is too small.
func WithQubitCount(n int) SimulatorOption {
	return func(s *Simulator) {
		if n < len(s.props.AnnealOffsetRanges) {
			panic("hardware: WithQubitCount below topology size")
		}
		for len(s.props.AnnealOffsetRanges) < n {
			s.props.AnnealOffsetRanges = append(s.props.AnnealOffsetRanges, DefaultOffsetRange)
		}
		s.props.QubitCount = n
	}
}

// WorkingGraph removes dead qubits from a full-yield topology, as on a
// device with partial yield. Pair it with WithQubitCount so offset vectors
// keep the full-yield length.
func WorkingGraph(topology *core.Graph, dead []int) (*core.Graph, error) {
	if topology == nil {
		return nil, fmt.Errorf("WorkingGraph: nil topology: %w", ErrBadParams)
	}
	keep := make(map[int]bool, topology.VertexCount())
	for _, q := range topology.Vertices() {
		keep[q] = true
	}
	for _, q := range dead {
		if !topology.HasVertex(q) {
			return nil, fmt.Errorf("WorkingGraph: qubit %d: %w", q, ErrUnknownQubit)
		}
		keep[q] = false
	}

	return core.InducedSubgraph(topology, keep), nil
}

// NewSimulator builds a Simulator over topology (cloned).
func NewSimulator(topology *core.Graph, opts ...SimulatorOption) (*Simulator, error) {
	if topology == nil {
		return nil, fmt.Errorf("NewSimulator: nil topology: %w", ErrBadParams)
	}
	n := 0
	if vs := topology.Vertices(); len(vs) > 0 {
		n = vs[len(vs)-1] + 1
	}
	ranges := make([]offset.Range, n)
	for i := range ranges {
		ranges[i] = DefaultOffsetRange
	}
	s := &Simulator{
		rng:    rand.New(rand.NewSource(1)),
		sweeps: defaultSweeps,
		props: Properties{
			Name:               DefaultSimulatorName,
			QubitCount:         n,
			Topology:           topology.Clone(),
			AnnealOffsetRanges: ranges,
		},
	}
	// options apply in order: WithQubitCount before WithOffsetRanges
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Properties implements Sampler. The returned slices are copies.
func (s *Simulator) Properties() Properties {
	p := s.props
	p.AnnealOffsetRanges = append([]offset.Range(nil), s.props.AnnealOffsetRanges...)
	return p
}

// Sample implements Sampler.
//
// Stage 1: validate parameters, qubits and couplers.
// Stage 2: per read, random start, Metropolis sweeps on a geometric β
// schedule scaled by the largest coefficient, then greedy descent.
func (s *Simulator) Sample(ctx context.Context, p Problem, params Params) ([]Sample, error) {
	if params.NumReads < 0 {
		return nil, fmt.Errorf("Simulator.Sample: num_reads=%d: %w", params.NumReads, ErrBadParams)
	}
	if params.AnnealOffsets != nil && len(params.AnnealOffsets) != s.props.QubitCount {
		return nil, fmt.Errorf("Simulator.Sample: %d anneal offsets for %d qubits: %w",
			len(params.AnnealOffsets), s.props.QubitCount, ErrBadParams)
	}
	reads := params.NumReads
	if reads == 0 {
		reads = 1
	}

	lp, err := s.compile(p)
	if err != nil {
		return nil, err
	}

	// seeds are drawn up front; reads never touch the shared rng
	s.mu.Lock()
	seeds := make([]int64, reads)
	for r := range seeds {
		seeds[r] = s.rng.Int63()
	}
	s.mu.Unlock()

	out := make([]Sample, reads)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for r := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			spins := lp.anneal(rand.New(rand.NewSource(seeds[r])), s.sweeps)
			out[r] = Sample{
				Qubits: append([]int(nil), lp.qubits...),
				Spins:  spins,
				Energy: lp.energy(spins),
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// localProblem is a Problem re-indexed onto its active qubits.
type localProblem struct {
	qubits []int
	h      []float64
	nbrs   [][]localCoupling
	scale  float64
}

type localCoupling struct {
	to int
	j  float64
}

func (s *Simulator) compile(p Problem) (*localProblem, error) {
	active := make(map[int]struct{}, len(p.H))
	for q := range p.H {
		active[q] = struct{}{}
	}
	for c := range p.J {
		active[c.A] = struct{}{}
		active[c.B] = struct{}{}
	}
	lp := &localProblem{qubits: make([]int, 0, len(active))}
	for q := range active {
		if !s.props.Topology.HasVertex(q) {
			return nil, fmt.Errorf("Simulator.Sample: qubit %d: %w", q, ErrUnknownQubit)
		}
		lp.qubits = append(lp.qubits, q)
	}
	sort.Ints(lp.qubits)
	index := make(map[int]int, len(lp.qubits))
	for i, q := range lp.qubits {
		index[q] = i
	}

	lp.h = make([]float64, len(lp.qubits))
	lp.nbrs = make([][]localCoupling, len(lp.qubits))
	for q, v := range p.H {
		lp.h[index[q]] = v
		lp.scale = math.Max(lp.scale, math.Abs(v))
	}
	// deterministic coupler order keeps seeded runs reproducible
	couplers := make([]Coupler, 0, len(p.J))
	for c := range p.J {
		couplers = append(couplers, c)
	}
	sort.Slice(couplers, func(i, j int) bool {
		if couplers[i].A != couplers[j].A {
			return couplers[i].A < couplers[j].A
		}
		return couplers[i].B < couplers[j].B
	})
	for _, c := range couplers {
		if !s.props.Topology.HasEdge(c.A, c.B) {
			return nil, fmt.Errorf("Simulator.Sample: %d-%d: %w", c.A, c.B, ErrNotCoupled)
		}
		j := p.J[c]
		a, b := index[c.A], index[c.B]
		lp.nbrs[a] = append(lp.nbrs[a], localCoupling{to: b, j: j})
		lp.nbrs[b] = append(lp.nbrs[b], localCoupling{to: a, j: j})
		lp.scale = math.Max(lp.scale, math.Abs(j))
	}
	if lp.scale == 0 {
		lp.scale = 1
	}

	return lp, nil
}

// field returns the local field h_i + Σ_j J_ij s_j.
func (lp *localProblem) field(spins []int8, i int) float64 {
	f := lp.h[i]
	for _, c := range lp.nbrs[i] {
		f += c.j * float64(spins[c.to])
	}
	return f
}

func (lp *localProblem) energy(spins []int8) float64 {
	var e float64
	for i, s := range spins {
		e += lp.h[i] * float64(s)
		for _, c := range lp.nbrs[i] {
			if c.to > i {
				e += c.j * float64(s) * float64(spins[c.to])
			}
		}
	}
	return e
}

func (lp *localProblem) anneal(rng *rand.Rand, sweeps int) []int8 {
	n := len(lp.qubits)
	spins := make([]int8, n)
	for i := range spins {
		spins[i] = int8(2*rng.Intn(2) - 1)
	}
	ratio := math.Pow(betaEnd/betaStart, 1/math.Max(1, float64(sweeps-1)))
	beta := betaStart / lp.scale
	for sweep := 0; sweep < sweeps; sweep++ {
		for i := 0; i < n; i++ {
			// flipping s_i changes the energy by −2·s_i·field
			delta := -2 * float64(spins[i]) * lp.field(spins, i)
			if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
				spins[i] = -spins[i]
			}
		}
		beta *= ratio
	}
	// greedy descent to the nearest single-flip local minimum
	for improved := true; improved; {
		improved = false
		for i := 0; i < n; i++ {
			if -2*float64(spins[i])*lp.field(spins, i) < 0 {
				spins[i] = -spins[i]
				improved = true
			}
		}
	}

	return spins
}
