// SPDX-License-Identifier: MIT

package hardware

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/qlp/bfs"
	"github.com/katalvlaran/qlp/embedding"
	"github.com/katalvlaran/qlp/ising"
	"github.com/katalvlaran/qlp/offset"
	"github.com/katalvlaran/qlp/summary"
)

// FixedEmbedding samples logical Ising models through one embedding.
type FixedEmbedding struct {
	sampler       Sampler
	props         Properties
	emb           embedding.Embedding
	chainStrength float64
}

var _ embedding.Composite = (*FixedEmbedding)(nil)

// NewFixedEmbedding binds sampler to emb. Chains must be valid, made of
// known qubits and connected on the device.
func NewFixedEmbedding(sampler Sampler, emb embedding.Embedding, chainStrength float64) (*FixedEmbedding, error) {
	if sampler == nil {
		return nil, ErrNilSampler
	}
	if !(chainStrength > 0) || math.IsInf(chainStrength, 0) {
		return nil, fmt.Errorf("NewFixedEmbedding: %g: %w", chainStrength, ErrBadChainStrength)
	}
	if err := emb.Validate(); err != nil {
		return nil, fmt.Errorf("NewFixedEmbedding: %w", err)
	}
	props := sampler.Properties()
	for _, v := range emb.Variables() {
		for _, q := range emb[v] {
			if q >= props.QubitCount || !props.Topology.HasVertex(q) {
				return nil, fmt.Errorf("NewFixedEmbedding: variable %d qubit %d: %w", v, q, ErrUnknownQubit)
			}
		}
		pieces, err := bfs.Components(props.Topology, emb[v])
		if err != nil {
			return nil, fmt.Errorf("NewFixedEmbedding: variable %d: %w", v, err)
		}
		if len(pieces) != 1 {
			return nil, fmt.Errorf("NewFixedEmbedding: variable %d chain splits into %v: %w", v, pieces, ErrBrokenChain)
		}
	}

	return &FixedEmbedding{
		sampler:       sampler,
		props:         props,
		emb:           emb.Clone(),
		chainStrength: chainStrength,
	}, nil
}

// Factory returns an embedding.CompositeFactory over sampler.
func Factory(sampler Sampler, chainStrength float64) embedding.CompositeFactory {
	return func(emb embedding.Embedding) (embedding.Composite, error) {
		return NewFixedEmbedding(sampler, emb, chainStrength)
	}
}

// AnnealOffsetRanges implements embedding.Composite.
func (f *FixedEmbedding) AnnealOffsetRanges() []offset.Range {
	return append([]offset.Range(nil), f.props.AnnealOffsetRanges...)
}

// Properties returns the child sampler's properties.
func (f *FixedEmbedding) Properties() Properties { return f.props }

// Embedding returns a copy of the bound embedding.
func (f *FixedEmbedding) Embedding() embedding.Embedding { return f.emb.Clone() }

// ChainStrength returns the intra-chain coupling magnitude.
func (f *FixedEmbedding) ChainStrength() float64 { return f.chainStrength }

// EmbedModel maps a logical model onto the device.
//
// Stage 1: every variable needs a chain.
// Stage 2: spread h_v evenly over chain(v).
// Stage 3: spread J_uv evenly over couplers between chain(u) and chain(v).
// Stage 4: −chainStrength on every coupler inside a chain.
func (f *FixedEmbedding) EmbedModel(m *ising.Model) (Problem, error) {
	p := Problem{H: make(map[int]float64), J: make(map[Coupler]float64)}
	for v := 0; v < m.Size(); v++ {
		if _, ok := f.emb[v]; !ok {
			return Problem{}, fmt.Errorf("EmbedModel: variable %d: %w", v, ErrUnembedded)
		}
	}

	for v := 0; v < m.Size(); v++ {
		chain := f.emb[v]
		share := m.H[v] / float64(len(chain))
		for _, q := range chain {
			p.H[q] += share
		}
	}

	for _, c := range m.Couplings() {
		var couplers []Coupler
		for _, a := range f.emb[c.I] {
			for _, b := range f.emb[c.J] {
				if f.props.Topology.HasEdge(a, b) {
					couplers = append(couplers, NewCoupler(a, b))
				}
			}
		}
		if len(couplers) == 0 {
			return Problem{}, fmt.Errorf("EmbedModel: %d-%d: %w", c.I, c.J, ErrNotCoupled)
		}
		share := c.Value / float64(len(couplers))
		for _, cp := range couplers {
			p.J[cp] += share
		}
	}

	for v := 0; v < m.Size(); v++ {
		chain := f.emb[v]
		for i, a := range chain {
			for _, b := range chain[i+1:] {
				if f.props.Topology.HasEdge(a, b) {
					p.J[NewCoupler(a, b)] = -f.chainStrength
				}
			}
		}
	}

	return p, nil
}

// Sample embeds m, samples it and unembeds the reads into summary rows.
// params.AnnealOffsets is passed through unchanged.
func (f *FixedEmbedding) Sample(ctx context.Context, m *ising.Model, params Params) (summary.Batch, error) {
	if m == nil {
		return nil, ising.ErrNilProblem
	}
	p, err := f.EmbedModel(m)
	if err != nil {
		return nil, err
	}
	reads, err := f.sampler.Sample(ctx, p, params)
	if err != nil {
		return nil, fmt.Errorf("FixedEmbedding.Sample: %w", err)
	}

	batch := make(summary.Batch, 0, len(reads))
	for _, r := range reads {
		row, err := f.unembed(m, r)
		if err != nil {
			return nil, err
		}
		batch = append(batch, row)
	}

	return batch, nil
}

// unembed resolves chains by majority vote (ties → +1).
func (f *FixedEmbedding) unembed(m *ising.Model, r Sample) (summary.Row, error) {
	spinOf := make(map[int]int8, len(r.Qubits))
	for i, q := range r.Qubits {
		spinOf[q] = r.Spins[i]
	}
	logical := make([]int8, m.Size())
	broken := 0
	for v := range logical {
		var sum int
		for _, q := range f.emb[v] {
			sum += int(spinOf[q])
		}
		if abs(sum) != len(f.emb[v]) {
			broken++
		}
		logical[v] = 1
		if sum < 0 {
			logical[v] = -1
		}
	}
	energy, err := m.Energy(logical)
	if err != nil {
		return summary.Row{}, err
	}
	bits, err := ising.Binary(logical)
	if err != nil {
		return summary.Row{}, err
	}
	var cbf float64
	if len(logical) > 0 {
		cbf = float64(broken) / float64(len(logical))
	}

	return summary.Row{Sample: bits, ChainBreakFraction: cbf, Energy: energy, Occurrences: 1}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
