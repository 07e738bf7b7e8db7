// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/qlp/config"
	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/embedding"
	"github.com/katalvlaran/qlp/hardware"
	"github.com/katalvlaran/qlp/ising"
	"github.com/katalvlaran/qlp/logging"
	"github.com/katalvlaran/qlp/offset"
	"github.com/katalvlaran/qlp/qubo"
	"github.com/katalvlaran/qlp/store"
	"github.com/katalvlaran/qlp/summary"
)

var (
	// ErrBadInput indicates a run without a graph.
	ErrBadInput = errors.New("pipeline: invalid input")

	// ErrComposite indicates a selected composite that cannot sample.
	ErrComposite = errors.New("pipeline: composite cannot sample")
)

// Input is one problem instance.
type Input struct {
	// Tag names the graph family, e.g. "K(3)" or "C(16,16,4)".
	Tag string
	// Graph is the problem graph.
	Graph *core.Graph
	// Problem overrides the QUBO built from Graph; nil means
	// qubo.DominatingSet(Graph, cfg.Penalty).
	Problem *qubo.Problem
}

// Result is everything one run produced.
type Result struct {
	RunID      string
	Model      *ising.Model
	Selection  *embedding.Selection
	Offsets    *offset.Physical
	Stats      *summary.Stats
	Graph      store.GraphRecord
	Experiment store.ExperimentRecord
	Data       []store.DataRecord
}

// Runner executes runs against one sampler and store.
type Runner struct {
	cfg     config.Config
	sampler hardware.Sampler
	store   store.Store
	finder  embedding.Finder
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithFinder sets the embedding finder; the default is NativeFinder.
// Panics on nil.
func WithFinder(f embedding.Finder) Option {
	if f == nil {
		panic("pipeline: WithFinder(nil)")
	}
	return func(r *Runner) { r.finder = f }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// NewRunner validates cfg and binds it to sampler and st.
func NewRunner(cfg config.Config, sampler hardware.Sampler, st store.Store, opts ...Option) (*Runner, error) {
	if sampler == nil {
		return nil, hardware.ErrNilSampler
	}
	if st == nil {
		return nil, fmt.Errorf("NewRunner: nil store: %w", ErrBadInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	r := &Runner{
		cfg:     cfg,
		sampler: sampler,
		store:   st,
		finder:  embedding.NativeFinder{},
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run executes one optimization.
//
// Errors:
//   - offset.ErrUnknownPolicy / ErrBadExpression before anything else runs;
//   - embedding.ErrExhausted when no embedding has a wide enough offset
//     range (the sampler is never called);
//   - sampler, summary and store errors, wrapped with the run id.
func (r *Runner) Run(ctx context.Context, in Input) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := r.logger.With(slog.String("run_id", res.RunID), slog.String("tag", in.Tag))
	wrap := func(stage string, err error) error {
		return fmt.Errorf("pipeline: run %s: %s: %w", res.RunID, stage, err)
	}

	// Stage 1: policy and problem.
	policy, err := offset.ParsePolicy(r.cfg.Policy)
	if err != nil {
		return nil, wrap("policy", err)
	}
	if in.Graph == nil {
		return nil, wrap("input", fmt.Errorf("nil graph: %w", ErrBadInput))
	}
	problem := in.Problem
	if problem == nil {
		if problem, err = qubo.DominatingSet(in.Graph, r.cfg.Penalty); err != nil {
			return nil, wrap("qubo", err)
		}
	}
	if res.Model, err = ising.FromQUBO(problem.QUBO); err != nil {
		return nil, wrap("ising", err)
	}
	log.Info("problem prepared",
		slog.Int("variables", problem.QUBO.Size()),
		slog.Int("vertices", problem.VertexCount),
		slog.String("policy", policy.Describe()))

	// Stage 2: embedding.
	selector, err := embedding.NewSelector(r.finder, hardware.Factory(r.sampler, r.cfg.ChainStrength),
		embedding.WithTries(r.cfg.Tries),
		embedding.WithMinWidth(r.cfg.MinOffsetRange),
		embedding.WithLogger(log),
	)
	if err != nil {
		return nil, wrap("selector", err)
	}
	if res.Selection, err = selector.Select(ctx, problem.QUBO.InteractionGraph(), r.sampler.Properties().Topology); err != nil {
		return nil, wrap("embedding", err)
	}

	// Stage 3: offsets.
	res.Offsets, err = offset.FindOffsets(policy, res.Model.H, res.Selection.Range, res.Selection.Embedding, r.cfg.QubitCount)
	if err != nil {
		return nil, wrap("offsets", err)
	}

	// Stage 4: sample.
	comp, ok := res.Selection.Composite.(*hardware.FixedEmbedding)
	if !ok {
		return nil, wrap("sample", fmt.Errorf("%T: %w", res.Selection.Composite, ErrComposite))
	}
	batch, err := comp.Sample(ctx, res.Model, hardware.Params{
		NumReads:      r.cfg.NumReads,
		AnnealOffsets: res.Offsets.Offsets,
	})
	if err != nil {
		return nil, wrap("sample", err)
	}

	// Stage 5: summarize and record.
	res.Stats, err = summary.Summarize(batch, summary.Meta{
		Variables: problem.QUBO.Size(),
		Vertices:  problem.VertexCount,
		Penalty:   problem.Penalty,
	})
	if err != nil {
		return nil, wrap("summary", err)
	}
	if err = r.record(ctx, in, problem, res); err != nil {
		return nil, wrap("store", err)
	}
	log.Info("run recorded",
		slog.String("experiment", res.Experiment.Key()),
		slog.Int("rows", len(res.Data)),
		slog.Int("attempts", len(res.Selection.Attempts)))

	return res, nil
}

func (r *Runner) record(ctx context.Context, in Input, problem *qubo.Problem, res *Result) error {
	graphRec, err := summary.GraphSummary(in.Tag, in.Graph)
	if err != nil {
		return err
	}
	if res.Graph, _, err = r.store.GetOrCreateGraph(ctx, graphRec); err != nil {
		return err
	}

	settings := r.cfg.SettingsMap()
	settings["anneal_offsets"] = res.Offsets.Offsets
	expRec, err := summary.ExperimentSummary(r.cfg.Machine, settings, problem.Penalty, r.cfg.ChainStrength, res.Offsets.Tag)
	if err != nil {
		return err
	}
	if res.Experiment, _, err = r.store.GetOrCreateExperiment(ctx, res.Graph.Key(), expRec); err != nil {
		return err
	}

	res.Data, err = r.store.AppendData(ctx, res.Experiment.Key(), summary.DataRecords(res.Stats))

	return err
}
