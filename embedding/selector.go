// SPDX-License-Identifier: MIT

package embedding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/offset"
)

// Defaults for NewSelector.
const (
	DefaultTries    = 10
	DefaultMinWidth = 0.1
)

// Outcome classifies one selector attempt.
type Outcome int

const (
	// Success: embedding found and its offset range is wide enough.
	Success Outcome = iota
	// Infeasible: embedding found but the offset range is too narrow.
	Infeasible
	// SearchFailure: the finder or composite construction failed.
	SearchFailure
)

// String implements fmt.Stringer; the values double as metric labels.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Infeasible:
		return "infeasible"
	case SearchFailure:
		return "search_failure"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Attempt records one pass of the retry loop.
type Attempt struct {
	Index   int
	Outcome Outcome
	// Width of the offset-range intersection; NaN-free, zero when unknown.
	Width float64
	Err   error
}

// Selection is the successful result of Select.
type Selection struct {
	Composite Composite
	Embedding Embedding
	Range     offset.Range
	Attempts  []Attempt
}

// Selector runs the bounded embedding retry loop. It is not safe for
// concurrent use: one Selector serves one hardware session.
type Selector struct {
	finder   Finder
	factory  CompositeFactory
	tries    int
	minWidth float64
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Selector.
type Option func(*Selector)

// WithTries sets the attempt budget (n_tries).
func WithTries(n int) Option {
	return func(s *Selector) { s.tries = n }
}

// WithMinWidth sets the feasibility threshold for the range width.
func WithMinWidth(w float64) Option {
	return func(s *Selector) { s.minWidth = w }
}

// WithLogger routes attempt diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("embedding: WithLogger(nil)")
	}
	return func(s *Selector) { s.logger = l }
}

// WithTracer overrides the package tracer. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("embedding: WithTracer(nil)")
	}
	return func(s *Selector) { s.tracer = t }
}

// NewSelector builds a Selector with DefaultTries and DefaultMinWidth unless
// overridden. Logs are discarded unless WithLogger is given.
func NewSelector(finder Finder, factory CompositeFactory, opts ...Option) (*Selector, error) {
	s := &Selector{
		finder:   finder,
		factory:  factory,
		tries:    DefaultTries,
		minWidth: DefaultMinWidth,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   tracer,
	}
	for _, opt := range opts {
		opt(s)
	}
	switch {
	case s.finder == nil:
		return nil, fmt.Errorf("NewSelector: nil finder: %w", ErrBadSelector)
	case s.factory == nil:
		return nil, fmt.Errorf("NewSelector: nil factory: %w", ErrBadSelector)
	case s.tries <= 0:
		return nil, fmt.Errorf("NewSelector: tries=%d: %w", s.tries, ErrBadSelector)
	}

	return s, nil
}

// Select searches for an embedding of source into target whose qubits share
// an anneal-offset range at least minWidth wide.
//
// Errors:
//   - *ExhaustedError (errors.Is ErrExhausted) after tries failed attempts;
//   - ctx.Err() when the context ends between or during attempts;
//   - ErrNilGraph, or any Finder error not typed as a search failure.
func (s *Selector) Select(ctx context.Context, source, target *core.Graph) (*Selection, error) {
	if source == nil || target == nil {
		return nil, ErrNilGraph
	}
	ctx, span := s.tracer.Start(ctx, "embedding.Select",
		trace.WithAttributes(
			attribute.Int("embedding.tries", s.tries),
			attribute.Int("embedding.variables", source.VertexCount()),
			attribute.Int("embedding.qubits", target.VertexCount()),
		),
	)
	defer span.End()

	attempts := make([]Attempt, 0, s.tries)
	for i := 0; i < s.tries; i++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "context done")
			return nil, err
		}

		sel, att, err := s.attempt(ctx, i, source, target)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		attempts = append(attempts, att)
		attemptsTotal.WithLabelValues(att.Outcome.String()).Inc()

		if att.Outcome == Success {
			sel.Attempts = attempts
			span.SetAttributes(
				attribute.Int("embedding.attempts", len(attempts)),
				attribute.Float64("embedding.range_width", att.Width),
			)
			span.SetStatus(codes.Ok, "")
			s.logger.Debug("embedding selected",
				slog.Int("attempt", i),
				slog.Float64("min_offset", sel.Range.Min),
				slog.Float64("max_offset", sel.Range.Max))
			return sel, nil
		}
		s.logger.Warn("embedding attempt failed",
			slog.Int("attempt", i),
			slog.String("outcome", att.Outcome.String()),
			slog.Float64("width", att.Width),
			slog.Any("error", att.Err))
	}

	err := &ExhaustedError{Attempts: attempts}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return nil, err
}

// attempt runs one find → flatten → composite → intersect pass. A non-nil
// error means the loop must stop; retryable failures are reported through
// the Attempt outcome instead.
func (s *Selector) attempt(ctx context.Context, i int, source, target *core.Graph) (*Selection, Attempt, error) {
	att := Attempt{Index: i}
	fail := func(err error) (*Selection, Attempt, error) {
		att.Outcome, att.Err = SearchFailure, err
		return nil, att, nil
	}

	// Stage 1: find.
	emb, err := s.finder.Find(ctx, source, target)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return nil, att, err
	case isSearchFailure(err):
		return fail(err)
	default:
		return nil, att, fmt.Errorf("Select: attempt %d: %w", i, err)
	}
	if err = emb.Validate(); err != nil {
		return fail(&SearchError{Stage: "validate", Err: err})
	}

	// Stage 2: flatten and build the wrapper.
	qubits := emb.Qubits()
	comp, err := s.factory(emb)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, att, err
		}
		return fail(&SearchError{Stage: "composite", Err: err})
	}

	// Stage 3: intersect the ranges of the embedded qubits.
	all := comp.AnnealOffsetRanges()
	used := make([]offset.Range, 0, len(qubits))
	for _, q := range qubits {
		if q >= len(all) {
			return fail(&SearchError{
				Stage: "composite",
				Err:   fmt.Errorf("qubit %d has no offset range (%d known)", q, len(all)),
			})
		}
		used = append(used, all[q])
	}
	r, err := offset.Intersect(used...)
	if err != nil {
		return fail(&SearchError{Stage: "composite", Err: err})
	}
	if !finite(r.Min) || !finite(r.Max) {
		att.Outcome = Infeasible
		att.Err = fmt.Errorf("range %s is not finite: %w", r, ErrInfeasibleRange)
		return nil, att, nil
	}
	att.Width = r.Width()
	rangeWidth.Observe(max(att.Width, 0))

	// Stage 4: threshold.
	if !(att.Width >= s.minWidth) {
		att.Outcome = Infeasible
		att.Err = fmt.Errorf("width %g < %g: %w", att.Width, s.minWidth, ErrInfeasibleRange)
		return nil, att, nil
	}
	att.Outcome = Success

	return &Selection{Composite: comp, Embedding: emb, Range: r}, att, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
