// SPDX-License-Identifier: MIT

package embedding

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qlp/core"
)

// Finder searches for an embedding of source into target. Failures that
// mean "try again" must match ErrNoEmbedding or be a *SearchError; any
// other error aborts the Selector.
type Finder interface {
	Find(ctx context.Context, source, target *core.Graph) (Embedding, error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(ctx context.Context, source, target *core.Graph) (Embedding, error)

// Find calls f.
func (f FinderFunc) Find(ctx context.Context, source, target *core.Graph) (Embedding, error) {
	return f(ctx, source, target)
}

// NativeFinder embeds each variable onto the qubit with the same index.
// It succeeds only when source is a subgraph of target.
type NativeFinder struct{}

// Find implements Finder.
func (NativeFinder) Find(ctx context.Context, source, target *core.Graph) (Embedding, error) {
	if source == nil || target == nil {
		return nil, ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	emb := make(Embedding, source.VertexCount())
	for _, v := range source.Vertices() {
		if !target.HasVertex(v) {
			return nil, fmt.Errorf("NativeFinder: qubit %d missing: %w", v, ErrNoEmbedding)
		}
		emb[v] = []int{v}
	}
	for _, e := range source.Edges() {
		if !target.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("NativeFinder: coupler %d-%d missing: %w", e.From, e.To, ErrNoEmbedding)
		}
	}

	return emb, nil
}

// FixedFinder always proposes the same precomputed embedding, e.g. one read
// from a file. The Selector still checks its offset range.
type FixedFinder struct {
	Embedding Embedding
}

// Find implements Finder. A fixed embedding that does not fit the graphs
// is a search failure.
func (f FixedFinder) Find(ctx context.Context, source, target *core.Graph) (Embedding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.Embedding.Verify(source, target); err != nil {
		return nil, &SearchError{Stage: "find", Err: err}
	}

	return f.Embedding.Clone(), nil
}
