// SPDX-License-Identifier: MIT

package embedding

import "github.com/katalvlaran/qlp/offset"

// Composite is an execution wrapper bound to one embedding. The Selector
// only needs its per-qubit anneal-offset metadata; callers type-assert to
// their concrete wrapper to sample.
type Composite interface {
	// AnnealOffsetRanges is indexed by physical qubit.
	AnnealOffsetRanges() []offset.Range
}

// CompositeFactory builds the Composite for a candidate embedding.
type CompositeFactory func(emb Embedding) (Composite, error)
