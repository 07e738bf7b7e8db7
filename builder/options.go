// SPDX-License-Identifier: MIT
// Package: qlp/builder
//
// options.go — functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Constructors MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// defaultConstWeight is the edge weight used on weighted graphs.
const defaultConstWeight = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight is the weight of the next edge of g.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}
	return defaultConstWeight
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
