// SPDX-License-Identifier: MIT

package offset

import (
	"fmt"
	"math"
	"strings"
)

// Policy tags accepted by ParsePolicy.
const (
	TagConstant        = "constant"
	TagLinear          = "linear"
	TagSignedLinear    = "signedlinear"
	TagNegSignedLinear = "negsignedlinear"
	TagExpressionPfx   = "expr:"
)

const (
	// spanFraction is the share of the range width offsets may spread over.
	spanFraction = 0.9
	// floorFactor scales Min to the lowest offset a policy emits.
	floorFactor = 1.1
)

// Policy computes one anneal offset per logical variable.
type Policy interface {
	// Tag is the configuration tag that selects the policy.
	Tag() string
	// Describe is the descriptive tag recorded with results.
	Describe() string
	// Offsets maps biases h into offsets for the feasible range r.
	Offsets(h []float64, r Range) ([]float64, error)
}

// ParsePolicy resolves a configuration tag. Matching is case-insensitive for
// built-ins; "expr:" is followed by a formula (see Expression).
func ParsePolicy(tag string) (Policy, error) {
	trimmed := strings.TrimSpace(tag)
	if len(trimmed) > len(TagExpressionPfx) && strings.EqualFold(trimmed[:len(TagExpressionPfx)], TagExpressionPfx) {
		return NewExpression(trimmed[len(TagExpressionPfx):])
	}
	switch strings.ToLower(trimmed) {
	case TagConstant:
		return Constant{}, nil
	case TagLinear:
		return Linear{}, nil
	case TagSignedLinear:
		return SignedLinear{}, nil
	case TagNegSignedLinear:
		return NegSignedLinear{}, nil
	}

	return nil, fmt.Errorf("ParsePolicy(%q): %w", tag, ErrUnknownPolicy)
}

// maxAbs returns max_i |h_i|, or 0 for an empty or all-zero vector.
func maxAbs(h []float64) float64 {
	var m float64
	for _, v := range h {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

// ratios returns h_i / max|h|, all zeros when max|h| is zero.
func ratios(h []float64) []float64 {
	out := make([]float64, len(h))
	m := maxAbs(h)
	if m == 0 {
		return out
	}
	for i, v := range h {
		out[i] = v / m
	}
	return out
}

// scale maps normalized values into the range: hnorm·width·0.9 + Min·1.1.
func scale(hnorm []float64, r Range) []float64 {
	out := make([]float64, len(hnorm))
	for i, v := range hnorm {
		out[i] = v*r.Width()*spanFraction + r.Min*floorFactor
	}
	return out
}

// Constant drives every variable with a zero offset.
type Constant struct{}

func (Constant) Tag() string      { return TagConstant }
func (Constant) Describe() string { return "Constant" }

func (Constant) Offsets(h []float64, _ Range) ([]float64, error) {
	return make([]float64, len(h)), nil
}

// Linear offsets grow with |h|.
type Linear struct{}

func (Linear) Tag() string      { return TagLinear }
func (Linear) Describe() string { return "Linear" }

func (Linear) Offsets(h []float64, r Range) ([]float64, error) {
	hn := ratios(h)
	for i, v := range hn {
		hn[i] = math.Abs(v)
	}
	return scale(hn, r), nil
}

// SignedLinear offsets grow with h, negative biases at the low end.
type SignedLinear struct{}

func (SignedLinear) Tag() string      { return TagSignedLinear }
func (SignedLinear) Describe() string { return "Signedlinear" }

func (SignedLinear) Offsets(h []float64, r Range) ([]float64, error) {
	hn := ratios(h)
	for i, v := range hn {
		hn[i] = 0.5 * (1 + v)
	}
	return scale(hn, r), nil
}

// NegSignedLinear mirrors SignedLinear: positive biases at the low end.
type NegSignedLinear struct{}

func (NegSignedLinear) Tag() string      { return TagNegSignedLinear }
func (NegSignedLinear) Describe() string { return "Negsignedlinear" }

func (NegSignedLinear) Offsets(h []float64, r Range) ([]float64, error) {
	hn := ratios(h)
	for i, v := range hn {
		hn[i] = 0.5 * (1 - v)
	}
	return scale(hn, r), nil
}
