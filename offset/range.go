// SPDX-License-Identifier: MIT

package offset

import (
	"fmt"
	"math"
)

// Range is a closed anneal-offset interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Width returns Max − Min; negative for an empty intersection.
func (r Range) Width() float64 { return r.Max - r.Min }

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// String implements fmt.Stringer.
func (r Range) String() string { return fmt.Sprintf("[%g, %g]", r.Min, r.Max) }

// Intersect returns the range every input supports: the largest Min and the
// smallest Max. The result may be empty (Width < 0).
func Intersect(ranges ...Range) (Range, error) {
	if len(ranges) == 0 {
		return Range{}, ErrNoRanges
	}
	out := Range{Min: math.Inf(-1), Max: math.Inf(1)}
	for _, r := range ranges {
		out.Min = math.Max(out.Min, r.Min)
		out.Max = math.Min(out.Max, r.Max)
	}

	return out, nil
}
