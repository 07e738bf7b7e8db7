// SPDX-License-Identifier: MIT

package offset

import (
	"fmt"
	"math"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// Expression evaluates a user formula once per logical variable. The
// formula sees:
//
//	i      variable index
//	h      the variable's bias
//	hmax   max|h| over all variables
//	hnorm  h/hmax (0 when hmax is 0)
//	lo     range minimum
//	hi     range maximum
//	width  hi − lo
//
// and must yield a number, which is used as the offset verbatim.
// Example: "hnorm * width * 0.5 + lo".
type Expression struct {
	formula string
	program *exprvm.Program
}

// exprEnv is the compile-time environment shape of an Expression.
func exprEnv() map[string]any {
	return map[string]any{
		"i": 0, "h": 0.0, "hmax": 0.0, "hnorm": 0.0,
		"lo": 0.0, "hi": 0.0, "width": 0.0,
	}
}

// NewExpression compiles formula. Unknown identifiers fail at compile time.
func NewExpression(formula string) (*Expression, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil, fmt.Errorf("NewExpression: empty formula: %w", ErrBadExpression)
	}
	program, err := exprlang.Compile(formula, exprlang.Env(exprEnv()), exprlang.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("NewExpression(%q): %v: %w", formula, err, ErrBadExpression)
	}

	return &Expression{formula: formula, program: program}, nil
}

func (e *Expression) Tag() string      { return TagExpressionPfx + e.formula }
func (e *Expression) Describe() string { return "Expression(" + e.formula + ")" }

// Offsets runs the compiled formula for every variable.
func (e *Expression) Offsets(h []float64, r Range) ([]float64, error) {
	hmax := maxAbs(h)
	norm := ratios(h)
	out := make([]float64, len(h))
	env := exprEnv()
	env["hmax"], env["lo"], env["hi"], env["width"] = hmax, r.Min, r.Max, r.Width()
	for i, v := range h {
		env["i"], env["h"], env["hnorm"] = i, v, norm[i]
		res, err := exprlang.Run(e.program, env)
		if err != nil {
			return nil, fmt.Errorf("Expression(%q) at %d: %v: %w", e.formula, i, err, ErrBadExpression)
		}
		f, ok := res.(float64)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("Expression(%q) at %d: result %v: %w", e.formula, i, res, ErrBadExpression)
		}
		out[i] = f
	}

	return out, nil
}
