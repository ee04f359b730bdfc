// Package calculus implements symbolic differentiation, driven by the
// function library's per-call derivative rules (spec.md §4.5).
package calculus

import (
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/function"
	"fifi-core/numeric"
)

func zero() numeric.Number { return numeric.NewInt(0) }
func one() numeric.Number  { return numeric.NewInt(1) }

// Engine holds the function table and, for the duration of one top-level
// Differentiate call, the original expression (for error recovery). Its
// Differentiate method has exactly the function.DifferentiateFunc
// signature, so it can be injected into function.EvalContext to let the
// "deriv" function case (and derivative rules that need to recurse) call
// back into differentiation without this package creating an import cycle
// with function.
//
// Differentiate is also the same method recursive derivative rules call
// (via the diff parameter they're handed), so "top-level" can't be told
// apart from "recursive" by signature alone; depth does that instead.
type Engine struct {
	Functions *function.Table
	original  expr.Expr
	depth     int
}

func NewEngine(functions *function.Table) *Engine {
	return &Engine{Functions: functions}
}

// Differentiate computes d(e)/d(v). The outermost call (depth transitions
// 0 -> 1) records e as the "original" expression so a nested
// UnknownDerivative failure can report the whole input, not just the
// offending subterm, matching spec.md §4.5; nested recursive calls made
// while differentiating keep that original. Depth unwinds to 0 when the
// outermost call returns, so the next unrelated Differentiate call starts
// fresh rather than carrying over a stale original from a prior command.
func (eng *Engine) Differentiate(e expr.Expr, v string) (expr.Expr, error) {
	eng.depth++
	defer func() { eng.depth-- }()
	if eng.depth == 1 {
		eng.original = e
	}
	return eng.differentiate(e, v)
}

func (eng *Engine) differentiate(e expr.Expr, v string) (expr.Expr, error) {
	switch node := e.(type) {
	case expr.Number, expr.ComplexLit, expr.InfiniteLit:
		return expr.Number{Value: zero()}, nil
	case expr.Var:
		if node.Name == v {
			return expr.Number{Value: one()}, nil
		}
		return expr.Number{Value: zero()}, nil
	case expr.Call:
		rule, ok := eng.Functions.DerivativeOf(node.Name)
		if !ok {
			return nil, corerr.WithPayload(
				corerr.NewUnknownDerivative(node.Name, eng.original),
				eng.original,
			)
		}
		return rule(node.Args, v, eng.Differentiate)
	default:
		return nil, corerr.NewUnknownDerivative("<unknown>", eng.original)
	}
}

