package function

import (
	"strings"

	"fifi-core/expr"
	"fifi-core/numeric"
)

// registerComparisons wires = != < <= > >=. Per spec.md §4.4 these "return
// a literal boolean expression for literal inputs"; non-literal arguments
// fall through NoMatch and the call is left symbolic. Their derivative is
// pointwise (spec.md §4.4), grounded on original_source's formula.rs,
// where every one of the six differentiates each argument and rebuilds
// the same call around the results.
func registerComparisons(t *Table) {
	order := func(name string, accept func(int) bool) {
		t.Register(NewFunction(name).
			WithCase(Case2(expr.ToUnboundedNumber, expr.ToUnboundedNumber, func(a, b expr.UnboundedNumber, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
				return BoolExpr(accept(expr.CompareUnbounded(a, b))), Success, nil
			})).
			WithCase(Case2(expr.ToStr, expr.ToStr, func(a, b string, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
				return BoolExpr(accept(strings.Compare(a, b))), Success, nil
			})).
			WithDerivative(pointwiseDerivative(name)).
			Build())
	}
	order("<", func(c int) bool { return c < 0 })
	order("<=", func(c int) bool { return c <= 0 })
	order(">", func(c int) bool { return c > 0 })
	order(">=", func(c int) bool { return c >= 0 })

	t.Register(NewFunction("=").
		WithCase(Case2(expr.ToComplex, expr.ToComplex, func(a, b numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return BoolExpr(numeric.ComplexEqual(a, b)), Success, nil
		})).
		WithDerivative(pointwiseDerivative("=")).
		Build())

	t.Register(NewFunction("!=").
		WithCase(Case2(expr.ToComplex, expr.ToComplex, func(a, b numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return BoolExpr(!numeric.ComplexEqual(a, b)), Success, nil
		})).
		WithDerivative(pointwiseDerivative("!=")).
		Build())
}

// pointwiseDerivative differentiates each argument independently and
// rebuilds the same named call around the results, the "pointwise
// derivative" every comparison function uses in place of an algebraic
// derivative rule (original_source's formula.rs: "TODO: Generalize this
// 'pointwise derivative' pattern; make it a part of builder api" — it
// never was, so this stays a local helper rather than a Builder method).
func pointwiseDerivative(name string) DerivativeRule {
	return func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
		terms := make([]expr.Expr, len(args))
		for i, a := range args {
			d, err := diff(a, v)
			if err != nil {
				return nil, err
			}
			terms[i] = d
		}
		return expr.NewCall(name, terms...), nil
	}
}
