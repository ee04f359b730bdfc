package function

import (
	"math"

	"fifi-core/expr"
	"fifi-core/numeric"
)

func registerComplexOps(t *Table) {
	t.Register(NewFunction("conj").
		WithFlags(Flags{IsInvolution: true}).
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return wrapComplex(numeric.ComplexConj(a)), Success, nil
		})).
		Build())

	t.Register(NewFunction("re").
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.Number{Value: a.Re}, Success, nil
		})).
		Build())

	t.Register(NewFunction("im").
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.Number{Value: a.Im}, Success, nil
		})).
		Build())

	t.Register(NewFunction("arg").
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			re, im := a.Re.Float64(), a.Im.Float64()
			return expr.Number{Value: numeric.NewFloat64(math.Atan2(im, re))}, Success, nil
		})).
		Build())
}
