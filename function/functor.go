package function

import (
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/numeric"
)

// registerFunctor wires fhead/fargs/farg, the introspection trio that lets
// a running program ask "what is the head of this call" / "what are its
// arguments" / "what is its Nth argument" without pattern-matching on the
// Expr sum type directly.
func registerFunctor(t *Table) {
	t.Register(NewFunction("fhead").
		WithCase(Case1(expr.AnyCall, func(c expr.Call, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.Str{Value: c.Name}, Success, nil
		})).
		Build())

	t.Register(NewFunction("fargs").
		WithCase(Case1(expr.AnyCall, func(c expr.Call, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.NewCall("vector", c.Args...), Success, nil
		})).
		Build())

	t.Register(NewFunction("farg").
		WithCase(Case2(expr.AnyCall, expr.ToNumber, func(c expr.Call, idx numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if !idx.IsInt() {
				return nil, NoMatch, nil
			}
			i := idx.Int64()
			if i < 0 || i >= int64(len(c.Args)) {
				return nil, Failure, corerr.ErrDomain
			}
			return c.Args[i], Success, nil
		})).
		Build())
}
