package function

import (
	"fifi-core/expr"
	"fifi-core/prism"
)

// registerSymbolic wires deriv and substitute. deriv delegates to the
// injected DifferentiateFunc (see calculus.Engine) rather than computing
// anything itself — the function library's job here is just to route the
// call, matching spec.md §4.4's "deriv(e, v) delegates to the function
// library's per-function derivative_rule."
func registerSymbolic(t *Table) {
	t.Register(NewFunction("deriv").
		WithCase(Case2(prism.Identity[expr.Expr](), expr.ToVar, func(e expr.Expr, v string, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if ctx.Differentiate == nil {
				return nil, NoMatch, nil
			}
			result, err := ctx.Differentiate(e, v)
			if err != nil {
				return nil, Failure, err
			}
			return result, Success, nil
		})).
		Build())

	// substitute(e, var, value) is intentionally single-pass and
	// non-recursive: the replacement value is spliced in as-is without
	// re-scanning it for further occurrences of var. This is deliberate
	// per the source's comments (spec.md §9 Open Questions) and preserved
	// here rather than "fixed."
	t.Register(NewFunction("substitute").
		WithCase(CaseAny(func(args []expr.Expr) bool { return len(args) == 3 }, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			target, ok := args[1].(expr.Var)
			if !ok {
				return nil, NoMatch, nil
			}
			result, err := expr.Walk(args[0], func(sub expr.Expr) (expr.Expr, error) {
				if v, ok := sub.(expr.Var); ok && v.Name == target.Name {
					return expr.Clone(args[2]), nil
				}
				return sub, nil
			})
			if err != nil {
				return nil, Failure, err
			}
			return result, Success, nil
		})).
		Build())
}
