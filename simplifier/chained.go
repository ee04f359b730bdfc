package simplifier

import "fifi-core/expr"

// Chained runs each Simplifier's full tree pass in sequence, feeding each
// one's output to the next — the "then" combinator spec.md §4.3 describes
// for composing the default pipeline with decorators like the $N resolver
// or the unit-cancellation simplifier.
type Chained []Simplifier

func Chain(ss ...Simplifier) Chained { return Chained(ss) }

func (c Chained) SimplifyExpr(e expr.Expr, ctx *Context) (expr.Expr, error) {
	var err error
	for _, s := range c {
		e, err = s.SimplifyExpr(e, ctx)
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}
