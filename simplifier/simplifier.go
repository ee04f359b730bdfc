// Package simplifier implements the composable rewriter pipeline described
// in spec.md §4.3: a post-order walk applying a rewrite at every node,
// composed via chaining and repetition, with a default pipeline that runs
// identity removal, function evaluation, flattening, idempotence/involution
// collapsing and interval normalization at each node in that order.
package simplifier

import (
	"fifi-core/calcmode"
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/function"
)

// Simplifier rewrites a whole expression tree.
type Simplifier interface {
	SimplifyExpr(e expr.Expr, ctx *Context) (expr.Expr, error)
}

// PartSimplifier rewrites a single node; most implementors only need this,
// using Wrap to get the full post-order Simplifier for free (spec.md §4.3:
// "simplify_expr_part: single-node rewrite; most implementors override
// this").
type PartSimplifier interface {
	SimplifyExprPart(e expr.Expr, ctx *Context) (expr.Expr, error)
}

// Wrap adapts a PartSimplifier into a full Simplifier via a post-order
// walk: every argument is simplified first, the node is rebuilt, then
// SimplifyExprPart is applied to the rebuilt node.
func Wrap(p PartSimplifier) Simplifier { return partWrapper{p} }

type partWrapper struct{ p PartSimplifier }

func (w partWrapper) SimplifyExpr(e expr.Expr, ctx *Context) (expr.Expr, error) {
	return expr.Walk(e, func(node expr.Expr) (expr.Expr, error) {
		return w.p.SimplifyExprPart(node, ctx)
	})
}

// Context carries everything a simplification pass needs: a reference to
// the base (top-level) simplifier for nested simplifications, the
// calculation mode flags, and the error list errors are pushed to rather
// than thrown (spec.md §4.3, §9).
type Context struct {
	Base   Simplifier
	Mode   calcmode.CalculationMode
	Errors *corerr.ErrorList
	// Differentiate, when set, lets function cases like "deriv" recurse into
	// symbolic differentiation without this package depending on calculus.
	Differentiate function.DifferentiateFunc
}

// NewContext builds a Context whose Base is set to itself once the caller
// assigns the returned context's Base field to the Simplifier it wraps
// (done by the command layer's push_expr and simplify commands and by
// rootfind.ExprFunction.Eval).
func NewContext(mode calcmode.CalculationMode) *Context {
	return &Context{Mode: mode, Errors: &corerr.ErrorList{}}
}

// evalContextFrom builds the function.EvalContext a function.Table.Evaluate
// call needs from a simplifier Context.
func evalContextFrom(ctx *Context) *function.EvalContext {
	return &function.EvalContext{
		Mode:          ctx.Mode,
		Errors:        ctx.Errors,
		Differentiate: ctx.Differentiate,
		Simplify: func(e expr.Expr) (expr.Expr, error) {
			if ctx.Base == nil {
				return e, nil
			}
			return ctx.Base.SimplifyExpr(e, ctx)
		},
	}
}
