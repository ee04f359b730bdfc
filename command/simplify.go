package command

import (
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/simplifier"
	"fifi-core/stackmodel"
)

// simplify runs e through ctx's simplifier pipeline, building a fresh
// simplifier.Context each call from state's calculation mode (Base points
// back at the same top-level simplifier, so nested simplifications
// triggered from within a function case still go through the full
// pipeline) and a derivative hook backed by ctx.Calculus so "deriv" calls
// discovered mid-simplification resolve without this package depending on
// calculus internals beyond the Engine it already holds. Recoverable
// errors land in errs; a returned error is fatal.
func (ctx *CommandContext) simplify(state *stackmodel.UndoableState, e expr.Expr, errs *corerr.ErrorList) (expr.Expr, error) {
	simplCtx := simplifier.NewContext(state.Mode)
	simplCtx.Base = ctx.Simplifier
	simplCtx.Errors = errs
	if ctx.Calculus != nil {
		simplCtx.Differentiate = ctx.Calculus.Differentiate
	}
	return ctx.Simplifier.SimplifyExpr(e, simplCtx)
}
