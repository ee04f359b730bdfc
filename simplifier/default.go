package simplifier

import (
	"fifi-core/algebra"
	"fifi-core/expr"
	"fifi-core/function"
)

// Default is the standard per-node pipeline, run in this order at every
// node (spec.md §4.3):
//  1. identity removal — drop arguments equal to the function's identity
//     element when the function permits flattening (associative ops).
//  2. function evaluation — try the function table's registered cases,
//     with partial evaluation of flattened literal runs (see partial.go).
//  3. flattening — f(f(a,b),c) -> f(a,b,c) for associative functions.
//  4. idempotence/involution collapse — f(f(x)) -> f(x) or -> x.
//  5. interval normalization — canonicalize interval bound ordering.
type Default struct {
	Functions *function.Table
}

// New returns the default pipeline wrapped as a full tree Simplifier.
func New(functions *function.Table) Simplifier {
	return Wrap(Default{Functions: functions})
}

func (d Default) SimplifyExprPart(e expr.Expr, ctx *Context) (expr.Expr, error) {
	call, ok := e.(expr.Call)
	if !ok {
		return e, nil
	}

	flags, hasFlags := d.Functions.FlagsOf(call.Name)

	// Step 1: identity removal.
	if hasFlags && flags.PermitsFlattening {
		call.Args = removeIdentities(d.Functions, call.Name, call.Args)
	}

	// Step 2: function evaluation, with partial evaluation of literal runs
	// for flattened associative calls.
	evalCtx := evalContextFrom(ctx)
	if hasFlags && flags.PermitsFlattening && len(call.Args) > 2 {
		args, changed, err := partiallyEvaluate(d.Functions, call.Name, call.Args, evalCtx)
		if err != nil {
			ctx.Errors.Push(err)
		}
		if changed {
			call.Args = args
		}
	}
	if result, matched, err := d.Functions.Evaluate(call.Name, call.Args, evalCtx); matched {
		if err != nil {
			ctx.Errors.Push(err)
			return expr.NewCall(call.Name, call.Args...), nil
		}
		return result, nil
	}

	node := expr.Expr(expr.NewCall(call.Name, call.Args...))

	// Step 3: flattening.
	if hasFlags && flags.PermitsFlattening {
		node = flatten(call.Name, call.Args)
	}

	// Step 4: idempotence/involution collapse.
	if hasFlags {
		node = collapse(flags, node)
	}

	// Step 5: interval normalization.
	if iv, ok := algebra.IntervalFromExpr(node); ok {
		node = iv.ToExpr()
	}

	return node, nil
}

// removeIdentities drops arguments that are the identity element for name,
// e.g. 0 out of a "+" call's arguments, unless doing so would leave zero
// arguments (in which case the identity itself is the correct result and is
// left for the caller to evaluate).
func removeIdentities(t *function.Table, name string, args []expr.Expr) []expr.Expr {
	kept := make([]expr.Expr, 0, len(args))
	for _, a := range args {
		if t.IdentityElement(name, a) {
			continue
		}
		kept = append(kept, a)
	}
	if len(kept) == 0 {
		return args
	}
	return kept
}

// flatten merges nested calls to the same associative name into one call
// with a combined argument list: f(f(a,b),c) -> f(a,b,c).
func flatten(name string, args []expr.Expr) expr.Expr {
	out := make([]expr.Expr, 0, len(args))
	changed := false
	for _, a := range args {
		if inner, ok := a.(expr.Call); ok && inner.Name == name {
			out = append(out, inner.Args...)
			changed = true
			continue
		}
		out = append(out, a)
	}
	if !changed {
		return expr.NewCall(name, args...)
	}
	return flatten(name, out)
}

// collapse applies idempotence (f(f(x)) -> f(x)) and involution
// (f(f(x)) -> x) to a unary call whose single argument is itself a call to
// the same function.
func collapse(flags function.Flags, node expr.Expr) expr.Expr {
	call, ok := node.(expr.Call)
	if !ok || len(call.Args) != 1 {
		return node
	}
	inner, ok := call.Args[0].(expr.Call)
	if !ok || inner.Name != call.Name || len(inner.Args) != 1 {
		return node
	}
	if flags.IsInvolution {
		return inner.Args[0]
	}
	if flags.IsIdempotent {
		return call
	}
	return node
}
