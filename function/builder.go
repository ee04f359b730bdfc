package function

import (
	"fifi-core/expr"
	"fifi-core/prism"
)

// Builder accumulates a Record via a fluent interface, matching
// spec.md §4.4's description: "a fluent builder ... generates a single
// closure that tries the cases in order."
type Builder struct {
	rec *Record
}

func NewFunction(name string) *Builder {
	return &Builder{rec: &Record{Name: name}}
}

func (b *Builder) WithFlags(f Flags) *Builder {
	b.rec.Flags = f
	return b
}

func (b *Builder) WithIdentity(pred func(expr.Expr) bool) *Builder {
	b.rec.IdentityFn = pred
	return b
}

func (b *Builder) WithDerivative(rule DerivativeRule) *Builder {
	b.rec.Derivative = rule
	return b
}

func (b *Builder) WithGraphics(g GraphicsCase) *Builder {
	b.rec.Graphics = append(b.rec.Graphics, g)
	return b
}

// WithCase appends a raw CaseFunc, for cases whose arity is "any" or whose
// argument shape doesn't fit the Case1..Case4 generic helpers below.
func (b *Builder) WithCase(c CaseFunc) *Builder {
	b.rec.Cases = append(b.rec.Cases, c)
	return b
}

func (b *Builder) Build() *Record { return b.rec }

// Case1 builds a unary case: args must have length 1 and args[0] must
// narrow through p.
func Case1[D any](p prism.Prism[expr.Expr, D], body func(D, *EvalContext) (expr.Expr, CaseStatus, error)) CaseFunc {
	return func(args []expr.Expr, ctx *EvalContext) CaseOutcome {
		if len(args) != 1 {
			return noMatch()
		}
		d, ok, _ := p.Narrow(args[0])
		if !ok {
			return noMatch()
		}
		e, status, err := body(d, ctx)
		return finish(e, status, err)
	}
}

// Case2 builds a binary case using one prism per position.
func Case2[D1, D2 any](p1 prism.Prism[expr.Expr, D1], p2 prism.Prism[expr.Expr, D2], body func(D1, D2, *EvalContext) (expr.Expr, CaseStatus, error)) CaseFunc {
	return func(args []expr.Expr, ctx *EvalContext) CaseOutcome {
		d1, d2, ok := prism.NarrowVec2(p1, p2, args)
		if !ok {
			return noMatch()
		}
		e, status, err := body(d1, d2, ctx)
		return finish(e, status, err)
	}
}

func Case3[D1, D2, D3 any](p1 prism.Prism[expr.Expr, D1], p2 prism.Prism[expr.Expr, D2], p3 prism.Prism[expr.Expr, D3], body func(D1, D2, D3, *EvalContext) (expr.Expr, CaseStatus, error)) CaseFunc {
	return func(args []expr.Expr, ctx *EvalContext) CaseOutcome {
		d1, d2, d3, ok := prism.NarrowVec3(p1, p2, p3, args)
		if !ok {
			return noMatch()
		}
		e, status, err := body(d1, d2, d3, ctx)
		return finish(e, status, err)
	}
}

func Case4[D1, D2, D3, D4 any](p1 prism.Prism[expr.Expr, D1], p2 prism.Prism[expr.Expr, D2], p3 prism.Prism[expr.Expr, D3], p4 prism.Prism[expr.Expr, D4], body func(D1, D2, D3, D4, *EvalContext) (expr.Expr, CaseStatus, error)) CaseFunc {
	return func(args []expr.Expr, ctx *EvalContext) CaseOutcome {
		d1, d2, d3, d4, ok := prism.NarrowVec4(p1, p2, p3, p4, args)
		if !ok {
			return noMatch()
		}
		e, status, err := body(d1, d2, d3, d4, ctx)
		return finish(e, status, err)
	}
}

// CaseAny builds a case with no arity restriction, for flattened
// associative functions (+, *, and, or) whose argument count varies. pred
// filters which argument lists the case applies to (e.g. "all numeric").
func CaseAny(pred func([]expr.Expr) bool, body func([]expr.Expr, *EvalContext) (expr.Expr, CaseStatus, error)) CaseFunc {
	return func(args []expr.Expr, ctx *EvalContext) CaseOutcome {
		if !pred(args) {
			return noMatch()
		}
		e, status, err := body(args, ctx)
		return finish(e, status, err)
	}
}

func finish(e expr.Expr, status CaseStatus, err error) CaseOutcome {
	switch status {
	case Success:
		return success(e)
	case Failure:
		return failure(err)
	default:
		return noMatch()
	}
}
