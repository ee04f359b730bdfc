// Package rootfind implements Newton-Raphson, secant and bisection root
// finding over expressions-as-functions, each a small state machine driven
// by an ExprFunction and bounded by an iteration cap (spec.md §4.6).
package rootfind

import (
	"fmt"

	"github.com/pkg/errors"

	"fifi-core/calcmode"
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/function"
	"fifi-core/numeric"
	"fifi-core/simplifier"
)

// DefaultMaxIterations is the iteration cap every algorithm defaults to
// (spec.md §4.6: "cap iterations (default 1000)").
const DefaultMaxIterations = 1000

// Sentinel error kinds, each a distinct variant so the command layer can
// surface which one occurred (spec.md §4.6).
var (
	ErrFailedConvergence = errors.New("root finding did not converge")
	ErrDegenerateInput   = errors.New("degenerate input to root finder")
	ErrEvalFailure       = errors.New("function evaluation failed")
)

// FoundRoot is the success result every algorithm returns.
type FoundRoot struct {
	Value        expr.Expr
	FinalEpsilon float64
}

// ExprFunction pairs an expression, the variable it is evaluated over, the
// function table used to reduce it, and the calculation mode — spec.md
// §4.6's "a small state machine over an expression + variable +
// simplifier."
type ExprFunction struct {
	Target    expr.Expr
	Var       string
	Functions *function.Table
	Mode      calcmode.CalculationMode
}

// Eval substitutes x for Var in Target and simplifies to a numeric
// literal, returning ErrEvalFailure if the result doesn't reduce to one.
func (f ExprFunction) Eval(x expr.Expr) (numeric.Complex, error) {
	substituted, err := substitute(f.Target, f.Var, x)
	if err != nil {
		return numeric.Complex{}, err
	}
	ctx := simplifier.NewContext(f.Mode)
	pipeline := simplifier.Repeat(simplifier.New(f.Functions), simplifier.DefaultRepeatCount)
	ctx.Base = pipeline
	result, err := pipeline.SimplifyExpr(substituted, ctx)
	if err != nil {
		return numeric.Complex{}, err
	}
	if !ctx.Errors.Empty() {
		return numeric.Complex{}, ctx.Errors.First()
	}
	c, ok, _ := expr.ToComplex.Narrow(result)
	if !ok {
		return numeric.Complex{}, errors.Wrapf(ErrEvalFailure, "%s did not reduce to a number", result)
	}
	return c, nil
}

func substitute(e expr.Expr, v string, val expr.Expr) (expr.Expr, error) {
	return expr.Walk(e, func(node expr.Expr) (expr.Expr, error) {
		if vr, ok := node.(expr.Var); ok && vr.Name == v {
			return val, nil
		}
		return node, nil
	})
}

func complexExpr(c numeric.Complex) expr.Expr { return expr.ToComplex.Widen(c) }

// Newton iterates x <- x - f(x)/f'(x) from x0 until |f(x)|^2 < eps^2,
// using a precomputed derivative (computed once by the caller via
// function.DifferentiateFunc, so this package stays independent of
// calculus). Accepts complex inputs (spec.md §4.6).
func Newton(f ExprFunction, diff function.DifferentiateFunc, x0 numeric.Complex, eps float64, maxIter int) (FoundRoot, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	derivExpr, err := diff(f.Target, f.Var)
	if err != nil {
		return FoundRoot{}, err
	}
	derivFn := ExprFunction{Target: derivExpr, Var: f.Var, Functions: f.Functions, Mode: f.Mode}

	x := x0
	epsSq := numeric.NewFloat64(eps * eps)
	for i := 0; i < maxIter; i++ {
		fx, err := f.Eval(complexExpr(x))
		if err != nil {
			return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
		}
		if numeric.Cmp(fx.AbsSquared(), epsSq) < 0 {
			return FoundRoot{Value: complexExpr(x), FinalEpsilon: eps}, nil
		}
		dfx, err := derivFn.Eval(complexExpr(x))
		if err != nil {
			return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
		}
		if numeric.IsZero(dfx.Re) && numeric.IsZero(dfx.Im) {
			return FoundRoot{}, corerr.ErrDivisionByZero
		}
		delta, err := numeric.ComplexDiv(fx, dfx)
		if err != nil {
			return FoundRoot{}, corerr.ErrDivisionByZero
		}
		x = numeric.ComplexSub(x, delta)
	}
	return FoundRoot{}, ErrFailedConvergence
}

// Secant iterates without a derivative from two initial guesses, treating
// f(x1) - f(x0) == 0 as failure (spec.md §4.6).
func Secant(f ExprFunction, x0, x1 numeric.Complex, eps float64, maxIter int) (FoundRoot, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	epsSq := numeric.NewFloat64(eps * eps)
	f0, err := f.Eval(complexExpr(x0))
	if err != nil {
		return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
	}
	f1, err := f.Eval(complexExpr(x1))
	if err != nil {
		return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
	}
	for i := 0; i < maxIter; i++ {
		if numeric.Cmp(f1.AbsSquared(), epsSq) < 0 {
			return FoundRoot{Value: complexExpr(x1), FinalEpsilon: eps}, nil
		}
		denom := numeric.ComplexSub(f1, f0)
		if numeric.IsZero(denom.Re) && numeric.IsZero(denom.Im) {
			return FoundRoot{}, corerr.ErrDivisionByZero
		}
		// x2 = x1 - f1*(x1-x0)/(f1-f0)
		numer := numeric.ComplexMul(f1, numeric.ComplexSub(x1, x0))
		frac, err := numeric.ComplexDiv(numer, denom)
		if err != nil {
			return FoundRoot{}, corerr.ErrDivisionByZero
		}
		x2 := numeric.ComplexSub(x1, frac)
		f2, err := f.Eval(complexExpr(x2))
		if err != nil {
			return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}
	return FoundRoot{}, ErrFailedConvergence
}

// Bisection halves the interval [a,b] (both real), requiring sign(f(a)) !=
// sign(f(b)), choosing the side whose sign matches f(left) (spec.md §4.6).
func Bisection(f ExprFunction, a, b numeric.Number, eps float64, maxIter int) (FoundRoot, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	fa, err := f.Eval(expr.Number{Value: a})
	if err != nil {
		return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
	}
	fb, err := f.Eval(expr.Number{Value: b})
	if err != nil {
		return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
	}
	if !fa.IsReal() || !fb.IsReal() {
		return FoundRoot{}, errors.Wrap(ErrDegenerateInput, "bisection requires real-valued endpoints")
	}
	signA, signB := numeric.Sign(fa.Re), numeric.Sign(fb.Re)
	if signA == 0 {
		return FoundRoot{Value: expr.Number{Value: a}, FinalEpsilon: eps}, nil
	}
	if signB == 0 {
		return FoundRoot{Value: expr.Number{Value: b}, FinalEpsilon: eps}, nil
	}
	if signA == signB {
		return FoundRoot{}, errors.Wrap(ErrDegenerateInput, fmt.Sprintf("f(%s) and f(%s) have the same sign", a, b))
	}

	epsSq := numeric.NewFloat64(eps * eps)
	left, right := a, b
	fLeft := fa
	for i := 0; i < maxIter; i++ {
		mid := numeric.Mul(numeric.Add(left, right), numeric.NewRationalInts(1, 2))
		fMid, err := f.Eval(expr.Number{Value: mid})
		if err != nil {
			return FoundRoot{}, errors.Wrap(ErrEvalFailure, err.Error())
		}
		if numeric.Cmp(fMid.AbsSquared(), epsSq) < 0 {
			return FoundRoot{Value: expr.Number{Value: mid}, FinalEpsilon: eps}, nil
		}
		if numeric.Sign(fMid.Re) == numeric.Sign(fLeft.Re) {
			left, fLeft = mid, fMid
		} else {
			right = mid
		}
	}
	return FoundRoot{}, ErrFailedConvergence
}
