package function

import (
	"math"
	"math/cmplx"

	"fifi-core/algebra"
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/numeric"
)

func registerTranscendental(t *Table) {
	t.Register(NewFunction("^").
		WithCase(Case2(expr.ToComplex, expr.ToComplex, evalPower)).
		WithDerivative(derivPower).
		Build())

	t.Register(NewFunction("ln").
		WithCase(Case1(expr.PositiveNumber, func(a numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			f, _ := a.AsFloat().Float64()
			return expr.Number{Value: numeric.NewFloat64(math.Log(f))}, Success, nil
		})).
		WithCase(Case1(IntervalPrism, func(iv algebra.Interval, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return mapMonotoneIncreasing(iv, func(n numeric.Number) (numeric.Number, error) {
				f, _ := n.AsFloat().Float64()
				if f <= 0 {
					return numeric.Number{}, corerr.ErrDomain
				}
				return numeric.NewFloat64(math.Log(f)), nil
			})
		})).
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if numeric.IsZero(a.Re) && numeric.IsZero(a.Im) {
				return lnZeroResult(ctx)
			}
			re, im := a.Re.Float64(), a.Im.Float64()
			z := cmplx.Log(complex(re, im))
			return wrapComplex(numeric.Complex{Re: numeric.NewFloat64(real(z)), Im: numeric.NewFloat64(imag(z))}), Success, nil
		})).
		WithCase(Case1(expr.ToInfinite, func(a numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: lnOfInfinite(a)}, Success, nil
		})).
		WithDerivative(func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
			d, err := diff(args[0], v)
			if err != nil {
				return nil, err
			}
			return expr.NewCall("/", d, args[0]), nil
		}).
		Build())

	t.Register(NewFunction("log").
		WithCase(Case2(expr.PositiveNumber, expr.PositiveNumber, func(base, x numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			bf, _ := base.AsFloat().Float64()
			xf, _ := x.AsFloat().Float64()
			return expr.Number{Value: numeric.NewFloat64(math.Log(xf) / math.Log(bf))}, Success, nil
		})).
		WithCase(Case2(expr.ToComplex, expr.ToComplex, func(base, x numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if (numeric.IsZero(base.Re) && numeric.IsZero(base.Im)) || (numeric.IsZero(x.Re) && numeric.IsZero(x.Im)) {
				return nil, Failure, corerr.ErrDomain
			}
			bz := cmplx.Log(complex(base.Re.Float64(), base.Im.Float64()))
			xz := cmplx.Log(complex(x.Re.Float64(), x.Im.Float64()))
			z := xz / bz
			return wrapComplex(numeric.Complex{Re: numeric.NewFloat64(real(z)), Im: numeric.NewFloat64(imag(z))}), Success, nil
		})).
		WithCase(Case2(expr.PositiveNumber, IntervalPrism, func(base numeric.Number, iv algebra.Interval, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			bf, _ := base.AsFloat().Float64()
			return mapMonotoneIncreasing(iv, func(n numeric.Number) (numeric.Number, error) {
				f, _ := n.AsFloat().Float64()
				if f <= 0 {
					return numeric.Number{}, corerr.ErrDomain
				}
				return numeric.NewFloat64(math.Log(f) / math.Log(bf)), nil
			})
		})).
		WithCase(Case2(expr.ToInfinite, expr.ToComplex, func(base numeric.Infinite, x numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			// Logarithm of a finite complex x with an infinite base: the base
			// swamps any finite x, so the ratio ln(x)/ln(base) goes to 0,
			// except when the base itself is nan.
			if base.Kind == numeric.NaN {
				return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.NaN}}, Success, nil
			}
			return expr.Number{Value: numeric.NewInt(0)}, Success, nil
		})).
		WithCase(Case2(expr.ToComplex, expr.ToInfinite, func(base numeric.Complex, x numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			// Logarithm of an infinite x against a finite complex base: same
			// table as ln's own infinity case, the finite base doesn't change
			// which constant it lands on.
			return expr.InfiniteLit{Value: lnOfInfinite(x)}, Success, nil
		})).
		WithCase(Case2(expr.ToInfinite, expr.ToInfinite, func(base, x numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.NaN}}, Success, nil
		})).
		WithDerivative(func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
			// d/dv log(base, x) = d/dv ln(x) / ln(base), by the quotient rule.
			equivalent := expr.NewCall("/", expr.NewCall("ln", args[1]), expr.NewCall("ln", args[0]))
			return diff(equivalent, v)
		}).
		Build())

	t.Register(NewFunction("exp").
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if a.IsReal() {
				f, _ := a.Re.AsFloat().Float64()
				return expr.Number{Value: numeric.NewFloat64(math.Exp(f))}, Success, nil
			}
			z := cmplx.Exp(complex(a.Re.Float64(), a.Im.Float64()))
			return wrapComplex(numeric.Complex{Re: numeric.NewFloat64(real(z)), Im: numeric.NewFloat64(imag(z))}), Success, nil
		})).
		WithDerivative(func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
			d, err := diff(args[0], v)
			if err != nil {
				return nil, err
			}
			return expr.NewCall("*", expr.NewCall("exp", args[0]), d), nil
		}).
		Build())
}

// lnOfInfinite implements natural_log()'s infinity case: nan propagates as
// nan, every other infinite constant (including -inf) logs to +inf.
func lnOfInfinite(a numeric.Infinite) numeric.Infinite {
	if a.Kind == numeric.NaN {
		return numeric.Infinite{Kind: numeric.NaN}
	}
	return numeric.Infinite{Kind: numeric.PosInf}
}

func lnZeroResult(ctx *EvalContext) (expr.Expr, CaseStatus, error) {
	if !ctx.Mode.Infinity {
		return nil, Failure, corerr.ErrDomain
	}
	return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.NegInf}}, Success, nil
}

// evalPower implements spec.md §4.4's power rules: 0^0 errors, negative
// exponent of 0 errors, and exact integer exponents use exact arithmetic.
// Every non-integer exponent, rational or float, is evaluated in floating
// point: math.Pow for a nonnegative real base, the complex principal value
// (polar form) for a negative one. A rational exponent p/q is not taken as
// an exact q-th root of x^p, so 4^(1:2) gives the float 2, not the integer 2.
func evalPower(base, exp numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
	if base.IsReal() && exp.IsReal() {
		b, e := base.Re, exp.Re
		if numeric.IsZero(b) {
			if numeric.IsZero(e) {
				return nil, Failure, corerr.ErrDomain
			}
			if numeric.Sign(e) < 0 {
				return nil, Failure, corerr.ErrDomain
			}
			return expr.Number{Value: numeric.NewInt(0)}, Success, nil
		}
		if e.IsInt() {
			return expr.Number{Value: numeric.Pow(b, e.Int64())}, Success, nil
		}
		bf, _ := b.AsFloat().Float64()
		if bf >= 0 {
			ef, _ := e.AsFloat().Float64()
			return expr.Number{Value: numeric.NewFloat64(math.Pow(bf, ef))}, Success, nil
		}
		// Negative base with a non-integer exponent: principal value via
		// polar form, yielding a complex result.
		ef, _ := e.AsFloat().Float64()
		z := cmplx.Pow(complex(bf, 0), complex(ef, 0))
		return wrapComplex(numeric.Complex{Re: numeric.NewFloat64(real(z)), Im: numeric.NewFloat64(imag(z))}), Success, nil
	}
	br, bi := base.Re.Float64(), base.Im.Float64()
	er, ei := exp.Re.Float64(), exp.Im.Float64()
	z := cmplx.Pow(complex(br, bi), complex(er, ei))
	return wrapComplex(numeric.Complex{Re: numeric.NewFloat64(real(z)), Im: numeric.NewFloat64(imag(z))}), Success, nil
}

func derivPower(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
	base, exp := args[0], args[1]
	if expr.IsConstant(exp, v) {
		// d/dv base^k = k * base^(k-1) * base'
		db, err := diff(base, v)
		if err != nil {
			return nil, err
		}
		kMinus1 := expr.NewCall("-", exp, expr.Number{Value: numeric.NewInt(1)})
		return expr.NewCall("*", exp, expr.NewCall("^", base, kMinus1), db), nil
	}
	// General case: d/dv b^e = b^e * (e' * ln(b) + e * b'/b).
	db, err := diff(base, v)
	if err != nil {
		return nil, err
	}
	de, err := diff(exp, v)
	if err != nil {
		return nil, err
	}
	self := expr.NewCall("^", base, exp)
	term1 := expr.NewCall("*", de, expr.NewCall("ln", base))
	term2 := expr.NewCall("*", exp, expr.NewCall("/", db, base))
	return expr.NewCall("*", self, expr.NewCall("+", term1, term2)), nil
}
