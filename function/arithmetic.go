package function

import (
	"fifi-core/algebra"
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/numeric"
)

// allNumeric reports whether every element of args is a Number or
// ComplexLit atom — the guard shared by +, *, and friends' literal-folding
// cases. InfiniteLit is excluded deliberately: it's routed to
// hasInfiniteOperand's dedicated fold instead, since mixing a non-real
// complex with an infinite constant has no defined result and should stay
// symbolic rather than be silently mishandled by asComplex.
func allNumeric(args []expr.Expr) bool {
	if len(args) == 0 {
		return false
	}
	for _, a := range args {
		switch a.(type) {
		case expr.Number, expr.ComplexLit:
		default:
			return false
		}
	}
	return true
}

func asComplex(e expr.Expr) numeric.Complex {
	c, _, _ := expr.ToComplex.Narrow(e)
	return c
}

func wrapComplex(c numeric.Complex) expr.Expr {
	return expr.ToComplex.Widen(c)
}

func isInt64Exponent(e expr.Expr) (int64, bool) {
	n, ok := e.(expr.Number)
	if !ok || !n.Value.IsInt() {
		return 0, false
	}
	return n.Value.Int64(), true
}

// hasInfiniteOperand reports whether args are all finite-number-or-infinite
// atoms (no non-real complex) with at least one InfiniteLit among them — the
// guard that routes + and * to their infinite-aware folds before the plain
// allNumeric case, which would otherwise silently drop an InfiniteLit's
// value when asComplex narrows it to a zero complex.
func hasInfiniteOperand(args []expr.Expr) bool {
	sawInfinite := false
	for _, a := range args {
		switch a.(type) {
		case expr.Number:
		case expr.InfiniteLit:
			sawInfinite = true
		default:
			return false
		}
	}
	return sawInfinite
}

func divByZeroResult(ctx *EvalContext, signNumerator int) (expr.Expr, CaseStatus, error) {
	if !ctx.Mode.Infinity {
		return nil, Failure, corerr.ErrDivisionByZero
	}
	switch {
	case signNumerator > 0:
		return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.PosInf}}, Success, nil
	case signNumerator < 0:
		return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.NegInf}}, Success, nil
	default:
		return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.UInf}}, Success, nil
	}
}

func registerArithmetic(t *Table) {
	t.Register(NewFunction("+").
		WithFlags(Flags{PermitsFlattening: true, PermitsReordering: true}).
		WithIdentity(expr.IsZero).
		WithCase(CaseAny(hasInfiniteOperand, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			// Finite addends don't change an infinite sum's kind; only the
			// running infinite accumulator, folded with InfiniteAdd, does.
			var acc *numeric.Infinite
			for _, a := range args {
				lit, ok := a.(expr.InfiniteLit)
				if !ok {
					continue
				}
				if acc == nil {
					v := lit.Value
					acc = &v
					continue
				}
				v := numeric.InfiniteAdd(*acc, lit.Value)
				acc = &v
			}
			return expr.InfiniteLit{Value: *acc}, Success, nil
		})).
		WithCase(CaseAny(allNumeric, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			acc := numeric.Complex{Re: numeric.NewInt(0), Im: numeric.NewInt(0)}
			for _, a := range args {
				acc = numeric.ComplexAdd(acc, asComplex(a))
			}
			return wrapComplex(acc), Success, nil
		})).
		WithDerivative(func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
			terms := make([]expr.Expr, len(args))
			for i, a := range args {
				d, err := diff(a, v)
				if err != nil {
					return nil, err
				}
				terms[i] = d
			}
			return expr.NewCall("+", terms...), nil
		}).
		Build())

	t.Register(NewFunction("-").
		WithCase(Case2(expr.ToInfinite, expr.ToInfinite, func(a, b numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: numeric.InfiniteSub(a, b)}, Success, nil
		})).
		WithCase(Case2(expr.ToInfinite, expr.ToNumber, func(a numeric.Infinite, b numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: a}, Success, nil
		})).
		WithCase(Case2(expr.ToNumber, expr.ToInfinite, func(a numeric.Number, b numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: b.Neg()}, Success, nil
		})).
		WithCase(Case2(expr.ToComplex, expr.ToComplex, func(a, b numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return wrapComplex(numeric.ComplexSub(a, b)), Success, nil
		})).
		WithCase(Case1(expr.ToInfinite, func(a numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: a.Neg()}, Success, nil
		})).
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return wrapComplex(numeric.ComplexNeg(a)), Success, nil
		})).
		WithDerivative(func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
			if len(args) == 1 {
				d, err := diff(args[0], v)
				if err != nil {
					return nil, err
				}
				return expr.NewCall("negate", d), nil
			}
			da, err := diff(args[0], v)
			if err != nil {
				return nil, err
			}
			db, err := diff(args[1], v)
			if err != nil {
				return nil, err
			}
			return expr.NewCall("-", da, db), nil
		}).
		Build())

	t.Register(NewFunction("negate").
		WithFlags(Flags{IsInvolution: true}).
		WithCase(Case1(expr.ToInfinite, func(a numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: a.Neg()}, Success, nil
		})).
		WithCase(Case1(expr.ToComplex, func(a numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return wrapComplex(numeric.ComplexNeg(a)), Success, nil
		})).
		WithDerivative(func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
			d, err := diff(args[0], v)
			if err != nil {
				return nil, err
			}
			return expr.NewCall("negate", d), nil
		}).
		Build())

	t.Register(NewFunction("*").
		WithFlags(Flags{PermitsFlattening: true, PermitsReordering: true}).
		WithIdentity(expr.IsOne).
		WithCase(CaseAny(hasInfiniteOperand, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			// A zero finite factor makes the product indeterminate (0 * inf)
			// regardless of where it falls among the other factors, so it's
			// checked once at the end rather than short-circuited in place.
			// Negative finite factors are counted the same way, so their sign
			// applies wherever they fall relative to the infinite factors.
			var acc *numeric.Infinite
			zeroSeen := false
			negSeen := false
			for _, a := range args {
				switch v := a.(type) {
				case expr.InfiniteLit:
					if acc == nil {
						iv := v.Value
						acc = &iv
					} else {
						iv := numeric.InfiniteMul(*acc, v.Value)
						acc = &iv
					}
				case expr.Number:
					sign := numeric.Sign(v.Value)
					if sign == 0 {
						zeroSeen = true
					}
					if sign < 0 {
						negSeen = !negSeen
					}
				}
			}
			if zeroSeen {
				return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.NaN}}, Success, nil
			}
			if negSeen {
				return expr.InfiniteLit{Value: acc.ScaleByFiniteSign(-1)}, Success, nil
			}
			return expr.InfiniteLit{Value: *acc}, Success, nil
		})).
		WithCase(CaseAny(allNumeric, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			acc := numeric.Complex{Re: numeric.NewInt(1), Im: numeric.NewInt(0)}
			for _, a := range args {
				acc = numeric.ComplexMul(acc, asComplex(a))
			}
			return wrapComplex(acc), Success, nil
		})).
		WithDerivative(derivProduct).
		Build())

	t.Register(NewFunction("/").
		WithCase(Case2(expr.ToInfinite, expr.ToInfinite, func(a, b numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.NaN}}, Success, nil
		})).
		WithCase(Case2(expr.ToInfinite, expr.ToNumber, func(a numeric.Infinite, b numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			sign := numeric.Sign(b)
			if sign == 0 {
				// Infinite divided by zero isn't a case spec.md's numeric
				// promotion ladder defines; leave the call symbolic.
				return nil, NoMatch, nil
			}
			return expr.InfiniteLit{Value: a.ScaleByFiniteSign(sign)}, Success, nil
		})).
		WithCase(Case2(expr.ToNumber, expr.ToInfinite, func(a numeric.Number, b numeric.Infinite, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if b.Kind == numeric.NaN {
				return expr.InfiniteLit{Value: numeric.Infinite{Kind: numeric.NaN}}, Success, nil
			}
			return expr.Number{Value: numeric.NewInt(0)}, Success, nil
		})).
		WithCase(Case2(expr.ToComplex, expr.ToComplex, func(a, b numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			q, err := numeric.ComplexDiv(a, b)
			if err != nil {
				return divByZeroResult(ctx, numeric.Sign(a.Re))
			}
			return wrapComplex(q), Success, nil
		})).
		WithCase(Case2(IntervalPrism, expr.ToComplex, func(iv algebra.Interval, b numeric.Complex, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return intervalDivScalar(iv, b)
		})).
		WithDerivative(derivQuotient).
		Build())

	t.Register(NewFunction("div_inexact").
		WithCase(Case2(expr.ToNumber, expr.ToNumber, func(a, b numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			q, err := numeric.DivInexact(a, b)
			if err != nil {
				return divByZeroResult(ctx, numeric.Sign(a))
			}
			return expr.Number{Value: q}, Success, nil
		})).
		Build())

	t.Register(NewFunction("floor_div").
		WithCase(Case2(expr.ToNumber, expr.ToNumber, func(a, b numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			q, err := numeric.FloorDiv(a, b)
			if err != nil {
				return divByZeroResult(ctx, numeric.Sign(a))
			}
			return expr.Number{Value: q}, Success, nil
		})).
		Build())

	t.Register(NewFunction("%").
		WithCase(Case2(expr.ToNumber, expr.ToNumber, func(a, b numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if numeric.IsZero(b) {
				return divByZeroResult(ctx, numeric.Sign(a))
			}
			q, _ := numeric.FloorDiv(a, b)
			r := numeric.Sub(a, numeric.Mul(q, b))
			return expr.Number{Value: r}, Success, nil
		})).
		Build())
}

func derivProduct(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
	// Generalized product rule: d/dv(a*b*c*...) = sum over i of (d_i * prod of others).
	var terms []expr.Expr
	for i := range args {
		d, err := diff(args[i], v)
		if err != nil {
			return nil, err
		}
		others := make([]expr.Expr, 0, len(args))
		others = append(others, d)
		for j, a := range args {
			if j != i {
				others = append(others, a)
			}
		}
		terms = append(terms, expr.NewCall("*", others...))
	}
	return expr.NewCall("+", terms...), nil
}

func derivQuotient(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error) {
	a, b := args[0], args[1]
	da, err := diff(a, v)
	if err != nil {
		return nil, err
	}
	db, err := diff(b, v)
	if err != nil {
		return nil, err
	}
	// (a/b)' = (a'b - ab') / b^2
	num := expr.NewCall("-", expr.NewCall("*", da, b), expr.NewCall("*", a, db))
	den := expr.NewCall("^", b, expr.Number{Value: numeric.NewInt(2)})
	return expr.NewCall("/", num, den), nil
}
