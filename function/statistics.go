package function

import (
	"fifi-core/algebra"
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/numeric"
)

func narrowNumberVector(e expr.Expr) ([]numeric.Number, bool) {
	v, ok := algebra.VectorFromExpr(e)
	if !ok || len(v) == 0 {
		return nil, false
	}
	out := make([]numeric.Number, len(v))
	for i, el := range v {
		n, ok := el.(expr.Number)
		if !ok {
			return nil, false
		}
		out[i] = n.Value
	}
	return out, true
}

func registerStatistics(t *Table) {
	stat := func(name string, fn func([]numeric.Number) (numeric.Number, error)) {
		t.Register(NewFunction(name).
			WithCase(CaseAny(func(args []expr.Expr) bool { return len(args) == 1 }, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
				nums, ok := narrowNumberVector(args[0])
				if !ok {
					return nil, NoMatch, nil
				}
				r, err := fn(nums)
				if err != nil {
					return nil, Failure, err
				}
				return expr.Number{Value: r}, Success, nil
			})).
			Build())
	}

	stat("mean", func(ns []numeric.Number) (numeric.Number, error) {
		sum := numeric.NewInt(0)
		for _, n := range ns {
			sum = numeric.Add(sum, n)
		}
		return numeric.Div(sum, numeric.NewInt(int64(len(ns))))
	})

	stat("median", func(ns []numeric.Number) (numeric.Number, error) {
		sorted := append([]numeric.Number{}, ns...)
		for i := 1; i < len(sorted); i++ {
			for j := i; j > 0 && numeric.Cmp(sorted[j-1], sorted[j]) > 0; j-- {
				sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			}
		}
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid], nil
		}
		sum := numeric.Add(sorted[mid-1], sorted[mid])
		return numeric.Div(sum, numeric.NewInt(2))
	})

	stat("gmean", func(ns []numeric.Number) (numeric.Number, error) {
		prod := numeric.NewInt(1)
		for _, n := range ns {
			if numeric.Sign(n) < 0 {
				return numeric.Number{}, corerr.ErrDomain
			}
			prod = numeric.Mul(prod, n)
		}
		fv, _ := prod.AsFloat().Float64()
		return numeric.NewFloat64(nthRoot(fv, len(ns))), nil
	})

	stat("hmean", func(ns []numeric.Number) (numeric.Number, error) {
		sum := numeric.NewInt(0)
		for _, n := range ns {
			if numeric.IsZero(n) {
				return numeric.Number{}, corerr.ErrDivisionByZero
			}
			recip, err := numeric.Div(numeric.NewInt(1), n)
			if err != nil {
				return numeric.Number{}, err
			}
			sum = numeric.Add(sum, recip)
		}
		avg, err := numeric.Div(sum, numeric.NewInt(int64(len(ns))))
		if err != nil {
			return numeric.Number{}, err
		}
		return numeric.Div(numeric.NewInt(1), avg)
	})

	stat("agmean", func(ns []numeric.Number) (numeric.Number, error) {
		if len(ns) != 2 {
			return numeric.Number{}, corerr.ErrBadType
		}
		a, g := ns[0].Float64(), ns[1].Float64()
		for i := 0; i < 64; i++ {
			a, g = (a+g)/2, nthRoot(a*g, 2)
		}
		return numeric.NewFloat64(a), nil
	})
}

func nthRoot(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	if x == 0 {
		return 0
	}
	// Newton's method for a real n-th root of a nonnegative x.
	guess := x
	if guess <= 0 {
		guess = 1
	}
	for i := 0; i < 64; i++ {
		var pow, powMinus1 float64 = 1, 1
		for j := 0; j < n; j++ {
			pow *= guess
		}
		for j := 0; j < n-1; j++ {
			powMinus1 *= guess
		}
		if powMinus1 == 0 {
			break
		}
		guess = guess - (pow-x)/(float64(n)*powMinus1)
	}
	return guess
}
