package function

import (
	"fifi-core/algebra"
	"fifi-core/expr"
	"fifi-core/numeric"
	"fifi-core/prism"
)

// IntervalPrism narrows an Expr to its algebra.Interval view, reused by
// every arithmetic/transcendental case that accepts interval arguments.
var IntervalPrism = prism.New(
	func(e expr.Expr) (algebra.Interval, bool) { return algebra.IntervalFromExpr(e) },
	func(iv algebra.Interval) expr.Expr { return iv.ToExpr() },
)

func numberBound(e expr.Expr) (numeric.Number, bool) {
	n, ok := e.(expr.Number)
	return n.Value, ok
}

// intervalDivScalar divides an interval by a nonzero real scalar,
// preserving monotonicity: for a positive scalar the bounds map directly;
// for negative, bounds and openness swap.
func intervalDivScalar(iv algebra.Interval, scalar numeric.Complex) (expr.Expr, CaseStatus, error) {
	if !scalar.IsReal() || numeric.IsZero(scalar.Re) {
		return nil, NoMatch, nil
	}
	lo, lok := numberBound(iv.Left)
	hi, hok := numberBound(iv.Right)
	if !lok || !hok {
		return nil, NoMatch, nil
	}
	loQ, err := numeric.Div(lo, scalar.Re)
	if err != nil {
		return nil, Failure, err
	}
	hiQ, err := numeric.Div(hi, scalar.Re)
	if err != nil {
		return nil, Failure, err
	}
	result := algebra.Interval{Left: expr.Number{Value: loQ}, Type: iv.Type, Right: expr.Number{Value: hiQ}}
	if numeric.Sign(scalar.Re) < 0 {
		result.Left, result.Right = expr.Number{Value: hiQ}, expr.Number{Value: loQ}
		switch iv.Type {
		case algebra.LeftOpen:
			result.Type = algebra.RightOpen
		case algebra.RightOpen:
			result.Type = algebra.LeftOpen
		}
	}
	return result.ToExpr(), Success, nil
}

// mapMonotoneIncreasing applies a monotone-increasing real function to both
// bounds of iv, used by ln/log of a positive interval.
func mapMonotoneIncreasing(iv algebra.Interval, f func(numeric.Number) (numeric.Number, error)) (expr.Expr, CaseStatus, error) {
	lo, lok := numberBound(iv.Left)
	hi, hok := numberBound(iv.Right)
	if !lok || !hok {
		return nil, NoMatch, nil
	}
	loR, err := f(lo)
	if err != nil {
		return nil, Failure, err
	}
	hiR, err := f(hi)
	if err != nil {
		return nil, Failure, err
	}
	result := algebra.Interval{Left: expr.Number{Value: loR}, Type: iv.Type, Right: expr.Number{Value: hiR}}
	return result.ToExpr(), Success, nil
}
