package simplifier

import "fifi-core/expr"

// DefaultRepeatCount is N for the default pipeline (spec.md §4.3: "a
// repeated simplifier runs its inner simplifier up to N times (N=5 for the
// default pipeline)").
const DefaultRepeatCount = 5

// Repeated runs Inner's full tree pass up to N times, stopping early once a
// pass leaves the tree structurally unchanged (a fixed point).
type Repeated struct {
	Inner Simplifier
	N     int
}

// Repeat wraps s to run up to n times, short-circuiting at a fixed point.
func Repeat(s Simplifier, n int) Simplifier {
	return Repeated{Inner: s, N: n}
}

func (r Repeated) SimplifyExpr(e expr.Expr, ctx *Context) (expr.Expr, error) {
	n := r.N
	if n <= 0 {
		n = DefaultRepeatCount
	}
	for i := 0; i < n; i++ {
		next, err := r.Inner.SimplifyExpr(e, ctx)
		if err != nil {
			return nil, err
		}
		if expr.Equal(next, e) {
			return next, nil
		}
		e = next
	}
	return e, nil
}
