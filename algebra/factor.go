package algebra

import "fifi-core/expr"

// Factor is an expression viewed as base^exponent with an optional
// exponent. The invariant (spec.md §3) is that Base is never itself a
// binary "^" call when Exponent is set — FactorFromExpr only ever peels one
// layer of "^" off the top.
type Factor struct {
	Base     expr.Expr
	Exponent expr.Expr // nil when absent
}

func FactorFromExpr(e expr.Expr) Factor {
	if c, ok := e.(expr.Call); ok && c.Name == "^" && len(c.Args) == 2 {
		return Factor{Base: c.Args[0], Exponent: c.Args[1]}
	}
	return Factor{Base: e}
}

func (f Factor) ToExpr() expr.Expr {
	if f.Exponent == nil {
		return f.Base
	}
	return expr.NewCall("^", f.Base, f.Exponent)
}

// HasExponent reports whether the view captured an explicit exponent.
func (f Factor) HasExponent() bool { return f.Exponent != nil }
