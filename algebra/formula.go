package algebra

import "fifi-core/expr"

// Formula is an expression viewed as an equation LHS = RHS, grounded on
// original_source's expr/algebra/formula.rs. Unlike the "=" comparison
// function (which evaluates to a boolean when both sides are literals),
// a Formula is kept symbolic: a view for solving an equation rather than
// testing one. No command in this module builds a Formula; root finding
// takes its target expression as is.
type Formula struct {
	LHS, RHS expr.Expr
}

func FormulaFromExpr(e expr.Expr) (Formula, bool) {
	c, ok := e.(expr.Call)
	if !ok || c.Name != "=" || len(c.Args) != 2 {
		return Formula{}, false
	}
	return Formula{LHS: c.Args[0], RHS: c.Args[1]}, true
}

func (f Formula) ToExpr() expr.Expr {
	return expr.NewCall("=", f.LHS, f.RHS)
}

// AsZeroed rewrites LHS = RHS into LHS - RHS, the form root finding expects
// (it looks for a zero of a single expression-as-function).
func (f Formula) AsZeroed() expr.Expr {
	return expr.NewCall("-", f.LHS, f.RHS)
}
