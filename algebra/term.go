// Package algebra implements the parsed "view" types the simplifier and
// function library use to reason about expressions algebraically: Term,
// Factor, Polynomial, Vector, Matrix, Interval and Formula. Each view has a
// canonicalizing FromExpr and a rendering ToExpr, with the one-way
// information loss documented per type (spec.md §3).
package algebra

import "fifi-core/expr"

// Term is an expression viewed as a product of factors divided by a
// product of factors. Neither Num nor Den may contain a "*" or binary "/"
// call — TermFromExpr flattens those away; that flattening is the one-way
// loss (grouping/parenthesization is not preserved).
type Term struct {
	Num []expr.Expr
	Den []expr.Expr
}

// TermFromExpr parses e into a Term by flattening chained "*" and binary
// "/" calls. Division recurses on both sides: the numerator of a/b is a's
// numerator plus b's denominator (the double division cancels), and the
// denominator is a's denominator plus b's numerator.
func TermFromExpr(e expr.Expr) Term {
	num, den := flattenTerm(e)
	return Term{Num: num, Den: den}
}

func flattenTerm(e expr.Expr) (num, den []expr.Expr) {
	c, ok := e.(expr.Call)
	if !ok {
		return []expr.Expr{e}, nil
	}
	switch {
	case c.Name == "*":
		for _, a := range c.Args {
			n, d := flattenTerm(a)
			num = append(num, n...)
			den = append(den, d...)
		}
		return num, den
	case c.Name == "/" && len(c.Args) == 2:
		n1, d1 := flattenTerm(c.Args[0])
		n2, d2 := flattenTerm(c.Args[1])
		num = append(append([]expr.Expr{}, n1...), d2...)
		den = append(append([]expr.Expr{}, d1...), n2...)
		return num, den
	default:
		return []expr.Expr{e}, nil
	}
}

// ToExpr renders a Term back to an Expr: a "*" of the numerator (or a
// single factor, or the literal 1 if empty) optionally divided by a "*" of
// the denominator.
func (t Term) ToExpr() expr.Expr {
	num := product(t.Num)
	if len(t.Den) == 0 {
		return num
	}
	return expr.NewCall("/", num, product(t.Den))
}

func product(es []expr.Expr) expr.Expr {
	switch len(es) {
	case 0:
		return expr.Number{Value: intOne}
	case 1:
		return es[0]
	default:
		return expr.NewCall("*", es...)
	}
}
