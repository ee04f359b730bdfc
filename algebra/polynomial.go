package algebra

import "fifi-core/expr"

// SignedTerm is one addend of a Polynomial: +Term or -Term.
type SignedTerm struct {
	Negative bool
	Term     Term
}

// Polynomial is an expression viewed as a signed sum of Terms, flattening
// chained "+" and binary/unary "-" the way TermFromExpr flattens "*"/"/".
type Polynomial []SignedTerm

func PolynomialFromExpr(e expr.Expr) Polynomial {
	return flattenSum(e, false)
}

func flattenSum(e expr.Expr, negate bool) Polynomial {
	if c, ok := e.(expr.Call); ok {
		switch {
		case c.Name == "+":
			var p Polynomial
			for _, a := range c.Args {
				p = append(p, flattenSum(a, negate)...)
			}
			return p
		case c.Name == "-" && len(c.Args) == 2:
			p := flattenSum(c.Args[0], negate)
			p = append(p, flattenSum(c.Args[1], !negate)...)
			return p
		case c.Name == "-" && len(c.Args) == 1:
			return flattenSum(c.Args[0], !negate)
		case c.Name == "negate" && len(c.Args) == 1:
			return flattenSum(c.Args[0], !negate)
		}
	}
	return Polynomial{{Negative: negate, Term: TermFromExpr(e)}}
}

// ToExpr renders the Polynomial as a "+" of terms, each negative term
// wrapped in a unary "negate" call — the same one-way loss as Term.ToExpr
// (original grouping of +/- is not preserved).
func (p Polynomial) ToExpr() expr.Expr {
	if len(p) == 0 {
		return expr.Number{Value: intZero}
	}
	terms := make([]expr.Expr, len(p))
	for i, st := range p {
		te := st.Term.ToExpr()
		if st.Negative {
			te = expr.NewCall("negate", te)
		}
		terms[i] = te
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return expr.NewCall("+", terms...)
}
