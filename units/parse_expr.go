package units

import (
	"fifi-core/algebra"
	"fifi-core/expr"
)

// ParseCompositeUnit interprets a Term as a CompositeUnit plus a remaining
// scalar Term: each factor in t's numerator and denominator that is a bare
// variable (exponent 1) or var^int and is recognized by parser is pulled
// into the CompositeUnit; everything else stays in the returned Term
// (spec.md §4.7).
func ParseCompositeUnit(t algebra.Term, parser UnitParser) (CompositeUnit, algebra.Term) {
	var parts []UnitPower
	var num, den []expr.Expr
	for _, e := range t.Num {
		if u, exp, ok := factorAsUnit(e, parser); ok {
			parts = append(parts, UnitPower{Unit: u, Exponent: exp})
		} else {
			num = append(num, e)
		}
	}
	for _, e := range t.Den {
		if u, exp, ok := factorAsUnit(e, parser); ok {
			parts = append(parts, UnitPower{Unit: u, Exponent: -exp})
		} else {
			den = append(den, e)
		}
	}
	return CompositeUnit{Parts: parts}.Normalize(), algebra.Term{Num: num, Den: den}
}

func factorAsUnit(e expr.Expr, parser UnitParser) (Unit, int64, bool) {
	f := algebra.FactorFromExpr(e)
	name, ok := f.Base.(expr.Var)
	if !ok {
		return Unit{}, 0, false
	}
	u, ok := parser.ParseUnit(name.Name)
	if !ok {
		return Unit{}, 0, false
	}
	if !f.HasExponent() {
		return u, 1, true
	}
	n, ok := f.Exponent.(expr.Number)
	if !ok || !n.Value.IsInt() {
		return Unit{}, 0, false
	}
	return u, n.Value.Int64(), true
}
