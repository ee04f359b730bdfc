package simplifier

import (
	"fifi-core/algebra"
	"fifi-core/expr"
	"fifi-core/numeric"
	"fifi-core/units"
)

// UnitSimplifier cancels compatible-dimension units of opposite-sign
// exponents in a product/quotient expression, e.g. `*(km, /(1, m))`
// reduces to the scalar 1000 once km and m (both "length") are cancelled —
// spec.md §4.3, §4.7's unit simplifier decorator.
type UnitSimplifier struct {
	Parser units.UnitParser
}

func (u UnitSimplifier) SimplifyExprPart(e expr.Expr, ctx *Context) (expr.Expr, error) {
	if _, ok := e.(expr.Call); !ok {
		return e, nil
	}
	term := algebra.TermFromExpr(e)
	cu, rest := units.ParseCompositeUnit(term, u.Parser)
	if cu.Empty() || len(cu.Parts) < 2 {
		return e, nil
	}
	cancelled, factor, changed := cancelCompatible(cu)
	if !changed {
		return e, nil
	}
	scalar := rest
	if !numeric.IsZero(numeric.Sub(factor, numeric.NewInt(1))) {
		scalar.Num = append(scalar.Num, expr.Number{Value: factor})
	}
	return combine(cancelled, scalar), nil
}

// NewUnitSimplifier returns the decorator as a full tree Simplifier.
func NewUnitSimplifier(parser units.UnitParser) Simplifier {
	return Wrap(UnitSimplifier{Parser: parser})
}

// cancelCompatible walks the (already name-sorted) parts of a composite
// unit looking for pairs of opposite-sign exponent whose units share a
// dimension but not a name (e.g. km vs m); same-name pairs are already
// merged by CompositeUnit.Normalize. The earlier (leftmost, i.e. lower
// index) unit in each matched pair is kept; the later one is converted into
// it and folded into the returned scalar factor.
func cancelCompatible(cu units.CompositeUnit) (units.CompositeUnit, numeric.Number, bool) {
	parts := append([]units.UnitPower{}, cu.Parts...)
	factor := numeric.NewInt(1)
	changed := false

	for i := 0; i < len(parts); i++ {
		if parts[i].Exponent == 0 {
			continue
		}
		for j := i + 1; j < len(parts); j++ {
			if parts[j].Exponent == 0 {
				continue
			}
			if parts[i].Exponent*parts[j].Exponent >= 0 {
				continue
			}
			single := units.CompositeUnit{Parts: []units.UnitPower{{Unit: parts[i].Unit, Exponent: 1}}}
			other := units.CompositeUnit{Parts: []units.UnitPower{{Unit: parts[j].Unit, Exponent: 1}}}
			if !single.SameDimension(other) {
				continue
			}
			ei, ej := parts[i].Exponent, parts[j].Exponent
			mag := ei
			if -ej < mag {
				mag = -ej
			}
			if mag < 0 {
				mag = -mag
			}

			// The mag powers of parts[j]'s unit being cancelled are expressed
			// in parts[i]'s unit before folding into the scalar factor.
			var ratio numeric.Number
			var err error
			if ei > 0 {
				ratio, err = numeric.Div(parts[i].Unit.FactorToSI, parts[j].Unit.FactorToSI)
			} else {
				ratio, err = numeric.Div(parts[j].Unit.FactorToSI, parts[i].Unit.FactorToSI)
			}
			if err != nil {
				continue
			}
			factor = numeric.Mul(factor, numeric.Pow(ratio, mag))

			signI := sign64(ei)
			parts[i].Exponent = ei - signI*mag
			parts[j].Exponent = ej + signI*mag
			changed = true
		}
	}

	out := make([]units.UnitPower, 0, len(parts))
	for _, p := range parts {
		if p.Exponent != 0 {
			out = append(out, p)
		}
	}
	return units.CompositeUnit{Parts: out}, factor, changed
}

func sign64(n int64) int64 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// combine renders a CompositeUnit and a residual scalar Term back into one
// expression.
func combine(cu units.CompositeUnit, rest algebra.Term) expr.Expr {
	for _, p := range cu.Parts {
		if p.Exponent > 0 {
			rest.Num = append(rest.Num, unitPow(p))
		} else {
			rest.Den = append(rest.Den, unitPow(units.UnitPower{Unit: p.Unit, Exponent: -p.Exponent}))
		}
	}
	return rest.ToExpr()
}

func unitPow(p units.UnitPower) expr.Expr {
	v := expr.Var{Name: p.Unit.Name}
	if p.Exponent == 1 {
		return v
	}
	return expr.NewCall("^", v, expr.Number{Value: numeric.NewInt(p.Exponent)})
}
