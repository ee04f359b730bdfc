package units

import (
	"sort"

	"fifi-core/algebra"
	"fifi-core/expr"
	"fifi-core/numeric"
)

// UnitPower is one (Unit, exponent) entry of a CompositeUnit.
type UnitPower struct {
	Unit     Unit
	Exponent int64
}

// CompositeUnit is a sorted vector of (Unit, exponent), exponents nonzero,
// names strictly ascending (spec.md §3, §4.7).
type CompositeUnit struct {
	Parts []UnitPower
}

// Normalize drops zero-exponent entries, merges duplicate unit names by
// summing exponents, and re-sorts by name — restoring the CompositeUnit
// invariant after any mutation.
func (c CompositeUnit) Normalize() CompositeUnit {
	byName := map[string]UnitPower{}
	order := []string{}
	for _, p := range c.Parts {
		if existing, ok := byName[p.Unit.Name]; ok {
			existing.Exponent += p.Exponent
			byName[p.Unit.Name] = existing
		} else {
			byName[p.Unit.Name] = p
			order = append(order, p.Unit.Name)
		}
	}
	sort.Strings(order)
	var out []UnitPower
	for _, name := range order {
		p := byName[name]
		if p.Exponent != 0 {
			out = append(out, p)
		}
	}
	return CompositeUnit{Parts: out}
}

// Mul combines exponents of two composite units (addition of exponents),
// then normalizes.
func Mul(a, b CompositeUnit) CompositeUnit {
	parts := append(append([]UnitPower{}, a.Parts...), b.Parts...)
	return CompositeUnit{Parts: parts}.Normalize()
}

// Div combines a / b (subtracting b's exponents), then normalizes.
func Div(a, b CompositeUnit) CompositeUnit {
	parts := append([]UnitPower{}, a.Parts...)
	for _, p := range b.Parts {
		parts = append(parts, UnitPower{Unit: p.Unit, Exponent: -p.Exponent})
	}
	return CompositeUnit{Parts: parts}.Normalize()
}

// Invert negates every exponent.
func (c CompositeUnit) Invert() CompositeUnit {
	parts := make([]UnitPower, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = UnitPower{Unit: p.Unit, Exponent: -p.Exponent}
	}
	return CompositeUnit{Parts: parts}
}

// ToBase multiplies a scalar by factor^exponent for each component,
// producing the value expressed in pure base units.
func (c CompositeUnit) ToBase(scalar numeric.Number) numeric.Number {
	v := scalar
	for _, p := range c.Parts {
		v = numeric.Mul(v, numeric.Pow(p.Unit.FactorToSI, p.Exponent))
	}
	return v
}

// FromBase is ToBase's inverse.
func (c CompositeUnit) FromBase(scalar numeric.Number) numeric.Number {
	return c.Invert().ToBase(scalar)
}

// SameDimension reports whether two composite units describe the same
// physical dimension (so a value tagged with one is convertible to the
// other).
func (c CompositeUnit) SameDimension(other CompositeUnit) bool {
	return c.dimensionVector().Equal(other.dimensionVector())
}

func (c CompositeUnit) dimensionVector() Dimension {
	out := Dimension{}
	for _, p := range c.Parts {
		for dim, exp := range p.Unit.Dim {
			out[dim] += exp * int(p.Exponent)
		}
	}
	return out
}

// Empty reports whether the composite unit has no parts (a dimensionless
// scalar).
func (c CompositeUnit) Empty() bool { return len(c.Parts) == 0 }

// ToExpr renders the composite unit back to an expression, e.g. a
// CompositeUnit with parts km^1, sec^-2 renders as km / sec^2. This is
// ParseCompositeUnit's inverse direction, used by the command layer's
// "extract units" command (spec.md §4.10) to push the unit portion of a
// tagged value back onto the stack as an ordinary expression.
func (c CompositeUnit) ToExpr() expr.Expr {
	var num, den []expr.Expr
	for _, p := range c.Parts {
		factor := expr.Expr(expr.Var{Name: p.Unit.Name})
		exp := p.Exponent
		if exp < 0 {
			exp = -exp
		}
		if exp != 1 {
			factor = expr.NewCall("^", factor, expr.Number{Value: numeric.NewInt(exp)})
		}
		if p.Exponent < 0 {
			den = append(den, factor)
		} else {
			num = append(num, factor)
		}
	}
	return algebra.Term{Num: num, Den: den}.ToExpr()
}
