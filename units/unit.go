// Package units implements the unit-of-measure algebra: base dimensions,
// composite units, tagged scalars and a parser with SI prefixes (spec.md
// §4.7). The compatible-unit simplifier built on them is in package
// simplifier.
package units

import (
	"fifi-core/numeric"
)

// BaseDimension names one of the fundamental physical dimensions a Unit can
// be defined over.
type BaseDimension string

const (
	Length      BaseDimension = "length"
	Mass        BaseDimension = "mass"
	Time        BaseDimension = "time"
	Temperature BaseDimension = "temperature"
	Current     BaseDimension = "current"
	Amount      BaseDimension = "amount"
	Luminosity  BaseDimension = "luminosity"
	Angle       BaseDimension = "angle"
)

// Dimension is a composed dimension: an exponent vector over BaseDimension,
// e.g. {length: 1, time: -1} for a velocity unit. A plain base unit has a
// single entry with exponent 1.
type Dimension map[BaseDimension]int

// Equal compares two dimension vectors, ignoring zero-exponent entries.
func (d Dimension) Equal(other Dimension) bool {
	for k, v := range d {
		if v != 0 && other[k] != v {
			return false
		}
	}
	for k, v := range other {
		if v != 0 && d[k] != v {
			return false
		}
	}
	return true
}

// Unit is {name, dimension, factor-to-base, optional temperature offset}.
type Unit struct {
	Name        string
	Dim         Dimension
	FactorToSI  numeric.Number // multiply a value in this unit by FactorToSI to get the base-unit value
	TempOffset  *numeric.Number
}

// ToBase converts a scalar value expressed in u to the base unit of u's
// dimension.
func (u Unit) ToBase(value numeric.Number) numeric.Number {
	v := numeric.Mul(value, u.FactorToSI)
	if u.TempOffset != nil {
		v = numeric.Add(v, *u.TempOffset)
	}
	return v
}

// FromBase converts a scalar value expressed in the base unit back to u.
func (u Unit) FromBase(value numeric.Number) numeric.Number {
	v := value
	if u.TempOffset != nil {
		v = numeric.Sub(v, *u.TempOffset)
	}
	q, err := numeric.Div(v, u.FactorToSI)
	if err != nil {
		// FactorToSI is never zero for a well-formed Unit.
		panic("units: zero conversion factor")
	}
	return q
}

func baseUnit(name string, dim BaseDimension) Unit {
	return Unit{Name: name, Dim: Dimension{dim: 1}, FactorToSI: numeric.NewInt(1)}
}

func scaledUnit(name string, dim BaseDimension, factor numeric.Number) Unit {
	return Unit{Name: name, Dim: Dimension{dim: 1}, FactorToSI: factor}
}

func offsetUnit(name string, dim BaseDimension, factor, offset numeric.Number) Unit {
	return Unit{Name: name, Dim: Dimension{dim: 1}, FactorToSI: factor, TempOffset: &offset}
}
