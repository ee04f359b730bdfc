package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/numeric"
	"fifi-core/units"
)

func km() units.Unit {
	return units.Unit{Name: "km", Dim: units.Dimension{units.Length: 1}, FactorToSI: numeric.NewInt(1000)}
}

func sec() units.Unit {
	return units.Unit{Name: "s", Dim: units.Dimension{units.Time: 1}, FactorToSI: numeric.NewInt(1)}
}

// TestCompositeUnitToBaseFromBaseRoundTrip exercises spec.md §8's mandated
// property directly: to_base(from_base(x)) == x for a composite unit with
// more than one component exponent (km/s^2), matching the acceleration
// example worked through in original_source's units tests.
func TestCompositeUnitToBaseFromBaseRoundTrip(t *testing.T) {
	c := units.CompositeUnit{Parts: []units.UnitPower{
		{Unit: km(), Exponent: 1},
		{Unit: sec(), Exponent: -2},
	}}
	x := numeric.NewRationalInts(7, 3)
	roundTripped := c.ToBase(c.FromBase(x))
	assert.True(t, numeric.Equal(x, roundTripped))

	other := numeric.NewInt(42)
	assert.True(t, numeric.Equal(other, c.FromBase(c.ToBase(other))))
}

func TestNormalizeMergesAndDropsZeroExponents(t *testing.T) {
	c := units.CompositeUnit{Parts: []units.UnitPower{
		{Unit: km(), Exponent: 1},
		{Unit: km(), Exponent: -1},
		{Unit: sec(), Exponent: 2},
	}}
	norm := c.Normalize()
	require.Len(t, norm.Parts, 1)
	assert.Equal(t, "s", norm.Parts[0].Unit.Name)
	assert.Equal(t, int64(2), norm.Parts[0].Exponent)
}

func TestMulAddsExponents(t *testing.T) {
	a := units.CompositeUnit{Parts: []units.UnitPower{{Unit: km(), Exponent: 1}}}
	b := units.CompositeUnit{Parts: []units.UnitPower{{Unit: km(), Exponent: 2}}}
	result := units.Mul(a, b)
	require.Len(t, result.Parts, 1)
	assert.Equal(t, int64(3), result.Parts[0].Exponent)
}

func TestDivSubtractsExponents(t *testing.T) {
	a := units.CompositeUnit{Parts: []units.UnitPower{{Unit: km(), Exponent: 1}, {Unit: sec(), Exponent: 1}}}
	b := units.CompositeUnit{Parts: []units.UnitPower{{Unit: sec(), Exponent: 1}}}
	result := units.Div(a, b)
	require.Len(t, result.Parts, 1)
	assert.Equal(t, "km", result.Parts[0].Unit.Name)
}

func TestInvertNegatesExponents(t *testing.T) {
	c := units.CompositeUnit{Parts: []units.UnitPower{{Unit: km(), Exponent: 2}}}
	inv := c.Invert()
	assert.Equal(t, int64(-2), inv.Parts[0].Exponent)
}

func TestSameDimensionIgnoresScaleAndName(t *testing.T) {
	miles := units.CompositeUnit{Parts: []units.UnitPower{{Unit: units.Unit{Name: "mi", Dim: units.Dimension{units.Length: 1}, FactorToSI: numeric.NewInt(1609)}, Exponent: 1}}}
	kms := units.CompositeUnit{Parts: []units.UnitPower{{Unit: km(), Exponent: 1}}}
	assert.True(t, miles.SameDimension(kms))

	seconds := units.CompositeUnit{Parts: []units.UnitPower{{Unit: sec(), Exponent: 1}}}
	assert.False(t, miles.SameDimension(seconds))
}

func TestEmptyReportsDimensionlessScalar(t *testing.T) {
	assert.True(t, units.CompositeUnit{}.Empty())
	assert.False(t, units.CompositeUnit{Parts: []units.UnitPower{{Unit: km(), Exponent: 1}}}.Empty())
}

func TestToExprRendersNumeratorAndDenominator(t *testing.T) {
	c := units.CompositeUnit{Parts: []units.UnitPower{
		{Unit: km(), Exponent: 1},
		{Unit: sec(), Exponent: -2},
	}}
	rendered := c.ToExpr()
	assert.Contains(t, rendered.String(), "km")
	assert.Contains(t, rendered.String(), "s")
}
