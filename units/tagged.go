package units

import "fifi-core/numeric"

// Tagged pairs a scalar value with the CompositeUnit it's measured in.
type Tagged struct {
	Value numeric.Number
	Unit  CompositeUnit
}

// ConvertTo converts a Tagged value to an equivalent value expressed in
// target, reporting false if the dimensions differ.
func ConvertTo(t Tagged, target CompositeUnit) (Tagged, bool) {
	if !t.Unit.SameDimension(target) {
		return Tagged{}, false
	}
	base := t.Unit.ToBase(t.Value)
	return Tagged{Value: target.FromBase(base), Unit: target}, true
}

// TemperatureTagged restricts Tagged to a single non-power temperature
// unit, so the additive offset (Celsius/Fahrenheit) can be applied
// unambiguously.
type TemperatureTagged struct {
	Value numeric.Number
	Unit  Unit
}

// AsTemperatureTagged narrows a Tagged down to TemperatureTagged when it
// wraps exactly one temperature unit at power 1.
func AsTemperatureTagged(t Tagged) (TemperatureTagged, bool) {
	if len(t.Unit.Parts) != 1 {
		return TemperatureTagged{}, false
	}
	p := t.Unit.Parts[0]
	if p.Exponent != 1 || p.Unit.Dim[Temperature] != 1 {
		return TemperatureTagged{}, false
	}
	return TemperatureTagged{Value: t.Value, Unit: p.Unit}, true
}

// ConvertTemperature applies the additive offset on ToBase and removes it
// on FromBase, per spec.md §4.7.
func ConvertTemperature(t TemperatureTagged, target Unit) (TemperatureTagged, bool) {
	if target.Dim[Temperature] != 1 {
		return TemperatureTagged{}, false
	}
	base := t.Unit.ToBase(t.Value)
	return TemperatureTagged{Value: target.FromBase(base), Unit: target}, true
}
