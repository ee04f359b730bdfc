package units

import "fifi-core/numeric"

// standardUnits is the table a TableParser consults directly; a
// PrefixParser wrapping one tries it first and strips SI prefixes only when
// the bare name is not found.
var standardUnits = buildStandardUnits()

func buildStandardUnits() map[string]Unit {
	rat := func(num, den int64) numeric.Number { return numeric.NewRationalInts(num, den) }
	m := map[string]Unit{
		"m":   baseUnit("m", Length),
		"s":   baseUnit("s", Time),
		"g":   baseUnit("g", Mass),
		"A":   baseUnit("A", Current),
		"mol": baseUnit("mol", Amount),
		"cd":  baseUnit("cd", Luminosity),
		"rad": baseUnit("rad", Angle),
		"K":   baseUnit("K", Temperature),

		"km": scaledUnit("km", Length, numeric.NewInt(1000)),
		"cm": scaledUnit("cm", Length, rat(1, 100)),
		"mm": scaledUnit("mm", Length, rat(1, 1000)),
		"mi": scaledUnit("mi", Length, numeric.NewRationalInts(1609344, 1000)),
		"ft": scaledUnit("ft", Length, numeric.NewRationalInts(3048, 10000)),
		"in": scaledUnit("in", Length, numeric.NewRationalInts(254, 10000)),
		"yd": scaledUnit("yd", Length, numeric.NewRationalInts(9144, 10000)),

		"min": scaledUnit("min", Time, numeric.NewInt(60)),
		"hr":  scaledUnit("hr", Time, numeric.NewInt(3600)),
		"day": scaledUnit("day", Time, numeric.NewInt(86400)),

		"kg": scaledUnit("kg", Mass, numeric.NewInt(1000)),
		"lb": scaledUnit("lb", Mass, numeric.NewRationalInts(45359237, 100000)),

		"degC": offsetUnit("degC", Temperature, numeric.NewInt(1), numeric.NewRationalInts(27315, 100)),
		"degF": offsetUnit("degF", Temperature, rat(5, 9), numeric.NewRationalInts(45967, 180)),
	}
	return m
}

// BaseUnitOf returns the canonical base unit for a dimension, used by
// UnitParser.BaseUnit and by temperature conversion defaults.
func BaseUnitOf(dim BaseDimension) Unit {
	switch dim {
	case Length:
		return standardUnits["m"]
	case Time:
		return standardUnits["s"]
	case Mass:
		return standardUnits["g"]
	case Current:
		return standardUnits["A"]
	case Amount:
		return standardUnits["mol"]
	case Luminosity:
		return standardUnits["cd"]
	case Angle:
		return standardUnits["rad"]
	case Temperature:
		return standardUnits["K"]
	}
	panic("units: unknown base dimension")
}
