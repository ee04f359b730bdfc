package units

import (
	"strings"

	"fifi-core/numeric"
)

// UnitParser is the two-method contract spec.md §4.7 defines: parse a
// bare unit name, and produce the canonical base unit of a dimension.
type UnitParser interface {
	ParseUnit(name string) (Unit, bool)
	BaseUnit(dim BaseDimension) Unit
}

// TableParser looks names up directly in a hash map with no prefix
// decoration.
type TableParser struct {
	table map[string]Unit
}

func NewTableParser() *TableParser {
	return &TableParser{table: standardUnits}
}

func (p *TableParser) ParseUnit(name string) (Unit, bool) {
	u, ok := p.table[name]
	return u, ok
}

func (p *TableParser) BaseUnit(dim BaseDimension) Unit { return BaseUnitOf(dim) }

// siPrefix pairs a prefix symbol with the power-of-ten exponent it scales
// by.
type siPrefix struct {
	symbol string
	exp    int64
}

// siPrefixes lists "da" before "d" so "da" is tried first.
var siPrefixes = []siPrefix{
	{"Q", 30}, {"R", 27}, {"Y", 24}, {"Z", 21}, {"E", 18}, {"P", 15}, {"T", 12},
	{"G", 9}, {"M", 6}, {"da", 1}, {"h", 2}, {"k", 3},
	{"d", -1}, {"c", -2}, {"m", -3}, {"u", -6}, {"μ", -6}, {"n", -9}, {"p", -12},
	{"f", -15}, {"a", -18}, {"z", -21}, {"y", -24}, {"r", -27}, {"q", -30},
}

// PrefixParser decorates another UnitParser with SI-prefix decomposition:
// if the bare name is not recognized, it tries stripping a recognized SI
// prefix and re-parsing the remainder, favoring the unprefixed
// interpretation when both are valid (spec.md §4.7, §9's DivisiveRuleset
// ambiguity note — the same "prefer unprefixed" rule applies here).
type PrefixParser struct {
	inner UnitParser
}

func NewPrefixParser(inner UnitParser) *PrefixParser {
	return &PrefixParser{inner: inner}
}

func (p *PrefixParser) ParseUnit(name string) (Unit, bool) {
	if u, ok := p.inner.ParseUnit(name); ok {
		return u, true
	}
	for _, pre := range siPrefixes {
		if !strings.HasPrefix(name, pre.symbol) {
			continue
		}
		rest := name[len(pre.symbol):]
		if rest == "" {
			continue
		}
		if base, ok := p.inner.ParseUnit(rest); ok {
			factor := pow10(pre.exp)
			return Unit{
				Name:       name,
				Dim:        base.Dim,
				FactorToSI: numeric.Mul(factor, base.FactorToSI),
				TempOffset: base.TempOffset,
			}, true
		}
	}
	return Unit{}, false
}

func (p *PrefixParser) BaseUnit(dim BaseDimension) Unit { return p.inner.BaseUnit(dim) }

func pow10(exp int64) numeric.Number {
	if exp >= 0 {
		return numeric.Pow(numeric.NewInt(10), exp)
	}
	return numeric.Pow(numeric.NewRationalInts(1, 10), -exp)
}
