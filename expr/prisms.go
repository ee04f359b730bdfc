package expr

import (
	"fifi-core/numeric"
	"fifi-core/prism"
)

// ToNumber narrows an Expr to its wrapped numeric.Number. This is the
// "expr_to_number" prism referenced by spec.md §4.4 as the building block
// for type matchers like "both arguments are real numbers."
var ToNumber = prism.New(
	func(e Expr) (numeric.Number, bool) {
		n, ok := e.(Number)
		if !ok {
			return numeric.Number{}, false
		}
		return n.Value, true
	},
	func(n numeric.Number) Expr { return Number{Value: n} },
)

// ToComplex narrows an Expr to numeric.Complex. Real Number atoms also
// narrow here (lifted with a zero imaginary part) since "any complex
// nonzero" cases in the function library need to accept real literals too.
var ToComplex = prism.New(
	func(e Expr) (numeric.Complex, bool) {
		switch v := e.(type) {
		case ComplexLit:
			return v.Value, true
		case Number:
			return numeric.Complex{Re: v.Value, Im: numeric.NewInt(0)}, true
		default:
			return numeric.Complex{}, false
		}
	},
	func(c numeric.Complex) Expr {
		if numeric.IsZero(c.Im) {
			return Number{Value: c.Re}
		}
		return ComplexLit{Value: c}
	},
)

// ToInfinite narrows an Expr to its wrapped numeric.Infinite.
var ToInfinite = prism.New(
	func(e Expr) (numeric.Infinite, bool) {
		i, ok := e.(InfiniteLit)
		return i.Value, ok
	},
	func(i numeric.Infinite) Expr { return InfiniteLit{Value: i} },
)

// ToVar narrows an Expr to its Var name.
var ToVar = prism.New(
	func(e Expr) (string, bool) {
		v, ok := e.(Var)
		return v.Name, ok
	},
	func(name string) Expr { return Var{Name: name} },
)

// ToStr narrows an Expr to its string atom value.
var ToStr = prism.New(
	func(e Expr) (string, bool) {
		s, ok := e.(Str)
		return s.Value, ok
	},
	func(s string) Expr { return Str{Value: s} },
)

// CallOf builds a prism recognizing Call nodes with the given head name,
// narrowing to the argument slice.
func CallOf(name string) prism.Prism[Expr, []Expr] {
	return prism.New(
		func(e Expr) ([]Expr, bool) {
			c, ok := e.(Call)
			if !ok || c.Name != name {
				return nil, false
			}
			return c.Args, true
		},
		func(args []Expr) Expr { return Call{Name: name, Args: args} },
	)
}

// AnyCall narrows any Call node to its (name, args) pair.
var AnyCall = prism.New(
	func(e Expr) (Call, bool) {
		c, ok := e.(Call)
		return c, ok
	},
	func(c Call) Expr { return c },
)

// UnboundedNumber is either a finite numeric.Number or a signed/unsigned
// infinite constant, the argument type <, <=, >, >= match against so
// ordering naturally extends across the affine line (spec.md §4.4's "a
// total order on the signed pair extended to real numbers").
type UnboundedNumber struct {
	Finite     numeric.Number
	Infinite   numeric.Infinite
	IsInfinite bool
}

// ToUnboundedNumber narrows a Number or InfiniteLit atom to UnboundedNumber.
var ToUnboundedNumber = prism.New(
	func(e Expr) (UnboundedNumber, bool) {
		switch v := e.(type) {
		case Number:
			return UnboundedNumber{Finite: v.Value}, true
		case InfiniteLit:
			return UnboundedNumber{Infinite: v.Value, IsInfinite: true}, true
		default:
			return UnboundedNumber{}, false
		}
	},
	func(u UnboundedNumber) Expr {
		if u.IsInfinite {
			return InfiniteLit{Value: u.Infinite}
		}
		return Number{Value: u.Finite}
	},
)

// CompareUnbounded orders two UnboundedNumber values: -inf < every finite
// real < +inf, with uinf and nan (which carry no direction) placed after
// +inf, consistent with numeric.InfiniteCmp's own ranking.
func CompareUnbounded(a, b UnboundedNumber) int {
	switch {
	case a.IsInfinite && b.IsInfinite:
		return numeric.InfiniteCmp(a.Infinite, b.Infinite)
	case a.IsInfinite:
		return infiniteRank(a.Infinite)
	case b.IsInfinite:
		return -infiniteRank(b.Infinite)
	default:
		return numeric.Cmp(a.Finite, b.Finite)
	}
}

// infiniteRank reports whether an infinite constant sits below (-1) or
// above (+1) every finite real: only NegInf sits below; PosInf, uinf and
// nan all sit above, matching numeric.Infinite's own ord() ranking.
func infiniteRank(i numeric.Infinite) int {
	if i.Kind == numeric.NegInf {
		return -1
	}
	return 1
}

// PositiveNumber narrows to a numeric.Number known to be > 0.
var PositiveNumber = prism.New(
	func(e Expr) (numeric.Number, bool) {
		n, ok := e.(Number)
		if !ok || numeric.Sign(n.Value) <= 0 {
			return numeric.Number{}, false
		}
		return n.Value, true
	},
	func(n numeric.Number) Expr { return Number{Value: n} },
)
