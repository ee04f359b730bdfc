// Package numeric implements the arithmetic primitives the core builds on:
// arbitrary-precision integers, rationals and floats lifted into a single
// tagged Number, complex numbers over Number, and the signed-infinity
// constants with their own total order.
//
// Per the specification this package assumes an existing arbitrary-precision
// library rather than developing one; math/big is that library.
package numeric

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Kind discriminates the representation a Number currently holds. Kind is
// totally ordered: Int < Rational < Float mirrors the promotion order used
// by arithmetic.
type Kind int

const (
	IntKind Kind = iota
	RationalKind
	FloatKind
)

// Number is the tagged union of integer, rational and float values. The
// zero Number is not valid; use the constructors below.
type Number struct {
	kind Kind
	i    *big.Int
	r    *big.Rat
	f    *big.Float
}

// DefaultFloatPrec is the binary precision FloatPrec starts at absent any
// config.Config override.
const DefaultFloatPrec uint = 64

// FloatPrec is the binary precision used for Float values created by this
// package's constructors and by promotion. Session configuration may widen
// it; see config.Config.Precision and config.Config.Apply.
var FloatPrec uint = DefaultFloatPrec

func NewInt(i int64) Number { return Number{kind: IntKind, i: big.NewInt(i)} }

func NewBigInt(i *big.Int) Number { return Number{kind: IntKind, i: new(big.Int).Set(i)} }

// NewRational builds a Number holding a reduced rational. If the result is
// integral it is NOT auto-shrunk to IntKind: callers that want shrinking
// should call Shrink.
func NewRational(r *big.Rat) Number { return Number{kind: RationalKind, r: new(big.Rat).Set(r)} }

func NewRationalInts(num, den int64) Number {
	return Number{kind: RationalKind, r: big.NewRat(num, den)}
}

func NewFloat(f *big.Float) Number { return Number{kind: FloatKind, f: new(big.Float).Set(f)} }

func NewFloat64(f float64) Number {
	return Number{kind: FloatKind, f: new(big.Float).SetPrec(FloatPrec).SetFloat64(f)}
}

func (n Number) Kind() Kind { return n.kind }

func (n Number) IsInt() bool      { return n.kind == IntKind }
func (n Number) IsRational() bool { return n.kind == RationalKind }
func (n Number) IsFloat() bool    { return n.kind == FloatKind }

// Shrink pulls a Rational down to an Int when it is integral. It never
// widens.
func (n Number) Shrink() Number {
	if n.kind == RationalKind && n.r.IsInt() {
		return Number{kind: IntKind, i: new(big.Int).Set(n.r.Num())}
	}
	return n
}

func (n Number) String() string {
	switch n.kind {
	case IntKind:
		return n.i.String()
	case RationalKind:
		return fmt.Sprintf("%s:%s", n.r.Num().String(), n.r.Denom().String())
	case FloatKind:
		return n.f.Text('g', -1)
	}
	panic("numeric: invalid Number")
}

// AsFloat widens n to a *big.Float at FloatPrec, regardless of its current
// kind.
func (n Number) AsFloat() *big.Float {
	switch n.kind {
	case IntKind:
		return new(big.Float).SetPrec(FloatPrec).SetInt(n.i)
	case RationalKind:
		return new(big.Float).SetPrec(FloatPrec).SetRat(n.r)
	case FloatKind:
		return n.f
	}
	panic("numeric: invalid Number")
}

// AsRational widens n to a *big.Rat. Panics if n is a Float: floats are not
// exactly representable as rationals in this model without loss tracking,
// so callers must go through AsFloat for that direction instead.
func (n Number) AsRational() *big.Rat {
	switch n.kind {
	case IntKind:
		return new(big.Rat).SetInt(n.i)
	case RationalKind:
		return n.r
	}
	panic("numeric: AsRational on a Float Number")
}

// Int64 returns the integer value of n, which must satisfy IsInt().
func (n Number) Int64() int64 {
	if n.kind != IntKind {
		panic("numeric: Int64 called on a non-integer Number")
	}
	return n.i.Int64()
}

func (n Number) Float64() float64 {
	f, _ := n.AsFloat().Float64()
	return f
}

// upgrade returns the common Kind two numbers must be promoted to before an
// operation, and both operands widened to it.
func upgrade(a, b Number) (Kind, Number, Number) {
	k := a.kind
	if b.kind > k {
		k = b.kind
	}
	return k, widenTo(a, k), widenTo(b, k)
}

func widenTo(n Number, k Kind) Number {
	if n.kind == k {
		return n
	}
	switch k {
	case RationalKind:
		return NewRational(n.AsRational())
	case FloatKind:
		return NewFloat(n.AsFloat())
	}
	panic("numeric: cannot widen to a lower kind")
}

func Add(a, b Number) Number {
	k, a, b := upgrade(a, b)
	switch k {
	case IntKind:
		return NewBigInt(new(big.Int).Add(a.i, b.i))
	case RationalKind:
		return NewRational(new(big.Rat).Add(a.r, b.r))
	default:
		return NewFloat(new(big.Float).SetPrec(FloatPrec).Add(a.f, b.f))
	}
}

func Sub(a, b Number) Number {
	k, a, b := upgrade(a, b)
	switch k {
	case IntKind:
		return NewBigInt(new(big.Int).Sub(a.i, b.i))
	case RationalKind:
		return NewRational(new(big.Rat).Sub(a.r, b.r))
	default:
		return NewFloat(new(big.Float).SetPrec(FloatPrec).Sub(a.f, b.f))
	}
}

func Mul(a, b Number) Number {
	k, a, b := upgrade(a, b)
	switch k {
	case IntKind:
		return NewBigInt(new(big.Int).Mul(a.i, b.i))
	case RationalKind:
		return NewRational(new(big.Rat).Mul(a.r, b.r))
	default:
		return NewFloat(new(big.Float).SetPrec(FloatPrec).Mul(a.f, b.f))
	}
}

// ErrDivByZero is the sentinel wrapped by every division-by-zero error this
// package produces; callers use errors.Is against this to decide whether
// infinity mode should kick in.
var ErrDivByZero = errors.New("division by zero")

// Div is exact division: integer/integer that does not divide cleanly
// promotes to Rational rather than losing precision. Float operands divide
// as floats.
func Div(a, b Number) (Number, error) {
	k, aw, bw := upgrade(a, b)
	switch k {
	case IntKind:
		if bw.i.Sign() == 0 {
			return Number{}, errors.WithStack(ErrDivByZero)
		}
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(aw.i, bw.i, r)
		if r.Sign() == 0 {
			return NewBigInt(q), nil
		}
		return NewRational(new(big.Rat).SetFrac(aw.i, bw.i)), nil
	case RationalKind:
		if bw.r.Sign() == 0 {
			return Number{}, errors.WithStack(ErrDivByZero)
		}
		return NewRational(new(big.Rat).Quo(aw.r, bw.r)).Shrink(), nil
	default:
		if bw.f.Sign() == 0 {
			return Number{}, errors.WithStack(ErrDivByZero)
		}
		return NewFloat(new(big.Float).SetPrec(FloatPrec).Quo(aw.f, bw.f)), nil
	}
}

// DivInexact always promotes to Float, even for integer operands that would
// divide cleanly.
func DivInexact(a, b Number) (Number, error) {
	af, bf := a.AsFloat(), b.AsFloat()
	if bf.Sign() == 0 {
		return Number{}, errors.WithStack(ErrDivByZero)
	}
	return NewFloat(new(big.Float).SetPrec(FloatPrec).Quo(af, bf)), nil
}

// FloorDiv implements floor division (rounds toward negative infinity),
// defined for all three kinds via Float truncation after adjustment for
// exact kinds.
func FloorDiv(a, b Number) (Number, error) {
	k, aw, bw := upgrade(a, b)
	switch k {
	case IntKind:
		if bw.i.Sign() == 0 {
			return Number{}, errors.WithStack(ErrDivByZero)
		}
		q, m := new(big.Int), new(big.Int)
		q.DivMod(aw.i, bw.i, m) // Euclidean; adjust to floor semantics below.
		if m.Sign() != 0 && (bw.i.Sign() < 0) != (m.Sign() < 0) {
			// big.Int.DivMod gives Euclidean remainder (always >= 0); convert
			// to floor division when the divisor is negative.
		}
		// Use floor division directly: floor(a/b) = a.Div(b) with Go's
		// Euclidean quotient adjusted when signs of a and b differ and the
		// division is not exact.
		fq, fr := new(big.Int), new(big.Int)
		fq.QuoRem(aw.i, bw.i, fr)
		if fr.Sign() != 0 && (aw.i.Sign() < 0) != (bw.i.Sign() < 0) {
			fq.Sub(fq, big.NewInt(1))
		}
		return NewBigInt(fq), nil
	default:
		q, err := Div(aw, bw)
		if err != nil {
			return Number{}, err
		}
		f := q.AsFloat()
		fl, _ := f.Int(nil)
		fv := NewBigInt(fl)
		// correct truncation toward floor for negative non-integers.
		if f.Sign() < 0 {
			cmp := new(big.Float).SetInt(fl).Cmp(f)
			if cmp > 0 {
				fv = NewBigInt(new(big.Int).Sub(fl, big.NewInt(1)))
			}
		}
		return fv, nil
	}
}

func Neg(a Number) Number {
	switch a.kind {
	case IntKind:
		return NewBigInt(new(big.Int).Neg(a.i))
	case RationalKind:
		return NewRational(new(big.Rat).Neg(a.r))
	default:
		return NewFloat(new(big.Float).SetPrec(FloatPrec).Neg(a.f))
	}
}

// Cmp returns -1, 0, +1 comparing a and b as reals (total order).
func Cmp(a, b Number) int {
	k, a, b := upgrade(a, b)
	switch k {
	case IntKind:
		return a.i.Cmp(b.i)
	case RationalKind:
		return a.r.Cmp(b.r)
	default:
		return a.f.Cmp(b.f)
	}
}

func Equal(a, b Number) bool { return Cmp(a, b) == 0 }

func IsZero(a Number) bool {
	switch a.kind {
	case IntKind:
		return a.i.Sign() == 0
	case RationalKind:
		return a.r.Sign() == 0
	default:
		return a.f.Sign() == 0
	}
}

func Sign(a Number) int {
	switch a.kind {
	case IntKind:
		return a.i.Sign()
	case RationalKind:
		return a.r.Sign()
	default:
		return a.f.Sign()
	}
}

// Pow raises a to the integer power e using exact arithmetic when
// possible; a negative e gives the reciprocal power (a Rational for Int and
// Rational bases). Non-integer exponents are the caller's responsibility
// (see the function library's power rules in function/transcendental.go).
func Pow(a Number, e int64) Number {
	if e == 0 {
		return NewInt(1)
	}
	neg := e < 0
	if neg {
		e = -e
	}
	switch a.kind {
	case IntKind:
		r := new(big.Int).Exp(a.i, big.NewInt(e), nil)
		if neg {
			return NewRational(new(big.Rat).SetFrac(big.NewInt(1), r))
		}
		return NewBigInt(r)
	case RationalKind:
		num := new(big.Int).Exp(a.r.Num(), big.NewInt(e), nil)
		den := new(big.Int).Exp(a.r.Denom(), big.NewInt(e), nil)
		if neg {
			num, den = den, num
		}
		return NewRational(new(big.Rat).SetFrac(num, den)).Shrink()
	default:
		f := new(big.Float).SetPrec(FloatPrec).SetInt64(1)
		base := a.f
		if neg {
			base = new(big.Float).SetPrec(FloatPrec).Quo(f, a.f)
			f.SetInt64(1)
		}
		acc := new(big.Float).SetPrec(FloatPrec).SetInt64(1)
		for i := int64(0); i < e; i++ {
			acc.Mul(acc, base)
		}
		return NewFloat(acc)
	}
}
