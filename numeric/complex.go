package numeric

import "fmt"

// Complex is a pair (re, im) of Number. Equality and arithmetic are
// componentwise except division, which rationalizes the denominator.
type Complex struct {
	Re, Im Number
}

func NewComplex(re, im Number) Complex { return Complex{Re: re, Im: im} }

func (c Complex) String() string {
	return fmt.Sprintf("(%s, %s)", c.Re, c.Im)
}

func (c Complex) IsReal() bool { return IsZero(c.Im) }

func ComplexAdd(a, b Complex) Complex {
	return Complex{Add(a.Re, b.Re), Add(a.Im, b.Im)}
}

func ComplexSub(a, b Complex) Complex {
	return Complex{Sub(a.Re, b.Re), Sub(a.Im, b.Im)}
}

func ComplexMul(a, b Complex) Complex {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	re := Sub(Mul(a.Re, b.Re), Mul(a.Im, b.Im))
	im := Add(Mul(a.Re, b.Im), Mul(a.Im, b.Re))
	return Complex{re, im}
}

func ComplexNeg(a Complex) Complex { return Complex{Neg(a.Re), Neg(a.Im)} }

func ComplexConj(a Complex) Complex { return Complex{a.Re, Neg(a.Im)} }

// ComplexDiv rationalizes the denominator: a/b = a * conj(b) / |b|^2.
func ComplexDiv(a, b Complex) (Complex, error) {
	denom := Add(Mul(b.Re, b.Re), Mul(b.Im, b.Im))
	if IsZero(denom) {
		return Complex{}, ErrDivByZero
	}
	num := ComplexMul(a, ComplexConj(b))
	re, err := Div(num.Re, denom)
	if err != nil {
		return Complex{}, err
	}
	im, err := Div(num.Im, denom)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re, im}, nil
}

func ComplexEqual(a, b Complex) bool { return Equal(a.Re, b.Re) && Equal(a.Im, b.Im) }

// AbsSquared returns re^2 + im^2, useful for magnitude comparisons without a
// square root (used by root finding's convergence test |f(x)|^2 < eps^2).
func (c Complex) AbsSquared() Number {
	return Add(Mul(c.Re, c.Re), Mul(c.Im, c.Im))
}
