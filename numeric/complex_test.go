package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/numeric"
)

func c(re, im int64) numeric.Complex {
	return numeric.Complex{Re: numeric.NewInt(re), Im: numeric.NewInt(im)}
}

func TestComplexArithmetic(t *testing.T) {
	a, b := c(1, 2), c(3, -1)
	assert.True(t, numeric.ComplexEqual(c(4, 1), numeric.ComplexAdd(a, b)))
	assert.True(t, numeric.ComplexEqual(c(-2, 3), numeric.ComplexSub(a, b)))
	// (1+2i)(3-1i) = (3+2) + (-1+6)i = 5 + 5i
	assert.True(t, numeric.ComplexEqual(c(5, 5), numeric.ComplexMul(a, b)))
}

func TestComplexDivRationalizesDenominator(t *testing.T) {
	// (1+2i) / (3-1i) = (1+2i)(3+1i) / 10 = (3-2 + (1+6)i)/10 = (1+7i)/10
	q, err := numeric.ComplexDiv(c(1, 2), c(3, -1))
	require.NoError(t, err)
	assert.True(t, numeric.Equal(numeric.NewRationalInts(1, 10), q.Re))
	assert.True(t, numeric.Equal(numeric.NewRationalInts(7, 10), q.Im))
}

func TestComplexDivByZeroErrors(t *testing.T) {
	_, err := numeric.ComplexDiv(c(1, 1), c(0, 0))
	assert.ErrorIs(t, err, numeric.ErrDivByZero)
}

func TestComplexNegAndConj(t *testing.T) {
	a := c(3, -4)
	assert.True(t, numeric.ComplexEqual(c(-3, 4), numeric.ComplexNeg(a)))
	assert.True(t, numeric.ComplexEqual(c(3, 4), numeric.ComplexConj(a)))
}

func TestComplexIsReal(t *testing.T) {
	assert.True(t, c(5, 0).IsReal())
	assert.False(t, c(5, 1).IsReal())
}

func TestComplexAbsSquared(t *testing.T) {
	a := c(3, 4)
	assert.True(t, numeric.Equal(numeric.NewInt(25), a.AbsSquared()))
}
