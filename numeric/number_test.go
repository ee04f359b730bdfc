package numeric_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/numeric"
)

// TestPromotionLadder exercises the Int < Rational < Float ladder: mixing
// two kinds promotes to the wider one, and the result reports that Kind.
func TestPromotionLadder(t *testing.T) {
	i := numeric.NewInt(2)
	r := numeric.NewRationalInts(1, 2)
	f := numeric.NewFloat64(0.5)

	sumIR := numeric.Add(i, r)
	assert.Equal(t, numeric.RationalKind, sumIR.Kind())

	sumIF := numeric.Add(i, f)
	assert.Equal(t, numeric.FloatKind, sumIF.Kind())

	sumRF := numeric.Add(r, f)
	assert.Equal(t, numeric.FloatKind, sumRF.Kind())

	// Same-kind operations never promote.
	assert.Equal(t, numeric.IntKind, numeric.Add(i, numeric.NewInt(3)).Kind())
}

func TestDivPromotesIntToRationalOnInexactQuotient(t *testing.T) {
	q, err := numeric.Div(numeric.NewInt(1), numeric.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, numeric.RationalKind, q.Kind())

	q, err = numeric.Div(numeric.NewInt(6), numeric.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, numeric.IntKind, q.Kind())
}

func TestDivByZeroIsErrDivByZero(t *testing.T) {
	_, err := numeric.Div(numeric.NewInt(1), numeric.NewInt(0))
	assert.ErrorIs(t, err, numeric.ErrDivByZero)
}

func TestShrinkPullsIntegralRationalDownToInt(t *testing.T) {
	r := numeric.NewRationalInts(4, 2)
	shrunk := r.Shrink()
	assert.Equal(t, numeric.IntKind, shrunk.Kind())
	assert.Equal(t, int64(2), shrunk.Int64())

	nonIntegral := numeric.NewRationalInts(1, 2)
	assert.Equal(t, numeric.RationalKind, nonIntegral.Shrink().Kind())
}

func TestFloorDivRoundsTowardNegativeInfinity(t *testing.T) {
	q, err := numeric.FloorDiv(numeric.NewInt(-7), numeric.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(-4), q.Int64())

	q, err = numeric.FloorDiv(numeric.NewInt(7), numeric.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), q.Int64())
}

func TestCmpOrdersAcrossKinds(t *testing.T) {
	half := numeric.NewRationalInts(1, 2)
	third := numeric.NewFloat64(1.0 / 3.0)
	assert.Equal(t, 1, numeric.Cmp(half, third))
	assert.Equal(t, -1, numeric.Cmp(third, half))
	assert.True(t, numeric.Equal(numeric.NewInt(2), numeric.NewRationalInts(4, 2)))
}

func TestSignAndIsZero(t *testing.T) {
	assert.Equal(t, 0, numeric.Sign(numeric.NewInt(0)))
	assert.True(t, numeric.IsZero(numeric.NewInt(0)))
	assert.Equal(t, 1, numeric.Sign(numeric.NewInt(5)))
	assert.Equal(t, -1, numeric.Sign(numeric.NewRationalInts(-1, 2)))
}

func TestPowHandlesNegativeExponentViaRational(t *testing.T) {
	r := numeric.Pow(numeric.NewInt(2), -2)
	assert.Equal(t, numeric.RationalKind, r.Kind())
	assert.True(t, numeric.Equal(numeric.NewRationalInts(1, 4), r))
}

func TestNewBigIntCopiesInput(t *testing.T) {
	src := big.NewInt(9)
	n := numeric.NewBigInt(src)
	src.SetInt64(100)
	assert.Equal(t, int64(9), n.Int64())
}
