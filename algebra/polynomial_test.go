package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/algebra"
	"fifi-core/expr"
)

func TestPolynomialFromExprFlattensChainedSum(t *testing.T) {
	e := expr.NewCall("+", vr("x"), vr("y"), vr("z"))
	p := algebra.PolynomialFromExpr(e)
	require.Len(t, p, 3)
	for _, st := range p {
		assert.False(t, st.Negative)
	}
}

func TestPolynomialFromExprBinaryMinusNegatesRHS(t *testing.T) {
	e := expr.NewCall("-", vr("x"), vr("y"))
	p := algebra.PolynomialFromExpr(e)
	require.Len(t, p, 2)
	assert.False(t, p[0].Negative)
	assert.True(t, p[1].Negative)
}

func TestPolynomialFromExprUnaryMinusNegates(t *testing.T) {
	e := expr.NewCall("-", vr("x"))
	p := algebra.PolynomialFromExpr(e)
	require.Len(t, p, 1)
	assert.True(t, p[0].Negative)
}

// TestPolynomialRoundTripThroughNegate guards the parsing/rendering
// idempotence spec.md §8 mandates: ToExpr renders a negative term via a
// unary "negate" call, so FromExpr must recognize "negate" the same way it
// recognizes unary "-", or a polynomial with a negative term would not
// round-trip.
func TestPolynomialRoundTripThroughNegate(t *testing.T) {
	p := algebra.Polynomial{
		{Negative: false, Term: algebra.TermFromExpr(vr("x"))},
		{Negative: true, Term: algebra.TermFromExpr(vr("y"))},
	}
	rendered := p.ToExpr()
	back := algebra.PolynomialFromExpr(rendered)
	require.Len(t, back, 2)
	assert.False(t, back[0].Negative)
	assert.True(t, expr.Equal(vr("x"), back[0].Term.ToExpr()))
	assert.True(t, back[1].Negative)
	assert.True(t, expr.Equal(vr("y"), back[1].Term.ToExpr()))
}

func TestPolynomialToExprEmptyIsZero(t *testing.T) {
	rendered := algebra.Polynomial{}.ToExpr()
	n, ok := rendered.(expr.Number)
	require.True(t, ok)
	assert.True(t, expr.IsZero(n))
}

func TestPolynomialToExprSingleTermOmitsPlusCall(t *testing.T) {
	p := algebra.Polynomial{{Term: algebra.TermFromExpr(vr("x"))}}
	rendered := p.ToExpr()
	assert.True(t, expr.Equal(vr("x"), rendered))
}

func TestPolynomialNestedMinusFlattensAllTerms(t *testing.T) {
	// x - (y - z)  ->  x, -y, +z
	e := expr.NewCall("-", vr("x"), expr.NewCall("-", vr("y"), vr("z")))
	p := algebra.PolynomialFromExpr(e)
	require.Len(t, p, 3)
	assert.False(t, p[0].Negative)
	assert.True(t, p[1].Negative)
	assert.False(t, p[2].Negative)
}
