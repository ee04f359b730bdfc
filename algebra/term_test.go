package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/algebra"
	"fifi-core/expr"
	"fifi-core/numeric"
)

func num(n int64) expr.Expr { return expr.Number{Value: numeric.NewInt(n)} }
func vr(name string) expr.Expr { return expr.Var{Name: name} }

func TestTermFromExprFlattensChainedMul(t *testing.T) {
	e := expr.NewCall("*", vr("x"), vr("y"), num(2))
	term := algebra.TermFromExpr(e)
	assert.Len(t, term.Num, 3)
	assert.Empty(t, term.Den)
}

func TestTermFromExprDivisionCancelsNestedDenominator(t *testing.T) {
	// (x/y) / (z/w)  ->  num: x,w   den: y,z
	e := expr.NewCall("/",
		expr.NewCall("/", vr("x"), vr("y")),
		expr.NewCall("/", vr("z"), vr("w")),
	)
	term := algebra.TermFromExpr(e)
	require.Len(t, term.Num, 2)
	require.Len(t, term.Den, 2)
	assert.True(t, expr.Equal(vr("x"), term.Num[0]))
	assert.True(t, expr.Equal(vr("w"), term.Num[1]))
	assert.True(t, expr.Equal(vr("y"), term.Den[0]))
	assert.True(t, expr.Equal(vr("z"), term.Den[1]))
}

func TestTermToExprSingleFactorOmitsMulCall(t *testing.T) {
	term := algebra.Term{Num: []expr.Expr{vr("x")}}
	rendered := term.ToExpr()
	assert.True(t, expr.Equal(vr("x"), rendered))
}

func TestTermToExprEmptyNumeratorIsOne(t *testing.T) {
	term := algebra.Term{Den: []expr.Expr{vr("x")}}
	rendered := term.ToExpr().(expr.Call)
	assert.Equal(t, "/", rendered.Name)
	assert.True(t, expr.Equal(num(1), rendered.Args[0]))
}

func TestTermRoundTripForPlainProduct(t *testing.T) {
	e := expr.NewCall("*", vr("x"), vr("y"))
	term := algebra.TermFromExpr(e)
	back := algebra.TermFromExpr(term.ToExpr())
	require.Len(t, back.Num, 2)
	assert.True(t, expr.Equal(e, term.ToExpr()))
}

func TestFactorFromExprPeelsOneCaretLayer(t *testing.T) {
	e := expr.NewCall("^", vr("x"), num(2))
	f := algebra.FactorFromExpr(e)
	assert.True(t, f.HasExponent())
	assert.True(t, expr.Equal(vr("x"), f.Base))
	assert.True(t, expr.Equal(num(2), f.Exponent))
}

func TestFactorFromExprNoCaretHasNilExponent(t *testing.T) {
	f := algebra.FactorFromExpr(vr("x"))
	assert.False(t, f.HasExponent())
	assert.Nil(t, f.Exponent)
}

func TestFactorToExprRoundTrip(t *testing.T) {
	e := expr.NewCall("^", vr("x"), num(3))
	f := algebra.FactorFromExpr(e)
	assert.True(t, expr.Equal(e, f.ToExpr()))

	plain := algebra.FactorFromExpr(vr("x"))
	assert.True(t, expr.Equal(vr("x"), plain.ToExpr()))
}
