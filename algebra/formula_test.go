package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/algebra"
	"fifi-core/expr"
)

func TestFormulaFromExprRecognizesEquals(t *testing.T) {
	e := expr.NewCall("=", vr("x"), num(5))
	f, ok := algebra.FormulaFromExpr(e)
	require.True(t, ok)
	assert.True(t, expr.Equal(vr("x"), f.LHS))
	assert.True(t, expr.Equal(num(5), f.RHS))
}

func TestFormulaFromExprRejectsNonEquals(t *testing.T) {
	_, ok := algebra.FormulaFromExpr(expr.NewCall("+", vr("x"), num(5)))
	assert.False(t, ok)
}

func TestFormulaToExprRoundTrip(t *testing.T) {
	e := expr.NewCall("=", vr("x"), num(5))
	f, _ := algebra.FormulaFromExpr(e)
	assert.True(t, expr.Equal(e, f.ToExpr()))
}

func TestFormulaAsZeroedSubtractsRHS(t *testing.T) {
	f := algebra.Formula{LHS: vr("x"), RHS: num(5)}
	zeroed := f.AsZeroed().(expr.Call)
	assert.Equal(t, "-", zeroed.Name)
	assert.True(t, expr.Equal(vr("x"), zeroed.Args[0]))
	assert.True(t, expr.Equal(num(5), zeroed.Args[1]))
}
