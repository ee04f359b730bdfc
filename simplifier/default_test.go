package simplifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fifi-core/calcmode"
	"fifi-core/expr"
	"fifi-core/function"
	"fifi-core/numeric"
	"fifi-core/simplifier"
)

func num(n int64) expr.Expr { return expr.Number{Value: numeric.NewInt(n)} }

func newCtx() *simplifier.Context {
	return simplifier.NewContext(calcmode.CalculationMode{})
}

func TestDefaultEvaluatesArithmetic(t *testing.T) {
	table := function.NewDefaultTable()
	s := simplifier.New(table)
	ctx := newCtx()

	result, err := s.SimplifyExpr(expr.NewCall("+", num(2), num(3)), ctx)
	assert.NoError(t, err)
	assert.True(t, expr.Equal(num(5), result))
}

func TestDefaultFlattensAssociativeCalls(t *testing.T) {
	table := function.NewDefaultTable()
	s := simplifier.New(table)
	ctx := newCtx()

	// +(+(a,1),2) flattens to +(a,1,2). In this single pass partial
	// evaluation runs before flattening, so the run 1, 2 is not folded yet
	// and the result is still a "+" call.
	nested := expr.NewCall("+", expr.NewCall("+", expr.Var{Name: "a"}, num(1)), num(2))
	result, err := s.SimplifyExpr(nested, ctx)
	assert.NoError(t, err)
	call, ok := result.(expr.Call)
	assert.True(t, ok)
	assert.Equal(t, "+", call.Name)
}

func TestDefaultCollapsesInvolution(t *testing.T) {
	table := function.NewDefaultTable()
	s := simplifier.New(table)
	ctx := newCtx()

	doubled := expr.NewCall("negate", expr.NewCall("negate", expr.Var{Name: "x"}))
	result, err := s.SimplifyExpr(doubled, ctx)
	assert.NoError(t, err)
	assert.True(t, expr.Equal(expr.Var{Name: "x"}, result))
}

func TestRepeatedStopsAtFixedPoint(t *testing.T) {
	table := function.NewDefaultTable()
	s := simplifier.Repeat(simplifier.New(table), 5)
	ctx := newCtx()

	result, err := s.SimplifyExpr(expr.NewCall("+", num(1), num(2), num(3)), ctx)
	assert.NoError(t, err)
	assert.True(t, expr.Equal(num(6), result))
}
