package rootfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fifi-core/calcmode"
	"fifi-core/expr"
	"fifi-core/function"
	"fifi-core/numeric"
	"fifi-core/rootfind"
)

// x^2 - 2, root at sqrt(2).
func square_minus_2() expr.Expr {
	return expr.NewCall("-",
		expr.NewCall("^", expr.Var{Name: "x"}, expr.Number{Value: numeric.NewInt(2)}),
		expr.Number{Value: numeric.NewInt(2)},
	)
}

func linearDiff(e expr.Expr, v string) (expr.Expr, error) {
	// d/dx(x^2-2) = 2x, hardcoded for the one test expression used here.
	return expr.NewCall("*", expr.Number{Value: numeric.NewInt(2)}, expr.Var{Name: v}), nil
}

func TestNewtonFindsSquareRootOfTwo(t *testing.T) {
	table := function.NewDefaultTable()
	f := rootfind.ExprFunction{Target: square_minus_2(), Var: "x", Functions: table, Mode: calcmode.CalculationMode{}}

	root, err := rootfind.Newton(f, linearDiff, numeric.Complex{Re: numeric.NewFloat64(1.4), Im: numeric.NewInt(0)}, 1e-9, 100)
	assert.NoError(t, err)

	n, ok, _ := expr.ToComplex.Narrow(root.Value)
	assert.True(t, ok)
	got, _ := n.Re.AsFloat().Float64()
	assert.InDelta(t, 1.4142135623730951, got, 1e-6)
}

func TestBisectionRejectsSameSignEndpoints(t *testing.T) {
	table := function.NewDefaultTable()
	f := rootfind.ExprFunction{Target: square_minus_2(), Var: "x", Functions: table, Mode: calcmode.CalculationMode{}}

	_, err := rootfind.Bisection(f, numeric.NewInt(5), numeric.NewInt(6), 1e-9, 100)
	assert.ErrorIs(t, err, rootfind.ErrDegenerateInput)
}

func TestBisectionFindsSquareRootOfTwo(t *testing.T) {
	table := function.NewDefaultTable()
	f := rootfind.ExprFunction{Target: square_minus_2(), Var: "x", Functions: table, Mode: calcmode.CalculationMode{}}

	root, err := rootfind.Bisection(f, numeric.NewInt(0), numeric.NewInt(2), 1e-6, 200)
	assert.NoError(t, err)
	n, ok := root.Value.(expr.Number)
	assert.True(t, ok)
	got, _ := n.Value.AsFloat().Float64()
	assert.InDelta(t, 1.4142135623730951, got, 1e-3)
}
