package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/expr"
	"fifi-core/function"
	"fifi-core/numeric"
)

// TestLnInfiniteArgument guards review comment (b): ln previously had no
// case for an infinite argument.
func TestLnInfiniteArgument(t *testing.T) {
	tbl := function.NewDefaultTable()

	result, matched, err := tbl.Evaluate("ln", []expr.Expr{infLit(numeric.PosInf)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	assert.Equal(t, numeric.PosInf, result.(expr.InfiniteLit).Value.Kind)

	result, matched, err = tbl.Evaluate("ln", []expr.Expr{infLit(numeric.NegInf)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	assert.Equal(t, numeric.PosInf, result.(expr.InfiniteLit).Value.Kind)

	result, matched, err = tbl.Evaluate("ln", []expr.Expr{infLit(numeric.NaN)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	assert.Equal(t, numeric.NaN, result.(expr.InfiniteLit).Value.Kind)
}

// TestLogComplexArgument guards review comment (b): log previously had no
// complex-argument case.
func TestLogComplexArgument(t *testing.T) {
	tbl := function.NewDefaultTable()
	base := num(2)
	x := expr.ComplexLit{Value: numeric.Complex{Re: numeric.NewInt(0), Im: numeric.NewInt(1)}}
	_, matched, err := tbl.Evaluate("log", []expr.Expr{base, x}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
}

// TestLogIntervalArgument guards review comment (b): log previously had no
// interval-argument case.
func TestLogIntervalArgument(t *testing.T) {
	tbl := function.NewDefaultTable()
	base := num(2)
	iv := expr.NewCall("..", num(1), num(4))
	result, matched, err := tbl.Evaluate("log", []expr.Expr{base, iv}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	call, ok := result.(expr.Call)
	require.True(t, ok)
	assert.Equal(t, "..", call.Name)
}

// TestLogInfiniteBaseOrArgument guards review comment (b): log previously
// had no infinity cases at all.
func TestLogInfiniteBaseOrArgument(t *testing.T) {
	tbl := function.NewDefaultTable()

	// Infinite base, complex (real, non-nan) argument -> 0.
	result, matched, err := tbl.Evaluate("log", []expr.Expr{infLit(numeric.PosInf), num(5)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	n, ok := result.(expr.Number)
	require.True(t, ok)
	assert.True(t, numeric.IsZero(n.Value))

	// nan base -> nan regardless of argument.
	result, matched, err = tbl.Evaluate("log", []expr.Expr{infLit(numeric.NaN), num(5)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	assert.Equal(t, numeric.NaN, result.(expr.InfiniteLit).Value.Kind)

	// Complex base, infinite argument -> same table as ln's infinite case.
	result, matched, err = tbl.Evaluate("log", []expr.Expr{num(2), infLit(numeric.NegInf)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	assert.Equal(t, numeric.PosInf, result.(expr.InfiniteLit).Value.Kind)

	// Both infinite -> nan.
	result, matched, err = tbl.Evaluate("log", []expr.Expr{infLit(numeric.PosInf), infLit(numeric.PosInf)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	assert.Equal(t, numeric.NaN, result.(expr.InfiniteLit).Value.Kind)
}

func TestLnDerivativeIsReciprocal(t *testing.T) {
	tbl := function.NewDefaultTable()
	rule, ok := tbl.DerivativeOf("ln")
	require.True(t, ok)
	diff := func(e expr.Expr, v string) (expr.Expr, error) { return num(1), nil }
	result, err := rule([]expr.Expr{expr.Var{Name: "x"}}, "x", diff)
	require.NoError(t, err)
	call := result.(expr.Call)
	assert.Equal(t, "/", call.Name)
}
