package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/function"
	"fifi-core/numeric"
)

func num(n int64) expr.Expr { return expr.Number{Value: numeric.NewInt(n)} }

func newCtx() *function.EvalContext {
	return &function.EvalContext{Errors: &corerr.ErrorList{}}
}

func TestEvaluateTriesCasesInRegistrationOrder(t *testing.T) {
	tbl := function.NewTable()
	tbl.Register(function.NewFunction("f").
		WithCase(function.Case1(expr.ToNumber, func(n numeric.Number, ctx *function.EvalContext) (expr.Expr, function.CaseStatus, error) {
			return nil, function.NoMatch, nil
		})).
		WithCase(function.Case1(expr.ToNumber, func(n numeric.Number, ctx *function.EvalContext) (expr.Expr, function.CaseStatus, error) {
			return num(99), function.Success, nil
		})).
		Build())

	result, matched, err := tbl.Evaluate("f", []expr.Expr{num(1)}, newCtx())
	require.True(t, matched)
	require.NoError(t, err)
	assert.True(t, expr.Equal(num(99), result))
}

func TestEvaluateUnknownFunctionDoesNotMatch(t *testing.T) {
	tbl := function.NewTable()
	_, matched, err := tbl.Evaluate("nope", []expr.Expr{num(1)}, newCtx())
	assert.False(t, matched)
	assert.NoError(t, err)
}

func TestEvaluateFailureLeavesCallUnreduced(t *testing.T) {
	tbl := function.NewTable()
	tbl.Register(function.NewFunction("f").
		WithCase(function.Case1(expr.ToNumber, func(n numeric.Number, ctx *function.EvalContext) (expr.Expr, function.CaseStatus, error) {
			return nil, function.Failure, corerr.ErrDomain
		})).
		Build())

	result, matched, err := tbl.Evaluate("f", []expr.Expr{num(1)}, newCtx())
	require.True(t, matched)
	assert.ErrorIs(t, err, corerr.ErrDomain)
	call, ok := result.(expr.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
}

func TestEvaluateNoMatchingCaseReturnsUnmatched(t *testing.T) {
	tbl := function.NewTable()
	tbl.Register(function.NewFunction("f").
		WithCase(function.Case1(expr.ToNumber, func(n numeric.Number, ctx *function.EvalContext) (expr.Expr, function.CaseStatus, error) {
			return nil, function.NoMatch, nil
		})).
		Build())

	_, matched, err := tbl.Evaluate("f", []expr.Expr{expr.Var{Name: "x"}}, newCtx())
	assert.False(t, matched)
	assert.NoError(t, err)
}

func TestIdentityElementAndFlags(t *testing.T) {
	tbl := function.NewDefaultTable()
	assert.True(t, tbl.IdentityElement("+", num(0)))
	assert.False(t, tbl.IdentityElement("+", num(1)))

	flags, ok := tbl.FlagsOf("+")
	require.True(t, ok)
	assert.True(t, flags.PermitsFlattening)
	assert.True(t, flags.PermitsReordering)

	negFlags, ok := tbl.FlagsOf("negate")
	require.True(t, ok)
	assert.True(t, negFlags.IsInvolution)
}

func TestDerivativeOfMissingFunctionIsAbsent(t *testing.T) {
	tbl := function.NewDefaultTable()
	_, ok := tbl.DerivativeOf("vector")
	assert.False(t, ok)

	_, ok = tbl.DerivativeOf("+")
	assert.True(t, ok)
}
