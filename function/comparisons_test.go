package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/expr"
	"fifi-core/function"
)

func evalBool(t *testing.T, name string, a, b expr.Expr) bool {
	t.Helper()
	tbl := function.NewDefaultTable()
	result, matched, err := tbl.Evaluate(name, []expr.Expr{a, b}, newCtx())
	require.True(t, matched, "%s(%v,%v) should match", name, a, b)
	require.NoError(t, err)
	b2, ok := function.AsBool(result)
	require.True(t, ok)
	return b2
}

func TestOrderingOperatorsOnNumbers(t *testing.T) {
	assert.True(t, evalBool(t, "<", num(1), num(2)))
	assert.False(t, evalBool(t, "<", num(2), num(1)))
	assert.True(t, evalBool(t, "<=", num(1), num(1)))
	assert.True(t, evalBool(t, ">", num(2), num(1)))
	assert.True(t, evalBool(t, ">=", num(1), num(1)))
}

// TestOrderingOperatorsOnStrings guards review comment (a): the four
// inequality comparisons previously had no string case.
func TestOrderingOperatorsOnStrings(t *testing.T) {
	a, b := expr.Str{Value: "apple"}, expr.Str{Value: "banana"}
	assert.True(t, evalBool(t, "<", a, b))
	assert.False(t, evalBool(t, ">", a, b))
	assert.True(t, evalBool(t, "<=", a, a))
	assert.True(t, evalBool(t, ">=", a, a))
}

func TestEqualityOperatorsOnComplexValues(t *testing.T) {
	assert.True(t, evalBool(t, "=", num(1), num(1)))
	assert.True(t, evalBool(t, "!=", num(1), num(2)))
}

// TestComparisonDerivativeIsPointwise guards review comment (a): none of
// the six comparisons registered a derivative rule despite spec.md §4.4.
func TestComparisonDerivativeIsPointwise(t *testing.T) {
	tbl := function.NewDefaultTable()
	for _, name := range []string{"<", "<=", ">", ">=", "=", "!="} {
		rule, ok := tbl.DerivativeOf(name)
		require.True(t, ok, "%s should have a derivative rule", name)

		diffCalls := 0
		diff := func(e expr.Expr, v string) (expr.Expr, error) {
			diffCalls++
			return e, nil
		}
		result, err := rule([]expr.Expr{expr.Var{Name: "x"}, num(2)}, "x", diff)
		require.NoError(t, err)
		assert.Equal(t, 2, diffCalls)
		call, ok := result.(expr.Call)
		require.True(t, ok)
		assert.Equal(t, name, call.Name)
	}
}
