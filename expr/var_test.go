package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fifi-core/expr"
)

func TestValidVarName(t *testing.T) {
	assert.True(t, expr.ValidVarName("x"))
	assert.True(t, expr.ValidVarName("$x"))
	assert.True(t, expr.ValidVarName("foo'"))
	assert.True(t, expr.ValidVarName("x2"))
	assert.False(t, expr.ValidVarName("2x"))
	assert.False(t, expr.ValidVarName(""))
	assert.False(t, expr.ValidVarName("has space"))
}

func TestIsReserved(t *testing.T) {
	assert.True(t, expr.IsReserved("pi"))
	assert.True(t, expr.IsReserved("inf"))
	assert.True(t, expr.IsReserved("$1"))
	assert.False(t, expr.IsReserved("x"))
}

func TestValidateAssignable(t *testing.T) {
	assert.NoError(t, expr.ValidateAssignable("x"))

	err := expr.ValidateAssignable("2x")
	assert.ErrorIs(t, err, expr.ErrInvalidVarName)

	err = expr.ValidateAssignable("pi")
	assert.ErrorIs(t, err, expr.ErrReservedConstant)

	err = expr.ValidateAssignable("$stack")
	assert.ErrorIs(t, err, expr.ErrReservedConstant)
}
