package corerr_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/numeric"
)

func TestWithPayloadRecoversCauseAndOriginal(t *testing.T) {
	target := expr.Number{Value: numeric.NewInt(1)}
	err := corerr.WithPayload(corerr.ErrDomain, target)

	assert.ErrorIs(t, err, corerr.ErrDomain)
	assert.Equal(t, corerr.ErrDomain, err.Cause())
	assert.True(t, expr.Equal(target, err.Payload))
}

func TestTryFromExprErrorMessage(t *testing.T) {
	target := expr.Var{Name: "x"}
	err := corerr.NewTryFromExprError("Number", target)
	assert.Contains(t, err.Error(), "Number")
	assert.True(t, expr.Equal(target, err.Original))
}

func TestUnknownDerivativeCarriesOriginal(t *testing.T) {
	original := expr.NewCall("frobnicate", expr.Var{Name: "x"})
	err := corerr.NewUnknownDerivative("frobnicate", original)
	assert.Contains(t, err.Error(), "frobnicate")
	assert.True(t, expr.Equal(original, err.Original))
}

func TestErrorListAccumulatesAndReportsFirst(t *testing.T) {
	var l corerr.ErrorList
	assert.True(t, l.Empty())
	assert.Nil(t, l.First())

	l.Push(corerr.ErrDomain)
	l.Pushf("bad argument %d", 2)
	l.Push(nil) // nil errors are dropped, not accumulated.

	require.False(t, l.Empty())
	assert.ErrorIs(t, l.First(), corerr.ErrDomain)
	assert.Len(t, l.All(), 2)

	l.Clear()
	assert.True(t, l.Empty())
}

func TestErrorListPushfWrapsWithErrorsErrorf(t *testing.T) {
	var l corerr.ErrorList
	l.Pushf("wrong type: %s", "Var")
	assert.EqualError(t, l.First(), "wrong type: Var")
	assert.NotNil(t, errors.Cause(l.First()))
}
