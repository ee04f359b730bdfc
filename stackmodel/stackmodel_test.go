package stackmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fifi-core/expr"
	"fifi-core/numeric"
	"fifi-core/stackmodel"
)

func num(n int64) expr.Expr { return expr.Number{Value: numeric.NewInt(n)} }

func TestStackIndexingTopDownAndBottomUp(t *testing.T) {
	s := stackmodel.NewStack()
	s.Push(num(1))
	s.Push(num(2))
	s.Push(num(3))

	top, ok := s.Get(0)
	assert.True(t, ok)
	assert.True(t, expr.Equal(num(3), top))

	bottom, ok := s.Get(-1)
	assert.True(t, ok)
	assert.True(t, expr.Equal(num(1), bottom))

	_, ok = s.Get(5)
	assert.False(t, ok)
}

func TestPushUndoRedoIsBitwiseIdentical(t *testing.T) {
	state := stackmodel.New()
	state.Stack.Push(num(42))
	state.Cut()

	snapshotAfterPush := state.Stack.Snapshot()

	assert.True(t, state.Undo())
	assert.Equal(t, 0, state.Stack.Len())

	assert.True(t, state.Redo())
	snapshotAfterRedo := state.Stack.Snapshot()

	assert.Equal(t, len(snapshotAfterPush), len(snapshotAfterRedo))
	for i := range snapshotAfterPush {
		assert.True(t, expr.Equal(snapshotAfterPush[i], snapshotAfterRedo[i]))
	}
}

func TestStoreVarUndoRestoresPriorBinding(t *testing.T) {
	state := stackmodel.New()
	state.StoreVar("x", num(1))
	state.Cut()
	state.StoreVar("x", num(2))
	state.Cut()

	assert.True(t, state.Undo())
	v, ok := state.Variables.Get("x")
	assert.True(t, ok)
	assert.True(t, expr.Equal(num(1), v))
}

func TestUnbindVarOnMissingNameReturnsFalse(t *testing.T) {
	state := stackmodel.New()
	assert.False(t, state.UnbindVar("nope"))
}

func TestToggleInfinityIsSelfInverse(t *testing.T) {
	state := stackmodel.New()
	assert.False(t, state.Mode.Infinity)
	state.ToggleInfinity()
	assert.True(t, state.Mode.Infinity)
	state.Cut()
	assert.True(t, state.Undo())
	assert.False(t, state.Mode.Infinity)
}
