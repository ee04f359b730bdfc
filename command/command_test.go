package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/calculus"
	"fifi-core/command"
	"fifi-core/expr"
	"fifi-core/function"
	"fifi-core/langmode"
	"fifi-core/numeric"
	"fifi-core/simplifier"
	"fifi-core/stackmodel"
	"fifi-core/units"
)

func num(n int64) expr.Expr { return expr.Number{Value: numeric.NewInt(n)} }

// newTestContext builds a fully-wired CommandContext the way a session
// would, so command tests exercise the real simplifier/function-table
// pipeline rather than a stub (mirrors original_source's
// command/subcommand.rs test_utils::try_call, which does the same).
func newTestContext() *command.CommandContext {
	table := function.NewDefaultTable()
	eng := calculus.NewEngine(table)
	ctx := &command.CommandContext{
		Functions:  table,
		Simplifier: simplifier.Repeat(simplifier.New(table), simplifier.DefaultRepeatCount),
		Units:      units.NewTableParser(),
		Calculus:   eng,
		Language:   langmode.NewDefaultMode(),
		Graphics:   command.NewGraphicsStore(),
	}
	ctx.Dispatch = command.DefaultTable()
	return ctx
}

func act(t *testing.T, c command.Command, initial []expr.Expr, args []string, opts command.CommandOptions) (*stackmodel.UndoableState, command.CommandOutput, error) {
	t.Helper()
	state := stackmodel.New()
	for _, e := range initial {
		state.Stack.Push(e)
	}
	ctx := newTestContext()
	ctx.Opts = opts
	out, err := c.Run(state, args, ctx)
	return state, out, err
}

func TestBinaryFunctionCommandAdds(t *testing.T) {
	state, out, err := act(t, command.BinaryFunctionCommand{Name: "+"}, []expr.Expr{num(2), num(3)}, nil, command.CommandOptions{})
	require.NoError(t, err)
	assert.Empty(t, out.Errors)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	assert.True(t, expr.Equal(num(5), top))
	assert.Equal(t, 0, state.Stack.Len())
}

func TestUnaryFunctionCommandUnderflow(t *testing.T) {
	_, _, err := act(t, command.UnaryFunctionCommand{Name: "negate"}, nil, nil, command.CommandOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrStackUnderflow)
}

func TestBinaryFunctionCommandRespectsKeepModifier(t *testing.T) {
	state, _, err := act(t, command.BinaryFunctionCommand{Name: "+"}, []expr.Expr{num(2), num(3)}, nil, command.CommandOptions{KeepModifier: true})
	require.NoError(t, err)
	require.Equal(t, 3, state.Stack.Len())
	top, _ := state.Stack.Get(0)
	assert.True(t, expr.Equal(num(5), top))
	second, _ := state.Stack.Get(1)
	assert.True(t, expr.Equal(num(3), second))
	third, _ := state.Stack.Get(2)
	assert.True(t, expr.Equal(num(2), third))
}

func TestPopSwapDup(t *testing.T) {
	state, _, err := act(t, command.PopCommand{}, []expr.Expr{num(1), num(2)}, nil, command.CommandOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, state.Stack.Len())

	state, _, err = act(t, command.SwapCommand{}, []expr.Expr{num(1), num(2)}, nil, command.CommandOptions{})
	require.NoError(t, err)
	top, _ := state.Stack.Get(0)
	bottom, _ := state.Stack.Get(1)
	assert.True(t, expr.Equal(num(1), top))
	assert.True(t, expr.Equal(num(2), bottom))

	state, _, err = act(t, command.DupCommand{}, []expr.Expr{num(7)}, nil, command.CommandOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, state.Stack.Len())
	top, _ = state.Stack.Get(0)
	bottom, _ = state.Stack.Get(1)
	assert.True(t, expr.Equal(num(7), top))
	assert.True(t, expr.Equal(num(7), bottom))
}

func TestStoreVarAndSubstitute(t *testing.T) {
	state, _, err := act(t, command.StoreVarCommand{}, []expr.Expr{num(42)}, []string{"x"}, command.CommandOptions{})
	require.NoError(t, err)
	val, ok := state.Variables.Get("x")
	require.True(t, ok)
	assert.True(t, expr.Equal(num(42), val))
	assert.Equal(t, 0, state.Stack.Len(), "store_var pops without keep")

	state, _, err = act(t, command.UnbindVarCommand{}, nil, []string{"x"}, command.CommandOptions{})
	require.NoError(t, err)
	_, ok = state.Variables.Get("x")
	assert.False(t, ok)

	target := expr.NewCall("+", expr.Var{Name: "x"}, num(1))
	state, _, err = act(t, command.SubstituteVarCommand{}, []expr.Expr{target}, []string{"x", "10"}, command.CommandOptions{})
	require.NoError(t, err)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	assert.True(t, expr.Equal(num(11), top))
}

func TestDerivativeCommand(t *testing.T) {
	target := expr.NewCall("^", expr.Var{Name: "x"}, num(2))
	state, _, err := act(t, command.DerivativeCommand{}, []expr.Expr{target}, []string{"x"}, command.CommandOptions{})
	require.NoError(t, err)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	expected := expr.NewCall("*", num(2), expr.Var{Name: "x"})
	assert.True(t, expr.Equal(expected, top), "got %s", top)
}

func TestRootFindNewtonFindsRoot(t *testing.T) {
	target := expr.NewCall("-", expr.NewCall("^", expr.Var{Name: "x"}, num(2)), num(4))
	cmd := command.NewRootFindCommand(command.RootFindNewton, 1e-9)
	state, out, err := act(t, cmd, []expr.Expr{target}, []string{"x", "3"}, command.CommandOptions{})
	require.NoError(t, err)
	assert.Empty(t, out.Errors)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	n, ok := top.(expr.Number)
	require.True(t, ok)
	f, _ := n.Value.AsFloat().Float64()
	assert.InDelta(t, 2.0, f, 1e-6)
}

func TestRemoveAndExtractUnits(t *testing.T) {
	tagged := expr.NewCall("*", num(3), expr.Var{Name: "km"})

	state, _, err := act(t, command.RemoveUnitsCommand{}, []expr.Expr{tagged}, nil, command.CommandOptions{})
	require.NoError(t, err)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	assert.True(t, expr.Equal(num(3), top))

	state, _, err = act(t, command.ExtractUnitsCommand{}, []expr.Expr{tagged}, nil, command.CommandOptions{})
	require.NoError(t, err)
	top, ok = state.Stack.Pop()
	require.True(t, ok)
	assert.True(t, expr.Equal(expr.Var{Name: "km"}, top))
}

func TestToggleGraphicsAndInfinity(t *testing.T) {
	state, _, err := act(t, command.ToggleGraphicsCommand{}, nil, nil, command.CommandOptions{})
	require.NoError(t, err)
	assert.True(t, state.Display.GraphicsEnabled)

	state, _, err = act(t, command.ToggleInfinityCommand{}, nil, nil, command.CommandOptions{})
	require.NoError(t, err)
	assert.True(t, state.Mode.Infinity)
}

func TestRadixCommand(t *testing.T) {
	state, _, err := act(t, command.RadixCommand{}, nil, []string{"16"}, command.CommandOptions{})
	require.NoError(t, err)
	assert.Equal(t, 16, state.Display.OutputRadix)

	_, _, err = act(t, command.RadixCommand{}, nil, []string{"1"}, command.CommandOptions{})
	assert.Error(t, err)
}

func TestPlotCommandPushesHandleMarker(t *testing.T) {
	target := expr.NewCall("^", expr.Var{Name: "x"}, num(2))
	rangeSpec := algebraVector(num(1), num(2), num(3))
	state, _, err := act(t, command.PlotCommand{}, []expr.Expr{target, rangeSpec}, []string{"x"}, command.CommandOptions{})
	require.NoError(t, err)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	call, ok := top.(expr.Call)
	require.True(t, ok)
	assert.Equal(t, "plot", call.Name)
	require.Len(t, call.Args, 1)
	_, ok = call.Args[0].(expr.Str)
	assert.True(t, ok)
}

func algebraVector(es ...expr.Expr) expr.Expr {
	return expr.NewCall("vector", es...)
}

func TestDispatchTableRunUnknownCommand(t *testing.T) {
	table := command.DefaultTable()
	state := stackmodel.New()
	ctx := newTestContext()
	_, err := table.Run(state, "not_a_real_command", nil, command.CommandOptions{}, ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestMapStackCommand(t *testing.T) {
	id := command.SubcommandId{Name: "negate"}
	encoded := command.StringToSubcommandId.Widen(id)

	vec := algebraVector(num(1), num(2), num(3))
	state, out, err := act(t, command.MapStackCommand{}, []expr.Expr{vec}, []string{encoded}, command.CommandOptions{})
	require.NoError(t, err)
	assert.Empty(t, out.Errors)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	result, ok := top.(expr.Call)
	require.True(t, ok)
	require.Len(t, result.Args, 3)
	assert.True(t, expr.Equal(num(-1), result.Args[0]))
	assert.True(t, expr.Equal(num(-2), result.Args[1]))
	assert.True(t, expr.Equal(num(-3), result.Args[2]))
}

func TestFoldStackCommand(t *testing.T) {
	id := command.SubcommandId{Name: "+"}
	encoded := command.StringToSubcommandId.Widen(id)

	vec := algebraVector(num(1), num(2), num(3), num(4))
	state, out, err := act(t, command.FoldStackCommand{}, []expr.Expr{vec}, []string{encoded}, command.CommandOptions{})
	require.NoError(t, err)
	assert.Empty(t, out.Errors)
	top, ok := state.Stack.Pop()
	require.True(t, ok)
	assert.True(t, expr.Equal(num(10), top))
}
