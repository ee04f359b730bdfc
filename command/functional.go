package command

import (
	"github.com/pkg/errors"

	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/stackmodel"
)

// ErrStackUnderflow is wrapped when a command needs more stack elements
// than are present.
var ErrStackUnderflow = errors.New("command: stack underflow")

// UnaryFunctionCommand pops one value and pushes Name(value), simplified
// (spec.md §4.10's "unary ... function pushers", grounded on
// original_source's command/functional.rs UnaryFunctionCommand).
type UnaryFunctionCommand struct {
	Name string
}

func (c UnaryFunctionCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	errs := &corerr.ErrorList{}
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	a, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrapf(ErrStackUnderflow, "%q needs 1 element", c.Name)
	}
	result, err := ctx.simplify(state, expr.NewCall(c.Name, a), errs)
	if err != nil {
		return CommandOutput{}, err
	}
	stack.Push(result)
	stack.Finish()
	return FromErrorList(errs), nil
}

func (c UnaryFunctionCommand) AsSubcommand(CommandOptions) (Subcommand, bool) {
	return NamedSubcommand(1, c.Name), true
}

// BinaryFunctionCommand pops two values (a below b: b popped first) and
// pushes Name(a, b), simplified.
type BinaryFunctionCommand struct {
	Name string
}

func (c BinaryFunctionCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	errs := &corerr.ErrorList{}
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	b, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrapf(ErrStackUnderflow, "%q needs 2 elements", c.Name)
	}
	a, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrapf(ErrStackUnderflow, "%q needs 2 elements", c.Name)
	}
	result, err := ctx.simplify(state, expr.NewCall(c.Name, a, b), errs)
	if err != nil {
		return CommandOutput{}, err
	}
	stack.Push(result)
	stack.Finish()
	return FromErrorList(errs), nil
}

func (c BinaryFunctionCommand) AsSubcommand(CommandOptions) (Subcommand, bool) {
	return NamedSubcommand(2, c.Name), true
}

// PushConstantCommand pushes a fixed expression, simplified once at
// construction time is unnecessary since simplification is idempotent at
// a fixed point; it simplifies fresh on every run so it stays correct
// even if the function table changes between calls (it never does, but
// this keeps the command stateless, matching original_source's
// PushConstantCommand).
type PushConstantCommand struct {
	Expr expr.Expr
}

func (c PushConstantCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	errs := &corerr.ErrorList{}
	result, err := ctx.simplify(state, c.Expr, errs)
	if err != nil {
		return CommandOutput{}, err
	}
	state.Stack.Push(result)
	return FromErrorList(errs), nil
}
