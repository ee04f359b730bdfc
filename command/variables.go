package command

import (
	"github.com/pkg/errors"

	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/stackmodel"
)

// StoreVarCommand takes one argument (a variable name), pops the top
// stack value and binds the name to it, recording the prior binding for
// undo (spec.md §4.10's "variable store", grounded on original_source's
// command/variables.rs StoreVarCommand). Respects the keep modifier: with
// keep=true, the value is bound but also left on the stack.
type StoreVarCommand struct{}

func (StoreVarCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	name, err := validateUnary(args, "variable name", StringToVar)
	if err != nil {
		return CommandOutput{}, err
	}
	if err := expr.ValidateAssignable(name.Name); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	val, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "store_var needs 1 element")
	}
	state.StoreVar(name.Name, val)
	stack.Push(val)
	stack.Finish()
	return Success(), nil
}

// UnbindVarCommand takes one argument (a variable name) and removes its
// binding, if any. A no-op (not an error) if the name was unbound.
type UnbindVarCommand struct{}

func (UnbindVarCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	name, err := validateUnary(args, "variable name", StringToVar)
	if err != nil {
		return CommandOutput{}, err
	}
	if err := expr.ValidateAssignable(name.Name); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	state.UnbindVar(name.Name)
	return Success(), nil
}

// SubstituteVarCommand takes a variable name and a second string argument
// parsed via the active language mode as an expression; replaces every
// occurrence of the variable in the top stack value with that expression
// (spec.md §4.10's "variable ... substitute", grounded on
// original_source's command/variables.rs SubstituteVarCommand).
type SubstituteVarCommand struct{}

func (SubstituteVarCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	name, text, err := validateBinary(args, "variable name", StringToVar, "expression", identityString)
	if err != nil {
		return CommandOutput{}, err
	}
	replacement, err := ctx.Language.Parse(text)
	if err != nil {
		return CommandOutput{}, errors.Wrap(err, "command: failed to parse substitution expression")
	}
	state.Cut()
	errs := &corerr.ErrorList{}
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	target, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "substitute_vars needs 1 element")
	}
	call := expr.NewCall("substitute", target, expr.Var{Name: name.Name}, replacement)
	result, err := ctx.simplify(state, call, errs)
	if err != nil {
		return CommandOutput{}, err
	}
	stack.Push(result)
	stack.Finish()
	return FromErrorList(errs), nil
}
