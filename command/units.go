package command

import (
	"github.com/pkg/errors"

	"fifi-core/algebra"
	"fifi-core/stackmodel"
	"fifi-core/units"
)

// RemoveUnitsCommand pops the top value, strips any recognized unit
// factors from it, and pushes back the bare scalar term (spec.md §4.10's
// "units (remove-units, extract-units)", grounded on original_source's
// units.rs remove_units_command, here built directly on
// units.ParseCompositeUnit's (CompositeUnit, remainder Term) split rather
// than reimplementing the factor walk).
type RemoveUnitsCommand struct{}

func (RemoveUnitsCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	val, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "remove_units needs 1 element")
	}
	_, remainder := units.ParseCompositeUnit(algebra.TermFromExpr(val), ctx.Units)
	stack.Push(remainder.ToExpr())
	stack.Finish()
	return Success(), nil
}

// ExtractUnitsCommand pops the top value and pushes back only its unit
// portion, rendered as an expression (e.g. `3 km/s` -> `km/s`), the dual
// of RemoveUnitsCommand (original_source's units.rs extract_units_command).
type ExtractUnitsCommand struct{}

func (ExtractUnitsCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	val, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "extract_units needs 1 element")
	}
	composite, _ := units.ParseCompositeUnit(algebra.TermFromExpr(val), ctx.Units)
	stack.Push(composite.ToExpr())
	stack.Finish()
	return Success(), nil
}
