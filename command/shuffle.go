package command

import (
	"github.com/pkg/errors"

	"fifi-core/stackmodel"
)

// PopCommand discards the top stack value (spec.md §4.10's "stack
// shuffling (pop, swap, dup)", grounded on original_source's
// command/shuffle.rs).
type PopCommand struct{}

func (PopCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	if _, ok := state.Stack.Pop(); !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "pop needs 1 element")
	}
	return Success(), nil
}

// SwapCommand exchanges the top two stack values.
type SwapCommand struct{}

func (SwapCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	b, ok := state.Stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "swap needs 2 elements")
	}
	a, ok := state.Stack.Pop()
	if !ok {
		state.Stack.Push(b)
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "swap needs 2 elements")
	}
	state.Stack.Push(b)
	state.Stack.Push(a)
	return Success(), nil
}

// DupCommand duplicates the top stack value.
type DupCommand struct{}

func (DupCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	a, ok := state.Stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "dup needs 1 element")
	}
	state.Stack.Push(a)
	state.Stack.Push(a)
	return Success(), nil
}
