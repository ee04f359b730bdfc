package command

import "fifi-core/stackmodel"

// ToggleGraphicsCommand flips whether graphics commands (plot, contour)
// are permitted (spec.md §4.10's "modes (toggle graphics, toggle
// infinity)", grounded on original_source's command/modes.rs
// ToggleGraphicsModeCommand).
type ToggleGraphicsCommand struct{}

func (ToggleGraphicsCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	state.ToggleGraphics()
	return Success(), nil
}

// ToggleInfinityCommand flips whether arithmetic is permitted to produce
// infinite/undefined results rather than erroring (original_source's
// command/modes.rs ToggleInfinityModeCommand).
type ToggleInfinityCommand struct{}

func (ToggleInfinityCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	if err := validateNullary(args); err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	state.ToggleInfinity()
	return Success(), nil
}
