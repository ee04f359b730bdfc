package command

import (
	"strconv"

	"fifi-core/prism"
	"fifi-core/stackmodel"
)

var stringToRadix = prism.New(
	func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 2 || n > 36 {
			return 0, false
		}
		return n, true
	},
	func(n int) string { return strconv.Itoa(n) },
)

// RadixCommand takes one integer argument and sets the output display
// radix (spec.md §4.10's "display (radix)"). There is no direct
// original_source equivalent to ground this on byte-for-byte since that
// codebase's radix handling lives in its modeline display rather than a
// command; this follows the toggle commands' shape instead
// (original_source's command/display.rs), generalized to take one
// argument through a unary schema before the field mutation.
type RadixCommand struct{}

func (RadixCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	radix, err := validateUnary(args, "radix (2-36)", stringToRadix)
	if err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	state.SetOutputRadix(radix)
	return Success(), nil
}
