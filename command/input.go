package command

import (
	"github.com/pkg/errors"

	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/simplifier"
	"fifi-core/stackmodel"
)

// ErrNotANumber is wrapped when push_number's argument parses to
// something other than a bare numeric literal.
var ErrNotANumber = errors.New("command: not a number literal")

// PushNumberCommand parses its one string argument as a real number
// literal and pushes it (spec.md §4.10's "expression input parsing",
// grounded on original_source's command/input.rs push_number_command).
// It reuses the language mode's grammar rather than a separate numeric
// parser, then rejects anything that didn't reduce to a bare Number atom.
type PushNumberCommand struct{}

func (PushNumberCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	text, err := validateUnary(args, "number literal", identityString)
	if err != nil {
		return CommandOutput{}, err
	}
	parsed, err := ctx.Language.Parse(text)
	if err != nil {
		return CommandOutput{}, errors.Wrapf(err, "command: failed to parse number %q", text)
	}
	n, ok := parsed.(expr.Number)
	if !ok {
		return CommandOutput{}, errors.Wrapf(ErrNotANumber, "%q", text)
	}
	state.Cut()
	state.Stack.Push(n)
	return Success(), nil
}

// PushExprCommand parses its one string argument via the active language
// mode's full expression grammar and pushes the (simplified) result. $N
// references to stack elements are resolved first, via a DollarResolver
// prepended to the base simplifier (grounded on original_source's
// command/input.rs push_expr_command, which prepends a
// DollarSignRefSimplifier the same way).
type PushExprCommand struct{}

func (PushExprCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	text, err := validateUnary(args, "expression", identityString)
	if err != nil {
		return CommandOutput{}, err
	}
	parsed, err := ctx.Language.Parse(text)
	if err != nil {
		return CommandOutput{}, errors.Wrap(err, "command: failed to parse expression")
	}
	state.Cut()
	errs := &corerr.ErrorList{}
	withDollar := simplifier.Chain(simplifier.NewDollarResolver(state.Stack), ctx.Simplifier)
	simplCtx := simplifier.NewContext(state.Mode)
	simplCtx.Base = withDollar
	simplCtx.Errors = errs
	if ctx.Calculus != nil {
		simplCtx.Differentiate = ctx.Calculus.Differentiate
	}
	result, err := withDollar.SimplifyExpr(parsed, simplCtx)
	if err != nil {
		return CommandOutput{}, err
	}
	state.Stack.Push(result)
	return FromErrorList(errs), nil
}

// PushStringCommand pushes its one string argument as a string-valued
// expression, unconditionally (original_source's push_string_command).
type PushStringCommand struct{}

func (PushStringCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	text, err := validateUnary(args, "string", identityString)
	if err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	state.Stack.Push(expr.Str{Value: text})
	return Success(), nil
}
