package command

import (
	"encoding/json"

	"github.com/pkg/errors"

	"fifi-core/algebra"
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/prism"
	"fifi-core/stackmodel"
)

// SubcommandId identifies a dispatch-table entry plus the options it
// should run under, reified so it can be passed as a command argument
// (spec.md §4.10's as_subcommand reification, grounded on
// original_source's command/subcommand.rs SubcommandId — that type has
// no map_stack/fold_stack caller in original_source, since those two
// commands are a supplement this repo adds on top of the Subcommand
// abstraction original_source built but never finished wiring up).
type SubcommandId struct {
	Name    string         `json:"name"`
	Options CommandOptions `json:"options"`
}

// ErrBadSubcommandId is wrapped when a map_stack/fold_stack argument
// isn't valid JSON for a SubcommandId, or names a command that isn't
// SubcommandCapable.
var ErrBadSubcommandId = errors.New("command: invalid subcommand id")

// StringToSubcommandId is the prism map_stack/fold_stack's first
// argument narrows through: a JSON-encoded SubcommandId (original_source's
// command/subcommand.rs StringToSubcommandId, generalized from its
// narrow-only JSON check to round-trip via Go's encoding/json).
var StringToSubcommandId = prism.New(
	func(s string) (SubcommandId, bool) {
		var id SubcommandId
		if err := json.Unmarshal([]byte(s), &id); err != nil {
			return SubcommandId{}, false
		}
		return id, true
	},
	func(id SubcommandId) string {
		data, err := json.Marshal(id)
		if err != nil {
			return ""
		}
		return string(data)
	},
)

func resolveSubcommand(ctx *CommandContext, id SubcommandId) (Subcommand, error) {
	if ctx.Dispatch == nil {
		return Subcommand{}, errors.New("command: no dispatch table available to resolve subcommands")
	}
	sub, ok := ctx.Dispatch.AsSubcommand(id.Name, id.Options)
	if !ok {
		return Subcommand{}, errors.Wrapf(ErrBadSubcommandId, "%q is not usable as a subcommand", id.Name)
	}
	return sub, nil
}

// boundSimplify adapts ctx.simplify to the simplifyFunc shape Subcommand.Call
// expects, closing over the state the command is running against.
func boundSimplify(ctx *CommandContext, state *stackmodel.UndoableState) simplifyFunc {
	return func(e expr.Expr, errs *corerr.ErrorList) (expr.Expr, error) {
		return ctx.simplify(state, e, errs)
	}
}

// MapStackCommand takes a SubcommandId (JSON-encoded) argument, pops a
// vector off the stack, applies the named unary subcommand to each
// element, and pushes the resulting vector (spec.md §4.10's
// supplemented higher-order stack operations, built directly on the
// Subcommand reification original_source defines but leaves unused).
type MapStackCommand struct{}

func (MapStackCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	id, err := validateUnary(args, "subcommand id", StringToSubcommandId)
	if err != nil {
		return CommandOutput{}, err
	}
	sub, err := resolveSubcommand(ctx, id)
	if err != nil {
		return CommandOutput{}, err
	}
	if sub.Arity != 1 {
		return CommandOutput{}, errors.Wrapf(ErrSubcommandArity, "map_stack requires a unary subcommand, got arity %d", sub.Arity)
	}

	state.Cut()
	errs := &corerr.ErrorList{}
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	vecExpr, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "map_stack needs 1 element")
	}
	vec, ok := algebra.VectorFromExpr(vecExpr)
	if !ok {
		return CommandOutput{}, errors.Wrapf(ErrBadArgument, "expected vector, got %s", vecExpr)
	}
	simplify := boundSimplify(ctx, state)
	out := make([]expr.Expr, len(vec))
	for i, el := range vec {
		result, err := sub.Call(ctx, simplify, []expr.Expr{el}, errs)
		if err != nil {
			return CommandOutput{}, err
		}
		out[i] = result
	}
	stack.Push(algebra.Vector(out).ToExpr())
	stack.Finish()
	return FromErrorList(errs), nil
}

// FoldStackCommand takes a SubcommandId (JSON-encoded) argument, pops a
// vector off the stack, and left-folds the named binary subcommand over
// its elements (first element is the seed), pushing the final
// accumulated value. Errors if the vector is empty.
type FoldStackCommand struct{}

func (FoldStackCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	id, err := validateUnary(args, "subcommand id", StringToSubcommandId)
	if err != nil {
		return CommandOutput{}, err
	}
	sub, err := resolveSubcommand(ctx, id)
	if err != nil {
		return CommandOutput{}, err
	}
	if sub.Arity != 2 {
		return CommandOutput{}, errors.Wrapf(ErrSubcommandArity, "fold_stack requires a binary subcommand, got arity %d", sub.Arity)
	}

	state.Cut()
	errs := &corerr.ErrorList{}
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	vecExpr, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "fold_stack needs 1 element")
	}
	vec, ok := algebra.VectorFromExpr(vecExpr)
	if !ok {
		return CommandOutput{}, errors.Wrapf(ErrBadArgument, "expected vector, got %s", vecExpr)
	}
	if len(vec) == 0 {
		return CommandOutput{}, errors.Wrap(ErrBadArgument, "fold_stack requires a nonempty vector")
	}
	simplify := boundSimplify(ctx, state)
	acc := vec[0]
	for _, el := range vec[1:] {
		result, err := sub.Call(ctx, simplify, []expr.Expr{acc, el}, errs)
		if err != nil {
			return CommandOutput{}, err
		}
		acc = result
	}
	stack.Push(acc)
	stack.Finish()
	return FromErrorList(errs), nil
}
