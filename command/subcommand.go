package command

import (
	"github.com/pkg/errors"

	"fifi-core/corerr"
	"fifi-core/expr"
)

// ErrSubcommandArity is wrapped when Subcommand.Call receives a number of
// arguments other than its declared Arity (original_source's
// command/subcommand.rs SubcommandArityError).
var ErrSubcommandArity = errors.New("command: subcommand arity mismatch")

// Subcommand is a command reified down to a pure function of Expr
// arguments at a fixed arity, for use by higher-order stack operations
// (map_stack, fold_stack) that need to apply "whatever command the user
// picked" to elements pulled out of a vector rather than off the top of
// the stack (spec.md §4.10's as_subcommand, grounded on
// original_source's command/subcommand.rs).
type Subcommand struct {
	Arity int
	Apply func(args []expr.Expr) expr.Expr
}

// NamedSubcommand builds the common case: a subcommand that simply calls
// a function-table entry by name on its arguments (original_source's
// Subcommand::named).
func NamedSubcommand(arity int, name string) Subcommand {
	return Subcommand{
		Arity: arity,
		Apply: func(args []expr.Expr) expr.Expr { return expr.NewCall(name, args...) },
	}
}

// Call invokes the subcommand and simplifies the result, reporting an
// arity mismatch rather than panicking (original_source's
// Subcommand::try_call).
func (s Subcommand) Call(ctx *CommandContext, stateMode simplifyFunc, args []expr.Expr, errs *corerr.ErrorList) (expr.Expr, error) {
	if len(args) != s.Arity {
		return nil, errors.Wrapf(ErrSubcommandArity, "expected %d argument(s), got %d", s.Arity, len(args))
	}
	return stateMode(s.Apply(args), errs)
}

// simplifyFunc lets Subcommand.Call simplify without importing
// stackmodel.UndoableState directly; map_stack/fold_stack pass
// ctx.simplify bound to the current state.
type simplifyFunc func(expr.Expr, *corerr.ErrorList) (expr.Expr, error)
