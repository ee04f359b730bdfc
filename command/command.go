// Package command implements the command layer described by spec.md
// §4.10: a dispatch-table of named Command objects, each validating its
// string arguments against a schema and operating on a session's
// UndoableState under a shared CommandContext (current modifiers,
// simplifier, unit parser). Grounded on original_source's
// src-tauri/src/command/ module family (base.rs, options.rs, shuffle.rs,
// functional.rs, variables.rs, calculus.rs, units.rs, modes.rs, input.rs,
// subcommand.rs, flag_dispatch.rs) and, for the dispatch-table shape
// itself, on ivy's parse/special.go switch-on-name special-command
// dispatch, generalized here into a map so the set of commands is data,
// not a hand-written switch.
package command

import (
	"fifi-core/calculus"
	"fifi-core/corerr"
	"fifi-core/function"
	"fifi-core/langmode"
	"fifi-core/simplifier"
	"fifi-core/stackmodel"
	"fifi-core/units"
)

// CommandOptions carries the per-invocation modifiers the UI passes
// alongside a command name (spec.md §6's run_math_command signature):
// a numeric prefix argument, and the keep/hyperbolic/inverse modifier
// flags. Grounded on original_source's command/options.rs.
type CommandOptions struct {
	Argument           *int64
	KeepModifier       bool
	HyperbolicModifier bool
	InverseModifier    bool
}

// WithArgument returns a copy of opts with Argument set, mirroring
// options.rs's builder-style `with_argument`.
func (opts CommandOptions) WithArgument(n int64) CommandOptions {
	opts.Argument = &n
	return opts
}

// CommandContext is shared, read-only state every command consults: the
// active modifiers plus the function table, simplifier pipeline, unit
// parser and calculus engine a session constructs once and reuses for
// every command invocation (spec.md §4.10, §5's "shared resources ...
// constructed once per session").
type CommandContext struct {
	Opts       CommandOptions
	Functions  *function.Table
	Simplifier simplifier.Simplifier
	Units      units.UnitParser
	Calculus   *calculus.Engine
	Language   langmode.LanguageMode
	Graphics   *GraphicsStore
	Dispatch   *DispatchTable
}

// CommandOutput is the non-fatal-error-bearing result of a successful
// command run (spec.md §4.10, §5's "first is shown to the user;
// additional errors are dropped"). A fatal error (bad argument schema,
// stack underflow) is instead returned as the second Run return value.
type CommandOutput struct {
	Errors []error
}

// Success is the zero-error CommandOutput.
func Success() CommandOutput { return CommandOutput{} }

// FromErrorList copies an ErrorList's contents into a CommandOutput.
func FromErrorList(l *corerr.ErrorList) CommandOutput {
	if l == nil || l.Empty() {
		return Success()
	}
	return CommandOutput{Errors: append([]error{}, l.All()...)}
}

// Command is the single-method interface every dispatch-table entry
// implements (spec.md §4.10: "run(state, args, context) -> Result<...>").
type Command interface {
	Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error)
}

// SubcommandCapable is implemented by commands that can be reified into a
// fixed-arity function of Expr arguments for use by higher-order
// operations like map/fold (spec.md §4.10's as_subcommand, grounded on
// original_source's command/subcommand.rs and flag_dispatch.rs). Commands
// that make no sense as a subcommand (store_var, derivative, ...) simply
// don't implement this interface; DispatchTable.AsSubcommand reports
// false for them.
type SubcommandCapable interface {
	AsSubcommand(opts CommandOptions) (Subcommand, bool)
}
