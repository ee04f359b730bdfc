package command

import (
	"github.com/pkg/errors"

	"fifi-core/internal/trace"
	"fifi-core/stackmodel"
)

// ErrUnknownCommand is wrapped when Run is asked to dispatch a name with
// no registered Command (spec.md §6's run_math_command "unrecognized
// command" failure case).
var ErrUnknownCommand = errors.New("command: unknown command")

// DispatchTable is the string-keyed command registry (spec.md §4.10:
// "commands are organized in a dispatch table keyed by string name"),
// grounded on ivy's parse/special.go switch-on-name special-command
// dispatch and original_source's command/mod.rs default_dispatch_table,
// both generalized here into an explicit map a session builds once and
// reuses.
type DispatchTable struct {
	commands map[string]Command
	Trace    *trace.Tracer
}

// NewDispatchTable returns an empty table, with tracing disabled; use
// Register to populate it, or DefaultTable for the built-in command set.
func NewDispatchTable() *DispatchTable {
	return &DispatchTable{commands: map[string]Command{}, Trace: trace.New()}
}

// Register adds or replaces the command bound to name.
func (t *DispatchTable) Register(name string, c Command) {
	t.commands[name] = c
}

// Lookup returns the command bound to name, if any.
func (t *DispatchTable) Lookup(name string) (Command, bool) {
	c, ok := t.commands[name]
	return c, ok
}

// Names returns every registered command name, for help/introspection.
func (t *DispatchTable) Names() []string {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	return names
}

// AsSubcommand resolves name to a Subcommand if it is registered and
// implements SubcommandCapable (spec.md §4.10's as_subcommand).
func (t *DispatchTable) AsSubcommand(name string, opts CommandOptions) (Subcommand, bool) {
	c, ok := t.commands[name]
	if !ok {
		return Subcommand{}, false
	}
	capable, ok := c.(SubcommandCapable)
	if !ok {
		return Subcommand{}, false
	}
	return capable.AsSubcommand(opts)
}

// Run looks up name and executes it against state with the given args and
// options, building a one-shot CommandContext around ctx's shared
// resources (spec.md §6's run_math_command entry point). Returns
// ErrUnknownCommand, wrapped, if no command is registered under that
// name; a command's own fatal errors are returned unwrapped.
func (t *DispatchTable) Run(state *stackmodel.UndoableState, name string, args []string, opts CommandOptions, shared *CommandContext) (CommandOutput, error) {
	c, ok := t.commands[name]
	if !ok {
		return CommandOutput{}, errors.Wrapf(ErrUnknownCommand, "%q", name)
	}
	t.Trace.Command(name, args)
	callCtx := *shared
	callCtx.Opts = opts
	return c.Run(state, args, &callCtx)
}
