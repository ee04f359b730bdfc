package session

import (
	"fifi-core/command"
)

// RunCommand runs the named command against the session's state under the
// given options, returning the non-fatal errors it produced (empty on full
// success) alongside any fatal dispatch/argument/stack error. Grounded on
// original_source's state/tauri_command.rs::run_math_command, minus the
// app-handle event emission: a caller that wants a refreshed stack display
// calls StackSnapshot itself afterward.
func (s *Session) RunCommand(name string, args []string, opts command.CommandOptions) (command.CommandOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx.Opts = opts
	return s.ctx.Dispatch.Run(s.state, name, args, opts, s.ctx)
}

// FirstError extracts the error a frontend would actually surface to the
// user from a CommandOutput (original_source's tauri_command.rs
// handle_command_output: "this function only displays the *first* error to
// the user, for brevity's sake"). Returns nil if out carries no errors.
func FirstError(out command.CommandOutput) error {
	if len(out.Errors) == 0 {
		return nil
	}
	return out.Errors[0]
}
