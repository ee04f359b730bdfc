// Package session wires every engine package into the single long-lived
// object a host application constructs once and drives for the life of a
// calculator window: the undoable stack state, the shared command
// resources (function table, simplifier, unit parser, calculus engine,
// language mode, graphics store, dispatch table) and the mutex that
// serializes command execution against them. Grounded on
// original_source's src-tauri/src/state/mod.rs (TauriApplicationState /
// ApplicationState) and state/tauri_command.rs, generalized away from
// Tauri's app-handle/event-emission model into plain Go methods a caller
// can wrap however its own transport layer needs.
package session

import (
	"github.com/sasha-s/go-deadlock"

	"fifi-core/calculus"
	"fifi-core/command"
	"fifi-core/config"
	"fifi-core/function"
	"fifi-core/langmode"
	"fifi-core/simplifier"
	"fifi-core/stackmodel"
	"fifi-core/units"
)

// Session bundles one UndoableState with the shared, session-lifetime
// resources every command needs, and a mutex protecting both against
// concurrent command invocations (original_source wraps its ApplicationState
// in a std::sync::Mutex behind Tauri's managed state for the same reason).
// go-deadlock is a drop-in sync.Mutex that additionally detects lock-order
// inversions in development builds, matching the teacher repo's own
// preference for a deadlock-detecting mutex over the bare stdlib one
// wherever shared mutable state is held for a request's duration.
type Session struct {
	mu deadlock.Mutex

	state    *stackmodel.UndoableState
	ctx      *command.CommandContext
	graphics *command.GraphicsStore
}

// New constructs a Session with a fresh UndoableState and a complete set of
// default engine resources, mirroring
// original_source::state::TauriApplicationState::with_default_tables.
func New() *Session {
	return NewWithConfig(&config.Config{})
}

// NewWithConfig is New, but seeds the fresh UndoableState's display/
// calculation-mode defaults and the numeric package's float precision from
// cfg instead of the zero-value defaults (original_source's
// TauriApplicationState construction has no equivalent config-seeding
// step, since its Rust Config is read from a settings file at a different
// layer; here the caller supplies it directly).
func NewWithConfig(cfg *config.Config) *Session {
	cfg.Apply()

	functions := function.NewDefaultTable()
	eng := calculus.NewEngine(functions)
	store := command.NewGraphicsStore()
	base := langmode.NewDefaultMode()
	lang := langmode.NewGraphicsMode(base, store.Lookup)

	ctx := &command.CommandContext{
		Functions:  functions,
		Simplifier: simplifier.Repeat(simplifier.New(functions), simplifier.DefaultRepeatCount),
		Units:      units.NewTableParser(),
		Calculus:   eng,
		Language:   lang,
		Graphics:   store,
		Dispatch:   command.DefaultTable(),
	}

	state := stackmodel.New()
	state.Display.OutputRadix = cfg.OutputRadix()
	state.Display.GraphicsEnabled = cfg.GraphicsEnabled()
	state.Mode.Infinity = cfg.Infinity()

	return &Session{
		state:    state,
		ctx:      ctx,
		graphics: store,
	}
}

// Names lists every command name registered in this session's dispatch
// table, for a frontend to build its command palette from.
func (s *Session) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.Dispatch.Names()
}

// SetTracing turns per-command dispatch tracing on or off (ivy's
// config.Debug("trace") toggle, generalized from opcode frames to command
// names by internal/trace).
func (s *Session) SetTracing(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.Dispatch.Trace.Enabled = enabled
}

// StackSnapshot returns the stack's current contents, top first, rendered
// through the session's language mode (original_source's
// ApplicationState::send_refresh_stack_event, minus the Tauri event
// emission: the caller decides how to deliver the strings to its
// frontend).
func (s *Session) StackSnapshot() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderStackLocked()
}

func (s *Session) renderStackLocked() ([]string, error) {
	settings := langmode.DisplaySettings{
		OutputRadix:     s.state.Display.OutputRadix,
		GraphicsEnabled: s.state.Display.GraphicsEnabled,
	}
	n := s.state.Stack.Len()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		e, _ := s.state.Stack.Get(i)
		rendered, err := langmode.Render(s.ctx.Language, settings, e)
		if err != nil {
			return nil, err
		}
		out[i] = rendered
	}
	return out, nil
}

// UndoAvailability reports whether Undo/Redo currently have anything to
// act on, for a frontend to enable/disable the corresponding buttons
// (original_source's UndoAvailabilityPayload).
func (s *Session) UndoAvailability() (hasUndos, hasRedos bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.History.HasUndos(), s.state.History.HasRedos()
}
