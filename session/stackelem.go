package session

import (
	"github.com/pkg/errors"

	"fifi-core/command"
	"fifi-core/langmode"
)

// ErrNoSuchStackElement is wrapped when an index names a position outside
// the stack's current bounds.
var ErrNoSuchStackElement = errors.New("session: no such stack element")

// GetEditableStackElem renders the stack element at index (0 = top) back
// to its reversible textual form, for a frontend to load into an in-place
// edit box (original_source's runner::get_editable_stack_elem, whose body
// isn't present in the available source tree but whose call site in
// runner/mod.rs documents the shape: take a stack index, return the text a
// user could re-submit as a push_expr argument). Renders through the
// session's base language mode rather than its graphics-wrapping one,
// since an edit box has no use for an HTML plotting span.
func (s *Session) GetEditableStackElem(index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.state.Stack.Get(index)
	if !ok {
		return "", errors.Wrapf(ErrNoSuchStackElement, "index %d, stack has %d element(s)", index, s.state.Stack.Len())
	}
	settings := langmode.DisplaySettings{
		OutputRadix:     s.state.Display.OutputRadix,
		GraphicsEnabled: false,
	}
	return langmode.Render(langmode.NewDefaultMode(), settings, e)
}

// SetStackElem replaces the stack element at index with the result of
// re-parsing text, recording the change on the undo history. Used to
// commit an edit started by GetEditableStackElem.
func (s *Session) SetStackElem(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parsed, err := s.ctx.Language.Parse(text)
	if err != nil {
		return err
	}
	if !s.state.Stack.Replace(index, parsed) {
		return errors.Wrapf(ErrNoSuchStackElement, "index %d, stack has %d element(s)", index, s.state.Stack.Len())
	}
	s.state.Cut()
	return nil
}

// RunQuery answers a read-only query about a stack element, such as
// whether it carries any units (original_source's state/query.rs, exposed
// here as a session-level operation since it needs the shared unit
// parser).
func (s *Session) RunQuery(q command.Query) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return command.RunQuery(q, command.QueryContext{Units: s.ctx.Units}, s.state.Stack)
}
