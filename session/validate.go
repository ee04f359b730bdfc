package session

import (
	"github.com/pkg/errors"

	"fifi-core/expr"
)

// ValidateStackSize reports whether the stack currently holds at least
// expected elements, without modifying it (original_source's
// tauri_command::validate_stack_size; frontends call this before opening a
// dialog that will pop N values, so the user sees a clear error instead of
// a confusing underflow after they've already filled in the dialog).
func (s *Session) ValidateStackSize(expected int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Stack.Len() >= expected
}

// Validator names one of the textual-input checks a frontend dialog can
// run before submitting a value as a command argument (original_source's
// state/validation.rs Validator; VarName is the one concrete case that
// module implements via validate_var, generalized here with sibling
// variants for the other two free-text argument shapes the command layer
// accepts: a number literal and a full expression, both parsed the same
// way PushNumberCommand/PushExprCommand parse them).
type Validator int

const (
	ValidatorVarName Validator = iota
	ValidatorNumber
	ValidatorExpression
)

// ValidateValue checks value against validator, reporting success or the
// validation failure. It never mutates the session.
func (s *Session) ValidateValue(validator Validator, value string) error {
	switch validator {
	case ValidatorVarName:
		return expr.ValidateAssignable(value)
	case ValidatorNumber:
		s.mu.Lock()
		parsed, err := s.ctx.Language.Parse(value)
		s.mu.Unlock()
		if err != nil {
			return err
		}
		if _, ok := parsed.(expr.Number); !ok {
			return errors.Errorf("session: %q is not a number literal", value)
		}
		return nil
	case ValidatorExpression:
		s.mu.Lock()
		_, err := s.ctx.Language.Parse(value)
		s.mu.Unlock()
		return err
	default:
		return errors.Errorf("session: unknown validator %d", validator)
	}
}
