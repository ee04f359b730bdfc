// Package corerr implements the error model described in spec.md §7:
// recoverable errors are data, accumulated in an ErrorList rather than
// thrown, and carry their original input so callers can recover it. Every
// constructor wraps a sentinel with github.com/pkg/errors so callers can
// test the kind with errors.Is/errors.Cause while the wrapped message
// carries the human-readable text shown to the user.
package corerr

import (
	"fmt"

	"github.com/pkg/errors"

	"fifi-core/expr"
)

// Sentinels identifying recoverable error kinds (spec.md §7).
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrBadType         = errors.New("wrong argument type")
	ErrUnitMismatch    = errors.New("incompatible units")
	ErrUnknownFunction = errors.New("unknown function")
	ErrDomain          = errors.New("value outside function domain")
)

// ErrorWithPayload carries the original expression that triggered an
// error, so a caller that cannot proceed can still recover the input
// unmodified (spec.md §7, "Errors carry their original input where
// possible").
type ErrorWithPayload struct {
	cause   error
	Payload expr.Expr
}

func (e *ErrorWithPayload) Error() string { return e.cause.Error() }
func (e *ErrorWithPayload) Unwrap() error { return e.cause }
func (e *ErrorWithPayload) Cause() error  { return e.cause }

// WithPayload wraps err, attaching payload for recovery.
func WithPayload(err error, payload expr.Expr) *ErrorWithPayload {
	return &ErrorWithPayload{cause: err, Payload: payload}
}

// TryFromExprError names the Go type a conversion was attempting to reach
// and preserves the original expression, mirroring the specification's
// TryFromExprError.
type TryFromExprError struct {
	Target   string
	Original expr.Expr
}

func (e *TryFromExprError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.Original, e.Target)
}

func NewTryFromExprError(target string, original expr.Expr) *TryFromExprError {
	return &TryFromExprError{Target: target, Original: original}
}

// UnknownDerivative is produced by calculus.Differentiate when a call's
// head has no registered derivative rule; it carries the whole original
// top-level expression (not just the offending call) so the engine can
// leave deriv(...) symbolic (spec.md §4.4, §4.5).
type UnknownDerivative struct {
	FunctionName string
	Original     expr.Expr
}

func (e *UnknownDerivative) Error() string {
	return fmt.Sprintf("no derivative rule for %q", e.FunctionName)
}

func NewUnknownDerivative(name string, original expr.Expr) *UnknownDerivative {
	return &UnknownDerivative{FunctionName: name, Original: original}
}

// ErrorList accumulates recoverable errors produced during a single
// simplification pass or command invocation. The first error is what the
// UI's show-error event surfaces; later ones are retained for callers that
// want all of them (spec.md §7).
type ErrorList struct {
	errs []error
}

func (l *ErrorList) Push(err error) {
	if err != nil {
		l.errs = append(l.errs, err)
	}
}

func (l *ErrorList) Pushf(format string, args ...interface{}) {
	l.Push(errors.Errorf(format, args...))
}

func (l *ErrorList) Empty() bool { return len(l.errs) == 0 }

// First returns the first accumulated error, or nil if none — this is what
// a command surfaces via show-error; the rest are dropped unless the
// caller reads All().
func (l *ErrorList) First() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l.errs[0]
}

func (l *ErrorList) All() []error { return l.errs }

func (l *ErrorList) Clear() { l.errs = nil }
