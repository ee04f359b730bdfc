package command

import (
	"github.com/pkg/errors"

	"fifi-core/expr"
	"fifi-core/prism"
)

// ErrWrongArity is wrapped when a command's string-argument list doesn't
// match its schema's expected length (grounded on original_source's
// command/arguments.rs ArgumentSchemaErrorImpl::WrongArity).
var ErrWrongArity = errors.New("command: wrong number of arguments")

// ErrBadArgument is wrapped when an individual argument fails its prism's
// narrowing, carrying which argument and what was expected.
var ErrBadArgument = errors.New("command: invalid argument")

// StringToVar is the prism every variable-name argument schema narrows
// through: a string is a valid Var exactly when expr.ValidVarName accepts
// it (spec.md §4.10: "a prism to a typed value (e.g., StringToVar)").
// Reserved names are rejected by ValidateAssignable at the call site
// instead of here, since not every command that takes a variable name
// requires it to be assignable (e.g. substitute_vars' target may be any
// bound name).
var StringToVar = prism.New(
	func(s string) (expr.Var, bool) {
		if !expr.ValidVarName(s) {
			return expr.Var{}, false
		}
		return expr.Var{Name: s}, true
	},
	func(v expr.Var) string { return v.Name },
)

// validateNullary checks that args is empty.
func validateNullary(args []string) error {
	if len(args) != 0 {
		return errors.Wrapf(ErrWrongArity, "expected 0 argument(s), got %d", len(args))
	}
	return nil
}

// validateUnary narrows args[0] through p, requiring exactly one argument.
func validateUnary[D any](args []string, label string, p prism.Prism[string, D]) (D, error) {
	var zero D
	if len(args) != 1 {
		return zero, errors.Wrapf(ErrWrongArity, "expected 1 argument (%s), got %d", label, len(args))
	}
	d, ok, _ := p.Narrow(args[0])
	if !ok {
		return zero, errors.Wrapf(ErrBadArgument, "expected %s, got %q", label, args[0])
	}
	return d, nil
}

// validateBinary narrows args[0] and args[1] through p1 and p2
// respectively, requiring exactly two arguments.
func validateBinary[D1, D2 any](args []string, label1 string, p1 prism.Prism[string, D1], label2 string, p2 prism.Prism[string, D2]) (D1, D2, error) {
	var zero1 D1
	var zero2 D2
	if len(args) != 2 {
		return zero1, zero2, errors.Wrapf(ErrWrongArity, "expected 2 arguments (%s, %s), got %d", label1, label2, len(args))
	}
	d1, ok, _ := p1.Narrow(args[0])
	if !ok {
		return zero1, zero2, errors.Wrapf(ErrBadArgument, "expected %s, got %q", label1, args[0])
	}
	d2, ok, _ := p2.Narrow(args[1])
	if !ok {
		return zero1, zero2, errors.Wrapf(ErrBadArgument, "expected %s, got %q", label2, args[1])
	}
	return d1, d2, nil
}

// identityString is the trivial prism used by schemas that accept an
// arbitrary string argument (original_source's arguments.rs `Identity`
// used for SubstituteVarCommand's second argument).
var identityString = prism.Identity[string]()
