package expr

import (
	"regexp"

	"github.com/pkg/errors"
)

// varNamePattern matches the specification's variable grammar:
// [A-Za-z$][A-Za-z$0-9']*
var varNamePattern = regexp.MustCompile(`^[A-Za-z$][A-Za-z$0-9']*$`)

// reservedNames cannot be bound by store_var; they denote built-in
// constants.
var reservedNames = map[string]bool{
	"pi": true, "e": true, "i": true, "phi": true,
	"inf": true, "uinf": true, "nan": true, "gamma": true,
}

// ErrReservedConstant is the sentinel wrapped when an assignment targets a
// reserved or $-prefixed name (spec.md §8's ReservedConstant scenario).
var ErrReservedConstant = errors.New("reserved constant")

// ErrInvalidVarName is the sentinel wrapped when a name fails the grammar.
var ErrInvalidVarName = errors.New("invalid variable name")

// ValidVarName reports whether name matches the variable grammar.
func ValidVarName(name string) bool {
	return varNamePattern.MatchString(name)
}

// IsReserved reports whether name is a reserved constant or a $-prefixed
// stack-reference name; both are rejected by store_var.
func IsReserved(name string) bool {
	if reservedNames[name] {
		return true
	}
	return len(name) > 0 && name[0] == '$'
}

// ValidateAssignable checks a name for use as an assignment target, per
// spec.md §6's "reserved variable names ... validated on assignment."
func ValidateAssignable(name string) error {
	if !ValidVarName(name) {
		return errors.Wrapf(ErrInvalidVarName, "%q is not a valid variable name", name)
	}
	if IsReserved(name) {
		return errors.Wrapf(ErrReservedConstant, "cannot assign to reserved name %q", name)
	}
	return nil
}
