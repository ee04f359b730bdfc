// Package expr defines the central expression tree: a tagged union of atoms
// (numbers, complex literals, infinite constants, strings, variables) and
// function calls. Every
// Expr is a value type — construction and Clone produce logically
// independent trees, there are no back-references, and Equal is structural.
package expr

import (
	"fmt"
	"strings"

	"fifi-core/numeric"
)

// Expr is the sum type. Concrete variants are Number, ComplexLit,
// InfiniteLit, Str, Var and Call; the unexported marker method closes the
// set to this package.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Number is an atom wrapping a numeric.Number (integer, rational or float).
type Number struct {
	Value numeric.Number
}

func (Number) exprNode() {}
func (n Number) String() string { return n.Value.String() }

// ComplexLit is an atom wrapping a numeric.Complex.
type ComplexLit struct {
	Value numeric.Complex
}

func (ComplexLit) exprNode() {}
func (c ComplexLit) String() string { return c.Value.String() }

// InfiniteLit is an atom wrapping one of the four infinite/indeterminate
// constants (+inf, -inf, uinf, nan); see numeric.Infinite.
type InfiniteLit struct {
	Value numeric.Infinite
}

func (InfiniteLit) exprNode()       {}
func (i InfiniteLit) String() string { return i.Value.String() }

// Str is a string atom.
type Str struct {
	Value string
}

func (Str) exprNode() {}
func (s Str) String() string { return fmt.Sprintf("%q", s.Value) }

// Var is a variable atom; see var.go for name validation.
type Var struct {
	Name string
}

func (Var) exprNode() {}
func (v Var) String() string { return v.Name }

// Call is the function application node: a named head applied to an
// ordered argument list. name is any string; operator heads like "+" are
// just calls whose name happens to be an operator symbol.
type Call struct {
	Name string
	Args []Expr
}

func (Call) exprNode() {}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// NewCall is a convenience constructor.
func NewCall(name string, args ...Expr) Call {
	return Call{Name: name, Args: args}
}

// IsAtom reports whether e is not a Call.
func IsAtom(e Expr) bool {
	_, ok := e.(Call)
	return !ok
}

// Clone deep-copies e: numeric.Number and numeric.Complex hold *big.Int /
// *big.Rat / *big.Float pointers internally, but their own constructors
// always copy on construction, so cloning an Expr is simply rebuilding the
// tree — no shared mutable state survives.
func Clone(e Expr) Expr {
	switch v := e.(type) {
	case Number:
		return Number{Value: v.Value}
	case ComplexLit:
		return ComplexLit{Value: v.Value}
	case InfiniteLit:
		return InfiniteLit{Value: v.Value}
	case Str:
		return Str{Value: v.Value}
	case Var:
		return Var{Name: v.Name}
	case Call:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = Clone(a)
		}
		return Call{Name: v.Name, Args: args}
	default:
		panic("expr: unknown Expr variant")
	}
}
