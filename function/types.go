// Package function implements the function library: a table of named
// functions with arity-driven pattern-match cases, flags, identity
// predicates and derivative rules (spec.md §4.4).
package function

import (
	"fifi-core/calcmode"
	"fifi-core/corerr"
	"fifi-core/expr"
)

// Flags are the per-function behavior switches the simplifier consults.
type Flags struct {
	PermitsFlattening bool // associative: f(f(a,b),c) == f(a,b,c)
	PermitsReordering bool // commutative: arguments may be canonically sorted
	IsIdempotent      bool // f(f(x)) == f(x)
	IsInvolution      bool // f(f(x)) == x
}

// CaseStatus is the three-way result of trying one evaluation case.
type CaseStatus int

const (
	// NoMatch means this case's type constraints did not match; the
	// builder's closure moves on to the next case.
	NoMatch CaseStatus = iota
	// Success means the case produced a replacement expression.
	Success
	// Failure means the case matched the type constraints but evaluation
	// hit a recoverable error (e.g. division by zero); matching stops here,
	// the error is reported, and the original call is left un-reduced.
	Failure
)

// CaseOutcome is what a CaseFunc returns.
type CaseOutcome struct {
	Result expr.Expr
	Status CaseStatus
	Err    error
}

func success(e expr.Expr) CaseOutcome  { return CaseOutcome{Result: e, Status: Success} }
func noMatch() CaseOutcome             { return CaseOutcome{Status: NoMatch} }
func failure(err error) CaseOutcome    { return CaseOutcome{Status: Failure, Err: err} }

// DifferentiateFunc is injected into EvalContext so function cases (and the
// "deriv" function itself) can recurse into differentiation without this
// package importing the calculus package, which itself depends on this one
// — see calculus.Engine.Differentiate, which has this exact signature.
type DifferentiateFunc func(e expr.Expr, v string) (expr.Expr, error)

// SimplifyFunc is injected the same way, for cases (like substitute) that
// need to re-simplify a rewritten subexpression.
type SimplifyFunc func(e expr.Expr) (expr.Expr, error)

// EvalContext is the per-call context threaded through every CaseFunc.
type EvalContext struct {
	Mode          calcmode.CalculationMode
	Errors        *corerr.ErrorList
	Differentiate DifferentiateFunc
	Simplify      SimplifyFunc
}

// CaseFunc is a type-erased, arity-checked evaluation case.
type CaseFunc func(args []expr.Expr, ctx *EvalContext) CaseOutcome

// GraphicsCase is the graphics-payload analogue of CaseFunc: given
// evaluated arguments it produces a plot/contour directive value (carried
// as an opaque expr.Expr produced by the graphics package) rather than a
// simplified expression.
type GraphicsCase func(args []expr.Expr, ctx *EvalContext) (expr.Expr, bool, error)

// DerivativeRule computes d/dv of Call{Name, args} given a recursive
// differentiation callback.
type DerivativeRule func(args []expr.Expr, v string, diff DifferentiateFunc) (expr.Expr, error)

// Record is a function's complete registration: identity predicate,
// evaluation cases (tried in insertion order), graphics cases, derivative
// rule and flags.
type Record struct {
	Name        string
	Flags       Flags
	IdentityFn  func(expr.Expr) bool // default: never an identity element
	Cases       []CaseFunc
	Graphics    []GraphicsCase
	Derivative  DerivativeRule
}

func (r *Record) IsIdentity(e expr.Expr) bool {
	if r.IdentityFn == nil {
		return false
	}
	return r.IdentityFn(e)
}
