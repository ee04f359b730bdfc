package command

import (
	"github.com/pkg/errors"

	"fifi-core/algebra"
	"fifi-core/stackmodel"
	"fifi-core/units"
)

// ErrQueryIndexOutOfRange is wrapped when a Query's StackIndex names a
// position beyond the stack's current bounds.
var ErrQueryIndexOutOfRange = errors.New("command: query index out of range")

// QueryType enumerates the read-only predicates a Query can ask of a
// stack element (spec.md §4.10, grounded on original_source's
// state/query.rs QueryType; only HasUnits is defined there, so this is
// the complete set).
type QueryType int

const (
	// HasUnits reports whether the target expression contains any
	// factor the context's unit parser recognizes.
	HasUnits QueryType = iota
)

// Query targets a specific stack position, using the same nonnegative
// top-down / negative bottom-up indexing as the rest of the stack model
// (0 is the top, -1 is the bottom).
type Query struct {
	StackIndex int64
	QueryType  QueryType
}

// QueryContext carries the resources a query needs beyond the stack
// itself (original_source's state/query.rs QueryContext).
type QueryContext struct {
	Units units.UnitParser
}

// RunQuery evaluates q against stack, returning ErrQueryIndexOutOfRange
// if the index names a nonexistent position (grounded on
// original_source's state/query.rs run_query).
func RunQuery(q Query, ctx QueryContext, stack *stackmodel.Stack) (bool, error) {
	elem, ok := stack.Get(int(q.StackIndex))
	if !ok {
		return false, errors.Wrapf(ErrQueryIndexOutOfRange, "index %d, stack has %d element(s)", q.StackIndex, stack.Len())
	}
	switch q.QueryType {
	case HasUnits:
		composite, _ := units.ParseCompositeUnit(algebra.TermFromExpr(elem), ctx.Units)
		return !composite.Empty(), nil
	default:
		return false, errors.Errorf("command: unknown query type %d", q.QueryType)
	}
}
