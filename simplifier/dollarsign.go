package simplifier

import (
	"strconv"

	"fifi-core/expr"
)

// StackReader is the minimal view of the operand stack the $N resolver
// needs: NthFromTop(1) is the top of stack, matching the 1-indexed $N
// naming spec.md §6 describes for "resolves $N variables to the Nth-from-
// top stack element." Defined here, rather than depending on the
// stackmodel package directly, so stackmodel can depend on simplifier (for
// its own undo bookkeeping) without an import cycle.
type StackReader interface {
	NthFromTop(n int) (expr.Expr, bool)
}

// DollarResolver rewrites Var nodes named "$1", "$2", ... to the
// corresponding stack element, leaving unresolvable references (bad index,
// empty stack) untouched so later pipeline steps see the original $N atom.
type DollarResolver struct {
	Stack StackReader
}

func (d DollarResolver) SimplifyExprPart(e expr.Expr, ctx *Context) (expr.Expr, error) {
	v, ok := e.(expr.Var)
	if !ok || len(v.Name) < 2 || v.Name[0] != '$' {
		return e, nil
	}
	n, err := strconv.Atoi(v.Name[1:])
	if err != nil || n < 1 {
		return e, nil
	}
	resolved, ok := d.Stack.NthFromTop(n)
	if !ok {
		return e, nil
	}
	return resolved, nil
}

// NewDollarResolver returns the decorator as a full tree Simplifier.
func NewDollarResolver(stack StackReader) Simplifier {
	return Wrap(DollarResolver{Stack: stack})
}
