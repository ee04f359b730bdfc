package command

import (
	"fifi-core/expr"
	"fifi-core/stackmodel"
)

// KeepableStack wraps a *stackmodel.Stack so a command can be written in
// terms of ordinary Pop/Push calls while the "keep" modifier transparently
// changes the net effect: with keep=false, Pop and Push behave normally;
// with keep=true, a Pop still returns the value to the caller (so the
// command's logic is unaffected) but also remembers it, and Push is only
// staged — once the command finishes, the remembered popped values are
// pushed back underneath whatever the command pushed. Net result for a command that pops N and
// pushes M: final state is original[:-N] + popped + pushed (spec.md
// §4.10), grounded on original_source's stack/keepable.rs KeepableStack.
type KeepableStack struct {
	stack  *stackmodel.Stack
	keep   bool
	popped []expr.Expr
	pushed []expr.Expr
}

// NewKeepableStack wraps stack; keep selects the keep-modifier behavior.
func NewKeepableStack(stack *stackmodel.Stack, keep bool) *KeepableStack {
	return &KeepableStack{stack: stack, keep: keep}
}

// Pop removes (or, under keep, logically removes) the top value.
func (k *KeepableStack) Pop() (expr.Expr, bool) {
	v, ok := k.stack.Pop()
	if !ok {
		return v, false
	}
	if k.keep {
		k.popped = append(k.popped, v)
	}
	return v, true
}

// Push stages e to be pushed. Under keep, the push is deferred until
// Finish so the remembered popped values are restored first.
func (k *KeepableStack) Push(e expr.Expr) {
	if k.keep {
		k.pushed = append(k.pushed, e)
		return
	}
	k.stack.Push(e)
}

// Finish applies the keep-modifier bookkeeping: if keep is set, pushes
// back every value Pop removed (in reverse pop order, restoring original
// stack order) followed by every value staged via Push. A successful
// command calls Finish exactly once, after all Pop/Push calls; a failed
// command does not call Finish at all, since Pop already mutated the real
// stack and the caller surfaces the error before any Push.
func (k *KeepableStack) Finish() {
	if !k.keep {
		return
	}
	for i := len(k.popped) - 1; i >= 0; i-- {
		k.stack.Push(k.popped[i])
	}
	for _, e := range k.pushed {
		k.stack.Push(e)
	}
}
