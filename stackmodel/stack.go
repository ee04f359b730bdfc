// Package stackmodel implements the operand stack, variable table and
// undoable state described in spec.md §3/§4.9: a value stack with O(1) top
// push/pop and O(k) indexed access from either end, wrapped by an
// "undoing delegate" that records every elementary mutation onto an
// undo.UndoStack.
package stackmodel

import "fifi-core/expr"

// StackDelegate observes elementary stack events (spec.md §4.9).
type StackDelegate interface {
	OnPush(e expr.Expr)
	OnPop(e expr.Expr)
	OnMutate(index int, old, newVal expr.Expr)
}

// Stack is an ordered sequence of expressions, stored with the top at the
// end of the slice for O(1) push/pop. Indexing follows spec.md §3: a
// non-negative index counts top-down (0 is top); a negative index counts
// bottom-up (-1 is bottom).
type Stack struct {
	items    []expr.Expr
	delegate StackDelegate
}

func NewStack() *Stack { return &Stack{} }

// SetDelegate installs the observer notified of every push/pop/mutate.
func (s *Stack) SetDelegate(d StackDelegate) { s.delegate = d }

func (s *Stack) Len() int { return len(s.items) }

// resolve converts spec.md's top-down/bottom-up index into a slice index,
// reporting ok=false when out of range.
func (s *Stack) resolve(i int) (int, bool) {
	n := len(s.items)
	var idx int
	if i >= 0 {
		idx = n - 1 - i
	} else {
		idx = -i - 1
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// Get reads the element at index i without mutating the stack.
func (s *Stack) Get(i int) (expr.Expr, bool) {
	idx, ok := s.resolve(i)
	if !ok {
		return nil, false
	}
	return s.items[idx], true
}

// NthFromTop implements simplifier.StackReader: n=1 is the top element.
func (s *Stack) NthFromTop(n int) (expr.Expr, bool) {
	return s.Get(n - 1)
}

// Push appends e as the new top and notifies the delegate.
func (s *Stack) Push(e expr.Expr) {
	s.pushRaw(e)
	if s.delegate != nil {
		s.delegate.OnPush(e)
	}
}

// Pop removes and returns the top element, notifying the delegate.
func (s *Stack) Pop() (expr.Expr, bool) {
	e, ok := s.popRaw()
	if !ok {
		return nil, false
	}
	if s.delegate != nil {
		s.delegate.OnPop(e)
	}
	return e, true
}

// Replace overwrites the element at index i, notifying the delegate with
// the old and new values.
func (s *Stack) Replace(i int, val expr.Expr) bool {
	idx, ok := s.resolve(i)
	if !ok {
		return false
	}
	old := s.items[idx]
	s.items[idx] = val
	if s.delegate != nil {
		s.delegate.OnMutate(i, old, val)
	}
	return true
}

// pushRaw/popRaw/replaceRaw perform the mutation without notifying the
// delegate — used both internally and as the Forward/Backward closures an
// UndoingDelegate installs, so replaying an undo/redo doesn't re-record
// itself.
func (s *Stack) pushRaw(e expr.Expr) { s.items = append(s.items, e) }

func (s *Stack) popRaw() (expr.Expr, bool) {
	n := len(s.items)
	if n == 0 {
		return nil, false
	}
	e := s.items[n-1]
	s.items = s.items[:n-1]
	return e, true
}

func (s *Stack) replaceRaw(i int, val expr.Expr) {
	idx, ok := s.resolve(i)
	if !ok {
		return
	}
	s.items[idx] = val
}

// Snapshot returns the stack top-first, as spec.md §6's refresh-stack
// event requires ("{stack: [string]}" top-first).
func (s *Stack) Snapshot() []expr.Expr {
	out := make([]expr.Expr, len(s.items))
	for i := range s.items {
		out[i] = s.items[len(s.items)-1-i]
	}
	return out
}
