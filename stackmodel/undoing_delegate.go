package stackmodel

import (
	"fifi-core/expr"
	"fifi-core/undo"
)

// UndoingDelegate translates each elementary Stack event into an
// undo.Change and records it on Undo (spec.md §4.9: "the engine wraps the
// stack with an undoing delegate that translates each elementary stack
// event into an UndoableChange").
type UndoingDelegate struct {
	Stack *Stack
	Undo  *undo.UndoStack
}

func (d *UndoingDelegate) OnPush(e expr.Expr) {
	d.Undo.Push(&undo.Change{
		Label:    "push",
		Forward:  func() { d.Stack.pushRaw(e) },
		Backward: func() { d.Stack.popRaw() },
	})
}

func (d *UndoingDelegate) OnPop(e expr.Expr) {
	d.Undo.Push(&undo.Change{
		Label:    "pop",
		Forward:  func() { d.Stack.popRaw() },
		Backward: func() { d.Stack.pushRaw(e) },
	})
}

func (d *UndoingDelegate) OnMutate(index int, old, newVal expr.Expr) {
	d.Undo.Push(&undo.Change{
		Label:    "replace",
		Forward:  func() { d.Stack.replaceRaw(index, newVal) },
		Backward: func() { d.Stack.replaceRaw(index, old) },
	})
}
