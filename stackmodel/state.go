package stackmodel

import (
	"fifi-core/calcmode"
	"fifi-core/expr"
	"fifi-core/undo"
)

// DisplaySettings are the presentation knobs the command layer's "display"
// and "modes" commands mutate (spec.md §4.10: "display (radix)", "modes
// (toggle graphics, toggle infinity)").
type DisplaySettings struct {
	OutputRadix     int
	GraphicsEnabled bool
}

// UndoableState bundles everything spec.md §4.9 says the undo stack
// protects: the value stack, the variable table, display settings and
// calculation mode flags. Every mutator records an undo.Change before
// performing the change, via the stack's UndoingDelegate for stack events
// and directly for variable bindings and flag toggles.
type UndoableState struct {
	Stack     *Stack
	Variables *VariableTable
	Display   DisplaySettings
	Mode      calcmode.CalculationMode

	History *undo.UndoStack
}

// New builds an UndoableState with its stack wired to an UndoingDelegate
// so every Push/Pop/Replace call is automatically recorded.
func New() *UndoableState {
	s := &UndoableState{
		Stack:     NewStack(),
		Variables: NewVariableTable(),
		Display:   DisplaySettings{OutputRadix: 10},
		History:   undo.NewUndoStack(),
	}
	s.Stack.SetDelegate(&UndoingDelegate{Stack: s.Stack, Undo: s.History})
	return s
}

// StoreVar binds name to val, recording the previous binding (or absence
// of one) so undo restores exactly the prior state (spec.md §3's "insert/
// remove/update variable binding").
func (s *UndoableState) StoreVar(name string, val expr.Expr) {
	old, hadOld := s.Variables.Get(name)
	s.History.Push(&undo.Change{
		Label: "store " + name,
		Forward: func() {
			s.Variables.setRaw(name, val)
		},
		Backward: func() {
			if hadOld {
				s.Variables.setRaw(name, old)
			} else {
				s.Variables.deleteRaw(name)
			}
		},
	})
	s.Variables.setRaw(name, val)
}

// UnbindVar removes name's binding, if any, recording it for undo.
func (s *UndoableState) UnbindVar(name string) bool {
	old, hadOld := s.Variables.Get(name)
	if !hadOld {
		return false
	}
	s.History.Push(&undo.Change{
		Label:    "unbind " + name,
		Forward:  func() { s.Variables.deleteRaw(name) },
		Backward: func() { s.Variables.setRaw(name, old) },
	})
	s.Variables.deleteRaw(name)
	return true
}

// ToggleInfinity flips the calculation mode's infinity flag. The change is
// self-inverse, so Forward and Backward are the same closure (spec.md §3:
// "toggle-flag (self-inverse)").
func (s *UndoableState) ToggleInfinity() {
	toggle := func() { s.Mode.Infinity = !s.Mode.Infinity }
	s.History.Push(&undo.Change{Label: "toggle infinity", Forward: toggle, Backward: toggle})
	toggle()
}

// ToggleGraphics flips whether graphics commands are permitted.
func (s *UndoableState) ToggleGraphics() {
	toggle := func() { s.Display.GraphicsEnabled = !s.Display.GraphicsEnabled }
	s.History.Push(&undo.Change{Label: "toggle graphics", Forward: toggle, Backward: toggle})
	toggle()
}

// SetOutputRadix changes the display radix, recording the old value.
func (s *UndoableState) SetOutputRadix(radix int) {
	old := s.Display.OutputRadix
	s.History.Push(&undo.Change{
		Label:    "set radix",
		Forward:  func() { s.Display.OutputRadix = radix },
		Backward: func() { s.Display.OutputRadix = old },
	})
	s.Display.OutputRadix = radix
}

// Cut marks a command boundary on the undo history; callers invoke this
// once per top-level command after it completes.
func (s *UndoableState) Cut() { s.History.Cut() }

// Undo/Redo delegate directly to the underlying UndoStack.
func (s *UndoableState) Undo() bool { return s.History.Undo() }
func (s *UndoableState) Redo() bool { return s.History.Redo() }
