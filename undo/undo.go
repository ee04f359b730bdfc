// Package undo implements the UndoStack described in spec.md §3/§4.9: two
// sequences (past, future) of changes separated by "cut" markers at
// command boundaries, with undo/redo operating a whole command's changes
// as one group.
package undo

// Change is a pair of idempotent transformations on whatever state the
// caller closed over when constructing it, plus a label for UI display
// (spec.md §3's "Undoable change"). Forward/Backward are expected to be
// self-contained closures over the undoable state; this package never
// looks inside them.
type Change struct {
	Label    string
	Forward  func()
	Backward func()
}

type entryKind int

const (
	kindChange entryKind = iota
	kindCut
)

type entry struct {
	kind   entryKind
	change *Change
}

// UndoStack holds past and future change sequences. Pushing a change
// clears the future (spec.md §3: "Pushing a change clears the future").
type UndoStack struct {
	past   []entry
	future []entry
}

func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Push records a change at the end of past and clears the redo history.
func (s *UndoStack) Push(c *Change) {
	s.past = append(s.past, entry{kind: kindChange, change: c})
	s.future = nil
}

// Cut marks a user-visible command boundary. Consecutive cuts collapse
// into one, and a cut on an empty history is a no-op.
func (s *UndoStack) Cut() {
	if len(s.past) == 0 {
		return
	}
	if s.past[len(s.past)-1].kind == kindCut {
		return
	}
	s.past = append(s.past, entry{kind: kindCut})
}

// HasUndos reports whether there is at least one change to undo.
func (s *UndoStack) HasUndos() bool {
	for _, e := range s.past {
		if e.kind == kindChange {
			return true
		}
	}
	return false
}

// HasRedos reports whether there is at least one change to redo.
func (s *UndoStack) HasRedos() bool {
	for _, e := range s.future {
		if e.kind == kindChange {
			return true
		}
	}
	return false
}

// Undo applies Backward, in reverse order, to every change since the
// nearest cut, then moves that whole group to the front of future so Redo
// can replay it. Returns false if there is nothing to undo.
func (s *UndoStack) Undo() bool {
	i := len(s.past)
	if i > 0 && s.past[i-1].kind == kindCut {
		i--
	}
	j := i
	for j > 0 && s.past[j-1].kind != kindCut {
		j--
	}
	if i == j {
		return false
	}
	group := append([]entry{}, s.past[j:i]...)
	for k := len(group) - 1; k >= 0; k-- {
		group[k].change.Backward()
	}
	s.past = s.past[:j]

	newFuture := make([]entry, 0, len(group)+1+len(s.future))
	newFuture = append(newFuture, group...)
	newFuture = append(newFuture, entry{kind: kindCut})
	newFuture = append(newFuture, s.future...)
	s.future = newFuture
	return true
}

// Redo applies Forward, in original order, to the group of changes at the
// front of future, moving it back onto past. Returns false if there is
// nothing to redo.
func (s *UndoStack) Redo() bool {
	cutIdx := len(s.future)
	for idx, e := range s.future {
		if e.kind == kindCut {
			cutIdx = idx
			break
		}
	}
	if cutIdx == 0 {
		return false
	}
	group := s.future[:cutIdx]
	for _, e := range group {
		e.change.Forward()
	}
	rest := s.future[cutIdx:]
	if len(rest) > 0 && rest[0].kind == kindCut {
		rest = rest[1:]
	}
	s.future = rest

	s.past = append(s.past, group...)
	s.past = append(s.past, entry{kind: kindCut})
	return true
}
