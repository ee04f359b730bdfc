package session

// UndoDirection selects which half of the undo history PerformUndo acts on
// (original_source's state::UndoDirection).
type UndoDirection int

const (
	Undo UndoDirection = iota
	Redo
)

// PerformUndo undoes or redoes the most recent command boundary, if one
// exists. A missing undo/redo is not an error: original_source's
// perform_undo_action comment notes the frontend disables the undo/redo
// buttons when unavailable but keyboard shortcuts can still invoke the
// action, "so these actions can fail. If they do, they perform no
// operations and harmlessly fail" — so this method simply reports whether
// anything happened, for a caller that wants to know.
func (s *Session) PerformUndo(direction UndoDirection) (performed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch direction {
	case Undo:
		return s.state.Undo()
	case Redo:
		return s.state.Redo()
	default:
		return false
	}
}
