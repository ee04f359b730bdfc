package stackmodel

import "fifi-core/expr"

// VariableTable maps variable names to expressions; insertion order is not
// significant (spec.md §3).
type VariableTable struct {
	vars map[string]expr.Expr
}

func NewVariableTable() *VariableTable {
	return &VariableTable{vars: map[string]expr.Expr{}}
}

func (t *VariableTable) Get(name string) (expr.Expr, bool) {
	e, ok := t.vars[name]
	return e, ok
}

// setRaw/deleteRaw mutate without recording undo history — see
// UndoableState.StoreVar/UnbindVar, which record before calling these.
func (t *VariableTable) setRaw(name string, val expr.Expr) {
	t.vars[name] = val
}

func (t *VariableTable) deleteRaw(name string) {
	delete(t.vars, name)
}

// Names returns every currently bound variable name, for diagnostics and
// substitution commands.
func (t *VariableTable) Names() []string {
	out := make([]string, 0, len(t.vars))
	for name := range t.vars {
		out = append(out, name)
	}
	return out
}
