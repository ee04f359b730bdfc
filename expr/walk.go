package expr

// Walk performs a post-order traversal: for a Call, each argument is
// rewritten first, the Call is rebuilt with the rewritten arguments, and
// then fn is applied to the rebuilt node; for an Atom, fn is applied
// directly. Traversal does not short-circuit but is fallible — the first
// error returned by fn aborts the walk and propagates to the caller.
func Walk(e Expr, fn func(Expr) (Expr, error)) (Expr, error) {
	if c, ok := e.(Call); ok {
		args := make([]Expr, len(c.Args))
		for i, a := range c.Args {
			r, err := Walk(a, fn)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return fn(Call{Name: c.Name, Args: args})
	}
	return fn(e)
}

// WalkRef is the borrowed variant: it visits every subexpression of e
// (post-order, including e itself) without rebuilding the tree, reporting
// back through visit. It is used for predicates like "does any
// subexpression satisfy P?" where allocating a rewritten copy would be
// wasted work.
func WalkRef(e Expr, visit func(Expr)) {
	if c, ok := e.(Call); ok {
		for _, a := range c.Args {
			WalkRef(a, visit)
		}
	}
	visit(e)
}

// Any reports whether any subexpression of e (including e) satisfies pred.
func Any(e Expr, pred func(Expr) bool) bool {
	found := false
	WalkRef(e, func(sub Expr) {
		if !found && pred(sub) {
			found = true
		}
	})
	return found
}
