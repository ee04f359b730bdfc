package command

// DefaultTable builds a DispatchTable wired with every built-in command
// named by spec.md §4.10, grounded on original_source's
// command/mod.rs::default_dispatch_table, which assembles its own
// default table the same way: one Register call per command, keyed by
// the string name the UI layer sends.
func DefaultTable() *DispatchTable {
	t := NewDispatchTable()

	binary := []string{"+", "-", "*", "/", "^", "<", "<=", ">", ">=", "=", "!=",
		"datetime_rel", "vec_index", "strcat", "farg", "||", "&&",
		"div_inexact", "floor_div", "%", "log"}
	for _, name := range binary {
		t.Register(name, BinaryFunctionCommand{Name: name})
	}
	unary := []string{"negate", "exp", "ln", "re", "im", "arg", "conj",
		"mean", "median", "gmean", "hmean", "agmean", "fhead", "fargs",
		"transpose", "vec_len"}
	for _, name := range unary {
		t.Register(name, UnaryFunctionCommand{Name: name})
	}

	t.Register("pop", PopCommand{})
	t.Register("swap", SwapCommand{})
	t.Register("dup", DupCommand{})

	t.Register("store_var", StoreVarCommand{})
	t.Register("unbind_var", UnbindVarCommand{})
	t.Register("substitute_vars", SubstituteVarCommand{})

	t.Register("push_number", PushNumberCommand{})
	t.Register("push_expr", PushExprCommand{})
	t.Register("push_string", PushStringCommand{})

	t.Register("derivative", DerivativeCommand{})
	t.Register("root_find_newton", NewRootFindCommand(RootFindNewton, defaultRootFindEpsilon))
	t.Register("root_find_secant", NewRootFindCommand(RootFindSecant, defaultRootFindEpsilon))
	t.Register("root_find_bisection", NewRootFindCommand(RootFindBisection, defaultRootFindEpsilon))

	t.Register("remove_units", RemoveUnitsCommand{})
	t.Register("extract_units", ExtractUnitsCommand{})

	t.Register("toggle_graphics", ToggleGraphicsCommand{})
	t.Register("toggle_infinity", ToggleInfinityCommand{})
	t.Register("radix", RadixCommand{})

	t.Register("plot", PlotCommand{})
	t.Register("contour", ContourCommand{})

	t.Register("map_stack", MapStackCommand{})
	t.Register("fold_stack", FoldStackCommand{})

	return t
}

// defaultRootFindEpsilon is the convergence tolerance root-finding
// commands use absent a caller-supplied override (spec.md §4.6 names a
// default iteration cap but leaves epsilon to the caller; 1e-10 matches
// the precision float-backed numeric.Number operations in this engine
// reliably resolve to).
const defaultRootFindEpsilon = 1e-10
