package simplifier

import (
	"fifi-core/expr"
	"fifi-core/function"
)

// partiallyEvaluate implements the partial-evaluation augmentation of
// function-evaluation step 2 for flattened associative calls: scan the
// argument list left to right, greedily group maximal runs of arguments
// that are evaluable literals, evaluate each run through the function
// table, and splice the result back in place of the run. Repeat until a
// full pass makes no further change, so e.g. +(a, 1, 2, b, 3, 4) reduces
// the two literal runs to +(a, 3, b, 7) in one call.
func partiallyEvaluate(t *function.Table, name string, args []expr.Expr, ctx *function.EvalContext) ([]expr.Expr, bool, error) {
	changedOverall := false
	for {
		next, changed, err := partialPass(t, name, args, ctx)
		if err != nil {
			return args, changedOverall, err
		}
		if !changed {
			return args, changedOverall, nil
		}
		args = next
		changedOverall = true
	}
}

func partialPass(t *function.Table, name string, args []expr.Expr, ctx *function.EvalContext) ([]expr.Expr, bool, error) {
	out := make([]expr.Expr, 0, len(args))
	changed := false
	i := 0
	for i < len(args) {
		if !expr.IsNumberLiteral(args[i]) {
			out = append(out, args[i])
			i++
			continue
		}
		j := i
		for j < len(args) && expr.IsNumberLiteral(args[j]) {
			j++
		}
		run := args[i:j]
		if len(run) >= 2 {
			result, matched, err := t.Evaluate(name, run, ctx)
			if err != nil {
				return nil, changed, err
			}
			if matched {
				out = append(out, result)
				changed = true
				i = j
				continue
			}
		}
		out = append(out, run...)
		i = j
	}
	return out, changed, nil
}
