package function

import "fifi-core/expr"

func registerBoolean(t *Table) {
	t.Register(NewFunction("||").
		WithFlags(Flags{PermitsFlattening: true, PermitsReordering: true}).
		WithIdentity(func(e expr.Expr) bool { b, ok := AsBool(e); return ok && !b }).
		WithCase(CaseAny(allBool, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			for _, a := range args {
				if b, _ := AsBool(a); b {
					return BoolExpr(true), Success, nil
				}
			}
			return BoolExpr(false), Success, nil
		})).
		Build())

	t.Register(NewFunction("&&").
		WithFlags(Flags{PermitsFlattening: true, PermitsReordering: true}).
		WithIdentity(func(e expr.Expr) bool { b, ok := AsBool(e); return ok && b }).
		WithCase(CaseAny(allBool, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			for _, a := range args {
				if b, _ := AsBool(a); !b {
					return BoolExpr(false), Success, nil
				}
			}
			return BoolExpr(true), Success, nil
		})).
		Build())
}

func allBool(args []expr.Expr) bool {
	if len(args) == 0 {
		return false
	}
	for _, a := range args {
		if _, ok := AsBool(a); !ok {
			return false
		}
	}
	return true
}
