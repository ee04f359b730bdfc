package function

import "fifi-core/expr"

// Booleans have no dedicated Expr atom; following the teacher's convention
// of representing special values as zero-arity calls, true/false are the
// 0-arity calls "true" and "false".
func BoolExpr(b bool) expr.Expr {
	if b {
		return expr.NewCall("true")
	}
	return expr.NewCall("false")
}

func AsBool(e expr.Expr) (bool, bool) {
	c, ok := e.(expr.Call)
	if !ok || len(c.Args) != 0 {
		return false, false
	}
	switch c.Name {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
