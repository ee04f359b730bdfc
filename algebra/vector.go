package algebra

import "fifi-core/expr"

// Vector is an expression viewed as vector(e0, e1, ...).
type Vector []expr.Expr

// VectorFromExpr recognizes Call{"vector", args}; ok is false for anything
// else.
func VectorFromExpr(e expr.Expr) (Vector, bool) {
	c, ok := e.(expr.Call)
	if !ok || c.Name != "vector" {
		return nil, false
	}
	return Vector(c.Args), true
}

func (v Vector) ToExpr() expr.Expr {
	return expr.NewCall("vector", []expr.Expr(v)...)
}

// Matrix is a Vector of equal-length Vectors (spec.md §3).
type Matrix [][]expr.Expr

// MatrixFromExpr recognizes a vector of vectors, all the same length.
func MatrixFromExpr(e expr.Expr) (Matrix, bool) {
	outer, ok := VectorFromExpr(e)
	if !ok {
		return nil, false
	}
	var m Matrix
	var width = -1
	for _, row := range outer {
		rv, ok := VectorFromExpr(row)
		if !ok {
			return nil, false
		}
		if width == -1 {
			width = len(rv)
		} else if len(rv) != width {
			return nil, false
		}
		m = append(m, []expr.Expr(rv))
	}
	return m, true
}

func (m Matrix) ToExpr() expr.Expr {
	rows := make([]expr.Expr, len(m))
	for i, row := range m {
		rows[i] = Vector(row).ToExpr()
	}
	return Vector(rows).ToExpr()
}

// Rows and Cols report the matrix's dimensions; Cols is 0 for an empty
// matrix.
func (m Matrix) Rows() int { return len(m) }
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
