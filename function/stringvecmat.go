package function

import (
	"fifi-core/algebra"
	"fifi-core/corerr"
	"fifi-core/expr"
	"fifi-core/numeric"
	"fifi-core/prism"
)

// registerStringVectorMatrix wires a handful of string/vector/matrix
// primitives spec.md §4.4 groups together as "string/formula/vector/matrix
// primitives": string concatenation, vector length/index, and matrix
// transpose.
func registerStringVectorMatrix(t *Table) {
	t.Register(NewFunction("strcat").
		WithFlags(Flags{PermitsFlattening: true}).
		WithCase(CaseAny(allStr, func(args []expr.Expr, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			out := ""
			for _, a := range args {
				out += a.(expr.Str).Value
			}
			return expr.Str{Value: out}, Success, nil
		})).
		Build())

	t.Register(NewFunction("vec_len").
		WithCase(Case1(vectorExprPrism, func(v algebra.Vector, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			return expr.Number{Value: numeric.NewInt(int64(len(v)))}, Success, nil
		})).
		Build())

	t.Register(NewFunction("vec_index").
		WithCase(Case2(vectorExprPrism, expr.ToNumber, func(v algebra.Vector, idx numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if !idx.IsInt() {
				return nil, NoMatch, nil
			}
			i := idx.Int64()
			if i < 0 || i >= int64(len(v)) {
				return nil, Failure, corerr.ErrDomain
			}
			return v[i], Success, nil
		})).
		Build())

	t.Register(NewFunction("transpose").
		WithFlags(Flags{IsInvolution: true}).
		WithCase(Case1(matrixExprPrism, func(m algebra.Matrix, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			if m.Rows() == 0 {
				return nil, NoMatch, nil
			}
			out := make(algebra.Matrix, m.Cols())
			for c := 0; c < m.Cols(); c++ {
				row := make([]expr.Expr, m.Rows())
				for r := 0; r < m.Rows(); r++ {
					row[r] = m[r][c]
				}
				out[c] = row
			}
			return out.ToExpr(), Success, nil
		})).
		Build())
}

func allStr(args []expr.Expr) bool {
	if len(args) == 0 {
		return false
	}
	for _, a := range args {
		if _, ok := a.(expr.Str); !ok {
			return false
		}
	}
	return true
}

var vectorExprPrism = prism.New(
	func(e expr.Expr) (algebra.Vector, bool) { return algebra.VectorFromExpr(e) },
	func(v algebra.Vector) expr.Expr { return v.ToExpr() },
)

var matrixExprPrism = prism.New(
	func(e expr.Expr) (algebra.Matrix, bool) { return algebra.MatrixFromExpr(e) },
	func(m algebra.Matrix) expr.Expr { return m.ToExpr() },
)
