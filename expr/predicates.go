package expr

import "fifi-core/numeric"

// Predicates collects the small reusable Expr -> bool checks used by
// identity predicates and case guards, grounded on original_source's
// expr/predicates.rs.

// IsZero reports whether e is the literal number/complex zero.
func IsZero(e Expr) bool {
	switch v := e.(type) {
	case Number:
		return numeric.IsZero(v.Value)
	case ComplexLit:
		return numeric.IsZero(v.Value.Re) && numeric.IsZero(v.Value.Im)
	default:
		return false
	}
}

// IsOne reports whether e is the literal number one.
func IsOne(e Expr) bool {
	if v, ok := e.(Number); ok {
		return numeric.Equal(v.Value, numeric.NewInt(1))
	}
	return false
}

// IsNegativeReal reports whether e is a real number literal with negative
// sign.
func IsNegativeReal(e Expr) bool {
	if v, ok := e.(Number); ok {
		return numeric.Sign(v.Value) < 0
	}
	return false
}

// IsConstant reports whether e contains no occurrence of the variable v —
// used by differentiation and simplification to short-circuit constant
// subtrees.
func IsConstant(e Expr, v string) bool {
	return !Any(e, func(sub Expr) bool {
		vr, ok := sub.(Var)
		return ok && vr.Name == v
	})
}

// IsNumberLiteral reports whether e is a Number, ComplexLit or InfiniteLit
// atom — the
// common guard for "is this an evaluable literal" used by partial
// evaluation.
func IsNumberLiteral(e Expr) bool {
	switch e.(type) {
	case Number, ComplexLit, InfiniteLit:
		return true
	default:
		return false
	}
}
