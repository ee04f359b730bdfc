package expr

import "fifi-core/numeric"

// Equal is structural equality: two expressions are equal iff they have the
// same shape and equal leaves at every position.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && numeric.Equal(av.Value, bv.Value)
	case ComplexLit:
		bv, ok := b.(ComplexLit)
		return ok && numeric.ComplexEqual(av.Value, bv.Value)
	case InfiniteLit:
		bv, ok := b.(InfiniteLit)
		return ok && numeric.InfiniteEqual(av.Value, bv.Value)
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value
	case Var:
		bv, ok := b.(Var)
		return ok && av.Name == bv.Name
	case Call:
		bv, ok := b.(Call)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
