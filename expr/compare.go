package expr

import (
	"strings"

	"fifi-core/numeric"
)

// rank orders the variants for Compare: Number < Complex < Infinite < Var <
// String < Call. This mirrors original_source's expr/ordering.rs, which the
// distilled specification does not spell out in full.
func rank(e Expr) int {
	switch e.(type) {
	case Number:
		return 0
	case ComplexLit:
		return 1
	case InfiniteLit:
		return 2
	case Var:
		return 3
	case Str:
		return 4
	case Call:
		return 5
	default:
		return 6
	}
}

// Compare gives Expr a total order, used by PERMITS_REORDERING
// canonicalization and polynomial term ordering. It returns -1, 0 or 1.
func Compare(a, b Expr) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return sign(ra - rb)
	}
	switch av := a.(type) {
	case Number:
		return numeric.Cmp(av.Value, b.(Number).Value)
	case ComplexLit:
		bv := b.(ComplexLit)
		if c := numeric.Cmp(av.Value.Re, bv.Value.Re); c != 0 {
			return c
		}
		return numeric.Cmp(av.Value.Im, bv.Value.Im)
	case InfiniteLit:
		return numeric.InfiniteCmp(av.Value, b.(InfiniteLit).Value)
	case Var:
		return strings.Compare(av.Name, b.(Var).Name)
	case Str:
		return strings.Compare(av.Value, b.(Str).Value)
	case Call:
		bv := b.(Call)
		// Arity first, then name, then lexicographic argument order.
		if len(av.Args) != len(bv.Args) {
			return sign(len(av.Args) - len(bv.Args))
		}
		if c := strings.Compare(av.Name, bv.Name); c != 0 {
			return c
		}
		for i := range av.Args {
			if c := Compare(av.Args[i], bv.Args[i]); c != 0 {
				return c
			}
		}
		return 0
	default:
		return 0
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// SortExprs sorts a slice of Expr in place by Compare, used when a
// function's PERMITS_REORDERING flag allows the simplifier to canonicalize
// argument order.
func SortExprs(es []Expr) {
	// Simple insertion sort: argument lists for commutative ops are small,
	// and this avoids pulling in sort.Slice's interface-closure overhead
	// for a hot simplifier path.
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && Compare(es[j-1], es[j]) > 0; j-- {
			es[j-1], es[j] = es[j], es[j-1]
		}
	}
}
