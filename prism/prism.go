// Package prism implements the bidirectional partial-function abstraction
// used throughout fifi-core for typed pattern matching on expressions: "is
// this Expr an integer in range?", "is this Call a binary op with two
// complex arguments?" and so on. A Prism[U, D] asserts that D is (partially)
// embedded in U: Widen is total, Narrow is partial and returns the original
// U unchanged on failure so callers can recover it.
//
// The pattern generalizes the teacher's per-type toType/conversion helpers
// (robpike.io/ivy's value.Value.toType and value/index.go's index
// conversions) into a reusable, composable generic abstraction.
package prism

// Prism is a pair of functions asserting that D embeds into U.
//
// Laws (see spec.md §8):
//  1. Narrow(Widen(d)) == Ok(d) for all d.
//  2. If Narrow(u) == Err(u'), then u' == u (the original is returned
//     unchanged on failure, never a partially-converted value).
type Prism[U, D any] struct {
	Narrow func(U) (D, bool, U)
	Widen  func(D) U
}

// New builds a Prism from a narrow function returning (value, ok) and a
// widen function. The returned Prism's Narrow threads the original U back
// on failure automatically.
func New[U, D any](narrow func(U) (D, bool), widen func(D) U) Prism[U, D] {
	return Prism[U, D]{
		Narrow: func(u U) (D, bool, U) {
			d, ok := narrow(u)
			if !ok {
				var zero D
				return zero, false, u
			}
			return d, true, u
		},
		Widen: widen,
	}
}

// Identity is the prism between a type and itself.
func Identity[U any]() Prism[U, U] {
	return Prism[U, U]{
		Narrow: func(u U) (U, bool, U) { return u, true, u },
		Widen:  func(u U) U { return u },
	}
}

// Then composes two prisms end to end: U -> D -> E.
func Then[U, D, E any](p Prism[U, D], q Prism[D, E]) Prism[U, E] {
	return Prism[U, E]{
		Narrow: func(u U) (E, bool, U) {
			d, ok, u2 := p.Narrow(u)
			if !ok {
				var zero E
				return zero, false, u2
			}
			e, ok, _ := q.Narrow(d)
			if !ok {
				var zero E
				return zero, false, u2
			}
			return e, true, u2
		},
		Widen: func(e E) U {
			return p.Widen(q.Widen(e))
		},
	}
}

// Or tries p first, then q, on Narrow; Widen always goes through p. Or is
// only lawful when p and q's D-images are disjoint subsets of U — picking
// q.Widen would be just as valid when a value came from q's branch, but a
// single Widen direction is required for the type to remain a Prism, so
// callers needing to distinguish which branch matched should use a sum type
// as D instead of Or.
func Or[U, D any](p, q Prism[U, D]) Prism[U, D] {
	return Prism[U, D]{
		Narrow: func(u U) (D, bool, U) {
			if d, ok, u2 := p.Narrow(u); ok {
				return d, true, u2
			}
			return q.Narrow(u)
		},
		Widen: p.Widen,
	}
}

// Pair is a product prism over 2-tuples.
type Pair[A, B any] struct {
	First  A
	Second B
}

func Product[U1, D1, U2, D2 any](p Prism[U1, D1], q Prism[U2, D2]) Prism[Pair[U1, U2], Pair[D1, D2]] {
	return Prism[Pair[U1, U2], Pair[D1, D2]]{
		Narrow: func(u Pair[U1, U2]) (Pair[D1, D2], bool, Pair[U1, U2]) {
			d1, ok1, u1 := p.Narrow(u.First)
			d2, ok2, u2 := q.Narrow(u.Second)
			orig := Pair[U1, U2]{u1, u2}
			if !ok1 || !ok2 {
				return Pair[D1, D2]{}, false, orig
			}
			return Pair[D1, D2]{d1, d2}, true, orig
		},
		Widen: func(d Pair[D1, D2]) Pair[U1, U2] {
			return Pair[U1, U2]{p.Widen(d.First), q.Widen(d.Second)}
		},
	}
}

// Vector lifts a Prism[U, D] into a Prism over slices, recovering the
// original prefix (elements already narrowed successfully, plus the
// offending element and everything after it, untouched) on first failure.
func Vector[U, D any](p Prism[U, D]) Prism[[]U, []D] {
	return Prism[[]U, []D]{
		Narrow: func(us []U) ([]D, bool, []U) {
			ds := make([]D, 0, len(us))
			orig := make([]U, len(us))
			for i, u := range us {
				d, ok, u2 := p.Narrow(u)
				orig[i] = u2
				if !ok {
					// Recover the full original slice unchanged.
					copy(orig[i:], us[i:])
					return nil, false, orig
				}
				ds = append(ds, d)
			}
			return ds, true, orig
		},
		Widen: func(ds []D) []U {
			us := make([]U, len(ds))
			for i, d := range ds {
				us[i] = p.Widen(d)
			}
			return us
		},
	}
}

// Iso is an isomorphism: both directions are total, so it can be built
// directly into a Prism whose Narrow never fails.
func Iso[U, D any](to func(U) D, from func(D) U) Prism[U, D] {
	return Prism[U, D]{
		Narrow: func(u U) (D, bool, U) { return to(u), true, u },
		Widen:  from,
	}
}

// TryFrom builds a Prism from a conversion pair shaped like Go's common
// "parse, ok" idiom (the spec's conversion-via-TryFrom/From combinator).
func TryFrom[U, D any](tryFrom func(U) (D, error), from func(D) U) Prism[U, D] {
	return Prism[U, D]{
		Narrow: func(u U) (D, bool, U) {
			d, err := tryFrom(u)
			if err != nil {
				var zero D
				return zero, false, u
			}
			return d, true, u
		},
		Widen: from,
	}
}

// FixedArray2 narrows a []U of exactly length 2 into a Pair, recovering the
// original slice on arity mismatch.
func FixedArray2[U any]() Prism[[]U, Pair[U, U]] {
	return Prism[[]U, Pair[U, U]]{
		Narrow: func(us []U) (Pair[U, U], bool, []U) {
			if len(us) != 2 {
				return Pair[U, U]{}, false, us
			}
			return Pair[U, U]{us[0], us[1]}, true, us
		},
		Widen: func(p Pair[U, U]) []U { return []U{p.First, p.Second} },
	}
}
