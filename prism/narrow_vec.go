package prism

// NarrowVec2 narrows a homogeneous []U into a heterogeneous (D1, D2) using
// one prism per position, reporting false (with zero values) on a length
// mismatch or any position's failure; the caller's slice is not modified. NarrowVec3/4 generalize to three and four positions; the
// function library's arity-4 cap (spec.md §4.4) means no larger arity is
// needed.
func NarrowVec2[U, D1, D2 any](p1 Prism[U, D1], p2 Prism[U, D2], us []U) (D1, D2, bool) {
	if len(us) != 2 {
		var z1 D1
		var z2 D2
		return z1, z2, false
	}
	d1, ok1, _ := p1.Narrow(us[0])
	d2, ok2, _ := p2.Narrow(us[1])
	if !ok1 || !ok2 {
		var z1 D1
		var z2 D2
		return z1, z2, false
	}
	return d1, d2, true
}

func NarrowVec3[U, D1, D2, D3 any](p1 Prism[U, D1], p2 Prism[U, D2], p3 Prism[U, D3], us []U) (D1, D2, D3, bool) {
	if len(us) != 3 {
		var z1 D1
		var z2 D2
		var z3 D3
		return z1, z2, z3, false
	}
	d1, ok1, _ := p1.Narrow(us[0])
	d2, ok2, _ := p2.Narrow(us[1])
	d3, ok3, _ := p3.Narrow(us[2])
	if !ok1 || !ok2 || !ok3 {
		var z1 D1
		var z2 D2
		var z3 D3
		return z1, z2, z3, false
	}
	return d1, d2, d3, true
}

func NarrowVec4[U, D1, D2, D3, D4 any](p1 Prism[U, D1], p2 Prism[U, D2], p3 Prism[U, D3], p4 Prism[U, D4], us []U) (D1, D2, D3, D4, bool) {
	if len(us) != 4 {
		var z1 D1
		var z2 D2
		var z3 D3
		var z4 D4
		return z1, z2, z3, z4, false
	}
	d1, ok1, _ := p1.Narrow(us[0])
	d2, ok2, _ := p2.Narrow(us[1])
	d3, ok3, _ := p3.Narrow(us[2])
	d4, ok4, _ := p4.Narrow(us[3])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		var z1 D1
		var z2 D2
		var z3 D3
		var z4 D4
		return z1, z2, z3, z4, false
	}
	return d1, d2, d3, d4, true
}
