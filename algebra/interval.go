package algebra

import (
	"fifi-core/expr"
	"fifi-core/numeric"
)

// IntervalType names which ends of an Interval are open.
type IntervalType int

const (
	Closed IntervalType = iota
	LeftOpen
	RightOpen
	FullOpen
)

// intervalOp maps each IntervalType to the infix operator name the default
// language mode parses it from (spec.md §6: .. ..^ ^.. ^..^).
var intervalOp = map[IntervalType]string{
	Closed:    "..",
	RightOpen: "..^",
	LeftOpen:  "^..",
	FullOpen:  "^..^",
}

var opToIntervalType = func() map[string]IntervalType {
	m := map[string]IntervalType{}
	for t, op := range intervalOp {
		m[op] = t
	}
	return m
}()

// Interval is (left, type, right), normalized so left <= right when both
// bounds are comparable numeric literals.
type Interval struct {
	Left  expr.Expr
	Type  IntervalType
	Right expr.Expr
}

func IntervalFromExpr(e expr.Expr) (Interval, bool) {
	c, ok := e.(expr.Call)
	if !ok || len(c.Args) != 2 {
		return Interval{}, false
	}
	t, ok := opToIntervalType[c.Name]
	if !ok {
		return Interval{}, false
	}
	iv := Interval{Left: c.Args[0], Type: t, Right: c.Args[1]}
	return iv.Normalize(), true
}

func (iv Interval) ToExpr() expr.Expr {
	return expr.NewCall(intervalOp[iv.Type], iv.Left, iv.Right)
}

// Normalize swaps Left and Right (and mirrors the open/closed ends) when
// both bounds are numeric literals and Left > Right, so the invariant
// "left <= right" (spec.md §3) holds.
func (iv Interval) Normalize() Interval {
	ln, lok := iv.Left.(expr.Number)
	rn, rok := iv.Right.(expr.Number)
	if !lok || !rok || numeric.Cmp(ln.Value, rn.Value) <= 0 {
		return iv
	}
	mirrored := iv.Type
	switch iv.Type {
	case LeftOpen:
		mirrored = RightOpen
	case RightOpen:
		mirrored = LeftOpen
	}
	return Interval{Left: iv.Right, Type: mirrored, Right: iv.Left}
}

// Contains reports whether x lies within the interval, for numeric bounds.
func (iv Interval) Contains(x numeric.Number) bool {
	ln, lok := iv.Left.(expr.Number)
	rn, rok := iv.Right.(expr.Number)
	if !lok || !rok {
		return false
	}
	loCmp := numeric.Cmp(x, ln.Value)
	hiCmp := numeric.Cmp(x, rn.Value)
	loOK := loCmp > 0 || (loCmp == 0 && iv.Type != LeftOpen && iv.Type != FullOpen)
	hiOK := hiCmp < 0 || (hiCmp == 0 && iv.Type != RightOpen && iv.Type != FullOpen)
	return loOK && hiOK
}
