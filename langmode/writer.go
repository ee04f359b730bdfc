package langmode

import (
	"fmt"
	"html"
	"strings"

	"fifi-core/algebra"
	"fifi-core/expr"
)

// DefaultMode is the default language mode: operator-precedence HTML
// printing plus a participle-driven parser for the inverse (spec.md §6's
// expression syntax). Operator trees, calls, variables and real numbers
// round-trip: Parse(WriteHTML(e)) then one default-simplifier pass
// reproduces e (spec.md §8). Complex literals print as "(re, im)" and
// strings print quoted; Parse reads neither form back.
type DefaultMode struct{}

func NewDefaultMode() *DefaultMode { return &DefaultMode{} }

// WriteHTML renders e, wrapping in parens only when e's own precedence is
// lower than contextPrecedence demands.
func (m *DefaultMode) WriteHTML(eng *Engine, out *strings.Builder, e expr.Expr, contextPrecedence int) error {
	switch v := e.(type) {
	case expr.Number:
		out.WriteString(html.EscapeString(v.Value.String()))
		return nil
	case expr.ComplexLit:
		fmt.Fprintf(out, "(%s, %s)", html.EscapeString(v.Value.Re.String()), html.EscapeString(v.Value.Im.String()))
		return nil
	case expr.InfiniteLit:
		out.WriteString(html.EscapeString(v.Value.String()))
		return nil
	case expr.Str:
		fmt.Fprintf(out, "%q", v.Value)
		return nil
	case expr.Var:
		out.WriteString(html.EscapeString(v.Name))
		return nil
	case expr.Call:
		return m.writeCall(eng, out, v, contextPrecedence)
	default:
		return fmt.Errorf("langmode: unknown expr type %T", e)
	}
}

func (m *DefaultMode) writeCall(eng *Engine, out *strings.Builder, c expr.Call, contextPrecedence int) error {
	if iv, ok := algebra.IntervalFromExpr(c); ok {
		return m.writeInterval(eng, out, iv, contextPrecedence)
	}

	op, isOp := LookupOperator(c.Name)
	if !isOp || (len(c.Args) != 2 && !(op.Variadic && len(c.Args) >= 2)) {
		return m.writeFunctionCall(eng, out, c)
	}

	needParens := op.Prec < contextPrecedence
	if needParens {
		out.WriteByte('(')
	}

	if op.Variadic && len(c.Args) > 2 {
		for i, a := range c.Args {
			if i > 0 {
				fmt.Fprintf(out, " %s ", op.Symbol)
			}
			if err := eng.Top.WriteHTML(eng, out, a, op.Prec); err != nil {
				return err
			}
		}
	} else {
		lhsPrec, rhsPrec := op.Prec, op.Prec
		switch op.Assoc {
		case LeftAssoc:
			rhsPrec = op.Prec + 1
		case RightAssoc:
			lhsPrec = op.Prec + 1
		case NoAssoc:
			lhsPrec, rhsPrec = op.Prec+1, op.Prec+1
		}
		if err := eng.Top.WriteHTML(eng, out, c.Args[0], lhsPrec); err != nil {
			return err
		}
		fmt.Fprintf(out, " %s ", op.Symbol)
		if err := eng.Top.WriteHTML(eng, out, c.Args[1], rhsPrec); err != nil {
			return err
		}
	}

	if needParens {
		out.WriteByte(')')
	}
	return nil
}

func (m *DefaultMode) writeInterval(eng *Engine, out *strings.Builder, iv algebra.Interval, contextPrecedence int) error {
	needParens := PrecInterval < contextPrecedence
	if needParens {
		out.WriteByte('(')
	}
	op := operators[iv.ToExpr().(expr.Call).Name]
	if err := eng.Top.WriteHTML(eng, out, iv.Left, PrecInterval+1); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s", op.Symbol)
	if err := eng.Top.WriteHTML(eng, out, iv.Right, PrecInterval+1); err != nil {
		return err
	}
	if needParens {
		out.WriteByte(')')
	}
	return nil
}

// writeFunctionCall prints a call whose head is not a known infix operator
// as name(arg, arg, ...) (spec.md §6: "A call whose head is not a known
// operator prints as name(arg, arg, ...)").
func (m *DefaultMode) writeFunctionCall(eng *Engine, out *strings.Builder, c expr.Call) error {
	out.WriteString(html.EscapeString(c.Name))
	out.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		if err := eng.Top.WriteHTML(eng, out, a, 0); err != nil {
			return err
		}
	}
	out.WriteByte(')')
	return nil
}

// Render is a convenience wrapper building a fresh Builder and Engine
// rooted at m, at the outermost (unparenthesized) context precedence.
func Render(m LanguageMode, settings DisplaySettings, e expr.Expr) (string, error) {
	eng := NewEngine(m, settings)
	var b strings.Builder
	if err := m.WriteHTML(eng, &b, e, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}
