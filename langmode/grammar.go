package langmode

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"fifi-core/algebra"
	"fifi-core/expr"
)

// exprLexer tokenizes the default expression syntax (spec.md §6). Order
// matters: longer interval operators must be tried before the bare "^"
// power token, and Ratio/Float before Int so "3:4" and "1.5" aren't split.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Ratio", Pattern: `[0-9]+:[0-9]+`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "IntervalOp", Pattern: `\^\.\.\^|\.\.\^|\^\.\.|\.\.`},
	{Name: "Ident", Pattern: `[A-Za-z$][A-Za-z$0-9']*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Op", Pattern: `[-+*/%^]`},
})

var exprParser = participle.MustBuild[intervalNode](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// The grammar is a standard precedence-climbing ladder: interval (loosest)
// > additive > multiplicative/mod > power (right-assoc) > unary minus >
// atom, so -2^2 parses as (-2)^2. The additive and multiplicative levels
// are left-associative via a "first, rest*" shape; power recurses on its
// RHS for right associativity; an interval takes at most one operator.

type intervalNode struct {
	Left  *addNode `@@`
	Op    *string  `( @IntervalOp`
	Right *addNode `  @@ )?`
}

type addNode struct {
	Left *mulNode     `@@`
	Rest []*addOpNode `@@*`
}

type addOpNode struct {
	Op    string   `@("+" | "-")`
	Right *mulNode `@@`
}

type mulNode struct {
	Left *powNode     `@@`
	Rest []*mulOpNode `@@*`
}

type mulOpNode struct {
	Op    string   `@("*" | "/" | "%")`
	Right *powNode `@@`
}

// powNode recurses into itself on the RHS for right associativity: x^y^z
// parses as x^(y^z).
type powNode struct {
	Base *unaryNode `@@`
	Exp  *powNode   `( "^" @@ )?`
}

type unaryNode struct {
	Neg  bool      `@"-"?`
	Atom *atomNode `@@`
}

type atomNode struct {
	Ratio   *string       `( @Ratio`
	Float   *string       `| @Float`
	Int     *string       `| @Int`
	Call    *callNode     `| @@`
	Var     *string       `| @Ident`
	Paren   *intervalNode `| "(" @@ ")" )`
}

type callNode struct {
	Name string          `@Ident "("`
	Args []*intervalNode `( @@ ( "," @@ )* )? ")"`
}

// Parse implements LanguageMode.Parse for DefaultMode.
func (m *DefaultMode) Parse(text string) (expr.Expr, error) {
	node, err := exprParser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	return node.toExpr()
}

func (n *intervalNode) toExpr() (expr.Expr, error) {
	left, err := n.Left.toExpr()
	if err != nil {
		return nil, err
	}
	if n.Op == nil {
		return left, nil
	}
	right, err := n.Right.toExpr()
	if err != nil {
		return nil, err
	}
	iv, _ := algebra.IntervalFromExpr(expr.NewCall(*n.Op, left, right))
	return iv.ToExpr(), nil
}

func (n *addNode) toExpr() (expr.Expr, error) {
	acc, err := n.Left.toExpr()
	if err != nil {
		return nil, err
	}
	for _, r := range n.Rest {
		rhs, err := r.Right.toExpr()
		if err != nil {
			return nil, err
		}
		acc = expr.NewCall(r.Op, acc, rhs)
	}
	return acc, nil
}

func (n *mulNode) toExpr() (expr.Expr, error) {
	acc, err := n.Left.toExpr()
	if err != nil {
		return nil, err
	}
	for _, r := range n.Rest {
		rhs, err := r.Right.toExpr()
		if err != nil {
			return nil, err
		}
		acc = expr.NewCall(r.Op, acc, rhs)
	}
	return acc, nil
}

func (n *powNode) toExpr() (expr.Expr, error) {
	base, err := n.Base.toExpr()
	if err != nil {
		return nil, err
	}
	if n.Exp == nil {
		return base, nil
	}
	exp, err := n.Exp.toExpr()
	if err != nil {
		return nil, err
	}
	return expr.NewCall("^", base, exp), nil
}

func (n *unaryNode) toExpr() (expr.Expr, error) {
	atom, err := n.Atom.toExpr()
	if err != nil {
		return nil, err
	}
	if n.Neg {
		return expr.NewCall("negate", atom), nil
	}
	return atom, nil
}

func (n *atomNode) toExpr() (expr.Expr, error) {
	switch {
	case n.Ratio != nil:
		r, err := parseRatio(*n.Ratio)
		if err != nil {
			return nil, err
		}
		return expr.Number{Value: r}, nil
	case n.Float != nil:
		f, err := parseFloat(*n.Float)
		if err != nil {
			return nil, err
		}
		return expr.Number{Value: f}, nil
	case n.Int != nil:
		i, err := parseBigInt(*n.Int)
		if err != nil {
			return nil, err
		}
		return expr.Number{Value: i}, nil
	case n.Call != nil:
		return n.Call.toExpr()
	case n.Var != nil:
		return expr.Var{Name: *n.Var}, nil
	case n.Paren != nil:
		return n.Paren.toExpr()
	}
	return nil, errUnreachableAtom
}

func (n *callNode) toExpr() (expr.Expr, error) {
	args := make([]expr.Expr, len(n.Args))
	for i, a := range n.Args {
		e, err := a.toExpr()
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	return expr.NewCall(n.Name, args...), nil
}
