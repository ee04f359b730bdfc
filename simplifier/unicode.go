package simplifier

import "fifi-core/expr"

// unicodeAliases maps Unicode math symbols, which the language-mode parser
// may admit as convenience spellings, to the ASCII call/var names the
// function table and constant table register under. √ and ≈ map to "sqrt"
// and "approx", which the default function table does not register, so
// calls under those names stay unevaluated.
var unicodeAliases = map[string]string{
	"×": "*",
	"÷": "/",
	"−": "-",
	"√": "sqrt",
	"π": "pi",
	"∞": "inf",
	"≤": "<=",
	"≥": ">=",
	"≠": "!=",
	"≈": "approx",
}

// UnicodeAlias rewrites Call and Var nodes whose name is a known Unicode
// alias to its ASCII equivalent (spec.md §4.3's "Unicode-to-ASCII alias
// simplifier").
type UnicodeAlias struct{}

func (UnicodeAlias) SimplifyExprPart(e expr.Expr, ctx *Context) (expr.Expr, error) {
	switch v := e.(type) {
	case expr.Call:
		if ascii, ok := unicodeAliases[v.Name]; ok {
			return expr.Call{Name: ascii, Args: v.Args}, nil
		}
	case expr.Var:
		if ascii, ok := unicodeAliases[v.Name]; ok {
			return expr.Var{Name: ascii}, nil
		}
	}
	return e, nil
}

// NewUnicodeAlias returns the decorator as a full tree Simplifier.
func NewUnicodeAlias() Simplifier { return Wrap(UnicodeAlias{}) }
