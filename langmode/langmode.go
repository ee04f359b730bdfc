// Package langmode implements formatting and parsing of expressions in a
// textual surface syntax: write_to_html renders an Expr to HTML respecting
// operator precedence/associativity, and Parse reads it back (spec.md
// §4.8). A mode is "reversible" when its own output round-trips through its
// own Parse.
package langmode

import (
	"strings"

	"fifi-core/expr"
)

// DisplaySettings are the presentation knobs passed to a LanguageMode while
// writing (radix, graphics toggle). The modes in this package read only
// GraphicsEnabled; OutputRadix is carried but not read, so numbers always
// print in base 10. Mirrors stackmodel.DisplaySettings
// rather than importing it, to keep langmode independent of the stack
// layer — only the field shapes are shared.
type DisplaySettings struct {
	OutputRadix     int
	GraphicsEnabled bool
}

// LanguageMode is the open-recursion formatting/parsing contract: Write is
// called with an Engine carrying a reference to the TOP-level mode, so a
// decorator's delegate calls re-enter at the top rather than skipping
// decorators further out (spec.md §4.8: "holds a reference to the TOP-level
// language mode (enabling open recursion through decorators)").
type LanguageMode interface {
	// WriteHTML renders e as HTML into out, at the given context
	// precedence (the minimum precedence e must print at without
	// parenthesization).
	WriteHTML(eng *Engine, out *strings.Builder, e expr.Expr, contextPrecedence int) error

	// Parse reads text back into an Expr.
	Parse(text string) (expr.Expr, error)
}

// Engine bundles the top-level mode (for open recursion) and display
// settings every Write call needs.
type Engine struct {
	Top      LanguageMode
	Settings DisplaySettings
}

func NewEngine(top LanguageMode, settings DisplaySettings) *Engine {
	return &Engine{Top: top, Settings: settings}
}

// Precedence levels per spec.md §6's table: "^ (right, 200) > {*, /}
// (195/190) > % (none, 190) > {+, -} (180)" — read as * at 195, / and % both
// at 190 (% additionally non-associative). Interval operators print looser
// than any arithmetic operator (spec.md §3's BNF nests intervals around
// arithmetic expressions, never inside one without parens).
const (
	PrecInterval = 170
	PrecAddSub   = 180
	PrecDivMod   = 190
	PrecMul      = 195
	PrecPow      = 200
	PrecAtom     = 1000
)

// Associativity distinguishes how an operator's own precedence extends to
// its operands.
type Associativity int

const (
	LeftAssoc Associativity = iota
	RightAssoc
	NoAssoc
)

// OperatorInfo describes one binary infix operator's printing precedence
// and associativity.
type OperatorInfo struct {
	Symbol   string
	Prec     int
	Assoc    Associativity
	Variadic bool // true for +, * whose n-ary form prints inline (spec.md §6)
}

// operators is the default language mode's infix operator table.
var operators = map[string]OperatorInfo{
	"^":    {Symbol: "^", Prec: PrecPow, Assoc: RightAssoc},
	"*":    {Symbol: "*", Prec: PrecMul, Assoc: LeftAssoc, Variadic: true},
	"/":    {Symbol: "/", Prec: PrecDivMod, Assoc: LeftAssoc},
	"%":    {Symbol: "%", Prec: PrecDivMod, Assoc: NoAssoc},
	"+":    {Symbol: "+", Prec: PrecAddSub, Assoc: LeftAssoc, Variadic: true},
	"-":    {Symbol: "-", Prec: PrecAddSub, Assoc: LeftAssoc},
	"..":   {Symbol: "..", Prec: PrecInterval, Assoc: NoAssoc},
	"..^":  {Symbol: "..^", Prec: PrecInterval, Assoc: NoAssoc},
	"^..":  {Symbol: "^..", Prec: PrecInterval, Assoc: NoAssoc},
	"^..^": {Symbol: "^..^", Prec: PrecInterval, Assoc: NoAssoc},
}

// LookupOperator reports the printing rule for a call head, if name is a
// known infix operator.
func LookupOperator(name string) (OperatorInfo, bool) {
	op, ok := operators[name]
	return op, ok
}
