package langmode

import (
	"strings"

	"fifi-core/expr"
	"fifi-core/graphics"
)

// graphicsCallNames are the call heads a GraphicsMode intercepts before
// delegating to its inner mode (spec.md §4.10's plotting commands build
// calls with these names to carry an already-evaluated payload through the
// stack; the command layer is responsible for constructing them).
var graphicsCallNames = map[string]bool{"plot": true, "contour": true}

// PayloadLookup resolves a graphics-bearing call to its rendered payload.
// The command/session layer supplies this, since only it knows how to
// re-evaluate a plot call's arguments into an XDataSet.
type PayloadLookup func(c expr.Call) (graphics.Payload, bool)

// GraphicsMode decorates an inner LanguageMode: any call whose name is a
// recognized graphics directive is rendered as the HTML span carrying its
// CBOR+base64 payload instead of being printed as an ordinary function call
// (spec.md §4.8: "a graphics mode that wraps graphics-payload expressions
// in an HTML span"). Every other expression is delegated unchanged, so
// GraphicsMode composes with any inner mode.
type GraphicsMode struct {
	Inner  LanguageMode
	Lookup PayloadLookup
}

func NewGraphicsMode(inner LanguageMode, lookup PayloadLookup) *GraphicsMode {
	return &GraphicsMode{Inner: inner, Lookup: lookup}
}

func (g *GraphicsMode) WriteHTML(eng *Engine, out *strings.Builder, e expr.Expr, contextPrecedence int) error {
	if call, ok := e.(expr.Call); ok && graphicsCallNames[call.Name] && eng.Settings.GraphicsEnabled {
		if payload, ok := g.Lookup(call); ok {
			span, err := graphics.ToHTMLSpan(payload)
			if err != nil {
				return err
			}
			out.WriteString(span)
			return nil
		}
	}
	return g.Inner.WriteHTML(eng, out, e, contextPrecedence)
}

// Parse is not reversible for GraphicsMode: an HTML span has no textual
// inverse a user would type, so parsing delegates straight to Inner, which
// never sees spans (spec.md §4.8: "modes with pretty output may expose a
// simpler reversible variant" — that simpler variant is Inner itself).
func (g *GraphicsMode) Parse(text string) (expr.Expr, error) {
	return g.Inner.Parse(text)
}
