package langmode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/expr"
	"fifi-core/graphics"
	"fifi-core/langmode"
	"fifi-core/numeric"
)

func n(i int64) expr.Expr { return expr.Number{Value: numeric.NewInt(i)} }

func render(t *testing.T, m langmode.LanguageMode, e expr.Expr) string {
	t.Helper()
	s, err := langmode.Render(m, langmode.DisplaySettings{OutputRadix: 10}, e)
	require.NoError(t, err)
	return s
}

func TestWriteAddDoesNotParenthesizeLeftChild(t *testing.T) {
	m := langmode.NewDefaultMode()
	e := expr.NewCall("+", expr.NewCall("+", n(1), n(2)), n(3))
	assert.Equal(t, "1 + 2 + 3", render(t, m, e))
}

func TestWriteSubtractParenthesizesRightChild(t *testing.T) {
	m := langmode.NewDefaultMode()
	e := expr.NewCall("-", n(1), expr.NewCall("-", n(2), n(3)))
	assert.Equal(t, "1 - (2 - 3)", render(t, m, e))
}

func TestWritePowerIsRightAssociativeWithoutParens(t *testing.T) {
	m := langmode.NewDefaultMode()
	e := expr.NewCall("^", n(2), expr.NewCall("^", n(3), n(4)))
	assert.Equal(t, "2 ^ 3 ^ 4", render(t, m, e))
}

func TestWriteMulBindsTighterThanAdd(t *testing.T) {
	m := langmode.NewDefaultMode()
	e := expr.NewCall("+", expr.NewCall("*", n(2), n(3)), n(4))
	assert.Equal(t, "2 * 3 + 4", render(t, m, e))
}

func TestWriteAddInsideMulGetsParenthesized(t *testing.T) {
	m := langmode.NewDefaultMode()
	e := expr.NewCall("*", expr.NewCall("+", n(2), n(3)), n(4))
	assert.Equal(t, "(2 + 3) * 4", render(t, m, e))
}

func TestWriteUnknownHeadPrintsAsFunctionCall(t *testing.T) {
	m := langmode.NewDefaultMode()
	e := expr.NewCall("ln", n(10))
	assert.Equal(t, "ln(10)", render(t, m, e))
}

func TestParseSimpleArithmeticRespectsPrecedence(t *testing.T) {
	m := langmode.NewDefaultMode()
	got, err := m.Parse("2 + 3 * 4")
	require.NoError(t, err)
	want := expr.NewCall("+", n(2), expr.NewCall("*", n(3), n(4)))
	assert.True(t, expr.Equal(want, got))
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	m := langmode.NewDefaultMode()
	got, err := m.Parse("2 ^ 3 ^ 2")
	require.NoError(t, err)
	want := expr.NewCall("^", n(2), expr.NewCall("^", n(3), n(2)))
	assert.True(t, expr.Equal(want, got))
}

func TestParseFunctionCallWithArgs(t *testing.T) {
	m := langmode.NewDefaultMode()
	got, err := m.Parse("ln(2, 3)")
	require.NoError(t, err)
	want := expr.NewCall("ln", n(2), n(3))
	assert.True(t, expr.Equal(want, got))
}

func TestParseIntervalOperators(t *testing.T) {
	m := langmode.NewDefaultMode()
	got, err := m.Parse("1 ..^ 5")
	require.NoError(t, err)
	want := expr.NewCall("..^", n(1), n(5))
	assert.True(t, expr.Equal(want, got))
}

func TestParseRatioLiteral(t *testing.T) {
	m := langmode.NewDefaultMode()
	got, err := m.Parse("3:4")
	require.NoError(t, err)
	num, ok := got.(expr.Number)
	require.True(t, ok)
	assert.True(t, num.Value.IsRational())
}

func TestRoundTripParseThenWriteReproducesStructure(t *testing.T) {
	m := langmode.NewDefaultMode()
	original := "2 + 3 * 4"
	parsed, err := m.Parse(original)
	require.NoError(t, err)
	rendered := render(t, m, parsed)
	reparsed, err := m.Parse(rendered)
	require.NoError(t, err)
	assert.True(t, expr.Equal(parsed, reparsed))
}

func TestGraphicsModeEmbedsPayloadSpanForRecognizedCall(t *testing.T) {
	lookupCalled := false
	gm := langmode.NewGraphicsMode(langmode.NewDefaultMode(), func(c expr.Call) (graphics.Payload, bool) {
		lookupCalled = true
		return graphics.NewPlotPayload(graphics.PlotDirective{Points: []graphics.Point{{X: 1, Y: 1}}}), true
	})
	settings := langmode.DisplaySettings{GraphicsEnabled: true}
	out, err := langmode.Render(gm, settings, expr.NewCall("plot", n(1)))
	require.NoError(t, err)
	assert.True(t, lookupCalled)
	assert.Contains(t, out, `data-graphics-flag="true"`)
}

func TestGraphicsModeDelegatesNonGraphicsCalls(t *testing.T) {
	gm := langmode.NewGraphicsMode(langmode.NewDefaultMode(), func(c expr.Call) (graphics.Payload, bool) {
		t.Fatal("lookup should not be called for a non-graphics call")
		return graphics.Payload{}, false
	})
	settings := langmode.DisplaySettings{GraphicsEnabled: true}
	out, err := langmode.Render(gm, settings, expr.NewCall("+", n(1), n(2)))
	require.NoError(t, err)
	assert.Equal(t, "1 + 2", out)
}
