package graphics

import (
	"encoding/base64"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fifi-core/expr"
	"fifi-core/rootfind"
)

// ErrWidespreadFailure is returned when evaluating a dataset fails at more
// than half its points; spec.md §4.11 treats that as one generic error
// rather than surfacing every per-point failure.
var ErrWidespreadFailure = errors.New("graphics: function failed at most evaluation points")

// Point is one (x, y) sample of a plot directive, kept as plain float64
// since the payload is consumed by a frontend renderer, not the symbolic
// engine.
type Point struct {
	X float64 `cbor:"x"`
	Y float64 `cbor:"y"`
}

// PlotDirective carries points for a 2D line/scatter plot.
type PlotDirective struct {
	Points []Point `cbor:"points"`
}

// ContourDirective carries a grid for a contour plot: Zs[i][j] is the
// function's value at (Xs[i], Ys[j]).
type ContourDirective struct {
	Xs []float64   `cbor:"xs"`
	Ys []float64   `cbor:"ys"`
	Zs [][]float64 `cbor:"zs"`
}

// EvaluatePlot iterates xs, evaluating f at each x, replacing evaluation
// failures with NaN (spec.md §4.11). If more than half the points fail,
// the whole directive is rejected with ErrWidespreadFailure.
func EvaluatePlot(f rootfind.ExprFunction, xs XDataSet) (PlotDirective, error) {
	values := xs.Generate()
	points := make([]Point, len(values))
	failures := 0
	for i, x := range values {
		xf := x.Float64()
		c, err := f.Eval(expr.Number{Value: x})
		if err != nil || !c.IsReal() {
			points[i] = Point{X: xf, Y: math.NaN()}
			failures++
			continue
		}
		points[i] = Point{X: xf, Y: c.Re.Float64()}
	}
	if len(values) > 0 && failures*2 > len(values) {
		return PlotDirective{}, ErrWidespreadFailure
	}
	return PlotDirective{Points: points}, nil
}

// EvaluateContour evaluates f(xvar=x, yvar=y) — f's Target must mention
// both xs's and ys's variable, substituted in two passes — over the
// Cartesian product of xs and ys, again replacing failures with NaN.
func EvaluateContour(f rootfind.ExprFunction, yVar string, xs, ys XDataSet) (ContourDirective, error) {
	xvals := xs.Generate()
	yvals := ys.Generate()
	cd := ContourDirective{
		Xs: make([]float64, len(xvals)),
		Ys: make([]float64, len(yvals)),
		Zs: make([][]float64, len(xvals)),
	}
	for i, x := range xvals {
		cd.Xs[i] = x.Float64()
	}
	for j, y := range yvals {
		cd.Ys[j] = y.Float64()
	}

	total := len(xvals) * len(yvals)
	failures := 0
	for i, x := range xvals {
		row := make([]float64, len(yvals))
		for j, y := range yvals {
			substituted, err := substituteVar(f.Target, yVar, expr.Number{Value: y})
			if err != nil {
				row[j] = math.NaN()
				failures++
				continue
			}
			row2 := rootfind.ExprFunction{Target: substituted, Var: f.Var, Functions: f.Functions, Mode: f.Mode}
			c, err := row2.Eval(expr.Number{Value: x})
			if err != nil || !c.IsReal() {
				row[j] = math.NaN()
				failures++
				continue
			}
			row[j] = c.Re.Float64()
		}
		cd.Zs[i] = row
	}
	if total > 0 && failures*2 > total {
		return ContourDirective{}, ErrWidespreadFailure
	}
	return cd, nil
}

func substituteVar(e expr.Expr, v string, val expr.Expr) (expr.Expr, error) {
	return expr.Walk(e, func(node expr.Expr) (expr.Expr, error) {
		if vr, ok := node.(expr.Var); ok && vr.Name == v {
			return val, nil
		}
		return node, nil
	})
}

// Payload is the handle-tagged envelope serialized to CBOR+base64 and
// embedded in an HTML span (spec.md §6: "Graphics payload serialization:
// CBOR then base64 (URL-safe standard)").
type Payload struct {
	Handle  uuid.UUID          `cbor:"handle"`
	Plot    *PlotDirective     `cbor:"plot,omitempty"`
	Contour *ContourDirective  `cbor:"contour,omitempty"`
}

func NewPlotPayload(p PlotDirective) Payload {
	return Payload{Handle: uuid.New(), Plot: &p}
}

func NewContourPayload(c ContourDirective) Payload {
	return Payload{Handle: uuid.New(), Contour: &c}
}

// Encode serializes the payload as CBOR then URL-safe base64.
func Encode(p Payload) (string, error) {
	data, err := cbor.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "graphics: cbor encode")
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Decode reverses Encode.
func Decode(s string) (Payload, error) {
	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return Payload{}, errors.Wrap(err, "graphics: base64 decode")
	}
	var p Payload
	if err := cbor.Unmarshal(data, &p); err != nil {
		return Payload{}, errors.Wrap(err, "graphics: cbor decode")
	}
	return p, nil
}

// ToHTMLSpan renders the payload as the data-carrying span the frontend
// (outside this core) reads (spec.md §6).
func ToHTMLSpan(p Payload) (string, error) {
	encoded, err := Encode(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<span data-graphics-flag="true" data-graphics-payload="%s"></span>`, encoded), nil
}
