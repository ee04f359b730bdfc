package command

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fifi-core/algebra"
	"fifi-core/expr"
	"fifi-core/graphics"
	"fifi-core/numeric"
	"fifi-core/rootfind"
	"fifi-core/stackmodel"
)

// GraphicsStore holds evaluated plot/contour payloads keyed by handle, so a
// stack value can carry just the handle (as a "plot"/"contour" call whose
// sole argument is the handle string) while langmode.GraphicsMode's
// PayloadLookup resolves the full payload lazily at render time (spec.md
// §4.11, §6's "a render_graphics request correlated with the directive
// that produced it" — see SPEC_FULL.md's IDs note). One store is shared
// across a session's lifetime; original_source has no analogue since its
// equivalent command eagerly embeds the evaluated directive in the
// expression tree itself rather than behind a handle indirection.
type GraphicsStore struct {
	mu       sync.Mutex
	payloads map[uuid.UUID]graphics.Payload
}

func NewGraphicsStore() *GraphicsStore {
	return &GraphicsStore{payloads: map[uuid.UUID]graphics.Payload{}}
}

// Put registers p and returns the Call marking its handle.
func (s *GraphicsStore) Put(callName string, p graphics.Payload) expr.Expr {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[p.Handle] = p
	return expr.NewCall(callName, expr.Str{Value: p.Handle.String()})
}

// Lookup implements langmode.PayloadLookup.
func (s *GraphicsStore) Lookup(c expr.Call) (graphics.Payload, bool) {
	if len(c.Args) != 1 {
		return graphics.Payload{}, false
	}
	str, ok := c.Args[0].(expr.Str)
	if !ok {
		return graphics.Payload{}, false
	}
	id, err := uuid.Parse(str.Value)
	if err != nil {
		return graphics.Payload{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payloads[id]
	return p, ok
}

// ErrBadRangeSpec is wrapped when a range-spec argument isn't an interval,
// a vector, or a bare step-start number (spec.md §4.11's XDataSet kinds).
var ErrBadRangeSpec = errors.New("command: invalid range specification")

// parseXDataSet interprets e as one of XDataSet's three shapes: an
// interval (`a..b` etc.), a vector literal (enumerated points), or a bare
// number (a step sequence starting there).
func parseXDataSet(e expr.Expr, twoD bool) (graphics.XDataSet, error) {
	if iv, ok := algebra.IntervalFromExpr(e); ok {
		return graphics.XDataSet{Kind: graphics.FromInterval, Interval: iv, TwoD: twoD}, nil
	}
	if vec, ok := algebra.VectorFromExpr(e); ok {
		nums := make([]numeric.Number, 0, len(vec))
		for _, el := range vec {
			n, ok := el.(expr.Number)
			if !ok {
				return graphics.XDataSet{}, errors.Wrapf(ErrBadRangeSpec, "vector element %s is not a number", el)
			}
			nums = append(nums, n.Value)
		}
		return graphics.XDataSet{Kind: graphics.Enumerated, Enum: nums}, nil
	}
	if n, ok := e.(expr.Number); ok {
		return graphics.XDataSet{Kind: graphics.FromStep, StepStart: n.Value}, nil
	}
	return graphics.XDataSet{}, errors.Wrapf(ErrBadRangeSpec, "%s", e)
}

// PlotCommand takes a variable name as its argument, pops a range-spec
// expression and then the target expression (range above target, so the
// stack reads target, range, top), evaluates the target over the range via
// graphics.EvaluatePlot, and pushes a `plot(handle)` marker expression
// (spec.md §4.10's "plotting", grounded on original_source's
// command/graphics.rs PlotCommand, adapted from its "pop precomputed X and
// Y vectors" shape to this package's "pop a function and a range, evaluate
// here" shape since fifi-core's XDataSet/EvaluatePlot already does that
// evaluation). Respects the keep modifier.
type PlotCommand struct{}

func (PlotCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	v, err := validateUnary(args, "variable name", StringToVar)
	if err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	rangeExpr, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "plot needs 2 elements")
	}
	target, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "plot needs 2 elements")
	}
	xs, err := parseXDataSet(rangeExpr, false)
	if err != nil {
		return CommandOutput{}, err
	}
	fn := rootfind.ExprFunction{Target: target, Var: v.Name, Functions: ctx.Functions, Mode: state.Mode}
	directive, err := graphics.EvaluatePlot(fn, xs)
	if err != nil {
		return CommandOutput{}, err
	}
	marker := ctx.Graphics.Put("plot", graphics.NewPlotPayload(directive))
	stack.Push(marker)
	stack.Finish()
	return Success(), nil
}

// ContourCommand takes the function's two variable names as arguments,
// pops the y-range, the x-range, and then the target expression (in that
// order, so the stack reads target, x-range, y-range, top), evaluates via
// graphics.EvaluateContour, and pushes a `contour(handle)` marker
// expression. Respects the keep modifier.
type ContourCommand struct{}

func (ContourCommand) Run(state *stackmodel.UndoableState, args []string, ctx *CommandContext) (CommandOutput, error) {
	xVar, yVar, err := validateBinary(args, "x variable name", StringToVar, "y variable name", StringToVar)
	if err != nil {
		return CommandOutput{}, err
	}
	state.Cut()
	stack := NewKeepableStack(state.Stack, ctx.Opts.KeepModifier)
	yRangeExpr, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "contour needs 3 elements")
	}
	xRangeExpr, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "contour needs 3 elements")
	}
	target, ok := stack.Pop()
	if !ok {
		return CommandOutput{}, errors.Wrap(ErrStackUnderflow, "contour needs 3 elements")
	}
	xs, err := parseXDataSet(xRangeExpr, true)
	if err != nil {
		return CommandOutput{}, err
	}
	ys, err := parseXDataSet(yRangeExpr, true)
	if err != nil {
		return CommandOutput{}, err
	}
	fn := rootfind.ExprFunction{Target: target, Var: xVar.Name, Functions: ctx.Functions, Mode: state.Mode}
	directive, err := graphics.EvaluateContour(fn, yVar.Name, xs, ys)
	if err != nil {
		return CommandOutput{}, err
	}
	marker := ctx.Graphics.Put("contour", graphics.NewContourPayload(directive))
	stack.Push(marker)
	stack.Finish()
	return Success(), nil
}
