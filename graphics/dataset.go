// Package graphics implements the plot/contour data model: pure data
// generators over an XDataSet, evaluated against an expression-as-function
// and serialized as CBOR+base64 for embedding in HTML (spec.md §4.11).
package graphics

import (
	"fifi-core/algebra"
	"fifi-core/expr"
	"fifi-core/numeric"
)

// XDataSetKind selects which of the three generators an XDataSet uses.
type XDataSetKind int

const (
	Enumerated XDataSetKind = iota
	FromInterval
	FromStep
)

// Point counts per spec.md §4.11: "interval (yields ~200 points for 1D /
// ~50 for 2D)" and "step from n with stride 1 (yields 30 points)".
const (
	interval1DPoints = 200
	interval2DPoints = 50
	stepPoints       = 30
)

// XDataSet is one of: an explicit vector of x-values, an interval sampled
// at a fixed point count depending on dimensionality, or a step sequence
// starting at a value with stride 1.
type XDataSet struct {
	Kind XDataSetKind

	Enum []numeric.Number

	Interval  algebra.Interval
	TwoD      bool // selects the ~50-point interval sampling instead of ~200
	StepStart numeric.Number
}

// Generate materializes the dataset's x-values.
func (ds XDataSet) Generate() []numeric.Number {
	switch ds.Kind {
	case Enumerated:
		return ds.Enum
	case FromInterval:
		n := interval1DPoints
		if ds.TwoD {
			n = interval2DPoints
		}
		return sampleInterval(ds.Interval, n)
	case FromStep:
		out := make([]numeric.Number, stepPoints)
		for i := 0; i < stepPoints; i++ {
			out[i] = numeric.Add(ds.StepStart, numeric.NewInt(int64(i)))
		}
		return out
	default:
		return nil
	}
}

func sampleInterval(iv algebra.Interval, n int) []numeric.Number {
	left, lok := iv.Left.(expr.Number)
	right, rok := iv.Right.(expr.Number)
	if !lok || !rok || n < 2 {
		return nil
	}
	span := numeric.Sub(right.Value, left.Value)
	step, err := numeric.Div(span, numeric.NewInt(int64(n-1)))
	if err != nil {
		return nil
	}
	out := make([]numeric.Number, n)
	for i := 0; i < n; i++ {
		out[i] = numeric.Add(left.Value, numeric.Mul(step, numeric.NewInt(int64(i))))
	}
	return out
}
