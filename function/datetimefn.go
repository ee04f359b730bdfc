package function

import (
	"time"

	"fifi-core/expr"
	"fifi-core/numeric"
)

// DateTimeLit is not a distinct Expr variant; datetime values are carried
// as opaque strings (ISO-8601 text) through the expression tree and
// parsed/formatted at the boundary, matching spec.md's Non-goal excluding
// the full datetime grammar from the core.
var dtParser numeric.DateTimeParser = numeric.ISO8601Parser{}

// registerDateTime wires datetime_rel(datetimeStr, seconds) -> datetimeStr,
// the one datetime arithmetic operation spec.md §4.4 names explicitly.
func registerDateTime(t *Table) {
	t.Register(NewFunction("datetime_rel").
		WithCase(Case2(expr.ToStr, expr.ToNumber, func(s string, seconds numeric.Number, ctx *EvalContext) (expr.Expr, CaseStatus, error) {
			dt, err := dtParser.Parse(s)
			if err != nil {
				return nil, Failure, err
			}
			f, _ := seconds.AsFloat().Float64()
			result := dt.AddDuration(time.Duration(f * float64(time.Second)))
			return expr.Str{Value: result.String()}, Success, nil
		})).
		Build())
}
