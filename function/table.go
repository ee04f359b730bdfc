package function

import "fifi-core/expr"

// Table is the registry of named functions, constructed once per session
// and shared by reference among all commands and simplifiers (spec.md §5).
type Table struct {
	records map[string]*Record
}

func NewTable() *Table {
	return &Table{records: map[string]*Record{}}
}

func (t *Table) Register(r *Record) {
	t.records[r.Name] = r
}

func (t *Table) Lookup(name string) (*Record, bool) {
	r, ok := t.records[name]
	return r, ok
}

// Evaluate tries name's registered cases in order against args. The three
// CaseStatus outcomes map directly to spec.md §4.3 step 2's three
// possibilities: matched==false means "no known case applies, try the next
// simplifier step"; matched==true with err!=nil means "matched but failed,
// leave the call un-reduced and surface err"; matched==true, err==nil means
// "replaced".
func (t *Table) Evaluate(name string, args []expr.Expr, ctx *EvalContext) (result expr.Expr, matched bool, err error) {
	rec, ok := t.records[name]
	if !ok {
		return nil, false, nil
	}
	for _, c := range rec.Cases {
		outcome := c(args, ctx)
		switch outcome.Status {
		case Success:
			return outcome.Result, true, nil
		case Failure:
			return expr.NewCall(name, args...), true, outcome.Err
		case NoMatch:
			continue
		}
	}
	return nil, false, nil
}

// IdentityElement reports whether e is the identity element for name's
// associative operator (e.g. 0 for "+"), per spec.md §4.3 step 1.
func (t *Table) IdentityElement(name string, e expr.Expr) bool {
	rec, ok := t.records[name]
	if !ok {
		return false
	}
	return rec.IsIdentity(e)
}

func (t *Table) FlagsOf(name string) (Flags, bool) {
	rec, ok := t.records[name]
	if !ok {
		return Flags{}, false
	}
	return rec.Flags, true
}

func (t *Table) DerivativeOf(name string) (DerivativeRule, bool) {
	rec, ok := t.records[name]
	if !ok || rec.Derivative == nil {
		return nil, false
	}
	return rec.Derivative, true
}
