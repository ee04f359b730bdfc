package function

// NewDefaultTable builds the Table populated with every function the
// engine ships per spec.md §4.4's list.
func NewDefaultTable() *Table {
	t := NewTable()
	registerArithmetic(t)
	registerTranscendental(t)
	registerComparisons(t)
	registerComplexOps(t)
	registerSymbolic(t)
	registerStatistics(t)
	registerFunctor(t)
	registerBoolean(t)
	registerDateTime(t)
	registerStringVectorMatrix(t)
	return t
}
