package types

// Aggregation is the closed set of aggregate functions. Every aggregation
// is also an Operation, which is how the mutual recursion between the two
// families is expressed.
type Aggregation interface {
	Operation
	AcceptAggregation(v AggregationVisitor) string
}

// AggregationVisitor has one method per Aggregation variant.
type AggregationVisitor interface {
	VisitAvg(agg Avg) string
	VisitCount(agg Count) string
	VisitMax(agg Max) string
	VisitMin(agg Min) string
	VisitSum(agg Sum) string
}

// Avg averages the operand over the group.
type Avg struct{ Op Operation }

// Max takes the group maximum of the operand.
type Max struct{ Op Operation }

// Min takes the group minimum of the operand.
type Min struct{ Op Operation }

// Sum totals the operand over the group.
type Sum struct{ Op Operation }

// Count counts rows (Op nil renders *) or non-NULL operand values.
// Distinct only applies when Op is set.
type Count struct {
	Op       Operation
	Distinct bool
}

func (agg Avg) AcceptAggregation(v AggregationVisitor) string   { return v.VisitAvg(agg) }
func (agg Count) AcceptAggregation(v AggregationVisitor) string { return v.VisitCount(agg) }
func (agg Max) AcceptAggregation(v AggregationVisitor) string   { return v.VisitMax(agg) }
func (agg Min) AcceptAggregation(v AggregationVisitor) string   { return v.VisitMin(agg) }
func (agg Sum) AcceptAggregation(v AggregationVisitor) string   { return v.VisitSum(agg) }

func (agg Avg) AcceptOperation(v OperationVisitor) string   { return v.VisitAggregation(agg) }
func (agg Count) AcceptOperation(v OperationVisitor) string { return v.VisitAggregation(agg) }
func (agg Max) AcceptOperation(v OperationVisitor) string   { return v.VisitAggregation(agg) }
func (agg Min) AcceptOperation(v OperationVisitor) string   { return v.VisitAggregation(agg) }
func (agg Sum) AcceptOperation(v OperationVisitor) string   { return v.VisitAggregation(agg) }
