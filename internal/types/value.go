package types

// ColumnOrValue is either a column reference or a literal value.
type ColumnOrValue interface {
	AcceptColumnOrValue(v ColumnOrValueVisitor) string
}

// ColumnOrValueVisitor dispatches between the two ColumnOrValue cases.
// Literal kinds are dispatched further through ValueVisitor.
type ColumnOrValueVisitor interface {
	VisitColumn(c Column) string
	VisitValue(val Value) string
}

// Value is the closed set of literal kinds. Every literal is also a valid
// ColumnOrValue and a terminal Operation.
type Value interface {
	ColumnOrValue
	Operation
	AcceptValue(v ValueVisitor) string
}

// ValueVisitor has one method per literal kind.
type ValueVisitor interface {
	VisitStringValue(val StringValue) string
	VisitIntegerValue(val IntegerValue) string
	VisitFloatValue(val FloatValue) string
	VisitBooleanValue(val BooleanValue) string
	VisitDurationValue(val DurationValue) string
	VisitTimestampValue(val TimestampValue) string
}

// DurationUnit is the time unit of a DurationValue.
type DurationUnit string

const (
	Milliseconds DurationUnit = "milliseconds"
	Seconds      DurationUnit = "seconds"
	Minutes      DurationUnit = "minutes"
	Hours        DurationUnit = "hours"
	Days         DurationUnit = "days"
	Weeks        DurationUnit = "weeks"
	Months       DurationUnit = "months"
	Years        DurationUnit = "years"
)

// StringValue is a string literal.
type StringValue struct{ Val string }

// IntegerValue is an integer literal.
type IntegerValue struct{ Val int64 }

// FloatValue is a floating point literal.
type FloatValue struct{ Val float64 }

// BooleanValue is a boolean literal.
type BooleanValue struct{ Val bool }

// DurationValue is a time span literal, rendered as a dialect interval.
type DurationValue struct {
	Val  int64
	Unit DurationUnit
}

// TimestampValue is a point in time, given as seconds since the Unix epoch.
type TimestampValue struct{ SecondsSinceUnix int64 }

func (val StringValue) AcceptValue(v ValueVisitor) string    { return v.VisitStringValue(val) }
func (val IntegerValue) AcceptValue(v ValueVisitor) string   { return v.VisitIntegerValue(val) }
func (val FloatValue) AcceptValue(v ValueVisitor) string     { return v.VisitFloatValue(val) }
func (val BooleanValue) AcceptValue(v ValueVisitor) string   { return v.VisitBooleanValue(val) }
func (val DurationValue) AcceptValue(v ValueVisitor) string  { return v.VisitDurationValue(val) }
func (val TimestampValue) AcceptValue(v ValueVisitor) string { return v.VisitTimestampValue(val) }

func (val StringValue) AcceptColumnOrValue(v ColumnOrValueVisitor) string  { return v.VisitValue(val) }
func (val IntegerValue) AcceptColumnOrValue(v ColumnOrValueVisitor) string { return v.VisitValue(val) }
func (val FloatValue) AcceptColumnOrValue(v ColumnOrValueVisitor) string   { return v.VisitValue(val) }
func (val BooleanValue) AcceptColumnOrValue(v ColumnOrValueVisitor) string { return v.VisitValue(val) }
func (val DurationValue) AcceptColumnOrValue(v ColumnOrValueVisitor) string {
	return v.VisitValue(val)
}
func (val TimestampValue) AcceptColumnOrValue(v ColumnOrValueVisitor) string {
	return v.VisitValue(val)
}

func (val StringValue) AcceptOperation(v OperationVisitor) string    { return v.VisitValue(val) }
func (val IntegerValue) AcceptOperation(v OperationVisitor) string   { return v.VisitValue(val) }
func (val FloatValue) AcceptOperation(v OperationVisitor) string     { return v.VisitValue(val) }
func (val BooleanValue) AcceptOperation(v OperationVisitor) string   { return v.VisitValue(val) }
func (val DurationValue) AcceptOperation(v OperationVisitor) string  { return v.VisitValue(val) }
func (val TimestampValue) AcceptOperation(v OperationVisitor) string { return v.VisitValue(val) }
