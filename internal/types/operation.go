package types

// Operation is the closed set of scalar expression nodes. Terminal nodes are
// Column references and Value literals; every other variant owns its operand
// sub-trees. Aggregations are operations too, so Operation and Aggregation
// are mutually recursive.
//
// Dispatch goes through OperationVisitor; a dialect that misses a variant
// does not compile.
type Operation interface {
	AcceptOperation(v OperationVisitor) string
}

// OperationVisitor has one method per Operation variant. The terminal
// Column/Value methods are shared with ColumnOrValueVisitor.
type OperationVisitor interface {
	ColumnOrValueVisitor

	VisitAbs(op Abs) string
	VisitAggregation(agg Aggregation) string
	VisitCast(op Cast) string
	VisitCeil(op Ceil) string
	VisitCoalesce(op Coalesce) string
	VisitConcat(op Concat) string
	VisitCos(op Cos) string
	VisitDatePlusDuration(op DatePlusDuration) string
	VisitDay(op Day) string
	VisitDaysBetween(op DaysBetween) string
	VisitDivides(op Divides) string
	VisitExp(op Exp) string
	VisitFloor(op Floor) string
	VisitHour(op Hour) string
	VisitLength(op Length) string
	VisitLn(op Ln) string
	VisitLog2(op Log2) string
	VisitLower(op Lower) string
	VisitLTrim(op LTrim) string
	VisitMinus(op Minus) string
	VisitMinute(op Minute) string
	VisitMod(op Mod) string
	VisitMonth(op Month) string
	VisitMultiplies(op Multiplies) string
	VisitPlus(op Plus) string
	VisitReplace(op Replace) string
	VisitRound(op Round) string
	VisitRTrim(op RTrim) string
	VisitSecond(op Second) string
	VisitSin(op Sin) string
	VisitSqrt(op Sqrt) string
	VisitTan(op Tan) string
	VisitTrim(op Trim) string
	VisitUnixepoch(op Unixepoch) string
	VisitUpper(op Upper) string
	VisitWeekday(op Weekday) string
	VisitYear(op Year) string
}

// Arithmetic operators. Operands are parenthesized by every dialect so
// operator precedence is structurally unambiguous.
type (
	Plus       struct{ Op1, Op2 Operation }
	Minus      struct{ Op1, Op2 Operation }
	Multiplies struct{ Op1, Op2 Operation }
	Divides    struct{ Op1, Op2 Operation }
	Mod        struct{ Op1, Op2 Operation }
)

// Math functions.
type (
	Abs   struct{ Op1 Operation }
	Ceil  struct{ Op1 Operation }
	Floor struct{ Op1 Operation }
	Exp   struct{ Op1 Operation }
	Ln    struct{ Op1 Operation }
	Log2  struct{ Op1 Operation }
	Sqrt  struct{ Op1 Operation }
	Sin   struct{ Op1 Operation }
	Cos   struct{ Op1 Operation }
	Tan   struct{ Op1 Operation }
)

// Round rounds Op1 to Op2 decimal places.
type Round struct{ Op1, Op2 Operation }

// String functions.
type (
	Lower  struct{ Op1 Operation }
	Upper  struct{ Op1 Operation }
	Length struct{ Op1 Operation }
)

// Trim variants strip the characters given by Op2 from Op1.
type (
	Trim  struct{ Op1, Op2 Operation }
	LTrim struct{ Op1, Op2 Operation }
	RTrim struct{ Op1, Op2 Operation }
)

// Replace substitutes occurrences of Op2 in Op1 with Op3.
type Replace struct{ Op1, Op2, Op3 Operation }

// Concat joins the rendered operands with the dialect's string
// concatenation operator or function.
type Concat struct{ Ops []Operation }

// Date/time extraction.
type (
	Year      struct{ Op1 Operation }
	Month     struct{ Op1 Operation }
	Day       struct{ Op1 Operation }
	Hour      struct{ Op1 Operation }
	Minute    struct{ Op1 Operation }
	Second    struct{ Op1 Operation }
	Weekday   struct{ Op1 Operation }
	Unixepoch struct{ Op1 Operation }
)

// DaysBetween is the number of whole days from Op1 to Op2.
type DaysBetween struct{ Op1, Op2 Operation }

// DatePlusDuration shifts a date expression by one or more durations,
// left-associative.
type DatePlusDuration struct {
	Date      Operation
	Durations []DurationValue
}

// Cast converts Op1 to TargetType.
type Cast struct {
	Op1        Operation
	TargetType ColumnType
}

// Coalesce returns the first non-NULL operand.
type Coalesce struct{ Ops []Operation }

func (op Plus) AcceptOperation(v OperationVisitor) string       { return v.VisitPlus(op) }
func (op Minus) AcceptOperation(v OperationVisitor) string      { return v.VisitMinus(op) }
func (op Multiplies) AcceptOperation(v OperationVisitor) string { return v.VisitMultiplies(op) }
func (op Divides) AcceptOperation(v OperationVisitor) string    { return v.VisitDivides(op) }
func (op Mod) AcceptOperation(v OperationVisitor) string        { return v.VisitMod(op) }

func (op Abs) AcceptOperation(v OperationVisitor) string   { return v.VisitAbs(op) }
func (op Ceil) AcceptOperation(v OperationVisitor) string  { return v.VisitCeil(op) }
func (op Floor) AcceptOperation(v OperationVisitor) string { return v.VisitFloor(op) }
func (op Exp) AcceptOperation(v OperationVisitor) string   { return v.VisitExp(op) }
func (op Ln) AcceptOperation(v OperationVisitor) string    { return v.VisitLn(op) }
func (op Log2) AcceptOperation(v OperationVisitor) string  { return v.VisitLog2(op) }
func (op Sqrt) AcceptOperation(v OperationVisitor) string  { return v.VisitSqrt(op) }
func (op Sin) AcceptOperation(v OperationVisitor) string   { return v.VisitSin(op) }
func (op Cos) AcceptOperation(v OperationVisitor) string   { return v.VisitCos(op) }
func (op Tan) AcceptOperation(v OperationVisitor) string   { return v.VisitTan(op) }
func (op Round) AcceptOperation(v OperationVisitor) string { return v.VisitRound(op) }

func (op Lower) AcceptOperation(v OperationVisitor) string   { return v.VisitLower(op) }
func (op Upper) AcceptOperation(v OperationVisitor) string   { return v.VisitUpper(op) }
func (op Length) AcceptOperation(v OperationVisitor) string  { return v.VisitLength(op) }
func (op Trim) AcceptOperation(v OperationVisitor) string    { return v.VisitTrim(op) }
func (op LTrim) AcceptOperation(v OperationVisitor) string   { return v.VisitLTrim(op) }
func (op RTrim) AcceptOperation(v OperationVisitor) string   { return v.VisitRTrim(op) }
func (op Replace) AcceptOperation(v OperationVisitor) string { return v.VisitReplace(op) }
func (op Concat) AcceptOperation(v OperationVisitor) string  { return v.VisitConcat(op) }

func (op Year) AcceptOperation(v OperationVisitor) string      { return v.VisitYear(op) }
func (op Month) AcceptOperation(v OperationVisitor) string     { return v.VisitMonth(op) }
func (op Day) AcceptOperation(v OperationVisitor) string       { return v.VisitDay(op) }
func (op Hour) AcceptOperation(v OperationVisitor) string      { return v.VisitHour(op) }
func (op Minute) AcceptOperation(v OperationVisitor) string    { return v.VisitMinute(op) }
func (op Second) AcceptOperation(v OperationVisitor) string    { return v.VisitSecond(op) }
func (op Weekday) AcceptOperation(v OperationVisitor) string   { return v.VisitWeekday(op) }
func (op Unixepoch) AcceptOperation(v OperationVisitor) string { return v.VisitUnixepoch(op) }
func (op DaysBetween) AcceptOperation(v OperationVisitor) string {
	return v.VisitDaysBetween(op)
}
func (op DatePlusDuration) AcceptOperation(v OperationVisitor) string {
	return v.VisitDatePlusDuration(op)
}

func (op Cast) AcceptOperation(v OperationVisitor) string     { return v.VisitCast(op) }
func (op Coalesce) AcceptOperation(v OperationVisitor) string { return v.VisitCoalesce(op) }
