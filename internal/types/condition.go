package types

// Condition is the closed set of boolean predicate nodes.
type Condition interface {
	AcceptCondition(v ConditionVisitor) string
}

// ConditionVisitor has one method per Condition variant.
type ConditionVisitor interface {
	VisitAnd(cond And) string
	VisitOr(cond Or) string
	VisitNot(cond Not) string
	VisitEqual(cond Equal) string
	VisitNotEqual(cond NotEqual) string
	VisitGreaterThan(cond GreaterThan) string
	VisitGreaterEqual(cond GreaterEqual) string
	VisitLesserThan(cond LesserThan) string
	VisitLesserEqual(cond LesserEqual) string
	VisitIsNull(cond IsNull) string
	VisitIsNotNull(cond IsNotNull) string
	VisitLike(cond Like) string
	VisitNotLike(cond NotLike) string
	VisitIn(cond In) string
	VisitNotIn(cond NotIn) string
}

// Logical connectives. Sub-conditions are parenthesized when rendered.
type (
	And struct{ Cond1, Cond2 Condition }
	Or  struct{ Cond1, Cond2 Condition }
	Not struct{ Cond Condition }
)

// Binary comparisons between two operations.
type (
	Equal        struct{ Op1, Op2 Operation }
	NotEqual     struct{ Op1, Op2 Operation }
	GreaterThan  struct{ Op1, Op2 Operation }
	GreaterEqual struct{ Op1, Op2 Operation }
	LesserThan   struct{ Op1, Op2 Operation }
	LesserEqual  struct{ Op1, Op2 Operation }
)

// NULL tests.
type (
	IsNull    struct{ Op Operation }
	IsNotNull struct{ Op Operation }
)

// Pattern matches.
type (
	Like struct {
		Op      Operation
		Pattern ColumnOrValue
	}
	NotLike struct {
		Op      Operation
		Pattern ColumnOrValue
	}
)

// Membership tests. Patterns are rendered in caller-given order. An empty
// pattern list renders as IN () / NOT IN (), which is syntactically legal
// but always false for In and always true for NotIn; callers must guard
// against this if unintended.
type (
	In struct {
		Op       Operation
		Patterns []ColumnOrValue
	}
	NotIn struct {
		Op       Operation
		Patterns []ColumnOrValue
	}
)

func (cond And) AcceptCondition(v ConditionVisitor) string          { return v.VisitAnd(cond) }
func (cond Or) AcceptCondition(v ConditionVisitor) string           { return v.VisitOr(cond) }
func (cond Not) AcceptCondition(v ConditionVisitor) string          { return v.VisitNot(cond) }
func (cond Equal) AcceptCondition(v ConditionVisitor) string        { return v.VisitEqual(cond) }
func (cond NotEqual) AcceptCondition(v ConditionVisitor) string     { return v.VisitNotEqual(cond) }
func (cond GreaterThan) AcceptCondition(v ConditionVisitor) string  { return v.VisitGreaterThan(cond) }
func (cond GreaterEqual) AcceptCondition(v ConditionVisitor) string { return v.VisitGreaterEqual(cond) }
func (cond LesserThan) AcceptCondition(v ConditionVisitor) string   { return v.VisitLesserThan(cond) }
func (cond LesserEqual) AcceptCondition(v ConditionVisitor) string  { return v.VisitLesserEqual(cond) }
func (cond IsNull) AcceptCondition(v ConditionVisitor) string       { return v.VisitIsNull(cond) }
func (cond IsNotNull) AcceptCondition(v ConditionVisitor) string    { return v.VisitIsNotNull(cond) }
func (cond Like) AcceptCondition(v ConditionVisitor) string         { return v.VisitLike(cond) }
func (cond NotLike) AcceptCondition(v ConditionVisitor) string      { return v.VisitNotLike(cond) }
func (cond In) AcceptCondition(v ConditionVisitor) string           { return v.VisitIn(cond) }
func (cond NotIn) AcceptCondition(v ConditionVisitor) string        { return v.VisitNotIn(cond) }
