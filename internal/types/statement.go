package types

// Statement is the closed set of renderable statements. Every statement
// renders to a complete, semicolon-terminated string except SelectFrom,
// which is left unterminated so it can double as a subquery or view body.
type Statement interface {
	AcceptStatement(v StatementVisitor) string
}

// StatementVisitor has one method per Statement variant. A dialect renderer
// implements it; a missing statement kind fails to compile.
type StatementVisitor interface {
	VisitSelectFrom(stmt SelectFrom) string
	VisitInsert(stmt Insert) string
	VisitUpdate(stmt Update) string
	VisitDeleteFrom(stmt DeleteFrom) string
	VisitCreateTable(stmt CreateTable) string
	VisitCreateIndex(stmt CreateIndex) string
	VisitCreateAs(stmt CreateAs) string
	VisitDrop(stmt Drop) string
	VisitWrite(stmt Write) string
}

// TableOrQuery is a FROM target: either a plain table or a nested SELECT.
type TableOrQuery interface {
	AcceptTableOrQuery(v TableOrQueryVisitor) string
}

// TableOrQueryVisitor dispatches between the two FROM target cases.
// VisitSubquery is expected to parenthesize the nested SELECT.
type TableOrQueryVisitor interface {
	VisitTable(t Table) string
	VisitSubquery(stmt SelectFrom) string
}

func (t Table) AcceptTableOrQuery(v TableOrQueryVisitor) string { return v.VisitTable(t) }

func (stmt SelectFrom) AcceptTableOrQuery(v TableOrQueryVisitor) string {
	return v.VisitSubquery(stmt)
}

// Field is a selected expression with an optional output alias.
type Field struct {
	Val Operation
	As  string
}

// JoinHow tags the join kind. Tags use lower_snake_case and are rendered
// with underscores replaced by spaces and upper-cased.
type JoinHow string

const (
	InnerJoin JoinHow = "inner_join"
	LeftJoin  JoinHow = "left_join"
	RightJoin JoinHow = "right_join"
	FullJoin  JoinHow = "full_join"
	CrossJoin JoinHow = "cross_join"
)

// Join is one join clause of a SelectFrom. Alias is required. A nil On
// renders as ON 1 = 1.
type Join struct {
	How          JoinHow
	TableOrQuery TableOrQuery
	Alias        string
	On           Condition
}

// OrderBy is one ORDER BY entry. Ascending is the implicit default and is
// never emitted.
type OrderBy struct {
	Column ColumnOrValue
	Desc   bool
}

// SelectFrom is a SELECT statement or subquery.
type SelectFrom struct {
	Fields       []Field
	TableOrQuery TableOrQuery
	Alias        string
	Joins        []Join
	Where        Condition
	GroupBy      []ColumnOrValue
	OrderBy      []OrderBy
	Limit        *int
}

// Insert is an INSERT statement with positional placeholders in column
// order. When Upsert is set, the conflict target is Constraints and every
// inserted column is updated from the excluded row.
type Insert struct {
	Table       Table
	Columns     []string
	Constraints []string
	Upsert      bool
}

// UpdateSet is one SET assignment of an Update.
type UpdateSet struct {
	Col Column
	To  ColumnOrValue
}

// Update is an UPDATE statement.
type Update struct {
	Table Table
	Sets  []UpdateSet
	Where Condition
}

// DeleteFrom is a DELETE statement.
type DeleteFrom struct {
	Table Table
	Where Condition
}

// CreateTable is a CREATE TABLE statement. Enum-typed columns cause one
// enum type declaration per column to precede the table DDL in dialects
// that need it.
type CreateTable struct {
	Table       Table
	Columns     []Column
	IfNotExists bool
}

// CreateIndex is a CREATE INDEX statement.
type CreateIndex struct {
	Name        string
	Table       Table
	Columns     []string
	Unique      bool
	IfNotExists bool
	Where       Condition
}

// RelationKind tags the object of CREATE ... AS and DROP. Tags use
// lower_snake_case and are rendered with underscores replaced by spaces
// and upper-cased.
type RelationKind string

const (
	KindTable            RelationKind = "table"
	KindView             RelationKind = "view"
	KindMaterializedView RelationKind = "materialized_view"
)

// CreateAs is a CREATE <KIND> ... AS <select> statement. The query is
// rendered without a terminator, directly as the relation body.
type CreateAs struct {
	What        RelationKind
	TableOrView Table
	Query       SelectFrom
	OrReplace   bool
	IfNotExists bool
}

// Drop is a DROP <KIND> statement.
type Drop struct {
	What     RelationKind
	Table    Table
	IfExists bool
	Cascade  bool
}

// Write is the header of the dialect's bulk-ingest path. The row payload
// that follows is produced by the caller and must use the exact
// delimiter/null/quote scheme of the rendered header.
type Write struct {
	Table   Table
	Columns []string
}

func (stmt SelectFrom) AcceptStatement(v StatementVisitor) string  { return v.VisitSelectFrom(stmt) }
func (stmt Insert) AcceptStatement(v StatementVisitor) string      { return v.VisitInsert(stmt) }
func (stmt Update) AcceptStatement(v StatementVisitor) string      { return v.VisitUpdate(stmt) }
func (stmt DeleteFrom) AcceptStatement(v StatementVisitor) string  { return v.VisitDeleteFrom(stmt) }
func (stmt CreateTable) AcceptStatement(v StatementVisitor) string { return v.VisitCreateTable(stmt) }
func (stmt CreateIndex) AcceptStatement(v StatementVisitor) string { return v.VisitCreateIndex(stmt) }
func (stmt CreateAs) AcceptStatement(v StatementVisitor) string    { return v.VisitCreateAs(stmt) }
func (stmt Drop) AcceptStatement(v StatementVisitor) string        { return v.VisitDrop(stmt) }
func (stmt Write) AcceptStatement(v StatementVisitor) string       { return v.VisitWrite(stmt) }
