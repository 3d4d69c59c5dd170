// Package sqlgen renders a dialect-neutral SQL statement tree to literal
// SQL text for a specific database dialect.
//
// Callers build one AST describing a statement (DDL or DML) and hand it to
// a dialect renderer. One renderer exists per backend; adding a backend
// means implementing the Renderer interface, not touching the AST.
//
//	stmt := sqlgen.SelectFrom{
//		Fields:       []sqlgen.Field{{Val: sqlgen.Col("id")}, {Val: sqlgen.Col("name")}},
//		TableOrQuery: sqlgen.Table{Name: "users"},
//		Where:        sqlgen.Equal{Op1: sqlgen.Col("id"), Op2: sqlgen.Int(5)},
//	}
//	sql := postgres.New().Render(stmt)
//	// SELECT "id", "name" FROM "users" WHERE "id" = 5
//
// Rendering is pure text generation: no I/O, no shared state, no failure
// path. Renderers are total over the closed AST variant set; each variant
// family is dispatched through a visitor interface with one method per
// variant, so a dialect that misses a case does not compile. The AST is
// borrowed read-only for the duration of a call and may be rendered from
// any number of goroutines concurrently.
//
// The core does not validate semantic correctness. A degenerate AST (an
// empty IN pattern list, an INSERT with no columns) renders to
// syntactically valid SQL with whatever semantics that SQL has.
package sqlgen

import (
	"github.com/zoobzio/sqlgen/internal/render"
	"github.com/zoobzio/sqlgen/internal/types"
)

// Renderer is the contract implemented once per SQL dialect.
type Renderer interface {
	// Render converts a statement to dialect-specific SQL text.
	Render(stmt Statement) string

	// Capabilities reports the dialect's feature matrix, so callers can
	// pick execution paths (bulk copy vs prepared INSERT, placeholder
	// binding) without switching on the concrete renderer type.
	Capabilities() Capabilities
}

// Capabilities describes the DDL and bulk-load features of a dialect.
type Capabilities = render.Capabilities

// PlaceholderStyle indicates how a dialect numbers statement parameters.
type PlaceholderStyle = render.PlaceholderStyle

const (
	PlaceholderDollar   = render.PlaceholderDollar
	PlaceholderQuestion = render.PlaceholderQuestion
)

// Statement is the closed set of renderable statements.
type Statement = types.Statement

// Statement variants.
type (
	SelectFrom  = types.SelectFrom
	Insert      = types.Insert
	Update      = types.Update
	UpdateSet   = types.UpdateSet
	DeleteFrom  = types.DeleteFrom
	CreateTable = types.CreateTable
	CreateIndex = types.CreateIndex
	CreateAs    = types.CreateAs
	Drop        = types.Drop
	Write       = types.Write
)

// SELECT building blocks.
type (
	Field        = types.Field
	Join         = types.Join
	JoinHow      = types.JoinHow
	OrderBy      = types.OrderBy
	TableOrQuery = types.TableOrQuery
)

// Re-export join kinds.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
	CrossJoin = types.CrossJoin
)

// RelationKind tags the object of CreateAs and Drop.
type RelationKind = types.RelationKind

// Re-export relation kinds.
const (
	KindTable            = types.KindTable
	KindView             = types.KindView
	KindMaterializedView = types.KindMaterializedView
)

// Table and column references.
type (
	Table  = types.Table
	Column = types.Column
)

// Condition is the closed set of boolean predicate nodes.
type Condition = types.Condition

// Condition variants.
type (
	And          = types.And
	Or           = types.Or
	Not          = types.Not
	Equal        = types.Equal
	NotEqual     = types.NotEqual
	GreaterThan  = types.GreaterThan
	GreaterEqual = types.GreaterEqual
	LesserThan   = types.LesserThan
	LesserEqual  = types.LesserEqual
	IsNull       = types.IsNull
	IsNotNull    = types.IsNotNull
	Like         = types.Like
	NotLike      = types.NotLike
	In           = types.In
	NotIn        = types.NotIn
)

// Operation is the closed set of scalar expression nodes.
type Operation = types.Operation

// Operation variants.
type (
	Plus             = types.Plus
	Minus            = types.Minus
	Multiplies       = types.Multiplies
	Divides          = types.Divides
	Mod              = types.Mod
	Abs              = types.Abs
	Ceil             = types.Ceil
	Floor            = types.Floor
	Exp              = types.Exp
	Ln               = types.Ln
	Log2             = types.Log2
	Sqrt             = types.Sqrt
	Sin              = types.Sin
	Cos              = types.Cos
	Tan              = types.Tan
	Round            = types.Round
	Lower            = types.Lower
	Upper            = types.Upper
	Length           = types.Length
	Trim             = types.Trim
	LTrim            = types.LTrim
	RTrim            = types.RTrim
	Replace          = types.Replace
	Concat           = types.Concat
	Year             = types.Year
	Month            = types.Month
	Day              = types.Day
	Hour             = types.Hour
	Minute           = types.Minute
	Second           = types.Second
	Weekday          = types.Weekday
	Unixepoch        = types.Unixepoch
	DaysBetween      = types.DaysBetween
	DatePlusDuration = types.DatePlusDuration
	Cast             = types.Cast
	Coalesce         = types.Coalesce
)

// Aggregation is the closed set of aggregate functions.
type Aggregation = types.Aggregation

// Aggregation variants.
type (
	Avg   = types.Avg
	Max   = types.Max
	Min   = types.Min
	Sum   = types.Sum
	Count = types.Count
)

// ColumnOrValue is either a column reference or a literal value.
type ColumnOrValue = types.ColumnOrValue

// Value is the closed set of literal kinds.
type Value = types.Value

// Value variants.
type (
	StringValue    = types.StringValue
	IntegerValue   = types.IntegerValue
	FloatValue     = types.FloatValue
	BooleanValue   = types.BooleanValue
	DurationValue  = types.DurationValue
	TimestampValue = types.TimestampValue
)

// DurationUnit is the time unit of a DurationValue.
type DurationUnit = types.DurationUnit

// Re-export duration units.
const (
	Milliseconds = types.Milliseconds
	Seconds      = types.Seconds
	Minutes      = types.Minutes
	Hours        = types.Hours
	Days         = types.Days
	Weeks        = types.Weeks
	Months       = types.Months
	Years        = types.Years
)

// Column type system.
type (
	ColumnType = types.ColumnType
	Properties = types.Properties
	ForeignKey = types.ForeignKey
)

// Column type variants.
type (
	Boolean     = types.Boolean
	Int8        = types.Int8
	Int16       = types.Int16
	Int32       = types.Int32
	Int64       = types.Int64
	UInt8       = types.UInt8
	UInt16      = types.UInt16
	UInt32      = types.UInt32
	UInt64      = types.UInt64
	Float32     = types.Float32
	Float64     = types.Float64
	Text        = types.Text
	VarChar     = types.VarChar
	JSON        = types.JSON
	Date        = types.Date
	Timestamp   = types.Timestamp
	TimestampTZ = types.TimestampTZ
	Enum        = types.Enum
	Dynamic     = types.Dynamic
	Unknown     = types.Unknown
)
