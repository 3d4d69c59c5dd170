package types

// ColumnType is the closed set of abstract column types.
// This is exported from the internal package so the dialect renderers can
// use it, but external users construct it through the root package aliases.
//
// Dispatch goes through TypeVisitor so that adding a variant without adding
// its rendering in every dialect fails to compile.
type ColumnType interface {
	AcceptType(v TypeVisitor) string

	// Properties returns the constraint flags attached to the type.
	Properties() Properties
}

// TypeVisitor has one method per ColumnType variant.
type TypeVisitor interface {
	VisitBoolean(t Boolean) string
	VisitInt8(t Int8) string
	VisitInt16(t Int16) string
	VisitInt32(t Int32) string
	VisitInt64(t Int64) string
	VisitUInt8(t UInt8) string
	VisitUInt16(t UInt16) string
	VisitUInt32(t UInt32) string
	VisitUInt64(t UInt64) string
	VisitFloat32(t Float32) string
	VisitFloat64(t Float64) string
	VisitText(t Text) string
	VisitVarChar(t VarChar) string
	VisitJSON(t JSON) string
	VisitDate(t Date) string
	VisitTimestamp(t Timestamp) string
	VisitTimestampTZ(t TimestampTZ) string
	VisitEnum(t Enum) string
	VisitDynamic(t Dynamic) string
	VisitUnknown(t Unknown) string
}

// ForeignKey references a column in another table.
type ForeignKey struct {
	Table  string
	Column string
}

// Properties are the constraint flags attached to every column type.
type Properties struct {
	ForeignKey *ForeignKey
	Nullable   bool
	Unique     bool
	Primary    bool
	AutoIncr   bool
}

// Boolean is a true/false column.
type Boolean struct{ Props Properties }

// Int8 is a signed 8-bit integer column.
type Int8 struct{ Props Properties }

// Int16 is a signed 16-bit integer column.
type Int16 struct{ Props Properties }

// Int32 is a signed 32-bit integer column.
type Int32 struct{ Props Properties }

// Int64 is a signed 64-bit integer column.
type Int64 struct{ Props Properties }

// UInt8 is an unsigned 8-bit integer column.
type UInt8 struct{ Props Properties }

// UInt16 is an unsigned 16-bit integer column.
type UInt16 struct{ Props Properties }

// UInt32 is an unsigned 32-bit integer column.
type UInt32 struct{ Props Properties }

// UInt64 is an unsigned 64-bit integer column.
type UInt64 struct{ Props Properties }

// Float32 is a single-precision floating point column.
type Float32 struct{ Props Properties }

// Float64 is a double-precision floating point column.
type Float64 struct{ Props Properties }

// Text is an unbounded string column.
type Text struct{ Props Properties }

// VarChar is a bounded string column. Length is a non-negative bound.
type VarChar struct {
	Length int
	Props  Properties
}

// JSON is a JSON document column.
type JSON struct{ Props Properties }

// Date is a calendar date column.
type Date struct{ Props Properties }

// Timestamp is a timestamp column without time zone.
type Timestamp struct{ Props Properties }

// TimestampTZ is a timestamp column with time zone.
type TimestampTZ struct{ Props Properties }

// Enum is a named enumeration column. Labels must be non-empty and are
// declared in order.
type Enum struct {
	Name   string
	Labels []string
	Props  Properties
}

// Dynamic passes a raw dialect type name through verbatim. It is the escape
// hatch for dialect-specific types the abstract set does not cover.
type Dynamic struct {
	TypeName string
	Props    Properties
}

// Unknown is a column whose type could not be determined. Dialects degrade
// it to their most permissive text type.
type Unknown struct{ Props Properties }

func (t Boolean) AcceptType(v TypeVisitor) string     { return v.VisitBoolean(t) }
func (t Int8) AcceptType(v TypeVisitor) string        { return v.VisitInt8(t) }
func (t Int16) AcceptType(v TypeVisitor) string       { return v.VisitInt16(t) }
func (t Int32) AcceptType(v TypeVisitor) string       { return v.VisitInt32(t) }
func (t Int64) AcceptType(v TypeVisitor) string       { return v.VisitInt64(t) }
func (t UInt8) AcceptType(v TypeVisitor) string       { return v.VisitUInt8(t) }
func (t UInt16) AcceptType(v TypeVisitor) string      { return v.VisitUInt16(t) }
func (t UInt32) AcceptType(v TypeVisitor) string      { return v.VisitUInt32(t) }
func (t UInt64) AcceptType(v TypeVisitor) string      { return v.VisitUInt64(t) }
func (t Float32) AcceptType(v TypeVisitor) string     { return v.VisitFloat32(t) }
func (t Float64) AcceptType(v TypeVisitor) string     { return v.VisitFloat64(t) }
func (t Text) AcceptType(v TypeVisitor) string        { return v.VisitText(t) }
func (t VarChar) AcceptType(v TypeVisitor) string     { return v.VisitVarChar(t) }
func (t JSON) AcceptType(v TypeVisitor) string        { return v.VisitJSON(t) }
func (t Date) AcceptType(v TypeVisitor) string        { return v.VisitDate(t) }
func (t Timestamp) AcceptType(v TypeVisitor) string   { return v.VisitTimestamp(t) }
func (t TimestampTZ) AcceptType(v TypeVisitor) string { return v.VisitTimestampTZ(t) }
func (t Enum) AcceptType(v TypeVisitor) string        { return v.VisitEnum(t) }
func (t Dynamic) AcceptType(v TypeVisitor) string     { return v.VisitDynamic(t) }
func (t Unknown) AcceptType(v TypeVisitor) string     { return v.VisitUnknown(t) }

func (t Boolean) Properties() Properties     { return t.Props }
func (t Int8) Properties() Properties        { return t.Props }
func (t Int16) Properties() Properties       { return t.Props }
func (t Int32) Properties() Properties       { return t.Props }
func (t Int64) Properties() Properties       { return t.Props }
func (t UInt8) Properties() Properties       { return t.Props }
func (t UInt16) Properties() Properties      { return t.Props }
func (t UInt32) Properties() Properties      { return t.Props }
func (t UInt64) Properties() Properties      { return t.Props }
func (t Float32) Properties() Properties     { return t.Props }
func (t Float64) Properties() Properties     { return t.Props }
func (t Text) Properties() Properties        { return t.Props }
func (t VarChar) Properties() Properties     { return t.Props }
func (t JSON) Properties() Properties        { return t.Props }
func (t Date) Properties() Properties        { return t.Props }
func (t Timestamp) Properties() Properties   { return t.Props }
func (t TimestampTZ) Properties() Properties { return t.Props }
func (t Enum) Properties() Properties        { return t.Props }
func (t Dynamic) Properties() Properties     { return t.Props }
func (t Unknown) Properties() Properties     { return t.Props }
