package sqlite

import (
	"strings"

	"github.com/zoobzio/sqlgen/internal/types"
)

// Column type mapping. SQLite storage classes are coarse: every integer
// width collapses to INTEGER, floats to REAL, and text-ish types to TEXT.

func (*Renderer) VisitBoolean(types.Boolean) string { return "INTEGER" }

func (*Renderer) VisitInt8(types.Int8) string   { return "INTEGER" }
func (*Renderer) VisitInt16(types.Int16) string { return "INTEGER" }
func (*Renderer) VisitInt32(types.Int32) string { return "INTEGER" }
func (*Renderer) VisitInt64(types.Int64) string { return "INTEGER" }

func (*Renderer) VisitUInt8(types.UInt8) string   { return "INTEGER" }
func (*Renderer) VisitUInt16(types.UInt16) string { return "INTEGER" }
func (*Renderer) VisitUInt32(types.UInt32) string { return "INTEGER" }
func (*Renderer) VisitUInt64(types.UInt64) string { return "INTEGER" }

func (*Renderer) VisitFloat32(types.Float32) string { return "REAL" }
func (*Renderer) VisitFloat64(types.Float64) string { return "REAL" }

func (*Renderer) VisitText(types.Text) string { return "TEXT" }

// VisitVarChar ignores the length; SQLite does not enforce it anyway.
func (*Renderer) VisitVarChar(types.VarChar) string { return "TEXT" }

func (*Renderer) VisitJSON(types.JSON) string { return "TEXT" }

func (*Renderer) VisitDate(types.Date) string               { return "TEXT" }
func (*Renderer) VisitTimestamp(types.Timestamp) string     { return "TEXT" }
func (*Renderer) VisitTimestampTZ(types.TimestampTZ) string { return "TEXT" }

// VisitEnum renders TEXT; the label set is enforced by a CHECK constraint
// that CreateTable appends to the column definition.
func (*Renderer) VisitEnum(types.Enum) string { return "TEXT" }

// VisitDynamic passes the raw type name through verbatim.
func (*Renderer) VisitDynamic(t types.Dynamic) string { return t.TypeName }

// VisitUnknown degrades to TEXT.
func (*Renderer) VisitUnknown(types.Unknown) string { return "TEXT" }

// propertiesToSQL appends constraint clauses in fixed order: NOT NULL,
// UNIQUE, REFERENCES. AutoIncr renders nothing; single-column INTEGER
// primary keys alias the rowid and auto-assign without any keyword.
func propertiesToSQL(p types.Properties) string {
	var sql strings.Builder

	if !p.Nullable {
		sql.WriteString(" NOT NULL")
	}
	if p.Unique {
		sql.WriteString(" UNIQUE")
	}
	if p.ForeignKey != nil {
		sql.WriteString(" REFERENCES ")
		sql.WriteString(quote(p.ForeignKey.Table))
		sql.WriteString("(")
		sql.WriteString(quote(p.ForeignKey.Column))
		sql.WriteString(")")
	}

	return sql.String()
}
