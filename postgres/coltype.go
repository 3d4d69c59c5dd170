package postgres

import (
	"strconv"
	"strings"

	"github.com/zoobzio/sqlgen/internal/types"
)

// Column type mapping. Integer widths 8 and 16 collapse to SMALLINT, 32 to
// INTEGER, 64 to BIGINT; both float widths map to NUMERIC.

func (*Renderer) VisitBoolean(types.Boolean) string { return "BOOLEAN" }

func (*Renderer) VisitInt8(types.Int8) string   { return "SMALLINT" }
func (*Renderer) VisitInt16(types.Int16) string { return "SMALLINT" }
func (*Renderer) VisitInt32(types.Int32) string { return "INTEGER" }
func (*Renderer) VisitInt64(types.Int64) string { return "BIGINT" }

func (*Renderer) VisitUInt8(types.UInt8) string   { return "SMALLINT" }
func (*Renderer) VisitUInt16(types.UInt16) string { return "SMALLINT" }
func (*Renderer) VisitUInt32(types.UInt32) string { return "INTEGER" }
func (*Renderer) VisitUInt64(types.UInt64) string { return "BIGINT" }

func (*Renderer) VisitFloat32(types.Float32) string { return "NUMERIC" }
func (*Renderer) VisitFloat64(types.Float64) string { return "NUMERIC" }

func (*Renderer) VisitText(types.Text) string { return "TEXT" }

func (*Renderer) VisitVarChar(t types.VarChar) string {
	return "VARCHAR(" + strconv.Itoa(t.Length) + ")"
}

func (*Renderer) VisitJSON(types.JSON) string { return "JSONB" }

func (*Renderer) VisitDate(types.Date) string           { return "DATE" }
func (*Renderer) VisitTimestamp(types.Timestamp) string { return "TIMESTAMP" }
func (*Renderer) VisitTimestampTZ(types.TimestampTZ) string {
	return "TIMESTAMP WITH TIME ZONE"
}

// VisitEnum renders the declared name; the enum type itself is declared by
// CreateTable in a preceding CREATE TYPE statement.
func (*Renderer) VisitEnum(t types.Enum) string { return t.Name }

// VisitDynamic passes the raw type name through verbatim.
func (*Renderer) VisitDynamic(t types.Dynamic) string { return t.TypeName }

// VisitUnknown degrades to TEXT.
func (*Renderer) VisitUnknown(types.Unknown) string { return "TEXT" }

// propertiesToSQL appends constraint clauses in fixed order: identity,
// NOT NULL, UNIQUE, REFERENCES. The order is significant for generated-DDL
// stability.
func propertiesToSQL(p types.Properties) string {
	var sql strings.Builder

	if p.AutoIncr {
		sql.WriteString(" GENERATED ALWAYS AS IDENTITY")
	}
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
