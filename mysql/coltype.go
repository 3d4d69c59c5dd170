package mysql

import (
	"strconv"
	"strings"

	"github.com/zoobzio/sqlgen/internal/types"
)

// Column type mapping. MySQL keeps distinct integer widths and signedness.

func (*Renderer) VisitBoolean(types.Boolean) string { return "BOOLEAN" }

func (*Renderer) VisitInt8(types.Int8) string   { return "TINYINT" }
func (*Renderer) VisitInt16(types.Int16) string { return "SMALLINT" }
func (*Renderer) VisitInt32(types.Int32) string { return "INT" }
func (*Renderer) VisitInt64(types.Int64) string { return "BIGINT" }

func (*Renderer) VisitUInt8(types.UInt8) string   { return "TINYINT UNSIGNED" }
func (*Renderer) VisitUInt16(types.UInt16) string { return "SMALLINT UNSIGNED" }
func (*Renderer) VisitUInt32(types.UInt32) string { return "INT UNSIGNED" }
func (*Renderer) VisitUInt64(types.UInt64) string { return "BIGINT UNSIGNED" }

func (*Renderer) VisitFloat32(types.Float32) string { return "FLOAT" }
func (*Renderer) VisitFloat64(types.Float64) string { return "DOUBLE" }

func (*Renderer) VisitText(types.Text) string { return "TEXT" }

func (*Renderer) VisitVarChar(t types.VarChar) string {
	return "VARCHAR(" + strconv.Itoa(t.Length) + ")"
}

func (*Renderer) VisitJSON(types.JSON) string { return "JSON" }

func (*Renderer) VisitDate(types.Date) string { return "DATE" }

// DATETIME has no time zone behavior; TIMESTAMP converts through the
// session time zone, which is the closest MySQL gets to a zoned type.
func (*Renderer) VisitTimestamp(types.Timestamp) string     { return "DATETIME" }
func (*Renderer) VisitTimestampTZ(types.TimestampTZ) string { return "TIMESTAMP" }

// VisitEnum declares the label set inline with the column.
func (*Renderer) VisitEnum(t types.Enum) string {
	labels := make([]string, len(t.Labels))
	for i, label := range t.Labels {
		labels[i] = singleQuote(label)
	}
	return "ENUM(" + strings.Join(labels, ", ") + ")"
}

// VisitDynamic passes the raw type name through verbatim.
func (*Renderer) VisitDynamic(t types.Dynamic) string { return t.TypeName }

// VisitUnknown degrades to TEXT.
func (*Renderer) VisitUnknown(types.Unknown) string { return "TEXT" }

// propertiesToSQL appends constraint clauses in fixed order: AUTO_INCREMENT,
// NOT NULL, UNIQUE, REFERENCES.
func propertiesToSQL(p types.Properties) string {
	var sql strings.Builder

	if p.AutoIncr {
		sql.WriteString(" AUTO_INCREMENT")
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

// castTypes maps column types to the spellings CAST accepts, which differ
// from the DDL type names.
type castTypes struct{}

func (castTypes) VisitBoolean(types.Boolean) string { return "SIGNED" }

func (castTypes) VisitInt8(types.Int8) string   { return "SIGNED" }
func (castTypes) VisitInt16(types.Int16) string { return "SIGNED" }
func (castTypes) VisitInt32(types.Int32) string { return "SIGNED" }
func (castTypes) VisitInt64(types.Int64) string { return "SIGNED" }

func (castTypes) VisitUInt8(types.UInt8) string   { return "UNSIGNED" }
func (castTypes) VisitUInt16(types.UInt16) string { return "UNSIGNED" }
func (castTypes) VisitUInt32(types.UInt32) string { return "UNSIGNED" }
func (castTypes) VisitUInt64(types.UInt64) string { return "UNSIGNED" }

func (castTypes) VisitFloat32(types.Float32) string { return "DOUBLE" }
func (castTypes) VisitFloat64(types.Float64) string { return "DOUBLE" }

func (castTypes) VisitText(types.Text) string { return "CHAR" }

func (castTypes) VisitVarChar(t types.VarChar) string {
	return "CHAR(" + strconv.Itoa(t.Length) + ")"
}

func (castTypes) VisitJSON(types.JSON) string { return "JSON" }

func (castTypes) VisitDate(types.Date) string               { return "DATE" }
func (castTypes) VisitTimestamp(types.Timestamp) string     { return "DATETIME" }
func (castTypes) VisitTimestampTZ(types.TimestampTZ) string { return "DATETIME" }

func (castTypes) VisitEnum(types.Enum) string { return "CHAR" }

func (castTypes) VisitDynamic(t types.Dynamic) string { return t.TypeName }

func (castTypes) VisitUnknown(types.Unknown) string { return "CHAR" }
