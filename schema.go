package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/sqlgen/internal/types"
)

// TablesFromDBML converts a DBML project into CreateTable statements, one
// per table, in the project's declaration order. Column types are mapped
// from the DBML type string; anything unrecognized passes through verbatim
// as a Dynamic type so dialect-specific types survive the round trip.
func TablesFromDBML(project *dbml.Project) ([]CreateTable, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	stmts := make([]CreateTable, 0, len(project.Tables))
	for _, table := range project.Tables {
		stmt := CreateTable{
			Table:       Table{Name: table.Name},
			IfNotExists: true,
		}
		for _, col := range table.Columns {
			stmt.Columns = append(stmt.Columns, Column{
				Name: col.Name,
				Type: columnTypeFromDBML(col.Type, propertiesFromDBML(col)),
			})
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// propertiesFromDBML maps DBML column settings onto constraint flags.
// Inline refs become foreign keys against the referenced column.
func propertiesFromDBML(col *dbml.Column) Properties {
	props := Properties{}
	if col.Settings != nil {
		props.Primary = col.Settings.PrimaryKey
		props.Unique = col.Settings.Unique
		props.Nullable = col.Settings.Null
		props.AutoIncr = col.Settings.Increment
	}
	if col.InlineRef != nil {
		props.ForeignKey = &ForeignKey{
			Table:  col.InlineRef.Table,
			Column: col.InlineRef.Column,
		}
	}
	return props
}

// columnTypeFromDBML maps a DBML type string to an AST column type.
func columnTypeFromDBML(s string, props Properties) ColumnType {
	name, arg := splitTypeArg(s)
	switch strings.ToLower(name) {
	case "bool", "boolean":
		return types.Boolean{Props: props}
	case "tinyint", "int8":
		return types.Int8{Props: props}
	case "smallint", "int16":
		return types.Int16{Props: props}
	case "int", "integer", "int32":
		return types.Int32{Props: props}
	case "bigint", "int64":
		return types.Int64{Props: props}
	case "float", "real", "float32":
		return types.Float32{Props: props}
	case "double", "float64", "numeric", "decimal":
		return types.Float64{Props: props}
	case "text", "string":
		return types.Text{Props: props}
	case "varchar", "char":
		if n, err := strconv.Atoi(arg); err == nil && n > 0 {
			return types.VarChar{Length: n, Props: props}
		}
		return types.Text{Props: props}
	case "json", "jsonb":
		return types.JSON{Props: props}
	case "date":
		return types.Date{Props: props}
	case "timestamp", "datetime":
		return types.Timestamp{Props: props}
	case "timestamptz":
		return types.TimestampTZ{Props: props}
	default:
		return types.Dynamic{TypeName: s, Props: props}
	}
}

// splitTypeArg splits "varchar(255)" into ("varchar", "255").
func splitTypeArg(s string) (name, arg string) {
	open := strings.IndexByte(s, '(')
	if open == -1 {
		return s, ""
	}
	end := strings.IndexByte(s[open:], ')')
	if end == -1 {
		return s, ""
	}
	return s[:open], s[open+1 : open+end]
}
