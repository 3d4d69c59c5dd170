package postgres

import (
	"strconv"
	"strings"

	"github.com/zoobzio/sqlgen/internal/types"
)

// VisitSelectFrom renders a SELECT. The result carries no trailing
// semicolon because it is also used as a subquery and as the body of
// CREATE ... AS.
func (r *Renderer) VisitSelectFrom(stmt types.SelectFrom) string {
	var sql strings.Builder

	sql.WriteString("SELECT ")

	fields := make([]string, 0, len(stmt.Fields))
	for _, field := range stmt.Fields {
		fields = append(fields, r.field(field))
	}
	sql.WriteString(strings.Join(fields, ", "))

	sql.WriteString(" FROM ")
	sql.WriteString(stmt.TableOrQuery.AcceptTableOrQuery(r))

	if stmt.Alias != "" {
		sql.WriteString(" ")
		sql.WriteString(stmt.Alias)
	}

	if len(stmt.Joins) > 0 {
		joins := make([]string, 0, len(stmt.Joins))
		for _, join := range stmt.Joins {
			joins = append(joins, r.join(join))
		}
		sql.WriteString(" ")
		sql.WriteString(strings.Join(joins, " "))
	}

	if stmt.Where != nil {
		sql.WriteString(" WHERE ")
		sql.WriteString(r.condition(stmt.Where))
	}

	if len(stmt.GroupBy) > 0 {
		cols := make([]string, 0, len(stmt.GroupBy))
		for _, col := range stmt.GroupBy {
			cols = append(cols, r.columnOrValue(col))
		}
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(cols, ", "))
	}

	if len(stmt.OrderBy) > 0 {
		cols := make([]string, 0, len(stmt.OrderBy))
		for _, order := range stmt.OrderBy {
			entry := r.columnOrValue(order.Column)
			if order.Desc {
				entry += " DESC"
			}
			cols = append(cols, entry)
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(cols, ", "))
	}

	if stmt.Limit != nil {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(*stmt.Limit))
	}

	return sql.String()
}

// VisitTable renders a FROM target that is a plain table.
func (*Renderer) VisitTable(t types.Table) string {
	return tableName(t)
}

// VisitSubquery renders a FROM target that is a nested SELECT.
func (r *Renderer) VisitSubquery(stmt types.SelectFrom) string {
	return "(" + r.VisitSelectFrom(stmt) + ")"
}

func (r *Renderer) field(f types.Field) string {
	sql := r.operation(f.Val)
	if f.As != "" {
		sql += " AS " + quote(f.As)
	}
	return sql
}

func (r *Renderer) join(j types.Join) string {
	var sql strings.Builder

	sql.WriteString(keyword(string(j.How)))
	sql.WriteString(" ")
	sql.WriteString(j.TableOrQuery.AcceptTableOrQuery(r))
	sql.WriteString(" ")
	sql.WriteString(j.Alias)
	sql.WriteString(" ")

	if j.On != nil {
		sql.WriteString("ON ")
		sql.WriteString(r.condition(j.On))
	} else {
		sql.WriteString("ON 1 = 1")
	}

	return sql.String()
}

// VisitInsert renders an INSERT with 1-based positional placeholders in
// column order. Upserts update every inserted column from the excluded row.
func (r *Renderer) VisitInsert(stmt types.Insert) string {
	var sql strings.Builder

	sql.WriteString("INSERT INTO ")
	sql.WriteString(tableName(stmt.Table))

	sql.WriteString(" (")
	sql.WriteString(strings.Join(quoteAll(stmt.Columns), ", "))
	sql.WriteString(")")

	placeholders := make([]string, len(stmt.Columns))
	for i := range stmt.Columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	sql.WriteString(" VALUES (")
	sql.WriteString(strings.Join(placeholders, ", "))
	sql.WriteString(")")

	if stmt.Upsert {
		sql.WriteString(" ON CONFLICT (")
		sql.WriteString(strings.Join(quoteAll(stmt.Constraints), ", "))
		sql.WriteString(")")

		updates := make([]string, len(stmt.Columns))
		for i, col := range stmt.Columns {
			updates[i] = quote(col) + "=excluded." + quote(col)
		}
		sql.WriteString(" DO UPDATE SET ")
		sql.WriteString(strings.Join(updates, ", "))
	}

	sql.WriteString(";")
	return sql.String()
}

// VisitUpdate renders an UPDATE.
func (r *Renderer) VisitUpdate(stmt types.Update) string {
	var sql strings.Builder

	sql.WriteString("UPDATE ")
	sql.WriteString(tableName(stmt.Table))
	sql.WriteString(" SET ")

	sets := make([]string, 0, len(stmt.Sets))
	for _, set := range stmt.Sets {
		sets = append(sets, quote(set.Col.Name)+" = "+r.columnOrValue(set.To))
	}
	sql.WriteString(strings.Join(sets, ", "))

	if stmt.Where != nil {
		sql.WriteString(" WHERE ")
		sql.WriteString(r.condition(stmt.Where))
	}

	sql.WriteString(";")
	return sql.String()
}

// VisitDeleteFrom renders a DELETE.
func (r *Renderer) VisitDeleteFrom(stmt types.DeleteFrom) string {
	var sql strings.Builder

	sql.WriteString("DELETE FROM ")
	sql.WriteString(tableName(stmt.Table))

	if stmt.Where != nil {
		sql.WriteString(" WHERE ")
		sql.WriteString(r.condition(stmt.Where))
	}

	sql.WriteString(";")
	return sql.String()
}

// VisitCreateTable renders the table DDL, preceded by one CREATE TYPE ...
// AS ENUM statement per enum-typed column. PostgreSQL has no CREATE TYPE
// IF NOT EXISTS, so under IfNotExists each enum declaration is wrapped in
// a transaction-local handler that swallows duplicate_object.
func (r *Renderer) VisitCreateTable(stmt types.CreateTable) string {
	var sql strings.Builder

	for _, col := range stmt.Columns {
		enum, ok := col.Type.(types.Enum)
		if !ok {
			continue
		}

		if stmt.IfNotExists {
			sql.WriteString("DO $$ BEGIN ")
		}

		labels := make([]string, len(enum.Labels))
		for i, label := range enum.Labels {
			labels[i] = singleQuote(label)
		}
		sql.WriteString("CREATE TYPE ")
		sql.WriteString(enum.Name)
		sql.WriteString(" AS ENUM (")
		sql.WriteString(strings.Join(labels, ", "))
		sql.WriteString("); ")

		if stmt.IfNotExists {
			sql.WriteString("EXCEPTION WHEN duplicate_object THEN NULL; END $$;")
		}
	}

	sql.WriteString("CREATE TABLE ")
	if stmt.IfNotExists {
		sql.WriteString("IF NOT EXISTS ")
	}
	sql.WriteString(tableName(stmt.Table))
	sql.WriteString(" (")

	defs := make([]string, 0, len(stmt.Columns))
	for _, col := range stmt.Columns {
		defs = append(defs, r.columnDefinition(col))
	}
	sql.WriteString(strings.Join(defs, ", "))

	var primaryKeys []string
	for _, col := range stmt.Columns {
		if col.Type.Properties().Primary {
			primaryKeys = append(primaryKeys, quote(col.Name))
		}
	}
	if len(primaryKeys) > 0 {
		sql.WriteString(", PRIMARY KEY (")
		sql.WriteString(strings.Join(primaryKeys, ", "))
		sql.WriteString(")")
	}

	sql.WriteString(");")
	return sql.String()
}

func (r *Renderer) columnDefinition(col types.Column) string {
	return quote(col.Name) + " " + r.typeName(col.Type) + propertiesToSQL(col.Type.Properties())
}

// VisitCreateIndex renders a CREATE [UNIQUE] INDEX.
func (r *Renderer) VisitCreateIndex(stmt types.CreateIndex) string {
	var sql strings.Builder

	if stmt.Unique {
		sql.WriteString("CREATE UNIQUE INDEX ")
	} else {
		sql.WriteString("CREATE INDEX ")
	}

	if stmt.IfNotExists {
		sql.WriteString("IF NOT EXISTS ")
	}

	sql.WriteString(quote(stmt.Name))
	sql.WriteString(" ON ")
	sql.WriteString(tableName(stmt.Table))
	sql.WriteString("(")
	sql.WriteString(strings.Join(quoteAll(stmt.Columns), ", "))
	sql.WriteString(")")

	if stmt.Where != nil {
		sql.WriteString(" WHERE ")
		sql.WriteString(r.condition(stmt.Where))
	}

	sql.WriteString(";")
	return sql.String()
}

// VisitCreateAs renders CREATE <KIND> ... AS <select>. The query body is
// the unterminated SELECT, so no terminator is appended here either.
func (r *Renderer) VisitCreateAs(stmt types.CreateAs) string {
	var sql strings.Builder

	sql.WriteString("CREATE ")
	if stmt.OrReplace {
		sql.WriteString("OR REPLACE ")
	}

	sql.WriteString(keyword(string(stmt.What)))
	sql.WriteString(" ")

	if stmt.IfNotExists {
		sql.WriteString("IF NOT EXISTS ")
	}

	sql.WriteString(tableName(stmt.TableOrView))
	sql.WriteString(" AS ")
	sql.WriteString(r.VisitSelectFrom(stmt.Query))

	return sql.String()
}

// VisitDrop renders a DROP <KIND>.
func (*Renderer) VisitDrop(stmt types.Drop) string {
	var sql strings.Builder

	sql.WriteString("DROP ")
	sql.WriteString(keyword(string(stmt.What)))
	sql.WriteString(" ")

	if stmt.IfExists {
		sql.WriteString("IF EXISTS ")
	}

	sql.WriteString(tableName(stmt.Table))

	if stmt.Cascade {
		sql.WriteString(" CASCADE")
	}

	sql.WriteString(";")
	return sql.String()
}

// VisitWrite renders the COPY FROM STDIN header for the bulk-load path.
// The delimiter, NULL marker and quote character are control characters
// (tab, ESC, BEL) so they cannot collide with arbitrary text payloads; the
// row encoder that follows this header must use the identical scheme.
func (*Renderer) VisitWrite(stmt types.Write) string {
	schema := stmt.Table.Schema
	if schema == "" {
		schema = "public"
	}

	return "COPY " + quote(schema) + "." + quote(stmt.Table.Name) +
		"(" + strings.Join(quoteAll(stmt.Columns), ", ") +
		") FROM STDIN WITH DELIMITER '\t' NULL '\x1b' CSV QUOTE '\a';"
}
