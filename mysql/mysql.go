// Package mysql provides the MySQL/MariaDB dialect renderer for sqlgen.
package mysql

import (
	"strings"

	"github.com/zoobzio/sqlgen/internal/render"
	"github.com/zoobzio/sqlgen/internal/types"
)

// Renderer implements the MySQL dialect renderer. It is stateless; every
// method is a pure function of its input and a single Renderer may be
// shared across goroutines.
type Renderer struct{}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to MySQL SQL.
func (r *Renderer) Render(stmt types.Statement) string {
	return stmt.AcceptStatement(r)
}

// Capabilities reports the MySQL feature set. Enums are native but declared
// inline with the column rather than as a standalone type.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders:    render.PlaceholderQuestion,
		NativeEnum:      true,
		EnumPredeclared: false,
		IdentityColumns: false,
		BulkCopy:        false,
		TimeZoneTypes:   false,
	}
}

func (r *Renderer) operation(op types.Operation) string { return op.AcceptOperation(r) }

func (r *Renderer) condition(cond types.Condition) string { return cond.AcceptCondition(r) }

func (r *Renderer) columnOrValue(cv types.ColumnOrValue) string {
	return cv.AcceptColumnOrValue(r)
}

func (r *Renderer) typeName(t types.ColumnType) string { return t.AcceptType(r) }

// quote wraps an identifier in backticks.
func quote(name string) string {
	return "`" + name + "`"
}

func singleQuote(s string) string {
	return "'" + s + "'"
}

// escapeSingleQuote doubles quotes and backslashes. Under the default
// sql_mode (no NO_BACKSLASH_ESCAPES) backslash escapes the next
// character in a string literal, so a trailing backslash would swallow
// the closing quote.
func escapeSingleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quote(name)
	}
	return quoted
}

// tableName renders an optionally database-qualified table name; MySQL
// treats the schema part as a database name.
func tableName(t types.Table) string {
	if t.Schema != "" {
		return quote(t.Schema) + "." + quote(t.Name)
	}
	return quote(t.Name)
}

func keyword(tag string) string {
	return strings.ToUpper(strings.ReplaceAll(tag, "_", " "))
}
