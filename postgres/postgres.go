// Package postgres provides the PostgreSQL dialect renderer for sqlgen.
package postgres

import (
	"strings"

	"github.com/zoobzio/sqlgen/internal/render"
	"github.com/zoobzio/sqlgen/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer. It is stateless;
// every method is a pure function of its input and a single Renderer may be
// shared across goroutines.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to PostgreSQL SQL. Rendering is total: every
// structurally valid AST produces text, and semantic oddities (empty IN
// lists, degenerate column sets) are rendered as-is rather than reported.
func (r *Renderer) Render(stmt types.Statement) string {
	return stmt.AcceptStatement(r)
}

// Capabilities reports the PostgreSQL feature set.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders:    render.PlaceholderDollar,
		NativeEnum:      true,
		EnumPredeclared: true,
		IdentityColumns: true,
		BulkCopy:        true,
		TimeZoneTypes:   true,
	}
}

// operation, condition, columnOrValue and typeName re-enter the visitor
// dispatch for sub-trees.
func (r *Renderer) operation(op types.Operation) string { return op.AcceptOperation(r) }

func (r *Renderer) condition(cond types.Condition) string { return cond.AcceptCondition(r) }

func (r *Renderer) columnOrValue(cv types.ColumnOrValue) string {
	return cv.AcceptColumnOrValue(r)
}

func (r *Renderer) typeName(t types.ColumnType) string { return t.AcceptType(r) }

// quote wraps an identifier in double quotes.
func quote(name string) string {
	return `"` + name + `"`
}

// singleQuote wraps a string in single quotes without escaping. Used for
// enum labels; arbitrary literals go through escapeSingleQuote.
func singleQuote(s string) string {
	return "'" + s + "'"
}

// escapeSingleQuote doubles every single quote. This is the only escaping
// performed; well-typed non-string values never touch quote characters.
func escapeSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// quoteAll quotes each identifier in a list.
func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quote(name)
	}
	return quoted
}

// tableName renders an optionally schema-qualified table name.
func tableName(t types.Table) string {
	if t.Schema != "" {
		return quote(t.Schema) + "." + quote(t.Name)
	}
	return quote(t.Name)
}

// keyword turns a lower_snake_case tag into its SQL keyword spelling:
// underscores become spaces, letters upper-case.
func keyword(tag string) string {
	return strings.ToUpper(strings.ReplaceAll(tag, "_", " "))
}
