// Package sqlite provides the SQLite dialect renderer for sqlgen.
package sqlite

import (
	"strings"

	"github.com/zoobzio/sqlgen/internal/render"
	"github.com/zoobzio/sqlgen/internal/types"
)

// Renderer implements the SQLite dialect renderer. It is stateless; every
// method is a pure function of its input and a single Renderer may be
// shared across goroutines.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to SQLite SQL.
func (r *Renderer) Render(stmt types.Statement) string {
	return stmt.AcceptStatement(r)
}

// Capabilities reports the SQLite feature set. Enums are emulated with
// CHECK constraints and bulk loads fall back to prepared INSERTs.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders:    render.PlaceholderQuestion,
		NativeEnum:      false,
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

// quote wraps an identifier in double quotes.
func quote(name string) string {
	return `"` + name + `"`
}

func singleQuote(s string) string {
	return "'" + s + "'"
}

func escapeSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quote(name)
	}
	return quoted
}

// tableName renders a table name. SQLite has no schemas in the server
// sense; an attached-database prefix is rendered when Schema is set.
func tableName(t types.Table) string {
	if t.Schema != "" {
		return quote(t.Schema) + "." + quote(t.Name)
	}
	return quote(t.Name)
}

func keyword(tag string) string {
	return strings.ToUpper(strings.ReplaceAll(tag, "_", " "))
}
