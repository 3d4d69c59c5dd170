package integration

import (
	"database/sql"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mariadb"

	"github.com/zoobzio/sqlgen"
	"github.com/zoobzio/sqlgen/mysql"
)

// MariaDBContainer wraps a testcontainers MariaDB instance.
type MariaDBContainer struct {
	container *mariadb.MariaDBContainer
	db        *sql.DB
	connStr   string
}

// Exec executes a SQL statement.
func (mc *MariaDBContainer) Exec(t *testing.T, query string, args ...any) {
	t.Helper()
	_, err := mc.db.Exec(query, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
	}
}

// QueryRow executes a query and scans a single row.
func (mc *MariaDBContainer) QueryRow(t *testing.T, query string, args ...any) *sql.Row {
	t.Helper()
	return mc.db.QueryRow(query, args...)
}

func TestMariaDBDDLAndDML(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	md := getMariaDBContainer(t)
	r := mysql.New()

	create := sqlgen.CreateTable{
		Table: sqlgen.Table{Name: "accounts"},
		Columns: []sqlgen.Column{
			{Name: "id", Type: sqlgen.Int64{Props: sqlgen.Properties{Primary: true}}},
			{Name: "name", Type: sqlgen.VarChar{Length: 64}},
			{Name: "status", Type: sqlgen.Enum{
				Name:   "account_status",
				Labels: []string{"active", "suspended"},
			}},
		},
		IfNotExists: true,
	}
	md.Exec(t, r.Render(create))

	insert := sqlgen.Insert{
		Table:   sqlgen.Table{Name: "accounts"},
		Columns: []string{"id", "name", "status"},
	}
	md.Exec(t, r.Render(insert), int64(1), "alice", "active")

	query := sqlgen.SelectFrom{
		Fields: []sqlgen.Field{
			{Val: sqlgen.Concat{Ops: []sqlgen.Operation{
				sqlgen.Col("name"), sqlgen.Str("!"),
			}}},
		},
		TableOrQuery: sqlgen.Table{Name: "accounts"},
		Where:        sqlgen.Equal{Op1: sqlgen.Col("id"), Op2: sqlgen.Int(1)},
	}

	var name string
	if err := md.QueryRow(t, r.Render(query)).Scan(&name); err != nil {
		t.Fatal(err)
	}
	if name != "alice!" {
		t.Errorf("Expected alice!, got %s", name)
	}
}

func TestMariaDBUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	md := getMariaDBContainer(t)
	r := mysql.New()

	create := sqlgen.CreateTable{
		Table: sqlgen.Table{Name: "counters"},
		Columns: []sqlgen.Column{
			{Name: "name", Type: sqlgen.VarChar{Length: 32, Props: sqlgen.Properties{Primary: true}}},
			{Name: "value", Type: sqlgen.Int64{}},
		},
		IfNotExists: true,
	}
	md.Exec(t, r.Render(create))

	upsert := sqlgen.Insert{
		Table:   sqlgen.Table{Name: "counters"},
		Columns: []string{"name", "value"},
		Upsert:  true,
	}
	md.Exec(t, r.Render(upsert), "hits", int64(1))
	md.Exec(t, r.Render(upsert), "hits", int64(2))

	var value int64
	row := md.QueryRow(t, "SELECT `value` FROM `counters` WHERE `name` = ?", "hits")
	if err := row.Scan(&value); err != nil {
		t.Fatal(err)
	}
	if value != 2 {
		t.Errorf("Expected 2 after upsert, got %d", value)
	}
}
