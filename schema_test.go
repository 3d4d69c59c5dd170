package sqlgen_test

import (
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/sqlgen"
	"github.com/zoobzio/sqlgen/postgres"
)

func TestTablesFromDBML(t *testing.T) {
	t.Run("nil project", func(t *testing.T) {
		if _, err := sqlgen.TablesFromDBML(nil); err == nil {
			t.Error("expected error for nil project")
		}
	})

	t.Run("type mapping", func(t *testing.T) {
		project := dbml.NewProject("test")

		users := dbml.NewTable("users")
		users.AddColumn(dbml.NewColumn("id", "bigint"))
		users.AddColumn(dbml.NewColumn("age", "int"))
		users.AddColumn(dbml.NewColumn("name", "varchar(255)"))
		users.AddColumn(dbml.NewColumn("bio", "text"))
		users.AddColumn(dbml.NewColumn("active", "boolean"))
		users.AddColumn(dbml.NewColumn("meta", "jsonb"))
		users.AddColumn(dbml.NewColumn("born", "date"))
		users.AddColumn(dbml.NewColumn("joined", "timestamptz"))
		users.AddColumn(dbml.NewColumn("ref", "uuid"))
		project.AddTable(users)

		stmts, err := sqlgen.TablesFromDBML(project)
		if err != nil {
			t.Fatal(err)
		}
		if len(stmts) != 1 {
			t.Fatalf("expected 1 statement, got %d", len(stmts))
		}

		expected := `CREATE TABLE IF NOT EXISTS "users" (` +
			`"id" BIGINT NOT NULL, ` +
			`"age" INTEGER NOT NULL, ` +
			`"name" VARCHAR(255) NOT NULL, ` +
			`"bio" TEXT NOT NULL, ` +
			`"active" BOOLEAN NOT NULL, ` +
			`"meta" JSONB NOT NULL, ` +
			`"born" DATE NOT NULL, ` +
			`"joined" TIMESTAMP WITH TIME ZONE NOT NULL, ` +
			`"ref" uuid NOT NULL);`
		if got := postgres.New().Render(stmts[0]); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("column settings", func(t *testing.T) {
		project := dbml.NewProject("test")

		posts := dbml.NewTable("posts")
		posts.AddColumn(dbml.NewColumn("id", "bigint").WithPrimaryKey().WithIncrement())
		posts.AddColumn(dbml.NewColumn("slug", "varchar(255)").WithUnique())
		posts.AddColumn(dbml.NewColumn("body", "text").WithNull())
		posts.AddColumn(dbml.NewColumn("author_id", "bigint").
			WithRef(dbml.ManyToOne, "", "users", "id"))
		project.AddTable(posts)

		stmts, err := sqlgen.TablesFromDBML(project)
		if err != nil {
			t.Fatal(err)
		}

		expected := `CREATE TABLE IF NOT EXISTS "posts" (` +
			`"id" BIGINT GENERATED ALWAYS AS IDENTITY NOT NULL, ` +
			`"slug" VARCHAR(255) NOT NULL UNIQUE, ` +
			`"body" TEXT, ` +
			`"author_id" BIGINT NOT NULL REFERENCES "users"("id"), ` +
			`PRIMARY KEY ("id"));`
		if got := postgres.New().Render(stmts[0]); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("multiple tables keep order", func(t *testing.T) {
		project := dbml.NewProject("test")

		users := dbml.NewTable("users")
		users.AddColumn(dbml.NewColumn("id", "bigint"))
		project.AddTable(users)

		posts := dbml.NewTable("posts")
		posts.AddColumn(dbml.NewColumn("id", "bigint"))
		project.AddTable(posts)

		stmts, err := sqlgen.TablesFromDBML(project)
		if err != nil {
			t.Fatal(err)
		}
		if len(stmts) != 2 {
			t.Fatalf("expected 2 statements, got %d", len(stmts))
		}
		if stmts[0].Table.Name != "users" || stmts[1].Table.Name != "posts" {
			t.Errorf("unexpected table order: %s, %s", stmts[0].Table.Name, stmts[1].Table.Name)
		}
	})
}
