package postgres_test

import (
	"testing"

	"github.com/zoobzio/sqlgen"
	"github.com/zoobzio/sqlgen/postgres"
)

func TestSelectFrom(t *testing.T) {
	r := postgres.New()

	t.Run("fields and where", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields: []sqlgen.Field{
				{Val: sqlgen.Col("id")},
				{Val: sqlgen.Col("name")},
			},
			TableOrQuery: sqlgen.Table{Name: "users"},
			Where:        sqlgen.Equal{Op1: sqlgen.Col("id"), Op2: sqlgen.Int(5)},
		}

		expected := `SELECT "id", "name" FROM "users" WHERE "id" = 5`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("field alias", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields: []sqlgen.Field{
				{Val: sqlgen.Upper{Op1: sqlgen.Col("name")}, As: "loud_name"},
			},
			TableOrQuery: sqlgen.Table{Name: "users"},
		}

		expected := `SELECT upper("name") AS "loud_name" FROM "users"`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("schema qualified table", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields:       []sqlgen.Field{{Val: sqlgen.Col("id")}},
			TableOrQuery: sqlgen.Table{Name: "users", Schema: "app"},
		}

		expected := `SELECT "id" FROM "app"."users"`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("join with condition", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields:       []sqlgen.Field{{Val: sqlgen.ColOn("u", "id")}},
			TableOrQuery: sqlgen.Table{Name: "users"},
			Alias:        "u",
			Joins: []sqlgen.Join{
				{
					How:          sqlgen.LeftJoin,
					TableOrQuery: sqlgen.Table{Name: "orders"},
					Alias:        "o",
					On: sqlgen.Equal{
						Op1: sqlgen.ColOn("o", "user_id"),
						Op2: sqlgen.ColOn("u", "id"),
					},
				},
			},
		}

		expected := `SELECT u."id" FROM "users" u LEFT JOIN "orders" o ON o."user_id" = u."id"`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("join without condition defaults to ON 1 = 1", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields:       []sqlgen.Field{{Val: sqlgen.ColOn("u", "id")}},
			TableOrQuery: sqlgen.Table{Name: "users"},
			Alias:        "u",
			Joins: []sqlgen.Join{
				{
					How:          sqlgen.InnerJoin,
					TableOrQuery: sqlgen.Table{Name: "orders"},
					Alias:        "o",
				},
			},
		}

		expected := `SELECT u."id" FROM "users" u INNER JOIN "orders" o ON 1 = 1`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("group order limit", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields: []sqlgen.Field{
				{Val: sqlgen.Col("dept")},
				{Val: sqlgen.Count{}, As: "n"},
			},
			TableOrQuery: sqlgen.Table{Name: "employees"},
			GroupBy:      []sqlgen.ColumnOrValue{sqlgen.Col("dept")},
			OrderBy:      []sqlgen.OrderBy{{Column: sqlgen.Col("dept"), Desc: true}},
			Limit:        sqlgen.Limit(10),
		}

		expected := `SELECT "dept", COUNT(*) AS "n" FROM "employees" GROUP BY "dept" ORDER BY "dept" DESC LIMIT 10`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("subquery source", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields: []sqlgen.Field{{Val: sqlgen.Col("id")}},
			TableOrQuery: sqlgen.SelectFrom{
				Fields:       []sqlgen.Field{{Val: sqlgen.Col("id")}},
				TableOrQuery: sqlgen.Table{Name: "users"},
			},
			Alias: "t1",
		}

		expected := `SELECT "id" FROM (SELECT "id" FROM "users") t1`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		stmt := sqlgen.SelectFrom{
			Fields:       []sqlgen.Field{{Val: sqlgen.Col("id")}},
			TableOrQuery: sqlgen.Table{Name: "users"},
			Where:        sqlgen.Equal{Op1: sqlgen.Col("id"), Op2: sqlgen.Int(5)},
		}

		first := r.Render(stmt)
		second := r.Render(stmt)
		if first != second {
			t.Errorf("renders differ:\n%s\n%s", first, second)
		}
	})
}

func TestInsert(t *testing.T) {
	r := postgres.New()

	t.Run("plain insert", func(t *testing.T) {
		stmt := sqlgen.Insert{
			Table:   sqlgen.Table{Name: "users"},
			Columns: []string{"id", "name", "email"},
		}

		expected := `INSERT INTO "users" ("id", "name", "email") VALUES ($1, $2, $3);`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("upsert", func(t *testing.T) {
		stmt := sqlgen.Insert{
			Table:       sqlgen.Table{Name: "users"},
			Columns:     []string{"id", "name"},
			Constraints: []string{"id"},
			Upsert:      true,
		}

		expected := `INSERT INTO "users" ("id", "name") VALUES ($1, $2) ON CONFLICT ("id") DO UPDATE SET "id"=excluded."id", "name"=excluded."name";`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})
}

func TestUpdate(t *testing.T) {
	r := postgres.New()

	stmt := sqlgen.Update{
		Table: sqlgen.Table{Name: "users"},
		Sets: []sqlgen.UpdateSet{
			{Col: sqlgen.Col("name"), To: sqlgen.Str("alice")},
			{Col: sqlgen.Col("active"), To: sqlgen.Bool(true)},
		},
		Where: sqlgen.Equal{Op1: sqlgen.Col("id"), Op2: sqlgen.Int(1)},
	}

	expected := `UPDATE "users" SET "name" = 'alice', "active" = 1 WHERE "id" = 1;`
	if got := r.Render(stmt); got != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
	}
}

func TestDeleteFrom(t *testing.T) {
	r := postgres.New()

	t.Run("with where", func(t *testing.T) {
		stmt := sqlgen.DeleteFrom{
			Table: sqlgen.Table{Name: "users"},
			Where: sqlgen.Equal{Op1: sqlgen.Col("id"), Op2: sqlgen.Int(1)},
		}

		expected := `DELETE FROM "users" WHERE "id" = 1;`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("without where", func(t *testing.T) {
		stmt := sqlgen.DeleteFrom{Table: sqlgen.Table{Name: "users"}}

		expected := `DELETE FROM "users";`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})
}

func TestCreateTable(t *testing.T) {
	r := postgres.New()

	t.Run("constraints and primary key", func(t *testing.T) {
		stmt := sqlgen.CreateTable{
			Table: sqlgen.Table{Name: "profiles"},
			Columns: []sqlgen.Column{
				{Name: "id", Type: sqlgen.Int64{Props: sqlgen.Properties{Primary: true, AutoIncr: true}}},
				{Name: "email", Type: sqlgen.Text{Props: sqlgen.Properties{Unique: true}}},
				{Name: "user_id", Type: sqlgen.Int64{Props: sqlgen.Properties{
					ForeignKey: &sqlgen.ForeignKey{Table: "users", Column: "id"},
				}}},
				{Name: "bio", Type: sqlgen.Text{Props: sqlgen.Properties{Nullable: true}}},
			},
		}

		expected := `CREATE TABLE "profiles" (` +
			`"id" BIGINT GENERATED ALWAYS AS IDENTITY NOT NULL, ` +
			`"email" TEXT NOT NULL UNIQUE, ` +
			`"user_id" BIGINT NOT NULL REFERENCES "users"("id"), ` +
			`"bio" TEXT, ` +
			`PRIMARY KEY ("id"));`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("composite primary key", func(t *testing.T) {
		stmt := sqlgen.CreateTable{
			Table: sqlgen.Table{Name: "memberships"},
			Columns: []sqlgen.Column{
				{Name: "user_id", Type: sqlgen.Int64{Props: sqlgen.Properties{Primary: true}}},
				{Name: "group_id", Type: sqlgen.Int64{Props: sqlgen.Properties{Primary: true}}},
			},
		}

		expected := `CREATE TABLE "memberships" (` +
			`"user_id" BIGINT NOT NULL, ` +
			`"group_id" BIGINT NOT NULL, ` +
			`PRIMARY KEY ("user_id", "group_id"));`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("enum type precedes table", func(t *testing.T) {
		stmt := sqlgen.CreateTable{
			Table: sqlgen.Table{Name: "posts"},
			Columns: []sqlgen.Column{
				{Name: "id", Type: sqlgen.Int64{Props: sqlgen.Properties{Primary: true}}},
				{Name: "mood", Type: sqlgen.Enum{Name: "mood", Labels: []string{"happy", "sad"}}},
			},
			IfNotExists: true,
		}

		expected := `DO $$ BEGIN CREATE TYPE mood AS ENUM ('happy', 'sad'); ` +
			`EXCEPTION WHEN duplicate_object THEN NULL; END $$;` +
			`CREATE TABLE IF NOT EXISTS "posts" (` +
			`"id" BIGINT NOT NULL, ` +
			`"mood" mood NOT NULL, ` +
			`PRIMARY KEY ("id"));`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})
}

func TestCreateIndex(t *testing.T) {
	r := postgres.New()

	t.Run("unique if not exists", func(t *testing.T) {
		stmt := sqlgen.CreateIndex{
			Name:        "idx_users_email",
			Table:       sqlgen.Table{Name: "users"},
			Columns:     []string{"email"},
			Unique:      true,
			IfNotExists: true,
		}

		expected := `CREATE UNIQUE INDEX IF NOT EXISTS "idx_users_email" ON "users"("email");`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("partial index", func(t *testing.T) {
		stmt := sqlgen.CreateIndex{
			Name:    "idx_active_users",
			Table:   sqlgen.Table{Name: "users"},
			Columns: []string{"id"},
			Where:   sqlgen.Equal{Op1: sqlgen.Col("active"), Op2: sqlgen.Bool(true)},
		}

		expected := `CREATE INDEX "idx_active_users" ON "users"("id") WHERE "active" = 1;`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})
}

func TestCreateAs(t *testing.T) {
	r := postgres.New()

	stmt := sqlgen.CreateAs{
		What:        sqlgen.KindMaterializedView,
		TableOrView: sqlgen.Table{Name: "active_users"},
		Query: sqlgen.SelectFrom{
			Fields:       []sqlgen.Field{{Val: sqlgen.Col("id")}},
			TableOrQuery: sqlgen.Table{Name: "users"},
			Where:        sqlgen.Equal{Op1: sqlgen.Col("active"), Op2: sqlgen.Bool(true)},
		},
	}

	expected := `CREATE MATERIALIZED VIEW "active_users" AS SELECT "id" FROM "users" WHERE "active" = 1`
	if got := r.Render(stmt); got != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
	}
}

func TestDrop(t *testing.T) {
	r := postgres.New()

	t.Run("table cascade", func(t *testing.T) {
		stmt := sqlgen.Drop{
			What:     sqlgen.KindTable,
			Table:    sqlgen.Table{Name: "users"},
			IfExists: true,
			Cascade:  true,
		}

		expected := `DROP TABLE IF EXISTS "users" CASCADE;`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("view", func(t *testing.T) {
		stmt := sqlgen.Drop{
			What:  sqlgen.KindView,
			Table: sqlgen.Table{Name: "active_users"},
		}

		expected := `DROP VIEW "active_users";`
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})
}

func TestWrite(t *testing.T) {
	r := postgres.New()

	t.Run("default schema", func(t *testing.T) {
		stmt := sqlgen.Write{
			Table:   sqlgen.Table{Name: "events"},
			Columns: []string{"id", "payload"},
		}

		expected := "COPY \"public\".\"events\"(\"id\", \"payload\") FROM STDIN " +
			"WITH DELIMITER '\t' NULL '\x1b' CSV QUOTE '\a';"
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})

	t.Run("explicit schema", func(t *testing.T) {
		stmt := sqlgen.Write{
			Table:   sqlgen.Table{Name: "events", Schema: "audit"},
			Columns: []string{"id"},
		}

		expected := "COPY \"audit\".\"events\"(\"id\") FROM STDIN " +
			"WITH DELIMITER '\t' NULL '\x1b' CSV QUOTE '\a';"
		if got := r.Render(stmt); got != expected {
			t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
		}
	})
}
