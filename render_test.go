package sqlgen_test

import (
	"sync"
	"testing"

	"github.com/zoobzio/sqlgen"
	"github.com/zoobzio/sqlgen/mysql"
	"github.com/zoobzio/sqlgen/postgres"
	"github.com/zoobzio/sqlgen/sqlite"
)

var (
	_ sqlgen.Renderer = (*postgres.Renderer)(nil)
	_ sqlgen.Renderer = (*sqlite.Renderer)(nil)
	_ sqlgen.Renderer = (*mysql.Renderer)(nil)
)

func TestOneASTAcrossDialects(t *testing.T) {
	stmt := sqlgen.SelectFrom{
		Fields: []sqlgen.Field{
			{Val: sqlgen.Col("id")},
			{Val: sqlgen.Upper{Op1: sqlgen.Col("name")}, As: "n"},
		},
		TableOrQuery: sqlgen.Table{Name: "users"},
		Where: sqlgen.And{
			Cond1: sqlgen.GreaterThan{Op1: sqlgen.Col("age"), Op2: sqlgen.Int(18)},
			Cond2: sqlgen.Like{Op: sqlgen.Col("name"), Pattern: sqlgen.Str("a%")},
		},
		Limit: sqlgen.Limit(5),
	}

	cases := []struct {
		name     string
		renderer sqlgen.Renderer
		expected string
	}{
		{
			"postgres",
			postgres.New(),
			`SELECT "id", upper("name") AS "n" FROM "users" WHERE ("age" > 18) AND ("name" LIKE 'a%') LIMIT 5`,
		},
		{
			"sqlite",
			sqlite.New(),
			`SELECT "id", upper("name") AS "n" FROM "users" WHERE ("age" > 18) AND ("name" LIKE 'a%') LIMIT 5`,
		},
		{
			"mysql",
			mysql.New(),
			"SELECT `id`, upper(`name`) AS `n` FROM `users` WHERE (`age` > 18) AND (`name` LIKE 'a%') LIMIT 5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.renderer.Render(stmt); got != tc.expected {
				t.Errorf("Expected:\n%s\nGot:\n%s", tc.expected, got)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	cases := []struct {
		name     string
		renderer sqlgen.Renderer
		expected sqlgen.Capabilities
	}{
		{
			"postgres",
			postgres.New(),
			sqlgen.Capabilities{
				Placeholders:    sqlgen.PlaceholderDollar,
				NativeEnum:      true,
				EnumPredeclared: true,
				IdentityColumns: true,
				BulkCopy:        true,
				TimeZoneTypes:   true,
			},
		},
		{
			"sqlite",
			sqlite.New(),
			sqlgen.Capabilities{
				Placeholders: sqlgen.PlaceholderQuestion,
			},
		},
		{
			"mysql",
			mysql.New(),
			sqlgen.Capabilities{
				Placeholders: sqlgen.PlaceholderQuestion,
				NativeEnum:   true,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.renderer.Capabilities(); got != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestConcurrentRender(t *testing.T) {
	stmt := sqlgen.SelectFrom{
		Fields:       []sqlgen.Field{{Val: sqlgen.Col("id")}},
		TableOrQuery: sqlgen.Table{Name: "users"},
		Where:        sqlgen.Equal{Op1: sqlgen.Col("id"), Op2: sqlgen.Int(5)},
	}

	r := postgres.New()
	reference := r.Render(stmt)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := r.Render(stmt); got != reference {
					t.Errorf("concurrent render diverged: %s", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
