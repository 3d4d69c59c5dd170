package integration

import "github.com/zoobzio/dbml"

// testProject builds the DBML schema shared by the round-trip tests.
func testProject() *dbml.Project {
	project := dbml.NewProject("sqlgen_test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar(64)"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "text"))
	project.AddTable(posts)

	return project
}
