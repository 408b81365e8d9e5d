package pgxcursor_test

import "github.com/zoobzio/dbml"

func testProject() *dbml.Project {
	project := dbml.NewProject("test")
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	project.AddTable(users)
	return project
}
