// Package benchmarks provides performance benchmarks for sqlrest.
package benchmarks

import (
	"testing"

	"github.com/zoobzio/sqlrest"
	"github.com/zoobzio/sqlrest/mssql"
	"github.com/zoobzio/sqlrest/postgres"
	sqltest "github.com/zoobzio/sqlrest/testing"
)

func benchRender(b *testing.B, d sqlrest.Dialect, n sqlrest.Node) {
	b.Helper()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := sqlrest.Render(d, n); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSimpleSelect measures simple SELECT query rendering.
func BenchmarkSimpleSelect(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Select("users", nil))
}

// BenchmarkSelectWithWhere measures SELECT with a nested WHERE clause.
func BenchmarkSelectWithWhere(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Select("users", []any{"id", "username", "email"},
		sqlrest.Where(sqlrest.And(
			sqlrest.C("active", sqlrest.EQ, true),
			sqlrest.Or(
				sqlrest.C("age", sqlrest.GT, 18),
				sqlrest.C("username", sqlrest.LIKE, "a%"),
			),
		)),
	))
}

// BenchmarkSelectWithJoin measures SELECT with a LEFT JOIN.
func BenchmarkSelectWithJoin(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Select(sqlrest.T("users", "u"), []any{"u.username", "p.title"},
		sqlrest.LeftJoin(sqlrest.T("posts", "p"), "p.user_id = u.id AND p.views >", 100),
	))
}

// BenchmarkSelectPaged measures GROUP BY with LIMIT and OFFSET.
func BenchmarkSelectPaged(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Select("orders", []any{"user_id", sqlrest.Raw("SUM(total)")},
		sqlrest.GroupBy("user_id"),
		sqlrest.OrderBy("user_id", sqlrest.ASC),
		sqlrest.Limit(10),
		sqlrest.Offset(20),
	))
}

// BenchmarkSelectOffsetRows measures the SQL Server OFFSET ... ROWS form.
func BenchmarkSelectOffsetRows(b *testing.B) {
	benchRender(b, mssql.New(), sqlrest.Select("users", nil,
		sqlrest.OrderBy("created_at", sqlrest.DESC),
		sqlrest.Offset(20),
	))
}

// BenchmarkInsert measures a multi-row INSERT.
func BenchmarkInsert(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Insert("users", []string{"username", "email", "age"},
		[]any{"ann", "ann@example.com", 31},
		[]any{"bob", "bob@example.com", 27},
		[]any{"cid", "cid@example.com", 45},
	))
}

// BenchmarkInsertSelect measures INSERT from a subquery.
func BenchmarkInsertSelect(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Insert("orders", []string{"user_id", "total"},
		sqlrest.Select("users", []any{"id", sqlrest.Lit(0)}, sqlrest.Where(sqlrest.C("active", sqlrest.EQ, true))),
	))
}

// BenchmarkUpdate measures UPDATE with info and explicit assignments.
func BenchmarkUpdate(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Update("users",
		sqlrest.C("id", sqlrest.EQ, 7),
		map[string]any{"email": "new@example.com", "age": 32},
		sqlrest.Set("active", false),
	))
}

// BenchmarkDelete measures DELETE with an IN list.
func BenchmarkDelete(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Delete("users", sqlrest.In("id", []int{1, 2, 3, 4, 5})))
}

// BenchmarkSubquery measures a comparison against a nested SELECT.
func BenchmarkSubquery(b *testing.B) {
	benchRender(b, postgres.New(), sqlrest.Select("users", nil,
		sqlrest.Where(sqlrest.C("id", sqlrest.IN,
			sqlrest.Select("orders", []any{"user_id"}, sqlrest.Where(sqlrest.C("total", sqlrest.GT, 100))))),
	))
}

// BenchmarkPrepareWithSchema measures the cursor path: schema check plus render.
func BenchmarkPrepareWithSchema(b *testing.B) {
	schema, err := sqlrest.NewFromDBML(sqltest.TestProject())
	if err != nil {
		b.Fatal(err)
	}
	stmt := sqlrest.Select("users", []any{"id", "email"},
		sqlrest.Where(sqlrest.C("country", sqlrest.EQ, "de")),
		sqlrest.Limit(50),
	)
	d := postgres.New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := sqlrest.PrepareCommand(d, schema, stmt, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConditionCreation measures building a comparison.
func BenchmarkConditionCreation(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = sqlrest.C("age", sqlrest.GE, 18)
	}
}
