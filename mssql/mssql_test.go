package mssql_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/sqlrest"
	"github.com/zoobzio/sqlrest/mssql"
	sqltest "github.com/zoobzio/sqlrest/testing"
)

func TestDialect(t *testing.T) {
	d := mssql.New()

	if d.Name() != "mssql" {
		t.Errorf("Name() = %q, want %q", d.Name(), "mssql")
	}
	if got := d.Placeholder(4); got != "@p4" {
		t.Errorf("Placeholder(4) = %q, want %q", got, "@p4")
	}
	if got := d.QuoteIdentifier("a]b"); got != "[a]]b]" {
		t.Errorf("QuoteIdentifier() = %q, want %q", got, "[a]]b]")
	}
	caps := d.Capabilities()
	if caps.Limit || !caps.OffsetRows {
		t.Errorf("Capabilities() = %+v", caps)
	}
}

func TestRender(t *testing.T) {
	d := mssql.New()

	t.Run("offset uses ROWS", func(t *testing.T) {
		stmt := sqlrest.Select("users", []any{"id"}, sqlrest.Offset(10), sqlrest.OrderBy("id", sqlrest.ASC))
		sqltest.AssertRender(t, d, stmt, `SELECT [id] FROM [users] ORDER BY [id] ASC OFFSET @p1 ROWS`, int64(10))
	})

	t.Run("limit is unsupported", func(t *testing.T) {
		_, err := sqlrest.Render(d, sqlrest.Select("users", nil, sqlrest.Limit(10)))
		var ufErr sqlrest.UnsupportedFeatureError
		if !errors.As(err, &ufErr) {
			t.Fatalf("Render() error = %v, want UnsupportedFeatureError", err)
		}
		if ufErr.Hint != "use OFFSET ... FETCH NEXT" {
			t.Errorf("Hint = %q", ufErr.Hint)
		}
		sqltest.AssertErrorContains(t, err, "mssql: LIMIT is not supported")
	})

	t.Run("update", func(t *testing.T) {
		stmt := sqlrest.Update("users", sqlrest.C("id", sqlrest.EQ, 3), nil, sqlrest.Set("name", "x"))
		sqltest.AssertRender(t, d, stmt, `UPDATE [users] SET [name] = @p1 WHERE [id] = @p2`, "x", 3)
	})
}
