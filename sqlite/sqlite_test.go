package sqlite_test

import (
	"testing"

	"github.com/zoobzio/sqlrest"
	"github.com/zoobzio/sqlrest/sqlite"
	sqltest "github.com/zoobzio/sqlrest/testing"
)

func TestDialect(t *testing.T) {
	d := sqlite.New()

	if d.Name() != "sqlite" {
		t.Errorf("Name() = %q, want %q", d.Name(), "sqlite")
	}
	if d.Placeholder(1) != "?" || d.Placeholder(7) != "?" {
		t.Errorf("Placeholder() = %q, want ?", d.Placeholder(7))
	}
	if got := d.QuoteIdentifier("order"); got != `"order"` {
		t.Errorf("QuoteIdentifier() = %q, want %q", got, `"order"`)
	}
	if caps := d.Capabilities(); !caps.Limit || caps.OffsetRows {
		t.Errorf("Capabilities() = %+v", caps)
	}
}

func TestRender(t *testing.T) {
	d := sqlite.New()

	t.Run("limit and offset", func(t *testing.T) {
		stmt := sqlrest.Select("users", nil, sqlrest.Offset(20), sqlrest.Limit(10))
		sqltest.AssertRender(t, d, stmt, `SELECT * FROM "users" LIMIT ? OFFSET ?`, int64(10), int64(20))
	})

	t.Run("update", func(t *testing.T) {
		stmt := sqlrest.Update("users", sqlrest.Null("email"), map[string]any{"active": false})
		sqltest.AssertRender(t, d, stmt, `UPDATE "users" SET "active" = ? WHERE "email" IS NULL`, false)
	})
}
