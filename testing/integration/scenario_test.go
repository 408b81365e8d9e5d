package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/sqlrest"
	"github.com/zoobzio/sqlrest/connect"
)

// schemaDDL creates the tables a scenario uses, in one database's syntax.
type schemaDDL struct {
	users   string
	archive string
}

var standardDDL = schemaDDL{
	users: `CREATE TABLE users (id BIGINT PRIMARY KEY, email VARCHAR(255) NOT NULL, age INT,
		country VARCHAR(8), active BOOLEAN NOT NULL DEFAULT TRUE)`,
	archive: `CREATE TABLE archive (id BIGINT, email VARCHAR(255))`,
}

var mssqlDDL = schemaDDL{
	users: `CREATE TABLE users (id BIGINT PRIMARY KEY, email VARCHAR(255) NOT NULL, age INT,
		country VARCHAR(8), active BIT NOT NULL DEFAULT 1)`,
	archive: `CREATE TABLE archive (id BIGINT, email VARCHAR(255))`,
}

func open(t *testing.T, driver, dsn string) *connect.Handle {
	t.Helper()

	h, err := connect.Open(context.Background(), connect.Config{
		Driver:        driver,
		DSN:           dsn,
		MaxOpenConns:  1,
		RetryAttempts: 5,
		RetryInterval: time.Second,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func mustExec(t *testing.T, cur *sqlrest.Cursor, command any) int64 {
	t.Helper()
	res, err := cur.Execute(context.Background(), command)
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	return n
}

func count(t *testing.T, cur *sqlrest.Cursor, table string) int {
	t.Helper()
	row, err := cur.QueryRow(context.Background(), sqlrest.Select(table, []any{sqlrest.Raw("COUNT(*)")}))
	require.NoError(t, err)
	var n int
	require.NoError(t, row.Scan(&n))
	return n
}

// runScenario drives every statement kind through cur. paged is the
// trailing pagination for the group query; it differs where a dialect has
// no LIMIT.
func runScenario(t *testing.T, cur *sqlrest.Cursor, ddl schemaDDL, paged ...sqlrest.Node) {
	t.Helper()
	ctx := context.Background()

	_, err := cur.Execute(ctx, "DROP TABLE IF EXISTS archive")
	require.NoError(t, err)
	_, err = cur.Execute(ctx, "DROP TABLE IF EXISTS users")
	require.NoError(t, err)
	_, err = cur.Execute(ctx, ddl.users)
	require.NoError(t, err)
	_, err = cur.Execute(ctx, ddl.archive)
	require.NoError(t, err)

	t.Run("insert rows", func(t *testing.T) {
		n := mustExec(t, cur, sqlrest.Insert("users", []string{"id", "email", "age", "country", "active"},
			[]any{1, "ann@x.io", 31, "de", true},
			[]any{2, "bob@x.io", 27, "de", false},
			[]any{3, "cid@x.io", 45, "fr", true},
			[]any{4, "dee@x.io", 19, "us", true},
		))
		assert.EqualValues(t, 4, n)
	})

	t.Run("update binds SET before WHERE", func(t *testing.T) {
		n := mustExec(t, cur, sqlrest.Update("users",
			sqlrest.C("country", sqlrest.EQ, "de"),
			map[string]any{"active": true},
			sqlrest.Set("age", 50),
		))
		assert.EqualValues(t, 2, n)

		row, err := cur.QueryRow(ctx, sqlrest.Select("users", []any{"age"}, sqlrest.Where(sqlrest.C("id", sqlrest.EQ, 2))))
		require.NoError(t, err)
		var age int
		require.NoError(t, row.Scan(&age))
		assert.Equal(t, 50, age)
	})

	t.Run("group by with pagination", func(t *testing.T) {
		clauses := append([]sqlrest.Node{
			sqlrest.GroupBy("country"),
			sqlrest.OrderBy("country", sqlrest.ASC),
		}, paged...)

		rows, err := cur.Query(ctx, sqlrest.Select("users", []any{"country", sqlrest.Raw("COUNT(*)")}, clauses...))
		require.NoError(t, err)
		defer rows.Close()

		counts := map[string]int{}
		for rows.Next() {
			var country string
			var n int
			require.NoError(t, rows.Scan(&country, &n))
			counts[country] = n
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, map[string]int{"de": 2, "fr": 1, "us": 1}, counts)
	})

	t.Run("join", func(t *testing.T) {
		rows, err := cur.Query(ctx, sqlrest.Select(sqlrest.T("users", "u"), []any{"u.email"},
			sqlrest.Where(sqlrest.Null("a.id")),
			sqlrest.LeftJoin(sqlrest.T("archive", "a"), "a.id = u.id"),
		))
		require.NoError(t, err)
		defer rows.Close()

		var emails []string
		for rows.Next() {
			var email string
			require.NoError(t, rows.Scan(&email))
			emails = append(emails, email)
		}
		require.NoError(t, rows.Err())
		assert.Len(t, emails, 4)
	})

	t.Run("insert from select", func(t *testing.T) {
		n := mustExec(t, cur, sqlrest.Insert("archive", []string{"id", "email"},
			sqlrest.Select("users", []any{"id", "email"}, sqlrest.Where(sqlrest.C("age", sqlrest.GE, 45)))))
		assert.EqualValues(t, 3, n)
		assert.Equal(t, 3, count(t, cur, "archive"))
	})

	t.Run("delete", func(t *testing.T) {
		assert.EqualValues(t, 2, mustExec(t, cur, sqlrest.Delete("users", sqlrest.In("id", []int{1, 2}))))
		assert.EqualValues(t, 2, mustExec(t, cur, sqlrest.Delete("users")))
		assert.Zero(t, count(t, cur, "users"))
	})
}

func TestSQLite(t *testing.T) {
	h := open(t, "sqlite", ":memory:")
	runScenario(t, h.Cursor, standardDDL, sqlrest.Limit(10), sqlrest.Offset(0))
}

func TestPostgres(t *testing.T) {
	skipShort(t)
	c := getPostgresContainer(t)

	h := open(t, "postgres", c.connStr)
	runScenario(t, h.Cursor, standardDDL, sqlrest.Limit(10), sqlrest.Offset(0))
}

func TestMariaDB(t *testing.T) {
	skipShort(t)
	c := getMariaDBContainer(t)

	h := open(t, "mariadb", c.connStr)
	runScenario(t, h.Cursor, standardDDL, sqlrest.Offset(0), sqlrest.Limit(10))
}

func TestMSSQL(t *testing.T) {
	skipShort(t)
	c := getMSSQLContainer(t)

	h := open(t, "mssql", c.connStr)
	// No LIMIT on SQL Server; OFFSET ... ROWS pages an ordered result.
	runScenario(t, h.Cursor, mssqlDDL, sqlrest.Offset(0))
}

func TestMSSQL_LimitIsRejectedBeforeExecution(t *testing.T) {
	skipShort(t)
	c := getMSSQLContainer(t)

	h := open(t, "mssql", c.connStr)
	_, err := h.Cursor.Query(context.Background(), sqlrest.Select("users", nil, sqlrest.Limit(1)))
	assert.ErrorIs(t, err, sqlrest.ErrUnsupported)
}
