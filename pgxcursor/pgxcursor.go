// Package pgxcursor runs sqlrest commands over a native pgx connection,
// pool or transaction.
package pgxcursor

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zoobzio/sqlrest"
	"github.com/zoobzio/sqlrest/postgres"
)

// Conn is the pgx query surface. *pgx.Conn, *pgxpool.Pool and pgx.Tx all
// satisfy it.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Cursor renders trees with the postgres dialect and runs them on a Conn.
type Cursor struct {
	conn    Conn
	dialect *postgres.Dialect
	logger  sqlrest.QueryLogger
	schema  *sqlrest.Schema
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithLogger sets the collaborator that records each command before it runs.
func WithLogger(l sqlrest.QueryLogger) Option {
	return func(c *Cursor) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSchema checks every statement tree against s before rendering.
func WithSchema(s *sqlrest.Schema) Option {
	return func(c *Cursor) {
		c.schema = s
	}
}

// Wrap creates a Cursor over conn.
func Wrap(conn Conn, opts ...Option) *Cursor {
	c := &Cursor{
		conn:    conn,
		dialect: postgres.New(),
		logger:  sqlrest.QueryLoggerFunc(func(context.Context, string, []any) {}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Conn returns the wrapped connection.
func (c *Cursor) Conn() Conn {
	return c.conn
}

// Execute runs a command that returns no rows.
func (c *Cursor) Execute(ctx context.Context, command any, params ...any) (pgconn.CommandTag, error) {
	query, args, err := c.prepare(ctx, command, params)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return c.conn.Exec(ctx, query, args...)
}

// Query runs a command that returns rows.
func (c *Cursor) Query(ctx context.Context, command any, params ...any) (pgx.Rows, error) {
	query, args, err := c.prepare(ctx, command, params)
	if err != nil {
		return nil, err
	}
	return c.conn.Query(ctx, query, args...)
}

// QueryRow runs a command expected to return at most one row.
func (c *Cursor) QueryRow(ctx context.Context, command any, params ...any) (pgx.Row, error) {
	query, args, err := c.prepare(ctx, command, params)
	if err != nil {
		return nil, err
	}
	return c.conn.QueryRow(ctx, query, args...), nil
}

func (c *Cursor) prepare(ctx context.Context, command any, params []any) (string, []any, error) {
	query, args, err := sqlrest.PrepareCommand(c.dialect, c.schema, command, params)
	if err != nil {
		return "", nil, err
	}
	c.logger.LogQuery(ctx, query, args)
	return query, args, nil
}

// IsNotFound reports whether err is pgx.ErrNoRows.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports whether err is a unique constraint violation
// (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
