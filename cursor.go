package sqlrest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zoobzio/sqlrest/internal/types"
)

// Executor is the driver surface a Cursor delegates to. *sql.DB, *sql.Tx and
// *sql.Conn all satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Cursor runs commands that are either literal SQL or statement trees.
// Trees are rendered for the cursor's dialect with a fresh Runner on every
// call. A Cursor holds no per-call state.
type Cursor struct {
	exec    Executor
	dialect Dialect
	logger  QueryLogger
	schema  *Schema
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithLogger sets the collaborator that records each command before it runs.
func WithLogger(l QueryLogger) Option {
	return func(c *Cursor) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSchema checks every statement tree against s before rendering.
func WithSchema(s *Schema) Option {
	return func(c *Cursor) {
		c.schema = s
	}
}

// Wrap creates a Cursor over exec that renders trees for dialect.
func Wrap(exec Executor, dialect Dialect, opts ...Option) *Cursor {
	c := &Cursor{
		exec:    exec,
		dialect: dialect,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Executor returns the wrapped executor.
func (c *Cursor) Executor() Executor {
	return c.exec
}

// Dialect returns the dialect trees are rendered for.
func (c *Cursor) Dialect() Dialect {
	return c.dialect
}

// Execute runs a command that returns no rows.
func (c *Cursor) Execute(ctx context.Context, command any, params ...any) (sql.Result, error) {
	query, args, err := c.prepare(ctx, command, params)
	if err != nil {
		return nil, err
	}
	return c.exec.ExecContext(ctx, query, args...)
}

// Query runs a command that returns rows.
func (c *Cursor) Query(ctx context.Context, command any, params ...any) (*sql.Rows, error) {
	query, args, err := c.prepare(ctx, command, params)
	if err != nil {
		return nil, err
	}
	return c.exec.QueryContext(ctx, query, args...)
}

// QueryRow runs a command expected to return at most one row. Errors from
// the query itself are deferred to Scan, as with database/sql.
func (c *Cursor) QueryRow(ctx context.Context, command any, params ...any) (*sql.Row, error) {
	query, args, err := c.prepare(ctx, command, params)
	if err != nil {
		return nil, err
	}
	return c.exec.QueryRowContext(ctx, query, args...), nil
}

// Prepare renders command to SQL and parameters without running it.
func (c *Cursor) Prepare(command any, params ...any) (string, []any, error) {
	return PrepareCommand(c.dialect, c.schema, command, params)
}

func (c *Cursor) prepare(ctx context.Context, command any, params []any) (string, []any, error) {
	query, args, err := c.Prepare(command, params...)
	if err != nil {
		return "", nil, err
	}
	c.logger.LogQuery(ctx, query, args)
	return query, args, nil
}

// PrepareCommand resolves a command into SQL text and parameters. Strings
// and byte slices are used verbatim with params. Statement trees are checked
// against schema when it is non-nil and rendered with a fresh Runner; they
// carry their own parameters, so passing params alongside one is an error.
func PrepareCommand(dialect Dialect, schema *Schema, command any, params []any) (string, []any, error) {
	var query string
	switch cmd := command.(type) {
	case string:
		query = cmd
	case []byte:
		query = string(cmd)
	case []rune:
		return "", nil, ErrDecodedCommand
	case types.Node:
		node, ok := types.Deref(cmd)
		if !ok {
			return "", nil, fmt.Errorf("%w: nil %T", ErrCommandType, command)
		}
		if !node.Kind().IsStatement() {
			return "", nil, fmt.Errorf("%w: %s is not a statement", ErrCommandType, node.Kind())
		}
		if len(params) > 0 {
			return "", nil, ErrParamsWithNode
		}
		if schema != nil {
			if err := schema.Check(node); err != nil {
				return "", nil, err
			}
		}
		r := NewRunner(dialect)
		rendered, err := r.Render(node)
		if err != nil {
			return "", nil, err
		}
		query, params = rendered, r.Params()
	default:
		return "", nil, fmt.Errorf("%w: got %T", ErrCommandType, command)
	}

	if query == "" {
		return "", nil, ErrEmptyCommand
	}
	return query, params, nil
}
