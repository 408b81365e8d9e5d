// Package postgres provides the PostgreSQL dialect for sqlrest.
package postgres

import (
	"strconv"

	"github.com/zoobzio/sqlrest/internal/render"
)

// Dialect renders PostgreSQL tokens: double-quoted identifiers and $n
// placeholders.
type Dialect struct{}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "postgres".
func (d *Dialect) Name() string {
	return "postgres"
}

// Placeholder returns $n.
func (d *Dialect) Placeholder(position int) string {
	return "$" + strconv.Itoa(position)
}

// QuoteIdentifier wraps name in double quotes.
func (d *Dialect) QuoteIdentifier(name string) string {
	return render.QuoteWith(name, `"`, `"`)
}

// Capabilities returns the SQL features supported by PostgreSQL.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Limit:     true,
		RightJoin: true,
	}
}
