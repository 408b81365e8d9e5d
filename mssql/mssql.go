// Package mssql provides the SQL Server dialect for sqlrest.
package mssql

import (
	"strconv"

	"github.com/zoobzio/sqlrest/internal/render"
)

// Dialect renders SQL Server tokens: bracketed identifiers and @pN
// placeholders, as expected by go-mssqldb.
type Dialect struct{}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "mssql".
func (d *Dialect) Name() string {
	return "mssql"
}

// Placeholder returns @pN.
func (d *Dialect) Placeholder(position int) string {
	return "@p" + strconv.Itoa(position)
}

// QuoteIdentifier wraps name in square brackets, doubling embedded ].
func (d *Dialect) QuoteIdentifier(name string) string {
	return render.QuoteWith(name, "[", "]")
}

// Capabilities returns the SQL features supported by SQL Server.
// SQL Server has no LIMIT; OFFSET takes the ROWS keyword.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		OffsetRows: true,
		RightJoin:  true,
	}
}
