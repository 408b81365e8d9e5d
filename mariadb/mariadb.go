// Package mariadb provides the MariaDB/MySQL dialect for sqlrest.
package mariadb

import "github.com/zoobzio/sqlrest/internal/render"

// Dialect renders MariaDB tokens: backtick-quoted identifiers and ?
// placeholders.
type Dialect struct{}

// New creates a new MariaDB dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "mariadb".
func (d *Dialect) Name() string {
	return "mariadb"
}

// Placeholder returns ? regardless of position.
func (d *Dialect) Placeholder(_ int) string {
	return "?"
}

// QuoteIdentifier wraps name in backticks, doubling embedded backticks.
func (d *Dialect) QuoteIdentifier(name string) string {
	return render.QuoteWith(name, "`", "`")
}

// Capabilities returns the SQL features supported by MariaDB.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Limit:     true,
		RightJoin: true,
	}
}
