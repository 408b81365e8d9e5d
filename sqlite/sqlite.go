// Package sqlite provides the SQLite dialect for sqlrest.
package sqlite

import "github.com/zoobzio/sqlrest/internal/render"

// Dialect renders SQLite tokens: double-quoted identifiers and ? placeholders.
type Dialect struct{}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "sqlite".
func (d *Dialect) Name() string {
	return "sqlite"
}

// Placeholder returns ? regardless of position.
func (d *Dialect) Placeholder(_ int) string {
	return "?"
}

// QuoteIdentifier wraps name in double quotes, doubling embedded quotes.
func (d *Dialect) QuoteIdentifier(name string) string {
	return render.QuoteWith(name, `"`, `"`)
}

// Capabilities returns the SQL features supported by SQLite.
// RIGHT JOIN requires SQLite 3.39 or newer.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Limit:     true,
		RightJoin: true,
	}
}
