package sqlrest

// Dialect defines the token rules of one database. The dialect packages
// (postgres, sqlite, mariadb, mssql) provide implementations.
type Dialect interface {
	// Name identifies the dialect in error messages.
	Name() string

	// Placeholder returns the bind marker for the parameter at the given
	// 1-based position.
	Placeholder(position int) string

	// QuoteIdentifier quotes a single identifier part.
	QuoteIdentifier(name string) string

	// Capabilities reports which optional clauses the dialect can render.
	Capabilities() Capabilities
}
