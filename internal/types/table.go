package types

// Table represents a relation reference.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type Table struct {
	Name  string
	Alias string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetAlias returns the table alias.
func (t Table) GetAlias() string {
	return t.Alias
}

// Relation lets a Table stand in wherever a Relational is accepted.
func (t Table) Relation() Table {
	return t
}

// Relational is implemented by values that carry an underlying relation,
// such as model types mapped to a table.
type Relational interface {
	Relation() Table
}
