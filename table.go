package sqlrest

import (
	"fmt"

	"github.com/zoobzio/sqlrest/internal/types"
)

// TryT creates a table reference, returning an error if invalid.
func TryT(name string, alias ...string) (types.Table, error) {
	if name == "" {
		return types.Table{}, fmt.Errorf("%w: table name cannot be empty", ErrSyntax)
	}

	t := types.Table{Name: name}
	if len(alias) > 0 {
		if len(alias) > 1 {
			return types.Table{}, fmt.Errorf("%w: only one alias allowed", ErrSyntax)
		}
		// Enforce single lowercase letter for aliases
		if !isValidTableAlias(alias[0]) {
			return types.Table{}, fmt.Errorf("%w: table alias must be single lowercase letter (a-z), got: %s", ErrSyntax, alias[0])
		}
		t.Alias = alias[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, alias ...string) types.Table {
	table, err := TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return table
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// toTable unwraps a relation argument: a table name, a Table, or anything
// implementing Relational.
func toTable(relation any) (types.Table, error) {
	switch r := relation.(type) {
	case string:
		return TryT(r)
	case types.Relational:
		t := r.Relation()
		if t.Name == "" {
			return types.Table{}, fmt.Errorf("%w: table name cannot be empty", ErrSyntax)
		}
		return t, nil
	default:
		return types.Table{}, fmt.Errorf("%w: relation must be a string, Table or Relational, got %T", ErrType, relation)
	}
}
