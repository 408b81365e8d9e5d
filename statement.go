package sqlrest

import (
	"fmt"
	"sort"

	"github.com/zoobzio/sqlrest/internal/types"
)

// Nil returns the placeholder node. It renders to an empty string wherever
// it appears.
func Nil() types.Nil {
	return types.Nil{}
}

// TryInsert creates an INSERT statement, returning an error if invalid.
//
// values is either one or more rows, each a []any holding exactly one value
// per column, or a single SELECT whose result is inserted. Conditions built
// with Expr, C, And, Or or Not render in parentheses; Raw SQL and other nodes
// render in place and plain Go values are bound.
func TryInsert(relation any, columns []string, values ...any) (types.Insert, error) {
	t, err := toTable(relation)
	if err != nil {
		return types.Insert{}, err
	}
	if len(values) == 0 {
		return types.Insert{}, fmt.Errorf("%w: you must supply values to an insert statement", ErrSyntax)
	}

	ins := types.Insert{
		Relation: t,
		Columns:  append([]string(nil), columns...),
	}

	if sel, ok := asSelect(values[0]); ok {
		if len(values) > 1 {
			return types.Insert{}, fmt.Errorf("%w: an insert from select takes no further values", ErrSyntax)
		}
		ins.Select = &sel
		return ins, nil
	}

	ins.Rows = make([][]types.Node, 0, len(values))
	for i, v := range values {
		row, ok := v.([]any)
		if !ok {
			return types.Insert{}, fmt.Errorf("%w: insert value %d must be a []any row or a select, got %T", ErrType, i, v)
		}
		if len(row) != len(columns) {
			return types.Insert{}, fmt.Errorf("%w: you must provide exactly one value for each column (row %d has %d, want %d)",
				ErrSyntax, i, len(row), len(columns))
		}
		nodes := make([]types.Node, 0, len(row))
		for _, part := range row {
			nodes = append(nodes, valueNode(part))
		}
		ins.Rows = append(ins.Rows, nodes)
	}
	return ins, nil
}

// Insert creates an INSERT statement.
func Insert(relation any, columns []string, values ...any) types.Insert {
	ins, err := TryInsert(relation, columns, values...)
	if err != nil {
		panic(err)
	}
	return ins
}

func asSelect(v any) (types.Select, bool) {
	switch s := v.(type) {
	case types.Select:
		return s, true
	case *types.Select:
		if s != nil {
			return *s, true
		}
	}
	return types.Select{}, false
}

// Set creates a column = value assignment for Update.
func Set(column string, value any) types.Assignment {
	return types.Assignment{Column: column, Value: valueNode(value)}
}

// TryUpdate creates an UPDATE statement, returning an error if invalid.
//
// info maps columns to values and is applied in column name order;
// assignments follow and override a same-named column from info. where is
// wrapped in a WHERE clause unless it already is one.
func TryUpdate(relation any, where any, info map[string]any, assignments ...types.Assignment) (types.Update, error) {
	t, err := toTable(relation)
	if err != nil {
		return types.Update{}, err
	}
	w, err := TryWhere(where)
	if err != nil {
		return types.Update{}, err
	}

	columns := make([]string, 0, len(info))
	for column := range info {
		columns = append(columns, column)
	}
	// Sort columns by name for deterministic output
	sort.Strings(columns)

	merged := make([]types.Assignment, 0, len(info)+len(assignments))
	index := make(map[string]int, len(info)+len(assignments))
	for _, column := range columns {
		index[column] = len(merged)
		merged = append(merged, Set(column, info[column]))
	}
	for _, a := range assignments {
		if a.Value == nil {
			a.Value = types.Literal{}
		}
		if i, ok := index[a.Column]; ok {
			merged[i] = a
			continue
		}
		index[a.Column] = len(merged)
		merged = append(merged, a)
	}

	if len(merged) == 0 {
		return types.Update{}, fmt.Errorf("%w: UPDATE requires at least one column to set", ErrSyntax)
	}
	for _, a := range merged {
		if a.Column == "" {
			return types.Update{}, fmt.Errorf("%w: assignment requires a column", ErrSyntax)
		}
	}

	return types.Update{Relation: t, Assignments: merged, Where: w}, nil
}

// Update creates an UPDATE statement.
func Update(relation any, where any, info map[string]any, assignments ...types.Assignment) types.Update {
	u, err := TryUpdate(relation, where, info, assignments...)
	if err != nil {
		panic(err)
	}
	return u
}

// TryDelete creates a DELETE statement, returning an error if invalid. The
// optional where restricts the rows removed; without it the statement has no
// WHERE segment at all.
func TryDelete(relation any, where ...any) (types.Delete, error) {
	t, err := toTable(relation)
	if err != nil {
		return types.Delete{}, err
	}
	del := types.Delete{Relation: t}

	switch len(where) {
	case 0:
	case 1:
		if where[0] == nil {
			break
		}
		w, err := TryWhere(where[0])
		if err != nil {
			return types.Delete{}, err
		}
		del.Where = &w
	default:
		return types.Delete{}, fmt.Errorf("%w: DELETE takes at most one where clause", ErrSyntax)
	}
	return del, nil
}

// Delete creates a DELETE statement.
func Delete(relation any, where ...any) types.Delete {
	d, err := TryDelete(relation, where...)
	if err != nil {
		panic(err)
	}
	return d
}

// TrySelect creates a SELECT statement, returning an error if invalid.
// String columns are identifiers and nodes render in place; no columns
// selects *. Clauses may be given in any order.
func TrySelect(relation any, columns []any, clauses ...types.Node) (types.Select, error) {
	t, err := toTable(relation)
	if err != nil {
		return types.Select{}, err
	}

	sel := types.Select{Relation: t}
	for _, c := range columns {
		switch col := c.(type) {
		case string:
			sel.Columns = append(sel.Columns, types.Identifier{Name: col})
		case types.Node:
			sel.Columns = append(sel.Columns, col)
		default:
			return types.Select{}, fmt.Errorf("%w: column must be a string or node, got %T", ErrType, c)
		}
	}
	for _, clause := range clauses {
		if clause == nil || !clause.Kind().IsClause() {
			return types.Select{}, fmt.Errorf("%w: %T is not a clause", ErrType, clause)
		}
		sel.Clauses = append(sel.Clauses, clause)
	}
	return sel, nil
}

// Select creates a SELECT statement.
func Select(relation any, columns []any, clauses ...types.Node) types.Select {
	s, err := TrySelect(relation, columns, clauses...)
	if err != nil {
		panic(err)
	}
	return s
}

// Distinct returns a copy of s that selects distinct rows.
func Distinct(s types.Select) types.Select {
	s.Distinct = true
	return s
}
