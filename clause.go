package sqlrest

import (
	"fmt"

	"github.com/zoobzio/sqlrest/internal/types"
)

// TryWhere wraps a condition as a WHERE clause. A Where passes through
// unchanged and nil becomes an empty WHERE that renders to nothing.
func TryWhere(condition any) (types.Where, error) {
	if w, ok := condition.(types.Where); ok {
		return w, nil
	}
	n, err := toCondition(condition)
	if err != nil {
		return types.Where{}, err
	}
	return types.Where{Condition: n}, nil
}

// Where wraps a condition as a WHERE clause.
func Where(condition any) types.Where {
	w, err := TryWhere(condition)
	if err != nil {
		panic(err)
	}
	return w
}

// GroupBy encapsulates the GROUP BY clause of a SELECT. Columns are quoted
// as identifiers and not otherwise checked.
func GroupBy(columns ...string) types.GroupBy {
	return types.GroupBy{Columns: append([]string(nil), columns...)}
}

// TryLimit creates a LIMIT clause. n must be a Go integer that fits in int64.
func TryLimit(n any) (types.Limit, error) {
	v, err := toInt64(n)
	if err != nil {
		return types.Limit{}, fmt.Errorf("limit: %w", err)
	}
	return types.Limit{Value: v}, nil
}

// Limit creates a LIMIT clause.
func Limit(n any) types.Limit {
	l, err := TryLimit(n)
	if err != nil {
		panic(err)
	}
	return l
}

// TryOffset creates an OFFSET clause. n must be a Go integer or a *big.Int.
// The sign is not checked; a negative offset is left for the database to
// reject.
func TryOffset(n any) (types.Offset, error) {
	b, ok := toInteger(n, true)
	if !ok {
		return types.Offset{}, fmt.Errorf("offset: %w: must be an integer, got %T", ErrType, n)
	}
	return types.Offset{Value: types.NewInteger(b)}, nil
}

// Offset creates an OFFSET clause.
func Offset(n any) types.Offset {
	o, err := TryOffset(n)
	if err != nil {
		panic(err)
	}
	return o
}

// TryJoin creates a JOIN ... ON clause. The relation may be a table name, a
// Table, or a Relational, which is unwrapped to its underlying table. The on
// parts form an expression as in Expr.
func TryJoin(kind types.JoinType, relation any, on ...any) (types.Join, error) {
	switch kind {
	case types.InnerJoin, types.LeftJoin, types.RightJoin:
	default:
		return types.Join{}, fmt.Errorf("%w: unsupported join type %q", ErrSyntax, kind)
	}
	t, err := toTable(relation)
	if err != nil {
		return types.Join{}, err
	}
	cond, err := TryExpr(on...)
	if err != nil {
		return types.Join{}, fmt.Errorf("%s requires an ON condition: %w", kind, err)
	}
	return types.Join{Type: kind, Relation: t, On: cond}, nil
}

// TryLeftJoin creates a LEFT JOIN clause, returning an error if invalid.
func TryLeftJoin(relation any, on ...any) (types.Join, error) {
	return TryJoin(types.LeftJoin, relation, on...)
}

// LeftJoin creates a LEFT JOIN clause.
func LeftJoin(relation any, on ...any) types.Join {
	return mustJoin(TryLeftJoin(relation, on...))
}

// TryRightJoin creates a RIGHT JOIN clause, returning an error if invalid.
func TryRightJoin(relation any, on ...any) (types.Join, error) {
	return TryJoin(types.RightJoin, relation, on...)
}

// RightJoin creates a RIGHT JOIN clause.
func RightJoin(relation any, on ...any) types.Join {
	return mustJoin(TryRightJoin(relation, on...))
}

// InnerJoin creates an INNER JOIN clause.
func InnerJoin(relation any, on ...any) types.Join {
	return mustJoin(TryJoin(types.InnerJoin, relation, on...))
}

func mustJoin(j types.Join, err error) types.Join {
	if err != nil {
		panic(err)
	}
	return j
}

// OrderBy creates an ORDER BY clause with a single term. Chain ThenBy for
// further terms.
func OrderBy(column string, direction types.Direction) types.OrderBy {
	return types.OrderBy{}.ThenBy(column, direction)
}
