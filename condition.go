package sqlrest

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/sqlrest/internal/types"
)

// TryExpr builds an expression from parts rendered in order and joined by
// spaces. String parts are raw SQL; nodes render in place (a SELECT is
// parenthesized); any other value is bound as a literal.
//
//	sqlrest.Expr("age >", 18, "AND", sqlrest.C("name", sqlrest.LIKE, "a%"))
func TryExpr(parts ...any) (types.Expression, error) {
	if len(parts) == 0 {
		return types.Expression{}, fmt.Errorf("%w: expression requires at least one part", ErrSyntax)
	}
	nodes := make([]types.Node, 0, len(parts))
	for _, p := range parts {
		nodes = append(nodes, partNode(p))
	}
	return types.Expression{Parts: nodes}, nil
}

// Expr builds an expression from parts.
func Expr(parts ...any) types.Expression {
	e, err := TryExpr(parts...)
	if err != nil {
		panic(err)
	}
	return e
}

// TryC creates a column comparison, returning an error if invalid.
// IsNull and IsNotNull take no value; IN and NotIn take a slice whose
// elements are each bound.
func TryC(column string, op types.Operator, value ...any) (types.Comparison, error) {
	if column == "" {
		return types.Comparison{}, fmt.Errorf("%w: comparison requires a column", ErrSyntax)
	}
	if !op.Valid() {
		return types.Comparison{}, fmt.Errorf("%w: unsupported operator %q", ErrSyntax, op)
	}

	cmp := types.Comparison{Column: types.Identifier{Name: column}, Operator: op}

	switch {
	case op.Unary():
		if len(value) > 0 {
			return types.Comparison{}, fmt.Errorf("%w: %s takes no value", ErrSyntax, op)
		}
	case len(value) != 1:
		return types.Comparison{}, fmt.Errorf("%w: %s requires exactly one value", ErrSyntax, op)
	case op.Set():
		list, err := toValues(value[0])
		if err != nil {
			return types.Comparison{}, err
		}
		cmp.Value = list
	default:
		cmp.Value = valueNode(value[0])
	}
	return cmp, nil
}

// C creates a column comparison.
func C(column string, op types.Operator, value ...any) types.Comparison {
	c, err := TryC(column, op, value...)
	if err != nil {
		panic(err)
	}
	return c
}

// Null creates an IS NULL condition.
func Null(column string) types.Comparison {
	return C(column, types.IsNull)
}

// NotNull creates an IS NOT NULL condition.
func NotNull(column string) types.Comparison {
	return C(column, types.IsNotNull)
}

// In creates an IN condition over the elements of values, which must be a
// non-empty slice or a SELECT.
func In(column string, values any) types.Comparison {
	return C(column, types.IN, values)
}

// toValues expands the right side of IN. A SELECT passes through as a
// subquery.
func toValues(v any) (types.Node, error) {
	switch s := v.(type) {
	case types.Select, *types.Select:
		return s.(types.Node), nil
	case types.Values:
		if len(s.Items) == 0 {
			return nil, fmt.Errorf("%w: IN requires at least one value", ErrSyntax)
		}
		return s, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: IN requires a slice, got %T", ErrType, v)
	}
	if rv.Len() == 0 {
		return nil, fmt.Errorf("%w: IN requires at least one value", ErrSyntax)
	}
	items := make([]types.Node, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items = append(items, valueNode(rv.Index(i).Interface()))
	}
	return types.Values{Items: items}, nil
}

// TryAnd creates a group with AND logic, returning an error if invalid.
func TryAnd(conditions ...any) (types.Group, error) {
	return group(types.AND, conditions)
}

// And creates a group with AND logic.
func And(conditions ...any) types.Group {
	g, err := TryAnd(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// TryOr creates a group with OR logic, returning an error if invalid.
func TryOr(conditions ...any) (types.Group, error) {
	return group(types.OR, conditions)
}

// Or creates a group with OR logic.
func Or(conditions ...any) types.Group {
	g, err := TryOr(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

func group(logic types.LogicOperator, conditions []any) (types.Group, error) {
	if len(conditions) == 0 {
		return types.Group{}, fmt.Errorf("%w: %s requires at least one condition", ErrSyntax, logic)
	}
	nodes := make([]types.Node, 0, len(conditions))
	for _, c := range conditions {
		n, err := toCondition(c)
		if err != nil {
			return types.Group{}, err
		}
		nodes = append(nodes, n)
	}
	return types.Group{Logic: logic, Conditions: nodes}, nil
}

// Not negates a condition.
func Not(condition any) types.Not {
	n, err := toCondition(condition)
	if err != nil {
		panic(err)
	}
	return types.Not{Condition: n}
}

// toCondition accepts an expression node or raw SQL text.
func toCondition(c any) (types.Node, error) {
	switch v := c.(type) {
	case nil:
		return types.Nil{}, nil
	case string:
		return types.Raw{SQL: v}, nil
	case types.Node:
		if !v.Kind().IsExpression() {
			return nil, fmt.Errorf("%w: %s is not a condition", ErrType, v.Kind())
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: condition must be a string or expression node, got %T", ErrType, c)
	}
}
