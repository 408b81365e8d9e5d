package types

import "fmt"

// Validate performs structural validation on a tree. Constructors in the base
// package already enforce these rules; Validate catches trees assembled by hand.
func Validate(n Node) error {
	return validate(n, 0)
}

func validate(n Node, depth int) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrSyntax)
	}

	switch node := n.(type) {
	case Nil, Literal, Identifier, Raw, GroupBy, Limit, Offset:
		return nil
	case Expression:
		for _, part := range node.Parts {
			if err := validate(part, depth); err != nil {
				return err
			}
		}
	case Values:
		if len(node.Items) == 0 {
			return fmt.Errorf("%w: empty value list", ErrSyntax)
		}
		for _, item := range node.Items {
			if err := validate(item, depth); err != nil {
				return err
			}
		}
	case Comparison:
		if !node.Operator.Valid() {
			return fmt.Errorf("%w: unsupported operator %q", ErrSyntax, node.Operator)
		}
		if node.Operator.Unary() {
			return nil
		}
		if node.Value == nil {
			return fmt.Errorf("%w: operator %s requires a value", ErrSyntax, node.Operator)
		}
		return validate(node.Value, depth)
	case Group:
		if len(node.Conditions) == 0 {
			return fmt.Errorf("%w: empty condition group", ErrSyntax)
		}
		for _, cond := range node.Conditions {
			if err := validate(cond, depth); err != nil {
				return err
			}
		}
	case Not:
		return validate(node.Condition, depth)
	case Where:
		if node.Condition == nil {
			return nil
		}
		return validate(node.Condition, depth)
	case Join:
		if node.Relation.Name == "" {
			return fmt.Errorf("%w: join requires a relation", ErrSyntax)
		}
		return validate(node.On, depth)
	case OrderBy:
		if len(node.Terms) == 0 {
			return fmt.Errorf("%w: ORDER BY requires at least one column", ErrSyntax)
		}
	case Select:
		return validateSelect(node, depth)
	case *Select, *Insert, *Update, *Delete:
		inner, ok := Deref(n)
		if !ok {
			return fmt.Errorf("%w: nil %T", ErrSyntax, n)
		}
		return validate(inner, depth)
	case Insert:
		return validateInsert(node, depth)
	case Update:
		if node.Relation.Name == "" {
			return fmt.Errorf("%w: target table is required", ErrSyntax)
		}
		if len(node.Assignments) == 0 {
			return fmt.Errorf("%w: UPDATE requires at least one column to set", ErrSyntax)
		}
		for _, a := range node.Assignments {
			if err := validate(a.Value, depth); err != nil {
				return err
			}
		}
		return validate(node.Where, depth)
	case Delete:
		if node.Relation.Name == "" {
			return fmt.Errorf("%w: target table is required", ErrSyntax)
		}
		if node.Where != nil {
			return validate(*node.Where, depth)
		}
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrType, n)
	}
	return nil
}

func validateSelect(node Select, depth int) error {
	if depth > MaxSubqueryDepth {
		return fmt.Errorf("%w: maximum subquery depth (%d) exceeded", ErrSyntax, MaxSubqueryDepth)
	}
	if node.Relation.Name == "" {
		return fmt.Errorf("%w: target table is required", ErrSyntax)
	}
	for _, col := range node.Columns {
		if err := validate(col, depth+1); err != nil {
			return err
		}
	}
	for _, clause := range node.Clauses {
		if c, ok := Deref(clause); !ok || !c.Kind().IsClause() {
			return fmt.Errorf("%w: %T is not a clause", ErrType, clause)
		}
		if err := validate(clause, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func validateInsert(node Insert, depth int) error {
	if node.Relation.Name == "" {
		return fmt.Errorf("%w: target table is required", ErrSyntax)
	}
	if node.Select != nil {
		if len(node.Rows) > 0 {
			return fmt.Errorf("%w: INSERT takes either rows or a select, not both", ErrSyntax)
		}
		return validateSelect(*node.Select, depth)
	}
	if len(node.Rows) == 0 {
		return fmt.Errorf("%w: you must supply values to an insert statement", ErrSyntax)
	}
	for i, row := range node.Rows {
		if len(row) != len(node.Columns) {
			return fmt.Errorf("%w: row %d: you must provide exactly one value for each column", ErrSyntax, i)
		}
		for _, v := range row {
			if err := validate(v, depth); err != nil {
				return err
			}
		}
	}
	return nil
}
