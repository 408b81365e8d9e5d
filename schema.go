package sqlrest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/sqlrest/internal/types"
)

// Schema checks the relations and columns a tree references against a DBML
// project.
type Schema struct {
	project *dbml.Project
	// table -> column set
	columns map[string]map[string]struct{}
}

// NewFromDBML creates a Schema from a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, errors.New("project cannot be nil")
	}

	s := &Schema{
		project: project,
		columns: make(map[string]map[string]struct{}),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		cols := make(map[string]struct{}, len(table.Columns))
		for _, col := range table.Columns {
			cols[col.Name] = struct{}{}
		}
		s.columns[table.Name] = cols
	}

	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// HasRelation reports whether the schema defines the named table.
func (s *Schema) HasRelation(name string) bool {
	_, ok := s.columns[name]
	return ok
}

// HasColumn reports whether any table defines the column. A table prefix
// ("u.id", "users.id") is stripped before the lookup.
func (s *Schema) HasColumn(name string) bool {
	if name == "*" {
		return true
	}
	if i := strings.LastIndex(name, "."); i != -1 {
		name = name[i+1:]
		if name == "*" {
			return true
		}
	}
	for _, cols := range s.columns {
		if _, ok := cols[name]; ok {
			return true
		}
	}
	return false
}

// Check walks a tree and reports the first relation or column the schema
// does not define. Raw SQL is not inspected.
func (s *Schema) Check(n types.Node) error {
	switch node := n.(type) {
	case nil, types.Nil, types.Literal, types.Raw:
		return nil
	case types.Identifier:
		return s.column(node.Name)
	case types.Expression:
		return s.each(node.Parts)
	case types.Values:
		return s.each(node.Items)
	case types.Comparison:
		if err := s.column(node.Column.Name); err != nil {
			return err
		}
		return s.Check(node.Value)
	case types.Group:
		return s.each(node.Conditions)
	case types.Not:
		return s.Check(node.Condition)
	case types.Where:
		return s.Check(node.Condition)
	case types.Join:
		if err := s.relation(node.Relation); err != nil {
			return err
		}
		return s.Check(node.On)
	case types.GroupBy:
		return s.columnList(node.Columns)
	case types.OrderBy:
		for _, term := range node.Terms {
			if err := s.column(term.Column); err != nil {
				return err
			}
		}
		return nil
	case types.Limit, types.Offset:
		return nil
	case types.Select:
		return s.checkSelect(node)
	case *types.Select, *types.Insert, *types.Update, *types.Delete:
		inner, ok := types.Deref(n)
		if !ok {
			return fmt.Errorf("%w: nil %T", ErrSyntax, n)
		}
		return s.Check(inner)
	case types.Insert:
		if err := s.relation(node.Relation); err != nil {
			return err
		}
		if err := s.columnList(node.Columns); err != nil {
			return err
		}
		if node.Select != nil {
			return s.checkSelect(*node.Select)
		}
		for _, row := range node.Rows {
			if err := s.each(row); err != nil {
				return err
			}
		}
		return nil
	case types.Update:
		if err := s.relation(node.Relation); err != nil {
			return err
		}
		for _, a := range node.Assignments {
			if err := s.column(a.Column); err != nil {
				return err
			}
			if err := s.Check(a.Value); err != nil {
				return err
			}
		}
		return s.Check(node.Where)
	case types.Delete:
		if err := s.relation(node.Relation); err != nil {
			return err
		}
		if node.Where != nil {
			return s.Check(*node.Where)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrType, n)
	}
}

func (s *Schema) checkSelect(sel types.Select) error {
	if err := s.relation(sel.Relation); err != nil {
		return err
	}
	if err := s.each(sel.Columns); err != nil {
		return err
	}
	return s.each(sel.Clauses)
}

func (s *Schema) each(nodes []types.Node) error {
	for _, n := range nodes {
		if err := s.Check(n); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) relation(t types.Table) error {
	if !s.HasRelation(t.Name) {
		return fmt.Errorf("%w: table '%s' not found in schema", ErrUnknownRelation, t.Name)
	}
	return nil
}

func (s *Schema) column(name string) error {
	if !s.HasColumn(name) {
		return fmt.Errorf("%w: field '%s' not found in schema", ErrUnknownColumn, name)
	}
	return nil
}

func (s *Schema) columnList(names []string) error {
	for _, name := range names {
		if err := s.column(name); err != nil {
			return err
		}
	}
	return nil
}
