package sqlrest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/sqlrest/internal/render"
	"github.com/zoobzio/sqlrest/internal/types"
)

// Runner renders one tree to SQL text, collecting bound parameters in the
// order their placeholders appear. A Runner is used for a single render
// pass and then discarded.
type Runner struct {
	dialect Dialect
	params  []any
}

// NewRunner creates a Runner for the given dialect.
func NewRunner(d Dialect) *Runner {
	return &Runner{dialect: d}
}

// Params returns the parameters collected so far.
func (r *Runner) Params() []any {
	return r.params
}

// Render validates n and renders it, appending any bound values to Params.
func (r *Runner) Render(n types.Node) (string, error) {
	if err := types.Validate(n); err != nil {
		return "", fmt.Errorf("invalid tree: %w", err)
	}
	return r.node(n)
}

// Render converts a tree to a QueryResult using a fresh Runner.
func Render(d Dialect, n types.Node) (*QueryResult, error) {
	r := NewRunner(d)
	sql, err := r.Render(n)
	if err != nil {
		return nil, err
	}
	return &QueryResult{SQL: sql, Params: r.Params()}, nil
}

// bind appends v to the parameters and returns its placeholder.
func (r *Runner) bind(v any) string {
	r.params = append(r.params, v)
	return r.dialect.Placeholder(len(r.params))
}

// identifier quotes name, quoting each dotted part separately and leaving *
// bare.
func (r *Runner) identifier(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		if p == "*" {
			continue
		}
		parts[i] = r.dialect.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

func (r *Runner) identifierList(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, r.identifier(n))
	}
	return strings.Join(quoted, ", ")
}

func (r *Runner) table(t types.Table) string {
	name := r.identifier(t.Name)
	if t.Alias != "" {
		// Aliases don't need quoting since they're restricted to single lowercase letters
		return name + " " + t.Alias
	}
	return name
}

func (r *Runner) unsupported(feature string, hint ...string) error {
	return render.NewUnsupportedFeatureError(r.dialect.Name(), feature, hint...)
}

// node is the single visitor over every node kind.
func (r *Runner) node(n types.Node) (string, error) {
	switch node := n.(type) {
	case types.Nil:
		return "", nil
	case types.Literal:
		return r.bind(node.Value), nil
	case types.Identifier:
		return r.identifier(node.Name), nil
	case types.Raw:
		return node.SQL, nil
	case types.Expression:
		return r.expression(node)
	case types.Values:
		return r.values(node)
	case types.Comparison:
		return r.comparison(node)
	case types.Group:
		return r.group(node)
	case types.Not:
		inner, err := r.node(node.Condition)
		if err != nil || inner == "" {
			return "", err
		}
		return "NOT (" + inner + ")", nil
	case types.Where:
		return r.where(node)
	case types.Join:
		return r.join(node)
	case types.GroupBy:
		return "GROUP BY " + r.identifierList(node.Columns), nil
	case types.OrderBy:
		return r.orderBy(node), nil
	case types.Limit:
		if !r.dialect.Capabilities().Limit {
			return "", r.unsupported("LIMIT", "use OFFSET ... FETCH NEXT")
		}
		return "LIMIT " + r.bind(node.Value), nil
	case types.Offset:
		sql := "OFFSET " + r.bind(node.Value.Value())
		if r.dialect.Capabilities().OffsetRows {
			sql += " ROWS"
		}
		return sql, nil
	case types.Select:
		return r.selectStatement(node)
	case *types.Select, *types.Insert, *types.Update, *types.Delete:
		inner, ok := types.Deref(n)
		if !ok {
			return "", fmt.Errorf("%w: nil %T", ErrSyntax, n)
		}
		return r.node(inner)
	case types.Insert:
		return r.insert(node)
	case types.Update:
		return r.update(node)
	case types.Delete:
		return r.delete(node)
	default:
		return "", fmt.Errorf("%w: unknown node type %T", ErrType, n)
	}
}

// operand renders a node in value position, where a SELECT is a subquery.
func (r *Runner) operand(n types.Node) (string, error) {
	sql, err := r.node(n)
	if err != nil {
		return "", err
	}
	if n.Kind() == types.KindSelect {
		return "(" + sql + ")", nil
	}
	return sql, nil
}

func (r *Runner) expression(e types.Expression) (string, error) {
	parts := make([]string, 0, len(e.Parts))
	for _, p := range e.Parts {
		sql, err := r.operand(p)
		if err != nil {
			return "", err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
	}
	return strings.Join(parts, " "), nil
}

func (r *Runner) values(v types.Values) (string, error) {
	items := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		sql, err := r.node(item)
		if err != nil {
			return "", err
		}
		items = append(items, sql)
	}
	return "(" + strings.Join(items, ", ") + ")", nil
}

func (r *Runner) comparison(c types.Comparison) (string, error) {
	column := r.identifier(c.Column.Name)
	if c.Operator.Unary() {
		return fmt.Sprintf("%s %s", column, c.Operator), nil
	}
	value, err := r.operand(c.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", column, c.Operator, value), nil
}

func (r *Runner) group(g types.Group) (string, error) {
	parts := make([]string, 0, len(g.Conditions))
	for _, cond := range g.Conditions {
		sql, err := r.node(cond)
		if err != nil {
			return "", err
		}
		if sql != "" {
			parts = append(parts, sql)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, fmt.Sprintf(" %s ", g.Logic)) + ")", nil
}

func (r *Runner) where(w types.Where) (string, error) {
	if w.Condition == nil {
		return "", nil
	}
	cond, err := r.node(w.Condition)
	if err != nil || cond == "" {
		return "", err
	}
	return "WHERE " + cond, nil
}

func (r *Runner) join(j types.Join) (string, error) {
	if j.Type == types.RightJoin && !r.dialect.Capabilities().RightJoin {
		return "", r.unsupported("RIGHT JOIN", "swap the relations and use LEFT JOIN")
	}
	on, err := r.node(j.On)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s ON %s", j.Type, r.table(j.Relation), on), nil
}

func (r *Runner) orderBy(o types.OrderBy) string {
	terms := make([]string, 0, len(o.Terms))
	for _, term := range o.Terms {
		if term.Direction == "" {
			terms = append(terms, r.identifier(term.Column))
			continue
		}
		terms = append(terms, fmt.Sprintf("%s %s", r.identifier(term.Column), term.Direction))
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}

// clauses renders trailing clauses in rank order. Clauses of equal rank
// keep their attachment order.
func (r *Runner) clauses(clauses []types.Node) (string, error) {
	ordered := make([]types.Node, len(clauses))
	copy(ordered, clauses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Kind().Rank() < ordered[j].Kind().Rank()
	})

	var parts []string
	for _, c := range ordered {
		sql, err := r.node(c)
		if err != nil {
			return "", err
		}
		if sql != "" {
			parts = append(parts, sql)
		}
	}
	return strings.Join(parts, " "), nil
}

func (r *Runner) selectStatement(s types.Select) (string, error) {
	var sql strings.Builder
	sql.WriteString("SELECT ")

	if s.Distinct {
		sql.WriteString("DISTINCT ")
	}

	if len(s.Columns) == 0 {
		sql.WriteString("*")
	} else {
		columns := make([]string, 0, len(s.Columns))
		for _, c := range s.Columns {
			col, err := r.node(c)
			if err != nil {
				return "", err
			}
			columns = append(columns, col)
		}
		sql.WriteString(strings.Join(columns, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(r.table(s.Relation))

	clauses, err := r.clauses(s.Clauses)
	if err != nil {
		return "", err
	}
	if clauses != "" {
		sql.WriteString(" ")
		sql.WriteString(clauses)
	}
	return sql.String(), nil
}

func (r *Runner) insert(ins types.Insert) (string, error) {
	var sql strings.Builder
	fmt.Fprintf(&sql, "INSERT INTO %s(%s)", r.table(ins.Relation), r.identifierList(ins.Columns))

	if ins.Select != nil {
		sel, err := r.selectStatement(*ins.Select)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ")
		sql.WriteString(sel)
		return sql.String(), nil
	}

	rows := make([]string, 0, len(ins.Rows))
	for _, row := range ins.Rows {
		values := make([]string, 0, len(row))
		for _, v := range row {
			value, err := r.operand(v)
			if err != nil {
				return "", err
			}
			switch v.Kind() {
			case types.KindExpression, types.KindComparison, types.KindGroup, types.KindNot:
				value = "(" + value + ")"
			}
			values = append(values, value)
		}
		rows = append(rows, "("+strings.Join(values, ", ")+")")
	}
	sql.WriteString(" VALUES ")
	sql.WriteString(strings.Join(rows, ", "))
	return sql.String(), nil
}

func (r *Runner) update(u types.Update) (string, error) {
	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(r.table(u.Relation))
	sql.WriteString(" SET ")

	// SET renders before WHERE so parameters stay in text order
	updates := make([]string, 0, len(u.Assignments))
	for _, a := range u.Assignments {
		value, err := r.operand(a.Value)
		if err != nil {
			return "", err
		}
		updates = append(updates, fmt.Sprintf("%s = %s", r.identifier(a.Column), value))
	}
	sql.WriteString(strings.Join(updates, ", "))

	where, err := r.where(u.Where)
	if err != nil {
		return "", err
	}
	if where != "" {
		sql.WriteString(" ")
		sql.WriteString(where)
	}
	return sql.String(), nil
}

func (r *Runner) delete(d types.Delete) (string, error) {
	sql := "DELETE FROM " + r.table(d.Relation)
	if d.Where == nil {
		return sql, nil
	}
	where, err := r.where(*d.Where)
	if err != nil {
		return "", err
	}
	if where == "" {
		return sql, nil
	}
	return sql + " " + where, nil
}
