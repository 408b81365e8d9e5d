package types

// Kind identifies the variant of a query tree node.
type Kind int

const (
	KindNil Kind = iota
	KindLiteral
	KindIdentifier
	KindRaw
	KindExpression
	KindValues
	KindComparison
	KindGroup
	KindNot
	KindWhere
	KindJoin
	KindGroupBy
	KindOrderBy
	KindLimit
	KindOffset
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
)

var kindNames = map[Kind]string{
	KindNil:        "nil",
	KindLiteral:    "literal",
	KindIdentifier: "identifier",
	KindRaw:        "raw",
	KindExpression: "expression",
	KindValues:     "values",
	KindComparison: "comparison",
	KindGroup:      "group",
	KindNot:        "not",
	KindWhere:      "where",
	KindJoin:       "join",
	KindGroupBy:    "group by",
	KindOrderBy:    "order by",
	KindLimit:      "limit",
	KindOffset:     "offset",
	KindSelect:     "select",
	KindInsert:     "insert",
	KindUpdate:     "update",
	KindDelete:     "delete",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsClause reports whether nodes of this kind may be attached to a statement
// as a trailing clause.
func (k Kind) IsClause() bool {
	switch k {
	case KindNil, KindWhere, KindJoin, KindGroupBy, KindOrderBy, KindLimit, KindOffset:
		return true
	}
	return false
}

// IsStatement reports whether nodes of this kind are top-level commands.
func (k Kind) IsStatement() bool {
	switch k {
	case KindNil, KindSelect, KindInsert, KindUpdate, KindDelete:
		return true
	}
	return false
}

// IsExpression reports whether nodes of this kind are conditions or values
// that render inside WHERE or JOIN ... ON.
func (k Kind) IsExpression() bool {
	switch k {
	case KindNil, KindRaw, KindExpression, KindComparison, KindGroup, KindNot:
		return true
	}
	return false
}

// Clause ranks. Lower ranks render first.
const (
	RankJoin    = 1
	RankWhere   = 2
	RankGroupBy = 3
	RankOrderBy = 4
	RankLimit   = 5
	RankOffset  = 6
)

// Rank returns the ordering rank of a clause kind, or 0 for kinds that are
// not clauses.
func (k Kind) Rank() int {
	switch k {
	case KindJoin:
		return RankJoin
	case KindWhere:
		return RankWhere
	case KindGroupBy:
		return RankGroupBy
	case KindOrderBy:
		return RankOrderBy
	case KindLimit:
		return RankLimit
	case KindOffset:
		return RankOffset
	default:
		return 0
	}
}

// Node is any element of a query tree.
// This is exported from the internal package so dialects and the base package
// can use it, but external users cannot import this package.
type Node interface {
	Kind() Kind
}

// Constants for subquery handling.
const (
	MaxSubqueryDepth = 3 // Prevent DoS via deep nesting
)

// Nil renders to nothing. It stands in wherever a clause, statement or
// expression is syntactically required but semantically absent.
type Nil struct{}

// Where wraps a condition as a WHERE clause.
type Where struct {
	Condition Node
}

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
	RightJoin JoinType = "RIGHT JOIN"
)

// Join represents a JOIN ... ON clause.
type Join struct {
	On       Node
	Relation Table
	Type     JoinType
}

// GroupBy represents a GROUP BY clause.
type GroupBy struct {
	Columns []string
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Ordering is a single ORDER BY term.
type Ordering struct {
	Column    string
	Direction Direction
}

// OrderBy represents an ORDER BY clause.
type OrderBy struct {
	Terms []Ordering
}

// Limit represents a LIMIT clause.
type Limit struct {
	Value int64
}

// Offset represents an OFFSET clause. Value holds an extended precision
// integer and is never mutated after construction.
type Offset struct {
	Value Integer
}

// Select represents a SELECT statement.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Select struct {
	Relation Table
	Columns  []Node
	Clauses  []Node
	Distinct bool
}

// Insert represents an INSERT statement. Exactly one of Rows or Select is set.
type Insert struct {
	Select   *Select
	Relation Table
	Columns  []string
	Rows     [][]Node
}

// Assignment is a single column = value pair of an UPDATE.
type Assignment struct {
	Value  Node
	Column string
}

// Update represents an UPDATE statement.
type Update struct {
	Where       Where
	Relation    Table
	Assignments []Assignment
}

// Delete represents a DELETE statement. A nil Where deletes every row.
type Delete struct {
	Where    *Where
	Relation Table
}

func (Nil) Kind() Kind     { return KindNil }
func (Where) Kind() Kind   { return KindWhere }
func (Join) Kind() Kind    { return KindJoin }
func (GroupBy) Kind() Kind { return KindGroupBy }
func (OrderBy) Kind() Kind { return KindOrderBy }
func (Limit) Kind() Kind   { return KindLimit }
func (Offset) Kind() Kind  { return KindOffset }
func (Select) Kind() Kind  { return KindSelect }
func (Insert) Kind() Kind  { return KindInsert }
func (Update) Kind() Kind  { return KindUpdate }
func (Delete) Kind() Kind  { return KindDelete }

// Deref returns the statement a pointer refers to, or n itself when it is not
// a statement pointer. It reports false for a nil node or a nil pointer.
func Deref(n Node) (Node, bool) {
	switch p := n.(type) {
	case nil:
		return nil, false
	case *Select:
		if p == nil {
			return nil, false
		}
		return *p, true
	case *Insert:
		if p == nil {
			return nil, false
		}
		return *p, true
	case *Update:
		if p == nil {
			return nil, false
		}
		return *p, true
	case *Delete:
		if p == nil {
			return nil, false
		}
		return *p, true
	}
	return n, true
}

// ThenBy returns a copy of the clause with another term appended.
func (o OrderBy) ThenBy(column string, direction Direction) OrderBy {
	terms := make([]Ordering, len(o.Terms), len(o.Terms)+1)
	copy(terms, o.Terms)
	return OrderBy{Terms: append(terms, Ordering{Column: column, Direction: direction})}
}
