package types

// Literal is a value that is always bound as a parameter, never interpolated.
type Literal struct {
	Value any
}

// Identifier is a column or relation name. Dotted names are quoted per part.
type Identifier struct {
	Name string
}

// Raw is SQL text emitted verbatim.
type Raw struct {
	SQL string
}

// Expression is a sequence of parts rendered in order and joined by spaces.
type Expression struct {
	Parts []Node
}

// Comparison compares a column with a value. Value is nil for IS NULL and
// IS NOT NULL; for IN and NOT IN it is a Values node.
type Comparison struct {
	Value    Node
	Column   Identifier
	Operator Operator
}

// Values is a parenthesized list of nodes, used as the right side of IN.
type Values struct {
	Items []Node
}

// LogicOperator represents how conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// Group combines conditions with AND/OR logic inside parentheses.
type Group struct {
	Logic      LogicOperator
	Conditions []Node
}

// Not negates a condition.
type Not struct {
	Condition Node
}

func (Literal) Kind() Kind    { return KindLiteral }
func (Identifier) Kind() Kind { return KindIdentifier }
func (Raw) Kind() Kind        { return KindRaw }
func (Expression) Kind() Kind { return KindExpression }
func (Comparison) Kind() Kind { return KindComparison }
func (Values) Kind() Kind     { return KindValues }
func (Group) Kind() Kind      { return KindGroup }
func (Not) Kind() Kind        { return KindNot }
