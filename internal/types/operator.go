package types

// Operator represents query comparison operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	IN        Operator = "IN"
	NotIn     Operator = "NOT IN"
	LIKE      Operator = "LIKE"
	NotLike   Operator = "NOT LIKE"
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"
)

// Unary reports whether the operator takes no right-hand value.
func (op Operator) Unary() bool {
	return op == IsNull || op == IsNotNull
}

// Set reports whether the operator takes a list of values.
func (op Operator) Set() bool {
	return op == IN || op == NotIn
}

// Valid reports whether the operator is one of the known operators.
func (op Operator) Valid() bool {
	switch op {
	case EQ, NE, GT, GE, LT, LE, IN, NotIn, LIKE, NotLike, IsNull, IsNotNull:
		return true
	}
	return false
}
