package types

import "math/big"

// Integer is an immutable arbitrary precision integer.
type Integer struct {
	v *big.Int
}

// NewInteger copies b into a new Integer.
func NewInteger(b *big.Int) Integer {
	return Integer{v: new(big.Int).Set(b)}
}

// IntegerFromInt64 creates an Integer from n.
func IntegerFromInt64(n int64) Integer {
	return Integer{v: big.NewInt(n)}
}

// IsInt64 reports whether the value fits in an int64.
func (i Integer) IsInt64() bool {
	return i.v == nil || i.v.IsInt64()
}

// Int64 returns the value as an int64. The result is undefined if the value
// does not fit.
func (i Integer) Int64() int64 {
	if i.v == nil {
		return 0
	}
	return i.v.Int64()
}

func (i Integer) String() string {
	if i.v == nil {
		return "0"
	}
	return i.v.String()
}

// Value returns the value in a form database/sql accepts as an argument:
// an int64 when it fits, its decimal text otherwise.
func (i Integer) Value() any {
	if i.IsInt64() {
		return i.Int64()
	}
	return i.String()
}
