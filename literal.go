package sqlrest

import (
	"fmt"
	"math"
	"math/big"

	"github.com/zoobzio/sqlrest/internal/types"
)

// Lit marks v as a literal. It is always bound as a parameter, even when v is
// a string that would otherwise be read as raw SQL inside Expr.
func Lit(v any) types.Literal {
	return types.Literal{Value: v}
}

// Ident marks name as an identifier, to be quoted by the dialect. Use it to
// set a column to another column's value.
func Ident(name string) types.Identifier {
	return types.Identifier{Name: name}
}

// Raw emits sql verbatim. It never binds parameters.
func Raw(sql string) types.Raw {
	return types.Raw{SQL: sql}
}

// valueNode converts a value argument into a node. Nodes pass through; any
// other value becomes a bound literal.
func valueNode(v any) types.Node {
	if n, ok := v.(types.Node); ok {
		return n
	}
	return types.Literal{Value: v}
}

// partNode converts an expression part into a node. Strings are raw SQL text.
func partNode(v any) types.Node {
	if s, ok := v.(string); ok {
		return types.Raw{SQL: s}
	}
	return valueNode(v)
}

// toInteger reports the integer value of v. *big.Int is accepted only when
// allowBig is set.
func toInteger(v any, allowBig bool) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return big.NewInt(int64(n)), true
	case uint16:
		return big.NewInt(int64(n)), true
	case uint32:
		return big.NewInt(int64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		if !allowBig || n == nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}

// toInt64 narrows a Go integer to int64, failing for values that overflow.
func toInt64(v any) (int64, error) {
	b, ok := toInteger(v, false)
	if !ok {
		return 0, fmt.Errorf("%w: must be an integer, got %T", ErrType, v)
	}
	if !b.IsInt64() {
		return 0, fmt.Errorf("%w: %s overflows int64 (max %d)", ErrType, b, int64(math.MaxInt64))
	}
	return b.Int64(), nil
}
