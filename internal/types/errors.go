package types

import "errors"

var (
	// ErrSyntax reports a tree that cannot form a valid statement.
	ErrSyntax = errors.New("sql syntax error")
	// ErrType reports an argument of the wrong type.
	ErrType = errors.New("sql type error")
)
