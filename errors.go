package sqlrest

import (
	"errors"

	"github.com/zoobzio/sqlrest/internal/render"
	"github.com/zoobzio/sqlrest/internal/types"
)

var (
	// ErrSyntax reports a tree that cannot form a valid statement, such as an
	// INSERT row with the wrong number of values.
	ErrSyntax = types.ErrSyntax
	// ErrType reports a constructor argument of the wrong type, such as a
	// non-integer LIMIT.
	ErrType = types.ErrType
	// ErrUnsupported is matched by every UnsupportedFeatureError.
	ErrUnsupported = render.ErrUnsupported

	ErrCommandType     = errors.New("command must be a SQL string or a statement node")
	ErrDecodedCommand  = errors.New("command is decoded text; pass SQL as a string")
	ErrParamsWithNode  = errors.New("params cannot be passed with a statement node")
	ErrEmptyCommand    = errors.New("command rendered to empty SQL")
	ErrUnknownRelation = errors.New("relation not found in schema")
	ErrUnknownColumn   = errors.New("column not found in schema")
)
