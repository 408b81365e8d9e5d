// Package sqlrest builds SQL statements as trees of nodes and renders them to
// parameterized SQL for a target dialect.
//
// Trees are assembled from small constructors: statements (Insert, Update,
// Delete, Select, Nil), trailing clauses (Where, joins, GroupBy, OrderBy,
// Limit, Offset) and expressions (Expr, C, And, Or, Not). Every constructor
// has a Try variant that returns an error instead of panicking; invalid trees
// are rejected when they are built, never when they are rendered.
//
// # Basic Usage
//
//	import "github.com/zoobzio/sqlrest/postgres"
//
//	stmt := sqlrest.Select("users", nil,
//		sqlrest.Where(sqlrest.C("active", sqlrest.EQ, true)),
//		sqlrest.Limit(10),
//		sqlrest.GroupBy("country"),
//	)
//
//	result, err := sqlrest.Render(postgres.New(), stmt)
//	// result.SQL:    SELECT * FROM "users" WHERE "active" = $1 GROUP BY "country" LIMIT $2
//	// result.Params: []any{true, int64(10)}
//
// Clauses render in rank order (joins, WHERE, GROUP BY, ORDER BY, LIMIT,
// OFFSET) no matter the order they were attached in.
//
// # Executing Trees
//
// A Cursor wraps a *sql.DB, *sql.Tx or *sql.Conn. Its Execute, Query and
// QueryRow accept either literal SQL or a statement tree:
//
//	cur := sqlrest.Wrap(db, postgres.New(), sqlrest.WithLogger(sqlrest.NewSlogLogger(slog.Default())))
//	_, err := cur.Execute(ctx, sqlrest.Delete("sessions", sqlrest.C("expired", sqlrest.EQ, true)))
//
// Each call renders the tree with a fresh Runner, so literal values always
// travel as bound parameters.
//
// # Dialects
//
// Available dialects: postgres ($1), sqlite (?), mariadb (?, backtick
// quoting) and mssql (@p1, bracket quoting).
package sqlrest

import (
	"github.com/zoobzio/sqlrest/internal/render"
	"github.com/zoobzio/sqlrest/internal/types"
)

// Node is any element of a query tree.
type Node = types.Node

// Kind identifies the variant of a Node.
type Kind = types.Kind

// Re-export kind constants for public API.
const (
	KindNil        = types.KindNil
	KindLiteral    = types.KindLiteral
	KindIdentifier = types.KindIdentifier
	KindRaw        = types.KindRaw
	KindExpression = types.KindExpression
	KindValues     = types.KindValues
	KindComparison = types.KindComparison
	KindGroup      = types.KindGroup
	KindNot        = types.KindNot
	KindWhere      = types.KindWhere
	KindJoin       = types.KindJoin
	KindGroupBy    = types.KindGroupBy
	KindOrderBy    = types.KindOrderBy
	KindLimit      = types.KindLimit
	KindOffset     = types.KindOffset
	KindSelect     = types.KindSelect
	KindInsert     = types.KindInsert
	KindUpdate     = types.KindUpdate
	KindDelete     = types.KindDelete
)

// Statement node types.
type (
	NilNode    = types.Nil
	SelectNode = types.Select
	InsertNode = types.Insert
	UpdateNode = types.Update
	DeleteNode = types.Delete
	Assignment = types.Assignment
)

// Clause node types.
type (
	WhereClause   = types.Where
	JoinClause    = types.Join
	GroupByClause = types.GroupBy
	OrderByClause = types.OrderBy
	LimitClause   = types.Limit
	OffsetClause  = types.Offset
	Ordering      = types.Ordering
)

// Expression node types.
type (
	LiteralNode    = types.Literal
	IdentifierNode = types.Identifier
	RawNode        = types.Raw
	ExpressionNode = types.Expression
	ValuesNode     = types.Values
	ComparisonNode = types.Comparison
	GroupNode      = types.Group
	NotNode        = types.Not
)

// Table represents a relation reference.
type Table = types.Table

// Relational is implemented by values that carry an underlying relation.
type Relational = types.Relational

// QueryResult contains the rendered SQL and its parameters.
type QueryResult = types.QueryResult

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// JoinType represents the type of SQL join.
type JoinType = types.JoinType

// Re-export join constants for public API.
const (
	InnerJoinType = types.InnerJoin
	LeftJoinType  = types.LeftJoin
	RightJoinType = types.RightJoin
)

// Operator represents SQL comparison operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	EQ        = types.EQ
	NE        = types.NE
	GT        = types.GT
	GE        = types.GE
	LT        = types.LT
	LE        = types.LE
	IN        = types.IN
	NotIn     = types.NotIn
	LIKE      = types.LIKE
	NotLike   = types.NotLike
	IsNull    = types.IsNull
	IsNotNull = types.IsNotNull
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// MaxSubqueryDepth bounds how deeply SELECT statements may nest.
const MaxSubqueryDepth = types.MaxSubqueryDepth
