package types

// QueryResult contains the rendered SQL and its bound parameters in
// placeholder order.
type QueryResult struct {
	SQL    string
	Params []any
}
