package render

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	Limit      bool // LIMIT n
	OffsetRows bool // OFFSET n ROWS rather than OFFSET n
	RightJoin  bool // RIGHT JOIN
}
