package products

import "fmt"

// SchemaError reports a characteristic column that a formulation references
// but the table does not carry.
type SchemaError struct {
	Column string
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// ValueError reports a cell that cannot enter a computation: a missing or
// non-finite characteristic value, or a blank identifier.
type ValueError struct {
	Row     int
	Column  string
	Message string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("row %d, column %q: %s", e.Row, e.Column, e.Message)
}
