package budget

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMonth is returned for month values outside 1..12.
	ErrInvalidMonth = errors.New("budget: invalid month")
	// ErrEmptySheet is returned when the budget sheet has no data rows.
	ErrEmptySheet = errors.New("budget: empty sheet")
)

// SchemaError reports a required budget column that could not be
// located by any of its keyword predicates.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("budget: required column %q not found", e.Column)
}

// IsSchemaError reports whether err is a budget schema failure.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
