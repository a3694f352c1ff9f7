// Package sheet adapts a worksheet-style row store (header row, 1-based
// cells) into typed repositories for the hit list and the remarks log.
package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

// RowStore is the minimal surface the reconciliation engine needs from the
// tabular backend. Writes are cell-at-a-time and non-transactional; a failed
// batch may leave a row partially written.
type RowStore interface {
	// ReadAll returns every row of the worksheet, header row first.
	ReadAll(ctx context.Context, worksheet string) ([][]string, error)
	// ReadCell returns the cell at 1-based (row, col).
	ReadCell(ctx context.Context, worksheet string, row, col int) (string, error)
	// UpdateCell writes the cell at 1-based (row, col).
	UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error
	// AppendRow appends a row after the last non-empty row.
	AppendRow(ctx context.Context, worksheet string, values []string) error
}

// ErrNotFound indicates a lookup that matched no row.
var ErrNotFound = eris.New("sheet: row not found")

// SchemaError reports a worksheet missing a column the engine requires. It is
// fatal for the whole batch: the schema contract is broken for every row.
type SchemaError struct {
	Worksheet string
	Column    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet: worksheet %q is missing required column %q", e.Worksheet, e.Column)
}

// IsSchemaError reports whether err carries a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
