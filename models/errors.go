package models

import "errors"

// Errors returned by [Table] operations.
var (
	// ErrColumnCountMismatch indicates an appended row whose cell count does
	// not match the table schema.
	ErrColumnCountMismatch = errors.New("column count mismatch")
	// ErrNoSuchColumn indicates an access by a column name that is not part
	// of the table schema.
	ErrNoSuchColumn = errors.New("no such column")
	// ErrRowOutOfRange indicates an access by a row index outside the table.
	ErrRowOutOfRange = errors.New("row index out of range")
	// ErrCellType indicates a cell value that cannot be parsed as, or
	// formatted to, its column's declared type.
	ErrCellType = errors.New("cell does not match column type")
)
