package models

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ColumnType describes how the cells of a column are interpreted by the
// typed accessors and how values are formatted when a row is appended.
type ColumnType int

const (
	// ColumnString holds free-form text.
	ColumnString ColumnType = iota
	// ColumnInt holds signed 64-bit integers.
	ColumnInt
	// ColumnFloat holds 64-bit floating point values.
	ColumnFloat
	// ColumnBool holds "true"/"false" values.
	ColumnBool
	// ColumnTime holds RFC 3339 timestamps.
	ColumnTime
)

// Column is one named, typed column of a [Table].
type Column struct {
	// Name is the column header, unique within a table.
	Name string
	// Type declares how cells of this column are parsed and formatted.
	Type ColumnType
}

// Table is a row-oriented table with a fixed, ordered set of named, typed
// columns. Cells are stored as strings in their wire representation; typed
// accessors parse them on demand.
//
// Table is the exchange format for everything tabular in this library:
// prediction payloads passed to upload, and submission/score listings
// returned from the API.
type Table struct {
	columns []Column
	index   map[string]int
	rows    [][]string
}

// NewTable creates an empty table with the given column schema.
func NewTable(columns ...Column) *Table {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col.Name] = i
	}
	return &Table{columns: columns, index: index}
}

// Columns returns a copy of the table's column schema in declaration order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumRows returns the number of rows currently in the table.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumColumns returns the number of columns in the table schema.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Append adds one row of raw string cells. The number of cells must match the
// number of columns, otherwise [ErrColumnCountMismatch] is returned and the
// table is left unchanged.
func (t *Table) Append(cells ...string) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrColumnCountMismatch, len(cells), len(t.columns))
	}

	row := make([]string, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// AppendValues adds one row of Go values, formatting each according to the
// declared column type (integers via strconv, times as RFC 3339, etc.).
// Returns [ErrColumnCountMismatch] on arity mismatch or a wrapped
// [ErrCellType] if a value cannot be represented in its column.
func (t *Table) AppendValues(values ...any) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: got %d values, want %d", ErrColumnCountMismatch, len(values), len(t.columns))
	}

	row := make([]string, len(values))
	for i, v := range values {
		cell, err := formatCell(v, t.columns[i].Type)
		if err != nil {
			return fmt.Errorf("column %q: %w", t.columns[i].Name, err)
		}
		row[i] = cell
	}
	t.rows = append(t.rows, row)
	return nil
}

// Cell returns the raw string value at (row, column name).
func (t *Table) Cell(row int, column string) (string, error) {
	i, ok := t.index[column]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoSuchColumn, column)
	}
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, len(t.rows))
	}
	return t.rows[row][i], nil
}

// Int parses the cell at (row, column) as a signed 64-bit integer.
func (t *Table) Int(row int, column string) (int64, error) {
	cell, err := t.Cell(row, column)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrCellType, cell)
	}
	return n, nil
}

// Float parses the cell at (row, column) as a 64-bit float.
func (t *Table) Float(row int, column string) (float64, error) {
	cell, err := t.Cell(row, column)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float", ErrCellType, cell)
	}
	return f, nil
}

// Bool parses the cell at (row, column) as a boolean.
func (t *Table) Bool(row int, column string) (bool, error) {
	cell, err := t.Cell(row, column)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(cell)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a bool", ErrCellType, cell)
	}
	return b, nil
}

// Time parses the cell at (row, column) as an RFC 3339 timestamp.
func (t *Table) Time(row int, column string) (time.Time, error) {
	cell, err := t.Cell(row, column)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, cell)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an RFC 3339 timestamp", ErrCellType, cell)
	}
	return ts, nil
}

// WriteCSV writes the table as CSV to w: one header row with the column
// names followed by one record per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarshalCSV returns the CSV encoding of the table.
func (t *Table) MarshalCSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatCell(v any, ct ColumnType) (string, error) {
	if v == nil {
		return "", nil
	}

	switch ct {
	case ColumnString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case ColumnInt:
		switch n := v.(type) {
		case int:
			return strconv.FormatInt(int64(n), 10), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		}
	case ColumnFloat:
		switch f := v.(type) {
		case float64:
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		case int:
			return strconv.FormatInt(int64(f), 10), nil
		}
	case ColumnBool:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), nil
		}
	case ColumnTime:
		if ts, ok := v.(time.Time); ok {
			if ts.IsZero() {
				return "", nil
			}
			return ts.Format(time.RFC3339), nil
		}
	}

	return "", fmt.Errorf("%w: %T", ErrCellType, v)
}
