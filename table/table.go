package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrColumnNotFound is returned when an operator names a column that is
	// not in the table header.
	ErrColumnNotFound = errors.New("no such column")

	// ErrSchemaWidthMismatch is returned when an inserted row does not have
	// exactly one field per header column.
	ErrSchemaWidthMismatch = errors.New("row width does not match schema")

	// ErrDuplicateColumn is returned by New when a column name repeats.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrIncomparable is returned by SortBy when two cells of the sort
	// column cannot be ordered against each other.
	ErrIncomparable = errors.New("incomparable values")

	// ErrHeaderMismatch is returned by Concat when the tables do not share
	// the same header.
	ErrHeaderMismatch = errors.New("table headers differ")
)

// ColumnError names the column an operator failed on.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v '%s'", e.Err, e.Column)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// CountColumn is the name of the count column produced by GroupBy.
const CountColumn = "COUNT"

// Row is one record, positionally aligned with its table's header.
type Row []Field

// Strings renders every field of the row.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.String()
	}
	return out
}

// Column maps a header name to its position in each row.
type Column struct {
	Name  string
	Index int
}

// Table is a fixed-schema, in-memory row store.
//
// Query operators never modify their receiver; they return a new Table
// that owns its own copy of the rows.
type Table struct {
	header []Column
	rows   []Row
}

// New creates an empty table with the given columns, in order.
func New(columns ...string) (*Table, error) {
	header := make([]Column, 0, len(columns))
	seen := make(map[string]bool, len(columns))
	for i, name := range columns {
		if seen[name] {
			return nil, &ColumnError{Column: name, Err: ErrDuplicateColumn}
		}
		seen[name] = true
		header = append(header, Column{Name: name, Index: i})
	}
	return &Table{header: header}, nil
}

// Insert appends a row. The row must have exactly one field per column.
func (t *Table) Insert(row Row) error {
	if len(row) != len(t.header) {
		return fmt.Errorf("%w: got %d values, want %d", ErrSchemaWidthMismatch, len(row), len(t.header))
	}
	t.rows = append(t.rows, slices.Clone(row))
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the header names in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.header))
	for i, c := range t.header {
		names[i] = c.Name
	}
	return names
}

// Header returns a copy of the header.
func (t *Table) Header() []Column {
	return slices.Clone(t.header)
}

// ColumnIndex returns the row position of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for _, c := range t.header {
		if c.Name == name {
			return c.Index, nil
		}
	}
	return 0, &ColumnError{Column: name, Err: ErrColumnNotFound}
}

// RowAt returns a copy of the row at index, projected through the header.
func (t *Table) RowAt(index int) (Row, bool) {
	if index < 0 || index >= len(t.rows) {
		return nil, false
	}
	return t.project(t.rows[index]), true
}

// TakeFirst returns the first row, if any.
func (t *Table) TakeFirst() (Row, bool) {
	return t.RowAt(0)
}

// Take returns the rows at indices [start, end). Indices outside the table
// are skipped rather than reported.
func (t *Table) Take(start, end int) []Row {
	start = max(start, 0)
	end = min(end, len(t.rows))
	var out []Row
	for i := start; i < end; i++ {
		if row, ok := t.RowAt(i); ok {
			out = append(out, row)
		}
	}
	return out
}

// Rows returns every row in header order.
func (t *Table) Rows() []Row {
	return t.Take(0, len(t.rows))
}

// Limit returns a table holding at most the first n rows.
func (t *Table) Limit(n int) *Table {
	if n < 0 || n >= len(t.rows) {
		return t.withRows(t.rows)
	}
	return t.withRows(t.rows[:n])
}

// Concat appends the rows of others after the rows of t, in argument order.
// All tables must share t's header.
func (t *Table) Concat(others ...*Table) (*Table, error) {
	total := len(t.rows)
	for _, o := range others {
		if !slices.Equal(t.header, o.header) {
			return nil, fmt.Errorf("%w: [%s] vs [%s]", ErrHeaderMismatch,
				strings.Join(t.Columns(), ", "), strings.Join(o.Columns(), ", "))
		}
		total += len(o.rows)
	}

	rows := make([]Row, 0, total)
	rows = append(rows, t.rows...)
	for _, o := range others {
		rows = append(rows, o.rows...)
	}
	return t.withRows(rows), nil
}

// String renders one line per row with fields joined by '|'.
func (t *Table) String() string {
	var sb strings.Builder
	for _, row := range t.rows {
		sb.WriteString(strings.Join(t.project(row).Strings(), "|"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t *Table) project(row Row) Row {
	out := make(Row, len(t.header))
	for i, c := range t.header {
		out[i] = row[c.Index]
	}
	return out
}

// withRows builds a table with t's header and a private copy of rows.
func (t *Table) withRows(rows []Row) *Table {
	cloned := make([]Row, len(rows))
	for i, r := range rows {
		cloned[i] = slices.Clone(r)
	}
	return &Table{header: slices.Clone(t.header), rows: cloned}
}
