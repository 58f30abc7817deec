package table

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// filter keeps the rows whose cell in column satisfies keep.
func (t *Table) filter(column string, keep func(Field) bool) (*Table, error) {
	col, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	kept := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if keep(row[col]) {
			kept = append(kept, row)
		}
	}
	return t.withRows(kept), nil
}

// FieldIs keeps rows whose cell in column equals value.
func (t *Table) FieldIs(column string, value Field) (*Table, error) {
	return t.filter(column, func(f Field) bool {
		return f.Equal(value)
	})
}

// FieldIsGreaterThan keeps rows whose cell in column is strictly greater
// than value. Cells that cannot be ordered against value are dropped.
func (t *Table) FieldIsGreaterThan(column string, value Field) (*Table, error) {
	return t.filter(column, func(f Field) bool {
		cmp, ok := f.Compare(value)
		return ok && cmp > 0
	})
}

// FieldIsLessThan keeps rows whose cell in column is strictly less than
// value. Cells that cannot be ordered against value are dropped.
func (t *Table) FieldIsLessThan(column string, value Field) (*Table, error) {
	return t.filter(column, func(f Field) bool {
		cmp, ok := f.Compare(value)
		return ok && cmp < 0
	})
}

// FieldInRange keeps rows with lower < cell <= upper.
func (t *Table) FieldInRange(column string, lower, upper Field) (*Table, error) {
	return t.filter(column, func(f Field) bool {
		lo, ok := f.Compare(lower)
		if !ok || lo <= 0 {
			return false
		}
		hi, ok := f.Compare(upper)
		return ok && hi <= 0
	})
}

// FieldContains keeps rows whose string cell in column contains substr,
// ignoring case. Non-string cells are dropped.
func (t *Table) FieldContains(column, substr string) (*Table, error) {
	lower := cases.Lower(language.Und)
	needle := lower.String(substr)
	return t.filter(column, func(f Field) bool {
		s, ok := f.AsString()
		return ok && strings.Contains(lower.String(s), needle)
	})
}
