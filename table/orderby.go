package table

import (
	"fmt"
	"slices"
)

// SortBy returns the rows stably sorted by column in ascending order.
// It fails with ErrIncomparable when the column mixes kinds.
func (t *Table) SortBy(column string) (*Table, error) {
	return t.sortBy(column, false)
}

// SortByDesc is SortBy in descending order. Ties keep their input order.
func (t *Table) SortByDesc(column string) (*Table, error) {
	return t.sortBy(column, true)
}

func (t *Table) sortBy(column string, desc bool) (*Table, error) {
	col, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	sorted := t.withRows(t.rows)
	var sortErr error
	slices.SortStableFunc(sorted.rows, func(a, b Row) int {
		cmp, ok := a[col].Compare(b[col])
		if !ok {
			if sortErr == nil {
				sortErr = fmt.Errorf("%w: cannot order %s against %s in column '%s'",
					ErrIncomparable, a[col].Kind(), b[col].Kind(), column)
			}
			return 0
		}
		if desc {
			return -cmp
		}
		return cmp
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return sorted, nil
}
