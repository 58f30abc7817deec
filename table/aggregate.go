package table

import "math"

// GroupBy counts the occurrences of each distinct value in column and
// returns a two-column table (column, COUNT). Groups appear in the order
// their value was first seen, but callers should not depend on it.
func (t *Table) GroupBy(column string) (*Table, error) {
	col, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	// Hash-based grouping. NaN never equals itself as a map key, so NaN
	// cells are counted on the side as one group.
	counts := make(map[Field]int)
	var order []Field
	nanCount := 0
	for _, row := range t.rows {
		key := row[col]
		if isNaN(key) {
			if nanCount == 0 {
				order = append(order, key)
			}
			nanCount++
			continue
		}
		if _, exists := counts[key]; !exists {
			order = append(order, key)
		}
		counts[key]++
	}

	result, err := New(column, CountColumn)
	if err != nil {
		return nil, err
	}
	for _, key := range order {
		count := counts[key]
		if isNaN(key) {
			count = nanCount
		}
		result.rows = append(result.rows, Row{key, Number(float64(count))})
	}
	return result, nil
}

func isNaN(f Field) bool {
	n, ok := f.AsNumber()
	return ok && math.IsNaN(n)
}

// Select narrows the table to the named columns. The result keeps the
// schema order of the columns, not the order they were requested in.
func (t *Table) Select(columns ...string) (*Table, error) {
	wanted := make(map[string]bool, len(columns))
	for _, name := range columns {
		if _, err := t.ColumnIndex(name); err != nil {
			return nil, err
		}
		wanted[name] = true
	}

	var keep []Column
	for _, c := range t.header {
		if wanted[c.Name] {
			keep = append(keep, c)
		}
	}

	header := make([]Column, len(keep))
	for i, c := range keep {
		header[i] = Column{Name: c.Name, Index: i}
	}

	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		projected := make(Row, len(keep))
		for j, c := range keep {
			projected[j] = row[c.Index]
		}
		rows[i] = projected
	}
	return &Table{header: header, rows: rows}, nil
}

