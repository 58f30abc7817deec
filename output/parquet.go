package output

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/playcat/table"
)

// ErrNoColumns is returned when a result table without columns is exported.
var ErrNoColumns = errors.New("cannot write parquet without columns")

// ParquetFormatter exports rows as a single parquet file. Number columns
// become DOUBLE, bool columns BOOLEAN and everything else UTF-8 strings,
// with dates in the YYYY-MM-DD HH:MM form.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes t as a parquet file with one row group
func (p *ParquetFormatter) Format(t *table.Table) error {
	columns := t.Columns()
	if len(columns) == 0 {
		return ErrNoColumns
	}

	kinds := columnKinds(t)
	group := make(parquet.Group, len(columns))
	for i, name := range columns {
		group[name] = parquetNode(kinds[i])
	}
	schema := parquet.NewSchema("history", group)

	// Leaf columns are laid out in name order, not table order.
	leaf := leafIndexes(columns)

	rows := make([]parquet.Row, 0, t.Len())
	for _, r := range t.Rows() {
		row := make(parquet.Row, len(columns))
		for i, cell := range r {
			row[leaf[i]] = parquetValue(cell, kinds[i]).Level(0, 0, leaf[i])
		}
		rows = append(rows, row)
	}

	writer := parquet.NewWriter(p.writer, schema)
	if _, err := writer.WriteRows(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// columnKinds picks the physical kind of every column. A column holding
// more than one kind, or no rows at all, is written as strings.
func columnKinds(t *table.Table) []table.Kind {
	kinds := make([]table.Kind, len(t.Columns()))
	for i := range kinds {
		kinds[i] = table.KindString
	}

	rows := t.Rows()
	if len(rows) == 0 {
		return kinds
	}
	for i := range kinds {
		kind := rows[0][i].Kind()
		for _, r := range rows[1:] {
			if r[i].Kind() != kind {
				kind = table.KindString
				break
			}
		}
		kinds[i] = kind
	}
	return kinds
}

// leafIndexes maps each table column to its parquet leaf column index.
func leafIndexes(columns []string) []int {
	sorted := append([]string(nil), columns...)
	sort.Strings(sorted)

	pos := make(map[string]int, len(sorted))
	for i, name := range sorted {
		pos[name] = i
	}

	leaf := make([]int, len(columns))
	for i, name := range columns {
		leaf[i] = pos[name]
	}
	return leaf
}

func parquetNode(kind table.Kind) parquet.Node {
	switch kind {
	case table.KindNumber:
		return parquet.Leaf(parquet.DoubleType)
	case table.KindBool:
		return parquet.Leaf(parquet.BooleanType)
	default:
		return parquet.String()
	}
}

func parquetValue(f table.Field, kind table.Kind) parquet.Value {
	switch kind {
	case table.KindNumber:
		n, _ := f.AsNumber()
		return parquet.ValueOf(n)
	case table.KindBool:
		b, _ := f.AsBool()
		return parquet.ValueOf(b)
	default:
		return parquet.ValueOf(cellText(f))
	}
}
