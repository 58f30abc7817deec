package reader

import (
	"fmt"

	"github.com/vegasq/playcat/table"
)

// Builder batches a flat stream of tokens into records of the schema's
// width and inserts each completed record into its table.
type Builder struct {
	schema Schema
	buf    []string
	ptr    int
	table  *table.Table
}

// NewBuilder returns a builder that fills a fresh table for schema.
func NewBuilder(schema Schema) (*Builder, error) {
	if schema.Width() == 0 {
		return nil, fmt.Errorf("schema %q has no columns", schema.Name)
	}
	tbl, err := schema.NewTable()
	if err != nil {
		return nil, err
	}
	return &Builder{
		schema: schema,
		buf:    make([]string, schema.Width()),
		table:  tbl,
	}, nil
}

// Append stores token in the next slot. When the slot completes a record,
// the record is converted and inserted, and the builder starts over at the
// first slot.
//
// If any slot fails to convert, the whole record is discarded and the error
// returned; the builder is still ready for the next record.
func (b *Builder) Append(token string) error {
	b.buf[b.ptr] = token
	if b.ptr < len(b.buf)-1 {
		b.ptr++
		return nil
	}
	b.ptr = 0

	row := make(table.Row, len(b.buf))
	for i, col := range b.schema.Columns {
		field, err := col.Convert(b.buf[i])
		if err != nil {
			return fmt.Errorf("column %q value %q: %w", col.Name, b.buf[i], err)
		}
		row[i] = field
	}
	return b.table.Insert(row)
}

// Pending returns how many tokens of an incomplete record are buffered.
// They never reach the table unless the record is completed.
func (b *Builder) Pending() int {
	return b.ptr
}

// Table returns the table the builder fills.
func (b *Builder) Table() *table.Table {
	return b.table
}
