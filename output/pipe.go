package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/playcat/table"
)

// PipeFormatter writes one line per row with the fields joined by "|", in
// header order and without a header line. It is the default display.
type PipeFormatter struct {
	writer io.Writer
}

// NewPipeFormatter creates a new pipe formatter
func NewPipeFormatter(w io.Writer) *PipeFormatter {
	return &PipeFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *PipeFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes t exactly as Table.String renders it
func (p *PipeFormatter) Format(t *table.Table) error {
	if _, err := io.WriteString(p.writer, t.String()); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// RecordsFormatter writes each row as "name: value" lines, one per column,
// followed by a "-" separator line.
type RecordsFormatter struct {
	writer io.Writer
}

// NewRecordsFormatter creates a new records formatter
func NewRecordsFormatter(w io.Writer) *RecordsFormatter {
	return &RecordsFormatter{writer: w}
}

// SetOutput sets the output writer
func (r *RecordsFormatter) SetOutput(w io.Writer) {
	r.writer = w
}

// Format writes every row of t as a block of "name: value" lines
func (r *RecordsFormatter) Format(t *table.Table) error {
	columns := t.Columns()

	var b strings.Builder
	for _, row := range t.Rows() {
		b.Reset()
		for i, name := range columns {
			fmt.Fprintf(&b, "%s: %s\n", name, row[i])
		}
		b.WriteString("-\n")
		if _, err := io.WriteString(r.writer, b.String()); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}
