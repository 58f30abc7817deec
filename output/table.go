package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/playcat/table"
)

// TableFormatter renders rows as an aligned, bordered text table with a
// header, for reading results in a terminal.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes t as a text table. Header names are printed as-is.
func (f *TableFormatter) Format(t *table.Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Columns())
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellText(cell)
		}
		tw.Append(cells)
	}

	tw.Render()
	return nil
}
