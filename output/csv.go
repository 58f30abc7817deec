package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/playcat/table"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes t as CSV with a header row in column order
func (c *CSVFormatter) Format(t *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(t.Columns()); err != nil {
		return err
	}

	for _, row := range t.Rows() {
		record := make([]string, len(row))
		for i, f := range row {
			record[i] = formatValue(f)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatValue converts a field to string for CSV output
func formatValue(f table.Field) string {
	val, ok := f.AsString()
	if !ok {
		return cellText(f)
	}

	// Sanitize against CSV injection by prefixing dangerous characters
	// that could trigger formula execution in spreadsheet applications
	if len(val) > 0 {
		switch val[0] {
		case '=', '+', '-', '@', '\t', '\r', '\n', '|':
			return "'" + strings.ReplaceAll(val, "'", "''")
		}
	}
	return val
}
