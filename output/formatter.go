package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/playcat/table"
)

// Format names accepted by New.
const (
	FormatPipe    = "pipe"
	FormatRecords = "records"
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatTable   = "table"
	FormatParquet = "parquet"
)

// ErrUnknownFormat is returned by New for an unrecognised format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a result table in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes t in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists every format name New accepts.
func Formats() []string {
	return []string{FormatPipe, FormatRecords, FormatCSV, FormatJSON, FormatTable, FormatParquet}
}

// New returns the formatter called name, writing to w. The name is
// case-insensitive; "jsonl" is accepted as an alias for "json".
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatPipe, "":
		return NewPipeFormatter(w), nil
	case FormatRecords:
		return NewRecordsFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSON, "jsonl":
		return NewJSONFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatParquet:
		return NewParquetFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
}

// cellText renders a field for text formats. Dates use the sortable
// YYYY-MM-DD HH:MM form.
func cellText(f table.Field) string {
	if d, ok := f.AsDate(); ok {
		return d.Compact()
	}
	return f.String()
}
