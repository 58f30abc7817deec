package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/playcat/table"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes t as JSON Lines (one JSON object per row). Numbers and
// booleans keep their JSON types; dates are YYYY-MM-DD HH:MM strings.
func (j *JSONFormatter) Format(t *table.Table) error {
	columns := t.Columns()
	encoder := json.NewEncoder(j.writer)
	for _, row := range t.Rows() {
		obj := make(map[string]interface{}, len(columns))
		for i, name := range columns {
			obj[name] = jsonValue(row[i])
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

func jsonValue(f table.Field) interface{} {
	if d, ok := f.AsDate(); ok {
		return d.Compact()
	}
	return f.Value()
}
