package reader

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vegasq/playcat/table"
)

// Converter turns one extracted token into a typed field.
type Converter func(token string) (table.Field, error)

// ColumnSpec names a column, the kind of field it holds and the rule used
// to convert its tokens.
type ColumnSpec struct {
	Name    string
	Kind    table.Kind
	Convert Converter
}

// Schema is the fixed column layout of one export format. The order of
// Columns is the order the values appear in each record.
type Schema struct {
	Name    string
	Columns []ColumnSpec
}

// Width returns the number of tokens per record.
func (s Schema) Width() int {
	return len(s.Columns)
}

// Names returns the column names in record order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Kind returns the field kind of the named column.
func (s Schema) Kind(column string) (table.Kind, error) {
	for _, c := range s.Columns {
		if c.Name == column {
			return c.Kind, nil
		}
	}
	return 0, &table.ColumnError{Column: column, Err: table.ErrColumnNotFound}
}

// NewTable creates an empty table with this schema's header.
func (s Schema) NewTable() (*table.Table, error) {
	return table.New(s.Names()...)
}

// Convert applies the named column's conversion rule to text. It lets
// callers build comparison values typed the same way as the data.
func (s Schema) Convert(column, text string) (table.Field, error) {
	for _, c := range s.Columns {
		if c.Name == column {
			return c.Convert(text)
		}
	}
	return table.Field{}, &table.ColumnError{Column: column, Err: table.ErrColumnNotFound}
}

// DateCompact converts "YYYY-MM-DD HH:MM" tokens.
func DateCompact(token string) (table.Field, error) {
	d, err := table.ParseCompact(token)
	if err != nil {
		return table.Field{}, err
	}
	return table.Date(d), nil
}

// DateExtended converts "YYYY-MM-DDTHH:MM:SSZ" tokens.
func DateExtended(token string) (table.Field, error) {
	d, err := table.ParseExtended(token)
	if err != nil {
		return table.Field{}, err
	}
	return table.Date(d), nil
}

// Lowercase converts a token into a lowercased string field.
func Lowercase(token string) (table.Field, error) {
	// Casers keep state, so each call gets its own.
	return table.String(cases.Lower(language.Und).String(token)), nil
}

// Number converts a token into a numeric field. NaN and infinities are
// rejected.
func Number(token string) (table.Field, error) {
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return table.Field{}, table.ConversionError(err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return table.Field{}, table.ConversionError(fmt.Errorf("non-finite number %q", token))
	}
	return table.Number(n), nil
}

// NumberOrZero is Number, except unparseable or non-finite tokens
// (typically "null") become 0.
func NumberOrZero(token string) (table.Field, error) {
	f, err := Number(token)
	if err != nil {
		return table.Number(0), nil
	}
	return f, nil
}

// Bool is true only for a case-insensitive "true"; anything else is false.
func Bool(token string) (table.Field, error) {
	return table.Bool(strings.EqualFold(token, "true")), nil
}

// Narrow is the four-column layout of the short streaming-history export.
var Narrow = Schema{
	Name: "narrow",
	Columns: []ColumnSpec{
		{"time", table.KindDate, DateCompact},
		{"artist", table.KindString, Lowercase},
		{"song", table.KindString, Lowercase},
		{"msplayed", table.KindNumber, Number},
	},
}

// Wide is the 21-column layout of the extended streaming-history export.
var Wide = Schema{
	Name: "wide",
	Columns: []ColumnSpec{
		{"time", table.KindDate, DateExtended},
		{"username", table.KindString, Lowercase},
		{"platform", table.KindString, Lowercase},
		{"msplayed", table.KindNumber, Number},
		{"country", table.KindString, Lowercase},
		{"ip_addr", table.KindString, Lowercase},
		{"user_agent", table.KindString, Lowercase},
		{"song", table.KindString, Lowercase},
		{"artist", table.KindString, Lowercase},
		{"album", table.KindString, Lowercase},
		{"track_uri", table.KindString, Lowercase},
		{"episode_name", table.KindString, Lowercase},
		{"episode_show_name", table.KindString, Lowercase},
		{"episode_uri", table.KindString, Lowercase},
		{"reason_start", table.KindString, Lowercase},
		{"reason_end", table.KindString, Lowercase},
		{"shuffle", table.KindBool, Bool},
		{"skipped", table.KindBool, Bool},
		{"offline", table.KindBool, Bool},
		{"offline_timestamp", table.KindNumber, NumberOrZero},
		{"incognito_mode", table.KindBool, Bool},
	},
}

// SchemaByName returns the built-in schema called name ("narrow" or "wide").
func SchemaByName(name string) (Schema, error) {
	switch strings.ToLower(name) {
	case Narrow.Name:
		return Narrow, nil
	case Wide.Name:
		return Wide, nil
	default:
		return Schema{}, fmt.Errorf("unknown schema %q (expected %q or %q)", name, Narrow.Name, Wide.Name)
	}
}
