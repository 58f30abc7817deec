package table

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Field holds.
type Kind uint8

const (
	KindDate Kind = iota
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Field is a single typed cell.
//
// Only the payload matching Kind is meaningful. Field is comparable, so it
// can be used directly as a map key.
type Field struct {
	kind Kind
	date DateTime
	str  string
	num  float64
	b    bool
}

// Date returns a KindDate field.
func Date(d DateTime) Field { return Field{kind: KindDate, date: d} }

// String returns a KindString field. The text is stored as given; lowercasing
// is the record builder's job.
func String(s string) Field { return Field{kind: KindString, str: s} }

// Number returns a KindNumber field.
func Number(n float64) Field { return Field{kind: KindNumber, num: n} }

// Bool returns a KindBool field.
func Bool(b bool) Field { return Field{kind: KindBool, b: b} }

// Kind returns the variant of f.
func (f Field) Kind() Kind { return f.kind }

// AsDate returns the DateTime payload and whether f is a date.
func (f Field) AsDate() (DateTime, bool) { return f.date, f.kind == KindDate }

// AsString returns the string payload and whether f is a string.
func (f Field) AsString() (string, bool) { return f.str, f.kind == KindString }

// AsNumber returns the numeric payload and whether f is a number.
func (f Field) AsNumber() (float64, bool) { return f.num, f.kind == KindNumber }

// AsBool returns the boolean payload and whether f is a bool.
func (f Field) AsBool() (bool, bool) { return f.b, f.kind == KindBool }

// Equal reports whether f and other hold the same variant and value.
// Fields of different kinds are never equal.
func (f Field) Equal(other Field) bool {
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case KindDate:
		return f.date.Equal(other.date)
	case KindString:
		return f.str == other.str
	case KindNumber:
		return f.num == other.num
	case KindBool:
		return f.b == other.b
	}
	return false
}

// Compare orders f against other. ok is false when the two values cannot be
// ordered: different kinds, or a NaN number.
func (f Field) Compare(other Field) (cmp int, ok bool) {
	if f.kind != other.kind {
		return 0, false
	}
	switch f.kind {
	case KindDate:
		return f.date.Compare(other.date), true
	case KindString:
		return strings.Compare(f.str, other.str), true
	case KindNumber:
		switch {
		case f.num < other.num:
			return -1, true
		case f.num > other.num:
			return 1, true
		case f.num == other.num:
			return 0, true
		}
		return 0, false
	case KindBool:
		switch {
		case f.b == other.b:
			return 0, true
		case !f.b:
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

// Value returns the payload as a plain Go value: DateTime, string, float64
// or bool.
func (f Field) Value() interface{} {
	switch f.kind {
	case KindDate:
		return f.date
	case KindString:
		return f.str
	case KindNumber:
		return f.num
	case KindBool:
		return f.b
	}
	return nil
}

// String renders the payload the way it is displayed in results.
func (f Field) String() string {
	switch f.kind {
	case KindDate:
		return f.date.String()
	case KindString:
		return f.str
	case KindNumber:
		return strconv.FormatFloat(f.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(f.b)
	}
	return ""
}
