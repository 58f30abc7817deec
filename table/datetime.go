package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit sizes used by UnixLike, in milliseconds. Months are a fixed 30 days
// and years a fixed 365 days.
const (
	msPerMinute uint64 = 1000 * 60
	msPerHour          = msPerMinute * 60
	msPerDay           = msPerHour * 24
	msPerMonth         = msPerDay * 30
	msPerYear          = msPerDay * 365
)

// DateTime is a minute-resolution calendar value.
//
// None of the components are checked for calendar validity: 31/02 is a
// perfectly good DateTime. Equality is structural while ordering goes
// through UnixLike, so the two notions are independent.
type DateTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
}

// DateTimeErrorKind distinguishes the two ways parsing a DateTime can fail.
type DateTimeErrorKind int

const (
	// ParseError means the text did not have the expected shape.
	ParseError DateTimeErrorKind = iota
	// IntConversionError means a numeric component failed to parse.
	IntConversionError
)

func (k DateTimeErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case IntConversionError:
		return "int conversion error"
	default:
		return "unknown"
	}
}

// DateTimeError is returned when text cannot be converted into a DateTime
// (or, by the record builder, into a Number).
type DateTimeError struct {
	Kind   DateTimeErrorKind
	Reason string
	// Err holds the underlying *strconv.NumError for IntConversionError.
	Err error
}

func (e *DateTimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *DateTimeError) Unwrap() error {
	return e.Err
}

// NumErrorKind returns the strconv failure kind (strconv.ErrSyntax or
// strconv.ErrRange) for an IntConversionError, or nil.
func (e *DateTimeError) NumErrorKind() error {
	var numErr *strconv.NumError
	if errors.As(e.Err, &numErr) {
		return numErr.Err
	}
	return nil
}

func parseError(reason string) *DateTimeError {
	return &DateTimeError{Kind: ParseError, Reason: reason}
}

// ConversionError wraps a numeric parse failure.
func ConversionError(err error) *DateTimeError {
	return &DateTimeError{Kind: IntConversionError, Reason: "invalid number", Err: err}
}

// UnixLike collapses the value into a single linear magnitude in
// milliseconds. It is monotonic but not calendar exact.
func (d DateTime) UnixLike() uint64 {
	return uint64(d.Year)*msPerYear +
		uint64(d.Month)*msPerMonth +
		uint64(d.Day)*msPerDay +
		uint64(d.Hour)*msPerHour +
		uint64(d.Minute)*msPerMinute
}

// Equal reports whether all five components match.
func (d DateTime) Equal(other DateTime) bool {
	return d == other
}

// Compare orders two values by UnixLike, returning -1, 0 or +1.
func (d DateTime) Compare(other DateTime) int {
	a, b := d.UnixLike(), other.UnixLike()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d orders strictly before other.
func (d DateTime) Before(other DateTime) bool { return d.Compare(other) < 0 }

// After reports whether d orders strictly after other.
func (d DateTime) After(other DateTime) bool { return d.Compare(other) > 0 }

// String renders the value as DD/MM/YYYY @ HH:MM.
func (d DateTime) String() string {
	return fmt.Sprintf("%02d/%02d/%02d @ %02d:%02d", d.Day, d.Month, d.Year, d.Hour, d.Minute)
}

// Compact renders the value in the YYYY-MM-DD HH:MM form ParseCompact reads.
func (d DateTime) Compact() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute)
}

// FromTime truncates a time.Time to minute resolution.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
	}
}

// ParseCompact parses the "YYYY-MM-DD HH:MM" form used by the short
// streaming-history exports.
func ParseCompact(s string) (DateTime, error) {
	sep := strings.IndexByte(s, ' ')
	if sep < 0 {
		return DateTime{}, parseError("found no date and time separator")
	}
	return parseParts(s[:sep], s[sep+1:])
}

// ParseExtended parses the "YYYY-MM-DDTHH:MM:SSZ" form used by the extended
// exports. Seconds and the zone suffix are ignored.
func ParseExtended(s string) (DateTime, error) {
	sep := strings.IndexByte(s, 'T')
	if sep < 0 {
		return DateTime{}, parseError("found no date and time separator")
	}
	return parseParts(s[:sep], strings.TrimSuffix(s[sep+1:], "Z"))
}

func parseParts(date, clock string) (DateTime, error) {
	var d DateTime

	dateParts := strings.SplitN(date, "-", 3)
	if len(dateParts) < 3 {
		return d, parseError(missing("year", "month", "day")[len(dateParts)])
	}
	clockParts := strings.SplitN(strings.TrimSpace(clock), ":", 3)
	if len(clockParts) < 2 {
		return d, parseError(missing("hour", "minute")[len(clockParts)])
	}

	year, err := strconv.ParseUint(dateParts[0], 10, 16)
	if err != nil {
		return d, ConversionError(err)
	}
	month, err := parseUint8(dateParts[1])
	if err != nil {
		return d, err
	}
	day, err := parseUint8(dateParts[2])
	if err != nil {
		return d, err
	}
	hour, err := parseUint8(clockParts[0])
	if err != nil {
		return d, err
	}
	minute, err := parseUint8(clockParts[1])
	if err != nil {
		return d, err
	}

	d.Year = uint16(year)
	d.Month, d.Day, d.Hour, d.Minute = month, day, hour, minute
	return d, nil
}

func parseUint8(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, ConversionError(err)
	}
	return uint8(v), nil
}

// missing maps a component count to the reason naming the first absent one.
func missing(names ...string) []string {
	reasons := make([]string, len(names))
	for i, n := range names {
		reasons[i] = "unable to retrieve " + n
	}
	return reasons
}
