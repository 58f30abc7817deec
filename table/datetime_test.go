package table

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestParseCompact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     DateTime
		wantKind DateTimeErrorKind
		wantErr  bool
	}{
		{
			name:  "regular timestamp",
			input: "2023-11-30 00:05",
			want:  DateTime{Year: 2023, Month: 11, Day: 30, Hour: 0, Minute: 5},
		},
		{
			name:  "end of day",
			input: "2024-01-02 23:59",
			want:  DateTime{Year: 2024, Month: 1, Day: 2, Hour: 23, Minute: 59},
		},
		{
			name:  "calendar validity is not checked",
			input: "2023-02-31 00:00",
			want:  DateTime{Year: 2023, Month: 2, Day: 31},
		},
		{
			name:     "missing separator",
			input:    "2023-11-30T00:05",
			wantErr:  true,
			wantKind: ParseError,
		},
		{
			name:     "missing day",
			input:    "2023-11 00:05",
			wantErr:  true,
			wantKind: ParseError,
		},
		{
			name:     "non numeric month",
			input:    "2023-xx-30 00:05",
			wantErr:  true,
			wantKind: IntConversionError,
		},
		{
			name:     "hour out of range for u8",
			input:    "2023-11-30 300:05",
			wantErr:  true,
			wantKind: IntConversionError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompact(tt.input)
			if tt.wantErr {
				var dtErr *DateTimeError
				if !errors.As(err, &dtErr) {
					t.Fatalf("ParseCompact(%q) error = %v, want *DateTimeError", tt.input, err)
				}
				if dtErr.Kind != tt.wantKind {
					t.Errorf("ParseCompact(%q) error kind = %v, want %v", tt.input, dtErr.Kind, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCompact(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCompact(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseExtended(t *testing.T) {
	got, err := ParseExtended("2010-11-02T15:42:08Z")
	if err != nil {
		t.Fatalf("ParseExtended() error = %v", err)
	}
	want := DateTime{Year: 2010, Month: 11, Day: 2, Hour: 15, Minute: 42}
	if got != want {
		t.Errorf("ParseExtended() = %+v, want %+v", got, want)
	}

	_, err = ParseExtended("2010-11-02 15:42:08")
	var dtErr *DateTimeError
	if !errors.As(err, &dtErr) || dtErr.Kind != ParseError {
		t.Errorf("ParseExtended() without T error = %v, want ParseError", err)
	}
}

func TestParseForms_SameInstant(t *testing.T) {
	compact, err := ParseCompact("2023-11-30 07:09")
	if err != nil {
		t.Fatalf("ParseCompact() error = %v", err)
	}
	extended, err := ParseExtended("2023-11-30T07:09:59Z")
	if err != nil {
		t.Fatalf("ParseExtended() error = %v", err)
	}
	if !compact.Equal(extended) {
		t.Errorf("compact %+v and extended %+v should be equal", compact, extended)
	}
}

func TestDateTimeError_NumErrorKind(t *testing.T) {
	_, err := ParseCompact("99999-01-01 00:00")
	var dtErr *DateTimeError
	if !errors.As(err, &dtErr) {
		t.Fatalf("expected *DateTimeError, got %v", err)
	}
	if !errors.Is(dtErr.NumErrorKind(), strconv.ErrRange) {
		t.Errorf("NumErrorKind() = %v, want %v", dtErr.NumErrorKind(), strconv.ErrRange)
	}

	_, err = ParseCompact("2023-1a-01 00:00")
	if !errors.As(err, &dtErr) {
		t.Fatalf("expected *DateTimeError, got %v", err)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("error %v should wrap strconv.ErrSyntax", err)
	}
}

func TestDateTime_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2023-11-30 00:05", "30/11/2023 @ 00:05"},
		{"2024-01-02 09:07", "02/01/2024 @ 09:07"},
		{"5-3-4 1:2", "04/03/05 @ 01:02"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseCompact(tt.input)
			if err != nil {
				t.Fatalf("ParseCompact() error = %v", err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateTime_UnixLikeMonotonic(t *testing.T) {
	base := DateTime{Year: 2023, Month: 6, Day: 15, Hour: 12, Minute: 30}

	bumps := map[string]DateTime{
		"year":   {Year: 2024, Month: 6, Day: 15, Hour: 12, Minute: 30},
		"month":  {Year: 2023, Month: 7, Day: 15, Hour: 12, Minute: 30},
		"day":    {Year: 2023, Month: 6, Day: 16, Hour: 12, Minute: 30},
		"hour":   {Year: 2023, Month: 6, Day: 15, Hour: 13, Minute: 30},
		"minute": {Year: 2023, Month: 6, Day: 15, Hour: 12, Minute: 31},
	}

	for name, later := range bumps {
		t.Run(name, func(t *testing.T) {
			if later.UnixLike() <= base.UnixLike() {
				t.Errorf("UnixLike() for larger %s = %d, want > %d", name, later.UnixLike(), base.UnixLike())
			}
			if !later.After(base) || !base.Before(later) {
				t.Errorf("ordering for larger %s is inconsistent", name)
			}
		})
	}
}

func TestDateTime_UnixLikeMax(t *testing.T) {
	d := DateTime{Year: 65535, Month: 255, Day: 255, Hour: 255, Minute: 255}
	smaller := DateTime{Year: 65535, Month: 255, Day: 255, Hour: 255, Minute: 254}
	if d.UnixLike() <= smaller.UnixLike() {
		t.Errorf("UnixLike() overflowed: %d <= %d", d.UnixLike(), smaller.UnixLike())
	}
}

func TestDateTime_EqualIsStructural(t *testing.T) {
	// 31/01 and 01/02 collapse to the same magnitude with 30-day months.
	a := DateTime{Year: 2023, Month: 1, Day: 31}
	b := DateTime{Year: 2023, Month: 2, Day: 1}

	if a.UnixLike() != b.UnixLike() {
		t.Fatalf("expected equal magnitudes, got %d and %d", a.UnixLike(), b.UnixLike())
	}
	if a.Equal(b) {
		t.Error("Equal() = true for different calendar days")
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare() = %d, want 0", a.Compare(b))
	}
}

func TestFromTime(t *testing.T) {
	tm := time.Date(2023, time.November, 30, 8, 15, 42, 0, time.UTC)
	want := DateTime{Year: 2023, Month: 11, Day: 30, Hour: 8, Minute: 15}
	if got := FromTime(tm); got != want {
		t.Errorf("FromTime() = %+v, want %+v", got, want)
	}
}

func TestDateTime_CompactRoundTrip(t *testing.T) {
	d := DateTime{Year: 2023, Month: 2, Day: 9, Hour: 7, Minute: 5}
	if got := d.Compact(); got != "2023-02-09 07:05" {
		t.Fatalf("Compact() = %q, want %q", got, "2023-02-09 07:05")
	}
	back, err := ParseCompact(d.Compact())
	if err != nil {
		t.Fatalf("ParseCompact() error = %v", err)
	}
	if back != d {
		t.Errorf("ParseCompact(Compact()) = %+v, want %+v", back, d)
	}
}
