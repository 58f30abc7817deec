package reader

import (
	"errors"
	"slices"
	"testing"

	"github.com/vegasq/playcat/table"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{"brace", "{", "", false},
		{"bracket with comma", "  },", "", false},
		{"quoted string", `    "artistName" : "Patrick Doyle",`, "Patrick Doyle", true},
		{"date with colons", `"endTime": "2023-11-30 00:05",`, "2023-11-30 00:05", true},
		{"number", `"msPlayed": 3500`, "3500", true},
		{"extended timestamp", `"ts": "2010-11-02T15:42:08Z",`, "2010-11-02T15:42:08Z", true},
		{"null", `"user_agent_decrypted": null,`, "null", true},
		{"key only", `"key":`, "", true},
		{"inner quotes removed", `"song": "say \"hi\"",`, `say \hi\`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.line)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Extract(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSchemas(t *testing.T) {
	if Narrow.Width() != 4 {
		t.Errorf("Narrow.Width() = %d, want 4", Narrow.Width())
	}
	if Wide.Width() != 21 {
		t.Errorf("Wide.Width() = %d, want 21", Wide.Width())
	}
	if got := Narrow.Names(); !slices.Equal(got, []string{"time", "artist", "song", "msplayed"}) {
		t.Errorf("Narrow.Names() = %v", got)
	}

	for _, s := range []Schema{Narrow, Wide} {
		if _, err := s.NewTable(); err != nil {
			t.Errorf("%s.NewTable() error = %v", s.Name, err)
		}
	}
}

func TestSchemaByName(t *testing.T) {
	for _, name := range []string{"narrow", "WIDE"} {
		if _, err := SchemaByName(name); err != nil {
			t.Errorf("SchemaByName(%q) error = %v", name, err)
		}
	}
	if _, err := SchemaByName("medium"); err == nil {
		t.Error("SchemaByName(\"medium\") should fail")
	}
}

func TestSchema_Convert(t *testing.T) {
	f, err := Narrow.Convert("artist", "Patrick DOYLE")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !f.Equal(table.String("patrick doyle")) {
		t.Errorf("Convert(artist) = %v", f)
	}

	f, err = Wide.Convert("time", "2010-11-02T15:42:08Z")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if f.Kind() != table.KindDate {
		t.Errorf("Convert(time).Kind() = %v, want date", f.Kind())
	}

	if _, err := Narrow.Convert("shuffle", "true"); !errors.Is(err, table.ErrColumnNotFound) {
		t.Errorf("Convert(shuffle) error = %v, want ErrColumnNotFound", err)
	}
}

func TestLowercase_Unicode(t *testing.T) {
	f, _ := Lowercase("ÉDITH PIAF")
	if s, _ := f.AsString(); s != "édith piaf" {
		t.Errorf("Lowercase() = %q, want %q", s, "édith piaf")
	}
}
