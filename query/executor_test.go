package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/araddon/dateparse"

	"github.com/vegasq/playcat/reader"
	"github.com/vegasq/playcat/table"
)

type play struct {
	time     string
	artist   string
	song     string
	msplayed float64
}

// historyTable builds a narrow table the way the reader would.
func historyTable(t *testing.T, plays ...play) *table.Table {
	t.Helper()
	tbl, err := reader.Narrow.NewTable()
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	for _, p := range plays {
		when, err := reader.DateCompact(p.time)
		if err != nil {
			t.Fatalf("DateCompact(%q) error = %v", p.time, err)
		}
		row := table.Row{
			when,
			table.String(strings.ToLower(p.artist)),
			table.String(strings.ToLower(p.song)),
			table.Number(p.msplayed),
		}
		if err := tbl.Insert(row); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	return tbl
}

func sampleHistory(t *testing.T) *table.Table {
	t.Helper()
	return historyTable(t,
		play{"2023-01-05 10:00", "Daft Punk", "One More Time", 320000},
		play{"2023-01-20 11:30", "Air", "La Femme d'Argent", 2000},
		play{"2023-02-01 00:00", "Daft Punk", "Digital Love", 301000},
		play{"2023-02-14 21:15", "Justice", "D.A.N.C.E.", 242000},
		play{"2023-03-03 08:45", "Daft Punk", "Aerodynamic", 3000},
		play{"2023-03-09 17:20", "Air", "Sexy Boy", 298000},
	)
}

func column(t *testing.T, tbl *table.Table, name string) []string {
	t.Helper()
	idx, err := tbl.ColumnIndex(name)
	if err != nil {
		t.Fatalf("ColumnIndex(%q) error = %v", name, err)
	}
	var out []string
	for _, row := range tbl.Rows() {
		out = append(out, row[idx].String())
	}
	return out
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		column string
		want   []string
	}{
		{
			name:   "empty query returns everything",
			query:  "",
			column: "song",
			want:   []string{"one more time", "la femme d'argent", "digital love", "d.a.n.c.e.", "aerodynamic", "sexy boy"},
		},
		{
			name:   "string equality is case-insensitive through the schema",
			query:  "where artist = 'DAFT PUNK'",
			column: "song",
			want:   []string{"one more time", "digital love", "aerodynamic"},
		},
		{
			name:   "number greater than is strict",
			query:  "where msplayed > 3000",
			column: "msplayed",
			want:   []string{"320000", "301000", "242000", "298000"},
		},
		{
			name:   "number less than",
			query:  "where msplayed < 3000",
			column: "song",
			want:   []string{"la femme d'argent"},
		},
		{
			name:   "between excludes lower and includes upper",
			query:  "where msplayed between 2000 and 242000",
			column: "msplayed",
			want:   []string{"242000", "3000"},
		},
		{
			name:   "date between with compact literals",
			query:  "where time between '2023-01-20 11:30' and '2023-02-14 21:15'",
			column: "song",
			want:   []string{"digital love", "d.a.n.c.e."},
		},
		{
			name:   "date literal without a clock",
			query:  "where time > '2023-03-01'",
			column: "song",
			want:   []string{"aerodynamic", "sexy boy"},
		},
		{
			name:   "contains",
			query:  "where song contains 'LOVE'",
			column: "song",
			want:   []string{"digital love"},
		},
		{
			name:   "conjunction",
			query:  "where artist = 'air' and msplayed > 3000",
			column: "song",
			want:   []string{"sexy boy"},
		},
		{
			name:   "order by descending",
			query:  "order by msplayed desc limit 3",
			column: "msplayed",
			want:   []string{"320000", "301000", "298000"},
		},
		{
			name:   "order by date",
			query:  "where artist = 'air' order by time desc",
			column: "song",
			want:   []string{"sexy boy", "la femme d'argent"},
		},
		{
			name:   "group by counts in first-seen order",
			query:  "group by artist",
			column: "COUNT",
			want:   []string{"3", "2", "1"},
		},
		{
			name:   "limit zero",
			query:  "limit 0",
			column: "song",
			want:   nil,
		},
		{
			name:   "limit larger than table",
			query:  "where artist = 'justice' limit 10",
			column: "song",
			want:   []string{"d.a.n.c.e."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(tt.query, sampleHistory(t), reader.Narrow)
			if err != nil {
				t.Fatalf("Run(%q) error = %v", tt.query, err)
			}
			got := column(t, result, tt.column)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Run(%q) %s = %v, want %v", tt.query, tt.column, got, tt.want)
			}
		})
	}
}

func TestRun_GroupOrderSelect(t *testing.T) {
	result, err := Run("select artist, COUNT where msplayed > 3000 group by artist order by COUNT desc", sampleHistory(t), reader.Narrow)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.Join(result.Columns(), ","); got != "artist,COUNT" {
		t.Errorf("Columns() = %q, want artist,COUNT", got)
	}
	// Ties keep first-seen order.
	want := "daft punk|2\njustice|1\nair|1\n"
	if result.String() != want {
		t.Errorf("String() = %q, want %q", result.String(), want)
	}
}

func TestRun_SelectProjects(t *testing.T) {
	result, err := Run("select msplayed, song where artist = 'justice'", sampleHistory(t), reader.Narrow)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Projection keeps schema order, not SELECT order.
	if got := strings.Join(result.Columns(), ","); got != "song,msplayed" {
		t.Errorf("Columns() = %q, want song,msplayed", got)
	}
	if result.String() != "d.a.n.c.e.|242000\n" {
		t.Errorf("String() = %q", result.String())
	}
}

func TestRun_DoesNotModifyInput(t *testing.T) {
	tbl := sampleHistory(t)
	before := tbl.String()

	if _, err := Run("select song where artist = 'air' order by msplayed limit 1", tbl, reader.Narrow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if tbl.String() != before {
		t.Error("Run() modified its input table")
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  error
	}{
		{name: "unknown filter column", query: "where genre = 'house'", want: table.ErrColumnNotFound},
		{name: "unknown group column", query: "group by genre", want: table.ErrColumnNotFound},
		{name: "unknown order column", query: "order by genre", want: table.ErrColumnNotFound},
		{name: "unknown select column", query: "select genre", want: table.ErrColumnNotFound},
		{name: "count before grouping", query: "where COUNT > 1 group by artist", want: ErrUnsupported},
		{name: "order by count without grouping", query: "order by COUNT", want: table.ErrColumnNotFound},
		{name: "or", query: "where artist = 'air' or artist = 'justice'", want: ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.query, sampleHistory(t), reader.Narrow)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run(%q) error = %v, want %v", tt.query, err, tt.want)
			}
		})
	}
}

func TestRun_BadLiteral(t *testing.T) {
	tests := []string{
		"where msplayed > 'lots'",
		"where time > 'not a date at all'",
	}
	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			if _, err := Run(q, sampleHistory(t), reader.Narrow); err == nil {
				t.Errorf("Run(%q) should fail", q)
			}
		})
	}
}

func TestRun_BadDateLiteralExplains(t *testing.T) {
	const lit = "not a date at all"
	_, err := Run("where time > '"+lit+"'", sampleHistory(t), reader.Narrow)
	if err == nil {
		t.Fatal("Run() should fail")
	}

	_, perr := dateparse.ParseAny(lit)
	if perr == nil {
		t.Fatalf("ParseAny(%q) unexpectedly succeeded", lit)
	}
	if !strings.Contains(err.Error(), perr.Error()) {
		t.Errorf("error %q does not carry the date parser reason %q", err, perr)
	}
	var dtErr *table.DateTimeError
	if !errors.As(err, &dtErr) {
		t.Errorf("error %v should still wrap the compact-date failure", err)
	}
}

func TestRun_NonASCIILiterals(t *testing.T) {
	tbl := historyTable(t,
		play{"2023-04-01 12:00", "Björk", "Jóga", 305000},
		play{"2023-04-02 12:00", "Sigur Rós", "Hoppípolla", 268000},
		play{"2023-04-03 12:00", "Air", "Playground Love", 214000},
	)

	tests := []struct {
		query string
		want  string
	}{
		{"select song where artist = 'Björk'", "jóga\n"},
		{"select song where artist = 'BJÖRK'", "jóga\n"},
		{"select artist where song contains 'PÍP'", "sigur rós\n"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result, err := Run(tt.query, tbl, reader.Narrow)
			if err != nil {
				t.Fatalf("Run(%q) error = %v", tt.query, err)
			}
			if result.String() != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.query, result.String(), tt.want)
			}
		})
	}
}

func TestExecute_WideSchemaBool(t *testing.T) {
	tbl, err := reader.Wide.NewTable()
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	for i, skipped := range []string{"true", "false", "true"} {
		row := make(table.Row, reader.Wide.Width())
		for c, spec := range reader.Wide.Columns {
			text := "x"
			switch spec.Kind {
			case table.KindDate:
				text = "2023-11-30T00:05:00Z"
			case table.KindNumber:
				text = "1"
			case table.KindBool:
				text = "false"
			}
			if spec.Name == "skipped" {
				text = skipped
			}
			if spec.Name == "song" {
				text = string(rune('a' + i))
			}
			row[c], err = spec.Convert(text)
			if err != nil {
				t.Fatalf("Convert(%q) error = %v", text, err)
			}
		}
		if err := tbl.Insert(row); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	q, err := Parse("select song where skipped = TRUE")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	result, err := Execute(q, tbl, reader.Wide)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.String() != "a\nc\n" {
		t.Errorf("String() = %q, want %q", result.String(), "a\nc\n")
	}
}
