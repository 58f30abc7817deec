// Package reader turns listening-history export files into typed tables.
//
// Exports are line-oriented pseudo-JSON: one "key": value pair per line,
// with a stable key order per export format. The reader does not parse
// JSON. Each line is reduced to its bare value by Extract, and a Builder
// groups consecutive values into records of a fixed width, converting
// each value with its column's rule.
//
// # Schemas
//
// Two layouts are built in:
//
//   - Narrow: time, artist, song, msplayed (StreamingHistory*.json)
//   - Wide: the 21-column extended export (Streaming_History_Audio_*.json)
//
// Custom layouts are plain values:
//
//	schema := reader.Schema{
//	    Name: "plays",
//	    Columns: []reader.ColumnSpec{
//	        {Name: "time", Kind: table.KindDate, Convert: reader.DateCompact},
//	        {Name: "song", Kind: table.KindString, Convert: reader.Lowercase},
//	    },
//	}
//
// # Basic Usage
//
//	tbl, err := reader.ReadFile("StreamingHistory0.json", reader.Narrow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tbl.Len(), "plays")
//
// # Multiple Files
//
// ReadMultipleFiles expands a glob (doublestar syntax, so "**" works),
// parses every match on its own goroutine and concatenates the tables in
// numeric-suffix order:
//
//	tbl, err := reader.ReadMultipleFiles("data/StreamingHistory*.json", reader.Narrow, reader.Options{})
//
// The first file that fails aborts the whole read.
//
// # Compression
//
// gzip, bzip2 and xz files are detected by their magic bytes and
// decompressed transparently.
//
// # Malformed Input
//
// A value that fails to convert inside a complete record is an error
// (*ParseError, wrapping *table.DateTimeError). A trailing record with too
// few values is dropped without error.
package reader
