// Package output provides formatters that write query results in various
// formats.
//
// This package defines the Formatter interface and provides implementations
// for the formats the command line accepts. All formatters render a
// *table.Table and never modify it.
//
// # Supported Formats
//
//   - pipe: one line per row, fields joined by "|", no header (default)
//   - records: "name: value" lines per row, each record ended by "-"
//   - csv: comma-separated values with header row
//   - json: JSON Lines, one object per row
//   - table: aligned text table with borders
//   - parquet: a single parquet file
//
// # Basic Usage
//
// Pick a formatter by name:
//
//	formatter, err := output.New("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewParquetFormatter(os.Stdout)
//
//	file, err := os.Create("history.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
//
// # Type Handling
//
// The pipe and records formats show dates as DD/MM/YYYY @ HH:MM, matching
// Table.String. The csv, json, table and parquet formats use the sortable
// YYYY-MM-DD HH:MM form. CSV cells that start with a formula character are
// prefixed with a quote.
package output
