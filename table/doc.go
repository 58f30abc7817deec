// Package table implements a typed, fixed-schema, in-memory row store and
// the query operators that run over it.
//
// A Table is created with a list of column names and filled one Row at a
// time. Every Row holds one Field per column; a Field is a Date, String,
// Number or Bool.
//
// # Operators
//
// Operators never modify their receiver. Each one returns a new Table, so
// they chain naturally:
//
//	played, err := t.FieldIsGreaterThan("msplayed", table.Number(3000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	perArtist, err := played.GroupBy("artist")
//
// Filters (FieldIs, FieldIsGreaterThan, FieldIsLessThan, FieldInRange,
// FieldContains) drop cells whose kind does not match the comparison value.
// SortBy refuses to order a column that mixes kinds.
//
// # Dates
//
// DateTime is a minute-resolution value without calendar validation. It is
// ordered by a synthetic linear magnitude (UnixLike) that uses 30-day months
// and 365-day years, and compared for equality field by field.
//
// # Errors
//
// Unknown columns yield ErrColumnNotFound and rows of the wrong width yield
// ErrSchemaWidthMismatch. Both are ordinary returned errors; use errors.Is
// to test for them.
package table
