// Package query provides a small SQL-like language over listening-history
// tables.
//
// A query is a sequence of optional clauses, always in this order:
//
//	[SELECT cols|*] [FROM path] [WHERE cond {AND cond}]
//	[GROUP BY col] [ORDER BY col [ASC|DESC]] [LIMIT n]
//
// where a condition is one of
//
//	col = value
//	col > value
//	col < value
//	col BETWEEN low AND high    -- low < cell <= high
//	col CONTAINS 'text'         -- case-insensitive substring
//
// Keywords are case-insensitive. The empty query returns the table unchanged.
//
// # Basic Usage
//
//	q, err := query.Parse("WHERE msplayed > 30000 GROUP BY artist ORDER BY COUNT DESC LIMIT 10")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	t, err := reader.ReadFile("StreamingHistory0.json", reader.Narrow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	top, err := query.Execute(q, t, reader.Narrow)
//
// # Literals
//
// Literals are converted with the column's own rule from the schema, so a
// string literal is lowercased like the stored cells and a date literal is
// parsed like the export's timestamps. Date columns also accept free-form
// dates such as '2023-11-30' or 'Nov 30 2023 14:05'.
//
// # Execution
//
// Clauses run as WHERE, GROUP BY, ORDER BY, SELECT, LIMIT. After GROUP BY
// the table has two columns, the grouped column and COUNT, so ORDER BY and
// SELECT may refer to COUNT.
//
// OR is recognised by the parser but rejected by Execute with
// ErrUnsupported.
//
// # Validation
//
// Parse enforces limits on query length, token count, column name length
// and FROM path length. The corresponding errors are ErrQueryTooLong,
// ErrTooManyTokens, ErrColumnNameTooLong and ErrSourceTooLong.
package query
