package query

import "github.com/vegasq/playcat/table"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenSelect TokenType = iota
	TokenFrom
	TokenWhere
	TokenAnd
	TokenOr
	TokenGroup
	TokenOrder
	TokenBy
	TokenAsc
	TokenDesc
	TokenLimit
	TokenBetween
	TokenContains

	// Operators
	TokenEqual   // =
	TokenLess    // <
	TokenGreater // >

	// Literals
	TokenString
	TokenNumber
	TokenIdent
	TokenBool

	// Delimiters
	TokenComma // ,

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenSelect:   "SELECT",
	TokenFrom:     "FROM",
	TokenWhere:    "WHERE",
	TokenAnd:      "AND",
	TokenOr:       "OR",
	TokenGroup:    "GROUP",
	TokenOrder:    "ORDER",
	TokenBy:       "BY",
	TokenAsc:      "ASC",
	TokenDesc:     "DESC",
	TokenLimit:    "LIMIT",
	TokenBetween:  "BETWEEN",
	TokenContains: "CONTAINS",
	TokenEqual:    "=",
	TokenLess:     "<",
	TokenGreater:  ">",
	TokenString:   "string",
	TokenNumber:   "number",
	TokenIdent:    "identifier",
	TokenBool:     "boolean",
	TokenComma:    ",",
	TokenEOF:      "end of query",
	TokenError:    "invalid character",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Query represents a parsed query
type Query struct {
	Source  string       // FROM file path or glob pattern (optional)
	Columns []string     // SELECT list; nil means every column
	Filter  Expression   // WHERE clause (optional)
	GroupBy string       // GROUP BY column (optional)
	OrderBy *OrderByItem // ORDER BY clause (optional)
	Limit   *int         // LIMIT (optional)
}

// OrderByItem represents the column to sort by
type OrderByItem struct {
	Column string
	Desc   bool
}

// Expression is a WHERE condition. Apply narrows t to the rows that satisfy
// it, typing literals through schema.
type Expression interface {
	Apply(t *table.Table, schema Schema) (*table.Table, error)
}

// BinaryExpr represents a binary expression (AND/OR)
type BinaryExpr struct {
	Left     Expression
	Operator TokenType // TokenAnd or TokenOr
	Right    Expression
}

// Literal is an unconverted value from the query text.
type Literal struct {
	Type  TokenType // TokenString, TokenNumber or TokenBool
	Value string
}

// ComparisonExpr represents column = | < | > literal
type ComparisonExpr struct {
	Column   string
	Operator TokenType
	Value    Literal
}

// BetweenExpr represents column BETWEEN lower AND upper. The lower bound is
// exclusive and the upper bound inclusive.
type BetweenExpr struct {
	Column string
	Lower  Literal
	Upper  Literal
}

// ContainsExpr represents column CONTAINS 'text'
type ContainsExpr struct {
	Column string
	Value  string
}
