package query

import (
	"fmt"
	"strconv"
)

// Parser parses queries into an AST
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return fmt.Errorf("expected %v, got %v", tokType, p.describe())
	}
	p.advance()
	return nil
}

// describe renders the current token for error messages
func (p *Parser) describe() string {
	tok := p.current()
	if tok.Value == "" {
		return tok.Type.String()
	}
	return fmt.Sprintf("%v %q", tok.Type, tok.Value)
}

// Parse parses a query. Every clause is optional, so the empty query
// selects the whole table.
//
//	[SELECT cols|*] [FROM path] [WHERE cond {AND|OR cond}]
//	[GROUP BY col] [ORDER BY col [ASC|DESC]] [LIMIT n]
func Parse(query string) (*Query, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	tokens := Tokenize(query)
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	return parser.parseQuery()
}

func (p *Parser) parseQuery() (*Query, error) {
	q := &Query{}

	if p.current().Type == TokenSelect {
		p.advance()
		columns, err := p.parseSelectList()
		if err != nil {
			return nil, err
		}
		q.Columns = columns
	}

	if p.current().Type == TokenFrom {
		p.advance()
		tok := p.current()
		if tok.Type != TokenIdent && tok.Type != TokenString {
			return nil, fmt.Errorf("expected file path after FROM, got %v", p.describe())
		}
		if err := ValidateSource(tok.Value); err != nil {
			return nil, err
		}
		q.Source = tok.Value
		p.advance()
	}

	if p.current().Type == TokenWhere {
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		q.Filter = expr
	}

	if p.current().Type == TokenGroup {
		p.advance()
		if err := p.expect(TokenBy); err != nil {
			return nil, fmt.Errorf("GROUP must be followed by BY: %w", err)
		}
		column, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		q.GroupBy = column
	}

	if p.current().Type == TokenOrder {
		p.advance()
		if err := p.expect(TokenBy); err != nil {
			return nil, fmt.Errorf("ORDER must be followed by BY: %w", err)
		}
		column, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		item := &OrderByItem{Column: column}
		switch p.current().Type {
		case TokenAsc:
			p.advance()
		case TokenDesc:
			item.Desc = true
			p.advance()
		}
		q.OrderBy = item
	}

	if p.current().Type == TokenLimit {
		p.advance()
		if p.current().Type != TokenNumber {
			return nil, fmt.Errorf("expected number after LIMIT, got %v", p.describe())
		}
		n, err := strconv.Atoi(p.current().Value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid LIMIT %q: must be a non-negative integer", p.current().Value)
		}
		q.Limit = &n
		p.advance()
	}

	if p.current().Type != TokenEOF {
		return nil, fmt.Errorf("unexpected %v", p.describe())
	}
	return q, nil
}

// parseSelectList parses: * | col {, col}
func (p *Parser) parseSelectList() ([]string, error) {
	if p.current().Type == TokenIdent && p.current().Value == "*" {
		p.advance()
		return nil, nil
	}

	var columns []string
	for {
		column, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)

		if p.current().Type != TokenComma {
			return columns, nil
		}
		p.advance()
	}
}

// parseColumn parses a single column name
func (p *Parser) parseColumn() (string, error) {
	if p.current().Type != TokenIdent || p.current().Value == "*" {
		return "", fmt.Errorf("expected column name, got %v", p.describe())
	}
	column := p.current().Value
	if err := ValidateColumnName(column); err != nil {
		return "", err
	}
	p.advance()
	return column, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenOr,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenAnd,
			Right:    right,
		}
	}

	return left, nil
}

// parseCondition parses: col op literal | col BETWEEN lit AND lit |
// col CONTAINS 'text'
func (p *Parser) parseCondition() (Expression, error) {
	column, err := p.parseColumn()
	if err != nil {
		return nil, err
	}

	switch operator := p.current().Type; operator {
	case TokenEqual, TokenLess, TokenGreater:
		p.advance()
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &ComparisonExpr{Column: column, Operator: operator, Value: value}, nil

	case TokenBetween:
		p.advance()
		lower, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenAnd); err != nil {
			return nil, fmt.Errorf("BETWEEN bounds must be joined by AND: %w", err)
		}
		upper, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &BetweenExpr{Column: column, Lower: lower, Upper: upper}, nil

	case TokenContains:
		p.advance()
		if p.current().Type != TokenString {
			return nil, fmt.Errorf("expected quoted text after CONTAINS, got %v", p.describe())
		}
		value := p.current().Value
		p.advance()
		return &ContainsExpr{Column: column, Value: value}, nil

	default:
		return nil, fmt.Errorf("expected comparison operator after %q, got %v", column, p.describe())
	}
}

// parseLiteral parses a string, number or boolean literal. The text is kept
// as written; typing happens against the column at execution time.
func (p *Parser) parseLiteral() (Literal, error) {
	tok := p.current()
	switch tok.Type {
	case TokenString, TokenNumber, TokenBool:
		p.advance()
		return Literal{Type: tok.Type, Value: tok.Value}, nil
	default:
		return Literal{}, fmt.Errorf("expected value (string, number, or bool), got %v", p.describe())
	}
}
