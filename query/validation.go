package query

import (
	"errors"
	"fmt"
)

// Validation constants to prevent resource exhaustion
const (
	// MaxQueryLength is the maximum allowed query string length (64KB)
	MaxQueryLength = 64 * 1024

	// MaxTokens is the maximum number of tokens in a query
	MaxTokens = 1000

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256

	// MaxSourceLength is the maximum length for a FROM path or pattern
	MaxSourceLength = 4096
)

var (
	// ErrQueryTooLong is returned when query exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyTokens is returned when query has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in query")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")

	// ErrSourceTooLong is returned when the FROM path is too long
	ErrSourceTooLong = errors.New("source path too long")

	// ErrEmptySource is returned when FROM is not followed by a path
	ErrEmptySource = errors.New("source path cannot be empty")

	// ErrUnsupported is returned for constructs that parse but have no
	// table operator to run them
	ErrUnsupported = errors.New("unsupported query construct")
)

// ValidateQuery performs validation on query input
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateSource validates the FROM path length and content
func ValidateSource(name string) error {
	if name == "" {
		return ErrEmptySource
	}
	if len(name) > MaxSourceLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrSourceTooLong, len(name), MaxSourceLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}

// ValidateTokens validates token count
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}
