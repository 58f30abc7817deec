package query

import (
	"fmt"

	"github.com/araddon/dateparse"

	"github.com/vegasq/playcat/table"
)

// Schema types literal text for a column. reader.Schema satisfies it.
type Schema interface {
	Kind(column string) (table.Kind, error)
	Convert(column, text string) (table.Field, error)
}

// Execute runs q against t. Clauses apply in the order
// WHERE, GROUP BY, ORDER BY, SELECT, LIMIT. Source is not consulted; the
// caller loads the table it names.
func Execute(q *Query, t *table.Table, schema Schema) (*table.Table, error) {
	result := t
	var err error

	if q.Filter != nil {
		result, err = q.Filter.Apply(result, schema)
		if err != nil {
			return nil, fmt.Errorf("WHERE: %w", err)
		}
	}

	if q.GroupBy != "" {
		result, err = result.GroupBy(q.GroupBy)
		if err != nil {
			return nil, fmt.Errorf("GROUP BY: %w", err)
		}
	}

	if q.OrderBy != nil {
		if q.OrderBy.Desc {
			result, err = result.SortByDesc(q.OrderBy.Column)
		} else {
			result, err = result.SortBy(q.OrderBy.Column)
		}
		if err != nil {
			return nil, fmt.Errorf("ORDER BY: %w", err)
		}
	}

	if len(q.Columns) > 0 {
		result, err = result.Select(q.Columns...)
		if err != nil {
			return nil, fmt.Errorf("SELECT: %w", err)
		}
	}

	if q.Limit != nil {
		result = result.Limit(*q.Limit)
	}

	return result, nil
}

// Run parses and executes a query in one step.
func Run(query string, t *table.Table, schema Schema) (*table.Table, error) {
	q, err := Parse(query)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return Execute(q, t, schema)
}

// Apply narrows t by both sides in turn. OR has no table operator and is
// rejected.
func (e *BinaryExpr) Apply(t *table.Table, schema Schema) (*table.Table, error) {
	if e.Operator != TokenAnd {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, e.Operator)
	}
	left, err := e.Left.Apply(t, schema)
	if err != nil {
		return nil, err
	}
	return e.Right.Apply(left, schema)
}

func (e *ComparisonExpr) Apply(t *table.Table, schema Schema) (*table.Table, error) {
	value, err := resolve(schema, e.Column, e.Value)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case TokenEqual:
		return t.FieldIs(e.Column, value)
	case TokenGreater:
		return t.FieldIsGreaterThan(e.Column, value)
	case TokenLess:
		return t.FieldIsLessThan(e.Column, value)
	default:
		return nil, fmt.Errorf("%w: operator %v", ErrUnsupported, e.Operator)
	}
}

func (e *BetweenExpr) Apply(t *table.Table, schema Schema) (*table.Table, error) {
	lower, err := resolve(schema, e.Column, e.Lower)
	if err != nil {
		return nil, err
	}
	upper, err := resolve(schema, e.Column, e.Upper)
	if err != nil {
		return nil, err
	}
	return t.FieldInRange(e.Column, lower, upper)
}

func (e *ContainsExpr) Apply(t *table.Table, _ Schema) (*table.Table, error) {
	return t.FieldContains(e.Column, e.Value)
}

// resolve converts a literal with the column's own converter so it compares
// like the stored cells. Date columns also accept any layout dateparse
// understands ("2023-11-30", "Nov 30 2023 14:05").
func resolve(schema Schema, column string, lit Literal) (table.Field, error) {
	if column == table.CountColumn {
		return table.Field{}, fmt.Errorf("%w: cannot filter on %s before GROUP BY", ErrUnsupported, column)
	}

	kind, err := schema.Kind(column)
	if err != nil {
		return table.Field{}, err
	}

	field, err := schema.Convert(column, lit.Value)
	if err == nil {
		return field, nil
	}
	if kind != table.KindDate {
		return table.Field{}, fmt.Errorf("invalid %s literal %q for column %q: %w", kind, lit.Value, column, err)
	}

	ts, perr := dateparse.ParseAny(lit.Value)
	if perr != nil {
		return table.Field{}, fmt.Errorf("invalid date literal %q for column %q: %w (%w)", lit.Value, column, perr, err)
	}
	return table.Date(table.FromTime(ts)), nil
}
