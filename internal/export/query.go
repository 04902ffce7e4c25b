package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/days/internal/filter"
	"github.com/roach88/days/internal/store"
)

// CompileWhere converts a predicate to a parameterized SQL condition over
// the events table. Values are never interpolated.
//
// Dates are stored as YYYY-MM-DD text, so text comparison orders them.
func CompileWhere(p filter.Predicate) (string, []any, error) {
	if p == nil {
		return "1 = 1", nil, nil // Always true
	}

	switch pred := p.(type) {
	case filter.All:
		return "1 = 1", nil, nil
	case filter.OnDate:
		return "date = ?", []any{pred.D.String()}, nil
	case filter.Before:
		return "date < ?", []any{pred.D.String()}, nil
	case filter.After:
		return "date > ?", []any{pred.D.String()}, nil
	case filter.Between:
		return "date BETWEEN ? AND ?", []any{pred.From.String(), pred.To.String()}, nil
	case filter.Outside:
		return compileOutside(pred)
	case filter.CategoryIn:
		return compileIn("category IN", pred.Categories, "0 = 1")
	case filter.CategoryNotIn:
		return compileIn("category NOT IN", pred.Categories, "1 = 1")
	case filter.CategoryEquals:
		return "category = ?", []any{pred.Category}, nil
	case filter.NoCategory:
		return "category = ''", nil, nil
	case filter.DescriptionPrefix:
		return "instr(description, ?) = 1", []any{pred.Prefix}, nil
	case filter.And:
		return compileAnd(pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileOutside(o filter.Outside) (string, []any, error) {
	var sqlParts []string
	var params []any
	if o.Before != nil {
		sqlParts = append(sqlParts, "date < ?")
		params = append(params, o.Before.String())
	}
	if o.After != nil {
		sqlParts = append(sqlParts, "date > ?")
		params = append(params, o.After.String())
	}
	if len(sqlParts) == 0 {
		return "0 = 1", nil, nil
	}
	return "(" + strings.Join(sqlParts, " OR ") + ")", params, nil
}

// compileIn renders "column IN (?, ?)"; empty is used for an empty set.
func compileIn(op string, values []string, empty string) (string, []any, error) {
	if len(values) == 0 {
		return empty, nil, nil
	}
	params := make([]any, len(values))
	for i, v := range values {
		params[i] = v
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return op + " (" + placeholders + ")", params, nil
}

func compileAnd(and filter.And) (string, []any, error) {
	if len(and.Predicates) == 0 {
		return "1 = 1", nil, nil // Always true (vacuous truth)
	}

	var sqlParts []string
	var allParams []any
	for _, pred := range and.Predicates {
		sql, params, err := CompileWhere(pred)
		if err != nil {
			return "", nil, err
		}
		sqlParts = append(sqlParts, "("+sql+")")
		allParams = append(allParams, params...)
	}
	return strings.Join(sqlParts, " AND "), allParams, nil
}

// Select returns the exported events matching p, in original file order.
func (s *SQLite) Select(ctx context.Context, p filter.Predicate) ([]store.Row, error) {
	where, params, err := CompileWhere(p)
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}
	return s.query(ctx, where, params...)
}
