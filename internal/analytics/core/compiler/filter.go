package compiler

import (
	"fmt"
	"regexp"

	"analytics-query-service/internal/analytics/core/domain"
)

var numericValuePattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

var scalarOperators = map[domain.Operator]bool{
	domain.OpEquals:         true,
	domain.OpNotEquals:      true,
	domain.OpGreater:        true,
	domain.OpLess:           true,
	domain.OpGreaterOrEqual: true,
	domain.OpLessOrEqual:    true,
}

// CompileFilter renders a single filter as a boolean SQL predicate.
// Nested paths probe the repeated record column with an EXISTS subquery;
// flat paths compare the column directly.
func CompileFilter(f domain.EventFilter) (string, error) {
	values, err := operatorValues(f.Operator, f.Values)
	if err != nil {
		return "", err
	}

	path := ResolvePath(f.Property)
	if path.Nested() {
		return fmt.Sprintf(
			"EXISTS (SELECT * FROM UNNEST(%s) WHERE key = %s AND %s %s %s)",
			path.Prefix, FormatLiteral(path.Key), valueExpression(f.Values), f.Operator, values,
		), nil
	}

	return fmt.Sprintf("%s %s %s", f.Property, f.Operator, values), nil
}

// CompileFilters renders every filter, in order. Predicates are combined
// with AND by the statement compilers.
func CompileFilters(filters []domain.EventFilter) ([]string, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		predicate, err := CompileFilter(f)
		if err != nil {
			return nil, err
		}
		out = append(out, predicate)
	}
	return out, nil
}

// operatorValues validates value arity for op and renders the value side.
func operatorValues(op domain.Operator, values []string) (string, error) {
	switch {
	case op == domain.OpIn || op == domain.OpNotIn:
		if len(values) == 0 {
			return "", fmt.Errorf("%w: operator %s requires at least one value", domain.ErrInvalidArgument, op)
		}
		return FormatLiteralList(values), nil
	case scalarOperators[op]:
		if len(values) != 1 {
			return "", fmt.Errorf("%w: operator %s requires exactly one value, got %d", domain.ErrInvalidArgument, op, len(values))
		}
		return FormatLiteral(values[0]), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedOperator, op)
	}
}

// valueExpression picks the comparison side for nested record probes.
// When every value looks numeric the stored string is cast to NUMERIC so
// that '9' < '10' compares arithmetically, otherwise the raw string field
// is compared.
func valueExpression(values []string) string {
	for _, v := range values {
		if !numericValuePattern.MatchString(v) {
			return "value.string_value"
		}
	}
	return "CAST(value.string_value AS NUMERIC)"
}
