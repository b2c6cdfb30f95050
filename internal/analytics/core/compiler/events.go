package compiler

import (
	"fmt"
	"strings"

	"analytics-query-service/internal/analytics/core/domain"
)

// EventsStatement is a compiled event aggregation query plus the metadata
// the reshaper needs to interpret its rows.
type EventsStatement struct {
	SQL              string
	IntervalAlias    string
	DimensionAliases []string
}

// CompileEvents compiles q into a single aggregate SELECT. The output is
// deterministic: identical requests yield byte-identical SQL.
func CompileEvents(c *Compiler, q domain.EventsQuery) (*EventsStatement, error) {
	if len(q.Events) == 0 {
		return nil, fmt.Errorf("%w: events must contain at least one event name", domain.ErrInvalidArgument)
	}

	startTS, endTS, err := NormalizeRange(q.Start, q.End, c.tz)
	if err != nil {
		return nil, err
	}

	dimSelects, dimAliases, err := CompileDimensions(q.Dimensions)
	if err != nil {
		return nil, err
	}

	intervalSelect, intervalAlias, orderCol, err := BucketColumns(q.Interval, c.tz)
	if err != nil {
		return nil, err
	}

	filterPredicates, err := CompileFilters(q.Filters)
	if err != nil {
		return nil, err
	}

	selects := append([]string{
		intervalSelect,
		"event_name",
		metricExpression(q, c.userIDCol) + " AS value",
	}, dimSelects...)

	wheres := []string{"event_name IN " + FormatLiteralList(q.Events)}
	wheres = append(wheres, filterPredicates...)
	if suffix := TableSuffixCondition(c.table, startTS, endTS); suffix != "" {
		wheres = append(wheres, suffix)
	}
	wheres = append(wheres, timestampCondition(startTS, endTS))

	groups := append([]string{intervalAlias, "event_name"}, dimAliases...)

	sql := strings.Join([]string{
		"SELECT " + strings.Join(selects, ", "),
		"FROM " + c.fromClause(),
		"WHERE " + joinParenthesized(wheres),
		"GROUP BY " + strings.Join(groups, ", "),
		"ORDER BY " + orderCol + " ASC",
	}, "\n")

	return &EventsStatement{
		SQL:              sql,
		IntervalAlias:    intervalAlias,
		DimensionAliases: dimAliases,
	}, nil
}

// metricExpression picks the aggregate: the caller's formula verbatim,
// distinct users for uniques, plain row count otherwise.
func metricExpression(q domain.EventsQuery, userIDCol string) string {
	if q.Formula != "" {
		return q.Formula
	}
	if q.Measure == domain.MeasureUniques {
		return "COUNT(DISTINCT " + userIDCol + ")"
	}
	return "COUNT(*)"
}

// joinParenthesized wraps each clause in parentheses before AND-joining so
// precedence stays unambiguous however many clauses there are.
func joinParenthesized(clauses []string) string {
	wrapped := make([]string, len(clauses))
	for i, clause := range clauses {
		wrapped[i] = "(" + clause + ")"
	}
	return strings.Join(wrapped, " AND ")
}
