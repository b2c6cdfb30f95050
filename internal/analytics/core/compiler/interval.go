package compiler

import (
	"fmt"
	"strings"

	"analytics-query-service/internal/analytics/core/domain"
)

// intervalSpec renders one bucket granularity. Templates use {tz} and
// {alias} placeholders; Sprintf is avoided because the expressions carry
// strftime verbs.
type intervalSpec struct {
	template string
	alias    string
}

func (s intervalSpec) render(tz string) (expr, alias, orderCol string) {
	expr = strings.NewReplacer("{tz}", tz, "{alias}", s.alias).Replace(s.template)
	return expr, s.alias, s.alias
}

var intervalSpecs = map[domain.Interval]intervalSpec{
	domain.IntervalDay: {
		"FORMAT_DATE('%Y-%m-%d', DATE(TIMESTAMP_MICROS(event_timestamp), '{tz}')) AS {alias}",
		"event_date",
	},
	domain.IntervalHour: {
		"FORMAT_TIMESTAMP('%Y-%m-%d %H:00:00', " +
			"TIMESTAMP_TRUNC(TIMESTAMP_MICROS(event_timestamp), HOUR, '{tz}'), '{tz}') AS {alias}",
		"event_hour",
	},
	domain.IntervalWeek: {
		"FORMAT_DATE('%Y-%m-%d', " +
			"DATE_TRUNC(DATE(TIMESTAMP_MICROS(event_timestamp), '{tz}'), WEEK(MONDAY))) AS {alias}",
		"event_week",
	},
	domain.IntervalMonth: {
		"FORMAT_DATE('%Y-%m', " +
			"DATE_TRUNC(DATE(TIMESTAMP_MICROS(event_timestamp), '{tz}'), MONTH)) AS {alias}",
		"event_month",
	},
}

// BucketColumns returns the zoned truncation expression for interval, its
// output alias and the ORDER BY column. Alias and order column are the
// same for every granularity: the bucket is both group key and sort key.
func BucketColumns(interval domain.Interval, tz string) (expr, alias, orderCol string, err error) {
	normalized := domain.Interval(strings.ToLower(string(interval)))
	if normalized == domain.IntervalDate || normalized == "" {
		normalized = domain.IntervalDay
	}
	spec, ok := intervalSpecs[normalized]
	if !ok {
		return "", "", "", fmt.Errorf(
			"%w: interval must be one of 'hour', 'day', 'week', 'month', got %q", domain.ErrInvalidArgument, interval)
	}
	expr, alias, orderCol = spec.render(tz)
	return expr, alias, orderCol, nil
}
