package compiler

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"analytics-query-service/internal/analytics/core/domain"
)

// timestampLayout renders instants the way the generated SQL embeds them:
// RFC 3339 with up to microsecond precision, trailing zeros dropped.
const timestampLayout = "2006-01-02T15:04:05.999999-07:00"

// NormalizeRange converts an inclusive calendar date range into zoned
// instants: start at 00:00:00.000000 and end at 23:59:59.999999 in tz.
func NormalizeRange(start, end civil.Date, tz string) (time.Time, time.Time, error) {
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: end %s must be on or after start %s", domain.ErrInvalidArgument, end, start)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidArgument, tz)
	}

	startTS := time.Date(start.Year, start.Month, start.Day, 0, 0, 0, 0, loc)
	endTS := time.Date(end.Year, end.Month, end.Day, 23, 59, 59, 999999000, loc)
	return startTS, endTS, nil
}

// TableSuffixCondition returns the shard pruning predicate for wildcard
// tables, restricting _TABLE_SUFFIX to the UTC calendar dates covered by
// the range. Non-sharded table identifiers get no predicate.
func TableSuffixCondition(tableID string, startTS, endTS time.Time) string {
	if len(tableID) == 0 || tableID[len(tableID)-1] != '*' {
		return ""
	}
	lo := startTS.UTC().Format("20060102")
	hi := endTS.UTC().Format("20060102")
	return fmt.Sprintf(`REGEXP_EXTRACT(_TABLE_SUFFIX, r'(\d+)$') BETWEEN '%s' AND '%s'`, lo, hi)
}

// timestampCondition bounds the microsecond-epoch event timestamp to the
// inclusive instant range.
func timestampCondition(startTS, endTS time.Time) string {
	return fmt.Sprintf(
		"TIMESTAMP_MICROS(event_timestamp) BETWEEN TIMESTAMP('%s') AND TIMESTAMP('%s')",
		startTS.Format(timestampLayout), endTS.Format(timestampLayout),
	)
}
