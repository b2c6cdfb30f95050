package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analytics-query-service/internal/analytics/core/compiler"
	"analytics-query-service/internal/analytics/core/domain"
)

func TestCompileEvents_Snapshot(t *testing.T) {
	c := compiler.New("proj.dataset.events_*", "UTC", "user_id")

	stmt, err := compiler.CompileEvents(c, domain.EventsQuery{
		Events:  []string{"purchase", "login"},
		Start:   date(2024, 1, 1),
		End:     date(2024, 1, 7),
		Measure: domain.MeasureUniques,
		Formula: "SUM(event_value)",
		Filters: []domain.EventFilter{
			{Property: "event_params.currency", Operator: domain.OpIn, Values: []string{"USD", "EUR"}},
			{Property: "user_properties.tier", Operator: domain.OpEquals, Values: []string{"gold"}},
			{Property: "platform", Operator: domain.OpNotEquals, Values: []string{"ANDROID"}},
		},
		Dimensions: []string{"event_params.currency", "country", "user_properties.tier"},
		Interval:   domain.IntervalWeek,
	})
	require.NoError(t, err)

	wantSQL := "SELECT FORMAT_DATE('%Y-%m-%d', DATE_TRUNC(DATE(TIMESTAMP_MICROS(event_timestamp), 'UTC'), WEEK(MONDAY))) AS event_week, " +
		"event_name, SUM(event_value) AS value, " +
		"(SELECT props.value.string_value FROM UNNEST(event_params) props WHERE props.key = 'currency') AS currency, " +
		"geo.country AS country, " +
		"(SELECT props.value.string_value FROM UNNEST(user_properties) props WHERE props.key = 'tier') AS tier\n" +
		"FROM `proj.dataset.events_*`\n" +
		"WHERE (event_name IN ('purchase', 'login')) " +
		"AND (EXISTS (SELECT * FROM UNNEST(event_params) WHERE key = 'currency' AND value.string_value IN ('USD', 'EUR'))) " +
		"AND (EXISTS (SELECT * FROM UNNEST(user_properties) WHERE key = 'tier' AND value.string_value = 'gold')) " +
		"AND (platform != 'ANDROID') " +
		"AND (REGEXP_EXTRACT(_TABLE_SUFFIX, r'(\\d+)$') BETWEEN '20240101' AND '20240107') " +
		"AND (TIMESTAMP_MICROS(event_timestamp) BETWEEN TIMESTAMP('2024-01-01T00:00:00+00:00') AND TIMESTAMP('2024-01-07T23:59:59.999999+00:00'))\n" +
		"GROUP BY event_week, event_name, currency, country, tier\n" +
		"ORDER BY event_week ASC"

	assert.Equal(t, wantSQL, stmt.SQL)
	assert.Equal(t, "event_week", stmt.IntervalAlias)
	assert.Equal(t, []string{"currency", "country", "tier"}, stmt.DimensionAliases)
}

func TestCompileEvents_DefaultsToCountAndDay(t *testing.T) {
	c := compiler.New("proj.dataset.events", "UTC", "user_pseudo_id")

	stmt, err := compiler.CompileEvents(c, domain.EventsQuery{
		Events: []string{"sign_up"},
		Start:  date(2024, 3, 1),
		End:    date(2024, 3, 2),
	})
	require.NoError(t, err)

	wantSQL := "SELECT FORMAT_DATE('%Y-%m-%d', DATE(TIMESTAMP_MICROS(event_timestamp), 'UTC')) AS event_date, " +
		"event_name, COUNT(*) AS value\n" +
		"FROM `proj.dataset.events`\n" +
		"WHERE (event_name IN ('sign_up')) " +
		"AND (TIMESTAMP_MICROS(event_timestamp) BETWEEN TIMESTAMP('2024-03-01T00:00:00+00:00') AND TIMESTAMP('2024-03-02T23:59:59.999999+00:00'))\n" +
		"GROUP BY event_date, event_name\n" +
		"ORDER BY event_date ASC"

	assert.Equal(t, wantSQL, stmt.SQL)
}

func TestCompileEvents_UniquesMeasure(t *testing.T) {
	c := compiler.New("proj.dataset.events", "UTC", "user_pseudo_id")

	stmt, err := compiler.CompileEvents(c, domain.EventsQuery{
		Events:  []string{"sign_up"},
		Start:   date(2024, 3, 1),
		End:     date(2024, 3, 2),
		Measure: domain.MeasureUniques,
	})
	require.NoError(t, err)
	assert.Contains(t, stmt.SQL, "COUNT(DISTINCT user_pseudo_id) AS value")
}

func TestCompileEvents_Deterministic(t *testing.T) {
	c := compiler.New("proj.dataset.events_*", "Europe/Oslo", "user_pseudo_id")
	q := domain.EventsQuery{
		Events: []string{"view_item", "purchase"},
		Start:  date(2024, 5, 1),
		End:    date(2024, 5, 31),
		Filters: []domain.EventFilter{
			{Property: "event_params.currency", Operator: domain.OpIn, Values: []string{"NOK"}},
		},
		Dimensions: []string{"platform", "country"},
		Interval:   domain.IntervalMonth,
	}

	first, err := compiler.CompileEvents(c, q)
	require.NoError(t, err)
	second, err := compiler.CompileEvents(c, q)
	require.NoError(t, err)

	assert.Equal(t, first.SQL, second.SQL)
}

func TestCompileEvents_EmptyEvents(t *testing.T) {
	c := compiler.New("proj.dataset.events", "UTC", "user_pseudo_id")

	_, err := compiler.CompileEvents(c, domain.EventsQuery{
		Start: date(2024, 1, 1),
		End:   date(2024, 1, 2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCompileEvents_InvalidFilterFailsBeforeSQL(t *testing.T) {
	c := compiler.New("proj.dataset.events", "UTC", "user_pseudo_id")

	stmt, err := compiler.CompileEvents(c, domain.EventsQuery{
		Events: []string{"purchase"},
		Start:  date(2024, 1, 1),
		End:    date(2024, 1, 2),
		Filters: []domain.EventFilter{
			{Property: "platform", Operator: "BETWEEN", Values: []string{"a", "b"}},
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperator)
	assert.Nil(t, stmt)
}
