package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"analytics-query-service/internal/analytics/core/domain"
)

// FunnelStatement is a compiled funnel query plus the metadata the
// reshaper needs to interpret its rows.
type FunnelStatement struct {
	SQL              string
	IntervalAlias    string
	DimensionAliases []string
	StepCount        int
}

// CompileFunnel compiles q into a chain of per-step CTEs left-joined on
// user identity and per-step conversion windows, aggregated into distinct
// user counts per step. A single-step funnel degenerates to counting the
// users of step 1 and carries no joins.
func CompileFunnel(c *Compiler, q domain.FunnelQuery) (*FunnelStatement, error) {
	if len(q.Steps) == 0 {
		return nil, fmt.Errorf("%w: steps must contain at least one funnel step", domain.ErrInvalidArgument)
	}
	for i, step := range q.Steps {
		if step.WindowGT < 0 {
			return nil, fmt.Errorf("%w: step %d window_gt must not be negative", domain.ErrInvalidArgument, i+1)
		}
		if step.WindowLT <= step.WindowGT {
			return nil, fmt.Errorf("%w: step %d window_lt must exceed window_gt", domain.ErrInvalidArgument, i+1)
		}
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

	// Each step admits timestamps from the request range shifted forward
	// by the running total of the intervening steps' window bounds, so a
	// later step stays reachable however long the earlier hops took.
	ctes := make([]string, 0, len(q.Steps))
	stepStart, stepEnd := startTS, endTS
	for i, step := range q.Steps {
		idx := i + 1
		if idx > 1 {
			stepStart = stepStart.Add(step.WindowGT)
			stepEnd = stepEnd.Add(step.WindowLT)
		}

		cte, err := c.funnelStepCTE(idx, step, stepStart, stepEnd, intervalSelect, dimSelects)
		if err != nil {
			return nil, err
		}
		ctes = append(ctes, cte)
	}

	joins := make([]string, 0, len(q.Steps)-1)
	for idx := 2; idx <= len(q.Steps); idx++ {
		joins = append(joins, c.funnelJoinClause(idx, q.Steps[idx-1]))
	}

	stepCols := make([]string, 0, len(q.Steps))
	for idx := 1; idx <= len(q.Steps); idx++ {
		stepCols = append(stepCols, fmt.Sprintf(
			"COUNT(DISTINCT step%d.%s) AS `%d`", idx, c.userIDCol, idx))
	}

	aliasList := strings.Join(append([]string{intervalAlias}, dimAliases...), ", ")

	lines := []string{
		"WITH",
		strings.Join(ctes, ",\n"),
		"",
		"SELECT",
		"  " + aliasList + ",",
		"  " + strings.Join(stepCols, ", "),
		"FROM step1",
	}
	lines = append(lines, joins...)
	lines = append(lines,
		"GROUP BY "+aliasList,
		"ORDER BY "+orderCol+" ASC",
	)

	return &FunnelStatement{
		SQL:              strings.Join(lines, "\n"),
		IntervalAlias:    intervalAlias,
		DimensionAliases: dimAliases,
		StepCount:        len(q.Steps),
	}, nil
}

// funnelStepCTE renders one step's common table expression. Only step 1
// carries the bucket and dimension selects; later steps contribute user
// identity and timestamp alone.
func (c *Compiler) funnelStepCTE(
	idx int,
	step domain.FunnelStep,
	stepStart, stepEnd time.Time,
	intervalSelect string,
	dimSelects []string,
) (string, error) {
	fields := []string{c.userIDCol, "event_timestamp"}
	if idx == 1 {
		fields = append(fields, intervalSelect)
		fields = append(fields, dimSelects...)
	}

	filterPredicates, err := CompileFilters(step.Filters)
	if err != nil {
		return "", err
	}

	wheres := []string{"event_name = " + FormatLiteral(step.EventName)}
	wheres = append(wheres, filterPredicates...)
	if suffix := TableSuffixCondition(c.table, stepStart, stepEnd); suffix != "" {
		wheres = append(wheres, suffix)
	}
	wheres = append(wheres, timestampCondition(stepStart, stepEnd))

	return strings.Join([]string{
		fmt.Sprintf("step%d AS (", idx),
		"  SELECT " + strings.Join(fields, ", "),
		"  FROM " + c.fromClause(),
		"  WHERE " + strings.Join(wheres, " AND "),
		")",
	}, "\n"), nil
}

// funnelJoinClause joins step idx to its predecessor on user identity and
// an elapsed time strictly inside the step's window, in microseconds. The
// window is open on both ends and measured between consecutive steps.
func (c *Compiler) funnelJoinClause(idx int, step domain.FunnelStep) string {
	gtMicros := step.WindowGT.Microseconds()
	ltMicros := step.WindowLT.Microseconds()
	elapsed := fmt.Sprintf("step%d.event_timestamp - step%d.event_timestamp", idx, idx-1)

	return strings.Join([]string{
		fmt.Sprintf("LEFT JOIN step%d", idx),
		fmt.Sprintf("       ON step%d.%s = step%d.%s", idx, c.userIDCol, idx-1, c.userIDCol),
		"      AND " + elapsed + " > " + strconv.FormatInt(gtMicros, 10),
		"      AND " + elapsed + " < " + strconv.FormatInt(ltMicros, 10),
	}, "\n")
}
