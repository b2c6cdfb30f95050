package usecase

import (
	"context"
	"fmt"

	"analytics-query-service/internal/analytics/core/compiler"
	"analytics-query-service/internal/analytics/core/domain"
	"analytics-query-service/internal/analytics/core/ports"
	"analytics-query-service/internal/analytics/core/reshape"
)

// RequestEventsUseCase compiles an event aggregation request, runs it
// through the injected executor and pivots the rows into a matrix. All
// validation happens before any SQL reaches the executor.
type RequestEventsUseCase struct {
	executor ports.QueryExecutorPort
	compiler *compiler.Compiler
}

func NewRequestEventsUseCase(executor ports.QueryExecutorPort, c *compiler.Compiler) *RequestEventsUseCase {
	return &RequestEventsUseCase{executor: executor, compiler: c}
}

func (uc *RequestEventsUseCase) Execute(ctx context.Context, q domain.EventsQuery) (*domain.ResultMatrix, error) {
	if q.Measure == "" {
		q.Measure = domain.MeasureTotals
	}
	if q.Measure != domain.MeasureTotals && q.Measure != domain.MeasureUniques {
		return nil, fmt.Errorf("%w: measure must be 'totals' or 'uniques', got %q", domain.ErrInvalidArgument, q.Measure)
	}

	stmt, err := compiler.CompileEvents(uc.compiler, q)
	if err != nil {
		return nil, err
	}

	rows, err := uc.executor.Query(ctx, stmt.SQL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExecutorFailure, err)
	}

	reshape.NormalizeLabels(rows)
	return reshape.PivotEvents(rows, stmt.IntervalAlias, stmt.DimensionAliases, q.Events), nil
}
