package usecase

import (
	"context"
	"fmt"

	"analytics-query-service/internal/analytics/core/compiler"
	"analytics-query-service/internal/analytics/core/domain"
	"analytics-query-service/internal/analytics/core/ports"
	"analytics-query-service/internal/analytics/core/reshape"
)

// RequestFunnelUseCase compiles a funnel request, runs it through the
// injected executor and pivots the per-step counts into a matrix.
type RequestFunnelUseCase struct {
	executor ports.QueryExecutorPort
	compiler *compiler.Compiler
}

func NewRequestFunnelUseCase(executor ports.QueryExecutorPort, c *compiler.Compiler) *RequestFunnelUseCase {
	return &RequestFunnelUseCase{executor: executor, compiler: c}
}

func (uc *RequestFunnelUseCase) Execute(ctx context.Context, q domain.FunnelQuery) (*domain.ResultMatrix, error) {
	stmt, err := compiler.CompileFunnel(uc.compiler, q)
	if err != nil {
		return nil, err
	}

	rows, err := uc.executor.Query(ctx, stmt.SQL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExecutorFailure, err)
	}

	reshape.NormalizeLabels(rows)
	return reshape.PivotFunnel(rows, stmt.IntervalAlias, stmt.DimensionAliases, stmt.StepCount), nil
}
