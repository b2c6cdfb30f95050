package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analytics-query-service/internal/analytics/core/domain"
	"analytics-query-service/internal/analytics/core/ports"
	"analytics-query-service/internal/analytics/core/usecase"
)

func TestRequestFunnel_Success(t *testing.T) {
	executor := &fakeExecutor{
		QueryFn: func(ctx context.Context, sql string) ([]ports.Row, error) {
			return []ports.Row{
				{"event_date": "2024-01-01", "1": int64(10), "2": int64(4)},
				{"event_date": "2024-01-02", "1": int64(8), "2": int64(3)},
			}, nil
		},
	}
	uc := usecase.NewRequestFunnelUseCase(executor, testCompiler())

	matrix, err := uc.Execute(context.Background(), domain.FunnelQuery{
		Steps: []domain.FunnelStep{
			domain.NewFunnelStep("sign_up"),
			domain.NewFunnelStep("purchase"),
		},
		Start: date(2024, 1, 1),
		End:   date(2024, 1, 2),
	})
	require.NoError(t, err)

	assert.True(t, executor.called)
	assert.Contains(t, executor.lastSQL, "WITH")
	assert.Contains(t, executor.lastSQL, "step2")

	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, matrix.Index)
	assert.Equal(t, []domain.ColumnKey{{"1"}, {"2"}}, matrix.Columns)
	assert.Equal(t, [][]float64{{10, 4}, {8, 3}}, matrix.Values)
}

func TestRequestFunnel_EmptyStepsRejectedBeforeExecution(t *testing.T) {
	executor := &fakeExecutor{}
	uc := usecase.NewRequestFunnelUseCase(executor, testCompiler())

	_, err := uc.Execute(context.Background(), domain.FunnelQuery{
		Start: date(2024, 1, 1),
		End:   date(2024, 1, 2),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.False(t, executor.called)
}

func TestRequestFunnel_ExecutorFailureSurfaced(t *testing.T) {
	executor := &fakeExecutor{
		QueryFn: func(ctx context.Context, sql string) ([]ports.Row, error) {
			return nil, errors.New("table not found")
		},
	}
	uc := usecase.NewRequestFunnelUseCase(executor, testCompiler())

	_, err := uc.Execute(context.Background(), domain.FunnelQuery{
		Steps: []domain.FunnelStep{domain.NewFunnelStep("sign_up")},
		Start: date(2024, 1, 1),
		End:   date(2024, 1, 2),
	})

	assert.ErrorIs(t, err, domain.ErrExecutorFailure)
	assert.Contains(t, err.Error(), "table not found")
}
