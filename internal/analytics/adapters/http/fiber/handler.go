package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofiber/fiber/v2"

	"analytics-query-service/internal/analytics/core/domain"
)

type RequestEventsUseCase interface {
	Execute(ctx context.Context, q domain.EventsQuery) (*domain.ResultMatrix, error)
}

type RequestFunnelUseCase interface {
	Execute(ctx context.Context, q domain.FunnelQuery) (*domain.ResultMatrix, error)
}

type QueryHandler struct {
	events RequestEventsUseCase
	funnel RequestFunnelUseCase
}

func NewQueryHandler(events RequestEventsUseCase, funnel RequestFunnelUseCase) *QueryHandler {
	return &QueryHandler{events: events, funnel: funnel}
}

// QueryEvents godoc
// @Summary Query event metrics
// @Description Compiles and runs an event aggregation, returns a time-indexed matrix
// @Tags Query
// @Accept json
// @Produce json
// @Param request body EventsQueryRequest true "Event query"
// @Success 200 {object} MatrixResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /query/events [post]
func (h *QueryHandler) QueryEvents(c *fiber.Ctx) error {
	var req EventsQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	start, end, ok := parseDates(c, req.Start, req.End)
	if !ok {
		return nil
	}

	q := domain.EventsQuery{
		Events:     req.Events,
		Start:      start,
		End:        end,
		Measure:    domain.Measure(req.Measure),
		Formula:    req.Formula,
		Filters:    toDomainFilters(req.Filters),
		Dimensions: req.Dimensions,
		Interval:   domain.Interval(req.Interval),
	}

	matrix, err := h.events.Execute(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toMatrixResponse(matrix))
}

// QueryFunnel godoc
// @Summary Query funnel conversions
// @Description Compiles and runs an N-step funnel, returns per-step distinct user counts
// @Tags Query
// @Accept json
// @Produce json
// @Param request body FunnelQueryRequest true "Funnel query"
// @Success 200 {object} MatrixResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /query/funnel [post]
func (h *QueryHandler) QueryFunnel(c *fiber.Ctx) error {
	var req FunnelQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	start, end, ok := parseDates(c, req.Start, req.End)
	if !ok {
		return nil
	}

	steps := make([]domain.FunnelStep, 0, len(req.Steps))
	for _, s := range req.Steps {
		step := domain.NewFunnelStep(s.EventName, toDomainFilters(s.Filters)...)
		step.WindowGT = time.Duration(s.WindowGTSeconds) * time.Second
		if s.WindowLTSeconds > 0 {
			step.WindowLT = time.Duration(s.WindowLTSeconds) * time.Second
		}
		steps = append(steps, step)
	}

	q := domain.FunnelQuery{
		Steps:      steps,
		Start:      start,
		End:        end,
		Dimensions: req.Dimensions,
		Interval:   domain.Interval(req.Interval),
	}

	matrix, err := h.funnel.Execute(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toMatrixResponse(matrix))
}

func parseDates(c *fiber.Ctx, startStr, endStr string) (start, end civil.Date, ok bool) {
	start, err := civil.ParseDate(startStr)
	if err != nil {
		_ = badRequest(c, "start must be a YYYY-MM-DD date")
		return civil.Date{}, civil.Date{}, false
	}
	end, err = civil.ParseDate(endStr)
	if err != nil {
		_ = badRequest(c, "end must be a YYYY-MM-DD date")
		return civil.Date{}, civil.Date{}, false
	}
	return start, end, true
}

func toDomainFilters(filters []EventFilterRequest) []domain.EventFilter {
	if len(filters) == 0 {
		return nil
	}
	out := make([]domain.EventFilter, 0, len(filters))
	for _, f := range filters {
		out = append(out, domain.EventFilter{
			Property: f.Property,
			Operator: domain.Operator(f.Operator),
			Values:   f.Values,
		})
	}
	return out
}

func toMatrixResponse(m *domain.ResultMatrix) MatrixResponse {
	columns := make([][]string, 0, len(m.Columns))
	for _, col := range m.Columns {
		columns = append(columns, []string(col))
	}
	return MatrixResponse{
		IndexName: m.IndexName,
		Index:     m.Index,
		Columns:   columns,
		Values:    m.Values,
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_argument",
		Message: msg,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrUnsupportedOperator):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_argument",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrExecutorFailure):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "executor_failure",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
