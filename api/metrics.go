package api

import (
	"kucukaslan/userapi/domain"
	"kucukaslan/userapi/validations"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var _ MetricsHandler = &metricsHandler{nil}

type metricsHandler struct {
	activityService domain.ActivityService
}

// NewMetricsHandler returns the /metrics handler backed by activityService
func NewMetricsHandler(activityService domain.ActivityService) MetricsHandler {
	return &metricsHandler{activityService: activityService}
}

// GetMetrics retrieves aggregated user activity
// @Summary GET aggregated user activity
// @Description Count user activity with optional filtering and grouping
// @Tags Metrics
// @Produce json
// @Param action query string false "Action filter (user_created, user_updated, user_deleted)"
// @Param from query int false "Start timestamp (Unix seconds)"
// @Param to query int false "End timestamp (Unix seconds)"
// @Param group_by query string false "Group by (hour, day, week, month, year, action)"
// @Success 200 {object} domain.MetricResponse "Metrics retrieved successfully"
// @Failure 400 {object} domain.MetricResponse "Invalid request"
// @Failure 500 {object} domain.MetricResponse "Internal server error"
// @Router /metrics [get]
func (h metricsHandler) GetMetrics(ctx *fiber.Ctx) error {
	var req domain.MetricRequest

	if action := ctx.Query("action"); action != "" {
		req.Action = &action
	}
	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := strconv.ParseInt(fromStr, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(domain.MetricResponse{
				Success: false,
				Message: "Invalid 'from' parameter: " + err.Error(),
			})
		}
		req.From = &from
	}
	if toStr := ctx.Query("to"); toStr != "" {
		to, err := strconv.ParseInt(toStr, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(domain.MetricResponse{
				Success: false,
				Message: "Invalid 'to' parameter: " + err.Error(),
			})
		}
		req.To = &to
	}
	if groupBy := ctx.Query("group_by"); groupBy != "" {
		req.GroupBy = &groupBy
	}

	if err := validations.ValidateMetricRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(domain.MetricResponse{
			Success: false,
			Message: "Validation failed: " + err.Error(),
		})
	}

	resp, err := h.activityService.GetMetrics(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(domain.MetricResponse{
			Success: false,
			Message: "Internal server error: " + err.Error(),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
