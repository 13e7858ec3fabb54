package api

import (
	"context"
	"kucukaslan/userapi/buildinfo"
	"kucukaslan/userapi/domain"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheckFunc pings a single dependency
type HealthCheckFunc func(ctx context.Context) error

// BufferStats reports how many activity events are waiting to reach ClickHouse
type BufferStats interface {
	BufferSize() int
	PendingSize() int
}

// NewHealthHandler builds the /health endpoint from one probe per dependency.
// activity may be nil, in which case the buffer section is left out.
func NewHealthHandler(clickhouse, redis HealthCheckFunc, activity BufferStats) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return healthCheck(c, clickhouse, redis, activity)
	}
}

// healthCheck handles the /health endpoint
// @Summary Health check endpoint
// @Description Check the health status of the service and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse "Service is healthy"
// @Success 503 {object} domain.HealthResponse "Service is unhealthy"
// @Router /health [get]
func healthCheck(c *fiber.Ctx, clickhouse, redis HealthCheckFunc, activity BufferStats) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	response := domain.HealthResponse{
		Timestamp: time.Now(),
		BuildInfo: buildinfo.GetInfo(),
	}

	var clickhouseHealthy, redisHealthy bool
	response.Services.ClickHouse, clickhouseHealthy = probe(ctx, clickhouse)
	response.Services.Redis, redisHealthy = probe(ctx, redis)

	if activity != nil {
		response.Activity = &domain.ActivityBufferStatus{
			Buffered: activity.BufferSize(),
			Pending:  activity.PendingSize(),
		}
	}

	if clickhouseHealthy && redisHealthy {
		response.Status = "healthy"
		return c.Status(fiber.StatusOK).JSON(response)
	}

	response.Status = "unhealthy"
	return c.Status(fiber.StatusServiceUnavailable).JSON(response)
}

func probe(ctx context.Context, check HealthCheckFunc) (domain.ServiceStatus, bool) {
	if err := check(ctx); err != nil {
		return domain.ServiceStatus{Status: "unhealthy", Message: err.Error()}, false
	}
	return domain.ServiceStatus{Status: "healthy"}, true
}
