package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"kucukaslan/userapi/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMetrics(t *testing.T) {
	activity := &stubActivity{resp: &domain.MetricResponse{
		Success: true,
		Message: "Metrics retrieved successfully",
		Metrics: []domain.MetricResult{{Bucket: "user_created", TotalEvents: 3, UniqueUsers: 2}},
	}}
	srv := newTestServer(&stubUsers{}, activity)

	from := time.Now().Add(-time.Hour).Unix()
	resp, body := do(t, srv, http.MethodGet, "/metrics?group_by=action&from="+strconv.FormatInt(from, 10), "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got domain.MetricResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, uint64(3), got.Metrics[0].TotalEvents)
	assert.Equal(t, "action", *activity.lastReq.GroupBy)
	assert.Equal(t, from, *activity.lastReq.From)
}

func TestGetMetricsRejectsBadInput(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	resp, _ := do(t, srv, http.MethodGet, "/metrics?from=yesterday", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, srv, http.MethodGet, "/metrics?group_by=email", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "Validation failed: group_by must be one of")
}

func TestGetMetricsStoreError(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{err: errors.New("clickhouse down")})

	resp, _ := do(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	resp, body := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got domain.HealthResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "healthy", got.Services.Redis.Status)
}

func TestHealthUnhealthyDependency(t *testing.T) {
	srv := NewServer(ServerConfig{}, Handlers{
		Users:   NewUserHandler(&stubUsers{}),
		Metrics: NewMetricsHandler(&stubActivity{}),
		Health: NewHealthHandler(healthy, func(context.Context) error {
			return errors.New("Redis connection is not initialized")
		}, nil),
	})

	resp, body := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var got domain.HealthResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "unhealthy", got.Status)
	assert.Equal(t, "healthy", got.Services.ClickHouse.Status)
	assert.Equal(t, "Redis connection is not initialized", got.Services.Redis.Message)
}

type bufferStats struct{ buffered, pending int }

func (b bufferStats) BufferSize() int  { return b.buffered }
func (b bufferStats) PendingSize() int { return b.pending }

func TestHealthReportsActivityBuffer(t *testing.T) {
	srv := NewServer(ServerConfig{}, Handlers{
		Users:   NewUserHandler(&stubUsers{}),
		Metrics: NewMetricsHandler(&stubActivity{}),
		Health:  NewHealthHandler(healthy, healthy, bufferStats{buffered: 12, pending: 3}),
	})

	resp, body := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got domain.HealthResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.NotNil(t, got.Activity)
	assert.Equal(t, domain.ActivityBufferStatus{Buffered: 12, Pending: 3}, *got.Activity)
}

func TestHealthOmitsActivityWithoutBatcher(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	_, body := do(t, srv, http.MethodGet, "/health", "")
	assert.NotContains(t, string(body), `"activity"`)
}

func TestRootRedirectsToSwagger(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	resp, _ := do(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, fiber.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/swagger/", resp.Header.Get(fiber.HeaderLocation))
}
