package services

import (
	"context"
	"fmt"
	"kucukaslan/userapi/database"
	"kucukaslan/userapi/domain"
)

// MetricsStore runs aggregate queries over stored activity
type MetricsStore interface {
	GetMetrics(ctx context.Context, request domain.MetricRequest) ([]database.MetricResult, error)
}

var _ domain.ActivityService = &activityService{}

type activityService struct {
	store MetricsStore
}

// NewActivityService returns a domain.ActivityService reading from store
func NewActivityService(store MetricsStore) (domain.ActivityService, error) {
	if store == nil {
		return nil, fmt.Errorf("metrics store cannot be nil")
	}
	return &activityService{store: store}, nil
}

func (a *activityService) GetMetrics(ctx context.Context, req *domain.MetricRequest) (*domain.MetricResponse, error) {
	metrics, err := a.store.GetMetrics(ctx, *req)
	if err != nil {
		return &domain.MetricResponse{
			Success: false,
			Message: "Failed to retrieve metrics: " + err.Error(),
		}, err
	}

	results := make([]domain.MetricResult, len(metrics))
	for i, m := range metrics {
		results[i] = domain.MetricResult{
			Bucket:      m.Bucket,
			TotalEvents: m.TotalEvents,
			UniqueUsers: m.UniqueUsers,
		}
	}
	return &domain.MetricResponse{
		Success: true,
		Message: "Metrics retrieved successfully",
		Metrics: results,
	}, nil
}

// ShutdownBatcher flushes and stops a recorder if it buffers events
func ShutdownBatcher(recorder domain.ActivityRecorder) error {
	if b, ok := recorder.(interface{ Shutdown() error }); ok {
		return b.Shutdown()
	}
	return nil
}
