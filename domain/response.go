package domain

import (
	"kucukaslan/userapi/buildinfo"
	"time"
)

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status    string                `json:"status" example:"healthy"`
	Timestamp time.Time             `json:"timestamp" example:"2025-11-22T10:00:00Z"`
	BuildInfo buildinfo.Info        `json:"buildInfo"`
	Services  ServiceHealthStatus   `json:"services"`
	Activity  *ActivityBufferStatus `json:"activity,omitempty"`
}

// ActivityBufferStatus is the depth of the activity batcher at the time of the check
type ActivityBufferStatus struct {
	Buffered int `json:"buffered" example:"12"`
	Pending  int `json:"pending" example:"3"`
}

// ServiceHealthStatus represents the health status of dependent services
type ServiceHealthStatus struct {
	ClickHouse ServiceStatus `json:"clickhouse"`
	Redis      ServiceStatus `json:"redis"`
}

// ServiceStatus represents the status of a single service
type ServiceStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:""`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID        string    `json:"id" example:"5f0c6a52-8f4e-4f1f-9a57-1b5d2c3f4e5a"`
	Email     string    `json:"email" example:"jane@example.com"`
	Name      string    `json:"name" example:"Jane Doe"`
	Status    string    `json:"status" example:"active"`
	CreatedAt time.Time `json:"created_at" example:"2025-11-22T10:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-11-22T10:00:00Z"`
}

// NewUserResponse maps a User to its public view
func NewUserResponse(u User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserListResponse is one page of users
type UserListResponse struct {
	Data   []UserResponse `json:"data"`
	Total  int64          `json:"total" example:"42"`
	Limit  int            `json:"limit" example:"20"`
	Offset int            `json:"offset" example:"0"`
}

// ErrorResponse is returned by every failing endpoint
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"user not found"`
}

// MetricResponse represents aggregated activity data
type MetricResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Metrics retrieved successfully"`
	Metrics []MetricResult `json:"metrics"`
}

type MetricResult struct {
	// The "Bucket" holds the group name (e.g., "2024-08-25 10:00:00" or "user_created")
	Bucket      string `json:"bucket"`
	TotalEvents uint64 `json:"total_events"`
	UniqueUsers uint64 `json:"unique_users"`
}
