package domain

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email,max=255" example:"jane@example.com"`
	Name  string `json:"name" validate:"required,min=1,max=100" example:"Jane Doe"`
}

// UpdateUserRequest is the body of PATCH /users/{id}; omitted fields are left unchanged
type UpdateUserRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"jane@example.com"`
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Jane Doe"`
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListUsersRequest carries pagination and filtering for GET /users
type ListUsersRequest struct {
	Limit  int     `json:"limit" example:"20"`
	Offset int     `json:"offset" example:"0"`
	Status *string `json:"status" example:"active"`
}

// MetricRequest represents a query for aggregated user activity
type MetricRequest struct {
	Action  *string `json:"action" example:"user_created"`
	From    *int64  `json:"from" example:"1732147200"`
	To      *int64  `json:"to" example:"1732233600"`
	GroupBy *string `json:"group_by" example:"day"`
}
