package domain

import "context"

// UserRepository persists users. Find methods return (nil, nil) when nothing matches.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, limit, offset int, status *UserStatus) ([]User, error)
	Count(ctx context.Context, status *UserStatus) (int64, error)
	Save(ctx context.Context, user User) error
	Delete(ctx context.Context, id string) error
}

// ActivityRecorder accepts activity events for asynchronous storage
type ActivityRecorder interface {
	Record(event ActivityEvent) error
}

type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context, req *ListUsersRequest) (*UserListResponse, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type ActivityService interface {
	GetMetrics(ctx context.Context, req *MetricRequest) (*MetricResponse, error)
}
