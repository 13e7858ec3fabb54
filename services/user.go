package services

import (
	"context"
	"fmt"
	"kucukaslan/userapi/domain"
	"log"
	"time"
)

var _ domain.UserService = &userService{}

type userService struct {
	users    domain.UserRepository
	activity domain.ActivityRecorder
	now      func() time.Time
}

// NewUserService returns a domain.UserService backed by the given repository.
// Every successful mutation is handed to the activity recorder.
func NewUserService(users domain.UserRepository, activity domain.ActivityRecorder) (domain.UserService, error) {
	if users == nil {
		return nil, fmt.Errorf("user repository cannot be nil")
	}
	if activity == nil {
		return nil, fmt.Errorf("activity recorder cannot be nil")
	}
	return &userService{users: users, activity: activity, now: time.Now}, nil
}

func (s *userService) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.UserResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.UserAlreadyExistsError{Email: req.Email}
	}

	now := s.now().UTC()
	user := domain.NewUser(req.Email, req.Name, now)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.record(domain.ActionUserCreated, user, now)
	return domain.NewUserResponse(user), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.UserResponse, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewUserResponse(*user), nil
}

func (s *userService) ListUsers(ctx context.Context, req *domain.ListUsersRequest) (*domain.UserListResponse, error) {
	limit, offset := req.Limit, req.Offset
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var status *domain.UserStatus
	if req.Status != nil {
		st := domain.UserStatus(*req.Status)
		status = &st
	}

	users, err := s.users.FindAll(ctx, limit, offset, status)
	if err != nil {
		return nil, err
	}
	total, err := s.users.Count(ctx, status)
	if err != nil {
		return nil, err
	}

	data := make([]domain.UserResponse, len(users))
	for i, u := range users {
		data[i] = *domain.NewUserResponse(u)
	}
	return &domain.UserListResponse{
		Data:   data,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req *domain.UpdateUserRequest) (*domain.UserResponse, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	// uniqueness only matters when the email actually changes
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &domain.UserAlreadyExistsError{Email: *req.Email}
		}
	}

	now := s.now().UTC()
	updated := user.Update(req.Email, req.Name, now)
	if err := s.users.Save(ctx, updated); err != nil {
		return nil, err
	}

	s.record(domain.ActionUserUpdated, updated, now)
	return domain.NewUserResponse(updated), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.record(domain.ActionUserDeleted, *user, s.now().UTC())
	return nil
}

func (s *userService) find(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.UserNotFoundError{ID: id}
	}
	return user, nil
}

// record is best effort: a failure is logged and the request still succeeds
func (s *userService) record(action string, user domain.User, at time.Time) {
	if err := s.activity.Record(domain.NewActivityEvent(action, user, at)); err != nil {
		log.Printf("UserService: failed to record %s for user %s: %v", action, user.ID, err)
	}
}
