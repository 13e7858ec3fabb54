package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// UserStatuses lists every status a user can be in
var UserStatuses = []UserStatus{UserStatusActive, UserStatusInactive, UserStatusSuspended}

func (s UserStatus) Valid() bool {
	for _, known := range UserStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// User is a registered account
type User struct {
	ID        string
	Email     string
	Name      string
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates an active user with a fresh id
func NewUser(email, name string, now time.Time) User {
	return User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Status:    UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update returns a copy of u with the non-nil fields applied
func (u User) Update(email, name *string, now time.Time) User {
	updated := u
	if email != nil {
		updated.Email = *email
	}
	if name != nil {
		updated.Name = *name
	}
	updated.UpdatedAt = now
	return updated
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserNotFoundError struct {
	ID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}

func (e *UserNotFoundError) Unwrap() error { return ErrUserNotFound }

type UserAlreadyExistsError struct {
	Email string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user with email %s already exists", e.Email)
}

func (e *UserAlreadyExistsError) Unwrap() error { return ErrUserAlreadyExists }
