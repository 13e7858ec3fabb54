package domain

import (
	"strconv"
	"time"
)

const (
	ActionUserCreated = "user_created"
	ActionUserUpdated = "user_updated"
	ActionUserDeleted = "user_deleted"
)

// ActivityEvent records a single mutation of a user
type ActivityEvent struct {
	Action     string
	UserID     string
	Email      string
	OccurredAt time.Time
}

// NewActivityEvent records action against a snapshot of user
func NewActivityEvent(action string, user User, at time.Time) ActivityEvent {
	return ActivityEvent{
		Action:     action,
		UserID:     user.ID,
		Email:      user.Email,
		OccurredAt: at,
	}
}

// UniqueKey identifies an event for deduplication: action, user and time
func (e ActivityEvent) UniqueKey() string {
	return e.Action + "|" + e.UserID + "|" + strconv.FormatInt(e.OccurredAt.UnixNano(), 10)
}
