package database

import (
	"context"
	"errors"
	"fmt"
	"kucukaslan/userapi/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	userKeyPrefix      = "user:"
	userEmailKeyPrefix = "user_email:"
	usersIndexKey      = "users"
	usersStatusPrefix  = "users:status:"
)

var _ domain.UserRepository = UserStore{}

// UserStore keeps users in Redis. Each user is a hash; an email key maps the
// address back to the id, and sorted sets scored by creation time back listing.
type UserStore struct {
	rdb redis.Cmdable
}

// NewUserStore returns a UserStore on top of any Redis client or pipeline
func NewUserStore(rdb redis.Cmdable) UserStore {
	return UserStore{rdb: rdb}
}

func userKey(id string) string         { return userKeyPrefix + id }
func userEmailKey(email string) string { return userEmailKeyPrefix + email }

func statusIndexKey(status *domain.UserStatus) string {
	if status == nil {
		return usersIndexKey
	}
	return usersStatusPrefix + string(*status)
}

// FindByID returns nil, nil when no user has the id
func (s UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	fields, err := s.rdb.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return userFromHash(fields)
}

// FindByEmail resolves the email key to an id and loads that user
func (s UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, err := s.rdb.Get(ctx, userEmailKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	return s.FindByID(ctx, id)
}

// FindAll returns one page of users ordered by creation time, optionally limited to a status
func (s UserStore) FindAll(ctx context.Context, limit, offset int, status *domain.UserStatus) ([]domain.User, error) {
	if limit <= 0 {
		return []domain.User{}, nil
	}
	ids, err := s.rdb.ZRange(ctx, statusIndexKey(status), int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, userKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	users := make([]domain.User, 0, len(ids))
	for _, cmd := range cmds {
		fields := cmd.Val()
		// index entry outlived its hash; skip it
		if len(fields) == 0 {
			continue
		}
		u, err := userFromHash(fields)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (s UserStore) Count(ctx context.Context, status *domain.UserStatus) (int64, error) {
	n, err := s.rdb.ZCard(ctx, statusIndexKey(status)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// Save creates or replaces a user, keeping the email and status indexes in step.
// A new address is claimed with SETNX before anything is written, so two users
// can never hold the same email; a lost claim returns *domain.UserAlreadyExistsError.
func (s UserStore) Save(ctx context.Context, user domain.User) error {
	previous, err := s.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}

	claimed := false
	if previous == nil || previous.Email != user.Email {
		claimed, err = s.claimEmail(ctx, user)
		if err != nil {
			return err
		}
	}

	score := float64(user.CreatedAt.UnixMilli())
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if previous != nil {
			if previous.Email != user.Email {
				pipe.Del(ctx, userEmailKey(previous.Email))
			}
			if previous.Status != user.Status {
				pipe.ZRem(ctx, statusIndexKey(&previous.Status), user.ID)
			}
		}
		pipe.HSet(ctx, userKey(user.ID), userToHash(user))
		pipe.ZAdd(ctx, usersIndexKey, redis.Z{Score: score, Member: user.ID})
		pipe.ZAdd(ctx, statusIndexKey(&user.Status), redis.Z{Score: score, Member: user.ID})
		return nil
	})
	if err != nil {
		if claimed {
			// give the address back so a retry can claim it again
			_ = s.rdb.Del(ctx, userEmailKey(user.Email)).Err()
		}
		return fmt.Errorf("failed to save user %s: %w", user.ID, err)
	}
	return nil
}

// claimEmail reserves user.Email for user.ID. It reports whether this call
// created the reservation; an address already held by the same user is not an error.
func (s UserStore) claimEmail(ctx context.Context, user domain.User) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, userEmailKey(user.Email), user.ID, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim email: %w", err)
	}
	if ok {
		return true, nil
	}

	owner, err := s.rdb.Get(ctx, userEmailKey(user.Email)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to look up email: %w", err)
	}
	if owner == user.ID {
		return false, nil
	}
	return false, &domain.UserAlreadyExistsError{Email: user.Email}
}

// Delete removes the user and every index entry pointing at it. Unknown ids are a no-op.
func (s UserStore) Delete(ctx context.Context, id string) error {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, userKey(id), userEmailKey(existing.Email))
		pipe.ZRem(ctx, usersIndexKey, id)
		pipe.ZRem(ctx, statusIndexKey(&existing.Status), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

func userToHash(u domain.User) map[string]any {
	return map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"status":     string(u.Status),
		"created_at": u.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at": u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func userFromHash(fields map[string]string) (*domain.User, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for user %s: %w", fields["id"], err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at for user %s: %w", fields["id"], err)
	}
	return &domain.User{
		ID:        fields["id"],
		Email:     fields["email"],
		Name:      fields["name"],
		Status:    domain.UserStatus(fields["status"]),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
