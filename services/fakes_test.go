package services

import (
	"context"
	"errors"
	"kucukaslan/userapi/domain"
	"sort"
	"sync"
)

// memoryUsers is an in-memory domain.UserRepository
type memoryUsers struct {
	mu    sync.Mutex
	byID  map[string]domain.User
	fails error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[string]domain.User{}}
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails != nil {
		return nil, m.fails
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails != nil {
		return nil, m.fails
	}
	for _, u := range m.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) filtered(status *domain.UserStatus) []domain.User {
	users := make([]domain.User, 0, len(m.byID))
	for _, u := range m.byID {
		if status == nil || u.Status == *status {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users
}

func (m *memoryUsers) FindAll(_ context.Context, limit, offset int, status *domain.UserStatus) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := m.filtered(status)
	if offset >= len(users) {
		return []domain.User{}, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (m *memoryUsers) Count(_ context.Context, status *domain.UserStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filtered(status))), nil
}

func (m *memoryUsers) Save(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails != nil {
		return m.fails
	}
	m.byID[user.ID] = user
	return nil
}

func (m *memoryUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

// recorder captures activity events synchronously
type recorder struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
	err    error
}

func (r *recorder) Record(e domain.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

// sink forwards every saved batch to a channel
type sink struct {
	batches chan []domain.ActivityEvent
	err     error
}

func newSink() *sink {
	return &sink{batches: make(chan []domain.ActivityEvent, 16)}
}

func (s *sink) SaveActivities(_ context.Context, events []domain.ActivityEvent) error {
	if s.err != nil {
		return s.err
	}
	batch := make([]domain.ActivityEvent, len(events))
	copy(batch, events)
	s.batches <- batch
	return nil
}

// dedup is an in-memory ActivityDedup
type dedup struct {
	mu       sync.Mutex
	seen     map[string]bool
	checkErr error
}

func newDedup() *dedup {
	return &dedup{seen: map[string]bool{}}
}

func (d *dedup) AreProcessed(_ context.Context, events []domain.ActivityEvent) (map[string]bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.checkErr != nil {
		return nil, d.checkErr
	}
	out := make(map[string]bool, len(events))
	for _, e := range events {
		out[e.UniqueKey()] = d.seen[e.UniqueKey()]
	}
	return out, nil
}

func (d *dedup) MarkProcessed(_ context.Context, events []domain.ActivityEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range events {
		d.seen[e.UniqueKey()] = true
	}
	return nil
}

var errStore = errors.New("store unavailable")
