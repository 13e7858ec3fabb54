package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kucukaslan/userapi/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsers is a canned domain.UserService
type stubUsers struct {
	user    *domain.UserResponse
	list    *domain.UserListResponse
	err     error
	lastReq any
	lastID  string
}

func (s *stubUsers) CreateUser(_ context.Context, req *domain.CreateUserRequest) (*domain.UserResponse, error) {
	s.lastReq = req
	return s.user, s.err
}

func (s *stubUsers) GetUser(_ context.Context, id string) (*domain.UserResponse, error) {
	s.lastID = id
	return s.user, s.err
}

func (s *stubUsers) ListUsers(_ context.Context, req *domain.ListUsersRequest) (*domain.UserListResponse, error) {
	s.lastReq = req
	return s.list, s.err
}

func (s *stubUsers) UpdateUser(_ context.Context, id string, req *domain.UpdateUserRequest) (*domain.UserResponse, error) {
	s.lastID = id
	s.lastReq = req
	return s.user, s.err
}

func (s *stubUsers) DeleteUser(_ context.Context, id string) error {
	s.lastID = id
	return s.err
}

type stubActivity struct {
	resp    *domain.MetricResponse
	err     error
	lastReq *domain.MetricRequest
}

func (s *stubActivity) GetMetrics(_ context.Context, req *domain.MetricRequest) (*domain.MetricResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func healthy(context.Context) error { return nil }

func newTestServer(users domain.UserService, activity domain.ActivityService) *Server {
	return NewServer(ServerConfig{IdleTimeout: time.Second}, Handlers{
		Users:   NewUserHandler(users),
		Metrics: NewMetricsHandler(activity),
		Health:  NewHealthHandler(healthy, healthy, nil),
	})
}

func do(t *testing.T, srv *Server, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func sampleUser() *domain.UserResponse {
	at := time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC)
	return &domain.UserResponse{
		ID:        "u1",
		Email:     "jane@example.com",
		Name:      "Jane",
		Status:    "active",
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestCreateUserCreated(t *testing.T) {
	users := &stubUsers{user: sampleUser()}
	srv := newTestServer(users, &stubActivity{})

	resp, body := do(t, srv, http.MethodPost, "/users", `{"email":" jane@example.com ","name":"Jane"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var got domain.UserResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "jane@example.com", users.lastReq.(*domain.CreateUserRequest).Email)
}

func TestCreateUserValidationFails(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	resp, body := do(t, srv, http.MethodPost, "/users", `{"email":"not-an-email","name":"Jane"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var got domain.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.False(t, got.Success)
	assert.Equal(t, "email must be a valid email address", got.Message)
}

func TestCreateUserMalformedBody(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	resp, _ := do(t, srv, http.MethodPost, "/users", `{"email":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserConflict(t *testing.T) {
	users := &stubUsers{err: &domain.UserAlreadyExistsError{Email: "jane@example.com"}}
	srv := newTestServer(users, &stubActivity{})

	resp, body := do(t, srv, http.MethodPost, "/users", `{"email":"jane@example.com","name":"Jane"}`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "user with email jane@example.com already exists")
}

func TestGetUser(t *testing.T) {
	users := &stubUsers{user: sampleUser()}
	srv := newTestServer(users, &stubActivity{})

	resp, _ := do(t, srv, http.MethodGet, "/users/u1", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", users.lastID)
}

func TestGetUserNotFound(t *testing.T) {
	srv := newTestServer(&stubUsers{err: &domain.UserNotFoundError{ID: "nope"}}, &stubActivity{})

	resp, body := do(t, srv, http.MethodGet, "/users/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "user nope not found")
}

func TestListUsersDefaultsAndFilters(t *testing.T) {
	users := &stubUsers{list: &domain.UserListResponse{Data: []domain.UserResponse{*sampleUser()}, Total: 1, Limit: 20}}
	srv := newTestServer(users, &stubActivity{})

	resp, body := do(t, srv, http.MethodGet, "/users", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, &domain.ListUsersRequest{Limit: 20}, users.lastReq)

	var got domain.UserListResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(1), got.Total)

	resp, _ = do(t, srv, http.MethodGet, "/users?limit=5&offset=10&status=inactive", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	req := users.lastReq.(*domain.ListUsersRequest)
	assert.Equal(t, 5, req.Limit)
	assert.Equal(t, 10, req.Offset)
	assert.Equal(t, "inactive", *req.Status)
}

func TestListUsersRejectsBadPagination(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	resp, _ := do(t, srv, http.MethodGet, "/users?limit=abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/users?limit=500", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateUser(t *testing.T) {
	users := &stubUsers{user: sampleUser()}
	srv := newTestServer(users, &stubActivity{})

	resp, _ := do(t, srv, http.MethodPatch, "/users/u1", `{"name":"Jane Doe"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", users.lastID)
	req := users.lastReq.(*domain.UpdateUserRequest)
	assert.Nil(t, req.Email)
	assert.Equal(t, "Jane Doe", *req.Name)
}

func TestUpdateUserEmptyBody(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubActivity{})

	resp, _ := do(t, srv, http.MethodPatch, "/users/u1", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	users := &stubUsers{}
	srv := newTestServer(users, &stubActivity{})

	resp, _ := do(t, srv, http.MethodDelete, "/users/u1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "u1", users.lastID)
}

func TestUnexpectedErrorIsInternal(t *testing.T) {
	srv := newTestServer(&stubUsers{err: errors.New("redis: connection refused")}, &stubActivity{})

	resp, body := do(t, srv, http.MethodDelete, "/users/u1", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "Internal server error: redis: connection refused")
}
