package validations

import (
	"errors"
	"strings"
	"testing"
	"time"

	"kucukaslan/userapi/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func requireBadRequest(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, message, fe.Message)
}

func TestValidateCreateUserRequest(t *testing.T) {
	req := &domain.CreateUserRequest{Email: "  jane@example.com ", Name: " Jane "}
	require.NoError(t, ValidateCreateUserRequest(req))
	assert.Equal(t, "jane@example.com", req.Email)
	assert.Equal(t, "Jane", req.Name)

	requireBadRequest(t, ValidateCreateUserRequest(&domain.CreateUserRequest{Name: "Jane"}), "email is required")
	requireBadRequest(t, ValidateCreateUserRequest(&domain.CreateUserRequest{Email: "nope", Name: "Jane"}), "email must be a valid email address")
	requireBadRequest(t, ValidateCreateUserRequest(&domain.CreateUserRequest{Email: "jane@example.com", Name: "   "}), "name is required")
	requireBadRequest(t, ValidateCreateUserRequest(&domain.CreateUserRequest{
		Email: "jane@example.com",
		Name:  strings.Repeat("x", 101),
	}), "name must be at most 100 characters")
}

func TestValidateUpdateUserRequest(t *testing.T) {
	require.NoError(t, ValidateUpdateUserRequest(&domain.UpdateUserRequest{Name: strPtr("Jane")}))

	requireBadRequest(t, ValidateUpdateUserRequest(&domain.UpdateUserRequest{}), "at least one of email or name is required")
	requireBadRequest(t, ValidateUpdateUserRequest(&domain.UpdateUserRequest{Email: strPtr(" ")}), "email cannot be empty if provided")
	requireBadRequest(t, ValidateUpdateUserRequest(&domain.UpdateUserRequest{Email: strPtr("not-an-email")}), "email must be a valid email address")
}

func TestValidateListUsersRequest(t *testing.T) {
	require.NoError(t, ValidateListUsersRequest(&domain.ListUsersRequest{Limit: 20, Status: strPtr("inactive")}))

	requireBadRequest(t, ValidateListUsersRequest(&domain.ListUsersRequest{Limit: 0}), "limit must be between 1 and 100")
	requireBadRequest(t, ValidateListUsersRequest(&domain.ListUsersRequest{Limit: 101}), "limit must be between 1 and 100")
	requireBadRequest(t, ValidateListUsersRequest(&domain.ListUsersRequest{Limit: 10, Offset: -1}), "offset cannot be negative")
	requireBadRequest(t, ValidateListUsersRequest(&domain.ListUsersRequest{Limit: 10, Status: strPtr("gone")}), "status must be one of active, inactive, suspended")
}

func TestValidateMetricRequest(t *testing.T) {
	now := time.Now().Unix()
	require.NoError(t, ValidateMetricRequest(&domain.MetricRequest{
		Action:  strPtr(domain.ActionUserCreated),
		From:    int64Ptr(now - 3600),
		To:      int64Ptr(now),
		GroupBy: strPtr("hour"),
	}))

	requireBadRequest(t, ValidateMetricRequest(&domain.MetricRequest{From: int64Ptr(-1)}), "from must be a positive integer")
	requireBadRequest(t, ValidateMetricRequest(&domain.MetricRequest{To: int64Ptr(now + 3600)}), "to cannot be in the future")
	requireBadRequest(t, ValidateMetricRequest(&domain.MetricRequest{From: int64Ptr(now), To: int64Ptr(now - 10)}), "from cannot be greater than to")
	requireBadRequest(t, ValidateMetricRequest(&domain.MetricRequest{GroupBy: strPtr("user_id")}), "group_by must be one of hour, day, week, month, year, action")
	requireBadRequest(t, ValidateMetricRequest(&domain.MetricRequest{Action: strPtr("login")}), "action must be one of user_created, user_updated, user_deleted")
}
