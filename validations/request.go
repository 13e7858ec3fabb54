package validations

import (
	"errors"
	"fmt"
	"kucukaslan/userapi/domain"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// structError converts the first validator failure into a 400 fiber error
func structError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fiber.NewError(fiber.StatusBadRequest, fe.Field()+" is required")
	case "email":
		return fiber.NewError(fiber.StatusBadRequest, fe.Field()+" must be a valid email address")
	case "min":
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
	case "max":
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return fiber.NewError(fiber.StatusBadRequest, fe.Field()+" is invalid")
	}
}

func ValidateCreateUserRequest(request *domain.CreateUserRequest) error {
	if request == nil {
		return fiber.NewError(fiber.StatusBadRequest, "request body is required")
	}
	request.Email = strings.TrimSpace(request.Email)
	request.Name = strings.TrimSpace(request.Name)
	if err := validate.Struct(request); err != nil {
		return structError(err)
	}
	return nil
}

func ValidateUpdateUserRequest(request *domain.UpdateUserRequest) error {
	if request == nil {
		return fiber.NewError(fiber.StatusBadRequest, "request body is required")
	}
	if request.Email == nil && request.Name == nil {
		return fiber.NewError(fiber.StatusBadRequest, "at least one of email or name is required")
	}
	if request.Email != nil {
		email := strings.TrimSpace(*request.Email)
		if email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email cannot be empty if provided")
		}
		request.Email = &email
	}
	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty if provided")
		}
		request.Name = &name
	}
	if err := validate.Struct(request); err != nil {
		return structError(err)
	}
	return nil
}

func ValidateListUsersRequest(request *domain.ListUsersRequest) error {
	if request.Limit < 1 || request.Limit > domain.MaxListLimit {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", domain.MaxListLimit))
	}
	if request.Offset < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "offset cannot be negative")
	}
	if request.Status != nil && !domain.UserStatus(*request.Status).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "status must be one of active, inactive, suspended")
	}
	return nil
}

var (
	metricGroups  = map[string]bool{"hour": true, "day": true, "week": true, "month": true, "year": true, "action": true}
	metricActions = map[string]bool{domain.ActionUserCreated: true, domain.ActionUserUpdated: true, domain.ActionUserDeleted: true}
)

func ValidateMetricRequest(request *domain.MetricRequest) error {
	now := time.Now().UTC().Unix()
	if request.From != nil {
		if *request.From <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "from must be a positive integer")
		}
		if *request.From > now {
			return fiber.NewError(fiber.StatusBadRequest, "from cannot be in the future")
		}
	}
	if request.To != nil {
		if *request.To <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "to must be a positive integer")
		}
		if *request.To > now {
			return fiber.NewError(fiber.StatusBadRequest, "to cannot be in the future")
		}
	}
	if request.From != nil && request.To != nil && *request.From > *request.To {
		return fiber.NewError(fiber.StatusBadRequest, "from cannot be greater than to")
	}
	if request.GroupBy != nil && !metricGroups[*request.GroupBy] {
		return fiber.NewError(fiber.StatusBadRequest, "group_by must be one of hour, day, week, month, year, action")
	}
	if request.Action != nil && !metricActions[*request.Action] {
		return fiber.NewError(fiber.StatusBadRequest, "action must be one of user_created, user_updated, user_deleted")
	}
	return nil
}
