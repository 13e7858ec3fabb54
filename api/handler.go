package api

import (
	"errors"
	"kucukaslan/userapi/domain"

	"github.com/gofiber/fiber/v2"
)

type UserHandler interface {
	CreateUser(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	UpdateUser(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
}

type MetricsHandler interface {
	GetMetrics(ctx *fiber.Ctx) error
}

// errorStatus maps service and validation errors onto HTTP status codes
func errorStatus(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Internal server error: " + message
	}
	return ctx.Status(status).JSON(domain.ErrorResponse{
		Success: false,
		Message: message,
	})
}
