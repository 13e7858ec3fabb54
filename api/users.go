package api

import (
	"kucukaslan/userapi/domain"
	"kucukaslan/userapi/validations"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var _ UserHandler = &userHandler{nil}

type userHandler struct {
	userService domain.UserService
}

// NewUserHandler returns the /users handlers backed by userService
func NewUserHandler(userService domain.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// CreateUser handles user registration
// @Summary Create a user
// @Description Register a new user. Email addresses are unique.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body domain.CreateUserRequest true "User data"
// @Success 201 {object} domain.UserResponse "User created"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 409 {object} domain.ErrorResponse "Email already registered"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /users [post]
func (h userHandler) CreateUser(ctx *fiber.Ctx) error {
	var req domain.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return writeError(ctx, fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error()))
	}
	if err := validations.ValidateCreateUserRequest(&req); err != nil {
		return writeError(ctx, err)
	}

	resp, err := h.userService.CreateUser(ctx.Context(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// GetUser returns a single user
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.UserResponse
// @Failure 404 {object} domain.ErrorResponse "User not found"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h userHandler) GetUser(ctx *fiber.Ctx) error {
	resp, err := h.userService.GetUser(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// ListUsers returns a page of users
// @Summary List users
// @Tags Users
// @Produce json
// @Param limit query int false "Page size (1-100, default 20)"
// @Param offset query int false "Number of users to skip (default 0)"
// @Param status query string false "Filter by status (active, inactive, suspended)"
// @Success 200 {object} domain.UserListResponse
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /users [get]
func (h userHandler) ListUsers(ctx *fiber.Ctx) error {
	req := domain.ListUsersRequest{Limit: domain.DefaultListLimit}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(ctx, fiber.NewError(fiber.StatusBadRequest, "Invalid 'limit' parameter: "+err.Error()))
		}
		req.Limit = limit
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(ctx, fiber.NewError(fiber.StatusBadRequest, "Invalid 'offset' parameter: "+err.Error()))
		}
		req.Offset = offset
	}
	if status := ctx.Query("status"); status != "" {
		req.Status = &status
	}

	if err := validations.ValidateListUsersRequest(&req); err != nil {
		return writeError(ctx, err)
	}

	resp, err := h.userService.ListUsers(ctx.Context(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// UpdateUser changes a user's email and/or name
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body domain.UpdateUserRequest true "Fields to change"
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 404 {object} domain.ErrorResponse "User not found"
// @Failure 409 {object} domain.ErrorResponse "Email already registered"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /users/{id} [patch]
func (h userHandler) UpdateUser(ctx *fiber.Ctx) error {
	var req domain.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return writeError(ctx, fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error()))
	}
	if err := validations.ValidateUpdateUserRequest(&req); err != nil {
		return writeError(ctx, err)
	}

	resp, err := h.userService.UpdateUser(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// DeleteUser removes a user
// @Summary Delete a user
// @Tags Users
// @Param id path string true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} domain.ErrorResponse "User not found"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h userHandler) DeleteUser(ctx *fiber.Ctx) error {
	if err := h.userService.DeleteUser(ctx.Context(), ctx.Params("id")); err != nil {
		return writeError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
