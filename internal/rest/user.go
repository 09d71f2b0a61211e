package rest

import (
	"context"
	"courseHub/business/user"
	"courseHub/domain"
	"courseHub/pkg/logger"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	SaveUser(ctx context.Context, user *domain.User) (*uint, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	RemoveStudent(ctx context.Context, email string) (user.RemovalResult, error)
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type SaveUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
	Role  string `json:"role" validate:"omitempty,oneof=admin student"`
}

// SaveUser handles POST /user: idempotent create on first sign-in.
func (h *UserHandler) SaveUser(c echo.Context) error {
	var req SaveUserRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate user request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	insertedID, err := h.userService.SaveUser(ctx, &domain.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
		Role:  req.Role,
	})
	if err != nil {
		logger.Error("Failed to save user", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	if insertedID == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":    "user already exists",
			"insertedId": nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"insertedId": *insertedID,
	})
}

// GetAllUsers handles GET /users for the admin dashboard.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx)
	if err != nil {
		logger.Error("Failed to fetch users", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch users"})
	}

	return c.JSON(http.StatusOK, users)
}

// GetUserByEmail handles GET /user/:email, the role/profile lookup the
// frontend runs after sign-in. A missing user responds with a JSON null.
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		logger.Error("Failed to fetch user", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, found)
}

// RemoveStudent handles DELETE /student-remove/:email: three independent
// deletes whose per-operation results are echoed back.
func (h *UserHandler) RemoveStudent(c echo.Context) error {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.userService.RemoveStudent(ctx, email)
	if err != nil {
		logger.Error("Failed to remove student", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to remove student"})
	}

	return c.JSON(http.StatusOK, result)
}
