package rest

import (
	"context"
	"courseHub/domain"
	"courseHub/pkg/logger"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CartService interface {
	Add(ctx context.Context, item *domain.CartItem) (*uint, error)
	List(ctx context.Context, email string) ([]domain.CartItem, error)
	Count(ctx context.Context, email string) (int64, error)
	Remove(ctx context.Context, id uint) error
}

type CartHandler struct {
	cartService CartService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type AddCartRequest struct {
	ItemID uint    `json:"itemId" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Title  string  `json:"title"`
	Image  string  `json:"image"`
	Price  float64 `json:"price" validate:"gte=0"`
}

// Add handles POST /cart. Adding a course already in any cart responds with
// a message and a null inserted id instead of an error.
func (h *CartHandler) Add(c echo.Context) error {
	var req AddCartRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate cart request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	insertedID, err := h.cartService.Add(ctx, &domain.CartItem{
		ItemID: req.ItemID,
		Email:  req.Email,
		Title:  req.Title,
		Image:  req.Image,
		Price:  req.Price,
	})
	if err != nil {
		logger.Error("Failed to add cart item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	if insertedID == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":    "Item already exists",
			"insertedId": nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"insertedId": *insertedID,
	})
}

// ListByQuery handles GET /carts?email=... (navbar dropdown).
func (h *CartHandler) ListByQuery(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.cartService.List(ctx, c.QueryParam("email"))
	if err != nil {
		logger.Error("Failed to fetch cart items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, items)
}

// Count handles GET /carts-length/:email (navbar badge).
func (h *CartHandler) Count(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.cartService.Count(ctx, c.Param("email"))
	if err != nil {
		logger.Error("Failed to count cart items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"result": count})
}

// ListOwned handles GET /carts/:email (cart page). The path email must match
// the session email; a mismatch is a 403 even with a valid session.
func (h *CartHandler) ListOwned(c echo.Context) error {
	email := c.Param("email")
	if email != sessionEmail(c) {
		return c.JSON(http.StatusForbidden, ResponseError{Message: msgForbidden})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.cartService.List(ctx, email)
	if err != nil {
		logger.Error("Failed to fetch cart items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /cart/:id.
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.Remove(ctx, id); err != nil {
		logger.Error("Failed to remove cart item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"deletedCount": 1})
}
