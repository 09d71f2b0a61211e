package rest

import (
	"context"
	"courseHub/business/checkout"
	"courseHub/pkg/logger"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CheckoutService interface {
	Pay(ctx context.Context, input checkout.CheckoutInput) (checkout.CheckoutResult, error)
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type CheckoutHandler struct {
	checkoutService CheckoutService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCheckoutHandler(checkoutService CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
		timeout:         30 * time.Second,
	}
}

type PaymentRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	TransactionID string  `json:"transactionId" validate:"required"`
	Date          string  `json:"date"`
	Price         float64 `json:"price" validate:"gte=0"`
	Status        string  `json:"status"`
	CourseIDs     []uint  `json:"courseIds" validate:"required,min=1"`
	CartIDs       []uint  `json:"cartIds"`
}

// Pay handles POST /payment: records the purchase, enrolls the courses,
// clears the cart rows and sends the confirmation email.
func (h *CheckoutHandler) Pay(c echo.Context) error {
	var req PaymentRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate payment request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var date time.Time
	if req.Date != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Date); err == nil {
			date = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.checkoutService.Pay(ctx, checkout.CheckoutInput{
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Date:          date,
		Price:         req.Price,
		Status:        req.Status,
		CourseIDs:     req.CourseIDs,
		CartIDs:       req.CartIDs,
	})
	if err != nil {
		logger.Error("Failed to process payment", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to process the payment"})
	}

	return c.JSON(http.StatusOK, result)
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent handles POST /create-payment-intent. Amounts that
// round below one cent end the request with an empty 400 and never reach
// the processor.
func (h *CheckoutHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	clientSecret, err := h.checkoutService.CreatePaymentIntent(ctx, req.Price)
	if err != nil {
		if errors.Is(err, checkout.ErrAmountTooSmall) {
			return c.NoContent(http.StatusBadRequest)
		}
		logger.Error("Failed to create payment intent", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"clientSecret": clientSecret})
}
