package rest

import (
	"context"
	"courseHub/business/reporting"
	"courseHub/domain"
	"courseHub/pkg/logger"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type ReportingService interface {
	StudentPaymentHistory(ctx context.Context, email string) ([]domain.PurchasedCourse, error)
	AdminOrders(ctx context.Context) ([]domain.PurchasedCourse, error)
	StudentEnrollments(ctx context.Context, email string) ([]domain.EnrolledCourse, error)
	StudentStatistic(ctx context.Context, email string) (int64, error)
	AdminDashboard(ctx context.Context) (reporting.AdminStatistics, error)
}

type ReportingHandler struct {
	reportingService ReportingService
	timeout          time.Duration
}

func NewReportingHandler(reportingService ReportingService) *ReportingHandler {
	return &ReportingHandler{
		reportingService: reportingService,
		timeout:          10 * time.Second,
	}
}

// PaymentHistory handles GET /payment-history/:email. Students may only read
// their own history; a mismatched path email is a 403.
func (h *ReportingHandler) PaymentHistory(c echo.Context) error {
	email := c.Param("email")
	if email != sessionEmail(c) {
		return c.JSON(http.StatusForbidden, ResponseError{Message: msgForbidden})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.reportingService.StudentPaymentHistory(ctx, email)
	if err != nil {
		logger.Error("Failed to fetch payment history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch payment history"})
	}

	return c.JSON(http.StatusOK, rows)
}

// Orders handles GET /orders: the admin-wide purchase list.
func (h *ReportingHandler) Orders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.reportingService.AdminOrders(ctx)
	if err != nil {
		logger.Error("Failed to fetch orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch orders"})
	}

	return c.JSON(http.StatusOK, rows)
}

// Enrollments handles GET /enrollment/:email, owner-checked like payment
// history. No enrollments yields an empty array.
func (h *ReportingHandler) Enrollments(c echo.Context) error {
	email := c.Param("email")
	if email != sessionEmail(c) {
		return c.JSON(http.StatusForbidden, ResponseError{Message: msgForbidden})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.reportingService.StudentEnrollments(ctx, email)
	if err != nil {
		logger.Error("Failed to fetch enrollments", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch enrollments"})
	}

	return c.JSON(http.StatusOK, rows)
}

// StudentStatistic handles GET /student-statistic: the caller's enrollment
// count, keyed by session email rather than a path parameter.
func (h *ReportingHandler) StudentStatistic(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.reportingService.StudentStatistic(ctx, sessionEmail(c))
	if err != nil {
		logger.Error("Failed to fetch student statistic", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"result": count})
}

// AdminStatistics handles GET /admin-statistics: dashboard counts plus the
// seven-day revenue rollup.
func (h *ReportingHandler) AdminStatistics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.reportingService.AdminDashboard(ctx)
	if err != nil {
		logger.Error("Failed to fetch admin statistics", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch statistics"})
	}

	return c.JSON(http.StatusOK, stats)
}
