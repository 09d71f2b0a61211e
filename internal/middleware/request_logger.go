package middleware

import (
	"courseHub/pkg/logger"
	"courseHub/pkg/metrics"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id, records prometheus metrics and
// logs the outcome.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(requestIDHeader, requestID)

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			method := c.Request().Method
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			metrics.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
			metrics.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()

			logger.Info("request",
				"id", requestID,
				"method", method,
				"path", path,
				"status", status,
				"duration_ms", elapsed.Milliseconds(),
			)

			return err
		}
	}
}
