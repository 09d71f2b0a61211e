package rest

import (
	"courseHub/business/auth"
	"courseHub/internal/middleware"
	"fmt"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	msgUnauthorized  = "Unauthorized Access"
	msgForbidden     = "Forbidden Access"
	msgInternalError = "Internal Server Error"
)

// sessionEmail returns the verified email placed by the auth middleware.
func sessionEmail(c echo.Context) string {
	if identity, ok := c.Get(middleware.ContextKeyIdentity).(auth.Identity); ok {
		return identity.Email
	}

	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	return email
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Param(name), &id); err != nil {
		return 0, err
	}

	return id, nil
}
