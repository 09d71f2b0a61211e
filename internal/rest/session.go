package rest

import (
	"courseHub/pkg/logger"
	"courseHub/pkg/utils"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SessionHandler mints and clears the session cookie. There is no refresh
// flow and no server-side blacklist: expiry alone ends a session.
type SessionHandler struct {
	validator  *validator.Validate
	production bool
}

func NewSessionHandler(environment string) *SessionHandler {
	return &SessionHandler{
		validator:  validator.New(),
		production: environment == "production",
	}
}

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueToken handles POST /jwt: signs a one-hour token for the given email
// and sets it as an HTTP-only cookie.
func (h *SessionHandler) IssueToken(c echo.Context) error {
	var req TokenRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate token request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	token, err := utils.GenerateJWT(req.Email)
	if err != nil {
		logger.Error("Failed to generate session token", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	c.SetCookie(h.sessionCookie(token, utils.SessionCookieMaxAge()))

	return c.JSON(http.StatusOK, map[string]interface{}{"message": true})
}

// Logout handles POST /api/logout by expiring the cookie client-side. An
// unexpired stolen token stays valid until its natural expiry.
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

func (h *SessionHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.production,
	}

	// Cross-site cookies need SameSite=None, which browsers only accept on
	// secure connections.
	if h.production {
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}

	return cookie
}
