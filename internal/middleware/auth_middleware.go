package middleware

import (
	"context"
	"courseHub/business/auth"
	"courseHub/domain"
	"courseHub/pkg/utils"
	"net/http"
	"time"

	jsonres "courseHub/pkg/response"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "token"

	// context keys set for downstream handlers
	ContextKeyEmail    = "email"
	ContextKeyIdentity = "identity"
)

const authorizeTimeout = 5 * time.Second

// RoleAuthorizer resolves a session email into an authorized identity, or a
// typed rejection.
type RoleAuthorizer interface {
	Authorize(ctx context.Context, email string, roles ...string) (auth.Identity, error)
}

// AuthMiddleware verifies the session cookie and stashes the caller's email.
// Missing, malformed and expired tokens are all a plain 401.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error("Unauthorized Access"))
			}

			claims, err := utils.ParseJWT(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error("Unauthorized Access"))
			}

			c.Set(ContextKeyEmail, claims.Email)

			return next(c)
		}
	}
}

// AdminOnly gates a route to admin callers. Must run after AuthMiddleware.
func AdminOnly(authorizer RoleAuthorizer) echo.MiddlewareFunc {
	return requireRoles(authorizer, domain.RoleAdmin)
}

// StudentOnly gates a route to student callers.
func StudentOnly(authorizer RoleAuthorizer) echo.MiddlewareFunc {
	return requireRoles(authorizer, domain.RoleStudent)
}

// requireRoles loads the caller's user record and checks the role set. A
// failed gate short-circuits with 401 before the handler can run; the 403
// used for ownership mismatches is the handler's own concern.
func requireRoles(authorizer RoleAuthorizer, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get(ContextKeyEmail).(string)
			if !ok || email == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error("Unauthorized Access"))
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), authorizeTimeout)
			defer cancel()

			identity, err := authorizer.Authorize(ctx, email, roles...)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error("Unauthorized Access"))
			}

			c.Set(ContextKeyIdentity, identity)

			return next(c)
		}
	}
}
