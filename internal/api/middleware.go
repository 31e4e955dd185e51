package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

const identityContextKey = "identity"

// Identity resolves the request's cart/order owner: the user id from a valid
// bearer token, or the guest identity when no session is presented.
func Identity(users *service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			c.Set(identityContextKey, users.IdentityFromToken(token))
			return next(c)
		}
	}
}

func identityFrom(c echo.Context) string {
	if identity, ok := c.Get(identityContextKey).(string); ok {
		return identity
	}
	return "guest"
}

// RequireAdmin gates staff operations behind the shared admin secret. This
// is an exact header comparison, not an auth scheme.
func RequireAdmin(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Admin-Password") != secret {
				return c.JSON(401, map[string]string{"error": "Unauthorized: Admin access required"})
			}
			return next(c)
		}
	}
}
