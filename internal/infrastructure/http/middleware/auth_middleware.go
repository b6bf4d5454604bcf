package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/usecase/auth"
)

// Context keys set by EchoAuth.
const (
	UserContextKey   = "user"
	UserIDContextKey = "user_id"
)

// EchoAuth returns an Echo middleware that validates the bearer token
// and sets "user_id" (uuid.UUID) and "user" (*entities.User) into the
// Echo context.
func EchoAuth(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			user, err := authService.ValidateToken(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(UserContextKey, user)
			c.Set(UserIDContextKey, user.ID)

			return next(c)
		}
	}
}

// RequireRole returns an Echo middleware that rejects authenticated
// users outside the given roles. It must run after EchoAuth.
func RequireRole(roles ...entities.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*entities.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
	}
}

// extractToken reads the bearer token from the Authorization header,
// falling back to the access_token cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}
