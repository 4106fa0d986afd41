package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devpath/tutorial-platform/internal/core/ports"
)

// UserIDKey is the echo context key under which Auth stores the resolved
// user id (a uuid.UUID).
const UserIDKey = "user_id"

const notAuthenticatedMsg = "not authenticated"

// Auth is the session guard: it extracts the bearer token, verifies it,
// confirms the encoded user still exists, and injects the user id into the
// request context. Every failure — missing header, bad token, deleted
// user — answers with the same 401 so callers learn nothing about which
// check failed.
func Auth(tokens ports.TokenService, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticatedMsg)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticatedMsg)
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticatedMsg)
			}

			if _, err := users.FindByID(c.Request().Context(), userID); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticatedMsg)
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
