package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDContextKey is where the middleware stores the authenticated user ID
const UserIDContextKey = "user_id"

// Middleware validates the Authorization bearer token and stores the
// authenticated user ID in the request context.
func Middleware(tokens *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header format must be Bearer {token}")
			}

			userID, err := tokens.UserID(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token is invalid or expired")
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user ID set by Middleware
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDContextKey).(uuid.UUID)
	return id, ok
}
