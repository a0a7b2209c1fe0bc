package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bistro-serving/internal/token"
)

const emailKey = "email"

// RequireAuth checks the bearer token and attaches the verified email to the
// request context.
func RequireAuth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			rawToken := strings.TrimPrefix(header, "Bearer ")
			email, err := tokens.Verify(rawToken)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			c.Set(emailKey, email)
			return next(c)
		}
	}
}

// Email returns the authenticated email set by RequireAuth.
func Email(c echo.Context) (string, bool) {
	email, ok := c.Get(emailKey).(string)
	return email, ok
}
