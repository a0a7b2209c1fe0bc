package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type RoleStore interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin looks the authenticated user up once and rejects anyone
// without the admin role. Must run after RequireAuth.
func RequireAdmin(roles RoleStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := Email(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			admin, err := roles.IsAdmin(c.Request().Context(), email)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "cannot check role")
			}
			if !admin {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}
