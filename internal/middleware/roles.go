package middleware

import (
	"net/http"

	"rentora/internal/common"
	"rentora/internal/models"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route to callers holding the given role. It runs after
// JWTMiddleware, which already resolved the caller into the request context.
func RequireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			caller, ok := common.GetCallerFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			if caller.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
