package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/response"
)

// RequireRole is the authorization gate. It trusts the claims injected by
// Auth and must only ever be chained after it; an absent role claim fails
// closed.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				return response.JSON(c, http.StatusForbidden, response.CodeAuthMissing,
					"Access denied, admin privileges required", nil)
			}
			return next(c)
		}
	}
}
