package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/metrics"
	"github.com/backoffice/admin-console/internal/api/response"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// Context keys under which the authentication gate stores the verified
// claims. Downstream handlers read identity from these instead of re-parsing
// the token.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Auth is the authentication gate: it extracts the bearer credential, has the
// token service verify it, and injects the verified claims into the request
// context. A missing or malformed header and a failed verification are
// distinct outcomes (401 vs 403) with distinct response codes.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return response.JSON(c, http.StatusUnauthorized, response.CodeAuthMissing,
					"Authorization token is missing", nil)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return response.JSON(c, http.StatusUnauthorized, response.CodeAuthMissing,
					"Authorization token is missing", nil)
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return response.JSON(c, http.StatusForbidden, response.CodeInvalidToken,
					"Invalid or expired token", nil)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
