package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/middleware"
)

// identity is the verified caller, as attached by the authentication gate.
type identity struct {
	UserID string
	Email  string
	Role   string
}

// ctxIdentity extracts the claims injected by the Auth middleware. A missing
// subject id means the route was wired without the authentication gate; fail
// closed rather than act on an anonymous request.
func ctxIdentity(c echo.Context) (identity, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.ContextEmail).(string)
	role, _ := c.Get(middleware.ContextRole).(string)
	return identity{UserID: id, Email: email, Role: role}, nil
}
