package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/backoffice/admin-console/internal/api/response"
	"github.com/backoffice/admin-console/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status and response code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the standard envelope for everything, including echo's own
//     errors (bind failures, 404 from the router, method not allowed).
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = response.JSON(c, status, code, msg, nil)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, codeForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, response.CodeNotFound, "User not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, response.CodeNotFound, "Product not found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, response.CodeBadRequest, "Invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, response.CodeInvalidToken, "Invalid or expired token"
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest, response.CodeBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, response.CodeInternal, "Internal server error"
}

// codeForStatus picks the application response code matching an HTTP status
// produced outside the domain (router 404s, bind failures, and the like).
func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return response.CodeAuthMissing
	case status == http.StatusNotFound:
		return response.CodeNotFound
	case status >= 400 && status < 500:
		return response.CodeBadRequest
	default:
		return response.CodeInternal
	}
}
