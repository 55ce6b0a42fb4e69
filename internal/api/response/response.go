// Package response defines the JSON envelope returned by every endpoint,
// success or failure, together with the fixed application response codes that
// accompany the HTTP status.
package response

import "github.com/labstack/echo/v4"

// Application response codes. These travel alongside the HTTP status and are
// what the dashboard switches on.
const (
	CodeSuccess      = "00"
	CodeInternal     = "02"
	CodeBadRequest   = "04"
	CodeNotFound     = "06"
	CodeInvalidToken = "08"
	// CodeAuthMissing covers both a missing bearer credential (HTTP 401) and
	// an insufficient role (HTTP 403); the two are told apart by the status.
	CodeAuthMissing = "10"
)

// Envelope is the canonical response body.
type Envelope struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	Data            any    `json:"data,omitempty"`
}

// JSON writes the envelope with the given HTTP status.
func JSON(c echo.Context, status int, code, message string, data any) error {
	return c.JSON(status, Envelope{
		ResponseCode:    code,
		ResponseMessage: message,
		Data:            data,
	})
}
