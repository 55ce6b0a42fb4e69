package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/metrics"
	"github.com/backoffice/admin-console/internal/api/response"
	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// AuthHandler handles the public registration and login endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest,
				fmt.Sprintf("%s already exists", req.Email), nil)
		case errors.Is(err, domain.ErrUsernameTaken):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest,
				fmt.Sprintf("%s already exists", req.Username), nil)
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return response.JSON(c, http.StatusCreated, response.CodeSuccess,
		fmt.Sprintf("%s registered successfully", user.Email), toUserProfile(user, false))
}

// Login authenticates an account and returns a bearer token valid for one hour.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      500   {object}  response.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "Invalid credentials", nil)
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		fmt.Sprintf("%s login successfully", user.Email), loginResponse{
			FullName:    user.FullName,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Username:    user.Username,
			Token:       token,
		})
}
