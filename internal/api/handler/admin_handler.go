package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/response"
	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// AdminHandler handles the admin-only account management endpoints. Routes
// are guarded by the role gate; the handlers themselves do not re-check.
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers returns every account with the total count.
//
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Router       /api/admin/get-all-users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, total, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]userResponse, 0, len(users))
	for _, u := range users {
		views = append(views, toUserResponse(u))
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		"Users list retrieved successfully", usersListResponse{TotalUsers: total, Users: views})
}

// CreateUser creates an account on behalf of an admin. Same validation and
// uniqueness rules as self-registration.
//
// @Summary      Create an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /api/admin/create-user [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	user, err := h.userService.CreateUser(c.Request().Context(), ports.RegisterInput{
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
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest,
				fmt.Sprintf("%s already exists", req.Email), nil)
		case errors.Is(err, domain.ErrUsernameTaken):
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest,
				fmt.Sprintf("%s already exists", req.Username), nil)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
		}
		return err
	}

	return response.JSON(c, http.StatusCreated, response.CodeSuccess,
		"User created successfully", toUserProfile(user, true))
}

// EditUser applies a partial edit to any account.
//
// @Summary      Edit an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Account identifier"
// @Param        body  body      editUserRequest  true  "Fields to update"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /api/admin/edit-user/{id} [put]
func (h *AdminHandler) EditUser(c echo.Context) error {
	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	user, err := h.userService.EditUser(c.Request().Context(), c.Param("id"), ports.EditUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest,
				"At least one field is required to update", nil)
		case errors.Is(err, domain.ErrUserNotFound):
			return response.JSON(c, http.StatusNotFound, response.CodeNotFound, "User not found", nil)
		case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrUsernameTaken):
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
		}
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		"User profile updated successfully", toUserProfile(user, false))
}

// DeleteUser hard-removes an account.
//
// @Summary      Delete an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account identifier"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.JSON(c, http.StatusNotFound, response.CodeNotFound, "User not found", nil)
		}
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess, "User deleted successfully", nil)
}
