package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/response"
	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// UserHandler handles the self-service account endpoints. Password and
// profile updates always act on the bearer's own identity, never on an id
// taken from the request.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdatePassword replaces the caller's password.
//
// @Summary      Update own password
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "New password"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /api/user/update-password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	if err := h.userService.UpdatePassword(c.Request().Context(), ident.UserID, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.JSON(c, http.StatusNotFound, response.CodeNotFound, "User not found", nil)
		}
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess, "Password updated successfully", nil)
}

// UpdateProfile applies a partial update to the caller's own profile.
//
// @Summary      Update own profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /api/user/update-profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), ident.UserID, ports.ProfilePatch{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
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
		"Profile updated successfully", toUserProfile(user, false))
}

// UsersCount returns the total number of accounts.
//
// @Summary      Count accounts
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Router       /api/user/get-all-users-count [get]
func (h *UserHandler) UsersCount(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	n, err := h.userService.CountUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		"Number of users retrieved successfully", usersCountResponse{TotalUsers: n})
}

// Profile returns the public projection of the account with the given id.
//
// @Summary      Get an account profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account identifier"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/user/get-user-profile/{id} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.JSON(c, http.StatusNotFound, response.CodeNotFound, "User not found", nil)
		}
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		"User profile retrieved successfully", toUserProfile(user, true))
}
