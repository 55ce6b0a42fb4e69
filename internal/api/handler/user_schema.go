package handler

import "github.com/backoffice/admin-console/internal/core/domain"

// --- Request types ---

type registerRequest struct {
	FullName    string `json:"fullName"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Username    string `json:"username"    validate:"required"`
	Password    string `json:"password"    validate:"required,min=8"`
	Role        string `json:"role"        validate:"omitempty,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// updateProfileRequest carries a partial self-profile update. Pointer fields
// distinguish "absent" from "set to empty"; absent fields are untouched.
type updateProfileRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"       validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Username    *string `json:"username"`
}

// editUserRequest is the admin partial edit; a provided password is re-hashed
// by the service before storage.
type editUserRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"    validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Username    *string `json:"username"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
}

// --- Response projections ---
// The password hash is never part of any projection.

type userProfileResponse struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
	Role        string `json:"role,omitempty"`
}

type loginResponse struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
	Token       string `json:"token"`
}

// userResponse is the full public projection used by the admin list.
type userResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type usersListResponse struct {
	TotalUsers int64          `json:"totalUsers"`
	Users      []userResponse `json:"users"`
}

type usersCountResponse struct {
	TotalUsers int64 `json:"totalUsers"`
}

func toUserProfile(u *domain.User, withRole bool) userProfileResponse {
	p := userProfileResponse{
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Username:    u.Username,
	}
	if withRole {
		p.Role = u.Role
	}
	return p
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Username:    u.Username,
		Role:        u.Role,
	}
}
