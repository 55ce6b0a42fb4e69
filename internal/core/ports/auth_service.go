package ports

import (
	"context"

	"github.com/backoffice/admin-console/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account. Role defaults
// to "user" when empty.
type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Username    string
	Password    string
	Role        string
}

// AuthService implements self-registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token together
	// with the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
