package ports

import (
	"context"

	"github.com/backoffice/admin-console/internal/core/domain"
)

// ProfilePatch is the partial profile update a caller may apply to their own
// account. Nil fields are left untouched.
type ProfilePatch struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	Username    *string
}

// EditUserInput is the admin-only partial edit of any account. A non-nil
// Password is re-hashed before storage; plaintext is never persisted.
type EditUserInput struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	Username    *string
	Password    *string
}

// UserService defines account operations: the self-service ones acting on the
// bearer's own identity and the admin-only account CRUD.
type UserService interface {
	Profile(ctx context.Context, id string) (*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id, newPassword string) error
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)

	ListUsers(ctx context.Context) ([]*domain.User, int64, error)
	CreateUser(ctx context.Context, input RegisterInput) (*domain.User, error)
	EditUser(ctx context.Context, id string, input EditUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
