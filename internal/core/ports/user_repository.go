package ports

import (
	"context"

	"github.com/backoffice/admin-console/internal/core/domain"
)

// UserPatch carries a partial update for a user document. Nil fields are left
// untouched; the repository applies only the fields that are set, in a single
// atomic write.
type UserPatch struct {
	FullName     *string
	Email        *string
	PhoneNumber  *string
	Username     *string
	PasswordHash *string
}

// Empty reports whether the patch carries no fields at all.
func (p UserPatch) Empty() bool {
	return p.FullName == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.Username == nil && p.PasswordHash == nil
}

// UserRepository defines persistence operations for user accounts.
// Uniqueness of email and username is enforced by the store's unique indexes;
// Create and UpdateFields surface violations as domain.ErrEmailTaken or
// domain.ErrUsernameTaken.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFields(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
