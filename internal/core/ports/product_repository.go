package ports

import (
	"context"

	"github.com/backoffice/admin-console/internal/core/domain"
)

// ProductPatch carries a partial update for a product document. Nil fields
// are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *string
	Category    *string
}

// Empty reports whether the patch carries no fields at all.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Category == nil
}

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateFields(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Product, error)
	Count(ctx context.Context) (int64, error)
}
