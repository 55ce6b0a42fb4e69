package ports

import (
	"context"

	"github.com/backoffice/admin-console/internal/core/domain"
)

// CreateProductInput carries the fields needed to create a catalog item.
// CreatedBy is the verified identity of the caller, never request input.
type CreateProductInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	CreatedBy   string
}

// ProductService defines catalog item operations. All of them are open to any
// authenticated account; ownership is recorded but not enforced.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, int64, error)
	EditProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CountProducts(ctx context.Context) (int64, error)
}
