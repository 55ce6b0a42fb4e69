package handler

import "github.com/backoffice/admin-console/internal/core/domain"

// --- Request types ---

// createProductRequest deliberately has no createdBy field: the owner is
// always the verified caller.
type createProductRequest struct {
	ProductName        string `json:"productName"        validate:"required"`
	ProductDescription string `json:"productDescription"`
	ProductPrice       string `json:"productPrice"       validate:"required,numeric"`
	ProductCategory    string `json:"productCategory"    validate:"required"`
}

type editProductRequest struct {
	ProductName        *string `json:"productName"`
	ProductDescription *string `json:"productDescription"`
	ProductPrice       *string `json:"productPrice" validate:"omitempty,numeric"`
	ProductCategory    *string `json:"productCategory"`
}

// --- Response projections ---

type productResponse struct {
	ID                 string `json:"id"`
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription,omitempty"`
	ProductPrice       string `json:"productPrice"`
	ProductCategory    string `json:"productCategory"`
	CreatedBy          string `json:"createdBy"`
}

type productsListResponse struct {
	TotalProducts int64             `json:"totalProducts"`
	Products      []productResponse `json:"products"`
}

type productsCountResponse struct {
	TotalProducts int64 `json:"totalProducts"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:                 p.ID,
		ProductName:        p.Name,
		ProductDescription: p.Description,
		ProductPrice:       p.Price,
		ProductCategory:    p.Category,
		CreatedBy:          p.CreatedBy,
	}
}
