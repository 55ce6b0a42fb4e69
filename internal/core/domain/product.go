package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog item owned by the account that created it.
// Price is kept as a decimal string to avoid floating-point rounding.
// CreatedBy is set exactly once, from the authenticated caller's identity,
// and is never accepted from request input.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"productName"`
	Description string    `json:"productDescription,omitempty"`
	Price       string    `json:"productPrice"`
	Category    string    `json:"productCategory"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
