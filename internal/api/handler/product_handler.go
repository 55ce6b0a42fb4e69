package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/response"
	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// ProductHandler handles the catalog item endpoints, open to any
// authenticated account.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create creates a catalog item owned by the verified caller.
//
// @Summary      Create a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /api/product/create-product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.ProductName,
		Description: req.ProductDescription,
		Price:       req.ProductPrice,
		Category:    req.ProductCategory,
		CreatedBy:   ident.UserID,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, response.CodeSuccess,
		"Product successfully created", toProductResponse(product))
}

// List returns every catalog item with the total count.
//
// @Summary      List all products
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Router       /api/product/get-all-products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, total, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]productResponse, 0, len(products))
	for _, p := range products {
		views = append(views, toProductResponse(p))
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		"Product list retrieved successfully", productsListResponse{TotalProducts: total, Products: views})
}

// Edit applies a partial update to a catalog item. Ownership is not checked;
// any authenticated account may edit any item.
//
// @Summary      Edit a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Product identifier"
// @Param        body  body      editProductRequest  true  "Fields to update"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /api/product/edit-product/{id} [put]
func (h *ProductHandler) Edit(c echo.Context) error {
	var req editProductRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest, err.Error(), nil)
	}

	product, err := h.productService.EditProduct(c.Request().Context(), c.Param("id"), ports.ProductPatch{
		Name:        req.ProductName,
		Description: req.ProductDescription,
		Price:       req.ProductPrice,
		Category:    req.ProductCategory,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return response.JSON(c, http.StatusBadRequest, response.CodeBadRequest,
				"At least one field is required to update", nil)
		case errors.Is(err, domain.ErrProductNotFound):
			return response.JSON(c, http.StatusNotFound, response.CodeNotFound, "Product not found", nil)
		}
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		"Product updated successfully", toProductResponse(product))
}

// Delete hard-removes a catalog item.
//
// @Summary      Delete a product
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product identifier"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/product/delete-product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.JSON(c, http.StatusNotFound, response.CodeNotFound, "Product not found", nil)
		}
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess, "Product deleted successfully", nil)
}

// Count returns the total number of catalog items.
//
// @Summary      Count products
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Router       /api/product/get-all-products-count [get]
func (h *ProductHandler) Count(c echo.Context) error {
	n, err := h.productService.CountProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.CodeSuccess,
		"Number of products retrieved successfully", productsCountResponse{TotalProducts: n})
}
