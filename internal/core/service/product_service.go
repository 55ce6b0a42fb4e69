package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// productsCountKey is the cache key for the dashboard product count.
const productsCountKey = "count:products"

// ProductService implements catalog item CRUD. Every operation is open to any
// authenticated account; CreatedBy records the creator but is not enforced on
// edit or delete.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.CountCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.CountCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("created_by", created.CreatedBy).Msg("product created")
	return created, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, int64, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return products, int64(len(products)), nil
}

func (s *ProductService) EditProduct(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	return s.repo.UpdateFields(ctx, id, patch)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCount(ctx)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) CountProducts(ctx context.Context) (int64, error) {
	if s.cache != nil {
		if n, ok, err := s.cache.Get(ctx, productsCountKey); err == nil && ok {
			return n, nil
		}
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, productsCountKey, n, countTTL); err != nil {
			s.logger.Warn().Err(err).Msg("product count cache set failed")
		}
	}
	return n, nil
}

func (s *ProductService) invalidateCount(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, productsCountKey); err != nil {
		s.logger.Warn().Err(err).Msg("product count cache invalidation failed")
	}
}
