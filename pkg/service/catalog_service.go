package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
)

// CatalogService serves the storefront's read-only catalog: products and
// customer reviews.
type CatalogService interface {
	ListProducts(ctx context.Context, limit int) ([]models.Product, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
}

type catalogService struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
	cache    *repository.RedisRepository // nil when caching is disabled
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, reviews repository.ReviewRepository, cache *repository.RedisRepository, cacheTTL time.Duration, logger *zap.Logger) CatalogService {
	if cacheTTL <= 0 {
		cacheTTL = 45 * time.Second
	}
	return &catalogService{
		products: products,
		reviews:  reviews,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	if s.cache != nil {
		if products, err := s.cache.GetCachedProducts(ctx, limit); err == nil {
			return products, nil
		}
	}

	products, err := s.products.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	// Cache writes are best effort: a redis outage never fails a read.
	if s.cache != nil {
		if err := s.cache.CacheProducts(ctx, limit, products, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache products", zap.Error(err))
		}
	}

	return products, nil
}

func (s *catalogService) ListReviews(ctx context.Context) ([]models.Review, error) {
	if s.cache != nil {
		if reviews, err := s.cache.GetCachedReviews(ctx); err == nil {
			return reviews, nil
		}
	}

	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheReviews(ctx, reviews, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache reviews", zap.Error(err))
		}
	}

	return reviews, nil
}
