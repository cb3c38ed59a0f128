package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/storefront/pkg/models"
)

type ProductRepository interface {
	// List returns the newest products first, at most limit rows.
	List(ctx context.Context, limit int) ([]models.Product, error)
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context, limit int) ([]models.Product, error) {
	products := make([]models.Product, 0, limit)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
