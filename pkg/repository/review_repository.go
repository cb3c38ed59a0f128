package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/storefront/pkg/models"
)

type ReviewRepository interface {
	// List returns every review, newest first.
	List(ctx context.Context) ([]models.Review, error)
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
