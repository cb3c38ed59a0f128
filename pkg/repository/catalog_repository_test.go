package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/pkg/models"
)

func TestProductListLimitAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		created := base.Add(time.Duration(i) * time.Minute)
		product := models.Product{
			Name:      fmt.Sprintf("iPhone %d", i),
			Category:  "phones",
			Condition: "new",
			Price:     99.90 + float64(i),
			Stock:     3,
			CreatedAt: &created,
		}
		require.NoError(t, db.Create(&product).Error)
	}

	products, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "iPhone 4", products[0].Name)
	for i := 0; i < len(products)-1; i++ {
		assert.False(t, products[i].CreatedAt.Before(*products[i+1].CreatedAt))
	}

	all, err := repo.List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestReviewListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		created := base.Add(time.Duration(i) * time.Hour)
		review := models.Review{
			CustomerName: fmt.Sprintf("Customer %d", i),
			Rating:       5,
			Comment:      "great",
			Source:       "avito",
			CreatedAt:    &created,
		}
		require.NoError(t, db.Create(&review).Error)
	}

	reviews, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "Customer 2", reviews[0].CustomerName)
}
