package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/storefront/pkg/models"
)

type CustomerRepository interface {
	// GetByPhone looks a customer up by exact phone match. Returns
	// gorm.ErrRecordNotFound when the phone has no order history.
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
