package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/storefront/pkg/models"
)

type OrderRepository interface {
	// PlaceOrder writes the order, its items and the customer's loyalty
	// counters as one transaction. Either all rows land or none do.
	// On success order.ID carries the generated id.
	PlaceOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error

	// ListByPhone returns the orders for a phone number, newest first.
	// Items are not loaded.
	ListByPhone(ctx context.Context, phone string) ([]models.Order, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) PlaceOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}

		// Loyalty counters move in the same transaction as the order so
		// total_orders and discount_tier never drift from order history.
		var customer models.Customer
		err := tx.Where("phone = ?", order.CustomerPhone).First(&customer).Error
		switch {
		case err == nil:
			totalOrders := customer.TotalOrders + 1
			err := tx.Model(&customer).Updates(map[string]interface{}{
				"total_orders":  totalOrders,
				"discount_tier": models.DiscountTierFor(totalOrders),
			}).Error
			if err != nil {
				return fmt.Errorf("update customer: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			first := models.Customer{
				Phone:        order.CustomerPhone,
				Name:         order.CustomerName,
				TotalOrders:  1,
				DiscountTier: models.DiscountTierFor(1),
			}
			if err := tx.Create(&first).Error; err != nil {
				return fmt.Errorf("insert customer: %w", err)
			}
		default:
			return fmt.Errorf("lookup customer: %w", err)
		}

		return nil
	})
}

func (r *GormOrderRepository) ListByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
