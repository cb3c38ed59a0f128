package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
)

type OrderItemInput struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrderInput struct {
	Phone           string           `json:"phone"`
	Items           []OrderItemInput `json:"items"`
	DiscountPercent float64          `json:"discount_percent"`
}

// DiscountStatus is what the storefront shows a customer before checkout.
type DiscountStatus struct {
	DiscountTier int `json:"discount_tier"`
	TotalOrders  int `json:"total_orders"`
}

// OrderService owns order placement and everything keyed by a customer's
// phone number.
type OrderService interface {
	// CreateOrder validates the input, computes the discounted total and
	// persists order, items and loyalty counters atomically. Returns the
	// new order id.
	CreateOrder(ctx context.Context, in CreateOrderInput) (uint, error)

	// CheckDiscount reports the loyalty state for a phone number. An
	// unknown phone is a valid zero state, not an error.
	CheckDiscount(ctx context.Context, phone string) (*DiscountStatus, error)

	// ListOrders returns the order history for a phone number, newest first.
	ListOrders(ctx context.Context, phone string) ([]models.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	audit     *repository.MongoRepository // nil when auditing is disabled
	logger    *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, customers repository.CustomerRepository, audit *repository.MongoRepository, logger *zap.Logger) OrderService {
	return &orderService{
		orders:    orders,
		customers: customers,
		audit:     audit,
		logger:    logger,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (uint, error) {
	if in.Phone == "" || len(in.Items) == 0 {
		return 0, ErrOrderFieldsMissing
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return 0, ErrInvalidDiscount
	}

	var total float64
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return 0, ErrInvalidQuantity
		}
		if item.Price < 0 {
			return 0, ErrInvalidPrice
		}
		total += item.Price * float64(item.Quantity)
	}
	totalWithDiscount := total * (1 - in.DiscountPercent/100)

	order := &models.Order{
		CustomerName:    models.DefaultCustomerName,
		CustomerPhone:   in.Phone,
		TotalAmount:     totalWithDiscount,
		DiscountPercent: in.DiscountPercent,
		Status:          models.OrderStatusPending,
	}
	items := make([]models.OrderItem, len(in.Items))
	for i, item := range in.Items {
		items[i] = models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	if err := s.orders.PlaceOrder(ctx, order, items); err != nil {
		s.logger.Error("Failed to place order",
			zap.String("phone", in.Phone),
			zap.Error(err))
		return 0, err
	}

	s.logger.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Int("items", len(items)))

	// Audit trail is best effort and must not delay the response.
	if s.audit != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := s.audit.RecordOrderPlaced(ctx, &repository.OrderAudit{
				OrderID:         order.ID,
				Phone:           order.CustomerPhone,
				TotalAmount:     order.TotalAmount,
				DiscountPercent: order.DiscountPercent,
				ItemCount:       len(items),
			})
			if err != nil {
				s.logger.Warn("Failed to record order audit", zap.Error(err))
			}
		}()
	}

	return order.ID, nil
}

func (s *orderService) CheckDiscount(ctx context.Context, phone string) (*DiscountStatus, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	customer, err := s.customers.GetByPhone(ctx, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &DiscountStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &DiscountStatus{
		DiscountTier: customer.DiscountTier,
		TotalOrders:  customer.TotalOrders,
	}, nil
}

func (s *orderService) ListOrders(ctx context.Context, phone string) ([]models.Order, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	return s.orders.ListByPhone(ctx, phone)
}
