package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
)

func setupOrderService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCustomerRepository(db),
		nil,
		zap.NewNop(),
	)
	return svc, db
}

func TestCreateOrderComputesDiscountedTotal(t *testing.T) {
	svc, db := setupOrderService(t)
	ctx := context.Background()

	orderID, err := svc.CreateOrder(ctx, CreateOrderInput{
		Phone: "+79001234567",
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 2, Price: 10.0},
			{ProductID: 2, Quantity: 1, Price: 5.5},
		},
		DiscountPercent: 10,
	})
	require.NoError(t, err)
	require.NotZero(t, orderID)

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.InDelta(t, 25.5*0.9, order.TotalAmount, 1e-9)
	assert.EqualValues(t, 10, order.DiscountPercent)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.DefaultCustomerName, order.CustomerName)
	assert.False(t, order.IsPreorder)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := setupOrderService(t)
	ctx := context.Background()
	item := OrderItemInput{ProductID: 1, Quantity: 1, Price: 10}

	cases := []struct {
		name string
		in   CreateOrderInput
		want error
	}{
		{"missing phone", CreateOrderInput{Items: []OrderItemInput{item}}, ErrOrderFieldsMissing},
		{"no items", CreateOrderInput{Phone: "+7900"}, ErrOrderFieldsMissing},
		{"zero quantity", CreateOrderInput{Phone: "+7900", Items: []OrderItemInput{{ProductID: 1, Quantity: 0, Price: 10}}}, ErrInvalidQuantity},
		{"negative price", CreateOrderInput{Phone: "+7900", Items: []OrderItemInput{{ProductID: 1, Quantity: 1, Price: -1}}}, ErrInvalidPrice},
		{"discount too high", CreateOrderInput{Phone: "+7900", Items: []OrderItemInput{item}, DiscountPercent: 150}, ErrInvalidDiscount},
		{"negative discount", CreateOrderInput{Phone: "+7900", Items: []OrderItemInput{item}, DiscountPercent: -5}, ErrInvalidDiscount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tc.in)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestCheckDiscountZeroState(t *testing.T) {
	svc, _ := setupOrderService(t)

	status, err := svc.CheckDiscount(context.Background(), "+70000000000")
	require.NoError(t, err)
	assert.Equal(t, &DiscountStatus{DiscountTier: 0, TotalOrders: 0}, status)
}

func TestCheckDiscountAfterOrders(t *testing.T) {
	svc, _ := setupOrderService(t)
	ctx := context.Background()
	phone := "+79005550000"

	for k := 1; k <= 4; k++ {
		_, err := svc.CreateOrder(ctx, CreateOrderInput{
			Phone: phone,
			Items: []OrderItemInput{{ProductID: 1, Quantity: 1, Price: 100}},
		})
		require.NoError(t, err)
	}

	status, err := svc.CheckDiscount(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, 4, status.TotalOrders)
	assert.Equal(t, 2, status.DiscountTier)
}

func TestCheckDiscountRequiresPhone(t *testing.T) {
	svc, _ := setupOrderService(t)

	_, err := svc.CheckDiscount(context.Background(), "")
	require.ErrorIs(t, err, ErrPhoneRequired)
}

func TestListOrdersRequiresPhone(t *testing.T) {
	svc, _ := setupOrderService(t)

	_, err := svc.ListOrders(context.Background(), "")
	require.ErrorIs(t, err, ErrPhoneRequired)
}
