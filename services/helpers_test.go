package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository/memory"
)

var (
	adminCtx    = models.AuthContext{UserID: "admin-1", Role: models.RoleAdmin}
	customerCtx = models.AuthContext{UserID: "cust-1", Role: models.RoleCustomer}
)

type fixture struct {
	products *memory.Products
	carts    *memory.Carts
	orders   *memory.Orders
	counters *memory.Counters

	cart      *CartStore
	numbers   *OrderNumberGenerator
	checkout  *CheckoutCoordinator
	lifecycle *OrderLifecycleManager
	catalog   *ProductCatalogGuard
	stats     *StatsAggregator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		products: memory.NewProducts(),
		carts:    memory.NewCarts(),
		orders:   memory.NewOrders(),
		counters: memory.NewCounters(),
	}
	f.cart = NewCartStore(f.carts, f.products, nil)
	f.numbers = NewOrderNumberGenerator(f.counters)
	f.checkout = NewCheckoutCoordinator(f.carts, f.products, f.orders, f.numbers, f.cart, nil, nil)
	f.lifecycle = NewOrderLifecycleManager(f.orders, nil)
	f.catalog = NewProductCatalogGuard(f.products, memory.NewCategories())
	f.stats = NewStatsAggregator(f.orders, f.products)
	return f
}

func (f *fixture) seedProduct(t *testing.T, name string, price string, isService bool) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:     name,
		Price:    mustDecimal(t, price),
		IsActive: true,
	}
	p.IsService = isService
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *fixture) seedOrder(t *testing.T, number string, total string, status models.OrderStatus) *models.Order {
	t.Helper()
	o := &models.Order{
		OrderNumber:   number,
		UserID:        customerCtx.UserID,
		CustomerName:  "Ana",
		CustomerPhone: "555-0001",
		DeliveryType:  models.DeliveryTypePickup,
		Status:        models.OrderStatusPending,
		TotalAmount:   mustDecimal(t, total),
	}
	require.NoError(t, f.orders.CreateWithItems(context.Background(), o))
	if status != models.OrderStatusPending {
		// walk the order into the requested state through legal edges
		switch status {
		case models.OrderStatusProcessing:
			mustMove(t, f.orders, o.ID, models.OrderStatusPending, models.OrderStatusProcessing)
		case models.OrderStatusCompleted:
			mustMove(t, f.orders, o.ID, models.OrderStatusPending, models.OrderStatusProcessing)
			mustMove(t, f.orders, o.ID, models.OrderStatusProcessing, models.OrderStatusCompleted)
		case models.OrderStatusCancelled:
			mustMove(t, f.orders, o.ID, models.OrderStatusPending, models.OrderStatusCancelled)
		}
		o.Status = status
	}
	return o
}

func mustMove(t *testing.T, orders *memory.Orders, id string, from, to models.OrderStatus) {
	t.Helper()
	moved, err := orders.UpdateStatusIf(context.Background(), id, from, to)
	require.NoError(t, err)
	require.True(t, moved)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, "2025-09-01T12:00:00Z")
	require.NoError(t, err)
	return func() time.Time { return at }
}
