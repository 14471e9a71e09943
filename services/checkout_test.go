package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

var pickupInput = CheckoutInput{
	CustomerName:  "Ana",
	CustomerPhone: "555-0001",
	DeliveryType:  string(models.DeliveryTypePickup),
}

func TestCheckoutValidationListsEveryViolation(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.Checkout(context.Background(), customerCtx, CheckoutInput{
		DeliveryType: "drone",
	})
	var v *apperrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "customer_name")
	assert.Contains(t, v.Fields, "customer_phone")
	assert.Contains(t, v.Fields, "delivery_type")
}

func TestCheckoutDeliveryRequiresAddress(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.Checkout(context.Background(), customerCtx, CheckoutInput{
		CustomerName:  "Ana",
		CustomerPhone: "555-0001",
		DeliveryType:  string(models.DeliveryTypeDelivery),
	})
	var v *apperrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "customer_address")
	assert.Len(t, v.Fields, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.Checkout(context.Background(), customerCtx, pickupInput)
	var v *apperrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "cart")
}

func TestCheckoutVanishedProductAborts(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Bufanda", "10.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 1))
	require.NoError(t, f.products.HardDelete(context.Background(), p.ID))

	_, err := f.checkout.Checkout(context.Background(), customerCtx, pickupInput)
	var ref *apperrors.ReferentialError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, p.ID, ref.ProductID)

	// nothing committed, cart untouched
	n, err := f.orders.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	items, err := f.carts.List(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCheckoutPickupEndToEnd(t *testing.T) {
	f := newFixture(t)
	a := f.seedProduct(t, "Gorro tejido", "10.00", false)
	b := f.seedProduct(t, "Amigurumi", "20.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, a.ID, 2))
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, b.ID, 1))

	in := pickupInput
	in.CustomerAddress = "Av. Reforma 12" // ignored on pickup
	order, err := f.checkout.Checkout(context.Background(), customerCtx, in)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, customerCtx.UserID, order.UserID)
	assert.Empty(t, order.CustomerAddress)
	assert.Regexp(t, `^ORD-\d{8}-\d{4}$`, order.OrderNumber)
	assert.True(t, order.TotalAmount.Equal(mustDecimal(t, "40.00")), "total %s", order.TotalAmount)

	require.Len(t, order.Items, 2)
	byName := map[string]models.OrderItem{}
	for _, item := range order.Items {
		byName[item.ProductName] = item
	}
	assert.True(t, byName["Gorro tejido"].TotalPrice.Equal(mustDecimal(t, "20.00")))
	assert.Equal(t, 2, byName["Gorro tejido"].Quantity)
	assert.True(t, byName["Amigurumi"].TotalPrice.Equal(mustDecimal(t, "20.00")))
	assert.Equal(t, 1, byName["Amigurumi"].Quantity)

	// cart emptied after commit
	count, err := f.cart.Count(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCheckoutSnapshotSurvivesCatalogChanges(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Chal", "35.50", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 2))

	order, err := f.checkout.Checkout(context.Background(), customerCtx, pickupInput)
	require.NoError(t, err)

	p.Name = "Chal premium"
	p.Price = mustDecimal(t, "99.99")
	require.NoError(t, f.products.Update(context.Background(), p))
	require.NoError(t, f.products.HardDelete(context.Background(), p.ID))

	stored, err := f.orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Chal", stored.Items[0].ProductName)
	assert.True(t, stored.Items[0].UnitPrice.Equal(mustDecimal(t, "35.50")))
	assert.True(t, stored.TotalAmount.Equal(mustDecimal(t, "71.00")))
}

func TestCheckoutRetriesOnDuplicateNumber(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Bufanda", "10.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 1))

	collisions := 0
	f.orders.CreateHook = func(o *models.Order) error {
		if collisions == 0 {
			collisions++
			return repository.ErrDuplicate
		}
		return nil
	}

	order, err := f.checkout.Checkout(context.Background(), customerCtx, pickupInput)
	require.NoError(t, err)
	assert.Equal(t, 1, collisions)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestCheckoutGivesUpAfterRepeatedCollisions(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Bufanda", "10.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 1))

	attempts := 0
	f.orders.CreateHook = func(o *models.Order) error {
		attempts++
		return repository.ErrDuplicate
	}

	_, err := f.checkout.Checkout(context.Background(), customerCtx, pickupInput)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, orderNumberRetries, attempts)

	// cart stays intact so the customer can retry
	items, err := f.carts.List(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCheckoutFailedCommitLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Bufanda", "10.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 1))

	f.orders.CreateHook = func(o *models.Order) error {
		return errors.New("connection reset")
	}

	_, err := f.checkout.Checkout(context.Background(), customerCtx, pickupInput)
	var pe *apperrors.PersistenceError
	require.ErrorAs(t, err, &pe)

	n, err := f.orders.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	items, err := f.carts.List(context.Background(), customerCtx.UserID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

type recordingNotifier struct {
	got chan *models.Order
}

func (r *recordingNotifier) OrderCreated(o *models.Order) { r.got <- o }

func TestCheckoutNotifiesAsynchronously(t *testing.T) {
	f := newFixture(t)
	rec := &recordingNotifier{got: make(chan *models.Order, 1)}
	f.checkout = NewCheckoutCoordinator(f.carts, f.products, f.orders, f.numbers, f.cart, rec, nil)

	p := f.seedProduct(t, "Bufanda", "10.00", false)
	require.NoError(t, f.cart.AddItem(context.Background(), customerCtx.UserID, p.ID, 1))

	order, err := f.checkout.Checkout(context.Background(), customerCtx, pickupInput)
	require.NoError(t, err)

	select {
	case delivered := <-rec.got:
		assert.Equal(t, order.OrderNumber, delivered.OrderNumber)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}
