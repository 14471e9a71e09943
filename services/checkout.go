package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

// orderNumberRetries bounds how many fresh numbers checkout tries when a
// concurrent checkout grabbed the same one.
const orderNumberRetries = 3

// Notifier receives the committed order for the notification pipeline.
// Implementations are fire-and-forget: they log failures and return nothing.
type Notifier interface {
	OrderCreated(order *models.Order)
}

// OrderFeed pushes order events to connected admin clients.
type OrderFeed interface {
	OrderCreated(order *models.Order)
	StatusChanged(orderID string, status models.OrderStatus)
}

type nopNotifier struct{}

func (nopNotifier) OrderCreated(*models.Order) {}

type nopFeed struct{}

func (nopFeed) OrderCreated(*models.Order)               {}
func (nopFeed) StatusChanged(string, models.OrderStatus) {}

type CheckoutInput struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	DeliveryType    string `json:"delivery_type"`
	Notes           string `json:"notes"`
}

// CheckoutCoordinator converts a cart into an order. The order plus its
// items commit as one transaction; clearing the cart and notifying are
// cleanup that never un-creates a committed order.
type CheckoutCoordinator struct {
	carts    repository.Carts
	products repository.Products
	orders   repository.Orders
	numbers  *OrderNumberGenerator
	cart     *CartStore
	notifier Notifier
	feed     OrderFeed
}

func NewCheckoutCoordinator(
	carts repository.Carts,
	products repository.Products,
	orders repository.Orders,
	numbers *OrderNumberGenerator,
	cart *CartStore,
	notifier Notifier,
	feed OrderFeed,
) *CheckoutCoordinator {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if feed == nil {
		feed = nopFeed{}
	}
	return &CheckoutCoordinator{
		carts:    carts,
		products: products,
		orders:   orders,
		numbers:  numbers,
		cart:     cart,
		notifier: notifier,
		feed:     feed,
	}
}

func validateCheckout(in CheckoutInput) *apperrors.ValidationError {
	v := apperrors.NewValidationError()
	if strings.TrimSpace(in.CustomerName) == "" {
		v.Add("customer_name", "name is required")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		v.Add("customer_phone", "phone is required")
	}
	dt := models.DeliveryType(in.DeliveryType)
	if !dt.Valid() {
		v.Add("delivery_type", "must be delivery or pickup")
	}
	if dt == models.DeliveryTypeDelivery && strings.TrimSpace(in.CustomerAddress) == "" {
		v.Add("customer_address", "address is required for delivery")
	}
	return v
}

// Checkout runs the full conversion: validate, snapshot the cart, allocate a
// number, commit order+items atomically, then clear the cart (best effort)
// and hand the order to the notification pipeline (async).
func (c *CheckoutCoordinator) Checkout(ctx context.Context, auth models.AuthContext, in CheckoutInput) (*models.Order, error) {
	if v := validateCheckout(in); !v.Empty() {
		return nil, v
	}

	opCtx, cancel := boundCtx(ctx)
	defer cancel()

	items, err := c.carts.List(opCtx, auth.UserID)
	if err != nil {
		return nil, apperrors.Persistence("load cart", err)
	}
	if len(items) == 0 {
		v := apperrors.NewValidationError()
		v.Add("cart", "cart is empty")
		return nil, v
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := c.products.GetManyByID(opCtx, ids)
	if err != nil {
		return nil, apperrors.Persistence("resolve products", err)
	}

	// Snapshot price and name now; the order must not move when the catalog
	// does. A vanished product aborts the whole checkout rather than
	// silently shrinking the order.
	total := decimal.Zero
	drafts := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, &apperrors.ReferentialError{ProductID: item.ProductID}
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		drafts = append(drafts, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  lineTotal,
		})
		total = total.Add(lineTotal)
	}

	address := strings.TrimSpace(in.CustomerAddress)
	if models.DeliveryType(in.DeliveryType) == models.DeliveryTypePickup {
		address = ""
	}

	var order *models.Order
	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		number, err := c.numbers.Next(opCtx)
		if err != nil {
			return nil, err
		}
		candidate := &models.Order{
			OrderNumber:     number,
			UserID:          auth.UserID,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
			CustomerAddress: address,
			DeliveryType:    models.DeliveryType(in.DeliveryType),
			Status:          models.OrderStatusPending,
			TotalAmount:     total,
			Notes:           strings.TrimSpace(in.Notes),
			Items:           drafts,
		}
		err = c.orders.CreateWithItems(opCtx, candidate)
		if errors.Is(err, repository.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, apperrors.Persistence("create order", err)
		}
		order = candidate
		break
	}
	if order == nil {
		return nil, &apperrors.ConflictError{Resource: "order_number", Reason: "could not allocate a unique order number"}
	}

	// A stale cart line is a recoverable nuisance; an orphan order is not.
	// So the clear stays outside the transaction and its failure is logged.
	if err := c.cart.Clear(opCtx, auth.UserID); err != nil {
		log.Printf("cart clear after order %s failed: %v", order.OrderNumber, err)
	}

	go c.notifier.OrderCreated(order)
	go c.feed.OrderCreated(order)

	return order, nil
}
