// Package services holds the storefront core: cart mutation, checkout,
// the order lifecycle, catalog visibility, order numbering and admin stats.
// Each service takes repositories by interface and an explicit AuthContext
// where authorization matters.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/events"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

// storageTimeout bounds every storage call a service makes; a store that
// does not answer in time surfaces as PersistenceError, never as a hang.
const storageTimeout = 5 * time.Second

func boundCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storageTimeout)
}

// CartStore owns per-customer cart lines. Prices are read through to the
// live catalog for display; nothing here is authoritative for an order.
type CartStore struct {
	carts    repository.Carts
	products repository.Products
	events   events.Publisher
}

func NewCartStore(carts repository.Carts, products repository.Products, ev events.Publisher) *CartStore {
	if ev == nil {
		ev = events.NopPublisher{}
	}
	return &CartStore{carts: carts, products: products, events: ev}
}

// ResolvedCartItem is a cart line joined against the current catalog row.
// Unavailable lines (product hard-deleted) keep their quantity but carry no
// price and are excluded from totals.
type ResolvedCartItem struct {
	Item        models.CartItem `json:"item"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Available   bool            `json:"available"`
}

func (s *CartStore) AddItem(ctx context.Context, userID, productID string, qty int) error {
	v := apperrors.NewValidationError()
	if qty < 1 {
		v.Add("quantity", "must be at least 1")
	}
	if productID == "" {
		v.Add("product_id", "is required")
	}
	if !v.Empty() {
		return v
	}

	ctx, cancel := boundCtx(ctx)
	defer cancel()

	product, err := s.products.GetByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		v.Add("product_id", "product does not exist")
		return v
	}
	if err != nil {
		return apperrors.Persistence("load product", err)
	}
	if product.Visibility() != models.VisibilityActive {
		v.Add("product_id", "product is not available")
		return v
	}

	if err := s.carts.AddItem(ctx, userID, productID, qty); err != nil {
		return apperrors.Persistence("add cart item", err)
	}
	s.events.CartChanged(ctx, userID)
	return nil
}

// SetQuantity sets the line to qty exactly; anything below 1 is a removal.
func (s *CartStore) SetQuantity(ctx context.Context, userID, itemID string, qty int) error {
	if qty < 1 {
		return s.RemoveItem(ctx, userID, itemID)
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	err := s.carts.SetQuantity(ctx, userID, itemID, qty)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.Persistence("set cart quantity", err)
	}
	s.events.CartChanged(ctx, userID)
	return nil
}

func (s *CartStore) RemoveItem(ctx context.Context, userID, itemID string) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	err := s.carts.Remove(ctx, userID, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.Persistence("remove cart item", err)
	}
	s.events.CartChanged(ctx, userID)
	return nil
}

// ListItems resolves the cart against the live catalog. A customer with no
// cart simply gets an empty list.
func (s *CartStore) ListItems(ctx context.Context, userID string) ([]ResolvedCartItem, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()

	items, err := s.carts.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("list cart", err)
	}
	if len(items) == 0 {
		return []ResolvedCartItem{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.GetManyByID(ctx, ids)
	if err != nil {
		return nil, apperrors.Persistence("resolve cart products", err)
	}

	out := make([]ResolvedCartItem, 0, len(items))
	for _, item := range items {
		resolved := ResolvedCartItem{Item: item}
		if p, ok := products[item.ProductID]; ok {
			resolved.ProductName = p.Name
			resolved.UnitPrice = p.Price
			resolved.LineTotal = p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			resolved.Available = true
		}
		out = append(out, resolved)
	}
	return out, nil
}

// Total is display-only; the checkout snapshot is the authoritative amount.
func (s *CartStore) Total(ctx context.Context, userID string) (decimal.Decimal, error) {
	items, err := s.ListItems(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		if item.Available {
			total = total.Add(item.LineTotal)
		}
	}
	return total, nil
}

// Count is the badge number: the sum of quantities across the cart.
func (s *CartStore) Count(ctx context.Context, userID string) (int, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	items, err := s.carts.List(ctx, userID)
	if err != nil {
		return 0, apperrors.Persistence("count cart", err)
	}
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n, nil
}

// Clear empties the cart. The checkout coordinator calls this after a
// committed order; clearing an already-empty cart is a no-op.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	if err := s.carts.Clear(ctx, userID); err != nil {
		return apperrors.Persistence("clear cart", err)
	}
	s.events.CartChanged(ctx, userID)
	return nil
}
