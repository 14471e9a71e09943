// Package repository defines one typed interface per entity plus the GORM
// implementations backed by Postgres. Services depend on the interfaces only;
// tests use the in-memory twins under repository/memory.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HectorSandate/Hilosaki/models"
)

var (
	// ErrNotFound mirrors gorm.ErrRecordNotFound without leaking GORM.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation (order_number).
	ErrDuplicate = errors.New("duplicate key")
)

type Products interface {
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	// GetByID returns the row regardless of visibility; ErrNotFound means
	// the product was hard-deleted or never existed.
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// GetManyByID resolves a batch; missing ids are simply absent from the map.
	GetManyByID(ctx context.Context, ids []string) (map[string]*models.Product, error)
	// ListStorefront applies the storefront predicate: active and matching kind.
	ListStorefront(ctx context.Context, isService bool) ([]models.Product, error)
	// ListAll returns every surviving row, disabled ones included (admin view).
	ListAll(ctx context.Context) ([]models.Product, error)
	SetVisibility(ctx context.Context, id string, active bool, disabledAt *time.Time) error
	HardDelete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

type Categories interface {
	Create(ctx context.Context, c *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id string) error
}

type Carts interface {
	// AddItem increments the (user, product) row by qty in one statement, or
	// creates it. Never read-then-write: concurrent adds must all count.
	AddItem(ctx context.Context, userID, productID string, qty int) error
	// SetQuantity overwrites the quantity of the user's item. ErrNotFound if
	// the item does not exist or belongs to someone else.
	SetQuantity(ctx context.Context, userID, itemID string, qty int) error
	Remove(ctx context.Context, userID, itemID string) error
	List(ctx context.Context, userID string) ([]models.CartItem, error)
	Clear(ctx context.Context, userID string) error
}

type Orders interface {
	// CreateWithItems persists the order and all its items as one atomic
	// unit. ErrDuplicate reports an order_number collision.
	CreateWithItems(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	// ListAll returns orders newest first, optionally filtered by status.
	ListAll(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetStatus(ctx context.Context, id string) (models.OrderStatus, error)
	// UpdateStatusIf applies the change only when the persisted status still
	// equals expected; reports whether a row was updated.
	UpdateStatusIf(ctx context.Context, id string, expected, target models.OrderStatus) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	SumTotalByStatus(ctx context.Context, status models.OrderStatus) (decimal.Decimal, error)
}

type Counters interface {
	// NextOrderSequence atomically bumps and returns the per-day counter.
	NextOrderSequence(ctx context.Context, dayKey string) (int64, error)
}
