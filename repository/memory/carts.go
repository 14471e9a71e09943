package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

type Carts struct {
	mu   sync.Mutex
	rows map[string]models.CartItem
}

func NewCarts() *Carts {
	return &Carts{rows: map[string]models.CartItem{}}
}

func (r *Carts) AddItem(ctx context.Context, userID, productID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.rows {
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += qty
			item.UpdatedAt = time.Now()
			r.rows[id] = item
			return nil
		}
	}
	now := time.Now()
	item := models.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.rows[item.ID] = item
	return nil
}

func (r *Carts) SetQuantity(ctx context.Context, userID, itemID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.rows[itemID]
	if !ok || item.UserID != userID {
		return repository.ErrNotFound
	}
	item.Quantity = qty
	item.UpdatedAt = time.Now()
	r.rows[itemID] = item
	return nil
}

func (r *Carts) Remove(ctx context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.rows[itemID]
	if !ok || item.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.rows, itemID)
	return nil
}

func (r *Carts) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CartItem
	for _, item := range r.rows {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *Carts) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.rows {
		if item.UserID == userID {
			delete(r.rows, id)
		}
	}
	return nil
}
