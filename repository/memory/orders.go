package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

type Orders struct {
	mu      sync.Mutex
	rows    map[string]models.Order
	numbers map[string]bool

	// CreateHook, when set, runs inside CreateWithItems before anything is
	// stored; an error from it simulates a mid-transaction failure.
	CreateHook func(o *models.Order) error
}

func NewOrders() *Orders {
	return &Orders{rows: map[string]models.Order{}, numbers: map[string]bool{}}
}

func (r *Orders) CreateWithItems(ctx context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateHook != nil {
		if err := r.CreateHook(o); err != nil {
			return err
		}
	}
	if r.numbers[o.OrderNumber] {
		return repository.ErrDuplicate
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now()
	o.CreatedAt, o.UpdatedAt = now, now
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.NewString()
		}
		o.Items[i].OrderID = o.ID
		o.Items[i].CreatedAt = now
	}
	r.numbers[o.OrderNumber] = true
	r.rows[o.ID] = *o
	return nil
}

func (r *Orders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r *Orders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.rows {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortOrdersDesc(out)
	return out, nil
}

func (r *Orders) ListAll(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.rows {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	sortOrdersDesc(out)
	return out, nil
}

func (r *Orders) GetStatus(ctx context.Context, id string) (models.OrderStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.rows[id]
	if !ok {
		return "", repository.ErrNotFound
	}
	return o.Status, nil
}

func (r *Orders) UpdateStatusIf(ctx context.Context, id string, expected, target models.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.rows[id]
	if !ok || o.Status != expected {
		return false, nil
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	r.rows[id] = o
	return true, nil
}

func (r *Orders) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *Orders) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, o := range r.rows {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *Orders) SumTotalByStatus(ctx context.Context, status models.OrderStatus) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := decimal.Zero
	for _, o := range r.rows {
		if o.Status == status {
			sum = sum.Add(o.TotalAmount)
		}
	}
	return sum, nil
}

func sortOrdersDesc(rows []models.Order) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
}

type Counters struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewCounters() *Counters {
	return &Counters{counters: map[string]int64{}}
}

func (r *Counters) NextOrderSequence(ctx context.Context, dayKey string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[dayKey]++
	return r.counters[dayKey], nil
}
