// Package memory holds mutex-guarded in-memory implementations of the
// repository interfaces, used by service tests and local development.
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

type Products struct {
	mu   sync.Mutex
	rows map[string]models.Product
}

func NewProducts() *Products {
	return &Products{rows: map[string]models.Product{}}
}

func (r *Products) Create(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.rows[p.ID] = *p
	return nil
}

func (r *Products) Update(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Name = p.Name
	cur.Description = p.Description
	cur.Price = p.Price
	cur.ImageURL = p.ImageURL
	cur.CategoryID = p.CategoryID
	cur.IsService = p.IsService
	cur.UpdatedAt = time.Now()
	r.rows[p.ID] = cur
	return nil
}

func (r *Products) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *Products) GetManyByID(ctx context.Context, ids []string) (map[string]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*models.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.rows[id]; ok {
			cp := p
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *Products) ListStorefront(ctx context.Context, isService bool) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, p := range r.rows {
		if p.Visibility() == models.VisibilityActive && p.IsService == isService {
			out = append(out, p)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *Products) ListAll(ctx context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *Products) SetVisibility(ctx context.Context, id string, active bool, disabledAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.IsActive = active
	p.DeletedAt = disabledAt
	p.UpdatedAt = time.Now()
	r.rows[id] = p
	return nil
}

func (r *Products) HardDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *Products) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.rows {
		if p.Visibility() == models.VisibilityActive {
			n++
		}
	}
	return n, nil
}

func sortByCreatedDesc(rows []models.Product) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
}

type Categories struct {
	mu   sync.Mutex
	rows map[string]models.Category
}

func NewCategories() *Categories {
	return &Categories{rows: map[string]models.Category{}}
}

func (r *Categories) Create(ctx context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	r.rows[c.ID] = *c
	return nil
}

func (r *Categories) List(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Category, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Categories) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}
