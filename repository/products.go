package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/HectorSandate/Hilosaki/models"
)

type GormProducts struct {
	db *gorm.DB
}

func NewGormProducts(db *gorm.DB) *GormProducts {
	return &GormProducts{db: db}
}

func (r *GormProducts) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormProducts) Update(ctx context.Context, p *models.Product) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image_url":   p.ImageURL,
			"category_id": p.CategoryID,
			"is_service":  p.IsService,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProducts) GetManyByID(ctx context.Context, ids []string) (map[string]*models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]*models.Product, len(rows))
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

func (r *GormProducts) ListStorefront(ctx context.Context, isService bool) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ? AND deleted_at IS NULL AND is_service = ?", true, isService).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *GormProducts) ListAll(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).Preload("Category").Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *GormProducts) SetVisibility(ctx context.Context, id string, active bool, disabledAt *time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "deleted_at": disabledAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProducts) HardDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProducts) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ? AND deleted_at IS NULL", true).Count(&n).Error
	return n, err
}

type GormCategories struct {
	db *gorm.DB
}

func NewGormCategories(db *gorm.DB) *GormCategories {
	return &GormCategories{db: db}
}

func (r *GormCategories) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GormCategories) List(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).Order("name").Find(&rows).Error
	return rows, err
}

func (r *GormCategories) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
