package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/HectorSandate/Hilosaki/models"
)

type GormOrders struct {
	db *gorm.DB
}

func NewGormOrders(db *gorm.DB) *GormOrders {
	return &GormOrders{db: db}
}

// CreateWithItems writes the order row and every line item in one
// transaction; GORM inserts the Items association inside it, so either all
// rows land or none do.
func (r *GormOrders) CreateWithItems(ctx context.Context, o *models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *GormOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *GormOrders) ListAll(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []models.Order
	err := q.Find(&rows).Error
	return rows, err
}

func (r *GormOrders) GetStatus(ctx context.Context, id string) (models.OrderStatus, error) {
	var o models.Order
	err := r.db.WithContext(ctx).Select("status").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return o.Status, nil
}

// UpdateStatusIf is the optimistic write: the WHERE clause carries the
// expected status, so a concurrent admin who already moved the order makes
// this a zero-row update instead of a silent overwrite.
func (r *GormOrders) UpdateStatusIf(ctx context.Context, id string, expected, target models.OrderStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, expected).
		Update("status", target)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormOrders) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}

func (r *GormOrders) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *GormOrders) SumTotalByStatus(ctx context.Context, status models.OrderStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
