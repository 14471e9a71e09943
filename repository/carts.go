package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HectorSandate/Hilosaki/models"
)

type GormCarts struct {
	db *gorm.DB
}

func NewGormCarts(db *gorm.DB) *GormCarts {
	return &GormCarts{db: db}
}

// AddItem relies on the (user_id, product_id) unique index: the insert either
// lands or turns into a single-statement increment of the existing row, so
// concurrent adds from parallel sessions all count.
func (r *GormCarts) AddItem(ctx context.Context, userID, productID string, qty int) error {
	item := models.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
}

func (r *GormCarts) SetQuantity(ctx context.Context, userID, itemID string, qty int) error {
	res := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCarts) Remove(ctx context.Context, userID, itemID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCarts) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&rows).Error
	return rows, err
}

func (r *GormCarts) Clear(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
