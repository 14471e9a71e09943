package repository

import (
	"context"

	"gorm.io/gorm"
)

type GormCounters struct {
	db *gorm.DB
}

func NewGormCounters(db *gorm.DB) *GormCounters {
	return &GormCounters{db: db}
}

// NextOrderSequence bumps the day's counter inside the database. The upsert
// is a single atomic statement, so two checkouts in the same instant get
// consecutive values, never the same one.
func (r *GormCounters) NextOrderSequence(ctx context.Context, dayKey string) (int64, error) {
	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (day_key, counter) VALUES (?, 1)
		ON CONFLICT (day_key) DO UPDATE SET counter = order_counters.counter + 1
		RETURNING counter`, dayKey).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}
