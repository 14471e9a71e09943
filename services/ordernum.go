package services

import (
	"context"
	"fmt"
	"time"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/repository"
)

// OrderNumberGenerator issues the human-facing order numbers. Uniqueness
// comes from the storage-side counter, not from anything computed here, so
// any number of instances can call Next concurrently.
type OrderNumberGenerator struct {
	counters repository.Counters
	now      func() time.Time
}

func NewOrderNumberGenerator(counters repository.Counters) *OrderNumberGenerator {
	return &OrderNumberGenerator{counters: counters, now: time.Now}
}

// Next returns a fresh number like ORD-20250901-0042: date-prefixed and
// zero-padded so numbers sort in issue order.
func (g *OrderNumberGenerator) Next(ctx context.Context) (string, error) {
	ctx, cancel := boundCtx(ctx)
	defer cancel()
	day := g.now().Format("20060102")
	seq, err := g.counters.NextOrderSequence(ctx, day)
	if err != nil {
		return "", apperrors.Persistence("allocate order number", err)
	}
	return fmt.Sprintf("ORD-%s-%04d", day, seq), nil
}
