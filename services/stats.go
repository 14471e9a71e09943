package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

type Stats struct {
	TotalOrders     int64           `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalProducts   int64           `json:"total_products"`
	PendingOrders   int64           `json:"pending_orders"`
	CompletedOrders int64           `json:"completed_orders"`
}

// StatsAggregator recomputes the dashboard numbers on every read; there is
// no cache to go stale. Revenue counts completed orders only.
type StatsAggregator struct {
	orders   repository.Orders
	products repository.Products
}

func NewStatsAggregator(orders repository.Orders, products repository.Products) *StatsAggregator {
	return &StatsAggregator{orders: orders, products: products}
}

func (s *StatsAggregator) Overview(ctx context.Context, auth models.AuthContext) (Stats, error) {
	if !auth.IsAdmin() {
		return Stats{}, &apperrors.PermissionError{Action: "view stats"}
	}
	ctx, cancel := boundCtx(ctx)
	defer cancel()

	var (
		stats Stats
		err   error
	)
	if stats.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return Stats{}, apperrors.Persistence("count orders", err)
	}
	if stats.TotalRevenue, err = s.orders.SumTotalByStatus(ctx, models.OrderStatusCompleted); err != nil {
		return Stats{}, apperrors.Persistence("sum revenue", err)
	}
	if stats.PendingOrders, err = s.orders.CountByStatus(ctx, models.OrderStatusPending); err != nil {
		return Stats{}, apperrors.Persistence("count pending orders", err)
	}
	if stats.CompletedOrders, err = s.orders.CountByStatus(ctx, models.OrderStatusCompleted); err != nil {
		return Stats{}, apperrors.Persistence("count completed orders", err)
	}
	if stats.TotalProducts, err = s.products.CountActive(ctx); err != nil {
		return Stats{}, apperrors.Persistence("count products", err)
	}
	return stats, nil
}
