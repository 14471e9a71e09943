package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/models"
)

func TestOverviewCountsOnlyCompletedRevenue(t *testing.T) {
	f := newFixture(t)
	f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusCompleted)
	f.seedOrder(t, "ORD-20250901-0002", "50.00", models.OrderStatusPending)
	f.seedOrder(t, "ORD-20250901-0003", "30.00", models.OrderStatusCompleted)

	stats, err := f.stats.Overview(context.Background(), adminCtx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(mustDecimal(t, "130.00")), "revenue %s", stats.TotalRevenue)
	assert.EqualValues(t, 1, stats.PendingOrders)
	assert.EqualValues(t, 2, stats.CompletedOrders)
}

func TestOverviewCountsActiveProductsOnly(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Bufanda", "10.00", false)
	hidden := f.seedProduct(t, "Gorro", "15.00", false)
	require.NoError(t, f.catalog.SetVisibility(context.Background(), adminCtx, hidden.ID, models.VisibilityDisabled))

	stats, err := f.stats.Overview(context.Background(), adminCtx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalProducts)
}

func TestOverviewReflectsLatestWrites(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "80.00", models.OrderStatusProcessing)

	before, err := f.stats.Overview(context.Background(), adminCtx)
	require.NoError(t, err)
	assert.True(t, before.TotalRevenue.IsZero())

	require.NoError(t, f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusCompleted, models.OrderStatusProcessing))

	after, err := f.stats.Overview(context.Background(), adminCtx)
	require.NoError(t, err)
	assert.True(t, after.TotalRevenue.Equal(mustDecimal(t, "80.00")))
	assert.EqualValues(t, 1, after.CompletedOrders)
}

func TestOverviewRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	_, err := f.stats.Overview(context.Background(), customerCtx)
	var perm *apperrors.PermissionError
	require.ErrorAs(t, err, &perm)
}

func TestOverviewEmptyStore(t *testing.T) {
	f := newFixture(t)
	stats, err := f.stats.Overview(context.Background(), adminCtx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Zero(t, stats.TotalProducts)
}
