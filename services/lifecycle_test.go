package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		ok       bool
	}{
		{models.OrderStatusPending, models.OrderStatusProcessing, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusProcessing, models.OrderStatusCompleted, true},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusCompleted, false},
		{models.OrderStatusCompleted, models.OrderStatusProcessing, false},
		{models.OrderStatusCompleted, models.OrderStatusCancelled, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
		{models.OrderStatusProcessing, models.OrderStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionHappyPath(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusPending)

	err := f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusProcessing, models.OrderStatusPending)
	require.NoError(t, err)

	status, err := f.orders.GetStatus(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, status)
}

func TestTransitionRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusPending)

	err := f.lifecycle.Transition(context.Background(), customerCtx, o.ID, models.OrderStatusProcessing, models.OrderStatusPending)
	var perm *apperrors.PermissionError
	require.ErrorAs(t, err, &perm)

	// no partial effect
	status, err := f.orders.GetStatus(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, status)
}

func TestTransitionIllegalEdges(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusCompleted)

	err := f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusProcessing, models.OrderStatusCompleted)
	var invalid *apperrors.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)

	// pending cannot skip straight to completed
	o2 := f.seedOrder(t, "ORD-20250901-0002", "50.00", models.OrderStatusPending)
	err = f.lifecycle.Transition(context.Background(), adminCtx, o2.ID, models.OrderStatusCompleted, models.OrderStatusPending)
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionIdempotentReapply(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusCompleted)

	err := f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusCompleted, models.OrderStatusCompleted)
	require.NoError(t, err)

	status, err := f.orders.GetStatus(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, status)
}

func TestTransitionExpectedMismatchIsConflict(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusPending)

	// caller believes the order is processing, but it is still pending
	err := f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusCompleted, models.OrderStatusProcessing)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	// idempotent form also conflicts when the snapshot is stale
	err = f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusProcessing, models.OrderStatusProcessing)
	require.ErrorAs(t, err, &conflict)
}

func TestTransitionConcurrentAdminsSingleWinner(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusPending)

	errA := f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusProcessing, models.OrderStatusPending)
	errB := f.lifecycle.Transition(context.Background(), adminCtx, o.ID, models.OrderStatusCancelled, models.OrderStatusPending)

	require.NoError(t, errA)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, errB, &conflict)
}

func TestTransitionUnknownOrder(t *testing.T) {
	f := newFixture(t)
	err := f.lifecycle.Transition(context.Background(), adminCtx, "missing", models.OrderStatusProcessing, models.OrderStatusPending)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransitionUnknownStatusFieldKeyed(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, "ORD-20250901-0001", "100.00", models.OrderStatusPending)

	err := f.lifecycle.Transition(context.Background(), adminCtx, o.ID, "shipped", models.OrderStatusPending)
	var v *apperrors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "status")
}
