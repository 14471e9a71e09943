package services

import (
	"context"
	"errors"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
)

// validNext is the full legal transition graph. Terminal states have no
// outgoing edges; pending cannot skip straight to completed.
var validNext = map[models.OrderStatus]map[models.OrderStatus]bool{
	models.OrderStatusPending:    {models.OrderStatusProcessing: true, models.OrderStatusCancelled: true},
	models.OrderStatusProcessing: {models.OrderStatusCompleted: true, models.OrderStatusCancelled: true},
	models.OrderStatusCompleted:  {},
	models.OrderStatusCancelled:  {},
}

func CanTransition(from, to models.OrderStatus) bool {
	return validNext[from][to]
}

// OrderLifecycleManager enforces the status state machine over persisted
// orders with optimistic concurrency: the caller names the status it saw,
// and a mismatch means someone else already moved the order.
type OrderLifecycleManager struct {
	orders repository.Orders
	feed   OrderFeed
}

func NewOrderLifecycleManager(orders repository.Orders, feed OrderFeed) *OrderLifecycleManager {
	if feed == nil {
		feed = nopFeed{}
	}
	return &OrderLifecycleManager{orders: orders, feed: feed}
}

// Transition moves orderID from expected to target. Re-applying a status the
// order already holds is an idempotent success; an expected-status mismatch
// is ConflictError and the caller must re-read before retrying.
func (m *OrderLifecycleManager) Transition(ctx context.Context, auth models.AuthContext, orderID string, target, expected models.OrderStatus) error {
	if !auth.IsAdmin() {
		return &apperrors.PermissionError{Action: "change order status"}
	}

	v := apperrors.NewValidationError()
	if !target.Valid() {
		v.Add("status", "unknown status")
	}
	if !expected.Valid() {
		v.Add("expected_status", "unknown status")
	}
	if !v.Empty() {
		return v
	}

	ctx, cancel := boundCtx(ctx)
	defer cancel()

	if target == expected {
		current, err := m.orders.GetStatus(ctx, orderID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return apperrors.Persistence("read order status", err)
		}
		if current != target {
			return &apperrors.ConflictError{Resource: "order", Reason: "order status changed, refetch and retry"}
		}
		return nil
	}

	if !CanTransition(expected, target) {
		return &apperrors.InvalidTransitionError{From: string(expected), To: string(target)}
	}

	moved, err := m.orders.UpdateStatusIf(ctx, orderID, expected, target)
	if err != nil {
		return apperrors.Persistence("update order status", err)
	}
	if !moved {
		if _, err := m.orders.GetStatus(ctx, orderID); errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return &apperrors.ConflictError{Resource: "order", Reason: "order status changed, refetch and retry"}
	}

	go m.feed.StatusChanged(orderID, target)
	return nil
}
