// Package events carries the cart-change fanout. Consumers treat an event as
// "something changed, re-read the latest snapshot" — payloads are not deltas
// and arrival order is not guaranteed.
package events

import "context"

type Publisher interface {
	// CartChanged signals that the customer's cart mutated. Best effort:
	// implementations log failures and never propagate them.
	CartChanged(ctx context.Context, userID string)
}

// NopPublisher drops every event; used in tests and when redis is not
// configured.
type NopPublisher struct{}

func (NopPublisher) CartChanged(ctx context.Context, userID string) {}
