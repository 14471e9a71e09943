package events

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartChannelPrefix = "cart_changes:"

// CartChannel is the pub/sub channel carrying change signals for one
// customer's cart.
func CartChannel(userID string) string {
	return cartChannelPrefix + userID
}

// RedisPublisher fans cart-change signals out over redis pub/sub so every
// instance holding a websocket for the customer sees the mutation.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) CartChanged(ctx context.Context, userID string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := p.rdb.Publish(ctx, CartChannel(userID), "changed").Err(); err != nil {
		log.Printf("cart change publish failed for user %s: %v", userID, err)
	}
}

// Subscribe returns a channel that fires whenever the customer's cart
// changes. The returned cancel func must be called to release the
// subscription.
func Subscribe(ctx context.Context, rdb *redis.Client, userID string) (<-chan struct{}, func()) {
	sub := rdb.Subscribe(ctx, CartChannel(userID))
	out := make(chan struct{}, 1)
	go func() {
		for range sub.Channel() {
			select {
			case out <- struct{}{}:
			default: // a pending signal already forces a re-read
			}
		}
		close(out)
	}()
	return out, func() { _ = sub.Close() }
}
