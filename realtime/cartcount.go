package realtime

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/HectorSandate/Hilosaki/events"
	"github.com/HectorSandate/Hilosaki/middleware"
	"github.com/HectorSandate/Hilosaki/services"
)

// CartCountSocket pushes the customer's cart badge count. Change events are
// only a wake-up call: every push re-reads the latest snapshot from the
// store, so out-of-order or coalesced events still converge on the truth.
type CartCountSocket struct {
	rdb  *redis.Client
	cart *services.CartStore
}

func NewCartCountSocket(rdb *redis.Client, cart *services.CartStore) *CartCountSocket {
	return &CartCountSocket{rdb: rdb, cart: cart}
}

type cartCountMessage struct {
	Count int `json:"count"`
}

func (s *CartCountSocket) Handle(c *gin.Context) {
	auth, ok := middleware.AuthFrom(c)
	if !ok {
		c.AbortWithStatus(401)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	changes, unsubscribe := events.Subscribe(ctx, s.rdb, auth.UserID)
	defer unsubscribe()

	push := func() bool {
		count, err := s.cart.Count(ctx, auth.UserID)
		if err != nil {
			log.Printf("cart count fetch failed for user %s: %v", auth.UserID, err)
			return true // transient; keep the socket and retry on next event
		}
		return conn.WriteJSON(cartCountMessage{Count: count}) == nil
	}

	if !push() {
		return
	}

	// The read pump only detects disconnects; clients never send data.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case _, open := <-changes:
			if !open || !push() {
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
