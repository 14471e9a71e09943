// Package realtime holds the websocket surfaces: the admin order feed and
// the per-customer cart count.
package realtime

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/HectorSandate/Hilosaki/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderEvent is what the admin dashboard receives: either a full new order
// or a status change for one it already shows.
type OrderEvent struct {
	Type    string             `json:"type"` // order_created | status_changed
	Order   *models.Order      `json:"order,omitempty"`
	OrderID string             `json:"order_id,omitempty"`
	Status  models.OrderStatus `json:"status,omitempty"`
}

// Hub broadcasts order events to every connected admin client. It satisfies
// services.OrderFeed.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: map[*websocket.Conn]bool{}}
}

func (h *Hub) OrderCreated(order *models.Order) {
	h.broadcast(OrderEvent{Type: "order_created", Order: order})
}

func (h *Hub) StatusChanged(orderID string, status models.OrderStatus) {
	h.broadcast(OrderEvent{Type: "status_changed", OrderID: orderID, Status: status})
}

func (h *Hub) broadcast(ev OrderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// HandleOrderFeed upgrades the connection and keeps it registered until the
// client goes away. Writes happen only from broadcast.
func (h *Hub) HandleOrderFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
