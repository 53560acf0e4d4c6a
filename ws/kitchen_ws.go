package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"tavola/entity"
)

// OrderEvent is one frame pushed to kitchen display subscribers.
type OrderEvent struct {
	Event string        `json:"event"` // "order.created" | "order.updated"
	Order *entity.Order `json:"order"`
}

// KitchenHub fans order events out to every connected kitchen display.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	log        *logrus.Logger
}

func NewKitchenHub(log *logrus.Logger) *KitchenHub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

// Run services register/unregister/broadcast until the process exits.
func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					h.log.WithError(err).Warn("ws write failed, dropping client")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastOrder queues an event for all displays. When the hub is
// saturated the event is dropped; displays resync on their next poll.
func (h *KitchenHub) BroadcastOrder(event string, order *entity.Order) {
	select {
	case h.broadcast <- OrderEvent{Event: event, Order: order}:
	default:
		h.log.WithField("event", event).Warn("kitchen feed full, event dropped")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades GET /ws/kitchen. The feed is write-only;
// client frames are read and discarded to keep the connection alive.
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade failed")
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
