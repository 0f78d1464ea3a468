package notifications

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Hub broadcasts activity events to connected websocket clients.
type Hub struct {
	connections map[*Connection]bool
	broadcast   chan Event
	register    chan *Connection
	unregister  chan *Connection
	stop        chan struct{}
	upgrader    websocket.Upgrader
	logger      *zap.Logger
}

// Connection represents a websocket client connection
type Connection struct {
	ID     string
	UserID string
	Conn   *websocket.Conn
	Send   chan Event
}

// NewHub creates the hub and starts its broadcast loop.
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		connections: make(map[*Connection]bool),
		broadcast:   make(chan Event, 256),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		stop:        make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Demo deployment serves the UI from another origin.
				return true
			},
		},
		logger: logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.connections[conn] = true
		case conn := <-h.unregister:
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				close(conn.Send)
			}
		case event := <-h.broadcast:
			for conn := range h.connections {
				select {
				case conn.Send <- event:
				default:
					// Slow consumer, drop it.
					delete(h.connections, conn)
					close(conn.Send)
				}
			}
		case <-h.stop:
			for conn := range h.connections {
				close(conn.Send)
			}
			return
		}
	}
}

// Record implements Recorder: it wraps the event and broadcasts it.
func (h *Hub) Record(eventType, description string) {
	event := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		Description: description,
		CreatedAt:   time.Now(),
	}
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("notification dropped, broadcast buffer full",
			zap.String("type", eventType))
	}
}

// Close shuts down the broadcast loop and all client connections.
func (h *Hub) Close() {
	close(h.stop)
}

// RegisterRoutes registers the websocket endpoint
func (h *Hub) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", h.handleConnection)
}

func (h *Hub) handleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Connection{
		ID:     uuid.NewString(),
		UserID: c.Query("userId"),
		Conn:   conn,
		Send:   make(chan Event, 256),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

// readPump drains client frames so pong handling works; inbound
// messages carry no meaning for the feed.
func (h *Hub) readPump(conn *Connection) {
	defer func() {
		h.unregister <- conn
		conn.Conn.Close()
	}()

	conn.Conn.SetReadLimit(512)
	conn.Conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.Conn.SetPongHandler(func(string) error {
		conn.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-conn.Send:
			conn.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.Conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
