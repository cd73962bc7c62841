package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventpass-api/internal/api/middleware"
	"github.com/vietanh2810/eventpass-api/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	clientBuffer   = 32
	broadcastQueue = 256
)

type liveClient struct {
	conn    *websocket.Conn
	send    chan []byte
	adminID uint
}

// LiveHub pushes participant and payment events to connected dashboards.
// Run owns the client set; a client that cannot keep up is dropped.
type LiveHub struct {
	upgrader   websocket.Upgrader
	clients    map[*liveClient]struct{}
	broadcast  chan []byte
	register   chan *liveClient
	unregister chan *liveClient
	count      chan chan int
	done       chan struct{}
}

func NewLiveHub(allowedOrigins []string) *LiveHub {
	return &LiveHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
					return true
				}
				return slices.Contains(allowedOrigins, origin)
			},
		},
		clients:    make(map[*liveClient]struct{}),
		broadcast:  make(chan []byte, broadcastQueue),
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
		count:      make(chan chan int),
		done:       make(chan struct{}),
	}
}

func (h *LiveHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					zap.L().Warn("dropping slow live client", zap.Uint("admin_id", client.adminID))
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish never blocks the caller; events are dropped when the queue is full.
func (h *LiveHub) Publish(event domain.LiveEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode live event", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		zap.L().Warn("live event queue full, dropping event", zap.String("type", string(event.Type)))
	}
}

// Clients reports the number of connected dashboards.
func (h *LiveHub) Clients(ctx context.Context) int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	case <-ctx.Done():
		return 0
	}
}

// HandleWebSocket godoc
// @Summary      Live dashboard stream
// @Description  Upgrades to a websocket that receives participant and payment events as JSON. The token may be passed as a query parameter.
// @Tags         live
// @Param        token  query  string  false  "session token"
// @Success      101    {string}  string  "Switching Protocols"
// @Failure      401    {object}  response.Err
// @Router       /live [get]
// @Security BearerAuth
func (h *LiveHub) HandleWebSocket(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	adminID, _ := middleware.AdminID(ctx)
	client := &liveClient{
		conn:    conn,
		send:    make(chan []byte, clientBuffer),
		adminID: adminID,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	case <-ctx.Request.Context().Done():
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (c *liveClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; dashboards never send data.
func (c *liveClient) readPump(h *LiveHub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("live client closed", zap.Error(err))
			}
			return
		}
	}
}
