package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"skillforge_backend/pkg/logger"
	"skillforge_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedClient is one websocket subscriber of the live activity feed.
type FeedClient struct {
	Hub     *NotifyHub
	Conn    *websocket.Conn
	Send    chan []byte
	UserID  string
	Limiter *rate.Limiter
}

// The feed is one-way; inbound frames are drained for keepalive handling
// and otherwise dropped. The limiter disconnects clients that flood.
func (c *FeedClient) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("websocket unexpected close", zap.Error(err), zap.String("userId", c.UserID))
			}
			break
		}
		if !c.Limiter.Allow() {
			break
		}
	}
}

func (c *FeedClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if n := len(c.Send); n > 0 {
				for i := 0; i < n; i++ {
					w.Write(<-c.Send)
				}
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// NotifyHub fans activity events out to connected dashboard clients. Events
// arrive over redis pub/sub so every instance of the backend sees them.
type NotifyHub struct {
	clients    map[*FeedClient]bool
	mu         sync.RWMutex
	register   chan *FeedClient
	unregister chan *FeedClient
	Redis      *redis.Client
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewNotifyHub(rdb *redis.Client) *NotifyHub {
	ctx, cancel := context.WithCancel(context.Background())
	return &NotifyHub{
		clients:    make(map[*FeedClient]bool),
		register:   make(chan *FeedClient),
		unregister: make(chan *FeedClient),
		Redis:      rdb,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *NotifyHub) Run() {
	pubsub := h.Redis.Subscribe(h.ctx, activityChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			monitoring.FeedSubscribers.Inc()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				monitoring.FeedSubscribers.Dec()
			}
			h.mu.Unlock()

		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast([]byte(msg.Payload))

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *NotifyHub) broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			// slow consumer, drop the frame rather than block the feed
		}
	}
}

// Stop closes every connection and ends the pub/sub loop.
func (h *NotifyHub) Stop() {
	h.cancel()

	h.mu.Lock()
	n := len(h.clients)
	for client := range h.clients {
		close(client.Send)
		delete(h.clients, client)
	}
	h.mu.Unlock()

	monitoring.FeedSubscribers.Set(0)
	logger.Log.Info("notify hub stopped", zap.Int("closedConnections", n))
}

// ServeFeed upgrades the request and attaches the client to the hub.
func ServeFeed(hub *NotifyHub, w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("websocket upgrade failed", zap.Error(err), zap.String("userId", userID))
		return
	}
	client := &FeedClient{
		Hub:     hub,
		Conn:    conn,
		Send:    make(chan []byte, 256),
		UserID:  userID,
		Limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}
