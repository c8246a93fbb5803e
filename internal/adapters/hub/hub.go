// Package hub is the WebSocket transport for board notifications.
//
// Each upgraded connection gets an id, a bounded outbound queue drained by a
// write pump, and a read loop that turns JoinBoard, LeaveBoard, JoinDashboard
// and LeaveDashboard frames into group membership changes. The hub never
// decides who receives what: it only implements ports.Sender for the group
// registry and forwards lifecycle signals to it.
package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/boardsync/internal/app/groups"
	"github.com/jsamuelsen11/boardsync/internal/platform/logging"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Sender        = (*Hub)(nil)
	_ ports.HealthChecker = (*Hub)(nil)
	_ http.Handler        = (*Hub)(nil)
)

var (
	// ErrUnknownConnection is returned by Send for ids that are not live.
	ErrUnknownConnection = errors.New("hub: unknown connection")
	// ErrQueueFull is returned by Send when a connection's outbound queue
	// is full. The message is dropped.
	ErrQueueFull = errors.New("hub: outbound queue full")
	// ErrClosed is returned once Close has been called.
	ErrClosed = errors.New("hub: closed")
)

// Config holds transport limits.
type Config struct {
	SendBuffer      int
	WriteTimeout    time.Duration
	PongWait        time.Duration
	MaxMessageBytes int64

	// MessagesPerWindow inbound frames are allowed per Window per
	// connection. Zero disables the limit.
	MessagesPerWindow int
	Window            time.Duration
}

func (c Config) withDefaults() Config {
	if c.SendBuffer <= 0 {
		c.SendBuffer = 32
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.PongWait <= 0 {
		c.PongWait = 60 * time.Second
	}
	if c.MaxMessageBytes <= 0 {
		c.MaxMessageBytes = 4096
	}
	if c.Window <= 0 {
		c.Window = time.Minute
	}
	return c
}

// pingInterval must stay below PongWait so a healthy peer always answers in
// time.
func (c Config) pingInterval() time.Duration {
	return c.PongWait * 9 / 10
}

// Hub accepts WebSocket connections and delivers group events to them.
type Hub struct {
	cfg      Config
	members  ports.GroupMembership
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	conns  map[string]*conn
	closed bool
	wg     sync.WaitGroup
}

// New creates a Hub that reports connection lifecycle and membership to
// members.
func New(members ports.GroupMembership, cfg Config, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		cfg:     cfg.withDefaults(),
		members: members,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[string]*conn),
	}
}

// Send implements ports.Sender. It never blocks: the frame is queued for the
// connection's write pump or rejected.
func (h *Hub) Send(_ context.Context, connectionID string, msg ports.Message) error {
	data, err := encodeEvent(msg.Group, msg.Event, msg.Payload)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", msg.Event, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.conns[connectionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConnection, connectionID)
	}
	if !c.enqueue(data) {
		return fmt.Errorf("%w: %s", ErrQueueFull, connectionID)
	}
	return nil
}

// ServeHTTP upgrades the request and serves the connection until either side
// closes it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		logging.FromContext(r.Context()).WarnContext(r.Context(), "websocket upgrade failed",
			slog.String("operation", "hub.ServeHTTP"),
			slog.Any("error", err),
		)
		return
	}

	id := uuid.NewString()
	c := &conn{
		id:     id,
		ws:     ws,
		send:   make(chan []byte, h.cfg.SendBuffer),
		logger: logging.FromContext(r.Context()).With(slog.String("connection_id", id)),
	}
	if h.cfg.MessagesPerWindow > 0 {
		c.limiter = newWindowLimiter(h.cfg.MessagesPerWindow, h.cfg.Window, nil)
	}

	if !h.register(c) {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(h.cfg.WriteTimeout))
		_ = ws.Close()
		return
	}
	c.logger.InfoContext(r.Context(), "connection opened", slog.String("remote_addr", r.RemoteAddr))

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) register(c *conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.conns[c.id] = c
	h.wg.Add(1)
	h.members.Connect(c.id)
	return true
}

// unregister drops the connection and every membership it held. Closing the
// queue under the write lock guarantees no Send is enqueuing concurrently.
func (h *Hub) unregister(c *conn) {
	h.mu.Lock()
	if _, ok := h.conns[c.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.conns, c.id)
	close(c.send)
	h.mu.Unlock()

	dropped := h.members.Disconnect(c.id)
	c.logger.Info("connection closed", slog.Int("memberships_dropped", dropped))
	h.wg.Done()
}

func (h *Hub) readPump(c *conn) {
	defer func() {
		h.unregister(c)
		_ = c.ws.Close()
	}()

	c.ws.SetReadLimit(h.cfg.MaxMessageBytes)
	_ = c.ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	c.ws.SetPongHandler(func(string) error {
		h.members.Touch(c.id)
		return c.ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("connection read failed", slog.Any("error", err))
			}
			return
		}
		_ = c.ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
		h.members.Touch(c.id)
		h.handle(c, data)
	}
}

// handle applies one client frame and queues its ack. Every frame counts
// against the connection's limit, malformed ones included.
func (h *Hub) handle(c *conn, data []byte) {
	if c.limiter != nil && !c.limiter.allow() {
		h.reply(c, "", msgRateLimited)
		return
	}
	in, err := decodeInbound(data)
	if err != nil {
		h.reply(c, "", msgMalformed)
		return
	}

	switch in.Type {
	case TypeJoinBoard, TypeLeaveBoard:
		boardID, ok := in.boardID()
		if !ok {
			h.reply(c, in.Ref, msgBoardIDRequired)
			return
		}
		if in.Type == TypeJoinBoard {
			h.members.Join(c.id, groups.BoardGroup(boardID))
		} else {
			h.members.Leave(c.id, groups.BoardGroup(boardID))
		}
	case TypeJoinDashboard:
		h.members.Join(c.id, groups.DashboardGroup)
	case TypeLeaveDashboard:
		h.members.Leave(c.id, groups.DashboardGroup)
	case TypePing:
	default:
		h.reply(c, in.Ref, msgUnknownType)
		return
	}
	h.reply(c, in.Ref, "")
}

func (h *Hub) reply(c *conn, ref, failure string) {
	data, err := encodeAck(ref, failure)
	if err != nil {
		c.logger.Error("failed to encode ack", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, live := h.conns[c.id]; live && !c.enqueue(data) {
		c.logger.Warn("dropping ack, outbound queue full", slog.String("ref", ref))
	}
}

func (h *Hub) writePump(c *conn) {
	ticker := time.NewTicker(h.cfg.pingInterval())
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Connections returns the number of live connections.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close stops accepting connections, closes every live one and waits for
// their cleanup or ctx expiry.
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	live := make([]*conn, 0, len(h.conns))
	for _, c := range h.conns {
		live = append(live, c)
	}
	h.mu.Unlock()

	deadline := time.Now().Add(h.cfg.WriteTimeout)
	for _, c := range live {
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), deadline)
		_ = c.ws.Close()
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("closing hub: %w", ctx.Err())
	}
}

// Name implements ports.HealthChecker.
func (h *Hub) Name() string { return "hub" }

// HealthCheck implements ports.HealthChecker.
func (h *Hub) HealthCheck(_ context.Context) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrClosed
	}
	return nil
}

type conn struct {
	id      string
	ws      *websocket.Conn
	send    chan []byte
	limiter *windowLimiter
	logger  *slog.Logger
}

// enqueue must be called with the hub's read lock held.
func (c *conn) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}
