// Package groups tracks which live connections belong to which notification
// groups and fans events out to them.
//
// A group is a plain string: "Dashboard" for the board list, or the textual
// board ID for everyone looking at that board. Membership is keyed by
// connection ID, lives only in process memory, and is cleaned up either
// when the transport reports a disconnect or by the periodic Sweep.
//
//	reg := groups.NewRegistry(hub, logger, metrics)
//	reg.Connect(connID)
//	reg.Join(connID, groups.BoardGroup(boardID))
//	reg.Broadcast(ctx, groups.BoardGroup(boardID), groups.EventBoardUpdated, nil)
package groups

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/boardsync/internal/app/fanout"
	"github.com/jsamuelsen11/boardsync/internal/platform/telemetry"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// Well-known group and event names.
const (
	DashboardGroup        = "Dashboard"
	EventBoardUpdated     = "BoardUpdated"
	EventDashboardUpdated = "DashboardUpdated"
)

// BoardGroup returns the group name for a single board.
func BoardGroup(boardID uuid.UUID) string {
	return boardID.String()
}

// defaultWorkers bounds concurrent deliveries per Broadcast.
const defaultWorkers = 16

// Compile-time checks.
var (
	_ ports.Notifier        = (*Registry)(nil)
	_ ports.GroupMembership = (*Registry)(nil)
)

type member struct {
	groups   map[string]struct{}
	lastSeen time.Time
}

// Stats is a point-in-time count of registry contents.
type Stats struct {
	Connections int
	Groups      int
}

// Registry is the in-memory group membership table.
// All methods are safe for concurrent use.
type Registry struct {
	sender  ports.Sender
	logger  *slog.Logger
	metrics *telemetry.Metrics
	workers int
	now     func() time.Time

	mu     sync.RWMutex
	groups map[string]map[string]struct{}
	conns  map[string]*member
}

// Option configures a Registry.
type Option func(*Registry)

// WithWorkers sets the maximum concurrent deliveries per Broadcast.
func WithWorkers(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithClock overrides the time source used for activity tracking.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates an empty Registry that delivers through sender.
// metrics may be nil.
func NewRegistry(sender ports.Sender, logger *slog.Logger, metrics *telemetry.Metrics, opts ...Option) *Registry {
	r := &Registry{
		sender:  sender,
		logger:  logger,
		metrics: metrics,
		workers: defaultWorkers,
		now:     time.Now,
		groups:  make(map[string]map[string]struct{}),
		conns:   make(map[string]*member),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetSender replaces the delivery transport. It exists because the
// transport and the registry reference each other and one of them has to
// be constructed first.
func (r *Registry) SetSender(sender ports.Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sender = sender
}

// Connect registers a connection with no group memberships.
// Connecting an already known connection only refreshes its activity time.
func (r *Registry) Connect(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure(connectionID)
}

func (r *Registry) ensure(connectionID string) *member {
	m, ok := r.conns[connectionID]
	if !ok {
		m = &member{groups: make(map[string]struct{})}
		r.conns[connectionID] = m
		r.connections(1)
	}
	m.lastSeen = r.now()
	return m
}

// Disconnect removes the connection from every group it joined and returns
// how many memberships were dropped. Unknown connections are a no-op.
func (r *Registry) Disconnect(connectionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drop(connectionID)
}

func (r *Registry) drop(connectionID string) int {
	m, ok := r.conns[connectionID]
	if !ok {
		return 0
	}
	for g := range m.groups {
		r.removeFromGroup(connectionID, g)
	}
	delete(r.conns, connectionID)
	r.connections(-1)
	return len(m.groups)
}

// Join adds the connection to group. Joining twice is idempotent.
func (r *Registry) Join(connectionID, group string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.ensure(connectionID)
	m.groups[group] = struct{}{}

	set, ok := r.groups[group]
	if !ok {
		set = make(map[string]struct{})
		r.groups[group] = set
	}
	set[connectionID] = struct{}{}
}

// Leave removes the connection from group. Leaving a group the connection
// never joined is a no-op.
func (r *Registry) Leave(connectionID, group string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.conns[connectionID]
	if !ok {
		return
	}
	m.lastSeen = r.now()
	delete(m.groups, group)
	r.removeFromGroup(connectionID, group)
}

func (r *Registry) removeFromGroup(connectionID, group string) {
	set := r.groups[group]
	delete(set, connectionID)
	if len(set) == 0 {
		delete(r.groups, group)
	}
}

// Touch records activity for a known connection.
func (r *Registry) Touch(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.conns[connectionID]; ok {
		m.lastSeen = r.now()
	}
}

// Members returns a sorted snapshot of the connections in group.
func (r *Registry) Members(group string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(group)
}

func (r *Registry) snapshot(group string) []string {
	set := r.groups[group]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Stats returns current connection and group counts.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{Connections: len(r.conns), Groups: len(r.groups)}
}

// Broadcast delivers event to every member of group at the moment of the
// call. Connections that join afterwards do not receive it. Failed
// deliveries are logged and skipped; the return value is the number of
// connections the message was handed to.
func (r *Registry) Broadcast(ctx context.Context, group, event string, payload any) int {
	r.mu.RLock()
	targets := r.snapshot(group)
	sender := r.sender
	r.mu.RUnlock()

	if len(targets) == 0 || sender == nil {
		return 0
	}

	msg := ports.Message{Group: group, Event: event, Payload: payload}
	results := fanout.Run(ctx, r.workers, targets, func(ctx context.Context, connID string) (string, error) {
		return connID, sender.Send(ctx, connID, msg)
	})

	delivered := 0
	for i, res := range results {
		if res.Err != nil {
			r.logger.WarnContext(ctx, "broadcast delivery failed",
				slog.String("operation", "Registry.Broadcast"),
				slog.String("group", group),
				slog.String("event", event),
				slog.String("connection_id", targets[i]),
				slog.Any("error", res.Err),
			)
			r.delivered(ctx, event, "error")
			continue
		}
		delivered++
		r.delivered(ctx, event, "success")
	}

	r.logger.DebugContext(ctx, "broadcast sent",
		slog.String("group", group),
		slog.String("event", event),
		slog.Int("targets", len(targets)),
		slog.Int("delivered", delivered),
	)
	return delivered
}

// Sweep removes connections whose last activity is older than threshold and
// returns how many were removed.
func (r *Registry) Sweep(threshold time.Duration) int {
	cutoff := r.now().Add(-threshold)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, m := range r.conns {
		if m.lastSeen.Before(cutoff) {
			r.drop(id)
			removed++
		}
	}
	return removed
}

func (r *Registry) connections(delta int64) {
	if r.metrics == nil || r.metrics.HubConnections == nil {
		return
	}
	r.metrics.HubConnections.Add(context.Background(), delta)
}

func (r *Registry) delivered(ctx context.Context, event, result string) {
	if r.metrics == nil || r.metrics.BroadcastTotal == nil {
		return
	}
	r.metrics.BroadcastTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEvent.String(event),
		telemetry.AttrResult.String(result),
	))
}
