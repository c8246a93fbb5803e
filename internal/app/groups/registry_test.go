package groups_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/boardsync/internal/app/groups"
	"github.com/jsamuelsen11/boardsync/internal/ports"
	"github.com/jsamuelsen11/boardsync/mocks"
)

type recordingSender struct {
	mu   sync.Mutex
	sent map[string][]ports.Message
}

func newRecordingSender() *recordingSender {
	return &recordingSender{sent: map[string][]ports.Message{}}
}

func (s *recordingSender) Send(_ context.Context, connID string, msg ports.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[connID] = append(s.sent[connID], msg)
	return nil
}

func (s *recordingSender) received(connID string) []ports.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent[connID]
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newRegistry(t *testing.T, opts ...groups.Option) (*groups.Registry, *recordingSender) {
	t.Helper()
	sender := newRecordingSender()
	return groups.NewRegistry(sender, discardLogger(), nil, opts...), sender
}

func TestRegistry_BroadcastReachesOnlyMembers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg, sender := newRegistry(t)

	b1 := groups.BoardGroup(uuid.New())
	reg.Join("c1", b1)
	reg.Join("c2", b1)
	reg.Join("c3", groups.DashboardGroup)

	n := reg.Broadcast(ctx, b1, groups.EventBoardUpdated, nil)

	assert.Equal(t, 2, n)
	require.Len(t, sender.received("c1"), 1)
	assert.Equal(t, ports.Message{Group: b1, Event: groups.EventBoardUpdated}, sender.received("c1")[0])
	assert.Len(t, sender.received("c2"), 1)
	assert.Empty(t, sender.received("c3"))
}

func TestRegistry_JoinIsIdempotent(t *testing.T) {
	t.Parallel()
	reg, sender := newRegistry(t)

	reg.Join("c1", groups.DashboardGroup)
	reg.Join("c1", groups.DashboardGroup)

	assert.Equal(t, []string{"c1"}, reg.Members(groups.DashboardGroup))
	reg.Broadcast(context.Background(), groups.DashboardGroup, groups.EventDashboardUpdated, nil)
	assert.Len(t, sender.received("c1"), 1)
}

func TestRegistry_LeaveStopsDelivery(t *testing.T) {
	t.Parallel()
	reg, sender := newRegistry(t)

	reg.Join("c1", "b")
	reg.Leave("c1", "b")
	reg.Leave("c1", "never-joined")
	reg.Leave("unknown", "b")

	assert.Zero(t, reg.Broadcast(context.Background(), "b", groups.EventBoardUpdated, nil))
	assert.Empty(t, sender.received("c1"))
	assert.Equal(t, groups.Stats{Connections: 1, Groups: 0}, reg.Stats())
}

func TestRegistry_DisconnectRemovesAllMemberships(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)

	reg.Join("c1", "b1")
	reg.Join("c1", "b2")
	reg.Join("c1", groups.DashboardGroup)
	reg.Join("c2", "b1")

	assert.Equal(t, 3, reg.Disconnect("c1"))
	assert.Zero(t, reg.Disconnect("c1"))

	assert.Equal(t, []string{"c2"}, reg.Members("b1"))
	assert.Empty(t, reg.Members("b2"))
	assert.Empty(t, reg.Members(groups.DashboardGroup))
	assert.Equal(t, groups.Stats{Connections: 1, Groups: 1}, reg.Stats())
}

func TestRegistry_BroadcastSkipsFailedDeliveries(t *testing.T) {
	t.Parallel()
	sender := mocks.NewMockSender(t)
	reg := groups.NewRegistry(sender, discardLogger(), nil, groups.WithWorkers(2))

	for i := range 5 {
		reg.Join(fmt.Sprintf("c%d", i), "b")
	}
	sender.EXPECT().Send(mock.Anything, "c2", mock.Anything).Return(errors.New("outbound queue full")).Once()
	for _, id := range []string{"c0", "c1", "c3", "c4"} {
		sender.EXPECT().
			Send(mock.Anything, id, mock.MatchedBy(func(m ports.Message) bool {
				return m.Group == "b" && m.Event == groups.EventBoardUpdated
			})).
			Return(nil).
			Once()
	}

	n := reg.Broadcast(context.Background(), "b", groups.EventBoardUpdated, nil)

	assert.Equal(t, 4, n)
}

func TestRegistry_BroadcastToEmptyGroup(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)

	assert.Zero(t, reg.Broadcast(context.Background(), "nobody", groups.EventBoardUpdated, nil))
}

func TestRegistry_SweepEvictsIdleConnections(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	reg, _ := newRegistry(t, groups.WithClock(clock.Now))

	reg.Join("idle", "b")
	reg.Join("busy", "b")
	reg.Connect("quiet")

	clock.Advance(4 * time.Minute)
	reg.Touch("busy")
	clock.Advance(2 * time.Minute)

	removed := reg.Sweep(5 * time.Minute)

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"busy"}, reg.Members("b"))
	assert.Equal(t, 1, reg.Stats().Connections)
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("c%d", i)
			reg.Join(id, "b")
			reg.Broadcast(ctx, "b", groups.EventBoardUpdated, nil)
			reg.Touch(id)
			reg.Disconnect(id)
		}()
	}
	wg.Wait()

	assert.Equal(t, groups.Stats{}, reg.Stats())
}

func TestSweeper_StartStop(t *testing.T) {
	t.Parallel()
	reg, _ := newRegistry(t)
	reg.Connect("c1")

	s := groups.NewSweeper(reg, discardLogger(), 5*time.Millisecond, time.Nanosecond)
	s.Start(context.Background())
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return reg.Stats().Connections == 0 },
		time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()
}
